package bagbankapi

import (
	"context"
	"errors"
	"net/http"

	"golang.org/x/oauth2"

	domainauth "github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/domain/auth"
	apperrors "github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/errors"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/ports"
)

var _ ports.AuthAPI = (*Client)(nil)

var errMissingToken = errors.New("login response has no access_token")

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login posts the operator's credentials and returns the access token.
// 401 and 422 mean the credentials were rejected.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var tok oauth2.Token
	err := c.do(ctx, nil, call{
		method: http.MethodPost,
		path:   "/auth/login",
		body:   loginRequest{Username: username, Password: password},
	}, &tok)
	if err != nil {
		switch apperrors.GetStatus(err) {
		case http.StatusUnauthorized, http.StatusUnprocessableEntity:
			return "", apperrors.InvalidCredentials(err)
		}
		return "", apperrors.Reclassify(err, apperrors.ErrCodeUnavailable,
			"Unable to reach the BagBank API. Please try again.",
			apperrors.ErrCodeTimeout, apperrors.ErrCodeCanceled)
	}
	if tok.AccessToken == "" {
		return "", apperrors.Wrap(errMissingToken, apperrors.ErrCodeUnavailable,
			"Unexpected response from the BagBank API")
	}
	return tok.AccessToken, nil
}

// Me returns the profile of the session's operator.
func (c *Client) Me(ctx context.Context, creds ports.Credentials) (domainauth.Profile, error) {
	var p domainauth.Profile
	if err := c.do(ctx, creds, call{method: http.MethodGet, path: "/auth/me"}, &p); err != nil {
		return domainauth.Profile{}, err
	}
	return p, nil
}

// Logout notifies the API that the session's token is no longer in use.
func (c *Client) Logout(ctx context.Context, creds ports.Credentials) error {
	return c.do(ctx, creds, call{method: http.MethodPost, path: "/auth/logout"}, nil)
}
