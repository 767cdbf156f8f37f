package bagbankapi

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/ports"
)

type credentialsKey struct{}

// withCredentials binds a session to the request context so the transport can read its
// token and report a 401 back to it.
func withCredentials(ctx context.Context, creds ports.Credentials) context.Context {
	if creds == nil {
		return ctx
	}
	return context.WithValue(ctx, credentialsKey{}, creds)
}

func credentialsFrom(ctx context.Context) ports.Credentials {
	creds, _ := ctx.Value(credentialsKey{}).(ports.Credentials)
	return creds
}

// bearerTransport attaches the session token to outgoing requests and reports 401
// responses to the session that issued them. Requests without a token are sent as-is.
type bearerTransport struct {
	base http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	creds := credentialsFrom(req.Context())
	if creds == nil {
		return t.base.RoundTrip(req)
	}

	token := creds.Token(req.Context())
	if token != "" {
		req = req.Clone(req.Context())
		(&oauth2.Token{AccessToken: token}).SetAuthHeader(req)
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		creds.HandleUnauthorized(token)
	}
	return resp, nil
}
