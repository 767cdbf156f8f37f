package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/adapters/memstore"
	apperrors "github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/errors"
	mockauth "github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/mocks/auth"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/session"
)

func newAuthService(t *testing.T) (*AuthService, *session.Manager) {
	t.Helper()
	m, err := session.NewManager(session.ManagerOptions{
		Auth:         mockauth.NewFakeAuthAPI(),
		Durable:      memstore.New(),
		Ephemeral:    memstore.New(),
		TokenKey:     "bagbank_token",
		UserKey:      "bagbank_user",
		DurableTTL:   time.Hour,
		EphemeralTTL: time.Hour,
	})
	require.NoError(t, err)
	return NewAuthService(AuthServiceOptions{Sessions: m}), m
}

func TestAuthService_LoginPrecheck(t *testing.T) {
	svc, _ := newAuthService(t)

	for _, in := range []LoginInput{{Username: "  ", Password: "x"}, {Username: "admin"}} {
		_, err := svc.Login(context.Background(), "", in)
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
		assert.Equal(t, MsgMissingCredentials, apperrors.UserMessage(err, ""))
	}
}

func TestAuthService_LoginRotatesSession(t *testing.T) {
	svc, m := newAuthService(t)
	ctx := context.Background()

	anon, err := svc.Open(ctx, "")
	require.NoError(t, err)

	res, err := svc.Login(ctx, anon.ID(), LoginInput{Username: " admin ", Password: "secret", Remember: true})
	require.NoError(t, err)
	assert.NotEqual(t, anon.ID(), res.Session.ID())
	assert.True(t, res.State.Authenticated())
	assert.Equal(t, 1, m.Len())

	st, err := svc.Require(ctx, res.Session.ID())
	require.NoError(t, err)
	assert.Same(t, res.Session, st)
}

func TestAuthService_LoginRejected(t *testing.T) {
	svc, m := newAuthService(t)

	_, err := svc.Login(context.Background(), "", LoginInput{Username: "admin", Password: "wrong"})
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidCredentials(err))
	assert.Zero(t, m.Len())
}

func TestAuthService_LogoutThenRequire(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	res, err := svc.Login(ctx, "", LoginInput{Username: "admin", Password: "secret"})
	require.NoError(t, err)
	sid := res.Session.ID()

	svc.Logout(ctx, sid)

	_, err = svc.Require(ctx, sid)
	require.Error(t, err)
	assert.True(t, apperrors.IsAuthorizationExpired(err))
}
