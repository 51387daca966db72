package services

import (
	"net/http"
	"testing"
	"time"

	"github.com/CPU-commits/Intranet_BDirectorio/forms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuth(t *testing.T, ttl time.Duration) (*AuthService, *SessionService) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreto"), bcrypt.MinCost)
	require.NoError(t, err)
	sessions := NewSessionService(NewMemorySessionStore(), "test-secret", ttl)
	auth, err := NewAuthService(
		map[string]string{"mariela.puebla@uvm.cl": string(hash)},
		sessions,
		zap.NewNop(),
	)
	require.NoError(t, err)
	return auth, sessions
}

func TestLoginSuccessOpensSession(t *testing.T) {
	auth, sessions := newTestAuth(t, time.Hour)

	token, errRes := auth.Login(&forms.LoginForm{
		Correo:     " Mariela.Puebla@uvm.cl ",
		Contrasena: "secreto",
	})
	require.Nil(t, errRes)

	session, err := sessions.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, "mariela.puebla@uvm.cl", session.Usuario)

	auth.Logout(token)
	_, err = sessions.Resolve(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestLoginFailuresAreGeneric(t *testing.T) {
	auth, _ := newTestAuth(t, time.Hour)

	for _, form := range []*forms.LoginForm{
		{Correo: "mariela.puebla@uvm.cl", Contrasena: "otra"},
		{Correo: "nadie@uvm.cl", Contrasena: "secreto"},
		{},
	} {
		token, errRes := auth.Login(form)
		require.NotNil(t, errRes)
		assert.Empty(t, token)
		assert.Equal(t, http.StatusUnauthorized, errRes.StatusCode)
		assert.Equal(t, MSG_LOGIN_FAILED, errRes.Err.Error())
	}
}

func TestResolveRejectsTamperedAndExpired(t *testing.T) {
	_, sessions := newTestAuth(t, time.Hour)

	token, _, err := sessions.Start("a@uvm.cl")
	require.NoError(t, err)
	_, err = sessions.Resolve(token + "x")
	assert.ErrorIs(t, err, ErrInvalidSession)
	_, err = sessions.Resolve("")
	assert.ErrorIs(t, err, ErrInvalidSession)

	other := NewSessionService(NewMemorySessionStore(), "other-secret", time.Hour)
	_, err = other.Resolve(token)
	assert.ErrorIs(t, err, ErrInvalidSession)

	expired := NewSessionService(NewMemorySessionStore(), "test-secret", -time.Minute)
	token, _, err = expired.Start("a@uvm.cl")
	require.NoError(t, err)
	_, err = expired.Resolve(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestResolveChecksServerSideExpiry(t *testing.T) {
	_, sessions := newTestAuth(t, time.Hour)

	token, session, err := sessions.Start("a@uvm.cl")
	require.NoError(t, err)

	// Token still valid, server-side record past its expiry
	sessions.now = func() time.Time { return session.ExpiresAt.Add(time.Second) }
	_, err = sessions.Resolve(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
	_, ok := sessions.store.Get(session.ID)
	assert.False(t, ok)
}
