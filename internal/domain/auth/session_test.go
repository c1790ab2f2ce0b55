package auth

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academy/internal/pkg/credential"
)

func TestSessionResolver(t *testing.T) {
	env := setupService(t)
	resolver := NewSessionResolver(env.creds, env.repo)
	ctx := context.Background()

	res, err := env.svc.Register(ctx, RegisterRequest{Email: "f@example.com", Password: "secret1", FullName: "Fay"})
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer "+res.Token)
		u, err := resolver.Resolve(req)
		require.NoError(t, err)
		assert.Equal(t, res.User.ID, u.ID)
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		_, err := resolver.Resolve(req)
		assert.ErrorIs(t, err, ErrMissingCredential)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Basic "+res.Token)
		_, err := resolver.Resolve(req)
		assert.ErrorIs(t, err, ErrMissingCredential)
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		_, err := resolver.Resolve(req)
		assert.ErrorIs(t, err, credential.ErrInvalidCredential)
	})

	t.Run("expired token", func(t *testing.T) {
		past := credential.NewManager("test-secret", time.Hour, credential.WithClock(func() time.Time {
			return time.Now().Add(-2 * time.Hour)
		}))
		token, err := past.Issue(res.User.ID, res.User.Email, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		_, err = resolver.Resolve(req)
		assert.ErrorIs(t, err, credential.ErrExpiredCredential)
	})

	t.Run("unknown subject", func(t *testing.T) {
		token, err := env.creds.Issue("deleted-user", "gone@example.com", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		_, err = resolver.Resolve(req)
		assert.ErrorIs(t, err, ErrUnknownSubject)
	})
}
