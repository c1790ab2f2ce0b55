package bootstrap

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"academy/internal/config"
	"academy/internal/database/dbtest"
	"academy/internal/domain/auth"
	"academy/internal/pkg/credential"
)

func setup(t *testing.T) (*auth.Service, auth.UserRepository, *credential.Manager) {
	t.Helper()
	db := dbtest.Open(t, Models()...)
	users := auth.NewUserRepository(db)
	creds := credential.NewManager("test-secret", time.Hour, credential.WithCost(bcrypt.MinCost))
	return auth.NewService(users, creds, nil, nil), users, creds
}

func TestEnsureAdmin_CreatesOnce(t *testing.T) {
	svc, users, creds := setup(t)
	ctx := context.Background()
	cfg := config.AdminConfig{Email: "root@academy.example", Password: "s3cret-pass"}

	require.NoError(t, EnsureAdmin(ctx, svc, cfg, nil))
	require.NoError(t, EnsureAdmin(ctx, svc, cfg, nil))

	u, err := users.GetByEmail(ctx, cfg.Email)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, u.Role)
	assert.True(t, creds.Verify("s3cret-pass", u.PasswordHash))

	all, err := users.List(ctx, auth.UserFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestEnsureAdmin_KeepsExistingAccount(t *testing.T) {
	svc, users, _ := setup(t)
	ctx := context.Background()
	_, err := svc.CreateUser(ctx, auth.NewUser{
		Email: "root@academy.example", Password: "original", FullName: "Root", Role: "membre",
	})
	require.NoError(t, err)

	require.NoError(t, EnsureAdmin(ctx, svc, config.AdminConfig{Email: "root@academy.example", Password: "other"}, nil))

	u, err := users.GetByEmail(ctx, "root@academy.example")
	require.NoError(t, err)
	assert.Equal(t, auth.RoleMembre, u.Role)
}

func TestEnsureAdmin_SkipsWithoutCredentials(t *testing.T) {
	svc, users, _ := setup(t)
	ctx := context.Background()

	require.NoError(t, EnsureAdmin(ctx, svc, config.AdminConfig{Email: "root@academy.example"}, nil))

	all, err := users.List(ctx, auth.UserFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)
}
