// Package bootstrap prepares a fresh database: the table set and the first
// administrator account.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"academy/internal/config"
	"academy/internal/domain/auth"
	applogger "academy/internal/pkg/logger"
)

type Accounts interface {
	EmailRegistered(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, in auth.NewUser) (*auth.User, error)
}

// EnsureAdmin creates the configured admin account when it is missing.
// Without ADMIN_EMAIL and ADMIN_PASSWORD it does nothing.
func EnsureAdmin(ctx context.Context, accounts Accounts, cfg config.AdminConfig, logger *zap.Logger) error {
	logger = applogger.OrNop(logger)
	if cfg.Email == "" || cfg.Password == "" {
		logger.Debug("admin bootstrap skipped: no credentials configured")
		return nil
	}

	exists, err := accounts.EmailRegistered(ctx, cfg.Email)
	if err != nil {
		return fmt.Errorf("bootstrap lookup admin: %w", err)
	}
	if exists {
		return nil
	}

	u, err := accounts.CreateUser(ctx, auth.NewUser{
		Email:    cfg.Email,
		Password: cfg.Password,
		FullName: "Administrator",
		Role:     string(auth.RoleAdmin),
	})
	if errors.Is(err, auth.ErrEmailExists) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("bootstrap create admin: %w", err)
	}
	logger.Info("admin account created", zap.String("user_id", u.ID), zap.String("email", u.Email))
	return nil
}
