// Package credential hashes passwords and issues and decodes the signed
// bearer tokens used for API sessions.
package credential

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"academy/internal/pkg/apperr"
)

// DefaultTTL is the lifetime of a token issued without an explicit ttl.
const DefaultTTL = 7 * 24 * time.Hour

var (
	ErrExpiredCredential = apperr.Unauthenticated("TOKEN_EXPIRED", "Token expired")
	ErrInvalidCredential = apperr.Unauthenticated("INVALID_TOKEN", "Invalid token")
	ErrPasswordTooLong   = apperr.Validation("PASSWORD_TOO_LONG", "Password must be at most 72 bytes")
)

// Manager is safe for concurrent use; its fields are never mutated after
// construction.
type Manager struct {
	secret []byte
	ttl    time.Duration
	cost   int
	now    func() time.Time
}

type Option func(*Manager)

// WithCost overrides the bcrypt cost.
func WithCost(cost int) Option {
	return func(m *Manager) { m.cost = cost }
}

// WithClock overrides the time source used for issuing and validating tokens.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

func NewManager(secret string, ttl time.Duration, opts ...Option) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	m := &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		cost:   bcrypt.DefaultCost,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) TTL() time.Duration { return m.ttl }

// Hash returns a bcrypt digest of password. Every call draws a fresh salt.
func (m *Manager) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), m.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether password matches digest. A malformed digest is a
// mismatch, not an error.
func (m *Manager) Verify(password, digest string) bool {
	if digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
