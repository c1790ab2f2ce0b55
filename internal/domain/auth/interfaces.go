package auth

import (
	"context"
	"time"

	"academy/internal/notification"
	"academy/internal/pkg/credential"
)

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetBySubscriptionID(ctx context.Context, subscriptionID string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f UserFilter) ([]User, error)
	Search(ctx context.Context, q, excludeID string, limit int) ([]User, error)
}

// Credentials is the subset of credential.Manager the service uses.
type Credentials interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
	Issue(userID, email string, ttl time.Duration) (string, error)
}

type TokenDecoder interface {
	Decode(token string) (*credential.Claims, error)
}

// ClubLookup confirms a club id refers to an existing club.
type ClubLookup interface {
	ClubExists(ctx context.Context, id string) (bool, error)
}

type Notifier interface {
	Dispatch(msg notification.Message)
}
