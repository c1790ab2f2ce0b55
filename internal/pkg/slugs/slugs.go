// Package slugs derives URL-safe unique slugs from titles.
package slugs

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

const maxAttempts = 20

// TakenFunc reports whether a slug is already in use.
type TakenFunc func(ctx context.Context, s string) (bool, error)

// Unique slugifies title and appends -2, -3, ... until taken reports the
// slug free. After maxAttempts it falls back to a random suffix.
func Unique(ctx context.Context, title string, taken TakenFunc) (string, error) {
	base := slug.Make(title)
	if base == "" {
		base = "item"
	}

	candidate := base
	for i := 2; i <= maxAttempts+1; i++ {
		used, err := taken(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !used {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return base + "-" + uuid.NewString()[:8], nil
}
