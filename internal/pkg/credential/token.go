package credential

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwtlib.RegisteredClaims
}

// Issue signs a token for the user that expires ttl from now. A ttl <= 0
// uses the manager default.
func (m *Manager) Issue(userID, email string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = m.ttl
	}
	now := m.now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Decode verifies tokenStr and returns its claims. Expired tokens yield
// ErrExpiredCredential; every other failure yields ErrInvalidCredential.
func (m *Manager) Decode(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwtlib.ParseWithClaims(tokenStr, claims, func(t *jwtlib.Token) (any, error) {
		return m.secret, nil
	},
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithExpirationRequired(),
		jwtlib.WithTimeFunc(m.now),
		jwtlib.WithStrictDecoding(),
	)
	if err != nil {
		// Expiry is only reported once the signature checked out.
		if errors.Is(err, jwtlib.ErrTokenExpired) && !errors.Is(err, jwtlib.ErrTokenSignatureInvalid) {
			return nil, ErrExpiredCredential
		}
		return nil, ErrInvalidCredential
	}
	if !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidCredential
	}
	return claims, nil
}
