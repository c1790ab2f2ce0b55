package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"academy/internal/pkg/response"
)

const currentUserKey = "auth.current_user"

// SessionResolver turns a bearer token into the user it was issued for.
// It never writes.
type SessionResolver struct {
	decoder TokenDecoder
	users   UserRepository
}

func NewSessionResolver(decoder TokenDecoder, users UserRepository) *SessionResolver {
	return &SessionResolver{decoder: decoder, users: users}
}

func (r *SessionResolver) Resolve(req *http.Request) (*User, error) {
	token, ok := bearerToken(req.Header.Get("Authorization"))
	if !ok {
		return nil, ErrMissingCredential
	}

	claims, err := r.decoder.Decode(token)
	if err != nil {
		return nil, err
	}

	u, err := r.users.GetByID(req.Context(), claims.UserID)
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrUnknownSubject
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func SetCurrentUser(c *gin.Context, u *User) {
	c.Set(currentUserKey, u)
}

// CurrentUser returns the user attached by the auth middleware.
func CurrentUser(c *gin.Context) (*User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*User)
	return u, ok && u != nil
}

// MustUser returns the current user, or writes a 401 and returns false.
func MustUser(c *gin.Context) (*User, bool) {
	u, ok := CurrentUser(c)
	if !ok {
		response.FromError(c, ErrMissingCredential)
		c.Abort()
	}
	return u, ok
}
