package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"academy/internal/domain/auth"
	"academy/internal/pkg/response"
)

type SessionResolver interface {
	Resolve(r *http.Request) (*auth.User, error)
}

// JWTAuth resolves the bearer token into a user and attaches it to the
// request context. Failures stop the chain with a 401.
func JWTAuth(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := resolver.Resolve(c.Request)
		if err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}

		auth.SetCurrentUser(c, user)
		c.Set("user_id", user.ID)
		c.Set("role", string(user.Role))
		c.Next()
	}
}
