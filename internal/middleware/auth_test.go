package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academy/internal/domain"
	"academy/internal/domain/auth"
	"academy/internal/pkg/credential"
)

type stubResolver struct {
	user *auth.User
	err  error
}

func (s stubResolver) Resolve(*http.Request) (*auth.User, error) { return s.user, s.err }

type envelope struct {
	Success bool `json:"success"`
	Error   struct {
		Code string `json:"code"`
	} `json:"error"`
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newUser(role auth.Role) *auth.User {
	return &auth.User{Document: domain.Document{ID: "u-1"}, Email: "u@example.com", Role: role}
}

func protectedRouter(resolver SessionResolver, extra ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	handlers := append([]gin.HandlerFunc{JWTAuth(resolver)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		u, _ := auth.CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"user_id": u.ID, "role": c.GetString("role")})
	})
	router.GET("/protected", handlers...)
	return router
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestJWTAuth_AttachesUser(t *testing.T) {
	router := protectedRouter(stubResolver{user: newUser(auth.RoleMembre)})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"u-1","role":"membre"}`, w.Body.String())
}

func TestJWTAuth_Failures(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code string
	}{
		{"missing", auth.ErrMissingCredential, "UNAUTHORIZED"},
		{"expired", credential.ErrExpiredCredential, "TOKEN_EXPIRED"},
		{"invalid", credential.ErrInvalidCredential, "INVALID_TOKEN"},
		{"unknown subject", auth.ErrUnknownSubject, "UNKNOWN_SUBJECT"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := protectedRouter(stubResolver{err: tc.err})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			env := decode(t, w)
			assert.False(t, env.Success)
			assert.Equal(t, tc.code, env.Error.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	t.Run("forbidden is 403", func(t *testing.T) {
		router := protectedRouter(stubResolver{user: newUser(auth.RoleMembre)}, AdminOnly())

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "FORBIDDEN", decode(t, w).Error.Code)
	})

	t.Run("allowed role passes", func(t *testing.T) {
		router := protectedRouter(stubResolver{user: newUser(auth.RoleInstructeur)},
			RequireRole(auth.RoleAdmin, auth.RoleInstructeur))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("without auth middleware", func(t *testing.T) {
		router := gin.New()
		router.GET("/admin", AdminOnly(), func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
