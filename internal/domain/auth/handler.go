package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"academy/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register handles POST /api/auth/register
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	res, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res)
}

// Login handles POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

// Me handles GET /api/auth/me
func (h *Handler) Me(c *gin.Context) {
	u, ok := MustUser(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, u)
}

// UpdateProfile handles PUT /api/profile
func (h *Handler) UpdateProfile(c *gin.Context) {
	u, ok := MustUser(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	updated, err := h.service.UpdateProfile(c.Request.Context(), u.ID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, updated)
}

// ChangePassword handles PUT /api/profile/password
func (h *Handler) ChangePassword(c *gin.Context) {
	u, ok := MustUser(c)
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), u.ID, req); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Password updated"})
}

// ListMembers handles GET /api/members?country=&city=&club_id=
func (h *Handler) ListMembers(c *gin.Context) {
	members, err := h.service.ListMembers(c.Request.Context(), UserFilter{
		Country: c.Query("country"),
		City:    c.Query("city"),
		ClubID:  c.Query("club_id"),
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, members)
}

func (h *Handler) GetMember(c *gin.Context) {
	member, err := h.service.GetMember(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, member)
}

// SearchUsers handles GET /api/users/search?q=
func (h *Handler) SearchUsers(c *gin.Context) {
	u, ok := MustUser(c)
	if !ok {
		return
	}

	users, err := h.service.Search(c.Request.Context(), u.ID, c.Query("q"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, users)
}

// Directory handles GET /api/directory?role= (public)
func (h *Handler) Directory(c *gin.Context) {
	users, err := h.service.Directory(c.Request.Context(), c.Query("role"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, users)
}
