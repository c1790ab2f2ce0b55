package membership

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"academy/internal/domain/auth"
	"academy/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Apply handles POST /api/membership/apply (public)
func (h *Handler) Apply(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	app, err := h.service.Apply(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, app)
}

// List handles GET /api/admin/pending-members?status=
func (h *Handler) List(c *gin.Context) {
	apps, err := h.service.List(c.Request.Context(), c.DefaultQuery("status", string(StatusPending)))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, apps)
}

func (h *Handler) Approve(c *gin.Context) {
	reviewer, ok := auth.MustUser(c)
	if !ok {
		return
	}

	user, err := h.service.Approve(c.Request.Context(), reviewer, c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

func (h *Handler) Reject(c *gin.Context) {
	reviewer, ok := auth.MustUser(c)
	if !ok {
		return
	}

	var req RejectRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BindError(c, err)
			return
		}
	}

	if err := h.service.Reject(c.Request.Context(), reviewer, c.Param("id"), req.Reason); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Application rejected"})
}
