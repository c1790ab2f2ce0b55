package event

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

// List handles GET /api/events?past=true
func (h *Handler) List(c *gin.Context) {
	events, err := h.service.List(c.Request.Context(), c.Query("past") == "true")
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, events)
}

func (h *Handler) Get(c *gin.Context) {
	e, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, e)
}

func (h *Handler) Create(c *gin.Context) {
	u, ok := auth.MustUser(c)
	if !ok {
		return
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	e, err := h.service.Create(c.Request.Context(), u, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, e)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	e, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, e)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Event deleted"})
}

// Register handles POST /api/events/:id/register
func (h *Handler) Register(c *gin.Context) {
	u, ok := auth.MustUser(c)
	if !ok {
		return
	}

	reg, err := h.service.Register(c.Request.Context(), u, c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, reg)
}

func (h *Handler) Unregister(c *gin.Context) {
	u, ok := auth.MustUser(c)
	if !ok {
		return
	}

	if err := h.service.Unregister(c.Request.Context(), u, c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Registration cancelled"})
}

func (h *Handler) MyRegistrations(c *gin.Context) {
	u, ok := auth.MustUser(c)
	if !ok {
		return
	}

	regs, err := h.service.MyRegistrations(c.Request.Context(), u)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, regs)
}

func (h *Handler) EventRegistrations(c *gin.Context) {
	regs, err := h.service.EventRegistrations(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, regs)
}
