package chat

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"academy/internal/domain"
	"academy/internal/domain/auth"
	"academy/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Start handles POST /api/conversations
func (h *Handler) Start(c *gin.Context) {
	user, ok := auth.MustUser(c)
	if !ok {
		return
	}
	var req StartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	view, err := h.service.Start(c.Request.Context(), user.ID, req.ParticipantID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

func (h *Handler) List(c *gin.Context) {
	user, ok := auth.MustUser(c)
	if !ok {
		return
	}
	views, err := h.service.List(c.Request.Context(), user.ID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, views)
}

func (h *Handler) UnreadCount(c *gin.Context) {
	user, ok := auth.MustUser(c)
	if !ok {
		return
	}
	n, err := h.service.UnreadCount(c.Request.Context(), user.ID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"unread_count": n})
}

func (h *Handler) Messages(c *gin.Context) {
	user, ok := auth.MustUser(c)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	msgs, err := h.service.Messages(c.Request.Context(), user.ID, c.Param("id"), domain.Page{Limit: limit, Offset: offset})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, msgs)
}

func (h *Handler) Send(c *gin.Context) {
	user, ok := auth.MustUser(c)
	if !ok {
		return
	}
	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	msg, err := h.service.Send(c.Request.Context(), user.ID, c.Param("id"), req.Content)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, msg)
}
