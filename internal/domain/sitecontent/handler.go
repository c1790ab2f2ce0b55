package sitecontent

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

// Public handles GET /api/site-content
func (h *Handler) Public(c *gin.Context) {
	content, err := h.service.Content(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, content)
}

func (h *Handler) AdminGet(c *gin.Context) {
	doc, err := h.service.Document(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, doc)
}

func (h *Handler) Replace(c *gin.Context) {
	user, ok := auth.MustUser(c)
	if !ok {
		return
	}
	var content Content
	if err := c.ShouldBindJSON(&content); err != nil {
		response.BindError(c, err)
		return
	}
	doc, err := h.service.Replace(c.Request.Context(), user.ID, content)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, doc)
}

// UpdateSection handles PUT /api/admin/site-content/:section
func (h *Handler) UpdateSection(c *gin.Context) {
	user, ok := auth.MustUser(c)
	if !ok {
		return
	}
	raw, err := c.GetRawData()
	if err != nil {
		response.FromError(c, ErrInvalidContent)
		return
	}
	doc, err := h.service.UpdateSection(c.Request.Context(), user.ID, Section(c.Param("section")), raw)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, doc)
}
