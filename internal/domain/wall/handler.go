package wall

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

// Feed handles GET /api/wall/posts?limit=&offset=
func (h *Handler) Feed(c *gin.Context) {
	user, ok := auth.MustUser(c)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	posts, err := h.service.Feed(c.Request.Context(), user.ID, domain.Page{Limit: limit, Offset: offset})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, posts)
}

func (h *Handler) CreatePost(c *gin.Context) {
	user, ok := auth.MustUser(c)
	if !ok {
		return
	}
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	post, err := h.service.CreatePost(c.Request.Context(), user, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, post)
}

func (h *Handler) DeletePost(c *gin.Context) {
	user, ok := auth.MustUser(c)
	if !ok {
		return
	}
	if err := h.service.DeletePost(c.Request.Context(), user, c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Post deleted"})
}

func (h *Handler) Comments(c *gin.Context) {
	comments, err := h.service.Comments(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, comments)
}

func (h *Handler) AddComment(c *gin.Context) {
	user, ok := auth.MustUser(c)
	if !ok {
		return
	}
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	comment, err := h.service.AddComment(c.Request.Context(), user, c.Param("id"), req.Content)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, comment)
}

func (h *Handler) React(c *gin.Context) {
	user, ok := auth.MustUser(c)
	if !ok {
		return
	}
	var req ReactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	res, err := h.service.React(c.Request.Context(), user.ID, c.Param("id"), req.Type)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}
