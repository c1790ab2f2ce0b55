package wall

import "academy/internal/pkg/apperr"

var (
	ErrPostNotFound    = apperr.NotFound("POST_NOT_FOUND", "Post not found")
	ErrNotAuthor       = apperr.Forbidden("FORBIDDEN", "Only the author or an admin can delete this post")
	ErrInvalidReaction = apperr.Validation("INVALID_REACTION", "Reaction must be one of like, love, respect")
	ErrEmptyContent    = apperr.Validation("EMPTY_CONTENT", "Content is required")
)
