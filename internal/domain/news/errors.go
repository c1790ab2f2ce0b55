package news

import "academy/internal/pkg/apperr"

var (
	ErrNewsNotFound    = apperr.NotFound("NEWS_NOT_FOUND", "News not found")
	ErrInvalidCategory = apperr.Validation("INVALID_CATEGORY", "Unknown news category")
	ErrInvalidStatus   = apperr.Validation("INVALID_STATUS", "Unknown news status")
)
