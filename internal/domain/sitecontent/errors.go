package sitecontent

import "academy/internal/pkg/apperr"

var (
	ErrUnknownSection = apperr.Validation("INVALID_SECTION", "Unknown site content section")
	ErrInvalidContent = apperr.Validation("INVALID_CONTENT", "Invalid site content")
)
