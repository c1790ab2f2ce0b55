package membership

import "academy/internal/pkg/apperr"

var (
	ErrApplicationNotFound = apperr.NotFound("APPLICATION_NOT_FOUND", "Membership application not found")
	ErrAlreadyApplied      = apperr.Conflict("APPLICATION_EXISTS", "A pending application already exists for this email")
	ErrEmailRegistered     = apperr.Conflict("EMAIL_EXISTS", "Email already registered")
	ErrNotPending          = apperr.Conflict("APPLICATION_NOT_PENDING", "Application has already been reviewed")
	ErrInvalidStatus       = apperr.Validation("INVALID_STATUS", "Unknown application status")
)
