package lead

import "academy/internal/pkg/apperr"

var (
	ErrLeadNotFound      = apperr.NotFound("LEAD_NOT_FOUND", "Lead not found")
	ErrInvalidPersonType = apperr.Validation("INVALID_PERSON_TYPE", "Unknown person type")
	ErrInvalidStatus     = apperr.Validation("INVALID_STATUS", "Unknown lead status")
)
