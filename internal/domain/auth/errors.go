package auth

import "academy/internal/pkg/apperr"

var (
	ErrInvalidCredentials = apperr.Unauthenticated("INVALID_CREDENTIALS", "Invalid email or password")
	ErrMissingCredential  = apperr.Unauthenticated("UNAUTHORIZED", "Missing or malformed Authorization header")
	ErrUnknownSubject     = apperr.Unauthenticated("UNKNOWN_SUBJECT", "User no longer exists")
	ErrEmailExists        = apperr.Conflict("EMAIL_EXISTS", "Email already registered")
	ErrUserNotFound       = apperr.NotFound("USER_NOT_FOUND", "User not found")
	ErrInvalidRole        = apperr.Validation("INVALID_ROLE", "Unknown role")
	ErrInvalidBeltGrade   = apperr.Validation("INVALID_BELT_GRADE", "Unknown belt grade")
	ErrClubNotFound       = apperr.NotFound("CLUB_NOT_FOUND", "Club not found")
	ErrWrongPassword      = apperr.Validation("WRONG_PASSWORD", "Current password is incorrect")
	ErrSearchTooShort     = apperr.Validation("QUERY_TOO_SHORT", "Search query must be at least 2 characters")
)
