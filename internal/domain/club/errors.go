package club

import "academy/internal/pkg/apperr"

var (
	ErrClubNotFound     = apperr.NotFound("CLUB_NOT_FOUND", "Club not found")
	ErrDirectorNotFound = apperr.Validation("DIRECTOR_NOT_FOUND", "Technical director does not exist")
)
