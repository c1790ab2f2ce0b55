package admin

import "academy/internal/pkg/apperr"

var (
	ErrCannotDeleteSelf = apperr.Conflict("CANNOT_DELETE_SELF", "You cannot delete your own account")
	ErrCannotDemoteSelf = apperr.Conflict("CANNOT_DEMOTE_SELF", "You cannot remove your own admin role")
)
