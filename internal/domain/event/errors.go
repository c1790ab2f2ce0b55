package event

import "academy/internal/pkg/apperr"

var (
	ErrEventNotFound        = apperr.NotFound("EVENT_NOT_FOUND", "Event not found")
	ErrEventFull            = apperr.Conflict("EVENT_FULL", "Event is full")
	ErrEventPast            = apperr.Conflict("EVENT_PAST", "Event has already started")
	ErrAlreadyRegistered    = apperr.Conflict("ALREADY_REGISTERED", "Already registered for this event")
	ErrRegistrationNotFound = apperr.NotFound("REGISTRATION_NOT_FOUND", "Registration not found")
	ErrInvalidSchedule      = apperr.Validation("INVALID_SCHEDULE", "ends_at must not be before starts_at")
)
