package payment

import "academy/internal/pkg/apperr"

var (
	ErrTransactionNotFound = apperr.NotFound("TRANSACTION_NOT_FOUND", "Payment session not found")
	ErrInvalidPackage      = apperr.Validation("INVALID_PACKAGE", "Unknown membership package")
	ErrInvalidOrigin       = apperr.Validation("INVALID_ORIGIN", "Origin URL is not allowed")
	ErrLicenseAlreadyPaid  = apperr.Conflict("LICENSE_ALREADY_PAID", "Licence already paid")
	ErrPremiumActive       = apperr.Conflict("PREMIUM_ALREADY_ACTIVE", "Premium membership already active")
	ErrProviderFailure     = apperr.Upstream("PAYMENT_PROVIDER_ERROR", "Payment provider request failed")
	ErrNotOwner            = apperr.Forbidden("FORBIDDEN", "This payment belongs to another user")
	ErrInvalidSignature    = apperr.Validation("INVALID_SIGNATURE", "Webhook signature verification failed")
	ErrMalformedEvent      = apperr.Validation("MALFORMED_EVENT", "Webhook payload could not be decoded")
)
