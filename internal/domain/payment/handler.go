package payment

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"academy/internal/domain/auth"
	"academy/internal/metrics"
	"academy/internal/pkg/apperr"
	"academy/internal/pkg/response"
)

const maxWebhookBody = 64 << 10

type Handler struct {
	service  *Service
	verifier EventVerifier
}

func NewHandler(service *Service, verifier EventVerifier) *Handler {
	return &Handler{service: service, verifier: verifier}
}

// MembershipCheckout handles POST /api/payments/membership/checkout
func (h *Handler) MembershipCheckout(c *gin.Context) {
	user, ok := auth.MustUser(c)
	if !ok {
		return
	}
	var req MembershipCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	res, err := h.service.MembershipCheckout(c.Request.Context(), user, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

// ShopCheckout handles POST /api/payments/shop/checkout
func (h *Handler) ShopCheckout(c *gin.Context) {
	user, ok := auth.MustUser(c)
	if !ok {
		return
	}
	var req ShopCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	res, err := h.service.ShopCheckout(c.Request.Context(), user, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

// Status handles GET /api/payments/status/:session_id
func (h *Handler) Status(c *gin.Context) {
	user, ok := auth.MustUser(c)
	if !ok {
		return
	}
	txn, err := h.service.Status(c.Request.Context(), user, c.Param("session_id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, txn)
}

// Webhook handles POST /api/payments/webhook. Only signature and decoding
// failures are reported as 4xx; storage failures return 500 so the
// provider retries.
func (h *Handler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
	if err != nil {
		metrics.ObserveWebhook("unknown", metrics.OutcomeRejected)
		response.Error(c, http.StatusBadRequest, "INVALID_PAYLOAD", "Unable to read webhook body")
		return
	}

	ev, err := h.verifier.Verify(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		metrics.ObserveWebhook("unknown", metrics.OutcomeRejected)
		if apperr.KindOf(err) != apperr.KindValidation {
			err = ErrInvalidSignature
		}
		response.FromError(c, err)
		return
	}

	outcome, err := h.service.HandleEvent(c.Request.Context(), ev)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Webhook processing failed")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"received": true, "outcome": outcome})
}
