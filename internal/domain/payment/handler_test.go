package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76/webhook"

	"academy/internal/domain/auth"
	"academy/internal/metrics"
)

const webhookSecret = "whsec_test_secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func sign(payload []byte, secret string, ts time.Time) string {
	return webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: ts,
	}).Header
}

func eventPayload(t *testing.T, eventType string, object map[string]any) []byte {
	t.Helper()
	raw, err := json.Marshal(map[string]any{
		"id":          "evt_test",
		"object":      "event",
		"type":        eventType,
		"api_version": "2023-10-16",
		"data":        map[string]any{"object": object},
	})
	require.NoError(t, err)
	return raw
}

func newWebhookRouter(env *testEnv) *gin.Engine {
	r := gin.New()
	NewHandler(env.svc, NewStripeVerifier(webhookSecret)).RegisterPublicRoutes(r.Group("/api"))
	return r
}

func postWebhook(r http.Handler, payload []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("Stripe-Signature", signature)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebhookHandler_SignedLicenceEvent(t *testing.T) {
	env := setup(t)
	ctx := context.Background()
	u := env.user(t, "a@x.com")
	res, err := env.svc.MembershipCheckout(ctx, u, MembershipCheckoutRequest{PackageID: "licence", OriginURL: testOrigin})
	require.NoError(t, err)

	applied := metrics.WebhookEvents.WithLabelValues(EventCheckoutCompleted, metrics.OutcomeApplied)
	before := testutil.ToFloat64(applied)

	payload := eventPayload(t, EventCheckoutCompleted, map[string]any{
		"id":       res.SessionID,
		"object":   "checkout.session",
		"customer": "cus_42",
		"metadata": map[string]string{"payment_type": "membership", "package_id": "licence", "user_id": u.ID},
	})
	w := postWebhook(newWebhookRouter(env), payload, sign(payload, webhookSecret, time.Now()))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"outcome":"applied"`)
	assert.Equal(t, before+1, testutil.ToFloat64(applied))

	got := env.reload(t, u.ID)
	assert.True(t, got.HasPaidLicense)
	assert.False(t, got.IsPremium)
	assert.Equal(t, "cus_42", got.StripeCustomerID)
}

func TestWebhookHandler_SubscriptionDeleted(t *testing.T) {
	env := setup(t)
	u := env.user(t, "a@x.com", func(u *auth.User) {
		u.IsPremium = true
		u.StripeSubscriptionID = "sub_777"
	})

	payload := eventPayload(t, EventSubscriptionDeleted, map[string]any{
		"id":     "sub_777",
		"object": "subscription",
	})
	w := postWebhook(newWebhookRouter(env), payload, sign(payload, webhookSecret, time.Now()))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := env.reload(t, u.ID)
	assert.False(t, got.IsPremium)
	assert.Empty(t, got.StripeSubscriptionID)
}

func TestWebhookHandler_RejectsBadSignatures(t *testing.T) {
	env := setup(t)
	r := newWebhookRouter(env)
	payload := eventPayload(t, EventCheckoutCompleted, map[string]any{"id": "cs_1", "object": "checkout.session"})

	cases := map[string]string{
		"missing":      "",
		"wrong secret": sign(payload, "whsec_other", time.Now()),
		"stale":        sign(payload, webhookSecret, time.Now().Add(-time.Hour)),
		"garbage":      "t=abc,v1=zz",
	}
	for name, sig := range cases {
		t.Run(name, func(t *testing.T) {
			w := postWebhook(r, payload, sig)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "INVALID_SIGNATURE")
		})
	}
}

func TestWebhookHandler_TamperedPayload(t *testing.T) {
	env := setup(t)
	payload := eventPayload(t, EventCheckoutCompleted, map[string]any{"id": "cs_1", "object": "checkout.session"})
	sig := sign(payload, webhookSecret, time.Now())

	tampered := bytes.Replace(payload, []byte("cs_1"), []byte("cs_2"), 1)
	w := postWebhook(newWebhookRouter(env), tampered, sig)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWebhookHandler_UnhandledTypeAccepted(t *testing.T) {
	env := setup(t)
	payload := eventPayload(t, "invoice.paid", map[string]any{"id": "in_1", "object": "invoice"})

	w := postWebhook(newWebhookRouter(env), payload, sign(payload, webhookSecret, time.Now()))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"outcome":"ignored"`)
}
