package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveWebhook(t *testing.T) {
	before := testutil.ToFloat64(WebhookEvents.WithLabelValues("checkout.session.completed", OutcomeApplied))

	ObserveWebhook("checkout.session.completed", OutcomeApplied)

	after := testutil.ToFloat64(WebhookEvents.WithLabelValues("checkout.session.completed", OutcomeApplied))
	assert.Equal(t, before+1, after)
}
