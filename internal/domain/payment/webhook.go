package payment

import (
	"encoding/json"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
)

// Provider event types the tracker reacts to.
const (
	EventCheckoutCompleted   = "checkout.session.completed"
	EventCheckoutExpired     = "checkout.session.expired"
	EventSubscriptionDeleted = "customer.subscription.deleted"
)

// Event is the provider-neutral part of a verified webhook.
type Event struct {
	ID             string
	Type           string
	SessionID      string
	SubscriptionID string
	CustomerID     string
	Metadata       map[string]string
}

type EventVerifier interface {
	Verify(payload []byte, signature string) (*Event, error)
}

type StripeVerifier struct {
	secret string
}

func NewStripeVerifier(secret string) *StripeVerifier {
	return &StripeVerifier{secret: secret}
}

func (v *StripeVerifier) Verify(payload []byte, signature string) (*Event, error) {
	if v.secret == "" || signature == "" {
		return nil, ErrInvalidSignature
	}
	raw, err := webhook.ConstructEventWithOptions(payload, signature, v.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, ErrInvalidSignature
	}

	ev := &Event{ID: raw.ID, Type: string(raw.Type)}
	if raw.Data == nil {
		return ev, nil
	}

	switch ev.Type {
	case EventCheckoutCompleted, EventCheckoutExpired:
		var s stripe.CheckoutSession
		if err := json.Unmarshal(raw.Data.Raw, &s); err != nil {
			return nil, ErrMalformedEvent
		}
		ev.SessionID = s.ID
		ev.Metadata = s.Metadata
		if s.Subscription != nil {
			ev.SubscriptionID = s.Subscription.ID
		}
		if s.Customer != nil {
			ev.CustomerID = s.Customer.ID
		}
	case EventSubscriptionDeleted:
		var sub stripe.Subscription
		if err := json.Unmarshal(raw.Data.Raw, &sub); err != nil {
			return nil, ErrMalformedEvent
		}
		ev.SubscriptionID = sub.ID
		ev.Metadata = sub.Metadata
		if sub.Customer != nil {
			ev.CustomerID = sub.Customer.ID
		}
	}
	return ev, nil
}
