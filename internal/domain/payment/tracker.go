package payment

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"academy/internal/domain/shop"
	"academy/internal/metrics"
	"academy/internal/notification"
)

// HandleEvent applies a verified provider event and returns the outcome
// recorded in metrics. Unknown sessions, terminal transactions and
// unhandled types are ignored rather than failed so provider retries stay
// harmless. A non-nil error means storage failed and the provider should
// retry.
func (s *Service) HandleEvent(ctx context.Context, ev *Event) (string, error) {
	var (
		outcome string
		err     error
	)
	switch ev.Type {
	case EventCheckoutCompleted:
		outcome, err = s.complete(ctx, ev)
	case EventCheckoutExpired:
		outcome, err = s.expire(ctx, ev)
	case EventSubscriptionDeleted:
		outcome, err = s.cancelSubscription(ctx, ev)
	default:
		outcome = metrics.OutcomeIgnored
	}
	if err != nil {
		outcome = metrics.OutcomeFailed
		s.logger.Error("webhook event failed",
			zap.String("event_id", ev.ID),
			zap.String("type", ev.Type),
			zap.Error(err))
	}
	metrics.ObserveWebhook(ev.Type, outcome)
	return outcome, err
}

func (s *Service) complete(ctx context.Context, ev *Event) (string, error) {
	txn, err := s.pendingTransaction(ctx, ev)
	if txn == nil {
		return metrics.OutcomeIgnored, err
	}

	// claim first; a redelivered event then finds the transaction paid
	claimed, err := s.repo.Transition(ctx, txn.SessionID, StatusPending, StatusPaid)
	if err != nil {
		return "", err
	}
	if !claimed {
		return metrics.OutcomeIgnored, nil
	}

	var outcome string
	switch txn.Kind {
	case KindMembership:
		outcome, err = s.fulfilMembership(ctx, txn, ev)
	case KindShop:
		outcome, err = s.fulfilOrder(ctx, txn)
	default:
		outcome = metrics.OutcomeIgnored
	}
	if err != nil {
		// hand the session back so the provider's retry can finish it
		if _, rerr := s.repo.Transition(ctx, txn.SessionID, StatusPaid, StatusPending); rerr != nil {
			s.logger.Error("release payment claim", zap.String("session_id", txn.SessionID), zap.Error(rerr))
		}
		return "", err
	}
	return outcome, nil
}

func (s *Service) fulfilMembership(ctx context.Context, txn *Transaction, ev *Event) (string, error) {
	user, err := s.users.GetByID(ctx, txn.UserID)
	if isNotFound(err) {
		s.logger.Warn("paid membership for unknown user", zap.String("session_id", txn.SessionID), zap.String("user_id", txn.UserID))
		return metrics.OutcomeIgnored, nil
	}
	if err != nil {
		return "", err
	}

	fields := map[string]any{}
	description := "Licence annuelle"
	switch txn.PackageID {
	case PackageLicense:
		fields["has_paid_license"] = true
	case PackagePremium:
		description = "Abonnement Premium"
		fields["is_premium"] = true
		if ev.SubscriptionID != "" {
			fields["stripe_subscription_id"] = ev.SubscriptionID
		}
	default:
		return metrics.OutcomeIgnored, nil
	}
	if ev.CustomerID != "" {
		fields["stripe_customer_id"] = ev.CustomerID
	}
	if err := s.users.UpdateFields(ctx, user.ID, fields); err != nil {
		return "", err
	}

	s.notify(notification.PaymentReceived(user.Email, user.FullName, description))
	s.logger.Info("membership paid",
		zap.String("session_id", txn.SessionID),
		zap.String("user_id", user.ID),
		zap.String("package", string(txn.PackageID)))
	return metrics.OutcomeApplied, nil
}

// fulfilOrder takes stock for every line and then marks the order paid.
// The two steps are not atomic. Each line is claimed before its decrement,
// so a retry after a partial failure only takes the lines still missing.
// Stock that ran out since checkout is floored at zero and logged for
// manual follow-up.
func (s *Service) fulfilOrder(ctx context.Context, txn *Transaction) (string, error) {
	order, err := s.orders.GetOrder(ctx, txn.OrderID)
	if isNotFound(err) {
		s.logger.Warn("paid session for unknown order", zap.String("session_id", txn.SessionID), zap.String("order_id", txn.OrderID))
		return metrics.OutcomeIgnored, nil
	}
	if err != nil {
		return "", err
	}
	if order.Status != shop.OrderPending {
		return metrics.OutcomeIgnored, nil
	}

	for _, item := range order.Items {
		if err := s.takeStock(ctx, order.ID, item); err != nil {
			return "", err
		}
	}

	if _, err := s.orders.TransitionOrder(ctx, order.ID, shop.OrderPending, shop.OrderPaid); err != nil {
		return "", err
	}

	if user, err := s.users.GetByID(ctx, order.UserID); err == nil {
		s.notify(notification.PaymentReceived(user.Email, user.FullName,
			fmt.Sprintf("Commande %s (%s %s)", order.ID[:8], order.Total.StringFixed(2), order.Currency)))
	}
	s.logger.Info("order paid", zap.String("order_id", order.ID), zap.String("session_id", txn.SessionID))
	return metrics.OutcomeApplied, nil
}

func (s *Service) takeStock(ctx context.Context, orderID string, item shop.OrderItem) error {
	if item.StockTaken {
		return nil
	}
	claimed, err := s.orders.ClaimItemStock(ctx, item.ID)
	if err != nil || !claimed {
		return err
	}

	ok, err := s.orders.DecrementStock(ctx, item.ProductID, item.Quantity)
	if err != nil {
		if rerr := s.orders.ReleaseItemStock(ctx, item.ID); rerr != nil {
			s.logger.Error("release stock claim", zap.String("item_id", item.ID), zap.Error(rerr))
		}
		return err
	}
	if !ok {
		s.logger.Warn("oversold product",
			zap.String("order_id", orderID),
			zap.String("product_id", item.ProductID),
			zap.Int("quantity", item.Quantity))
		return s.orders.ZeroStock(ctx, item.ProductID)
	}
	return nil
}

// expire closes the order before the transaction so that a failure in
// between leaves the transaction pending and the redelivery finishes both.
func (s *Service) expire(ctx context.Context, ev *Event) (string, error) {
	txn, err := s.pendingTransaction(ctx, ev)
	if txn == nil {
		return metrics.OutcomeIgnored, err
	}

	if txn.Kind == KindShop && txn.OrderID != "" {
		if _, err := s.orders.TransitionOrder(ctx, txn.OrderID, shop.OrderPending, shop.OrderExpired); err != nil {
			return "", err
		}
	}
	ok, err := s.repo.Transition(ctx, txn.SessionID, StatusPending, StatusExpired)
	if err != nil {
		return "", err
	}
	if !ok {
		return metrics.OutcomeIgnored, nil
	}
	s.logger.Info("checkout expired", zap.String("session_id", txn.SessionID))
	return metrics.OutcomeApplied, nil
}

func (s *Service) cancelSubscription(ctx context.Context, ev *Event) (string, error) {
	user, err := s.users.GetBySubscriptionID(ctx, ev.SubscriptionID)
	if isNotFound(err) {
		return metrics.OutcomeIgnored, nil
	}
	if err != nil {
		return "", err
	}

	if err := s.users.UpdateFields(ctx, user.ID, map[string]any{
		"is_premium":             false,
		"stripe_subscription_id": "",
	}); err != nil {
		return "", err
	}
	s.logger.Info("premium cancelled", zap.String("user_id", user.ID), zap.String("subscription_id", ev.SubscriptionID))
	return metrics.OutcomeApplied, nil
}

// pendingTransaction returns the transaction behind ev when it can still
// change, or nil when the event should be ignored.
func (s *Service) pendingTransaction(ctx context.Context, ev *Event) (*Transaction, error) {
	if ev.SessionID == "" {
		return nil, nil
	}
	txn, err := s.repo.GetBySession(ctx, ev.SessionID)
	if isNotFound(err) {
		s.logger.Info("webhook for unknown session", zap.String("session_id", ev.SessionID))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if txn.Status != StatusPending {
		return nil, nil
	}
	if kind := ev.Metadata["payment_type"]; kind != "" && kind != string(txn.Kind) {
		s.logger.Warn("webhook metadata disagrees with transaction",
			zap.String("session_id", txn.SessionID),
			zap.String("metadata_type", kind),
			zap.String("kind", string(txn.Kind)))
	}
	return txn, nil
}
