package payment

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"academy/internal/config"
	"academy/internal/domain/auth"
	"academy/internal/domain/shop"
	"academy/internal/notification"
	applogger "academy/internal/pkg/logger"
	"academy/internal/pkg/validator"
)

type Users interface {
	GetByID(ctx context.Context, id string) (*auth.User, error)
	GetBySubscriptionID(ctx context.Context, subscriptionID string) (*auth.User, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
}

// Catalogue prices a cart from current product data.
type Catalogue interface {
	Quote(ctx context.Context, items []shop.CartItem) (*shop.Quote, error)
}

type Orders interface {
	CreateOrder(ctx context.Context, o *shop.Order) error
	GetOrder(ctx context.Context, id string) (*shop.Order, error)
	TransitionOrder(ctx context.Context, id string, from, to shop.OrderStatus) (bool, error)
	DecrementStock(ctx context.Context, productID string, qty int) (bool, error)
	ZeroStock(ctx context.Context, productID string) error
	ClaimItemStock(ctx context.Context, itemID string) (bool, error)
	ReleaseItemStock(ctx context.Context, itemID string) error
}

type Notifier interface {
	Dispatch(msg notification.Message)
}

type Deps struct {
	Repo      Repository
	Provider  CheckoutProvider
	Users     Users
	Catalogue Catalogue
	Orders    Orders
	Notifier  Notifier
	Logger    *zap.Logger
}

type Service struct {
	repo        Repository
	provider    CheckoutProvider
	users       Users
	catalogue   Catalogue
	orders      Orders
	notifier    Notifier
	logger      *zap.Logger
	cfg         config.PaymentConfig
	allowOrigin func(string) bool
}

// NewService wires the tracker. allowOrigin decides which origin_url values
// may receive the provider redirect; nil allows any.
func NewService(d Deps, cfg config.PaymentConfig, allowOrigin func(string) bool) *Service {
	d.Logger = applogger.OrNop(d.Logger)
	if allowOrigin == nil {
		allowOrigin = func(string) bool { return true }
	}
	if cfg.Currency == "" {
		cfg.Currency = "eur"
	}
	return &Service{
		repo:        d.Repo,
		provider:    d.Provider,
		users:       d.Users,
		catalogue:   d.Catalogue,
		orders:      d.Orders,
		notifier:    d.Notifier,
		logger:      d.Logger,
		cfg:         cfg,
		allowOrigin: allowOrigin,
	}
}

// MembershipCheckout opens a session for the yearly licence (one-off) or
// the premium plan (monthly subscription).
func (s *Service) MembershipCheckout(ctx context.Context, user *auth.User, req MembershipCheckoutRequest) (*CheckoutResponse, error) {
	pkg, err := ParsePackage(req.PackageID)
	if err != nil {
		return nil, err
	}
	origin, err := s.origin(req.OriginURL)
	if err != nil {
		return nil, err
	}

	var (
		amount decimal.Decimal
		name   string
	)
	switch pkg {
	case PackageLicense:
		if user.HasPaidLicense {
			return nil, ErrLicenseAlreadyPaid
		}
		amount, name = s.cfg.LicensePrice, "Licence annuelle"
	case PackagePremium:
		if user.IsPremium {
			return nil, ErrPremiumActive
		}
		amount, name = s.cfg.PremiumPrice, "Abonnement Premium"
	}

	session, err := s.openSession(ctx, CheckoutRequest{
		Subscription:  pkg == PackagePremium,
		Currency:      s.cfg.Currency,
		Lines:         []LineItem{{Name: name, UnitAmount: amount, Quantity: 1}},
		CustomerEmail: user.Email,
		SuccessURL:    origin + "/payment/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:     origin + "/payment/cancel",
		Metadata: map[string]string{
			"payment_type": string(KindMembership),
			"package_id":   string(pkg),
			"user_id":      user.ID,
		},
	})
	if err != nil {
		return nil, err
	}

	txn := &Transaction{
		SessionID: session.ID,
		Kind:      KindMembership,
		UserID:    user.ID,
		Email:     user.Email,
		PackageID: pkg,
		Amount:    amount,
		Currency:  s.cfg.Currency,
		Status:    StatusPending,
	}
	if err := s.repo.Create(ctx, txn); err != nil {
		return nil, err
	}

	s.logger.Info("membership checkout opened",
		zap.String("session_id", session.ID),
		zap.String("user_id", user.ID),
		zap.String("package", string(pkg)))
	return &CheckoutResponse{URL: session.URL, SessionID: session.ID}, nil
}

// ShopCheckout prices the cart from the catalogue, applies the premium
// discount when the caller holds it, and only then opens a session.
func (s *Service) ShopCheckout(ctx context.Context, user *auth.User, req ShopCheckoutRequest) (*CheckoutResponse, error) {
	origin, err := s.origin(req.OriginURL)
	if err != nil {
		return nil, err
	}
	quote, err := s.catalogue.Quote(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	factor := decimal.NewFromInt(1)
	if user.IsPremium {
		factor = factor.Sub(s.cfg.PremiumDiscount)
	}

	orderID := uuid.NewString()
	order := &shop.Order{
		UserID:   user.ID,
		Status:   shop.OrderPending,
		Subtotal: quote.Subtotal,
		Currency: s.cfg.Currency,
	}
	order.ID = orderID

	lines := make([]LineItem, 0, len(quote.Lines))
	total := decimal.Zero
	for _, q := range quote.Lines {
		unit := q.Product.Price.Mul(factor).Round(2)
		lineTotal := unit.Mul(decimal.NewFromInt(int64(q.Quantity)))
		total = total.Add(lineTotal)

		name := q.Product.Name
		if q.Size != "" {
			name += " (" + q.Size + ")"
		}
		lines = append(lines, LineItem{Name: name, UnitAmount: unit, Quantity: int64(q.Quantity)})
		order.Items = append(order.Items, shop.OrderItem{
			OrderID:   orderID,
			ProductID: q.Product.ID,
			Name:      q.Product.Name,
			Size:      q.Size,
			Quantity:  q.Quantity,
			UnitPrice: unit,
			LineTotal: lineTotal,
		})
	}
	order.Total = total
	order.Discount = quote.Subtotal.Sub(total)

	session, err := s.openSession(ctx, CheckoutRequest{
		Currency:      s.cfg.Currency,
		Lines:         lines,
		CustomerEmail: user.Email,
		SuccessURL:    origin + "/shop/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:     origin + "/shop",
		Metadata: map[string]string{
			"payment_type": string(KindShop),
			"order_id":     orderID,
			"user_id":      user.ID,
		},
	})
	if err != nil {
		return nil, err
	}

	order.SessionID = session.ID
	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	txn := &Transaction{
		SessionID: session.ID,
		Kind:      KindShop,
		UserID:    user.ID,
		Email:     user.Email,
		OrderID:   orderID,
		Amount:    total,
		Currency:  s.cfg.Currency,
		Status:    StatusPending,
	}
	if err := s.repo.Create(ctx, txn); err != nil {
		return nil, err
	}

	s.logger.Info("shop checkout opened",
		zap.String("session_id", session.ID),
		zap.String("order_id", orderID),
		zap.String("total", total.StringFixed(2)))
	return &CheckoutResponse{URL: session.URL, SessionID: session.ID, OrderID: orderID, Total: &total}, nil
}

// Status reports the locally recorded state of a session. The provider is
// not queried.
func (s *Service) Status(ctx context.Context, caller *auth.User, sessionID string) (*Transaction, error) {
	txn, err := s.repo.GetBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if txn.UserID != caller.ID && !caller.IsAdmin() {
		return nil, ErrNotOwner
	}
	return txn, nil
}

func (s *Service) Revenue(ctx context.Context) (decimal.Decimal, error) {
	return s.repo.PaidRevenue(ctx)
}

func (s *Service) openSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error) {
	session, err := s.provider.CreateCheckoutSession(ctx, req)
	if err != nil {
		s.logger.Error("checkout session failed", zap.Error(err))
		return nil, ErrProviderFailure
	}
	return session, nil
}

func (s *Service) origin(raw string) (string, error) {
	origin := strings.TrimRight(strings.TrimSpace(raw), "/")
	if !validator.Var(origin, "required,http_url") || !s.allowOrigin(origin) {
		return "", ErrInvalidOrigin
	}
	return origin, nil
}

func (s *Service) notify(msg notification.Message) {
	if s.notifier != nil {
		s.notifier.Dispatch(msg)
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, auth.ErrUserNotFound) ||
		errors.Is(err, shop.ErrOrderNotFound)
}
