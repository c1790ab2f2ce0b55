package shop

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	applogger "academy/internal/pkg/logger"
	"academy/internal/pkg/slugs"
)

type Service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) *Service {
	logger = applogger.OrNop(logger)
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Catalogue(ctx context.Context, category string) ([]Product, error) {
	return s.repo.ListProducts(ctx, ProductFilter{Category: strings.TrimSpace(category), ActiveOnly: true})
}

// PublicProduct hides inactive products behind NotFound.
func (s *Service) PublicProduct(ctx context.Context, id string) (*Product, error) {
	p, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.Active {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *Service) AdminProducts(ctx context.Context, category string) ([]Product, error) {
	return s.repo.ListProducts(ctx, ProductFilter{Category: strings.TrimSpace(category)})
}

func (s *Service) Product(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetProduct(ctx, id)
}

func (s *Service) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	if !req.Price.IsPositive() {
		return nil, ErrInvalidPrice
	}
	slug, err := slugs.Unique(ctx, req.Name, s.repo.SlugTaken)
	if err != nil {
		return nil, err
	}

	p := &Product{
		Name:        strings.TrimSpace(req.Name),
		Slug:        slug,
		Description: req.Description,
		Category:    strings.TrimSpace(req.Category),
		Price:       req.Price.Round(2),
		Stock:       req.Stock,
		Sizes:       cleanSizes(req.Sizes),
		ImageURL:    req.ImageURL,
		Active:      req.Active == nil || *req.Active,
	}
	if err := s.repo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Info("product created", zap.String("product_id", p.ID), zap.String("slug", p.Slug))
	return p, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (*Product, error) {
	if _, err := s.repo.GetProduct(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Category != nil {
		fields["category"] = strings.TrimSpace(*req.Category)
	}
	if req.Price != nil {
		if !req.Price.IsPositive() {
			return nil, ErrInvalidPrice
		}
		fields["price"] = req.Price.Round(2)
	}
	if req.Stock != nil {
		fields["stock"] = *req.Stock
	}
	if req.Sizes != nil {
		raw, err := json.Marshal(cleanSizes(req.Sizes))
		if err != nil {
			return nil, err
		}
		fields["sizes"] = string(raw)
	}
	if req.ImageURL != nil {
		fields["image_url"] = strings.TrimSpace(*req.ImageURL)
	}
	if req.Active != nil {
		fields["active"] = *req.Active
	}

	if err := s.repo.UpdateProduct(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.repo.GetProduct(ctx, id)
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	return s.repo.DeleteProduct(ctx, id)
}

// Quote validates a cart against the catalogue without reserving stock.
func (s *Service) Quote(ctx context.Context, items []CartItem) (*Quote, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	products, err := s.repo.GetProducts(ctx, ids)
	if err != nil {
		return nil, err
	}

	// the same product may appear on several lines (different sizes)
	wanted := map[string]int{}
	q := &Quote{Subtotal: decimal.Zero}
	for _, it := range items {
		p, ok := products[it.ProductID]
		if !ok || !p.Active {
			return nil, ErrProductNotFound.WithDetails(map[string]string{"product_id": it.ProductID})
		}
		if it.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		size := strings.TrimSpace(it.Size)
		if !p.HasSize(size) {
			return nil, ErrInvalidSize.WithDetails(map[string]string{"product_id": p.ID, "size": size})
		}
		wanted[p.ID] += it.Quantity
		if wanted[p.ID] > p.Stock {
			return nil, ErrInsufficientStock.WithDetails(map[string]any{"product_id": p.ID, "available": p.Stock})
		}

		line := p.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		q.Lines = append(q.Lines, QuoteLine{Product: p, Size: size, Quantity: it.Quantity, LineTotal: line})
		q.Subtotal = q.Subtotal.Add(line)
	}
	return q, nil
}

func (s *Service) MyOrders(ctx context.Context, userID string) ([]Order, error) {
	return s.repo.ListOrders(ctx, userID, "")
}

func (s *Service) AdminOrders(ctx context.Context, status string) ([]Order, error) {
	st := OrderStatus(strings.TrimSpace(status))
	if st != "" && !validStatus(st) {
		return nil, ErrInvalidStatus
	}
	return s.repo.ListOrders(ctx, "", st)
}

// UpdateOrderStatus applies an admin fulfilment step.
func (s *Service) UpdateOrderStatus(ctx context.Context, id, status string) (*Order, error) {
	to := OrderStatus(strings.TrimSpace(status))
	if !validStatus(to) {
		return nil, ErrInvalidStatus
	}
	o, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if nextStatus[o.Status] != to {
		return nil, ErrInvalidTransition
	}

	ok, err := s.repo.TransitionOrder(ctx, id, o.Status, to)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidTransition
	}
	s.logger.Info("order status changed", zap.String("order_id", id), zap.String("from", string(o.Status)), zap.String("to", string(to)))
	return s.repo.GetOrder(ctx, id)
}

func validStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderPaid, OrderExpired, OrderShipped, OrderDelivered:
		return true
	}
	return false
}

func cleanSizes(sizes []string) []string {
	out := make([]string, 0, len(sizes))
	for _, s := range sizes {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
