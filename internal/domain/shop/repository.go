package shop

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type ProductFilter struct {
	Category   string
	ActiveOnly bool
}

type Repository interface {
	CreateProduct(ctx context.Context, p *Product) error
	GetProduct(ctx context.Context, id string) (*Product, error)
	GetProducts(ctx context.Context, ids []string) (map[string]*Product, error)
	SlugTaken(ctx context.Context, slug string) (bool, error)
	ListProducts(ctx context.Context, f ProductFilter) ([]Product, error)
	UpdateProduct(ctx context.Context, id string, fields map[string]any) error
	DeleteProduct(ctx context.Context, id string) error

	CreateOrder(ctx context.Context, o *Order) error
	GetOrder(ctx context.Context, id string) (*Order, error)
	ListOrders(ctx context.Context, userID string, status OrderStatus) ([]Order, error)
	TransitionOrder(ctx context.Context, id string, from, to OrderStatus) (bool, error)

	// DecrementStock takes qty units, reporting false when fewer remain.
	DecrementStock(ctx context.Context, productID string, qty int) (bool, error)
	// ZeroStock clears stock after an oversell.
	ZeroStock(ctx context.Context, productID string) error
	// ClaimItemStock marks a line as taken from stock, reporting false when
	// an earlier attempt already did.
	ClaimItemStock(ctx context.Context, itemID string) (bool, error)
	ReleaseItemStock(ctx context.Context, itemID string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateProduct(ctx context.Context, p *Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) GetProduct(ctx context.Context, id string) (*Product, error) {
	var p Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) GetProducts(ctx context.Context, ids []string) (map[string]*Product, error) {
	out := make(map[string]*Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []Product
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		out[rows[i].ID] = &rows[i]
	}
	return out, nil
}

func (r *repository) SlugTaken(ctx context.Context, slug string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Product{}).Where("slug = ?", slug).Count(&n).Error
	return n > 0, err
}

func (r *repository) ListProducts(ctx context.Context, f ProductFilter) ([]Product, error) {
	q := r.db.WithContext(ctx).Model(&Product{})
	if f.ActiveOnly {
		q = q.Where("active = ?", true)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	var out []Product
	err := q.Order("name ASC").Find(&out).Error
	return out, err
}

func (r *repository) UpdateProduct(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).Model(&Product{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *repository) DeleteProduct(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *repository) CreateOrder(ctx context.Context, o *Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *repository) GetOrder(ctx context.Context, id string) (*Order, error) {
	var o Order
	err := r.db.WithContext(ctx).Preload("Items").Where("id = ?", id).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) ListOrders(ctx context.Context, userID string, status OrderStatus) ([]Order, error) {
	q := r.db.WithContext(ctx).Model(&Order{}).Preload("Items")
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var out []Order
	err := q.Order("created_at DESC, pk DESC").Find(&out).Error
	return out, err
}

// TransitionOrder moves an order from one status to another, reporting
// false when it was not in from.
func (r *repository) TransitionOrder(ctx context.Context, id string, from, to OrderStatus) (bool, error) {
	fields := map[string]any{"status": to}
	if to == OrderPaid {
		fields["paid_at"] = time.Now().UTC()
	}
	res := r.db.WithContext(ctx).Model(&Order{}).Where("id = ? AND status = ?", id, from).Updates(fields)
	return res.RowsAffected > 0, res.Error
}

func (r *repository) DecrementStock(ctx context.Context, productID string, qty int) (bool, error) {
	res := r.db.WithContext(ctx).Model(&Product{}).
		Where("id = ? AND stock >= ?", productID, qty).
		Update("stock", gorm.Expr("stock - ?", qty))
	return res.RowsAffected > 0, res.Error
}

func (r *repository) ZeroStock(ctx context.Context, productID string) error {
	return r.db.WithContext(ctx).Model(&Product{}).Where("id = ?", productID).Update("stock", 0).Error
}

func (r *repository) ClaimItemStock(ctx context.Context, itemID string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&OrderItem{}).
		Where("id = ? AND stock_taken = ?", itemID, false).
		Update("stock_taken", true)
	return res.RowsAffected > 0, res.Error
}

func (r *repository) ReleaseItemStock(ctx context.Context, itemID string) error {
	return r.db.WithContext(ctx).Model(&OrderItem{}).
		Where("id = ?", itemID).
		Update("stock_taken", false).Error
}
