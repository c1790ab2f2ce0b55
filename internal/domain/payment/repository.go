package payment

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, t *Transaction) error
	GetBySession(ctx context.Context, sessionID string) (*Transaction, error)
	// Transition moves a transaction between states, reporting false when
	// it was no longer in from.
	Transition(ctx context.Context, sessionID string, from, to Status) (bool, error)
	PaidRevenue(ctx context.Context) (decimal.Decimal, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) GetBySession(ctx context.Context, sessionID string) (*Transaction, error) {
	var t Transaction
	err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) Transition(ctx context.Context, sessionID string, from, to Status) (bool, error) {
	fields := map[string]any{"status": to}
	switch to {
	case StatusPaid:
		fields["paid_at"] = time.Now().UTC()
	case StatusPending:
		fields["paid_at"] = nil
	}
	res := r.db.WithContext(ctx).Model(&Transaction{}).
		Where("session_id = ? AND status = ?", sessionID, from).
		Updates(fields)
	return res.RowsAffected > 0, res.Error
}

func (r *repository) PaidRevenue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("status = ?", StatusPaid).
		Row().Scan(&total)
	return total, err
}
