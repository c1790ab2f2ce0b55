package membership

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, a *Application) error
	GetByID(ctx context.Context, id string) (*Application, error)
	PendingExists(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, status Status) ([]Application, error)
	// Resolve moves a pending application to status. It reports
	// ErrNotPending when the row was already reviewed.
	Resolve(ctx context.Context, id string, status Status, fields map[string]any) error
	CountPending(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) GetByID(ctx context.Context, id string) (*Application, error) {
	var a Application
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) PendingExists(ctx context.Context, email string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Application{}).
		Where("email = ? AND status = ?", email, StatusPending).
		Count(&n).Error
	return n > 0, err
}

func (r *repository) List(ctx context.Context, status Status) ([]Application, error) {
	q := r.db.WithContext(ctx).Model(&Application{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var out []Application
	err := q.Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *repository) Resolve(ctx context.Context, id string, status Status, fields map[string]any) error {
	updates := map[string]any{"status": status, "reviewed_at": time.Now().UTC()}
	for k, v := range fields {
		updates[k] = v
	}

	res := r.db.WithContext(ctx).Model(&Application{}).
		Where("id = ? AND status = ?", id, StatusPending).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotPending
	}
	return nil
}

func (r *repository) CountPending(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Application{}).Where("status = ?", StatusPending).Count(&n).Error
	return n, err
}
