package event

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, e *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	ListUpcoming(ctx context.Context, from time.Time) ([]Event, error)
	ListPast(ctx context.Context, before time.Time, limit int) ([]Event, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error

	CountRegistrations(ctx context.Context, eventIDs ...string) (map[string]int64, error)
	Register(ctx context.Context, r *Registration) error
	IsRegistered(ctx context.Context, eventID, userID string) (bool, error)
	Unregister(ctx context.Context, eventID, userID string) error
	ListByEvent(ctx context.Context, eventID string) ([]Registration, error)
	ListByUser(ctx context.Context, userID string) ([]Registration, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e *Event) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) GetByID(ctx context.Context, id string) (*Event, error) {
	var e Event
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) ListUpcoming(ctx context.Context, from time.Time) ([]Event, error) {
	var out []Event
	err := r.db.WithContext(ctx).
		Where("starts_at >= ?", from).
		Order("starts_at ASC").
		Find(&out).Error
	return out, err
}

func (r *repository) ListPast(ctx context.Context, before time.Time, limit int) ([]Event, error) {
	var out []Event
	err := r.db.WithContext(ctx).
		Where("starts_at < ?", before).
		Order("starts_at DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *repository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).Model(&Event{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Event{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return r.db.WithContext(ctx).Where("event_id = ?", id).Delete(&Registration{}).Error
}

func (r *repository) CountRegistrations(ctx context.Context, eventIDs ...string) (map[string]int64, error) {
	out := make(map[string]int64, len(eventIDs))
	if len(eventIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		EventID string
		Total   int64
	}
	err := r.db.WithContext(ctx).Model(&Registration{}).
		Select("event_id, COUNT(*) AS total").
		Where("event_id IN ?", eventIDs).
		Group("event_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.EventID] = row.Total
	}
	return out, nil
}

func (r *repository) Register(ctx context.Context, reg *Registration) error {
	err := r.db.WithContext(ctx).Create(reg).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAlreadyRegistered
	}
	return err
}

func (r *repository) IsRegistered(ctx context.Context, eventID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Registration{}).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Unregister(ctx context.Context, eventID, userID string) error {
	res := r.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Delete(&Registration{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRegistrationNotFound
	}
	return nil
}

func (r *repository) ListByEvent(ctx context.Context, eventID string) ([]Registration, error) {
	var out []Registration
	err := r.db.WithContext(ctx).Where("event_id = ?", eventID).Order("created_at ASC").Find(&out).Error
	return out, err
}

func (r *repository) ListByUser(ctx context.Context, userID string) ([]Registration, error) {
	var out []Registration
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&out).Error
	return out, err
}
