package club

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"academy/internal/domain/auth"
)

type Repository interface {
	Create(ctx context.Context, c *Club) error
	GetByID(ctx context.Context, id string) (*Club, error)
	SlugTaken(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, f Filter) ([]Club, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	// DirectorStats counts clubs and member accounts under each director.
	DirectorStats(ctx context.Context, directorIDs []string) (map[string]DirectorStats, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *Club) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) GetByID(ctx context.Context, id string) (*Club, error) {
	var c Club
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrClubNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) SlugTaken(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Club{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (r *repository) List(ctx context.Context, f Filter) ([]Club, error) {
	q := r.db.WithContext(ctx).Model(&Club{})
	if f.City != "" {
		q = q.Where("city = ?", f.City)
	}
	if f.Country != "" {
		q = q.Where("country = ?", f.Country)
	}
	var clubs []Club
	err := q.Order("name ASC").Find(&clubs).Error
	return clubs, err
}

func (r *repository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).Model(&Club{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrClubNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Club{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrClubNotFound
	}
	return nil
}

func (r *repository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Club{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *repository) DirectorStats(ctx context.Context, directorIDs []string) (map[string]DirectorStats, error) {
	out := make(map[string]DirectorStats, len(directorIDs))
	if len(directorIDs) == 0 {
		return out, nil
	}

	type row struct {
		DirectorID string
		Total      int64
	}
	var clubs []row
	err := r.db.WithContext(ctx).Model(&Club{}).
		Select("technical_director_id AS director_id, COUNT(*) AS total").
		Where("technical_director_id IN ?", directorIDs).
		Group("technical_director_id").
		Scan(&clubs).Error
	if err != nil {
		return nil, err
	}
	var members []row
	err = r.db.WithContext(ctx).Model(&auth.User{}).
		Select("clubs.technical_director_id AS director_id, COUNT(*) AS total").
		Joins("JOIN clubs ON clubs.id = users.club_id").
		Where("users.role = ? AND clubs.technical_director_id IN ?", auth.RoleMembre, directorIDs).
		Group("clubs.technical_director_id").
		Scan(&members).Error
	if err != nil {
		return nil, err
	}

	for _, c := range clubs {
		st := out[c.DirectorID]
		st.ClubsCount = c.Total
		out[c.DirectorID] = st
	}
	for _, m := range members {
		st := out[m.DirectorID]
		st.MembersCount = m.Total
		out[m.DirectorID] = st
	}
	return out, nil
}
