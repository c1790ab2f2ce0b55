package admin

import (
	"context"
	"time"

	"gorm.io/gorm"

	"academy/internal/domain/auth"
)

// StatsRepository runs the dashboard aggregates over the users table.
type StatsRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context) (map[auth.Role]int64, error)
	CountMembersWhere(ctx context.Context, column string) (int64, error)
	CountMembersSince(ctx context.Context, since time.Time) (int64, error)
	MembersByCountry(ctx context.Context) ([]CountryCount, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) users(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&auth.User{})
}

func (r *statsRepository) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.users(ctx).Count(&n).Error
	return n, err
}

func (r *statsRepository) CountByRole(ctx context.Context) (map[auth.Role]int64, error) {
	var rows []struct {
		Role auth.Role
		N    int64
	}
	if err := r.users(ctx).Select("role, COUNT(*) AS n").Group("role").Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[auth.Role]int64, len(rows))
	for _, row := range rows {
		out[row.Role] = row.N
	}
	return out, nil
}

// CountMembersWhere counts members whose boolean column is set. column is
// always a constant from this package.
func (r *statsRepository) CountMembersWhere(ctx context.Context, column string) (int64, error) {
	var n int64
	err := r.users(ctx).
		Where("role = ?", auth.RoleMembre).
		Where(column+" = ?", true).
		Count(&n).Error
	return n, err
}

func (r *statsRepository) CountMembersSince(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	err := r.users(ctx).
		Where("role = ? AND created_at >= ?", auth.RoleMembre, since).
		Count(&n).Error
	return n, err
}

func (r *statsRepository) MembersByCountry(ctx context.Context) ([]CountryCount, error) {
	var out []CountryCount
	err := r.users(ctx).
		Select("country, COUNT(*) AS count").
		Where("role = ? AND country <> ''", auth.RoleMembre).
		Group("country").
		Order("count DESC, country ASC").
		Scan(&out).Error
	return out, err
}
