package club

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"academy/internal/domain/auth"
	applogger "academy/internal/pkg/logger"
	"academy/internal/pkg/slugs"
)

// UserLookup resolves technical director ids.
type UserLookup interface {
	GetByID(ctx context.Context, id string) (*auth.User, error)
	List(ctx context.Context, f auth.UserFilter) ([]auth.User, error)
}

type Service struct {
	repo   Repository
	users  UserLookup
	logger *zap.Logger
}

func NewService(repo Repository, users UserLookup, logger *zap.Logger) *Service {
	logger = applogger.OrNop(logger)
	return &Service{repo: repo, users: users, logger: logger}
}

func (s *Service) List(ctx context.Context, f Filter) ([]Club, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, id string) (*Club, error) {
	return s.repo.GetByID(ctx, id)
}

// ClubExists satisfies auth.ClubLookup.
func (s *Service) ClubExists(ctx context.Context, id string) (bool, error) {
	return s.repo.Exists(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateClubRequest) (*Club, error) {
	if err := s.checkDirector(ctx, req.TechnicalDirectorID); err != nil {
		return nil, err
	}

	slug, err := slugs.Unique(ctx, req.Name+" "+req.City, s.repo.SlugTaken)
	if err != nil {
		return nil, err
	}

	c := &Club{
		Name:                strings.TrimSpace(req.Name),
		Slug:                slug,
		City:                strings.TrimSpace(req.City),
		Country:             strings.TrimSpace(req.Country),
		Address:             req.Address,
		Phone:               req.Phone,
		Email:               strings.ToLower(strings.TrimSpace(req.Email)),
		Website:             req.Website,
		Description:         req.Description,
		Schedule:            req.Schedule,
		LogoURL:             req.LogoURL,
		TechnicalDirectorID: req.TechnicalDirectorID,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	s.logger.Info("club created", zap.String("club_id", c.ID), zap.String("slug", c.Slug))
	return c, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateClubRequest) (*Club, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if req.TechnicalDirectorID != nil {
		if err := s.checkDirector(ctx, *req.TechnicalDirectorID); err != nil {
			return nil, err
		}
	}

	fields := map[string]any{}
	set := func(col string, v *string) {
		if v != nil {
			fields[col] = strings.TrimSpace(*v)
		}
	}
	set("name", req.Name)
	set("city", req.City)
	set("country", req.Country)
	set("address", req.Address)
	set("phone", req.Phone)
	set("email", req.Email)
	set("website", req.Website)
	set("description", req.Description)
	set("schedule", req.Schedule)
	set("logo_url", req.LogoURL)
	set("technical_director_id", req.TechnicalDirectorID)

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Directors lists technical directors with the size of their network.
func (s *Service) Directors(ctx context.Context) ([]Director, error) {
	users, err := s.users.List(ctx, auth.UserFilter{Role: auth.RoleDirecteurTechnique})
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(users))
	for i := range users {
		ids = append(ids, users[i].ID)
	}
	stats, err := s.repo.DirectorStats(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]Director, 0, len(users))
	for i := range users {
		out = append(out, Director{PublicProfile: users[i].Public(), DirectorStats: stats[users[i].ID]})
	}
	return out, nil
}

func (s *Service) checkDirector(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	_, err := s.users.GetByID(ctx, id)
	if errors.Is(err, auth.ErrUserNotFound) {
		return ErrDirectorNotFound
	}
	return err
}
