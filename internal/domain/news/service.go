package news

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"academy/internal/domain/auth"
	applogger "academy/internal/pkg/logger"
	"academy/internal/pkg/slugs"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type Service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) *Service {
	logger = applogger.OrNop(logger)
	return &Service{repo: repo, now: time.Now, logger: logger}
}

func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "draft", "brouillon":
		return StatusDraft, nil
	case "published", "publié", "publie":
		return StatusPublished, nil
	}
	return "", ErrInvalidStatus
}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.TrimSpace(s))
	if !c.Valid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

// ListPublished returns published articles, newest first.
func (s *Service) ListPublished(ctx context.Context, category string, limit int) ([]Article, error) {
	f := Filter{Status: StatusPublished, Limit: clampLimit(limit)}
	if category != "" {
		c, err := ParseCategory(category)
		if err != nil {
			return nil, err
		}
		f.Category = c
	}
	return s.repo.List(ctx, f)
}

// ReadPublished returns a published article and counts the view. Drafts
// are reported as missing.
func (s *Service) ReadPublished(ctx context.Context, id string) (*Article, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Status != StatusPublished {
		return nil, ErrNewsNotFound
	}
	if err := s.repo.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	a.Views++
	return a, nil
}

func (s *Service) AdminList(ctx context.Context, status string) ([]Article, error) {
	f := Filter{Limit: maxListLimit}
	if status != "" {
		st, err := ParseStatus(status)
		if err != nil {
			return nil, err
		}
		f.Status = st
	}
	return s.repo.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, id string) (*Article, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, author *auth.User, req CreateRequest) (*Article, error) {
	category, err := ParseCategory(req.Category)
	if err != nil {
		return nil, err
	}
	status, err := ParseStatus(req.Status)
	if err != nil {
		return nil, err
	}

	slug, err := slugs.Unique(ctx, req.Title, s.repo.SlugTaken)
	if err != nil {
		return nil, err
	}

	a := &Article{
		Title:      strings.TrimSpace(req.Title),
		Slug:       slug,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		Category:   category,
		Status:     status,
		ImageURL:   req.ImageURL,
		AuthorID:   author.ID,
		AuthorName: author.FullName,
	}
	if status == StatusPublished {
		now := s.now().UTC()
		a.PublishedAt = &now
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	s.logger.Info("news created", zap.String("news_id", a.ID), zap.String("status", string(a.Status)))
	return a, nil
}

// Update applies the given fields. The first transition to published
// stamps published_at; later republishing keeps the original date.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*Article, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Excerpt != nil {
		fields["excerpt"] = *req.Excerpt
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
	}
	if req.Category != nil {
		c, err := ParseCategory(*req.Category)
		if err != nil {
			return nil, err
		}
		fields["category"] = c
	}
	if req.Status != nil {
		st, err := ParseStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		fields["status"] = st
		if st == StatusPublished && existing.PublishedAt == nil {
			fields["published_at"] = s.now().UTC()
		}
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
