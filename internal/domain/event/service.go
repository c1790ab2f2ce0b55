package event

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"academy/internal/domain/auth"
	applogger "academy/internal/pkg/logger"
)

const pastEventsLimit = 50

type Service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) *Service {
	logger = applogger.OrNop(logger)
	return &Service{repo: repo, now: time.Now, logger: logger}
}

// List returns upcoming events soonest first, or recent past events when
// past is set.
func (s *Service) List(ctx context.Context, past bool) ([]Event, error) {
	var (
		events []Event
		err    error
	)
	if past {
		events, err = s.repo.ListPast(ctx, s.now(), pastEventsLimit)
	} else {
		events, err = s.repo.ListUpcoming(ctx, s.now())
	}
	if err != nil {
		return nil, err
	}
	if err := s.withCounts(ctx, events); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Event, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	counts, err := s.repo.CountRegistrations(ctx, e.ID)
	if err != nil {
		return nil, err
	}
	e.RegisteredCount = counts[e.ID]
	return e, nil
}

func (s *Service) Create(ctx context.Context, author *auth.User, req CreateRequest) (*Event, error) {
	ends := req.EndsAt
	if ends.IsZero() {
		ends = req.StartsAt
	}
	if ends.Before(req.StartsAt) {
		return nil, ErrInvalidSchedule
	}

	e := &Event{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Kind:        req.Kind,
		Location:    req.Location,
		City:        req.City,
		Country:     req.Country,
		StartsAt:    req.StartsAt.UTC(),
		EndsAt:      ends.UTC(),
		Capacity:    req.Capacity,
		ImageURL:    req.ImageURL,
		CreatedBy:   author.ID,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	s.logger.Info("event created", zap.String("event_id", e.ID))
	return e, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*Event, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	starts, ends := existing.StartsAt, existing.EndsAt
	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Kind != nil {
		fields["kind"] = *req.Kind
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.City != nil {
		fields["city"] = *req.City
	}
	if req.Country != nil {
		fields["country"] = *req.Country
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
	}
	if req.Capacity != nil {
		fields["capacity"] = *req.Capacity
	}
	if req.StartsAt != nil {
		starts = req.StartsAt.UTC()
		fields["starts_at"] = starts
	}
	if req.EndsAt != nil {
		ends = req.EndsAt.UTC()
		fields["ends_at"] = ends
	}
	if ends.Before(starts) {
		return nil, ErrInvalidSchedule
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Register books a seat for user. Duplicate and capacity checks happen
// before the insert.
func (s *Service) Register(ctx context.Context, user *auth.User, eventID string) (*Registration, error) {
	e, err := s.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !e.StartsAt.After(s.now()) {
		return nil, ErrEventPast
	}

	registered, err := s.repo.IsRegistered(ctx, eventID, user.ID)
	if err != nil {
		return nil, err
	}
	if registered {
		return nil, ErrAlreadyRegistered
	}
	if e.Full() {
		return nil, ErrEventFull
	}

	reg := &Registration{
		EventID:  eventID,
		UserID:   user.ID,
		FullName: user.FullName,
		Email:    user.Email,
	}
	if err := s.repo.Register(ctx, reg); err != nil {
		return nil, err
	}
	s.logger.Info("event registration", zap.String("event_id", eventID), zap.String("user_id", user.ID))
	return reg, nil
}

func (s *Service) Unregister(ctx context.Context, user *auth.User, eventID string) error {
	if _, err := s.repo.GetByID(ctx, eventID); err != nil {
		return err
	}
	return s.repo.Unregister(ctx, eventID, user.ID)
}

func (s *Service) MyRegistrations(ctx context.Context, user *auth.User) ([]RegistrationView, error) {
	regs, err := s.repo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	out := make([]RegistrationView, 0, len(regs))
	for _, reg := range regs {
		view := RegistrationView{Registration: reg}
		if e, err := s.repo.GetByID(ctx, reg.EventID); err == nil {
			view.Event = e
		}
		out = append(out, view)
	}
	return out, nil
}

func (s *Service) EventRegistrations(ctx context.Context, eventID string) ([]Registration, error) {
	if _, err := s.repo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.repo.ListByEvent(ctx, eventID)
}

func (s *Service) withCounts(ctx context.Context, events []Event) error {
	ids := make([]string, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	counts, err := s.repo.CountRegistrations(ctx, ids...)
	if err != nil {
		return err
	}
	for i := range events {
		events[i].RegisteredCount = counts[events[i].ID]
	}
	return nil
}
