package lead

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"academy/internal/notification"
	applogger "academy/internal/pkg/logger"
)

type Notifier interface {
	Dispatch(msg notification.Message)
}

type Service struct {
	repo        *Repository
	notifier    Notifier
	adminNotify string
	logger      *zap.Logger
}

// NewService creates the lead service. adminNotify receives an alert per
// new lead; empty disables the alert.
func NewService(repo *Repository, notifier Notifier, adminNotify string, logger *zap.Logger) *Service {
	logger = applogger.OrNop(logger)
	return &Service{repo: repo, notifier: notifier, adminNotify: adminNotify, logger: logger}
}

// Submit stores a lead from the public form and queues both emails.
func (s *Service) Submit(ctx context.Context, req SubmitRequest, ip, userAgent string) (*Lead, error) {
	personType := PersonType(strings.TrimSpace(req.PersonType))
	if !personType.Valid() {
		return nil, ErrInvalidPersonType
	}

	l := &Lead{
		PersonType:  personType,
		Motivations: cleanList(req.Motivations),
		FullName:    strings.TrimSpace(req.FullName),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:       strings.TrimSpace(req.Phone),
		City:        strings.TrimSpace(req.City),
		Country:     strings.TrimSpace(req.Country),
		Status:      StatusNew,
		Source:      "website",
		IPAddress:   ip,
		UserAgent:   userAgent,
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.Dispatch(notification.LeadConfirmation(l.Email, l.FullName))
		if s.adminNotify != "" {
			s.notifier.Dispatch(notification.LeadAlert(s.adminNotify, notification.LeadSummary{
				FullName:    l.FullName,
				Email:       l.Email,
				Phone:       l.Phone,
				PersonType:  string(l.PersonType),
				City:        l.City,
				Country:     l.Country,
				Motivations: l.Motivations,
			}))
		}
	}

	s.logger.Info("lead submitted", zap.String("lead_id", l.ID), zap.String("person_type", string(l.PersonType)))
	return l, nil
}

func (s *Service) List(ctx context.Context, status, personType string) ([]Lead, error) {
	f := Filter{}
	if status != "" {
		f.Status = Status(status)
		if !f.Status.Valid() {
			return nil, ErrInvalidStatus
		}
	}
	if personType != "" {
		f.PersonType = PersonType(personType)
		if !f.PersonType.Valid() {
			return nil, ErrInvalidPersonType
		}
	}
	return s.repo.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, id string) (*Lead, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*Lead, error) {
	status := Status(strings.TrimSpace(req.Status))
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	fields := map[string]any{"status": status}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}
	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
