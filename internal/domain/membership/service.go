package membership

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"academy/internal/domain/auth"
	"academy/internal/notification"
	applogger "academy/internal/pkg/logger"
)

type Accounts interface {
	EmailRegistered(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, in auth.NewUser) (*auth.User, error)
}

type Hasher interface {
	Hash(password string) (string, error)
}

type Notifier interface {
	Dispatch(msg notification.Message)
}

type Service struct {
	repo     Repository
	accounts Accounts
	hasher   Hasher
	notifier Notifier
	logger   *zap.Logger
}

func NewService(repo Repository, accounts Accounts, hasher Hasher, notifier Notifier, logger *zap.Logger) *Service {
	logger = applogger.OrNop(logger)
	return &Service{repo: repo, accounts: accounts, hasher: hasher, notifier: notifier, logger: logger}
}

// Apply records a public membership request. The password is hashed
// immediately and reused verbatim when the application is approved.
func (s *Service) Apply(ctx context.Context, req ApplyRequest) (*Application, error) {
	email := auth.NormalizeEmail(req.Email)

	registered, err := s.accounts.EmailRegistered(ctx, email)
	if err != nil {
		return nil, err
	}
	if registered {
		return nil, ErrEmailRegistered
	}
	pending, err := s.repo.PendingExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, ErrAlreadyApplied
	}

	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	a := &Application{
		FullName:     strings.TrimSpace(req.FullName),
		Email:        email,
		PasswordHash: digest,
		Phone:        strings.TrimSpace(req.Phone),
		City:         strings.TrimSpace(req.City),
		Country:      strings.TrimSpace(req.Country),
		ClubID:       req.ClubID,
		Message:      req.Message,
		Status:       StatusPending,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	s.notify(notification.MembershipReceived(a.Email, a.FullName))
	s.logger.Info("membership application received", zap.String("application_id", a.ID))
	return a, nil
}

func (s *Service) List(ctx context.Context, status string) ([]Application, error) {
	st := Status(status)
	if st != "" && !st.Valid() {
		return nil, ErrInvalidStatus
	}
	return s.repo.List(ctx, st)
}

// Approve creates the member account and closes the application.
func (s *Service) Approve(ctx context.Context, reviewer *auth.User, id string) (*auth.User, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Status != StatusPending {
		return nil, ErrNotPending
	}

	user, err := s.accounts.CreateUser(ctx, auth.NewUser{
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		FullName:     a.FullName,
		Role:         string(auth.RoleMembre),
		Phone:        a.Phone,
		City:         a.City,
		Country:      a.Country,
		ClubID:       a.ClubID,
	})
	if errors.Is(err, auth.ErrEmailExists) {
		return nil, ErrEmailRegistered
	}
	if err != nil {
		return nil, err
	}

	if err := s.repo.Resolve(ctx, id, StatusApproved, map[string]any{
		"reviewed_by": reviewer.ID,
		"user_id":     user.ID,
	}); err != nil {
		return nil, err
	}

	s.notify(notification.MembershipApproved(a.Email, a.FullName))
	s.logger.Info("membership approved", zap.String("application_id", id), zap.String("user_id", user.ID))
	return user, nil
}

func (s *Service) Reject(ctx context.Context, reviewer *auth.User, id, reason string) error {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a.Status != StatusPending {
		return ErrNotPending
	}

	if err := s.repo.Resolve(ctx, id, StatusRejected, map[string]any{
		"reviewed_by":      reviewer.ID,
		"rejection_reason": strings.TrimSpace(reason),
	}); err != nil {
		return err
	}

	s.notify(notification.MembershipRejected(a.Email, a.FullName, reason))
	s.logger.Info("membership rejected", zap.String("application_id", id))
	return nil
}

func (s *Service) notify(msg notification.Message) {
	if s.notifier != nil {
		s.notifier.Dispatch(msg)
	}
}

func (s *Service) CountPending(ctx context.Context) (int64, error) {
	return s.repo.CountPending(ctx)
}
