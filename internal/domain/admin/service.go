package admin

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"academy/internal/domain/auth"
	applogger "academy/internal/pkg/logger"
)

// Accounts is the account surface of auth.Service used here.
type Accounts interface {
	CreateUser(ctx context.Context, in auth.NewUser) (*auth.User, error)
	UpdateProfile(ctx context.Context, userID string, req auth.UpdateProfileRequest) (*auth.User, error)
	SetPassword(ctx context.Context, userID, password string) error
}

type PendingCounter interface {
	CountPending(ctx context.Context) (int64, error)
}

type RevenueSource interface {
	Revenue(ctx context.Context) (decimal.Decimal, error)
}

type Service struct {
	users    auth.UserRepository
	accounts Accounts
	stats    StatsRepository
	pending  PendingCounter
	revenue  RevenueSource
	currency string
	logger   *zap.Logger
	now      func() time.Time
}

func NewService(users auth.UserRepository, accounts Accounts, stats StatsRepository, pending PendingCounter, revenue RevenueSource, currency string, logger *zap.Logger) *Service {
	logger = applogger.OrNop(logger)
	return &Service{
		users:    users,
		accounts: accounts,
		stats:    stats,
		pending:  pending,
		revenue:  revenue,
		currency: currency,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *Service) ListUsers(ctx context.Context, role, search string) ([]auth.User, error) {
	f := auth.UserFilter{Search: search}
	if role != "" {
		r, err := auth.ParseRole(role)
		if err != nil {
			return nil, err
		}
		f.Role = r
	}
	return s.users.List(ctx, f)
}

func (s *Service) GetUser(ctx context.Context, id string) (*auth.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *Service) CreateUser(ctx context.Context, req CreateUserRequest) (*auth.User, error) {
	u, err := s.accounts.CreateUser(ctx, auth.NewUser{
		Email:     req.Email,
		Password:  req.Password,
		FullName:  req.FullName,
		Role:      req.Role,
		Phone:     req.Phone,
		City:      req.City,
		Country:   req.Country,
		ClubID:    req.ClubID,
		BeltGrade: req.BeltGrade,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("user created by admin", zap.String("user_id", u.ID), zap.String("role", string(u.Role)))
	return u, nil
}

func (s *Service) UpdateUser(ctx context.Context, id string, req auth.UpdateProfileRequest) (*auth.User, error) {
	if _, err := s.users.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.accounts.UpdateProfile(ctx, id, req)
}

func (s *Service) DeleteUser(ctx context.Context, caller *auth.User, id string) error {
	if caller.ID == id {
		return ErrCannotDeleteSelf
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("user deleted", zap.String("user_id", id), zap.String("by", caller.ID))
	return nil
}

func (s *Service) SetRole(ctx context.Context, caller *auth.User, id, role string) (*auth.User, error) {
	r, err := auth.ParseRole(role)
	if err != nil {
		return nil, err
	}
	if caller.ID == id && r != auth.RoleAdmin {
		return nil, ErrCannotDemoteSelf
	}
	if err := s.users.UpdateFields(ctx, id, map[string]any{"role": r}); err != nil {
		return nil, err
	}
	s.logger.Info("role changed", zap.String("user_id", id), zap.String("role", string(r)), zap.String("by", caller.ID))
	return s.users.GetByID(ctx, id)
}

func (s *Service) SetPassword(ctx context.Context, id, password string) error {
	if _, err := s.users.GetByID(ctx, id); err != nil {
		return err
	}
	return s.accounts.SetPassword(ctx, id, password)
}

// SetSubscription overrides the payment flags, e.g. for offline payments.
func (s *Service) SetSubscription(ctx context.Context, id string, req SubscriptionRequest) (*auth.User, error) {
	fields := map[string]any{}
	if req.HasPaidLicense != nil {
		fields["has_paid_license"] = *req.HasPaidLicense
	}
	if req.IsPremium != nil {
		fields["is_premium"] = *req.IsPremium
	}
	if _, err := s.users.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.users.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, id)
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	var (
		st  = &Stats{Currency: s.currency}
		err error
	)
	if st.TotalUsers, err = s.stats.CountUsers(ctx); err != nil {
		return nil, err
	}
	if st.UsersByRole, err = s.stats.CountByRole(ctx); err != nil {
		return nil, err
	}
	st.TotalMembers = st.UsersByRole[auth.RoleMembre]
	if st.PaidLicenses, err = s.stats.CountMembersWhere(ctx, "has_paid_license"); err != nil {
		return nil, err
	}
	if st.PremiumMembers, err = s.stats.CountMembersWhere(ctx, "is_premium"); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	if st.NewMembersThisMonth, err = s.stats.CountMembersSince(ctx, monthStart); err != nil {
		return nil, err
	}
	if st.MembersByCountry, err = s.stats.MembersByCountry(ctx); err != nil {
		return nil, err
	}
	if s.pending != nil {
		if st.PendingApplications, err = s.pending.CountPending(ctx); err != nil {
			return nil, err
		}
	}
	st.Revenue = decimal.Zero
	if s.revenue != nil {
		if st.Revenue, err = s.revenue.Revenue(ctx); err != nil {
			return nil, err
		}
	}
	return st, nil
}
