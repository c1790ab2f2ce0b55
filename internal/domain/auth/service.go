package auth

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"academy/internal/notification"
	applogger "academy/internal/pkg/logger"
)

const maxSearchResults = 20

type Service struct {
	users    UserRepository
	creds    Credentials
	clubs    ClubLookup
	notifier Notifier
	logger   *zap.Logger
}

func NewService(users UserRepository, creds Credentials, notifier Notifier, logger *zap.Logger) *Service {
	logger = applogger.OrNop(logger)
	return &Service{users: users, creds: creds, notifier: notifier, logger: logger}
}

// WithClubs enables club id checks on profile writes.
func (s *Service) WithClubs(clubs ClubLookup) *Service {
	s.clubs = clubs
	return s
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	u, err := s.CreateUser(ctx, NewUser{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Role:     string(RoleMembre),
	})
	if err != nil {
		return nil, err
	}

	token, err := s.creds.Issue(u.ID, u.Email, 0)
	if err != nil {
		return nil, err
	}

	s.notify(notification.Welcome(u.Email, u.FullName))
	s.logger.Info("user registered", zap.String("user_id", u.ID))
	return &AuthResponse{Token: token, User: u}, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !s.creds.Verify(req.Password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.creds.Issue(u.ID, u.Email, 0)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: u}, nil
}

// CreateUser is the single account creation path. The email is
// lower-cased and checked for duplicates before anything is written.
func (s *Service) CreateUser(ctx context.Context, in NewUser) (*User, error) {
	role, err := ParseRole(in.Role)
	if err != nil {
		return nil, err
	}
	if in.BeltGrade != "" && !ValidBeltGrade(in.BeltGrade) {
		return nil, ErrInvalidBeltGrade
	}
	if err := s.checkClub(ctx, in.ClubID); err != nil {
		return nil, err
	}

	email := NormalizeEmail(in.Email)
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	digest := in.PasswordHash
	if digest == "" {
		if digest, err = s.creds.Hash(in.Password); err != nil {
			return nil, err
		}
	}

	u := &User{
		Email:        email,
		PasswordHash: digest,
		FullName:     strings.TrimSpace(in.FullName),
		Role:         role,
		Phone:        strings.TrimSpace(in.Phone),
		City:         strings.TrimSpace(in.City),
		Country:      strings.TrimSpace(in.Country),
		ClubID:       in.ClubID,
		BeltGrade:    in.BeltGrade,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// EmailRegistered reports whether an account already uses email.
func (s *Service) EmailRegistered(ctx context.Context, email string) (bool, error) {
	return s.users.ExistsByEmail(ctx, NormalizeEmail(email))
}

func (s *Service) Me(ctx context.Context, userID string) (*User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*User, error) {
	fields := map[string]any{}
	setTrimmed := func(col string, v *string) {
		if v != nil {
			fields[col] = strings.TrimSpace(*v)
		}
	}
	setTrimmed("full_name", req.FullName)
	setTrimmed("phone", req.Phone)
	setTrimmed("city", req.City)
	setTrimmed("country", req.Country)
	setTrimmed("bio", req.Bio)
	setTrimmed("photo_url", req.PhotoURL)

	if req.BeltGrade != nil {
		if *req.BeltGrade != "" && !ValidBeltGrade(*req.BeltGrade) {
			return nil, ErrInvalidBeltGrade
		}
		fields["belt_grade"] = *req.BeltGrade
	}
	if req.ClubID != nil {
		if err := s.checkClub(ctx, *req.ClubID); err != nil {
			return nil, err
		}
		fields["club_id"] = *req.ClubID
	}

	if err := s.users.UpdateFields(ctx, userID, fields); err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, userID)
}

func (s *Service) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !s.creds.Verify(req.CurrentPassword, u.PasswordHash) {
		return ErrWrongPassword
	}
	return s.SetPassword(ctx, userID, req.NewPassword)
}

// SetPassword replaces the stored digest without checking the old one.
func (s *Service) SetPassword(ctx context.Context, userID, password string) error {
	digest, err := s.creds.Hash(password)
	if err != nil {
		return err
	}
	return s.users.UpdateFields(ctx, userID, map[string]any{"password_hash": digest})
}

func (s *Service) ListMembers(ctx context.Context, f UserFilter) ([]PublicProfile, error) {
	if f.Role == "" {
		f.Role = RoleMembre
	}
	users, err := s.users.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return PublicProfiles(users), nil
}

func (s *Service) GetMember(ctx context.Context, id string) (*PublicProfile, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p := u.Public()
	return &p, nil
}

// Search matches name or email, excluding the caller.
func (s *Service) Search(ctx context.Context, callerID, query string) ([]PublicProfile, error) {
	if len([]rune(strings.TrimSpace(query))) < 2 {
		return nil, ErrSearchTooShort
	}
	users, err := s.users.Search(ctx, query, callerID, maxSearchResults)
	if err != nil {
		return nil, err
	}
	return PublicProfiles(users), nil
}

// Directory lists instructors and directors, optionally for one role.
func (s *Service) Directory(ctx context.Context, role string) ([]PublicProfile, error) {
	f := UserFilter{Roles: []Role{RoleFondateur, RoleDirecteurNational, RoleDirecteurTechnique, RoleInstructeur}}
	if role != "" {
		r, err := ParseRole(role)
		if err != nil {
			return nil, err
		}
		if !r.Listed() {
			return nil, ErrInvalidRole
		}
		f = UserFilter{Role: r}
	}
	users, err := s.users.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return PublicProfiles(users), nil
}

func (s *Service) checkClub(ctx context.Context, clubID string) error {
	if clubID == "" || s.clubs == nil {
		return nil
	}
	ok, err := s.clubs.ClubExists(ctx, clubID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrClubNotFound
	}
	return nil
}

func (s *Service) notify(msg notification.Message) {
	if s.notifier != nil {
		s.notifier.Dispatch(msg)
	}
}
