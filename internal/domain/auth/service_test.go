package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"academy/internal/database/dbtest"
	"academy/internal/notification"
	"academy/internal/pkg/apperr"
	"academy/internal/pkg/credential"
)

type recordingNotifier struct {
	mu   sync.Mutex
	msgs []notification.Message
}

func (n *recordingNotifier) Dispatch(msg notification.Message) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.msgs = append(n.msgs, msg)
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.msgs)
}

type fakeClubs map[string]bool

func (f fakeClubs) ClubExists(_ context.Context, id string) (bool, error) { return f[id], nil }

type testEnv struct {
	svc      *Service
	repo     UserRepository
	creds    *credential.Manager
	notifier *recordingNotifier
}

func setupService(t *testing.T) *testEnv {
	t.Helper()
	db := dbtest.Open(t, &User{})
	repo := NewUserRepository(db)
	creds := credential.NewManager("test-secret", time.Hour, credential.WithCost(bcrypt.MinCost))
	notifier := &recordingNotifier{}
	return &testEnv{
		svc:      NewService(repo, creds, notifier, nil),
		repo:     repo,
		creds:    creds,
		notifier: notifier,
	}
}

func TestRegister_CreatesMemberAndToken(t *testing.T) {
	env := setupService(t)
	ctx := context.Background()

	res, err := env.svc.Register(ctx, RegisterRequest{Email: "  Alice@Example.com ", Password: "secret1", FullName: "Alice"})
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", res.User.Email)
	assert.Equal(t, RoleMembre, res.User.Role)
	assert.False(t, res.User.HasPaidLicense)
	assert.NotEmpty(t, res.User.ID)
	assert.NotEqual(t, "secret1", res.User.PasswordHash)
	assert.Equal(t, 1, env.notifier.count())

	claims, err := env.creds.Decode(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UserID)
}

func TestRegister_DuplicateEmailCaseInsensitive(t *testing.T) {
	env := setupService(t)
	ctx := context.Background()

	_, err := env.svc.Register(ctx, RegisterRequest{Email: "bob@example.com", Password: "secret1", FullName: "Bob"})
	require.NoError(t, err)

	_, err = env.svc.Register(ctx, RegisterRequest{Email: "BOB@Example.COM", Password: "other12", FullName: "Bobby"})
	assert.ErrorIs(t, err, ErrEmailExists)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	users, err := env.repo.List(ctx, UserFilter{})
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestLogin(t *testing.T) {
	env := setupService(t)
	ctx := context.Background()

	_, err := env.svc.Register(ctx, RegisterRequest{Email: "carol@example.com", Password: "secret1", FullName: "Carol"})
	require.NoError(t, err)

	res, err := env.svc.Login(ctx, LoginRequest{Email: "CAROL@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)

	_, err = env.svc.Login(ctx, LoginRequest{Email: "carol@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = env.svc.Login(ctx, LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateUser_RoleValidation(t *testing.T) {
	env := setupService(t)
	ctx := context.Background()

	u, err := env.svc.CreateUser(ctx, NewUser{Email: "i@example.com", Password: "secret1", FullName: "I", Role: "Instructor"})
	require.NoError(t, err)
	assert.Equal(t, RoleInstructeur, u.Role)

	_, err = env.svc.CreateUser(ctx, NewUser{Email: "x@example.com", Password: "secret1", FullName: "X", Role: "superuser"})
	assert.ErrorIs(t, err, ErrInvalidRole)

	exists, err := env.repo.ExistsByEmail(ctx, "x@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUpdateProfile(t *testing.T) {
	env := setupService(t)
	env.svc.WithClubs(fakeClubs{"club-1": true})
	ctx := context.Background()

	res, err := env.svc.Register(ctx, RegisterRequest{Email: "d@example.com", Password: "secret1", FullName: "Dan"})
	require.NoError(t, err)

	city, belt, club := "Lyon", "Ceinture Verte", "club-1"
	u, err := env.svc.UpdateProfile(ctx, res.User.ID, UpdateProfileRequest{City: &city, BeltGrade: &belt, ClubID: &club})
	require.NoError(t, err)
	assert.Equal(t, "Lyon", u.City)
	assert.Equal(t, "Ceinture Verte", u.BeltGrade)
	assert.Equal(t, "Dan", u.FullName)

	bad := "Ceinture Rose"
	_, err = env.svc.UpdateProfile(ctx, res.User.ID, UpdateProfileRequest{BeltGrade: &bad})
	assert.ErrorIs(t, err, ErrInvalidBeltGrade)

	missing := "club-404"
	_, err = env.svc.UpdateProfile(ctx, res.User.ID, UpdateProfileRequest{ClubID: &missing})
	assert.ErrorIs(t, err, ErrClubNotFound)
}

func TestChangePassword(t *testing.T) {
	env := setupService(t)
	ctx := context.Background()

	res, err := env.svc.Register(ctx, RegisterRequest{Email: "e@example.com", Password: "secret1", FullName: "Eve"})
	require.NoError(t, err)

	err = env.svc.ChangePassword(ctx, res.User.ID, ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "secret2"})
	assert.ErrorIs(t, err, ErrWrongPassword)

	require.NoError(t, env.svc.ChangePassword(ctx, res.User.ID, ChangePasswordRequest{CurrentPassword: "secret1", NewPassword: "secret2"}))

	_, err = env.svc.Login(ctx, LoginRequest{Email: "e@example.com", Password: "secret2"})
	assert.NoError(t, err)
}

func TestSearchAndDirectory(t *testing.T) {
	env := setupService(t)
	ctx := context.Background()

	me, err := env.svc.CreateUser(ctx, NewUser{Email: "me@example.com", Password: "secret1", FullName: "Martin Me", Role: "membre"})
	require.NoError(t, err)
	_, err = env.svc.CreateUser(ctx, NewUser{Email: "marie@example.com", Password: "secret1", FullName: "Marie Curie", Role: "instructeur"})
	require.NoError(t, err)
	_, err = env.svc.CreateUser(ctx, NewUser{Email: "dt@example.com", Password: "secret1", FullName: "Paul", Role: "directeur_technique"})
	require.NoError(t, err)

	_, err = env.svc.Search(ctx, me.ID, "m")
	assert.ErrorIs(t, err, ErrSearchTooShort)

	found, err := env.svc.Search(ctx, me.ID, "MAR")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Marie Curie", found[0].FullName)

	all, err := env.svc.Directory(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	instructors, err := env.svc.Directory(ctx, "instructor")
	require.NoError(t, err)
	require.Len(t, instructors, 1)
	assert.Equal(t, RoleInstructeur, instructors[0].Role)

	_, err = env.svc.Directory(ctx, "admin")
	assert.ErrorIs(t, err, ErrInvalidRole)
}
