package membership

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"academy/internal/database/dbtest"
	"academy/internal/domain/auth"
	"academy/internal/notification"
	"academy/internal/pkg/credential"
)

type recordingNotifier struct {
	mu       sync.Mutex
	subjects []string
}

func (n *recordingNotifier) Dispatch(msg notification.Message) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subjects = append(n.subjects, msg.Subject)
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subjects)
}

type testEnv struct {
	svc      *Service
	accounts *auth.Service
	notifier *recordingNotifier
	admin    *auth.User
}

func setup(t *testing.T) *testEnv {
	t.Helper()
	db := dbtest.Open(t, &auth.User{}, &Application{})
	creds := credential.NewManager("test-secret", time.Hour, credential.WithCost(bcrypt.MinCost))
	accounts := auth.NewService(auth.NewUserRepository(db), creds, nil, nil)
	notifier := &recordingNotifier{}

	admin, err := accounts.CreateUser(context.Background(), auth.NewUser{
		Email: "admin@academy.example", Password: "admin-pass", FullName: "Admin", Role: "admin",
	})
	require.NoError(t, err)

	return &testEnv{
		svc:      NewService(NewRepository(db), accounts, creds, notifier, nil),
		accounts: accounts,
		notifier: notifier,
		admin:    admin,
	}
}

func applyRequest(email string) ApplyRequest {
	return ApplyRequest{
		FullName: "Marc Dupont",
		Email:    email,
		Password: "secret12",
		Phone:    "0611223344",
		City:     "Paris",
		Country:  "France",
	}
}

func TestApply_StoresHashedPassword(t *testing.T) {
	env := setup(t)

	app, err := env.svc.Apply(context.Background(), applyRequest("Marc@Example.com"))
	require.NoError(t, err)

	assert.Equal(t, StatusPending, app.Status)
	assert.Equal(t, "marc@example.com", app.Email)
	assert.NotEqual(t, "secret12", app.PasswordHash)
	assert.Equal(t, 1, env.notifier.count())
}

func TestApply_DuplicatePendingRejected(t *testing.T) {
	env := setup(t)
	ctx := context.Background()

	_, err := env.svc.Apply(ctx, applyRequest("marc@example.com"))
	require.NoError(t, err)

	_, err = env.svc.Apply(ctx, applyRequest("MARC@example.com"))
	assert.ErrorIs(t, err, ErrAlreadyApplied)
}

func TestApply_ExistingAccountRejected(t *testing.T) {
	env := setup(t)

	_, err := env.svc.Apply(context.Background(), applyRequest("admin@academy.example"))
	assert.ErrorIs(t, err, ErrEmailRegistered)
}

func TestApprove_CreatesMemberWhoCanLogIn(t *testing.T) {
	env := setup(t)
	ctx := context.Background()

	app, err := env.svc.Apply(ctx, applyRequest("marc@example.com"))
	require.NoError(t, err)

	user, err := env.svc.Approve(ctx, env.admin, app.ID)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleMembre, user.Role)
	assert.Equal(t, "Paris", user.City)

	res, err := env.accounts.Login(ctx, auth.LoginRequest{Email: "marc@example.com", Password: "secret12"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, res.User.ID)

	approved, err := env.svc.List(ctx, string(StatusApproved))
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, user.ID, approved[0].UserID)
	assert.Equal(t, env.admin.ID, approved[0].ReviewedBy)
	assert.NotNil(t, approved[0].ReviewedAt)
}

func TestApprove_OnlyOnce(t *testing.T) {
	env := setup(t)
	ctx := context.Background()

	app, err := env.svc.Apply(ctx, applyRequest("marc@example.com"))
	require.NoError(t, err)
	_, err = env.svc.Approve(ctx, env.admin, app.ID)
	require.NoError(t, err)

	_, err = env.svc.Approve(ctx, env.admin, app.ID)
	assert.ErrorIs(t, err, ErrNotPending)

	err = env.svc.Reject(ctx, env.admin, app.ID, "late")
	assert.ErrorIs(t, err, ErrNotPending)
}

func TestReject_KeepsReasonAndCreatesNoAccount(t *testing.T) {
	env := setup(t)
	ctx := context.Background()

	app, err := env.svc.Apply(ctx, applyRequest("marc@example.com"))
	require.NoError(t, err)

	require.NoError(t, env.svc.Reject(ctx, env.admin, app.ID, "  incomplete file "))

	rejected, err := env.svc.List(ctx, string(StatusRejected))
	require.NoError(t, err)
	require.Len(t, rejected, 1)
	assert.Equal(t, "incomplete file", rejected[0].RejectionReason)

	exists, err := env.accounts.EmailRegistered(ctx, "marc@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	// a rejected applicant may apply again
	_, err = env.svc.Apply(ctx, applyRequest("marc@example.com"))
	assert.NoError(t, err)
}

func TestApprove_UnknownApplication(t *testing.T) {
	env := setup(t)

	_, err := env.svc.Approve(context.Background(), env.admin, "missing")
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestList_InvalidStatus(t *testing.T) {
	env := setup(t)

	_, err := env.svc.List(context.Background(), "archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
