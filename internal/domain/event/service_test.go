package event

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academy/internal/database/dbtest"
	"academy/internal/domain"
	"academy/internal/domain/auth"
)

var now = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func setupService(t *testing.T) *Service {
	t.Helper()
	db := dbtest.Open(t, &Event{}, &Registration{})
	svc := NewService(NewRepository(db), nil)
	svc.now = func() time.Time { return now }
	return svc
}

func member(n int) *auth.User {
	return &auth.User{
		Document: domain.Document{ID: fmt.Sprintf("user-%d", n)},
		Email:    fmt.Sprintf("m%d@example.com", n),
		FullName: fmt.Sprintf("Member %d", n),
		Role:     auth.RoleMembre,
	}
}

func TestRegister_CapacityAndDuplicates(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	admin := &auth.User{Document: domain.Document{ID: "admin"}, Role: auth.RoleAdmin}

	e, err := svc.Create(ctx, admin, CreateRequest{Title: "Stage", StartsAt: now.Add(48 * time.Hour), Capacity: 2})
	require.NoError(t, err)

	_, err = svc.Register(ctx, member(1), e.ID)
	require.NoError(t, err)

	_, err = svc.Register(ctx, member(1), e.ID)
	assert.ErrorIs(t, err, ErrAlreadyRegistered)

	_, err = svc.Register(ctx, member(2), e.ID)
	require.NoError(t, err)

	_, err = svc.Register(ctx, member(3), e.ID)
	assert.ErrorIs(t, err, ErrEventFull)

	got, err := svc.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.RegisteredCount)

	require.NoError(t, svc.Unregister(ctx, member(2), e.ID))
	_, err = svc.Register(ctx, member(3), e.ID)
	assert.NoError(t, err)
}

func TestRegister_PastEvent(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	admin := &auth.User{Document: domain.Document{ID: "admin"}, Role: auth.RoleAdmin}

	e, err := svc.Create(ctx, admin, CreateRequest{Title: "Passé", StartsAt: now.Add(-time.Hour)})
	require.NoError(t, err)

	_, err = svc.Register(ctx, member(1), e.ID)
	assert.ErrorIs(t, err, ErrEventPast)
}

func TestList_UpcomingFirst(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	admin := &auth.User{Document: domain.Document{ID: "admin"}, Role: auth.RoleAdmin}

	_, err := svc.Create(ctx, admin, CreateRequest{Title: "Later", StartsAt: now.Add(72 * time.Hour)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, admin, CreateRequest{Title: "Soon", StartsAt: now.Add(time.Hour)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, admin, CreateRequest{Title: "Done", StartsAt: now.Add(-time.Hour)})
	require.NoError(t, err)

	upcoming, err := svc.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "Soon", upcoming[0].Title)

	past, err := svc.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, past, 1)
	assert.Equal(t, "Done", past[0].Title)
}

func TestCreate_InvalidSchedule(t *testing.T) {
	svc := setupService(t)
	admin := &auth.User{Document: domain.Document{ID: "admin"}, Role: auth.RoleAdmin}

	_, err := svc.Create(context.Background(), admin, CreateRequest{Title: "Bad", StartsAt: now, EndsAt: now.Add(-time.Minute)})
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}
