package club

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academy/internal/database/dbtest"
	"academy/internal/domain/auth"
)

func setupService(t *testing.T) (*Service, *auth.User) {
	t.Helper()
	db := dbtest.Open(t, &Club{}, &auth.User{})
	users := auth.NewUserRepository(db)

	director := &auth.User{Email: "dt@example.com", PasswordHash: "x", FullName: "DT", Role: auth.RoleDirecteurTechnique}
	require.NoError(t, users.Create(context.Background(), director))

	return NewService(NewRepository(db), users, nil), director
}

func TestCreateClub(t *testing.T) {
	svc, director := setupService(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, CreateClubRequest{Name: "Dojo Central", City: "Paris", Country: "France", TechnicalDirectorID: director.ID})
	require.NoError(t, err)
	assert.Equal(t, "dojo-central-paris", c.Slug)

	again, err := svc.Create(ctx, CreateClubRequest{Name: "Dojo Central", City: "Paris", Country: "France"})
	require.NoError(t, err)
	assert.Equal(t, "dojo-central-paris-2", again.Slug)

	ok, err := svc.ClubExists(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCreateClub_UnknownDirector(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.Create(context.Background(), CreateClubRequest{Name: "Dojo", City: "Nice", Country: "France", TechnicalDirectorID: "missing"})
	assert.ErrorIs(t, err, ErrDirectorNotFound)

	clubs, err := svc.List(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Empty(t, clubs)
}

func TestUpdateAndDelete(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, CreateClubRequest{Name: "Dojo Sud", City: "Marseille", Country: "France"})
	require.NoError(t, err)

	city := "Toulon"
	updated, err := svc.Update(ctx, c.ID, UpdateClubRequest{City: &city})
	require.NoError(t, err)
	assert.Equal(t, "Toulon", updated.City)
	assert.Equal(t, "Dojo Sud", updated.Name)

	byCity, err := svc.List(ctx, Filter{City: "Toulon"})
	require.NoError(t, err)
	assert.Len(t, byCity, 1)

	require.NoError(t, svc.Delete(ctx, c.ID))
	_, err = svc.Get(ctx, c.ID)
	assert.ErrorIs(t, err, ErrClubNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, c.ID), ErrClubNotFound)
}

func TestDirectors_CountsClubsAndMembers(t *testing.T) {
	db := dbtest.Open(t, &Club{}, &auth.User{})
	users := auth.NewUserRepository(db)
	svc := NewService(NewRepository(db), users, nil)
	ctx := context.Background()

	newUser := func(email string, role auth.Role, clubID string) *auth.User {
		u := &auth.User{Email: email, PasswordHash: "x", FullName: email, Role: role, ClubID: clubID}
		require.NoError(t, users.Create(ctx, u))
		return u
	}
	busy := newUser("dt1@example.com", auth.RoleDirecteurTechnique, "")
	idle := newUser("dt2@example.com", auth.RoleDirecteurTechnique, "")

	paris, err := svc.Create(ctx, CreateClubRequest{Name: "Dojo", City: "Paris", Country: "France", TechnicalDirectorID: busy.ID})
	require.NoError(t, err)
	lyon, err := svc.Create(ctx, CreateClubRequest{Name: "Dojo", City: "Lyon", Country: "France", TechnicalDirectorID: busy.ID})
	require.NoError(t, err)
	orphan, err := svc.Create(ctx, CreateClubRequest{Name: "Dojo", City: "Nice", Country: "France"})
	require.NoError(t, err)

	newUser("m1@example.com", auth.RoleMembre, paris.ID)
	newUser("m2@example.com", auth.RoleMembre, paris.ID)
	newUser("m3@example.com", auth.RoleMembre, lyon.ID)
	newUser("m4@example.com", auth.RoleMembre, orphan.ID)
	newUser("i1@example.com", auth.RoleInstructeur, paris.ID)

	directors, err := svc.Directors(ctx)
	require.NoError(t, err)
	require.Len(t, directors, 2)

	byID := map[string]Director{}
	for _, d := range directors {
		byID[d.ID] = d
	}
	assert.Equal(t, int64(2), byID[busy.ID].ClubsCount)
	assert.Equal(t, int64(3), byID[busy.ID].MembersCount)
	assert.Equal(t, int64(0), byID[idle.ID].ClubsCount)
	assert.Equal(t, int64(0), byID[idle.ID].MembersCount)
}
