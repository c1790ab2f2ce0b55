package news

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academy/internal/database/dbtest"
	"academy/internal/domain"
	"academy/internal/domain/auth"
)

var author = &auth.User{Document: domain.Document{ID: "admin-1"}, FullName: "Admin", Role: auth.RoleAdmin}

func setupService(t *testing.T) *Service {
	t.Helper()
	db := dbtest.Open(t, &Article{})
	return NewService(NewRepository(db), nil)
}

func TestCreate_DraftHasNoPublishDate(t *testing.T) {
	svc := setupService(t)

	a, err := svc.Create(context.Background(), author, CreateRequest{Title: "Stage national", Content: "...", Category: string(CategoryEvent)})
	require.NoError(t, err)
	assert.Equal(t, StatusDraft, a.Status)
	assert.Nil(t, a.PublishedAt)
	assert.Equal(t, "stage-national", a.Slug)
	assert.Equal(t, "Admin", a.AuthorName)
}

func TestCreate_InvalidCategory(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Create(context.Background(), author, CreateRequest{Title: "Oops", Content: "...", Category: "Sport"})
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestUpdate_FirstPublishStampsDate(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	first := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return first }

	a, err := svc.Create(ctx, author, CreateRequest{Title: "Résultats", Content: "...", Category: string(CategoryResult)})
	require.NoError(t, err)

	published := "published"
	a, err = svc.Update(ctx, a.ID, UpdateRequest{Status: &published})
	require.NoError(t, err)
	require.NotNil(t, a.PublishedAt)
	assert.True(t, first.Equal(*a.PublishedAt))

	draft := "draft"
	_, err = svc.Update(ctx, a.ID, UpdateRequest{Status: &draft})
	require.NoError(t, err)

	svc.now = func() time.Time { return first.Add(48 * time.Hour) }
	a, err = svc.Update(ctx, a.ID, UpdateRequest{Status: &published})
	require.NoError(t, err)
	assert.True(t, first.Equal(*a.PublishedAt))
}

func TestReadPublished_CountsViews(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, author, CreateRequest{Title: "Annonce", Content: "...", Category: string(CategoryAnnouncement), Status: "published"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := svc.ReadPublished(ctx, a.ID)
		require.NoError(t, err)
	}
	got, err := svc.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Views)
}

func TestReadPublished_DraftIsHidden(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, author, CreateRequest{Title: "Brouillon", Content: "...", Category: string(CategoryTechnique)})
	require.NoError(t, err)

	_, err = svc.ReadPublished(ctx, a.ID)
	assert.ErrorIs(t, err, ErrNewsNotFound)

	list, err := svc.ListPublished(ctx, "", 0)
	require.NoError(t, err)
	assert.Empty(t, list)

	all, err := svc.AdminList(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
