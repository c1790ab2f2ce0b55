package wall

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academy/internal/database/dbtest"
	"academy/internal/domain"
	"academy/internal/domain/auth"
)

type fixture struct {
	svc               *Service
	alice, bob, admin *auth.User
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db := dbtest.Open(t, &auth.User{}, &Post{}, &Comment{}, &Reaction{})
	users := auth.NewUserRepository(db)
	ctx := context.Background()

	f := &fixture{
		alice: &auth.User{Email: "alice@example.com", PasswordHash: "x", FullName: "Alice", Role: auth.RoleMembre},
		bob:   &auth.User{Email: "bob@example.com", PasswordHash: "x", FullName: "Bob", Role: auth.RoleMembre},
		admin: &auth.User{Email: "admin@example.com", PasswordHash: "x", FullName: "Admin", Role: auth.RoleAdmin},
	}
	for _, u := range []*auth.User{f.alice, f.bob, f.admin} {
		require.NoError(t, users.Create(ctx, u))
	}
	f.svc = NewService(NewRepository(db), users, nil)
	return f
}

func TestFeed_NewestFirstWithCounts(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	first, err := f.svc.CreatePost(ctx, f.alice, CreatePostRequest{Content: "first"})
	require.NoError(t, err)
	_, err = f.svc.CreatePost(ctx, f.bob, CreatePostRequest{Content: "second"})
	require.NoError(t, err)

	_, err = f.svc.AddComment(ctx, f.bob, first.ID, "nice")
	require.NoError(t, err)
	_, err = f.svc.React(ctx, f.bob.ID, first.ID, "respect")
	require.NoError(t, err)

	feed, err := f.svc.Feed(ctx, f.bob.ID, domain.Page{})
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, "second", feed[0].Content)
	assert.Equal(t, "first", feed[1].Content)
	assert.Equal(t, "Alice", feed[1].Author.FullName)
	assert.Equal(t, int64(1), feed[1].CommentsCount)
	assert.Equal(t, int64(1), feed[1].Reactions[ReactionRespect])
	assert.Equal(t, []ReactionType{ReactionRespect}, feed[1].MyReactions)
	assert.Empty(t, feed[0].MyReactions)
}

func TestReact_Toggles(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	post, err := f.svc.CreatePost(ctx, f.alice, CreatePostRequest{Content: "hello"})
	require.NoError(t, err)

	res, err := f.svc.React(ctx, f.bob.ID, post.ID, "like")
	require.NoError(t, err)
	assert.True(t, res.Active)
	assert.Equal(t, int64(1), res.Count)

	res, err = f.svc.React(ctx, f.alice.ID, post.ID, "LIKE")
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Count)

	res, err = f.svc.React(ctx, f.bob.ID, post.ID, "like")
	require.NoError(t, err)
	assert.False(t, res.Active)
	assert.Equal(t, int64(1), res.Count)

	_, err = f.svc.React(ctx, f.bob.ID, post.ID, "angry")
	assert.ErrorIs(t, err, ErrInvalidReaction)
}

func TestDeletePost_AuthorOrAdmin(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	post, err := f.svc.CreatePost(ctx, f.alice, CreatePostRequest{Content: "mine"})
	require.NoError(t, err)
	_, err = f.svc.AddComment(ctx, f.bob, post.ID, "reply")
	require.NoError(t, err)

	err = f.svc.DeletePost(ctx, f.bob, post.ID)
	assert.ErrorIs(t, err, ErrNotAuthor)

	require.NoError(t, f.svc.DeletePost(ctx, f.admin, post.ID))

	_, err = f.svc.Comments(ctx, post.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)

	other, err := f.svc.CreatePost(ctx, f.bob, CreatePostRequest{Content: "bob's"})
	require.NoError(t, err)
	assert.NoError(t, f.svc.DeletePost(ctx, f.bob, other.ID))
}

func TestAddComment_UnknownPost(t *testing.T) {
	f := setup(t)

	_, err := f.svc.AddComment(context.Background(), f.bob, "missing", "hi")
	assert.ErrorIs(t, err, ErrPostNotFound)
}
