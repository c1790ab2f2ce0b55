package wall

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"academy/internal/domain"
	"academy/internal/domain/auth"
	applogger "academy/internal/pkg/logger"
)

type UserLookup interface {
	GetByID(ctx context.Context, id string) (*auth.User, error)
}

type Service struct {
	repo   Repository
	users  UserLookup
	logger *zap.Logger
}

func NewService(repo Repository, users UserLookup, logger *zap.Logger) *Service {
	logger = applogger.OrNop(logger)
	return &Service{repo: repo, users: users, logger: logger}
}

// Feed lists posts newest first, decorated for viewerID.
func (s *Service) Feed(ctx context.Context, viewerID string, page domain.Page) ([]PostView, error) {
	posts, err := s.repo.ListPosts(ctx, page.Clamp(20, 100))
	if err != nil {
		return nil, err
	}
	return s.decorate(ctx, viewerID, posts)
}

func (s *Service) CreatePost(ctx context.Context, author *auth.User, req CreatePostRequest) (*PostView, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	p := &Post{AuthorID: author.ID, Content: content, ImageURL: strings.TrimSpace(req.ImageURL)}
	if err := s.repo.CreatePost(ctx, p); err != nil {
		return nil, err
	}

	profile := author.Public()
	return &PostView{Post: p, Author: &profile, Reactions: map[ReactionType]int64{}, MyReactions: []ReactionType{}}, nil
}

// DeletePost is allowed for the author and for admins.
func (s *Service) DeletePost(ctx context.Context, caller *auth.User, id string) error {
	p, err := s.repo.GetPost(ctx, id)
	if err != nil {
		return err
	}
	if p.AuthorID != caller.ID && !caller.IsAdmin() {
		return ErrNotAuthor
	}
	if err := s.repo.DeletePost(ctx, id); err != nil {
		return err
	}
	s.logger.Info("wall post deleted", zap.String("post_id", id), zap.String("by", caller.ID))
	return nil
}

func (s *Service) Comments(ctx context.Context, postID string) ([]CommentView, error) {
	if _, err := s.repo.GetPost(ctx, postID); err != nil {
		return nil, err
	}
	comments, err := s.repo.ListComments(ctx, postID)
	if err != nil {
		return nil, err
	}

	cache := map[string]*auth.PublicProfile{}
	out := make([]CommentView, 0, len(comments))
	for i := range comments {
		author, err := s.profile(ctx, cache, comments[i].AuthorID)
		if err != nil {
			return nil, err
		}
		out = append(out, CommentView{Comment: &comments[i], Author: author})
	}
	return out, nil
}

func (s *Service) AddComment(ctx context.Context, author *auth.User, postID, content string) (*CommentView, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if _, err := s.repo.GetPost(ctx, postID); err != nil {
		return nil, err
	}

	c := &Comment{PostID: postID, AuthorID: author.ID, Content: content}
	if err := s.repo.CreateComment(ctx, c); err != nil {
		return nil, err
	}
	profile := author.Public()
	return &CommentView{Comment: c, Author: &profile}, nil
}

func (s *Service) React(ctx context.Context, userID, postID, reaction string) (*ToggleResult, error) {
	t := ReactionType(strings.ToLower(strings.TrimSpace(reaction)))
	if !t.Valid() {
		return nil, ErrInvalidReaction
	}
	if _, err := s.repo.GetPost(ctx, postID); err != nil {
		return nil, err
	}

	active, err := s.repo.ToggleReaction(ctx, postID, userID, t)
	if err != nil {
		return nil, err
	}
	counts, err := s.repo.CountReactions(ctx, []string{postID})
	if err != nil {
		return nil, err
	}

	res := &ToggleResult{Type: t, Active: active}
	for _, c := range counts {
		if c.Type == t {
			res.Count = c.N
		}
	}
	return res, nil
}

func (s *Service) decorate(ctx context.Context, viewerID string, posts []Post) ([]PostView, error) {
	ids := make([]string, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
	}

	comments, err := s.repo.CountComments(ctx, ids)
	if err != nil {
		return nil, err
	}
	counts, err := s.repo.CountReactions(ctx, ids)
	if err != nil {
		return nil, err
	}
	mine, err := s.repo.UserReactions(ctx, ids, viewerID)
	if err != nil {
		return nil, err
	}

	reactions := map[string]map[ReactionType]int64{}
	for _, c := range counts {
		if reactions[c.PostID] == nil {
			reactions[c.PostID] = map[ReactionType]int64{}
		}
		reactions[c.PostID][c.Type] = c.N
	}
	my := map[string][]ReactionType{}
	for _, r := range mine {
		my[r.PostID] = append(my[r.PostID], r.Type)
	}

	cache := map[string]*auth.PublicProfile{}
	out := make([]PostView, 0, len(posts))
	for i := range posts {
		p := &posts[i]
		author, err := s.profile(ctx, cache, p.AuthorID)
		if err != nil {
			return nil, err
		}
		view := PostView{
			Post:          p,
			Author:        author,
			CommentsCount: comments[p.ID],
			Reactions:     reactions[p.ID],
			MyReactions:   my[p.ID],
		}
		if view.Reactions == nil {
			view.Reactions = map[ReactionType]int64{}
		}
		if view.MyReactions == nil {
			view.MyReactions = []ReactionType{}
		}
		out = append(out, view)
	}
	return out, nil
}

// profile resolves an author card; deleted accounts yield nil.
func (s *Service) profile(ctx context.Context, cache map[string]*auth.PublicProfile, id string) (*auth.PublicProfile, error) {
	if p, ok := cache[id]; ok {
		return p, nil
	}
	u, err := s.users.GetByID(ctx, id)
	if errors.Is(err, auth.ErrUserNotFound) {
		cache[id] = nil
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p := u.Public()
	cache[id] = &p
	return &p, nil
}
