package wall

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"academy/internal/domain"
)

type reactionCount struct {
	PostID string
	Type   ReactionType
	N      int64
}

type Repository interface {
	CreatePost(ctx context.Context, p *Post) error
	GetPost(ctx context.Context, id string) (*Post, error)
	ListPosts(ctx context.Context, page domain.Page) ([]Post, error)
	// DeletePost removes the post with its comments and reactions.
	DeletePost(ctx context.Context, id string) error

	CreateComment(ctx context.Context, c *Comment) error
	ListComments(ctx context.Context, postID string) ([]Comment, error)
	CountComments(ctx context.Context, postIDs []string) (map[string]int64, error)

	// ToggleReaction adds the reaction when absent and removes it
	// otherwise, reporting whether it is now active.
	ToggleReaction(ctx context.Context, postID, userID string, t ReactionType) (bool, error)
	CountReactions(ctx context.Context, postIDs []string) ([]reactionCount, error)
	UserReactions(ctx context.Context, postIDs []string, userID string) ([]Reaction, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreatePost(ctx context.Context, p *Post) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) GetPost(ctx context.Context, id string) (*Post, error) {
	var p Post
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) ListPosts(ctx context.Context, page domain.Page) ([]Post, error) {
	var out []Post
	err := r.db.WithContext(ctx).
		Order("created_at DESC, pk DESC").
		Limit(page.Limit).Offset(page.Offset).
		Find(&out).Error
	return out, err
}

func (r *repository) DeletePost(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&Reaction{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&Post{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrPostNotFound
		}
		return nil
	})
}

func (r *repository) CreateComment(ctx context.Context, c *Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) ListComments(ctx context.Context, postID string) ([]Comment, error) {
	var out []Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC, pk ASC").
		Find(&out).Error
	return out, err
}

func (r *repository) CountComments(ctx context.Context, postIDs []string) (map[string]int64, error) {
	out := make(map[string]int64, len(postIDs))
	if len(postIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		PostID string
		N      int64
	}
	err := r.db.WithContext(ctx).Model(&Comment{}).
		Select("post_id, COUNT(*) AS n").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.PostID] = row.N
	}
	return out, nil
}

func (r *repository) ToggleReaction(ctx context.Context, postID, userID string, t ReactionType) (bool, error) {
	db := r.db.WithContext(ctx)
	res := db.Where("post_id = ? AND user_id = ? AND type = ?", postID, userID, t).Delete(&Reaction{})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return false, nil
	}

	err := db.Create(&Reaction{PostID: postID, UserID: userID, Type: t}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// a concurrent toggle inserted it first
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *repository) CountReactions(ctx context.Context, postIDs []string) ([]reactionCount, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	var out []reactionCount
	err := r.db.WithContext(ctx).Model(&Reaction{}).
		Select("post_id, type, COUNT(*) AS n").
		Where("post_id IN ?", postIDs).
		Group("post_id, type").
		Scan(&out).Error
	return out, err
}

func (r *repository) UserReactions(ctx context.Context, postIDs []string, userID string) ([]Reaction, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	var out []Reaction
	err := r.db.WithContext(ctx).
		Where("post_id IN ? AND user_id = ?", postIDs, userID).
		Find(&out).Error
	return out, err
}
