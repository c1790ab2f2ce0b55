package wall

import (
	"academy/internal/domain"
	"academy/internal/domain/auth"
)

type ReactionType string

const (
	ReactionLike    ReactionType = "like"
	ReactionLove    ReactionType = "love"
	ReactionRespect ReactionType = "respect"
)

func (r ReactionType) Valid() bool {
	switch r {
	case ReactionLike, ReactionLove, ReactionRespect:
		return true
	}
	return false
}

type Post struct {
	domain.Document
	AuthorID string `json:"author_id" gorm:"size:36;index;not null"`
	Content  string `json:"content" gorm:"type:text;not null"`
	ImageURL string `json:"image_url,omitempty" gorm:"size:512"`
}

type Comment struct {
	domain.Document
	PostID   string `json:"post_id" gorm:"size:36;index;not null"`
	AuthorID string `json:"author_id" gorm:"size:36;not null"`
	Content  string `json:"content" gorm:"type:text;not null"`
}

// Reaction is unique per (post, user, type); posting the same type again
// removes it.
type Reaction struct {
	domain.Document
	PostID string       `json:"post_id" gorm:"size:36;not null;uniqueIndex:idx_reaction_post_user_type"`
	UserID string       `json:"user_id" gorm:"size:36;not null;uniqueIndex:idx_reaction_post_user_type"`
	Type   ReactionType `json:"type" gorm:"size:16;not null;uniqueIndex:idx_reaction_post_user_type"`
}

type PostView struct {
	*Post
	Author        *auth.PublicProfile    `json:"author,omitempty"`
	CommentsCount int64                  `json:"comments_count"`
	Reactions     map[ReactionType]int64 `json:"reactions"`
	MyReactions   []ReactionType         `json:"my_reactions"`
}

type CommentView struct {
	*Comment
	Author *auth.PublicProfile `json:"author,omitempty"`
}

type ToggleResult struct {
	Type   ReactionType `json:"type"`
	Active bool         `json:"active"`
	Count  int64        `json:"count"`
}
