package chat

import (
	"time"

	"academy/internal/domain"
	"academy/internal/domain/auth"
)

const previewRunes = 100

// Conversation is a direct thread between two users. The participant pair
// is stored sorted so each pair maps to exactly one row.
type Conversation struct {
	domain.Document
	ParticipantA  string     `json:"participant_a" gorm:"size:36;not null;uniqueIndex:idx_conversation_pair"`
	ParticipantB  string     `json:"participant_b" gorm:"size:36;not null;uniqueIndex:idx_conversation_pair"`
	LastMessage   string     `json:"last_message" gorm:"size:512"`
	LastMessageAt *time.Time `json:"last_message_at" gorm:"index"`
	UnreadA       int        `json:"-" gorm:"not null;default:0"`
	UnreadB       int        `json:"-" gorm:"not null;default:0"`
}

func (c *Conversation) HasParticipant(userID string) bool {
	return c.ParticipantA == userID || c.ParticipantB == userID
}

func (c *Conversation) Other(userID string) string {
	if c.ParticipantA == userID {
		return c.ParticipantB
	}
	return c.ParticipantA
}

func (c *Conversation) UnreadFor(userID string) int {
	if c.ParticipantA == userID {
		return c.UnreadA
	}
	return c.UnreadB
}

// unreadColumn names the counter owned by userID.
func (c *Conversation) unreadColumn(userID string) string {
	if c.ParticipantA == userID {
		return "unread_a"
	}
	return "unread_b"
}

type Message struct {
	domain.Document
	ConversationID string `json:"conversation_id" gorm:"size:36;index;not null"`
	SenderID       string `json:"sender_id" gorm:"size:36;not null"`
	Content        string `json:"content" gorm:"type:text;not null"`
	Read           bool   `json:"read" gorm:"not null;default:false"`
}

// ConversationView is a conversation as seen by one participant.
type ConversationView struct {
	*Conversation
	Participant *auth.PublicProfile `json:"participant,omitempty"`
	UnreadCount int                 `json:"unread_count"`
}

func orderedPair(a, b string) (string, string) {
	if a < b {
		return a, b
	}
	return b, a
}

func preview(content string) string {
	r := []rune(content)
	if len(r) <= previewRunes {
		return content
	}
	return string(r[:previewRunes])
}
