package chat

import (
	"context"
	"errors"
	"slices"

	"gorm.io/gorm"

	"academy/internal/domain"
)

type Repository interface {
	// FindOrCreate returns the conversation for the sorted pair.
	FindOrCreate(ctx context.Context, a, b string) (*Conversation, error)
	GetByID(ctx context.Context, id string) (*Conversation, error)
	ListByUser(ctx context.Context, userID string) ([]Conversation, error)
	TotalUnread(ctx context.Context, userID string) (int64, error)
	// Append stores msg and bumps the recipient's counter in one transaction.
	Append(ctx context.Context, conv *Conversation, msg *Message, recipientID string) error
	// MarkRead flags the other side's messages read and zeroes reader's counter.
	MarkRead(ctx context.Context, conv *Conversation, readerID string) error
	ListMessages(ctx context.Context, conversationID string, page domain.Page) ([]Message, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindOrCreate(ctx context.Context, a, b string) (*Conversation, error) {
	conv, err := r.find(ctx, a, b)
	if err == nil || !errors.Is(err, gorm.ErrRecordNotFound) {
		return conv, err
	}

	conv = &Conversation{ParticipantA: a, ParticipantB: b}
	err = r.db.WithContext(ctx).Create(conv).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// lost the race against a concurrent create for the same pair
		return r.find(ctx, a, b)
	}
	if err != nil {
		return nil, err
	}
	return conv, nil
}

func (r *repository) find(ctx context.Context, a, b string) (*Conversation, error) {
	var conv Conversation
	err := r.db.WithContext(ctx).
		Where("participant_a = ? AND participant_b = ?", a, b).
		First(&conv).Error
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Conversation, error) {
	var conv Conversation
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&conv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrConversationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

func (r *repository) ListByUser(ctx context.Context, userID string) ([]Conversation, error) {
	var out []Conversation
	err := r.db.WithContext(ctx).
		Where("participant_a = ? OR participant_b = ?", userID, userID).
		Order("COALESCE(last_message_at, created_at) DESC").
		Find(&out).Error
	return out, err
}

func (r *repository) TotalUnread(ctx context.Context, userID string) (int64, error) {
	var asA, asB int64
	db := r.db.WithContext(ctx).Model(&Conversation{})
	if err := db.Where("participant_a = ?", userID).
		Select("COALESCE(SUM(unread_a), 0)").Scan(&asA).Error; err != nil {
		return 0, err
	}
	if err := r.db.WithContext(ctx).Model(&Conversation{}).Where("participant_b = ?", userID).
		Select("COALESCE(SUM(unread_b), 0)").Scan(&asB).Error; err != nil {
		return 0, err
	}
	return asA + asB, nil
}

func (r *repository) Append(ctx context.Context, conv *Conversation, msg *Message, recipientID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return err
		}
		col := conv.unreadColumn(recipientID)
		return tx.Model(&Conversation{}).Where("id = ?", conv.ID).Updates(map[string]any{
			"last_message":    preview(msg.Content),
			"last_message_at": msg.CreatedAt,
			col:               gorm.Expr(col+" + ?", 1),
		}).Error
	})
}

func (r *repository) MarkRead(ctx context.Context, conv *Conversation, readerID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Message{}).
			Where("conversation_id = ? AND sender_id <> ? AND read = ?", conv.ID, readerID, false).
			Update("read", true).Error; err != nil {
			return err
		}
		return tx.Model(&Conversation{}).Where("id = ?", conv.ID).
			Update(conv.unreadColumn(readerID), 0).Error
	})
}

// ListMessages pages from the newest message back; offset counts messages
// skipped from the end. Each page is returned oldest first.
func (r *repository) ListMessages(ctx context.Context, conversationID string, page domain.Page) ([]Message, error) {
	var out []Message
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC, pk DESC").
		Limit(page.Limit).Offset(page.Offset).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	slices.Reverse(out)
	return out, nil
}
