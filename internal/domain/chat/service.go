package chat

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

// Start returns the conversation between userID and participantID,
// creating it on first contact.
func (s *Service) Start(ctx context.Context, userID, participantID string) (*ConversationView, error) {
	if userID == participantID {
		return nil, ErrCannotChatSelf
	}
	other, err := s.users.GetByID(ctx, participantID)
	if errors.Is(err, auth.ErrUserNotFound) {
		return nil, ErrRecipientNotFound
	}
	if err != nil {
		return nil, err
	}

	a, b := orderedPair(userID, participantID)
	conv, err := s.repo.FindOrCreate(ctx, a, b)
	if err != nil {
		return nil, err
	}
	profile := other.Public()
	return &ConversationView{Conversation: conv, Participant: &profile, UnreadCount: conv.UnreadFor(userID)}, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]ConversationView, error) {
	convs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]ConversationView, 0, len(convs))
	for i := range convs {
		conv := &convs[i]
		view := ConversationView{Conversation: conv, UnreadCount: conv.UnreadFor(userID)}
		other, err := s.users.GetByID(ctx, conv.Other(userID))
		switch {
		case err == nil:
			profile := other.Public()
			view.Participant = &profile
		case errors.Is(err, auth.ErrUserNotFound):
			// account deleted; keep the thread without a card
		default:
			return nil, err
		}
		out = append(out, view)
	}
	return out, nil
}

func (s *Service) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return s.repo.TotalUnread(ctx, userID)
}

// Messages returns the thread and marks the other side's messages read.
func (s *Service) Messages(ctx context.Context, userID, conversationID string, page domain.Page) ([]Message, error) {
	conv, err := s.participantConversation(ctx, userID, conversationID)
	if err != nil {
		return nil, err
	}

	msgs, err := s.repo.ListMessages(ctx, conv.ID, page.Clamp(100, 500))
	if err != nil {
		return nil, err
	}
	if err := s.repo.MarkRead(ctx, conv, userID); err != nil {
		return nil, err
	}
	for i := range msgs {
		if msgs[i].SenderID != userID {
			msgs[i].Read = true
		}
	}
	return msgs, nil
}

func (s *Service) Send(ctx context.Context, userID, conversationID, content string) (*Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyMessage
	}
	conv, err := s.participantConversation(ctx, userID, conversationID)
	if err != nil {
		return nil, err
	}

	msg := &Message{ConversationID: conv.ID, SenderID: userID, Content: content}
	if err := s.repo.Append(ctx, conv, msg, conv.Other(userID)); err != nil {
		return nil, err
	}
	s.logger.Debug("message sent", zap.String("conversation_id", conv.ID), zap.String("sender_id", userID))
	return msg, nil
}

func (s *Service) participantConversation(ctx context.Context, userID, id string) (*Conversation, error) {
	conv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !conv.HasParticipant(userID) {
		return nil, ErrNotParticipant
	}
	return conv, nil
}
