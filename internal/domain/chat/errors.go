package chat

import "academy/internal/pkg/apperr"

var (
	ErrConversationNotFound = apperr.NotFound("CONVERSATION_NOT_FOUND", "Conversation not found")
	ErrNotParticipant       = apperr.Forbidden("NOT_PARTICIPANT", "You are not a participant of this conversation")
	ErrCannotChatSelf       = apperr.Validation("CANNOT_CHAT_SELF", "Cannot start a conversation with yourself")
	ErrRecipientNotFound    = apperr.NotFound("USER_NOT_FOUND", "User not found")
	ErrEmptyMessage         = apperr.Validation("EMPTY_MESSAGE", "Message content is required")
)
