package response

import (
	"time"

	"github.com/joshijay655/justdostuff/internal/data/entity"
)

type ConversationResponse struct {
	ID          string    `json:"id"`
	BookingID   string    `json:"booking_id"`
	SeekerID    string    `json:"seeker_id"`
	ProviderID  string    `json:"provider_id"`
	UnreadCount int64     `json:"unread_count"`
	CreatedAt   time.Time `json:"created_at"`
}

func ConversationToResponse(conversation *entity.Conversation, unread int64) ConversationResponse {
	return ConversationResponse{
		ID:          conversation.ID.String(),
		BookingID:   conversation.BookingID.String(),
		SeekerID:    conversation.SeekerID.String(),
		ProviderID:  conversation.ProviderID.String(),
		UnreadCount: unread,
		CreatedAt:   conversation.CreatedAt,
	}
}

type MessageResponse struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	Content        string    `json:"content"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
}

func MessageToResponse(message *entity.Message) MessageResponse {
	return MessageResponse{
		ID:             message.ID.String(),
		ConversationID: message.ConversationID.String(),
		SenderID:       message.SenderID.String(),
		Content:        message.Content,
		IsRead:         message.IsRead,
		CreatedAt:      message.CreatedAt,
	}
}
