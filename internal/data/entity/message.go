package entity

import (
	"github.com/google/uuid"
)

// Message is immutable once created except for the read flag.
type Message struct {
	BaseSimple
	ConversationID uuid.UUID `db:"conversation_id"`
	SenderID       uuid.UUID `db:"sender_id"`
	Content        string    `db:"content"`
	IsRead         bool      `db:"is_read"`
}
