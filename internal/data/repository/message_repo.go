package repository

import (
	"context"
	"fmt"

	"github.com/joshijay655/justdostuff/internal/data/entity"
	"github.com/joshijay655/justdostuff/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	FindByConversationID(ctx context.Context, conversationID uuid.UUID) ([]*entity.Message, error)
	MarkRead(ctx context.Context, conversationID, readerID uuid.UUID) error
	CountUnread(ctx context.Context, conversationID, readerID uuid.UUID) (int64, error)
}

type messageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMessageRepository(db database.PgxIface, log *zap.Logger) MessageRepository {
	return &messageRepository{
		db:  db,
		log: log.With(zap.String("repository", "message")),
	}
}

func (r *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	query := `
		INSERT INTO messages (id, conversation_id, sender_id, content, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		message.ID,
		message.ConversationID,
		message.SenderID,
		message.Content,
		message.IsRead,
		message.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create message",
			zap.Error(err),
			zap.String("conversation_id", message.ConversationID.String()),
		)
		return fmt.Errorf("create message in conversation %s: %w", message.ConversationID.String(), err)
	}

	return nil
}

func (r *messageRepository) FindByConversationID(ctx context.Context, conversationID uuid.UUID) ([]*entity.Message, error) {
	query := `
		SELECT id, conversation_id, sender_id, content, is_read, created_at
		FROM messages
		WHERE conversation_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, conversationID)
	if err != nil {
		r.log.Error("Failed to find messages by conversation ID",
			zap.Error(err),
			zap.String("conversation_id", conversationID.String()),
		)
		return nil, fmt.Errorf("find messages for conversation %s: %w", conversationID.String(), err)
	}
	defer rows.Close()

	var messages []*entity.Message
	for rows.Next() {
		var message entity.Message
		err := rows.Scan(
			&message.ID,
			&message.ConversationID,
			&message.SenderID,
			&message.Content,
			&message.IsRead,
			&message.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan message row", zap.Error(err))
			return nil, fmt.Errorf("scan message row: %w", err)
		}
		messages = append(messages, &message)
	}

	return messages, nil
}

// MarkRead flips the read flag on every message in the conversation not sent
// by the reader.
func (r *messageRepository) MarkRead(ctx context.Context, conversationID, readerID uuid.UUID) error {
	query := `
		UPDATE messages
		SET is_read = TRUE
		WHERE conversation_id = $1 AND sender_id <> $2 AND is_read = FALSE
	`

	_, err := r.db.Exec(ctx, query, conversationID, readerID)
	if err != nil {
		r.log.Error("Failed to mark messages read",
			zap.Error(err),
			zap.String("conversation_id", conversationID.String()),
		)
		return fmt.Errorf("mark messages read in conversation %s: %w", conversationID.String(), err)
	}

	return nil
}

func (r *messageRepository) CountUnread(ctx context.Context, conversationID, readerID uuid.UUID) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM messages
		WHERE conversation_id = $1 AND sender_id <> $2 AND is_read = FALSE
	`

	var count int64
	err := r.db.QueryRow(ctx, query, conversationID, readerID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count unread messages",
			zap.Error(err),
			zap.String("conversation_id", conversationID.String()),
		)
		return 0, fmt.Errorf("count unread in conversation %s: %w", conversationID.String(), err)
	}

	return count, nil
}
