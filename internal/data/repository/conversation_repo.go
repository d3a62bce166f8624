package repository

import (
	"context"
	"fmt"

	"github.com/joshijay655/justdostuff/internal/data/entity"
	"github.com/joshijay655/justdostuff/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ConversationRepository interface {
	Create(ctx context.Context, conversation *entity.Conversation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Conversation, error)
	FindByParticipant(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error)
}

type conversationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewConversationRepository(db database.PgxIface, log *zap.Logger) ConversationRepository {
	return &conversationRepository{
		db:  db,
		log: log.With(zap.String("repository", "conversation")),
	}
}

func (r *conversationRepository) Create(ctx context.Context, conversation *entity.Conversation) error {
	// booking_id carries a unique constraint, so two concurrent getOrCreate
	// calls cannot produce a second thread for the same booking.
	query := `
		INSERT INTO conversations (id, booking_id, seeker_id, provider_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		conversation.ID,
		conversation.BookingID,
		conversation.SeekerID,
		conversation.ProviderID,
		conversation.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create conversation",
			zap.Error(err),
			zap.String("booking_id", conversation.BookingID.String()),
		)
		return fmt.Errorf("create conversation for booking %s: %w", conversation.BookingID.String(), err)
	}

	return nil
}

func (r *conversationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error) {
	query := `
		SELECT id, booking_id, seeker_id, provider_id, created_at
		FROM conversations
		WHERE id = $1
	`
	return r.scanOne(ctx, query, id)
}

func (r *conversationRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Conversation, error) {
	query := `
		SELECT id, booking_id, seeker_id, provider_id, created_at
		FROM conversations
		WHERE booking_id = $1
	`
	return r.scanOne(ctx, query, bookingID)
}

func (r *conversationRepository) FindByParticipant(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error) {
	query := `
		SELECT id, booking_id, seeker_id, provider_id, created_at
		FROM conversations
		WHERE seeker_id = $1 OR provider_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find conversations by participant",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find conversations for %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var conversations []*entity.Conversation
	for rows.Next() {
		var conversation entity.Conversation
		err := rows.Scan(
			&conversation.ID,
			&conversation.BookingID,
			&conversation.SeekerID,
			&conversation.ProviderID,
			&conversation.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan conversation row", zap.Error(err))
			return nil, fmt.Errorf("scan conversation row: %w", err)
		}
		conversations = append(conversations, &conversation)
	}

	return conversations, nil
}

func (r *conversationRepository) scanOne(ctx context.Context, query string, arg any) (*entity.Conversation, error) {
	var conversation entity.Conversation
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&conversation.ID,
		&conversation.BookingID,
		&conversation.SeekerID,
		&conversation.ProviderID,
		&conversation.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find conversation", zap.Error(err))
		return nil, fmt.Errorf("find conversation: %w", err)
	}

	return &conversation, nil
}
