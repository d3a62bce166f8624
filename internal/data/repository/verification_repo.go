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

type VerificationRepository interface {
	Create(ctx context.Context, request *entity.VerificationRequest) error
	FindPendingByUserID(ctx context.Context, userID uuid.UUID) (*entity.VerificationRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.VerificationStatus) error
}

type verificationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVerificationRepository(db database.PgxIface, log *zap.Logger) VerificationRepository {
	return &verificationRepository{
		db:  db,
		log: log.With(zap.String("repository", "verification")),
	}
}

func (r *verificationRepository) Create(ctx context.Context, request *entity.VerificationRequest) error {
	query := `
		INSERT INTO verification_requests (id, user_id, document_url, note, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		request.ID,
		request.UserID,
		request.DocumentURL,
		request.Note,
		request.Status,
		request.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create verification request",
			zap.Error(err),
			zap.String("user_id", request.UserID.String()),
		)
		return fmt.Errorf("create verification request for %s: %w", request.UserID.String(), err)
	}

	return nil
}

func (r *verificationRepository) FindPendingByUserID(ctx context.Context, userID uuid.UUID) (*entity.VerificationRequest, error) {
	query := `
		SELECT id, user_id, document_url, note, status, created_at
		FROM verification_requests
		WHERE user_id = $1 AND status = 'pending'
		ORDER BY created_at DESC
		LIMIT 1
	`

	var request entity.VerificationRequest
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&request.ID,
		&request.UserID,
		&request.DocumentURL,
		&request.Note,
		&request.Status,
		&request.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find pending verification request",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find pending verification for %s: %w", userID.String(), err)
	}

	return &request, nil
}

func (r *verificationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.VerificationStatus) error {
	query := `UPDATE verification_requests SET status = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update verification status",
			zap.Error(err),
			zap.String("request_id", id.String()),
		)
		return fmt.Errorf("update verification %s status: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("verification request %s not found", id.String())
	}

	return nil
}
