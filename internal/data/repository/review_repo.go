package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/joshijay655/justdostuff/internal/data/entity"
	"github.com/joshijay655/justdostuff/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ErrDuplicateReview reports a second review by the same reviewer for the
// same booking, caught by the unique index on (booking_id, reviewer_id).
var ErrDuplicateReview = errors.New("review already exists for booking and reviewer")

type ReviewRepository interface {
	// CreateWithAggregate inserts the review and recomputes the experience's
	// denormalized rating aggregate in the same transaction.
	CreateWithAggregate(ctx context.Context, review *entity.Review) error
	FindByBookingAndReviewer(ctx context.Context, bookingID, reviewerID uuid.UUID) (*entity.Review, error)
	FindByExperienceID(ctx context.Context, experienceID uuid.UUID, limit, offset int) ([]*entity.Review, error)
	CountByExperienceID(ctx context.Context, experienceID uuid.UUID) (int64, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) CreateWithAggregate(ctx context.Context, review *entity.Review) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin review transaction", zap.Error(err))
		return fmt.Errorf("begin review transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	insert := `
		INSERT INTO reviews (id, booking_id, reviewer_id, reviewee_id, experience_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = tx.Exec(ctx, insert,
		review.ID,
		review.BookingID,
		review.ReviewerID,
		review.RevieweeID,
		review.ExperienceID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateReview
		}
		r.log.Error("Failed to insert review",
			zap.Error(err),
			zap.String("booking_id", review.BookingID.String()),
		)
		return fmt.Errorf("insert review for booking %s: %w", review.BookingID.String(), err)
	}

	recompute := `
		UPDATE experiences
		SET avg_rating = agg.avg_rating,
		    review_count = agg.review_count,
		    updated_at = NOW()
		FROM (
			SELECT COALESCE(AVG(rating), 0) AS avg_rating, COUNT(*) AS review_count
			FROM reviews
			WHERE experience_id = $1
		) agg
		WHERE experiences.id = $1
	`

	if _, err := tx.Exec(ctx, recompute, review.ExperienceID); err != nil {
		r.log.Error("Failed to recompute experience rating",
			zap.Error(err),
			zap.String("experience_id", review.ExperienceID.String()),
		)
		return fmt.Errorf("recompute rating for experience %s: %w", review.ExperienceID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit review transaction", zap.Error(err))
		return fmt.Errorf("commit review transaction: %w", err)
	}

	return nil
}

func (r *reviewRepository) FindByBookingAndReviewer(ctx context.Context, bookingID, reviewerID uuid.UUID) (*entity.Review, error) {
	query := `
		SELECT id, booking_id, reviewer_id, reviewee_id, experience_id, rating, comment, created_at
		FROM reviews
		WHERE booking_id = $1 AND reviewer_id = $2
	`

	var review entity.Review
	err := r.db.QueryRow(ctx, query, bookingID, reviewerID).Scan(
		&review.ID,
		&review.BookingID,
		&review.ReviewerID,
		&review.RevieweeID,
		&review.ExperienceID,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("reviewer_id", reviewerID.String()),
		)
		return nil, fmt.Errorf("find review for booking %s: %w", bookingID.String(), err)
	}

	return &review, nil
}

func (r *reviewRepository) FindByExperienceID(ctx context.Context, experienceID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	query := `
		SELECT id, booking_id, reviewer_id, reviewee_id, experience_id, rating, comment, created_at
		FROM reviews
		WHERE experience_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, experienceID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find reviews by experience ID",
			zap.Error(err),
			zap.String("experience_id", experienceID.String()),
		)
		return nil, fmt.Errorf("find reviews for experience %s: %w", experienceID.String(), err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.BookingID,
			&review.ReviewerID,
			&review.RevieweeID,
			&review.ExperienceID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, nil
}

func (r *reviewRepository) CountByExperienceID(ctx context.Context, experienceID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM reviews WHERE experience_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, experienceID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count reviews",
			zap.Error(err),
			zap.String("experience_id", experienceID.String()),
		)
		return 0, fmt.Errorf("count reviews for experience %s: %w", experienceID.String(), err)
	}

	return count, nil
}
