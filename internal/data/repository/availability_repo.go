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

type AvailabilityRepository interface {
	Create(ctx context.Context, slot *entity.AvailabilitySlot) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AvailabilitySlot, error)
	FindByExperienceID(ctx context.Context, experienceID uuid.UUID, onlyOpen bool) ([]*entity.AvailabilitySlot, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Capacity ledger. Both operations are single conditional updates so
	// concurrent reservations against the same slot cannot oversell it.
	Reserve(ctx context.Context, id uuid.UUID) (bool, error)
	Release(ctx context.Context, id uuid.UUID) error
}

type availabilityRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAvailabilityRepository(db database.PgxIface, log *zap.Logger) AvailabilityRepository {
	return &availabilityRepository{
		db:  db,
		log: log.With(zap.String("repository", "availability")),
	}
}

func (r *availabilityRepository) Create(ctx context.Context, slot *entity.AvailabilitySlot) error {
	query := `
		INSERT INTO availability (id, experience_id, date, start_time, end_time, total_spots, booked_spots, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		slot.ID,
		slot.ExperienceID,
		slot.Date,
		slot.StartTime,
		slot.EndTime,
		slot.TotalSpots,
		slot.BookedSpots,
		slot.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create availability slot",
			zap.Error(err),
			zap.String("experience_id", slot.ExperienceID.String()),
		)
		return fmt.Errorf("create availability slot: %w", err)
	}

	return nil
}

func (r *availabilityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AvailabilitySlot, error) {
	query := `
		SELECT id, experience_id, date, start_time, end_time, total_spots, booked_spots, created_at
		FROM availability
		WHERE id = $1
	`

	var slot entity.AvailabilitySlot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&slot.ID,
		&slot.ExperienceID,
		&slot.Date,
		&slot.StartTime,
		&slot.EndTime,
		&slot.TotalSpots,
		&slot.BookedSpots,
		&slot.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find availability slot by ID",
			zap.Error(err),
			zap.String("slot_id", id.String()),
		)
		return nil, fmt.Errorf("find availability slot by ID %s: %w", id.String(), err)
	}

	return &slot, nil
}

func (r *availabilityRepository) FindByExperienceID(ctx context.Context, experienceID uuid.UUID, onlyOpen bool) ([]*entity.AvailabilitySlot, error) {
	query := `
		SELECT id, experience_id, date, start_time, end_time, total_spots, booked_spots, created_at
		FROM availability
		WHERE experience_id = $1
	`
	if onlyOpen {
		query += ` AND booked_spots < total_spots AND date >= CURRENT_DATE`
	}
	query += ` ORDER BY date, start_time`

	rows, err := r.db.Query(ctx, query, experienceID)
	if err != nil {
		r.log.Error("Failed to find availability by experience ID",
			zap.Error(err),
			zap.String("experience_id", experienceID.String()),
		)
		return nil, fmt.Errorf("find availability by experience ID %s: %w", experienceID.String(), err)
	}
	defer rows.Close()

	var slots []*entity.AvailabilitySlot
	for rows.Next() {
		var slot entity.AvailabilitySlot
		err := rows.Scan(
			&slot.ID,
			&slot.ExperienceID,
			&slot.Date,
			&slot.StartTime,
			&slot.EndTime,
			&slot.TotalSpots,
			&slot.BookedSpots,
			&slot.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan availability row", zap.Error(err))
			return nil, fmt.Errorf("scan availability row: %w", err)
		}
		slots = append(slots, &slot)
	}

	return slots, nil
}

// Delete removes a slot only while it has no committed bookings. The guard is
// part of the statement so a concurrent reservation cannot slip in between
// check and delete.
func (r *availabilityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM availability WHERE id = $1 AND booked_spots = 0`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete availability slot",
			zap.Error(err),
			zap.String("slot_id", id.String()),
		)
		return fmt.Errorf("delete availability slot %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("availability slot %s has bookings or does not exist", id.String())
	}

	r.log.Info("Availability slot deleted", zap.String("slot_id", id.String()))
	return nil
}

// Reserve consumes one spot. Returns false when the slot is full; the check
// and increment are one atomic statement.
func (r *availabilityRepository) Reserve(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE availability
		SET booked_spots = booked_spots + 1
		WHERE id = $1 AND booked_spots < total_spots
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to reserve slot capacity",
			zap.Error(err),
			zap.String("slot_id", id.String()),
		)
		return false, fmt.Errorf("reserve slot %s: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

// Release returns one spot, floored at zero. Releasing an already-empty slot
// is a no-op rather than an error.
func (r *availabilityRepository) Release(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE availability
		SET booked_spots = booked_spots - 1
		WHERE id = $1 AND booked_spots > 0
	`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to release slot capacity",
			zap.Error(err),
			zap.String("slot_id", id.String()),
		)
		return fmt.Errorf("release slot %s: %w", id.String(), err)
	}

	return nil
}
