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

const bookingColumns = `id, seeker_id, provider_id, experience_id, availability_id, status,
	       tos_accepted_at, waiver_accepted_at, nda_accepted_at,
	       seeker_emergency_name, seeker_emergency_phone,
	       provider_emergency_name, provider_emergency_phone,
	       cancellation_reason, created_at, updated_at`

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindBySeekerID(ctx context.Context, seekerID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountBySeekerID(ctx context.Context, seekerID uuid.UUID) (int64, error)
	FindByProviderID(ctx context.Context, providerID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByProviderID(ctx context.Context, providerID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// UpdateStatusFrom moves the booking to a new status only when its current
	// status is one of the allowed source states. Returns false when the row
	// was not in any of them, which linearizes transitions per booking.
	UpdateStatusFrom(ctx context.Context, id uuid.UUID, to entity.BookingStatus, from ...entity.BookingStatus) (bool, error)
	SetCancellationReason(ctx context.Context, id uuid.UUID, reason string) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, seeker_id, provider_id, experience_id, availability_id, status,
		                      tos_accepted_at, waiver_accepted_at, nda_accepted_at,
		                      seeker_emergency_name, seeker_emergency_phone,
		                      provider_emergency_name, provider_emergency_phone,
		                      cancellation_reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.SeekerID,
		booking.ProviderID,
		booking.ExperienceID,
		booking.AvailabilityID,
		booking.Status,
		booking.TosAcceptedAt,
		booking.WaiverAcceptedAt,
		booking.NdaAcceptedAt,
		booking.SeekerEmergencyName,
		booking.SeekerEmergencyPhone,
		booking.ProviderEmergencyName,
		booking.ProviderEmergencyPhone,
		booking.CancellationReason,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("seeker_id", booking.SeekerID.String()),
			zap.String("availability_id", booking.AvailabilityID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := r.scanOne(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindBySeekerID(ctx context.Context, seekerID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE seeker_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	return r.findMany(ctx, query, "seeker", seekerID, limit, offset)
}

func (r *bookingRepository) CountBySeekerID(ctx context.Context, seekerID uuid.UUID) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM bookings WHERE seeker_id = $1`, seekerID)
}

func (r *bookingRepository) FindByProviderID(ctx context.Context, providerID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE provider_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	return r.findMany(ctx, query, "provider", providerID, limit, offset)
}

func (r *bookingRepository) CountByProviderID(ctx context.Context, providerID uuid.UUID) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM bookings WHERE provider_id = $1`, providerID)
}

// Delete exists only to undo a half-created booking when capacity release
// fails. Settled bookings are never removed.
func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	return nil
}

func (r *bookingRepository) UpdateStatusFrom(ctx context.Context, id uuid.UUID, to entity.BookingStatus, from ...entity.BookingStatus) (bool, error) {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1 AND status = ANY($3)`

	states := make([]string, len(from))
	for i, s := range from {
		states[i] = string(s)
	}

	result, err := r.db.Exec(ctx, query, id, to, states)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("status", string(to)),
		)
		return false, fmt.Errorf("update booking %s status to %s: %w", id.String(), string(to), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *bookingRepository) SetCancellationReason(ctx context.Context, id uuid.UUID, reason string) error {
	query := `UPDATE bookings SET cancellation_reason = $2, updated_at = NOW() WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id, reason)
	if err != nil {
		r.log.Error("Failed to set cancellation reason",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("set cancellation reason for booking %s: %w", id.String(), err)
	}

	return nil
}

// ==================== HELPERS ====================

func (r *bookingRepository) scanOne(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.SeekerID,
		&booking.ProviderID,
		&booking.ExperienceID,
		&booking.AvailabilityID,
		&booking.Status,
		&booking.TosAcceptedAt,
		&booking.WaiverAcceptedAt,
		&booking.NdaAcceptedAt,
		&booking.SeekerEmergencyName,
		&booking.SeekerEmergencyPhone,
		&booking.ProviderEmergencyName,
		&booking.ProviderEmergencyPhone,
		&booking.CancellationReason,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

func (r *bookingRepository) findMany(ctx context.Context, query, side string, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings",
			zap.Error(err),
			zap.String("side", side),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find %s bookings for %s: %w", side, userID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.SeekerID,
			&booking.ProviderID,
			&booking.ExperienceID,
			&booking.AvailabilityID,
			&booking.Status,
			&booking.TosAcceptedAt,
			&booking.WaiverAcceptedAt,
			&booking.NdaAcceptedAt,
			&booking.SeekerEmergencyName,
			&booking.SeekerEmergencyPhone,
			&booking.ProviderEmergencyName,
			&booking.ProviderEmergencyPhone,
			&booking.CancellationReason,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}

func (r *bookingRepository) count(ctx context.Context, query string, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count bookings for %s: %w", userID.String(), err)
	}

	return count, nil
}
