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

const profileColumns = `id, email, password, full_name, avatar_url, bio, role, phone, city, state,
	       is_verified, emergency_contact_name, emergency_contact_phone, is_active,
	       created_at, updated_at`

type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	FindByEmail(ctx context.Context, email string) (*entity.Profile, error)
	Update(ctx context.Context, profile *entity.Profile) error
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) error
}

type profileRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProfileRepository(db database.PgxIface, log *zap.Logger) ProfileRepository {
	return &profileRepository{
		db:  db,
		log: log.With(zap.String("repository", "profile")),
	}
}

func (r *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	query := `
		INSERT INTO profiles (id, email, password, full_name, avatar_url, bio, role, phone, city, state,
		                      is_verified, emergency_contact_name, emergency_contact_phone, is_active,
		                      created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := r.db.Exec(ctx, query,
		profile.ID,
		profile.Email,
		profile.PasswordHash,
		profile.FullName,
		profile.AvatarURL,
		profile.Bio,
		profile.Role,
		profile.Phone,
		profile.City,
		profile.State,
		profile.IsVerified,
		profile.EmergencyContactName,
		profile.EmergencyContactPhone,
		profile.IsActive,
		profile.CreatedAt,
		profile.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create profile",
			zap.Error(err),
			zap.String("email", profile.Email),
		)
		return fmt.Errorf("create profile %s: %w", profile.Email, err)
	}

	return nil
}

func (r *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	return r.scanOne(ctx, query, id.String(), id)
}

func (r *profileRepository) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE email = $1`
	return r.scanOne(ctx, query, email, email)
}

func (r *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	query := `
		UPDATE profiles
		SET full_name = $2, avatar_url = $3, bio = $4, role = $5, phone = $6,
		    city = $7, state = $8, emergency_contact_name = $9,
		    emergency_contact_phone = $10, updated_at = $11
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		profile.ID,
		profile.FullName,
		profile.AvatarURL,
		profile.Bio,
		profile.Role,
		profile.Phone,
		profile.City,
		profile.State,
		profile.EmergencyContactName,
		profile.EmergencyContactPhone,
		profile.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update profile",
			zap.Error(err),
			zap.String("profile_id", profile.ID.String()),
		)
		return fmt.Errorf("update profile %s: %w", profile.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile %s not found", profile.ID.String())
	}

	return nil
}

func (r *profileRepository) SetVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	query := `UPDATE profiles SET is_verified = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, verified)
	if err != nil {
		r.log.Error("Failed to set profile verified flag",
			zap.Error(err),
			zap.String("profile_id", id.String()),
		)
		return fmt.Errorf("set verified for profile %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile %s not found", id.String())
	}

	return nil
}

func (r *profileRepository) scanOne(ctx context.Context, query, key string, arg any) (*entity.Profile, error) {
	var profile entity.Profile
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&profile.ID,
		&profile.Email,
		&profile.PasswordHash,
		&profile.FullName,
		&profile.AvatarURL,
		&profile.Bio,
		&profile.Role,
		&profile.Phone,
		&profile.City,
		&profile.State,
		&profile.IsVerified,
		&profile.EmergencyContactName,
		&profile.EmergencyContactPhone,
		&profile.IsActive,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find profile",
			zap.Error(err),
			zap.String("key", key),
		)
		return nil, fmt.Errorf("find profile %s: %w", key, err)
	}

	return &profile, nil
}
