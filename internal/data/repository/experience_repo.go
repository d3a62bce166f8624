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

const experienceColumns = `id, provider_id, category_id, title, description, short_description, photos,
	       city, state, address, price, slot_duration, max_seekers, requires_nda,
	       status, avg_rating, review_count, created_at, updated_at`

// ExperienceFilter narrows discovery listings. Zero values mean no filter.
type ExperienceFilter struct {
	CategoryID uuid.UUID
	City       string
	State      string
}

type ExperienceRepository interface {
	Create(ctx context.Context, experience *entity.Experience) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Experience, error)
	FindPublished(ctx context.Context, filter ExperienceFilter, limit, offset int) ([]*entity.Experience, error)
	CountPublished(ctx context.Context, filter ExperienceFilter) (int64, error)
	FindByProviderID(ctx context.Context, providerID uuid.UUID) ([]*entity.Experience, error)
	Update(ctx context.Context, experience *entity.Experience) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ExperienceStatus) error
}

type experienceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewExperienceRepository(db database.PgxIface, log *zap.Logger) ExperienceRepository {
	return &experienceRepository{
		db:  db,
		log: log.With(zap.String("repository", "experience")),
	}
}

func (r *experienceRepository) Create(ctx context.Context, experience *entity.Experience) error {
	query := `
		INSERT INTO experiences (id, provider_id, category_id, title, description, short_description, photos,
		                         city, state, address, price, slot_duration, max_seekers, requires_nda,
		                         status, avg_rating, review_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`

	_, err := r.db.Exec(ctx, query,
		experience.ID,
		experience.ProviderID,
		experience.CategoryID,
		experience.Title,
		experience.Description,
		experience.ShortDescription,
		experience.Photos,
		experience.City,
		experience.State,
		experience.Address,
		experience.Price,
		experience.SlotDuration,
		experience.MaxSeekers,
		experience.RequiresNDA,
		experience.Status,
		experience.AvgRating,
		experience.ReviewCount,
		experience.CreatedAt,
		experience.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create experience",
			zap.Error(err),
			zap.String("provider_id", experience.ProviderID.String()),
			zap.String("title", experience.Title),
		)
		return fmt.Errorf("create experience %s: %w", experience.Title, err)
	}

	return nil
}

func (r *experienceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences WHERE id = $1`

	var experience entity.Experience
	err := r.db.QueryRow(ctx, query, id).Scan(r.scanTargets(&experience)...)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find experience by ID",
			zap.Error(err),
			zap.String("experience_id", id.String()),
		)
		return nil, fmt.Errorf("find experience by ID %s: %w", id.String(), err)
	}

	return &experience, nil
}

func (r *experienceRepository) FindPublished(ctx context.Context, filter ExperienceFilter, limit, offset int) ([]*entity.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences WHERE status = 'published'`
	args := []any{}
	query, args = appendExperienceFilter(query, args, filter)
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list published experiences", zap.Error(err))
		return nil, fmt.Errorf("list published experiences: %w", err)
	}
	defer rows.Close()

	var experiences []*entity.Experience
	for rows.Next() {
		var experience entity.Experience
		if err := rows.Scan(r.scanTargets(&experience)...); err != nil {
			r.log.Error("Failed to scan experience row", zap.Error(err))
			return nil, fmt.Errorf("scan experience row: %w", err)
		}
		experiences = append(experiences, &experience)
	}

	return experiences, nil
}

func (r *experienceRepository) CountPublished(ctx context.Context, filter ExperienceFilter) (int64, error) {
	query := `SELECT COUNT(*) FROM experiences WHERE status = 'published'`
	args := []any{}
	query, args = appendExperienceFilter(query, args, filter)

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count published experiences", zap.Error(err))
		return 0, fmt.Errorf("count published experiences: %w", err)
	}

	return count, nil
}

func (r *experienceRepository) FindByProviderID(ctx context.Context, providerID uuid.UUID) ([]*entity.Experience, error) {
	query := `
		SELECT ` + experienceColumns + `
		FROM experiences
		WHERE provider_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, providerID)
	if err != nil {
		r.log.Error("Failed to find experiences by provider ID",
			zap.Error(err),
			zap.String("provider_id", providerID.String()),
		)
		return nil, fmt.Errorf("find experiences by provider ID %s: %w", providerID.String(), err)
	}
	defer rows.Close()

	var experiences []*entity.Experience
	for rows.Next() {
		var experience entity.Experience
		if err := rows.Scan(r.scanTargets(&experience)...); err != nil {
			r.log.Error("Failed to scan experience row", zap.Error(err))
			return nil, fmt.Errorf("scan experience row: %w", err)
		}
		experiences = append(experiences, &experience)
	}

	return experiences, nil
}

func (r *experienceRepository) Update(ctx context.Context, experience *entity.Experience) error {
	query := `
		UPDATE experiences
		SET category_id = $2, title = $3, description = $4, short_description = $5,
		    photos = $6, city = $7, state = $8, address = $9, price = $10,
		    slot_duration = $11, max_seekers = $12, requires_nda = $13, updated_at = $14
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		experience.ID,
		experience.CategoryID,
		experience.Title,
		experience.Description,
		experience.ShortDescription,
		experience.Photos,
		experience.City,
		experience.State,
		experience.Address,
		experience.Price,
		experience.SlotDuration,
		experience.MaxSeekers,
		experience.RequiresNDA,
		experience.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update experience",
			zap.Error(err),
			zap.String("experience_id", experience.ID.String()),
		)
		return fmt.Errorf("update experience %s: %w", experience.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("experience %s not found", experience.ID.String())
	}

	return nil
}

func (r *experienceRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ExperienceStatus) error {
	query := `UPDATE experiences SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update experience status",
			zap.Error(err),
			zap.String("experience_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update experience %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("experience %s not found", id.String())
	}

	return nil
}

// ==================== HELPERS ====================

func (r *experienceRepository) scanTargets(e *entity.Experience) []any {
	return []any{
		&e.ID,
		&e.ProviderID,
		&e.CategoryID,
		&e.Title,
		&e.Description,
		&e.ShortDescription,
		&e.Photos,
		&e.City,
		&e.State,
		&e.Address,
		&e.Price,
		&e.SlotDuration,
		&e.MaxSeekers,
		&e.RequiresNDA,
		&e.Status,
		&e.AvgRating,
		&e.ReviewCount,
		&e.CreatedAt,
		&e.UpdatedAt,
	}
}

func appendExperienceFilter(query string, args []any, filter ExperienceFilter) (string, []any) {
	if filter.CategoryID != uuid.Nil {
		args = append(args, filter.CategoryID)
		query += fmt.Sprintf(` AND category_id = $%d`, len(args))
	}
	if filter.City != "" {
		args = append(args, filter.City)
		query += fmt.Sprintf(` AND city ILIKE $%d`, len(args))
	}
	if filter.State != "" {
		args = append(args, filter.State)
		query += fmt.Sprintf(` AND state = $%d`, len(args))
	}
	return query, args
}
