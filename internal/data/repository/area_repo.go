package repository

import (
	"context"
	"fmt"

	"venue-reservation/internal/data/entity"
	"venue-reservation/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AreaRepository interface {
	Create(ctx context.Context, area *entity.Area) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Area, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Area, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, area *entity.Area) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type areaRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAreaRepository(db database.PgxIface, log *zap.Logger) AreaRepository {
	return &areaRepository{
		db:  db,
		log: log.With(zap.String("repository", "area")),
	}
}

func (r *areaRepository) Create(ctx context.Context, area *entity.Area) error {
	query := `
		INSERT INTO areas (id, name, description, capacity, daily_rate, discounted_rate,
		                   amenities, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		area.ID,
		area.Name,
		area.Description,
		area.Capacity,
		area.DailyRate,
		area.DiscountedRate,
		area.Amenities,
		area.IsActive,
		area.CreatedAt,
		area.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create area",
			zap.Error(err),
			zap.String("name", area.Name),
		)
		return fmt.Errorf("create area %s: %w", area.Name, err)
	}

	return nil
}

func (r *areaRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Area, error) {
	query := `
		SELECT id, name, description, capacity, daily_rate, discounted_rate,
		       amenities, is_active, created_at, updated_at
		FROM areas
		WHERE id = $1 AND deleted_at IS NULL
	`

	var area entity.Area
	err := r.db.QueryRow(ctx, query, id).Scan(
		&area.ID,
		&area.Name,
		&area.Description,
		&area.Capacity,
		&area.DailyRate,
		&area.DiscountedRate,
		&area.Amenities,
		&area.IsActive,
		&area.CreatedAt,
		&area.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find area by ID",
			zap.Error(err),
			zap.String("area_id", id.String()),
		)
		return nil, fmt.Errorf("find area by ID %s: %w", id.String(), err)
	}

	return &area, nil
}

func (r *areaRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Area, error) {
	query := `
		SELECT id, name, description, capacity, daily_rate, discounted_rate,
		       amenities, is_active, created_at, updated_at
		FROM areas
		WHERE deleted_at IS NULL
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find areas", zap.Error(err))
		return nil, fmt.Errorf("find areas: %w", err)
	}
	defer rows.Close()

	var areas []*entity.Area
	for rows.Next() {
		var area entity.Area
		err := rows.Scan(
			&area.ID,
			&area.Name,
			&area.Description,
			&area.Capacity,
			&area.DailyRate,
			&area.DiscountedRate,
			&area.Amenities,
			&area.IsActive,
			&area.CreatedAt,
			&area.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan area row", zap.Error(err))
			return nil, fmt.Errorf("scan area row: %w", err)
		}
		areas = append(areas, &area)
	}

	return areas, nil
}

func (r *areaRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM areas WHERE deleted_at IS NULL`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count areas", zap.Error(err))
		return 0, fmt.Errorf("count areas: %w", err)
	}

	return count, nil
}

func (r *areaRepository) Update(ctx context.Context, area *entity.Area) error {
	query := `
		UPDATE areas
		SET name = $2, description = $3, capacity = $4, daily_rate = $5,
		    discounted_rate = $6, amenities = $7, is_active = $8, updated_at = $9
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		area.ID,
		area.Name,
		area.Description,
		area.Capacity,
		area.DailyRate,
		area.DiscountedRate,
		area.Amenities,
		area.IsActive,
		area.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update area",
			zap.Error(err),
			zap.String("area_id", area.ID.String()),
		)
		return fmt.Errorf("update area %s: %w", area.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("area %s not found", area.ID.String())
	}

	return nil
}

func (r *areaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE areas SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete area",
			zap.Error(err),
			zap.String("area_id", id.String()),
		)
		return fmt.Errorf("delete area %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("area %s not found", id.String())
	}

	r.log.Info("Area deleted", zap.String("area_id", id.String()))
	return nil
}
