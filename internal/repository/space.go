package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sinodiaspora/story-map-api/internal/models"
	"github.com/sinodiaspora/story-map-api/internal/service"
)

type SpaceRepository struct {
	db *pgxpool.Pool
}

func NewSpaceRepository(db *pgxpool.Pool) service.SpaceRepository {
	return &SpaceRepository{db: db}
}

// Create создает новое пространство поддержки в бд
func (r *SpaceRepository) Create(ctx context.Context, space *models.Space) error {
	query := `
		INSERT INTO spaces (name, address, contact_phone, email, additional_note, tags, lat, lng, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		space.Name,
		space.Address,
		space.ContactPhone,
		space.Email,
		space.AdditionalNote,
		space.Tags,
		space.Lat,
		space.Lng,
		space.Status,
	).Scan(&space.ID, &space.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create space: %w", err)
	}
	return nil
}

// ListActive возвращает только активные пространства, новые сверху
func (r *SpaceRepository) ListActive(ctx context.Context) ([]*models.Space, error) {
	query := `
		SELECT id, name, address, contact_phone, email, additional_note, tags, lat, lng, status, created_at
		FROM spaces
		WHERE status = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, models.SpaceStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list active spaces: %w", err)
	}
	defer rows.Close()

	spaces := make([]*models.Space, 0)
	for rows.Next() {
		space := &models.Space{}
		err := rows.Scan(
			&space.ID,
			&space.Name,
			&space.Address,
			&space.ContactPhone,
			&space.Email,
			&space.AdditionalNote,
			&space.Tags,
			&space.Lat,
			&space.Lng,
			&space.Status,
			&space.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan space row: %w", err)
		}
		spaces = append(spaces, space)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return spaces, nil
}

// CountSince считает пространства, созданные после указанного момента
func (r *SpaceRepository) CountSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM spaces WHERE created_at >= $1;`, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count spaces: %w", err)
	}
	return count, nil
}
