package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sinodiaspora/story-map-api/internal/models"
	"github.com/sinodiaspora/story-map-api/internal/service"
)

const submissionCacheTTL = 5 * time.Minute

type SubmissionRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewSubmissionRepository(db *pgxpool.Pool, redisClient *redis.Client) service.SubmissionRepository {
	return &SubmissionRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Create создает новую запись истории в бд
func (r *SubmissionRepository) Create(ctx context.Context, sub *models.Submission) error {
	violence, err := json.Marshal(sub.ViolenceType)
	if err != nil {
		return fmt.Errorf("failed to marshal violence_type: %w", err)
	}
	scenario, err := json.Marshal(sub.Scenario)
	if err != nil {
		return fmt.Errorf("failed to marshal scenario: %w", err)
	}

	query := `
		INSERT INTO submissions (lat, lng, here_happened, description, feeling_score, violence_type, scenario, region, address)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, created_at;
	`
	err = r.db.QueryRow(ctx, query,
		sub.Lat,
		sub.Lng,
		sub.HereHappened,
		sub.Description,
		sub.FeelingScore,
		violence,
		scenario,
		sub.Region,
		sub.Address,
	).Scan(&sub.ID, &sub.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create submission: %w", err)
	}
	return nil
}

const submissionColumns = `
	id,
	lat,
	lng,
	here_happened,
	description,
	feeling_score,
	violence_type,
	scenario,
	region,
	address,
	created_at`

func scanSubmission(row pgx.Row) (*models.Submission, error) {
	sub := &models.Submission{}
	var violence, scenario []byte
	err := row.Scan(
		&sub.ID,
		&sub.Lat,
		&sub.Lng,
		&sub.HereHappened,
		&sub.Description,
		&sub.FeelingScore,
		&violence,
		&scenario,
		&sub.Region,
		&sub.Address,
		&sub.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(violence) > 0 {
		if err := json.Unmarshal(violence, &sub.ViolenceType); err != nil {
			return nil, fmt.Errorf("failed to unmarshal violence_type: %w", err)
		}
	}
	if len(scenario) > 0 {
		if err := json.Unmarshal(scenario, &sub.Scenario); err != nil {
			return nil, fmt.Errorf("failed to unmarshal scenario: %w", err)
		}
	}
	return sub, nil
}

// GetByID возвращает историю по ее UUID
func (r *SubmissionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE id = $1;`
	sub, err := scanSubmission(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("submission with id %s not found: %w", id, err)
		}
		return nil, fmt.Errorf("failed to get submission by id: %w", err)
	}
	return sub, nil
}

// UpdateAddress дописывает разрешенный адрес в уже созданную запись.
// Единственная мутация историй: клиентского редактирования нет.
func (r *SubmissionRepository) UpdateAddress(ctx context.Context, id uuid.UUID, address string) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE submissions SET address = $1 WHERE id = $2;`, address, id)
	if err != nil {
		return fmt.Errorf("failed to update submission address: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("submission with id %s not found for address update", id)
	}
	return nil
}

func (r *SubmissionRepository) queryMany(ctx context.Context, query string, args ...any) ([]*models.Submission, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subs := make([]*models.Submission, 0)
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission row: %w", err)
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return subs, nil
}

// ListRecent возвращает истории с пагинацией, новые сверху
func (r *SubmissionRepository) ListRecent(ctx context.Context, page, pageSize int) ([]*models.Submission, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + submissionColumns + ` FROM submissions ORDER BY created_at DESC LIMIT $1 OFFSET $2;`
	subs, err := r.queryMany(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return subs, nil
}

// ListAll возвращает все истории, новые сверху
func (r *SubmissionRepository) ListAll(ctx context.Context) ([]*models.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions ORDER BY created_at DESC;`
	subs, err := r.queryMany(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list all submissions: %w", err)
	}
	return subs, nil
}

// FindNearby находит истории в радиусе (в градусах) от точки. Метрика
// намеренно плоская, не геодезическая - грубый прокси для "рядом".
func (r *SubmissionRepository) FindNearby(ctx context.Context, lat, lng, radiusDegrees float64, exclude uuid.UUID) ([]*models.Submission, error) {
	query := `
		SELECT ` + submissionColumns + `
		FROM submissions
		WHERE
			lat IS NOT NULL
			AND lng IS NOT NULL
			AND id != $4
			AND (lat - $1) * (lat - $1) + (lng - $2) * (lng - $2) <= $3 * $3
		ORDER BY created_at DESC;
	`
	subs, err := r.queryMany(ctx, query, lat, lng, radiusDegrees, exclude)
	if err != nil {
		return nil, fmt.Errorf("failed to find nearby submissions: %w", err)
	}
	return subs, nil
}

// CountSince считает истории, созданные после указанного момента
func (r *SubmissionRepository) CountSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM submissions WHERE created_at >= $1;`, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count submissions: %w", err)
	}
	return count, nil
}

// GetFromCache пытается получить историю из Redis
func (r *SubmissionRepository) GetFromCache(ctx context.Context, id uuid.UUID) (*models.Submission, error) {
	key := fmt.Sprintf("submission:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get submission from cache: %w", err)
	}

	sub := &models.Submission{}
	if err := json.Unmarshal(val, sub); err != nil {
		return nil, fmt.Errorf("failed to unmarshal submission from cache: %w", err)
	}
	return sub, nil
}

// SetCache сохраняет историю в Redis
func (r *SubmissionRepository) SetCache(ctx context.Context, sub *models.Submission) error {
	key := fmt.Sprintf("submission:%s", sub.ID.String())
	val, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("failed to marshal submission for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, submissionCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set submission in cache: %w", err)
	}
	return nil
}
