package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sinodiaspora/story-map-api/internal/models"
	"github.com/sinodiaspora/story-map-api/internal/service"
)

type CommentRepository struct {
	db *pgxpool.Pool
}

func NewCommentRepository(db *pgxpool.Pool) service.CommentRepository {
	return &CommentRepository{db: db}
}

// Create создает новый комментарий к истории
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (submission_id, text, visible)
		VALUES ($1, $2, $3) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		comment.SubmissionID,
		comment.Text,
		comment.Visible,
	).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// ListVisible возвращает видимые комментарии истории, новые сверху
func (r *CommentRepository) ListVisible(ctx context.Context, submissionID uuid.UUID) ([]*models.Comment, error) {
	query := `
		SELECT id, submission_id, text, visible, created_at
		FROM comments
		WHERE submission_id = $1 AND visible = true
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, submissionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]*models.Comment, 0)
	for rows.Next() {
		comment := &models.Comment{}
		err := rows.Scan(
			&comment.ID,
			&comment.SubmissionID,
			&comment.Text,
			&comment.Visible,
			&comment.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return comments, nil
}

// SetVisibility меняет видимость комментария (модерация)
func (r *CommentRepository) SetVisibility(ctx context.Context, id uuid.UUID, visible bool) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE comments SET visible = $1 WHERE id = $2;`, visible, id)
	if err != nil {
		return fmt.Errorf("failed to update comment visibility: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("comment with id %s not found", id)
	}
	return nil
}

// CountSince считает комментарии, созданные после указанного момента
func (r *CommentRepository) CountSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM comments WHERE created_at >= $1;`, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}
	return count, nil
}
