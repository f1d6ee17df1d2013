package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sinodiaspora/story-map-api/internal/draft"
	"github.com/sinodiaspora/story-map-api/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// SubmissionRepository определяет контракт для работы с историями в бд
type SubmissionRepository interface {
	Create(ctx context.Context, sub *models.Submission) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Submission, error)
	UpdateAddress(ctx context.Context, id uuid.UUID, address string) error
	ListRecent(ctx context.Context, page, pageSize int) ([]*models.Submission, error)
	ListAll(ctx context.Context) ([]*models.Submission, error)
	FindNearby(ctx context.Context, lat, lng, radiusDegrees float64, exclude uuid.UUID) ([]*models.Submission, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
	GetFromCache(ctx context.Context, id uuid.UUID) (*models.Submission, error)
	SetCache(ctx context.Context, sub *models.Submission) error
}

// SpaceRepository определяет контракт для работы с пространствами поддержки
type SpaceRepository interface {
	Create(ctx context.Context, space *models.Space) error
	ListActive(ctx context.Context) ([]*models.Space, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
}

// CommentRepository определяет контракт для работы с комментариями
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListVisible(ctx context.Context, submissionID uuid.UUID) ([]*models.Comment, error)
	SetVisibility(ctx context.Context, id uuid.UUID, visible bool) error
	CountSince(ctx context.Context, since time.Time) (int, error)
}

// HandoffStore - одноразовая передача выбранной истории между окнами.
// Claim обязан удалять запись: записи не должны накапливаться.
type HandoffStore interface {
	Stash(ctx context.Context, sub *models.Submission) error
	Claim(ctx context.Context, id uuid.UUID) (*models.Submission, error)
}

// DraftStore хранит сессии черновиков по токену
type DraftStore interface {
	Save(ctx context.Context, token uuid.UUID, d *draft.Draft) error
	Get(ctx context.Context, token uuid.UUID) (*draft.Draft, error)
	Delete(ctx context.Context, token uuid.UUID) error
}
