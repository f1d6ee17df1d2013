package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sinodiaspora/story-map-api/internal/models"
	"github.com/sinodiaspora/story-map-api/internal/service"
)

// HandoffStore хранит свежеотправленную историю для одноразовой передачи
// на экран квитанции. Ключ живет ограниченное время и сгорает при первом
// чтении.
type HandoffStore struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewHandoffStore(redisClient *redis.Client, ttl time.Duration) service.HandoffStore {
	return &HandoffStore{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func handoffKey(id uuid.UUID) string {
	return fmt.Sprintf("handoff:%s", id.String())
}

// Stash сохраняет историю под одноразовым ключом
func (s *HandoffStore) Stash(ctx context.Context, sub *models.Submission) error {
	val, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("failed to marshal handoff payload: %w", err)
	}
	if err := s.redisClient.Set(ctx, handoffKey(sub.ID), val, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to stash handoff payload: %w", err)
	}
	return nil
}

// Claim забирает и одновременно удаляет историю. Повторное чтение того же
// ключа возвращает nil.
func (s *HandoffStore) Claim(ctx context.Context, id uuid.UUID) (*models.Submission, error) {
	val, err := s.redisClient.GetDel(ctx, handoffKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to claim handoff payload: %w", err)
	}

	sub := &models.Submission{}
	if err := json.Unmarshal(val, sub); err != nil {
		return nil, fmt.Errorf("failed to unmarshal handoff payload: %w", err)
	}
	return sub, nil
}
