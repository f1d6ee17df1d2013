package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sinodiaspora/story-map-api/internal/draft"
	"github.com/sinodiaspora/story-map-api/internal/service"
)

// DraftStore хранит сессии черновиков в Redis. TTL продлевается при
// каждом сохранении, заброшенные сессии истекают сами.
type DraftStore struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewDraftStore(redisClient *redis.Client, ttl time.Duration) service.DraftStore {
	return &DraftStore{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func draftKey(token uuid.UUID) string {
	return fmt.Sprintf("draft:%s", token.String())
}

// Save сохраняет черновик и продлевает его жизнь
func (s *DraftStore) Save(ctx context.Context, token uuid.UUID, d *draft.Draft) error {
	val, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}
	if err := s.redisClient.Set(ctx, draftKey(token), val, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

// Get возвращает черновик по токену сессии; nil при отсутствии
func (s *DraftStore) Get(ctx context.Context, token uuid.UUID) (*draft.Draft, error) {
	val, err := s.redisClient.Get(ctx, draftKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}

	d := &draft.Draft{}
	if err := json.Unmarshal(val, d); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}
	return d, nil
}

// Delete удаляет сессию черновика
func (s *DraftStore) Delete(ctx context.Context, token uuid.UUID) error {
	if err := s.redisClient.Del(ctx, draftKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}
