package alert

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mocks.go -package=mocks

const alertQueueKey = "emergency_alerts"

// Event - событие об истории с критической оценкой (feeling_score <= -90).
// Уходит модераторам, чтобы человек посмотрел на запись как можно раньше.
type Event struct {
	SubmissionID uuid.UUID `json:"submission_id"`
	Region       string    `json:"region"`
	FeelingScore int       `json:"feeling_score"`
	Lat          *float64  `json:"lat,omitempty"`
	Lng          *float64  `json:"lng,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// Publisher - интерфейс для публикации экстренных событий
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher - реализация Publisher поверх очереди в Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{redisClient: client}
}

// Publish кладет событие в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	// LPUSH в левую часть списка, воркер снимает с правой
	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert event to Redis: %w", err)
	}
	return nil
}
