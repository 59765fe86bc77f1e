package searchlog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	searchQueueKey = "search_events"
)

// Event - данные одного поискового запроса для журнала статистики
type Event struct {
	SeekerID   string    `json:"seeker_id"`
	EntityKind string    `json:"entity_kind"`
	Latitude   *float64  `json:"latitude,omitempty"`
	Longitude  *float64  `json:"longitude,omitempty"`
	RadiusKm   *float64  `json:"radius_km,omitempty"`
	ResultsLen int       `json:"results_len"`
	Timestamp  time.Time `json:"timestamp"`
}

// Publisher - интерфейс для публикации поисковых событий
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher - реализация Publisher, использующая очередь Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует поисковое событие в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal search event: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, searchQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish search event to Redis: %w", err)
	}
	return nil
}
