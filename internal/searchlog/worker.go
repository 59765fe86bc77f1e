package searchlog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/mealmatch_system/internal/config"
	"github.com/shenikar/mealmatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Recorder сохраняет поисковые события в постоянное хранилище
type Recorder interface {
	SaveSearchEvent(ctx context.Context, event *models.SearchEvent) error
}

// Worker - фоновый обработчик очереди поисковых событий.
// Доставка из очереди в БД с повторами, вне пути запроса.
type Worker struct {
	redisClient *redis.Client
	recorder    Recorder
	logger      *logrus.Logger
	cfg         *config.Config
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, recorder Recorder, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		recorder:    recorder,
		logger:      logger,
		cfg:         cfg,
	}
}

// Start запускает горутину для обработки очереди поисковых событий
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting search log worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping search log worker.")
				return
			default:
				// BRPOP - блокирующее извлечение из правой части списка (очереди)
				// 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, searchQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue // Контекст отменен, но не ошибка Redis
					}
					w.logger.WithError(err).Error("Failed to pop search event from Redis")
					time.Sleep(w.cfg.SearchLogBaseDelay)
					continue
				}

				// result[0] - ключ, result[1] - значение
				var event Event
				if err := json.Unmarshal([]byte(result[1]), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal search event from Redis")
					continue
				}

				w.recordEvent(ctx, event)
			}
		}
	}()
}

// recordEvent записывает событие в хранилище с повторами и
// экспоненциальной задержкой
func (w *Worker) recordEvent(ctx context.Context, event Event) {
	log := w.logger.WithField("entity_kind", event.EntityKind).WithField("seeker_id", event.SeekerID)
	log.Debug("Recording search event...")

	record := &models.SearchEvent{
		SeekerID:   event.SeekerID,
		EntityKind: event.EntityKind,
		Latitude:   event.Latitude,
		Longitude:  event.Longitude,
		RadiusKm:   event.RadiusKm,
		ResultsLen: event.ResultsLen,
		SearchedAt: event.Timestamp,
	}

	delay := w.cfg.SearchLogBaseDelay
	for i := 0; i < w.cfg.SearchLogMaxRetries; i++ {
		err := w.recorder.SaveSearchEvent(ctx, record)
		if err == nil {
			log.Debug("Search event recorded.")
			return
		}
		log.WithError(err).Warnf("Failed to record search event. Retrying in %v. Retries left: %d", delay, w.cfg.SearchLogMaxRetries-1-i)
		time.Sleep(delay)
		delay *= 2 // Экспоненциальная задержка
	}

	log.Errorf("Failed to record search event after %d retries.", w.cfg.SearchLogMaxRetries)
}
