package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/mealmatch_system/internal/models"
)

// SearchLogRepository пишет журнал поисковых запросов и считает статистику.
// Реализует searchlog.Recorder и service.SearchLogRepository.
type SearchLogRepository struct {
	db *pgxpool.Pool
}

func NewSearchLogRepository(db *pgxpool.Pool) *SearchLogRepository {
	return &SearchLogRepository{db: db}
}

// SaveSearchEvent сохраняет запись о поисковом запросе в бд
func (r *SearchLogRepository) SaveSearchEvent(ctx context.Context, event *models.SearchEvent) error {
	query := `
		INSERT INTO search_log (seeker_id, entity_kind, latitude, longitude, radius_km, results_len, searched_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		event.SeekerID,
		event.EntityKind,
		event.Latitude,
		event.Longitude,
		event.RadiusKm,
		event.ResultsLen,
		event.SearchedAt,
	).Scan(&event.ID)
	if err != nil {
		return storageError(fmt.Errorf("failed to save search event: %w", err))
	}
	return nil
}

// CountDistinctSeekers возвращает количество уникальных искавших за окно
func (r *SearchLogRepository) CountDistinctSeekers(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(DISTINCT seeker_id)
		FROM search_log
		WHERE searched_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	var count int
	err := r.db.QueryRow(ctx, query, minutes).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, storageError(fmt.Errorf("failed to count distinct seekers: %w", err))
	}
	return count, nil
}
