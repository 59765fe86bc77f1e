package models

import (
	"time"
)

// SearchEvent - запись о выполненном поисковом запросе.
// Пишется асинхронно и используется только для статистики провайдеров.
type SearchEvent struct {
	ID         int64     `json:"id"`
	SeekerID   string    `json:"seeker_id"`
	EntityKind string    `json:"entity_kind"`
	Latitude   *float64  `json:"latitude,omitempty"`
	Longitude  *float64  `json:"longitude,omitempty"`
	RadiusKm   *float64  `json:"radius_km,omitempty"`
	ResultsLen int       `json:"results_len"`
	SearchedAt time.Time `json:"searched_at"`
}
