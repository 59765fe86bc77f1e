package models

import (
	"time"

	"github.com/google/uuid"
)

// Shelter - приют с конечным числом спальных мест.
// Инвариант 0 <= AvailableBeds <= TotalBeds поддерживается только
// через сервис доступности, поля напрямую не изменяются.
type Shelter struct {
	ID              uuid.UUID `json:"id"`
	OwnerID         uuid.UUID `json:"owner_id"`
	Name            string    `json:"name"`
	Address         string    `json:"address"`
	City            string    `json:"city"`
	State           string    `json:"state"`
	ZipCode         string    `json:"zip_code"`
	Phone           string    `json:"phone"`
	Location        GeoPoint  `json:"location"`
	TotalBeds       int       `json:"total_beds"`
	AvailableBeds   int       `json:"available_beds"`
	ServicesOffered []string  `json:"services_offered"`
	// Время раздачи еды в формате "HH:MM", пустая строка - не предлагается
	BreakfastTime string    `json:"breakfast_time,omitempty"`
	LunchTime     string    `json:"lunch_time,omitempty"`
	DinnerTime    string    `json:"dinner_time,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
