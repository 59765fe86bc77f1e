package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/mealmatch_system/internal/apperrors"
)

// MealType - категория предложения еды
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
	MealTypeAny       MealType = "any"
)

// IsValid проверяет, что категория входит в фиксированный перечень
func (t MealType) IsValid() bool {
	switch t {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack, MealTypeAny:
		return true
	}
	return false
}

// Meal - предложение еды, опубликованное рестораном.
// QuantityAvailable информационное: нигде не списывается,
// механика бронирования отсутствует намеренно.
type Meal struct {
	ID              uuid.UUID `json:"id"`
	RestaurantID    uuid.UUID `json:"restaurant_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	MealType        MealType  `json:"meal_type"`
	IsFree          bool      `json:"is_free"`
	OriginalPrice   float64   `json:"original_price"`
	DiscountedPrice float64   `json:"discounted_price"`
	// nil означает "без ограничения количества"
	QuantityAvailable *int      `json:"quantity_available,omitempty"`
	DietaryTags       []string  `json:"dietary_tags,omitempty"`
	StartTime         time.Time `json:"start_time"`
	EndTime           time.Time `json:"end_time"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Validate проверяет инварианты предложения.
// Возвращает первую нарушенную проверку.
func (m *Meal) Validate() error {
	if m.Title == "" {
		return apperrors.New(apperrors.KindValidation, "title is required")
	}
	if !m.MealType.IsValid() {
		return apperrors.Newf(apperrors.KindValidation, "unknown meal type %q", m.MealType)
	}
	if !m.StartTime.Before(m.EndTime) {
		return apperrors.New(apperrors.KindValidation, "start time must be before end time")
	}
	if m.IsFree {
		// Для бесплатных предложений переданные цены игнорируются
		m.OriginalPrice = 0
		m.DiscountedPrice = 0
	} else {
		if m.OriginalPrice < 0 || m.DiscountedPrice < 0 {
			return apperrors.New(apperrors.KindValidation, "prices must not be negative")
		}
		if m.DiscountedPrice > m.OriginalPrice {
			return apperrors.New(apperrors.KindValidation, "discounted price must not exceed original price")
		}
	}
	if m.QuantityAvailable != nil && *m.QuantityAvailable < 0 {
		return apperrors.New(apperrors.KindValidation, "quantity available must not be negative")
	}
	return nil
}

// IsVisibleAt сообщает, должно ли предложение попадать в поисковую выдачу
// в данный момент времени. Свойство производное и нигде не хранится.
func (m *Meal) IsVisibleAt(now time.Time) bool {
	return m.IsActive && !m.StartTime.After(now) && now.Before(m.EndTime)
}

// MealWithRestaurant - предложение вместе с данными заведения,
// как его возвращает поисковый запрос
type MealWithRestaurant struct {
	Meal
	RestaurantName    string   `json:"restaurant_name"`
	RestaurantAddress string   `json:"restaurant_address"`
	RestaurantCity    string   `json:"restaurant_city"`
	RestaurantPhone   string   `json:"restaurant_phone"`
	Location          GeoPoint `json:"location"`
}
