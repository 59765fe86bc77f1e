package v1

import (
	"time"

	"github.com/google/uuid"
)

// ErrorResponse - единый формат ошибки: стабильная категория и
// человекочитаемое сообщение, без внутренних деталей
// @Description Ответ с ошибкой
type ErrorResponse struct {
	Kind  string `json:"kind"`
	Error string `json:"error"`
}

// SearchMealsRequest DTO для поиска предложений еды
// @Description DTO для поиска предложений еды
type SearchMealsRequest struct {
	Lat      *float64 `form:"lat"`
	Lng      *float64 `form:"lng"`
	RadiusKm float64  `form:"radius,default=10"`
	MealType string   `form:"mealType" validate:"omitempty,oneof=breakfast lunch dinner snack any"`
	IsFree   bool     `form:"isFree"`
	Limit    int      `form:"limit,default=20"`
	Offset   int      `form:"offset,default=0"`
}

// SearchSheltersRequest DTO для поиска приютов
// @Description DTO для поиска приютов
type SearchSheltersRequest struct {
	Lat      *float64 `form:"lat"`
	Lng      *float64 `form:"lng"`
	RadiusKm float64  `form:"radius,default=10"`
	Limit    int      `form:"limit,default=20"`
	Offset   int      `form:"offset,default=0"`
}

// CreateMealRequest DTO для создания предложения еды
// @Description DTO для создания предложения еды
type CreateMealRequest struct {
	RestaurantID      uuid.UUID `json:"restaurant_id" validate:"required"`
	Title             string    `json:"title" validate:"required,min=2,max=255"`
	Description       string    `json:"description,omitempty"`
	MealType          string    `json:"meal_type" validate:"required,oneof=breakfast lunch dinner snack any"`
	IsFree            bool      `json:"is_free"`
	OriginalPrice     float64   `json:"original_price" validate:"gte=0"`
	DiscountedPrice   float64   `json:"discounted_price" validate:"gte=0"`
	QuantityAvailable *int      `json:"quantity_available,omitempty" validate:"omitempty,gte=0"`
	DietaryTags       []string  `json:"dietary_tags,omitempty"`
	StartTime         time.Time `json:"start_time" validate:"required"`
	EndTime           time.Time `json:"end_time" validate:"required"`
}

// UpdateMealRequest DTO для частичного обновления предложения.
// Отсутствующее поле остается без изменений.
// @Description DTO для частичного обновления предложения
type UpdateMealRequest struct {
	Title             *string    `json:"title,omitempty" validate:"omitempty,min=2,max=255"`
	Description       *string    `json:"description,omitempty"`
	MealType          *string    `json:"meal_type,omitempty" validate:"omitempty,oneof=breakfast lunch dinner snack any"`
	IsFree            *bool      `json:"is_free,omitempty"`
	OriginalPrice     *float64   `json:"original_price,omitempty" validate:"omitempty,gte=0"`
	DiscountedPrice   *float64   `json:"discounted_price,omitempty" validate:"omitempty,gte=0"`
	QuantityAvailable *int       `json:"quantity_available,omitempty" validate:"omitempty,gte=0"`
	DietaryTags       *[]string  `json:"dietary_tags,omitempty"`
	StartTime         *time.Time `json:"start_time,omitempty"`
	EndTime           *time.Time `json:"end_time,omitempty"`
}

// MealResponse DTO для ответа с информацией о предложении
// @Description DTO для ответа с информацией о предложении
type MealResponse struct {
	ID                uuid.UUID `json:"id"`
	RestaurantID      uuid.UUID `json:"restaurant_id"`
	Title             string    `json:"title"`
	Description       string    `json:"description,omitempty"`
	MealType          string    `json:"meal_type"`
	IsFree            bool      `json:"is_free"`
	OriginalPrice     float64   `json:"original_price"`
	DiscountedPrice   float64   `json:"discounted_price"`
	QuantityAvailable *int      `json:"quantity_available,omitempty"`
	DietaryTags       []string  `json:"dietary_tags,omitempty"`
	StartTime         time.Time `json:"start_time"`
	EndTime           time.Time `json:"end_time"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	RestaurantName    string   `json:"restaurant_name,omitempty"`
	RestaurantAddress string   `json:"restaurant_address,omitempty"`
	RestaurantCity    string   `json:"restaurant_city,omitempty"`
	RestaurantPhone   string   `json:"restaurant_phone,omitempty"`
	Latitude          *float64 `json:"latitude,omitempty"`
	Longitude         *float64 `json:"longitude,omitempty"`
	// Расстояние до точки поиска, округленное до 0.1 км
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

// SearchMealsResponse DTO для страницы поисковой выдачи предложений
// @Description DTO для страницы поисковой выдачи предложений
type SearchMealsResponse struct {
	Meals []*MealResponse `json:"meals"`
	Total int             `json:"total"`
}

// CreateShelterRequest DTO для создания приюта
// @Description DTO для создания приюта
type CreateShelterRequest struct {
	Name            string   `json:"name" validate:"required,min=2,max=255"`
	Address         string   `json:"address,omitempty"`
	City            string   `json:"city,omitempty"`
	State           string   `json:"state,omitempty"`
	ZipCode         string   `json:"zip_code,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	Latitude        float64  `json:"latitude" validate:"latitude"`
	Longitude       float64  `json:"longitude" validate:"longitude"`
	TotalBeds       int      `json:"total_beds" validate:"required,gte=1"`
	ServicesOffered []string `json:"services_offered,omitempty"`
	BreakfastTime   string   `json:"breakfast_time,omitempty"`
	LunchTime       string   `json:"lunch_time,omitempty"`
	DinnerTime      string   `json:"dinner_time,omitempty"`
}

// UpdateShelterRequest DTO для частичного обновления приюта
// @Description DTO для частичного обновления приюта
type UpdateShelterRequest struct {
	Name            *string   `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Address         *string   `json:"address,omitempty"`
	City            *string   `json:"city,omitempty"`
	State           *string   `json:"state,omitempty"`
	ZipCode         *string   `json:"zip_code,omitempty"`
	Phone           *string   `json:"phone,omitempty"`
	Latitude        *float64  `json:"latitude,omitempty"`
	Longitude       *float64  `json:"longitude,omitempty"`
	ServicesOffered *[]string `json:"services_offered,omitempty"`
	BreakfastTime   *string   `json:"breakfast_time,omitempty"`
	LunchTime       *string   `json:"lunch_time,omitempty"`
	DinnerTime      *string   `json:"dinner_time,omitempty"`
}

// UpdateAvailabilityRequest DTO для абсолютной установки числа свободных мест
// @Description DTO для установки числа свободных мест
type UpdateAvailabilityRequest struct {
	AvailableBeds *int `json:"available_beds" validate:"required,gte=0"`
}

// ShelterResponse DTO для ответа с информацией о приюте
// @Description DTO для ответа с информацией о приюте
type ShelterResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Address         string    `json:"address,omitempty"`
	City            string    `json:"city,omitempty"`
	State           string    `json:"state,omitempty"`
	ZipCode         string    `json:"zip_code,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	TotalBeds       int       `json:"total_beds"`
	AvailableBeds   int       `json:"available_beds"`
	ServicesOffered []string  `json:"services_offered,omitempty"`
	BreakfastTime   string    `json:"breakfast_time,omitempty"`
	LunchTime       string    `json:"lunch_time,omitempty"`
	DinnerTime      string    `json:"dinner_time,omitempty"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	DistanceKm      *float64  `json:"distance_km,omitempty"`
}

// SearchSheltersResponse DTO для страницы поисковой выдачи приютов
// @Description DTO для страницы поисковой выдачи приютов
type SearchSheltersResponse struct {
	Shelters []*ShelterResponse `json:"shelters"`
	Total    int                `json:"total"`
}

// CreateRestaurantRequest DTO для создания ресторана
// @Description DTO для создания ресторана
type CreateRestaurantRequest struct {
	Name      string  `json:"name" validate:"required,min=2,max=255"`
	Address   string  `json:"address,omitempty"`
	City      string  `json:"city,omitempty"`
	State     string  `json:"state,omitempty"`
	ZipCode   string  `json:"zip_code,omitempty"`
	Phone     string  `json:"phone,omitempty"`
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// RestaurantResponse DTO для ответа с информацией о ресторане
// @Description DTO для ответа с информацией о ресторане
type RestaurantResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	State     string    `json:"state,omitempty"`
	ZipCode   string    `json:"zip_code,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StatsResponse DTO для ответа со статистикой поиска
// @Description DTO для ответа со статистикой поиска
type StatsResponse struct {
	SeekerCount int `json:"seeker_count"`
}
