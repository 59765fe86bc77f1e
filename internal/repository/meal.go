package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/mealmatch_system/internal/models"
	"github.com/shenikar/mealmatch_system/internal/service"
)

// mealColumns - общий список полей выборки предложения вместе с заведением
const mealColumns = `
	m.id,
	m.restaurant_id,
	m.title,
	m.description,
	m.meal_type,
	m.is_free,
	m.original_price,
	m.discounted_price,
	m.quantity_available,
	m.dietary_tags,
	m.start_time,
	m.end_time,
	m.is_active,
	m.created_at,
	m.updated_at,
	r.name,
	r.address,
	r.city,
	r.phone,
	ST_Y(r.location::geometry) as latitude,
	ST_X(r.location::geometry) as longitude`

type MealRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewMealRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.MealRepository {
	return &MealRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// Create создает новое предложение еды в бд
func (r *MealRepository) Create(ctx context.Context, meal *models.Meal) error {
	query := `
		INSERT INTO meals (
			restaurant_id, title, description, meal_type,
			is_free, original_price, discounted_price,
			quantity_available, dietary_tags, start_time, end_time, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		meal.RestaurantID,
		meal.Title,
		meal.Description,
		meal.MealType,
		meal.IsFree,
		meal.OriginalPrice,
		meal.DiscountedPrice,
		meal.QuantityAvailable,
		meal.DietaryTags,
		meal.StartTime,
		meal.EndTime,
		meal.IsActive,
	).Scan(&meal.ID, &meal.CreatedAt, &meal.UpdatedAt)
	if err != nil {
		return storageError(fmt.Errorf("failed to create meal: %w", err))
	}
	return nil
}

// GetByID возвращает предложение вместе с данными заведения
func (r *MealRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.MealWithRestaurant, error) {
	query := `
		SELECT ` + mealColumns + `
		FROM meals m
		JOIN restaurants r ON m.restaurant_id = r.id
		WHERE m.id = $1;
	`
	meal, err := scanMealRow(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, classifyGetError(err, fmt.Sprintf("meal with id %s not found", id))
	}
	return meal, nil
}

// Update обновляет все изменяемые поля предложения
func (r *MealRepository) Update(ctx context.Context, meal *models.Meal) error {
	query := `
		UPDATE meals SET
			title = $1,
			description = $2,
			meal_type = $3,
			is_free = $4,
			original_price = $5,
			discounted_price = $6,
			quantity_available = $7,
			dietary_tags = $8,
			start_time = $9,
			end_time = $10,
			updated_at = NOW()
		WHERE id = $11
		RETURNING updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		meal.Title,
		meal.Description,
		meal.MealType,
		meal.IsFree,
		meal.OriginalPrice,
		meal.DiscountedPrice,
		meal.QuantityAvailable,
		meal.DietaryTags,
		meal.StartTime,
		meal.EndTime,
		meal.ID,
	).Scan(&meal.UpdatedAt)
	if err != nil {
		return classifyGetError(err, fmt.Sprintf("meal with id %s not found for update", meal.ID))
	}
	return nil
}

// Deactivate устанавливает is_active = FALSE для предложения.
// Повторная деактивация не является ошибкой.
func (r *MealRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE meals SET
			is_active = FALSE,
			updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return storageError(fmt.Errorf("failed to deactivate meal: %w", err))
	}
	if cmdTag.RowsAffected() == 0 {
		return classifyGetError(pgx.ErrNoRows, fmt.Sprintf("meal with id %s not found for deactivate", id))
	}
	return nil
}

// ListByRestaurant возвращает все предложения заведения, включая неактивные
func (r *MealRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*models.Meal, error) {
	query := `
		SELECT
			id, restaurant_id, title, description, meal_type,
			is_free, original_price, discounted_price,
			quantity_available, dietary_tags, start_time, end_time,
			is_active, created_at, updated_at
		FROM meals
		WHERE restaurant_id = $1
		ORDER BY created_at DESC, id;
	`
	rows, err := r.db.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, storageError(fmt.Errorf("failed to list restaurant meals: %w", err))
	}
	defer rows.Close()

	meals := make([]*models.Meal, 0)
	for rows.Next() {
		meal := &models.Meal{}
		err := rows.Scan(
			&meal.ID,
			&meal.RestaurantID,
			&meal.Title,
			&meal.Description,
			&meal.MealType,
			&meal.IsFree,
			&meal.OriginalPrice,
			&meal.DiscountedPrice,
			&meal.QuantityAvailable,
			&meal.DietaryTags,
			&meal.StartTime,
			&meal.EndTime,
			&meal.IsActive,
			&meal.CreatedAt,
			&meal.UpdatedAt,
		)
		if err != nil {
			return nil, storageError(fmt.Errorf("failed to scan meal row: %w", err))
		}
		meals = append(meals, meal)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(fmt.Errorf("error meal list iteration: %w", err))
	}
	return meals, nil
}

// FindVisibleNear находит видимые предложения в радиусе от точки.
// Двухфазный фильтр: GIST-индекс отбрасывает далекие строки по
// ограничивающему прямоугольнику, ST_DWithin уточняет по геодезическому
// расстоянию (граница включительно).
func (r *MealRepository) FindVisibleNear(ctx context.Context, point models.GeoPoint, radiusKm float64, mealType models.MealType, freeOnly bool) ([]*models.MealWithRestaurant, error) {
	query := `
		SELECT ` + mealColumns + `
		FROM meals m
		JOIN restaurants r ON m.restaurant_id = r.id
		WHERE
			m.is_active = TRUE
			AND r.is_active = TRUE
			AND m.start_time <= NOW()
			AND m.end_time > NOW()
			AND ST_DWithin(
				r.location,
				ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
				$3 * 1000
			)
			AND ($4 = '' OR m.meal_type = $4)
			AND (NOT $5 OR m.is_free = TRUE);
	`
	rows, err := r.db.Query(ctx, query, point.Lon, point.Lat, radiusKm, string(mealType), freeOnly)
	if err != nil {
		return nil, storageError(fmt.Errorf("failed to find visible meals near point: %w", err))
	}
	defer rows.Close()
	return collectMealRows(rows)
}

// ListVisible возвращает все видимые предложения без геофильтра,
// от новых к старым
func (r *MealRepository) ListVisible(ctx context.Context, mealType models.MealType, freeOnly bool) ([]*models.MealWithRestaurant, error) {
	query := `
		SELECT ` + mealColumns + `
		FROM meals m
		JOIN restaurants r ON m.restaurant_id = r.id
		WHERE
			m.is_active = TRUE
			AND r.is_active = TRUE
			AND m.start_time <= NOW()
			AND m.end_time > NOW()
			AND ($1 = '' OR m.meal_type = $1)
			AND (NOT $2 OR m.is_free = TRUE)
		ORDER BY m.created_at DESC, m.id;
	`
	rows, err := r.db.Query(ctx, query, string(mealType), freeOnly)
	if err != nil {
		return nil, storageError(fmt.Errorf("failed to list visible meals: %w", err))
	}
	defer rows.Close()
	return collectMealRows(rows)
}

// scanMealRow читает одну строку выборки с полями mealColumns
func scanMealRow(row pgx.Row) (*models.MealWithRestaurant, error) {
	meal := &models.MealWithRestaurant{}
	err := row.Scan(
		&meal.ID,
		&meal.RestaurantID,
		&meal.Title,
		&meal.Description,
		&meal.MealType,
		&meal.IsFree,
		&meal.OriginalPrice,
		&meal.DiscountedPrice,
		&meal.QuantityAvailable,
		&meal.DietaryTags,
		&meal.StartTime,
		&meal.EndTime,
		&meal.IsActive,
		&meal.CreatedAt,
		&meal.UpdatedAt,
		&meal.RestaurantName,
		&meal.RestaurantAddress,
		&meal.RestaurantCity,
		&meal.RestaurantPhone,
		&meal.Location.Lat,
		&meal.Location.Lon,
	)
	if err != nil {
		return nil, err
	}
	return meal, nil
}

func collectMealRows(rows pgx.Rows) ([]*models.MealWithRestaurant, error) {
	meals := make([]*models.MealWithRestaurant, 0)
	for rows.Next() {
		meal, err := scanMealRow(rows)
		if err != nil {
			return nil, storageError(fmt.Errorf("failed to scan meal row: %w", err))
		}
		meals = append(meals, meal)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(fmt.Errorf("error meal list iteration: %w", err))
	}
	return meals, nil
}

// GetMealFromCache пытается получить предложение из Redis
func (r *MealRepository) GetMealFromCache(ctx context.Context, id uuid.UUID) (*models.MealWithRestaurant, error) {
	key := fmt.Sprintf("meal:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get meal from cache: %w", err)
	}

	meal := &models.MealWithRestaurant{}
	if err := json.Unmarshal(val, meal); err != nil {
		return nil, fmt.Errorf("failed to unmarshal meal from cache: %w", err)
	}
	return meal, nil
}

// SetMealCache сохраняет предложение в Redis
func (r *MealRepository) SetMealCache(ctx context.Context, meal *models.MealWithRestaurant) error {
	key := fmt.Sprintf("meal:%s", meal.ID.String())
	val, err := json.Marshal(meal)
	if err != nil {
		return fmt.Errorf("failed to marshal meal for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set meal in cache: %w", err)
	}
	return nil
}

// InvalidateMealCache удаляет предложение из Redis кэша
func (r *MealRepository) InvalidateMealCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("meal:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate meal cache: %w", err)
	}
	return nil
}
