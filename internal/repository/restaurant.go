package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/mealmatch_system/internal/apperrors"
	"github.com/shenikar/mealmatch_system/internal/models"
	"github.com/shenikar/mealmatch_system/internal/service"
)

const restaurantColumns = `
	id,
	owner_id,
	name,
	address,
	city,
	state,
	zip_code,
	phone,
	ST_Y(location::geometry) as latitude,
	ST_X(location::geometry) as longitude,
	is_active,
	created_at,
	updated_at`

type RestaurantRepository struct {
	db *pgxpool.Pool
}

func NewRestaurantRepository(db *pgxpool.Pool) service.RestaurantRepository {
	return &RestaurantRepository{db: db}
}

// Create создает новый ресторан в бд.
// Уникальность owner_id дополнительно гарантирует ограничение в схеме.
func (r *RestaurantRepository) Create(ctx context.Context, restaurant *models.Restaurant) error {
	query := `
		INSERT INTO restaurants (
			owner_id, name, address, city, state, zip_code, phone, location, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, ST_SetSRID(ST_MakePoint($8, $9), 4326), $10)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		restaurant.OwnerID,
		restaurant.Name,
		restaurant.Address,
		restaurant.City,
		restaurant.State,
		restaurant.ZipCode,
		restaurant.Phone,
		restaurant.Location.Lon,
		restaurant.Location.Lat,
		restaurant.IsActive,
	).Scan(&restaurant.ID, &restaurant.CreatedAt, &restaurant.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.New(apperrors.KindConflict, "restaurant already exists for this account")
		}
		return storageError(fmt.Errorf("failed to create restaurant: %w", err))
	}
	return nil
}

// GetByID возвращает ресторан по его UUID
func (r *RestaurantRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Restaurant, error) {
	query := `
		SELECT ` + restaurantColumns + `
		FROM restaurants
		WHERE id = $1;
	`
	restaurant, err := scanRestaurantRow(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, classifyGetError(err, fmt.Sprintf("restaurant with id %s not found", id))
	}
	return restaurant, nil
}

// GetByOwner возвращает ресторан аккаунта-владельца
func (r *RestaurantRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*models.Restaurant, error) {
	query := `
		SELECT ` + restaurantColumns + `
		FROM restaurants
		WHERE owner_id = $1;
	`
	restaurant, err := scanRestaurantRow(r.db.QueryRow(ctx, query, ownerID))
	if err != nil {
		return nil, classifyGetError(err, "restaurant not found for this account")
	}
	return restaurant, nil
}

func scanRestaurantRow(row pgx.Row) (*models.Restaurant, error) {
	restaurant := &models.Restaurant{}
	err := row.Scan(
		&restaurant.ID,
		&restaurant.OwnerID,
		&restaurant.Name,
		&restaurant.Address,
		&restaurant.City,
		&restaurant.State,
		&restaurant.ZipCode,
		&restaurant.Phone,
		&restaurant.Location.Lat,
		&restaurant.Location.Lon,
		&restaurant.IsActive,
		&restaurant.CreatedAt,
		&restaurant.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return restaurant, nil
}
