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

const shelterColumns = `
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
	total_beds,
	available_beds,
	services_offered,
	breakfast_time,
	lunch_time,
	dinner_time,
	is_active,
	created_at,
	updated_at`

type ShelterRepository struct {
	db *pgxpool.Pool
}

func NewShelterRepository(db *pgxpool.Pool) service.ShelterRepository {
	return &ShelterRepository{db: db}
}

// Create создает новый приют в бд
func (r *ShelterRepository) Create(ctx context.Context, shelter *models.Shelter) error {
	query := `
		INSERT INTO shelters (
			owner_id, name, address, city, state, zip_code, phone,
			location, total_beds, available_beds, services_offered,
			breakfast_time, lunch_time, dinner_time, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, ST_SetSRID(ST_MakePoint($8, $9), 4326), $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		shelter.OwnerID,
		shelter.Name,
		shelter.Address,
		shelter.City,
		shelter.State,
		shelter.ZipCode,
		shelter.Phone,
		shelter.Location.Lon,
		shelter.Location.Lat,
		shelter.TotalBeds,
		shelter.AvailableBeds,
		shelter.ServicesOffered,
		shelter.BreakfastTime,
		shelter.LunchTime,
		shelter.DinnerTime,
		shelter.IsActive,
	).Scan(&shelter.ID, &shelter.CreatedAt, &shelter.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.New(apperrors.KindConflict, "shelter already exists for this account")
		}
		return storageError(fmt.Errorf("failed to create shelter: %w", err))
	}
	return nil
}

// GetByID возвращает приют по его UUID
func (r *ShelterRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Shelter, error) {
	query := `
		SELECT ` + shelterColumns + `
		FROM shelters
		WHERE id = $1;
	`
	shelter, err := scanShelterRow(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, classifyGetError(err, fmt.Sprintf("shelter with id %s not found", id))
	}
	return shelter, nil
}

// GetByOwner возвращает приют аккаунта-владельца
func (r *ShelterRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*models.Shelter, error) {
	query := `
		SELECT ` + shelterColumns + `
		FROM shelters
		WHERE owner_id = $1;
	`
	shelter, err := scanShelterRow(r.db.QueryRow(ctx, query, ownerID))
	if err != nil {
		return nil, classifyGetError(err, "shelter not found for this account")
	}
	return shelter, nil
}

// Update обновляет изменяемые поля приюта.
// Счетчик доступных мест этим запросом не затрагивается.
func (r *ShelterRepository) Update(ctx context.Context, shelter *models.Shelter) error {
	query := `
		UPDATE shelters SET
			name = $1,
			address = $2,
			city = $3,
			state = $4,
			zip_code = $5,
			phone = $6,
			location = ST_SetSRID(ST_MakePoint($7, $8), 4326),
			services_offered = $9,
			breakfast_time = $10,
			lunch_time = $11,
			dinner_time = $12,
			updated_at = NOW()
		WHERE id = $13
		RETURNING updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		shelter.Name,
		shelter.Address,
		shelter.City,
		shelter.State,
		shelter.ZipCode,
		shelter.Phone,
		shelter.Location.Lon,
		shelter.Location.Lat,
		shelter.ServicesOffered,
		shelter.BreakfastTime,
		shelter.LunchTime,
		shelter.DinnerTime,
		shelter.ID,
	).Scan(&shelter.UpdatedAt)
	if err != nil {
		return classifyGetError(err, fmt.Sprintf("shelter with id %s not found for update", shelter.ID))
	}
	return nil
}

// SetAvailability атомарно заменяет available_beds.
// Проверка диапазона против total_beds и запись выполняются одним
// условным UPDATE: промежуточное состояние вне [0, total_beds]
// невозможно даже при конкурентных вызовах.
func (r *ShelterRepository) SetAvailability(ctx context.Context, id uuid.UUID, beds int) (*models.Shelter, error) {
	query := `
		UPDATE shelters SET
			available_beds = $2,
			updated_at = NOW()
		WHERE id = $1 AND $2 >= 0 AND $2 <= total_beds
		RETURNING ` + shelterColumns + `;
	`
	shelter, err := scanShelterRow(r.db.QueryRow(ctx, query, id, beds))
	if err == nil {
		return shelter, nil
	}
	if !isNoRows(err) {
		return nil, storageError(fmt.Errorf("failed to set bed availability: %w", err))
	}

	// Условие не сработало: различаем отсутствие приюта и выход за диапазон
	var totalBeds int
	checkErr := r.db.QueryRow(ctx, `SELECT total_beds FROM shelters WHERE id = $1;`, id).Scan(&totalBeds)
	if checkErr != nil {
		return nil, classifyGetError(checkErr, fmt.Sprintf("shelter with id %s not found", id))
	}
	return nil, apperrors.Newf(apperrors.KindOutOfRange,
		"available beds must be between 0 and %d", totalBeds)
}

// Deactivate устанавливает is_active = FALSE для приюта.
// Повторная деактивация не является ошибкой.
func (r *ShelterRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE shelters SET
			is_active = FALSE,
			updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return storageError(fmt.Errorf("failed to deactivate shelter: %w", err))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.Newf(apperrors.KindNotFound, "shelter with id %s not found for deactivate", id)
	}
	return nil
}

// FindActiveNear находит активные приюты в радиусе от точки.
// GIST-индекс отбрасывает далекие строки, ST_DWithin уточняет
// по геодезическому расстоянию (граница включительно).
func (r *ShelterRepository) FindActiveNear(ctx context.Context, point models.GeoPoint, radiusKm float64) ([]*models.Shelter, error) {
	query := `
		SELECT ` + shelterColumns + `
		FROM shelters
		WHERE
			is_active = TRUE
			AND ST_DWithin(
				location,
				ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
				$3 * 1000
			);
	`
	rows, err := r.db.Query(ctx, query, point.Lon, point.Lat, radiusKm)
	if err != nil {
		return nil, storageError(fmt.Errorf("failed to find active shelters near point: %w", err))
	}
	defer rows.Close()
	return collectShelterRows(rows)
}

// ListActive возвращает все активные приюты, от новых к старым
func (r *ShelterRepository) ListActive(ctx context.Context) ([]*models.Shelter, error) {
	query := `
		SELECT ` + shelterColumns + `
		FROM shelters
		WHERE is_active = TRUE
		ORDER BY created_at DESC, id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, storageError(fmt.Errorf("failed to list active shelters: %w", err))
	}
	defer rows.Close()
	return collectShelterRows(rows)
}

func scanShelterRow(row pgx.Row) (*models.Shelter, error) {
	shelter := &models.Shelter{}
	err := row.Scan(
		&shelter.ID,
		&shelter.OwnerID,
		&shelter.Name,
		&shelter.Address,
		&shelter.City,
		&shelter.State,
		&shelter.ZipCode,
		&shelter.Phone,
		&shelter.Location.Lat,
		&shelter.Location.Lon,
		&shelter.TotalBeds,
		&shelter.AvailableBeds,
		&shelter.ServicesOffered,
		&shelter.BreakfastTime,
		&shelter.LunchTime,
		&shelter.DinnerTime,
		&shelter.IsActive,
		&shelter.CreatedAt,
		&shelter.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return shelter, nil
}

func collectShelterRows(rows pgx.Rows) ([]*models.Shelter, error) {
	shelters := make([]*models.Shelter, 0)
	for rows.Next() {
		shelter, err := scanShelterRow(rows)
		if err != nil {
			return nil, storageError(fmt.Errorf("failed to scan shelter row: %w", err))
		}
		shelters = append(shelters, shelter)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(fmt.Errorf("error shelter list iteration: %w", err))
	}
	return shelters, nil
}
