package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/mealmatch_system/internal/apperrors"
	"github.com/shenikar/mealmatch_system/internal/config"
	"github.com/shenikar/mealmatch_system/internal/models"
	"github.com/shenikar/mealmatch_system/internal/searchlog"
	"github.com/sirupsen/logrus"
)

// ShelterRepository определяет контракт для работы с хранилищем приютов
type ShelterRepository interface {
	Create(ctx context.Context, shelter *models.Shelter) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Shelter, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*models.Shelter, error)
	Update(ctx context.Context, shelter *models.Shelter) error
	SetAvailability(ctx context.Context, id uuid.UUID, beds int) (*models.Shelter, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	FindActiveNear(ctx context.Context, point models.GeoPoint, radiusKm float64) ([]*models.Shelter, error)
	ListActive(ctx context.Context) ([]*models.Shelter, error)
}

// ShelterSearchQuery - параметры поиска приютов
type ShelterSearchQuery struct {
	Point    *models.GeoPoint
	RadiusKm float64
	Limit    int
	Offset   int
	SeekerID string
}

// ShelterSearchResult - один приют в выдаче
type ShelterSearchResult struct {
	Shelter    *models.Shelter
	DistanceKm *float64
}

// ShelterSearchPage - страница выдачи с общим числом совпадений
type ShelterSearchPage struct {
	Results []ShelterSearchResult
	Total   int
}

// ShelterPatch - частичное обновление приюта.
// Количество доступных мест меняется только через SetBedAvailability.
type ShelterPatch struct {
	Name            *string
	Address         *string
	City            *string
	State           *string
	ZipCode         *string
	Phone           *string
	Location        *models.GeoPoint
	ServicesOffered *[]string
	BreakfastTime   *string
	LunchTime       *string
	DinnerTime      *string
}

// ShelterService определяет контракт для бизнес-логики приютов
type ShelterService interface {
	SearchShelters(ctx context.Context, query ShelterSearchQuery) (*ShelterSearchPage, error)
	GetMyShelter(ctx context.Context, requester models.Requester) (*models.Shelter, error)
	CreateShelter(ctx context.Context, shelter *models.Shelter, requester models.Requester) error
	UpdateShelter(ctx context.Context, id uuid.UUID, patch ShelterPatch, requester models.Requester) (*models.Shelter, error)
	SetBedAvailability(ctx context.Context, id uuid.UUID, beds int, requester models.Requester) (*models.Shelter, error)
	DeactivateShelter(ctx context.Context, id uuid.UUID, requester models.Requester) error
}

type shelterService struct {
	repo      ShelterRepository
	logger    *logrus.Logger
	cfg       *config.Config
	publisher searchlog.Publisher
}

func NewShelterService(repo ShelterRepository, logger *logrus.Logger, cfg *config.Config, publisher searchlog.Publisher) ShelterService {
	return &shelterService{
		repo:      repo,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
	}
}

// SearchShelters выполняет поиск активных приютов вокруг точки
func (s *shelterService) SearchShelters(ctx context.Context, query ShelterSearchQuery) (*ShelterSearchPage, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "shelter",
		"method":    "SearchShelters",
		"has_point": query.Point != nil,
	})
	log.Info("Searching shelters")

	limit, offset, err := validateSearchWindow(query.Limit, query.Offset)
	if err != nil {
		return nil, err
	}
	radiusKm, err := validatePoint(query.Point, query.RadiusKm)
	if err != nil {
		return nil, err
	}

	var candidates []*models.Shelter
	if query.Point != nil {
		candidates, err = s.repo.FindActiveNear(ctx, *query.Point, radiusKm)
	} else {
		candidates, err = s.repo.ListActive(ctx)
	}
	if err != nil {
		log.WithError(err).Error("Failed to fetch shelter candidates from repository")
		return nil, err
	}

	page := &ShelterSearchPage{Total: len(candidates)}
	if query.Point != nil {
		page.Results = rankSheltersByDistance(candidates, *query.Point, limit, offset)
	} else {
		for _, sh := range paginate(candidates, limit, offset) {
			page.Results = append(page.Results, ShelterSearchResult{Shelter: sh})
		}
	}

	s.publishSearchEvent(ctx, log, query.SeekerID, query.Point, radiusKm, page.Total)

	log.WithField("total", page.Total).Info("Shelter search completed")
	return page, nil
}

func rankSheltersByDistance(candidates []*models.Shelter, point models.GeoPoint, limit, offset int) []ShelterSearchResult {
	type ranked struct {
		shelter *models.Shelter
		dist    float64
	}
	items := make([]ranked, 0, len(candidates))
	for _, sh := range candidates {
		items = append(items, ranked{shelter: sh, dist: models.DistanceKm(point, sh.Location)})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].dist != items[j].dist {
			return items[i].dist < items[j].dist
		}
		return items[i].shelter.ID.String() < items[j].shelter.ID.String()
	})

	results := make([]ShelterSearchResult, 0, limit)
	for _, it := range paginate(items, limit, offset) {
		display := models.RoundKm(it.dist)
		results = append(results, ShelterSearchResult{Shelter: it.shelter, DistanceKm: &display})
	}
	return results
}

func (s *shelterService) publishSearchEvent(ctx context.Context, log *logrus.Entry, seekerID string, point *models.GeoPoint, radiusKm float64, total int) {
	if s.publisher == nil {
		return
	}
	event := searchlog.Event{
		SeekerID:   seekerID,
		EntityKind: "shelter",
		ResultsLen: total,
		Timestamp:  time.Now(),
	}
	if point != nil {
		event.Latitude = &point.Lat
		event.Longitude = &point.Lon
		event.RadiusKm = &radiusKm
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish search event")
	}
}

// GetMyShelter возвращает приют владельца для кабинета
func (s *shelterService) GetMyShelter(ctx context.Context, requester models.Requester) (*models.Shelter, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "shelter",
		"method":     "GetMyShelter",
		"account_id": requester.AccountID,
	})
	log.Info("Fetching shelter by owner")

	shelter, err := s.repo.GetByOwner(ctx, requester.AccountID)
	if err != nil {
		log.WithError(err).Warn("Failed to get shelter by owner")
		return nil, err
	}
	return shelter, nil
}

// CreateShelter создает приют. У аккаунта может быть только один приют.
func (s *shelterService) CreateShelter(ctx context.Context, shelter *models.Shelter, requester models.Requester) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "shelter",
		"method":     "CreateShelter",
		"account_id": requester.AccountID,
	})
	log.Info("Attempting to create a new shelter")

	if requester.Role != models.RoleShelter {
		return apperrors.New(apperrors.KindPermissionDenied, "only shelter accounts may create shelters")
	}

	existing, err := s.repo.GetByOwner(ctx, requester.AccountID)
	if err != nil && !apperrors.IsKind(err, apperrors.KindNotFound) {
		log.WithError(err).Error("Failed to check for existing shelter")
		return err
	}
	if existing != nil {
		return apperrors.New(apperrors.KindConflict, "shelter already exists for this account")
	}

	if err := validateShelter(shelter); err != nil {
		log.WithError(err).Warn("Shelter validation failed")
		return err
	}

	shelter.OwnerID = requester.AccountID
	// Все места свободны в момент создания
	shelter.AvailableBeds = shelter.TotalBeds
	shelter.IsActive = true

	if err := s.repo.Create(ctx, shelter); err != nil {
		log.WithError(err).Error("Failed to create shelter in repository")
		return err
	}

	log.WithField("shelter_id", shelter.ID).Info("Shelter created successfully")
	return nil
}

// validateShelter проверяет инварианты приюта
func validateShelter(shelter *models.Shelter) error {
	if shelter.Name == "" {
		return apperrors.New(apperrors.KindValidation, "name is required")
	}
	if shelter.TotalBeds < 1 {
		return apperrors.New(apperrors.KindValidation, "total beds must be at least 1")
	}
	if _, err := models.NewGeoPoint(shelter.Location.Lat, shelter.Location.Lon); err != nil {
		return err
	}
	return nil
}

// UpdateShelter применяет частичное обновление приюта
func (s *shelterService) UpdateShelter(ctx context.Context, id uuid.UUID, patch ShelterPatch, requester models.Requester) (*models.Shelter, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "shelter",
		"method":     "UpdateShelter",
		"shelter_id": id,
	})
	log.Info("Attempting to update shelter")

	shelter, err := s.getOwned(ctx, id, requester)
	if err != nil {
		log.WithError(err).Warn("Shelter ownership check failed")
		return nil, err
	}

	applyShelterPatch(shelter, patch)
	if err := validateShelter(shelter); err != nil {
		log.WithError(err).Warn("Shelter validation failed")
		return nil, err
	}

	if err := s.repo.Update(ctx, shelter); err != nil {
		log.WithError(err).Error("Failed to update shelter in repository")
		return nil, err
	}

	log.Info("Shelter updated successfully")
	return shelter, nil
}

func applyShelterPatch(shelter *models.Shelter, patch ShelterPatch) {
	if patch.Name != nil {
		shelter.Name = *patch.Name
	}
	if patch.Address != nil {
		shelter.Address = *patch.Address
	}
	if patch.City != nil {
		shelter.City = *patch.City
	}
	if patch.State != nil {
		shelter.State = *patch.State
	}
	if patch.ZipCode != nil {
		shelter.ZipCode = *patch.ZipCode
	}
	if patch.Phone != nil {
		shelter.Phone = *patch.Phone
	}
	if patch.Location != nil {
		shelter.Location = *patch.Location
	}
	if patch.ServicesOffered != nil {
		shelter.ServicesOffered = *patch.ServicesOffered
	}
	if patch.BreakfastTime != nil {
		shelter.BreakfastTime = *patch.BreakfastTime
	}
	if patch.LunchTime != nil {
		shelter.LunchTime = *patch.LunchTime
	}
	if patch.DinnerTime != nil {
		shelter.DinnerTime = *patch.DinnerTime
	}
}

// SetBedAvailability атомарно заменяет число свободных мест.
// Абсолютное значение, а не дельта: побеждает последняя запись,
// но ни один наблюдатель не увидит значение вне [0, total_beds].
func (s *shelterService) SetBedAvailability(ctx context.Context, id uuid.UUID, beds int, requester models.Requester) (*models.Shelter, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "shelter",
		"method":     "SetBedAvailability",
		"shelter_id": id,
		"beds":       beds,
	})
	log.Info("Attempting to set bed availability")

	if _, err := s.getOwned(ctx, id, requester); err != nil {
		log.WithError(err).Warn("Shelter ownership check failed")
		return nil, err
	}

	// Проверка диапазона и запись выполняются одним условным UPDATE в
	// хранилище, чтобы устаревшее чтение total_beds не пропустило
	// некорректное значение
	shelter, err := s.repo.SetAvailability(ctx, id, beds)
	if err != nil {
		log.WithError(err).Warn("Failed to set bed availability in repository")
		return nil, err
	}

	log.WithField("available_beds", shelter.AvailableBeds).Info("Bed availability updated successfully")
	return shelter, nil
}

// DeactivateShelter - мягкое удаление приюта, идемпотентное
func (s *shelterService) DeactivateShelter(ctx context.Context, id uuid.UUID, requester models.Requester) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "shelter",
		"method":     "DeactivateShelter",
		"shelter_id": id,
	})
	log.Info("Attempting to deactivate shelter")

	if _, err := s.getOwned(ctx, id, requester); err != nil {
		log.WithError(err).Warn("Shelter ownership check failed")
		return err
	}

	if err := s.repo.Deactivate(ctx, id); err != nil {
		log.WithError(err).Error("Failed to deactivate shelter in repository")
		return err
	}

	log.Info("Shelter deactivated successfully")
	return nil
}

// getOwned загружает приют и проверяет владение.
// Чтение идет напрямую из БД, кеш на пути мутаций не используется.
func (s *shelterService) getOwned(ctx context.Context, id uuid.UUID, requester models.Requester) (*models.Shelter, error) {
	shelter, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if shelter.OwnerID != requester.AccountID {
		return nil, apperrors.New(apperrors.KindPermissionDenied, "you do not own this shelter")
	}
	return shelter, nil
}
