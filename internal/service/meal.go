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

const (
	defaultRadiusKm = 10.0
	defaultLimit    = 20
	maxLimit        = 100
)

// MealRepository определяет контракт для работы с хранилищем предложений еды
type MealRepository interface {
	Create(ctx context.Context, meal *models.Meal) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.MealWithRestaurant, error)
	Update(ctx context.Context, meal *models.Meal) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*models.Meal, error)
	FindVisibleNear(ctx context.Context, point models.GeoPoint, radiusKm float64, mealType models.MealType, freeOnly bool) ([]*models.MealWithRestaurant, error)
	ListVisible(ctx context.Context, mealType models.MealType, freeOnly bool) ([]*models.MealWithRestaurant, error)
	GetMealFromCache(ctx context.Context, id uuid.UUID) (*models.MealWithRestaurant, error)
	SetMealCache(ctx context.Context, meal *models.MealWithRestaurant) error
	InvalidateMealCache(ctx context.Context, id uuid.UUID) error
}

// SearchLogRepository определяет контракт для статистики поисковых запросов
type SearchLogRepository interface {
	CountDistinctSeekers(ctx context.Context, minutes int) (int, error)
}

// MealSearchQuery - параметры поиска предложений.
// Point == nil означает поиск без географического ограничения.
type MealSearchQuery struct {
	Point    *models.GeoPoint
	RadiusKm float64
	MealType models.MealType // пустая строка - без фильтра по категории
	FreeOnly bool
	Limit    int
	Offset   int
	SeekerID string
}

// MealSearchResult - одно предложение в выдаче.
// DistanceKm заполняется только при поиске от точки и округлено до 0.1 км.
type MealSearchResult struct {
	Meal       *models.MealWithRestaurant
	DistanceKm *float64
}

// MealSearchPage - страница выдачи с общим числом совпадений до пагинации
type MealSearchPage struct {
	Results []MealSearchResult
	Total   int
}

// MealService определяет контракт для бизнес-логики предложений еды
type MealService interface {
	SearchMeals(ctx context.Context, query MealSearchQuery) (*MealSearchPage, error)
	GetMeal(ctx context.Context, id uuid.UUID) (*models.MealWithRestaurant, error)
	CreateMeal(ctx context.Context, meal *models.Meal, requester models.Requester) error
	UpdateMeal(ctx context.Context, id uuid.UUID, patch MealPatch, requester models.Requester) (*models.Meal, error)
	DeactivateMeal(ctx context.Context, id uuid.UUID, requester models.Requester) error
	ListRestaurantMeals(ctx context.Context, restaurantID uuid.UUID, requester models.Requester) ([]*models.Meal, error)
	GetSearchStats(ctx context.Context, requester models.Requester) (int, error)
}

// MealPatch - частичное обновление предложения.
// nil-поле означает "оставить без изменений". Владелец и идентификатор
// в патче не представлены и извне не изменяются.
type MealPatch struct {
	Title             *string
	Description       *string
	MealType          *models.MealType
	IsFree            *bool
	OriginalPrice     *float64
	DiscountedPrice   *float64
	QuantityAvailable *int
	DietaryTags       *[]string
	StartTime         *time.Time
	EndTime           *time.Time
}

type mealService struct {
	repo           MealRepository
	restaurantRepo RestaurantRepository
	searchRepo     SearchLogRepository
	logger         *logrus.Logger
	cfg            *config.Config
	publisher      searchlog.Publisher
}

func NewMealService(repo MealRepository, restaurantRepo RestaurantRepository, searchRepo SearchLogRepository, logger *logrus.Logger, cfg *config.Config, publisher searchlog.Publisher) MealService {
	return &mealService{
		repo:           repo,
		restaurantRepo: restaurantRepo,
		searchRepo:     searchRepo,
		logger:         logger,
		cfg:            cfg,
		publisher:      publisher,
	}
}

// validateSearchWindow нормализует и проверяет общие параметры поиска.
// Возвращает limit и offset с подставленными значениями по умолчанию.
func validateSearchWindow(limit, offset int) (int, int, error) {
	if limit < 0 || offset < 0 {
		return 0, 0, apperrors.New(apperrors.KindValidation, "limit and offset must not be negative")
	}
	if limit == 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return limit, offset, nil
}

// validatePoint проверяет координаты и радиус поиска
func validatePoint(point *models.GeoPoint, radiusKm float64) (float64, error) {
	if point == nil {
		return 0, nil
	}
	if _, err := models.NewGeoPoint(point.Lat, point.Lon); err != nil {
		return 0, err
	}
	if radiusKm == 0 {
		radiusKm = defaultRadiusKm
	}
	if radiusKm < 0 {
		return 0, apperrors.Newf(apperrors.KindInvalidRadius, "radius %f must be greater than zero", radiusKm)
	}
	return radiusKm, nil
}

// paginate применяет сначала offset, затем limit.
// Выход за пределы выдачи дает пустую страницу, а не ошибку.
func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit < len(items) {
		items = items[:limit]
	}
	return items
}

// SearchMeals выполняет поиск предложений: геофильтр в хранилище,
// точное ранжирование по расстоянию здесь
func (s *mealService) SearchMeals(ctx context.Context, query MealSearchQuery) (*MealSearchPage, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "meal",
		"method":    "SearchMeals",
		"has_point": query.Point != nil,
	})
	log.Info("Searching meals")

	limit, offset, err := validateSearchWindow(query.Limit, query.Offset)
	if err != nil {
		return nil, err
	}
	radiusKm, err := validatePoint(query.Point, query.RadiusKm)
	if err != nil {
		return nil, err
	}
	if query.MealType != "" && !query.MealType.IsValid() {
		return nil, apperrors.Newf(apperrors.KindValidation, "unknown meal type %q", query.MealType)
	}

	var candidates []*models.MealWithRestaurant
	if query.Point != nil {
		candidates, err = s.repo.FindVisibleNear(ctx, *query.Point, radiusKm, query.MealType, query.FreeOnly)
	} else {
		candidates, err = s.repo.ListVisible(ctx, query.MealType, query.FreeOnly)
	}
	if err != nil {
		log.WithError(err).Error("Failed to fetch meal candidates from repository")
		return nil, err
	}

	page := &MealSearchPage{Total: len(candidates)}
	if query.Point != nil {
		page.Results = rankByDistance(candidates, *query.Point, limit, offset)
	} else {
		// Хранилище уже отдало кандидатов от новых к старым
		for _, m := range paginate(candidates, limit, offset) {
			page.Results = append(page.Results, MealSearchResult{Meal: m})
		}
	}

	s.publishSearchEvent(ctx, log, "meal", query.SeekerID, query.Point, radiusKm, page.Total)

	log.WithField("total", page.Total).Info("Meal search completed")
	return page, nil
}

// rankByDistance сортирует кандидатов по точному расстоянию от точки.
// Равные расстояния упорядочиваются по идентификатору для детерминизма.
func rankByDistance(candidates []*models.MealWithRestaurant, point models.GeoPoint, limit, offset int) []MealSearchResult {
	type ranked struct {
		meal *models.MealWithRestaurant
		dist float64
	}
	items := make([]ranked, 0, len(candidates))
	for _, m := range candidates {
		items = append(items, ranked{meal: m, dist: models.DistanceKm(point, m.Location)})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].dist != items[j].dist {
			return items[i].dist < items[j].dist
		}
		return items[i].meal.ID.String() < items[j].meal.ID.String()
	})

	results := make([]MealSearchResult, 0, limit)
	for _, it := range paginate(items, limit, offset) {
		display := models.RoundKm(it.dist)
		results = append(results, MealSearchResult{Meal: it.meal, DistanceKm: &display})
	}
	return results
}

// publishSearchEvent отправляет событие поиска в очередь.
// Доставка необязательная: сбой логируется и не влияет на ответ.
func (s *mealService) publishSearchEvent(ctx context.Context, log *logrus.Entry, kind, seekerID string, point *models.GeoPoint, radiusKm float64, total int) {
	if s.publisher == nil {
		return
	}
	event := searchlog.Event{
		SeekerID:   seekerID,
		EntityKind: kind,
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

// GetMeal получает предложение по ID, сначала из кеша
func (s *mealService) GetMeal(ctx context.Context, id uuid.UUID) (*models.MealWithRestaurant, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "meal",
		"method":  "GetMeal",
		"meal_id": id,
	})
	log.Info("Fetching meal by ID")

	cached, err := s.repo.GetMealFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read meal cache")
	}
	if cached != nil {
		return cached, nil
	}

	meal, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get meal from repository")
		return nil, err
	}

	if err := s.repo.SetMealCache(ctx, meal); err != nil {
		log.WithError(err).Warn("Failed to cache meal")
	}
	return meal, nil
}

// CreateMeal создает предложение от имени владельца ресторана
func (s *mealService) CreateMeal(ctx context.Context, meal *models.Meal, requester models.Requester) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "meal",
		"method":        "CreateMeal",
		"restaurant_id": meal.RestaurantID,
		"account_id":    requester.AccountID,
	})
	log.Info("Attempting to create a new meal")

	if requester.Role != models.RoleRestaurant {
		return apperrors.New(apperrors.KindPermissionDenied, "only restaurant accounts may create meals")
	}

	if err := s.checkRestaurantOwnership(ctx, meal.RestaurantID, requester); err != nil {
		log.WithError(err).Warn("Restaurant ownership check failed")
		return err
	}

	meal.IsActive = true
	if err := meal.Validate(); err != nil {
		log.WithError(err).Warn("Meal validation failed")
		return err
	}

	if err := s.repo.Create(ctx, meal); err != nil {
		log.WithError(err).Error("Failed to create meal in repository")
		return err
	}

	log.WithField("meal_id", meal.ID).Info("Meal created successfully")
	return nil
}

// UpdateMeal применяет частичное обновление, повторно проверяя инварианты
// объединенного состояния
func (s *mealService) UpdateMeal(ctx context.Context, id uuid.UUID, patch MealPatch, requester models.Requester) (*models.Meal, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "meal",
		"method":  "UpdateMeal",
		"meal_id": id,
	})
	log.Info("Attempting to update meal")

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent meal")
		return nil, err
	}

	if err := s.checkRestaurantOwnership(ctx, existing.RestaurantID, requester); err != nil {
		log.WithError(err).Warn("Restaurant ownership check failed")
		return nil, err
	}

	meal := existing.Meal
	applyMealPatch(&meal, patch)
	if err := meal.Validate(); err != nil {
		log.WithError(err).Warn("Meal validation failed")
		return nil, err
	}

	if err := s.repo.Update(ctx, &meal); err != nil {
		log.WithError(err).Error("Failed to update meal in repository")
		return nil, err
	}

	if err := s.repo.InvalidateMealCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate meal cache")
	}

	log.Info("Meal updated successfully")
	return &meal, nil
}

// applyMealPatch переносит в предложение только заданные поля патча
func applyMealPatch(meal *models.Meal, patch MealPatch) {
	if patch.Title != nil {
		meal.Title = *patch.Title
	}
	if patch.Description != nil {
		meal.Description = *patch.Description
	}
	if patch.MealType != nil {
		meal.MealType = *patch.MealType
	}
	if patch.IsFree != nil {
		meal.IsFree = *patch.IsFree
	}
	if patch.OriginalPrice != nil {
		meal.OriginalPrice = *patch.OriginalPrice
	}
	if patch.DiscountedPrice != nil {
		meal.DiscountedPrice = *patch.DiscountedPrice
	}
	if patch.QuantityAvailable != nil {
		meal.QuantityAvailable = patch.QuantityAvailable
	}
	if patch.DietaryTags != nil {
		meal.DietaryTags = *patch.DietaryTags
	}
	if patch.StartTime != nil {
		meal.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		meal.EndTime = *patch.EndTime
	}
}

// DeactivateMeal - мягкое удаление предложения, идемпотентное
func (s *mealService) DeactivateMeal(ctx context.Context, id uuid.UUID, requester models.Requester) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "meal",
		"method":  "DeactivateMeal",
		"meal_id": id,
	})
	log.Info("Attempting to deactivate meal")

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to deactivate a non-existent meal")
		return err
	}

	if err := s.checkRestaurantOwnership(ctx, existing.RestaurantID, requester); err != nil {
		log.WithError(err).Warn("Restaurant ownership check failed")
		return err
	}

	if err := s.repo.Deactivate(ctx, id); err != nil {
		log.WithError(err).Error("Failed to deactivate meal in repository")
		return err
	}

	if err := s.repo.InvalidateMealCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate meal cache")
	}

	log.Info("Meal deactivated successfully")
	return nil
}

// ListRestaurantMeals возвращает все предложения заведения для кабинета
// владельца, включая неактивные
func (s *mealService) ListRestaurantMeals(ctx context.Context, restaurantID uuid.UUID, requester models.Requester) ([]*models.Meal, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "meal",
		"method":        "ListRestaurantMeals",
		"restaurant_id": restaurantID,
	})
	log.Info("Listing restaurant meals")

	if err := s.checkRestaurantOwnership(ctx, restaurantID, requester); err != nil {
		log.WithError(err).Warn("Restaurant ownership check failed")
		return nil, err
	}

	meals, err := s.repo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		log.WithError(err).Error("Failed to list meals from repository")
		return nil, err
	}

	log.WithField("count", len(meals)).Info("Restaurant meals listed successfully")
	return meals, nil
}

// GetSearchStats возвращает число уникальных искавших за настроенное окно.
// Доступно только аккаунтам-провайдерам.
func (s *mealService) GetSearchStats(ctx context.Context, requester models.Requester) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "meal",
		"method":  "GetSearchStats",
	})

	if requester.Role != models.RoleRestaurant && requester.Role != models.RoleShelter {
		return 0, apperrors.New(apperrors.KindPermissionDenied, "stats are available to provider accounts only")
	}

	count, err := s.searchRepo.CountDistinctSeekers(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		log.WithError(err).Error("Failed to get search stats from repository")
		return 0, err
	}
	return count, nil
}

// checkRestaurantOwnership проверяет, что запрос исходит от владельца заведения
func (s *mealService) checkRestaurantOwnership(ctx context.Context, restaurantID uuid.UUID, requester models.Requester) error {
	restaurant, err := s.restaurantRepo.GetByID(ctx, restaurantID)
	if err != nil {
		return err
	}
	if restaurant.OwnerID != requester.AccountID {
		return apperrors.New(apperrors.KindPermissionDenied, "you do not own this restaurant")
	}
	return nil
}
