package service_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/mealmatch_system/internal/apperrors"
	"github.com/shenikar/mealmatch_system/internal/config"
	"github.com/shenikar/mealmatch_system/internal/models"
	searchlog_mocks "github.com/shenikar/mealmatch_system/internal/searchlog/mocks"
	"github.com/shenikar/mealmatch_system/internal/service"
	"github.com/shenikar/mealmatch_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestMealService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestMealService(t *testing.T) (service.MealService, *mocks.MockMealRepository, *mocks.MockRestaurantRepository, *mocks.MockSearchLogRepository, *searchlog_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockMealRepository(ctrl)
	restaurantMock := mocks.NewMockRestaurantRepository(ctrl)
	searchMock := mocks.NewMockSearchLogRepository(ctrl)
	publisherMock := searchlog_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		StatsTimeWindowMinutes: 60,
	}

	svc := service.NewMealService(repoMock, restaurantMock, searchMock, logger, cfg, publisherMock)
	return svc, repoMock, restaurantMock, searchMock, publisherMock
}

// mealAt — предложение с заведением в заданной точке, видимое сейчас.
func mealAt(lat, lon float64) *models.MealWithRestaurant {
	now := time.Now()
	return &models.MealWithRestaurant{
		Meal: models.Meal{
			ID:        uuid.New(),
			Title:     "Тестовое предложение",
			MealType:  models.MealTypeLunch,
			IsFree:    true,
			StartTime: now.Add(-time.Hour),
			EndTime:   now.Add(time.Hour),
			IsActive:  true,
		},
		RestaurantName: "Тестовое заведение",
		Location:       models.GeoPoint{Lat: lat, Lon: lon},
	}
}

func TestSearchMeals_RankedByDistance(t *testing.T) {
	// Подготовка
	svc, repoMock, _, _, publisherMock := newTestMealService(t)
	ctx := context.Background()
	point := models.GeoPoint{Lat: 40.0, Lon: -74.0}

	far := mealAt(40.05, -74.0)    // ~5.6 км
	near := mealAt(40.001, -74.0)  // ~0.1 км
	middle := mealAt(40.02, -74.0) // ~2.2 км

	// Ожидания
	repoMock.EXPECT().
		FindVisibleNear(ctx, point, 10.0, models.MealType(""), false).
		Return([]*models.MealWithRestaurant{far, near, middle}, nil).
		Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	// Действие
	page, err := svc.SearchMeals(ctx, service.MealSearchQuery{Point: &point})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	require.Len(t, page.Results, 3)
	assert.Equal(t, near.ID, page.Results[0].Meal.ID)
	assert.Equal(t, middle.ID, page.Results[1].Meal.ID)
	assert.Equal(t, far.ID, page.Results[2].Meal.ID)

	// Расстояние в выдаче округлено до 0.1 км
	require.NotNil(t, page.Results[0].DistanceKm)
	assert.InDelta(t, 0.1, *page.Results[0].DistanceKm, 0.0001)
}

func TestSearchMeals_EqualDistance_TieBreakByID(t *testing.T) {
	// Подготовка
	svc, repoMock, _, _, publisherMock := newTestMealService(t)
	ctx := context.Background()
	point := models.GeoPoint{Lat: 40.0, Lon: -74.0}

	// Два предложения в одной и той же точке
	a := mealAt(40.01, -74.0)
	b := mealAt(40.01, -74.0)

	repoMock.EXPECT().
		FindVisibleNear(ctx, point, 10.0, models.MealType(""), false).
		Return([]*models.MealWithRestaurant{a, b}, nil).
		Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	page, err := svc.SearchMeals(ctx, service.MealSearchQuery{Point: &point})

	// Проверки
	require.NoError(t, err)
	require.Len(t, page.Results, 2)
	first, second := page.Results[0].Meal.ID, page.Results[1].Meal.ID
	assert.Less(t, first.String(), second.String())
}

func TestSearchMeals_Pagination_NoGapsNoDuplicates(t *testing.T) {
	// Подготовка
	svc, repoMock, _, _, publisherMock := newTestMealService(t)
	ctx := context.Background()
	point := models.GeoPoint{Lat: 40.0, Lon: -74.0}

	candidates := make([]*models.MealWithRestaurant, 0, 5)
	for i := 0; i < 5; i++ {
		candidates = append(candidates, mealAt(40.0+float64(i+1)*0.01, -74.0))
	}

	repoMock.EXPECT().
		FindVisibleNear(ctx, point, 10.0, models.MealType(""), false).
		Return(candidates, nil).
		Times(2)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(2)

	// Действие: две последовательные страницы по 2 элемента
	pageOne, err := svc.SearchMeals(ctx, service.MealSearchQuery{Point: &point, Limit: 2, Offset: 0})
	require.NoError(t, err)
	pageTwo, err := svc.SearchMeals(ctx, service.MealSearchQuery{Point: &point, Limit: 2, Offset: 2})
	require.NoError(t, err)

	// Проверки: общий счетчик не зависит от пагинации
	assert.Equal(t, 5, pageOne.Total)
	assert.Equal(t, 5, pageTwo.Total)
	require.Len(t, pageOne.Results, 2)
	require.Len(t, pageTwo.Results, 2)

	seen := map[uuid.UUID]bool{}
	for _, r := range append(pageOne.Results, pageTwo.Results...) {
		assert.False(t, seen[r.Meal.ID], "meal %s returned twice", r.Meal.ID)
		seen[r.Meal.ID] = true
	}
	// Страницы идут подряд без пропусков
	assert.Equal(t, candidates[2].ID, pageTwo.Results[0].Meal.ID)
}

func TestSearchMeals_OffsetBeyondResults(t *testing.T) {
	// Подготовка
	svc, repoMock, _, _, publisherMock := newTestMealService(t)
	ctx := context.Background()
	point := models.GeoPoint{Lat: 40.0, Lon: -74.0}

	repoMock.EXPECT().
		FindVisibleNear(ctx, point, 10.0, models.MealType(""), false).
		Return([]*models.MealWithRestaurant{mealAt(40.01, -74.0)}, nil).
		Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	page, err := svc.SearchMeals(ctx, service.MealSearchQuery{Point: &point, Offset: 100})

	// Проверки: пустая страница, а не ошибка
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Empty(t, page.Results)
}

func TestSearchMeals_NoPoint_NoDistances(t *testing.T) {
	// Подготовка
	svc, repoMock, _, _, publisherMock := newTestMealService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		ListVisible(ctx, models.MealType(""), false).
		Return([]*models.MealWithRestaurant{mealAt(40.0, -74.0)}, nil).
		Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	page, err := svc.SearchMeals(ctx, service.MealSearchQuery{})

	// Проверки
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Nil(t, page.Results[0].DistanceKm)
}

func TestSearchMeals_NegativeRadius(t *testing.T) {
	// Подготовка
	svc, _, _, _, _ := newTestMealService(t)
	point := models.GeoPoint{Lat: 40.0, Lon: -74.0}

	// Действие
	_, err := svc.SearchMeals(context.Background(), service.MealSearchQuery{Point: &point, RadiusKm: -1})

	// Проверки
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidRadius))
}

func TestSearchMeals_CoordinateOutOfRange(t *testing.T) {
	// Подготовка
	svc, _, _, _, _ := newTestMealService(t)
	point := models.GeoPoint{Lat: 95.0, Lon: -74.0}

	// Действие
	_, err := svc.SearchMeals(context.Background(), service.MealSearchQuery{Point: &point})

	// Проверки
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidCoordinate))
}

func TestSearchMeals_UnknownMealType(t *testing.T) {
	// Подготовка
	svc, _, _, _, _ := newTestMealService(t)

	// Действие
	_, err := svc.SearchMeals(context.Background(), service.MealSearchQuery{MealType: "brunch"})

	// Проверки
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestSearchMeals_PublishFailureDoesNotAffectResponse(t *testing.T) {
	// Подготовка
	svc, repoMock, _, _, publisherMock := newTestMealService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		ListVisible(ctx, models.MealType(""), false).
		Return([]*models.MealWithRestaurant{mealAt(40.0, -74.0)}, nil).
		Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(fmt.Errorf("queue is down")).
		Times(1)

	// Действие
	page, err := svc.SearchMeals(ctx, service.MealSearchQuery{})

	// Проверки: сбой очереди не ломает поиск
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
}

func TestGetMeal_Success_FromCache(t *testing.T) {
	// Подготовка
	svc, repoMock, _, _, _ := newTestMealService(t)
	ctx := context.Background()
	expected := mealAt(40.0, -74.0)

	// Ожидания
	repoMock.EXPECT().
		GetMealFromCache(ctx, expected.ID).
		Return(expected, nil).
		Times(1)

	// Действие
	meal, err := svc.GetMeal(ctx, expected.ID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, meal)
}

func TestGetMeal_Success_FromDB(t *testing.T) {
	// Подготовка
	svc, repoMock, _, _, _ := newTestMealService(t)
	ctx := context.Background()
	expected := mealAt(40.0, -74.0)

	// Ожидания
	// 1. Промах кеша
	repoMock.EXPECT().
		GetMealFromCache(ctx, expected.ID).
		Return(nil, nil).
		Times(1)
	// 2. Попадание в БД и прогрев кеша
	repoMock.EXPECT().
		GetByID(ctx, expected.ID).
		Return(expected, nil).
		Times(1)
	repoMock.EXPECT().
		SetMealCache(ctx, expected).
		Return(nil).
		Times(1)

	// Действие
	meal, err := svc.GetMeal(ctx, expected.ID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, meal)
}

func TestGetMeal_NotFound(t *testing.T) {
	// Подготовка
	svc, repoMock, _, _, _ := newTestMealService(t)
	ctx := context.Background()
	id := uuid.New()

	repoMock.EXPECT().GetMealFromCache(ctx, id).Return(nil, nil).Times(1)
	repoMock.EXPECT().
		GetByID(ctx, id).
		Return(nil, apperrors.New(apperrors.KindNotFound, "meal not found")).
		Times(1)

	// Действие
	_, err := svc.GetMeal(ctx, id)

	// Проверки
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestCreateMeal_Success(t *testing.T) {
	// Подготовка
	svc, repoMock, restaurantMock, _, _ := newTestMealService(t)
	ctx := context.Background()
	owner := uuid.New()
	restaurantID := uuid.New()
	requester := models.Requester{AccountID: owner, Role: models.RoleRestaurant}

	now := time.Now()
	meal := &models.Meal{
		RestaurantID:    restaurantID,
		Title:           "Обед со скидкой",
		MealType:        models.MealTypeLunch,
		OriginalPrice:   12.0,
		DiscountedPrice: 5.0,
		StartTime:       now,
		EndTime:         now.Add(2 * time.Hour),
	}

	// Ожидания
	restaurantMock.EXPECT().
		GetByID(ctx, restaurantID).
		Return(&models.Restaurant{ID: restaurantID, OwnerID: owner}, nil).
		Times(1)
	repoMock.EXPECT().
		Create(ctx, meal).
		Return(nil).
		Times(1)

	// Действие
	err := svc.CreateMeal(ctx, meal, requester)

	// Проверки
	require.NoError(t, err)
	assert.True(t, meal.IsActive)
}

func TestCreateMeal_FreeMealIgnoresPrices(t *testing.T) {
	// Подготовка
	svc, repoMock, restaurantMock, _, _ := newTestMealService(t)
	ctx := context.Background()
	owner := uuid.New()
	restaurantID := uuid.New()
	requester := models.Requester{AccountID: owner, Role: models.RoleRestaurant}

	now := time.Now()
	meal := &models.Meal{
		RestaurantID:    restaurantID,
		Title:           "Бесплатный суп",
		MealType:        models.MealTypeDinner,
		IsFree:          true,
		OriginalPrice:   10.0,
		DiscountedPrice: 4.0,
		StartTime:       now,
		EndTime:         now.Add(time.Hour),
	}

	restaurantMock.EXPECT().
		GetByID(ctx, restaurantID).
		Return(&models.Restaurant{ID: restaurantID, OwnerID: owner}, nil).
		Times(1)
	repoMock.EXPECT().Create(ctx, meal).Return(nil).Times(1)

	// Действие
	err := svc.CreateMeal(ctx, meal, requester)

	// Проверки: цены обнулены, предложение сохранено
	require.NoError(t, err)
	assert.Zero(t, meal.OriginalPrice)
	assert.Zero(t, meal.DiscountedPrice)
}

func TestCreateMeal_PermissionDenied_WrongRole(t *testing.T) {
	// Подготовка
	svc, _, _, _, _ := newTestMealService(t)
	requester := models.Requester{AccountID: uuid.New(), Role: models.RoleIndividual}

	// Действие
	err := svc.CreateMeal(context.Background(), &models.Meal{RestaurantID: uuid.New()}, requester)

	// Проверки
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindPermissionDenied))
}

func TestCreateMeal_PermissionDenied_NotOwner(t *testing.T) {
	// Подготовка
	svc, _, restaurantMock, _, _ := newTestMealService(t)
	ctx := context.Background()
	restaurantID := uuid.New()
	requester := models.Requester{AccountID: uuid.New(), Role: models.RoleRestaurant}

	// Заведение принадлежит другому аккаунту
	restaurantMock.EXPECT().
		GetByID(ctx, restaurantID).
		Return(&models.Restaurant{ID: restaurantID, OwnerID: uuid.New()}, nil).
		Times(1)

	// Действие
	err := svc.CreateMeal(ctx, &models.Meal{RestaurantID: restaurantID}, requester)

	// Проверки
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindPermissionDenied))
}

func TestUpdateMeal_PartialPatch(t *testing.T) {
	// Подготовка
	svc, repoMock, restaurantMock, _, _ := newTestMealService(t)
	ctx := context.Background()
	owner := uuid.New()
	requester := models.Requester{AccountID: owner, Role: models.RoleRestaurant}

	existing := mealAt(40.0, -74.0)
	existing.Title = "Старое название"
	existing.Description = "Описание не меняется"

	newTitle := "Новое название"
	patch := service.MealPatch{Title: &newTitle}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, existing.ID).Return(existing, nil).Times(1)
	restaurantMock.EXPECT().
		GetByID(ctx, existing.RestaurantID).
		Return(&models.Restaurant{ID: existing.RestaurantID, OwnerID: owner}, nil).
		Times(1)
	repoMock.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, m *models.Meal) error {
			assert.Equal(t, newTitle, m.Title)
			assert.Equal(t, "Описание не меняется", m.Description)
			return nil
		}).
		Times(1)
	repoMock.EXPECT().InvalidateMealCache(ctx, existing.ID).Return(nil).Times(1)

	// Действие
	updated, err := svc.UpdateMeal(ctx, existing.ID, patch, requester)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)
}

func TestUpdateMeal_MergedStateInvalid(t *testing.T) {
	// Подготовка
	svc, repoMock, restaurantMock, _, _ := newTestMealService(t)
	ctx := context.Background()
	owner := uuid.New()
	requester := models.Requester{AccountID: owner, Role: models.RoleRestaurant}

	existing := mealAt(40.0, -74.0)
	// Окно после патча становится вырожденным
	badEnd := existing.StartTime.Add(-time.Minute)
	patch := service.MealPatch{EndTime: &badEnd}

	repoMock.EXPECT().GetByID(ctx, existing.ID).Return(existing, nil).Times(1)
	restaurantMock.EXPECT().
		GetByID(ctx, existing.RestaurantID).
		Return(&models.Restaurant{ID: existing.RestaurantID, OwnerID: owner}, nil).
		Times(1)

	// Действие
	_, err := svc.UpdateMeal(ctx, existing.ID, patch, requester)

	// Проверки
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestDeactivateMeal_InvalidatesCache(t *testing.T) {
	// Подготовка
	svc, repoMock, restaurantMock, _, _ := newTestMealService(t)
	ctx := context.Background()
	owner := uuid.New()
	requester := models.Requester{AccountID: owner, Role: models.RoleRestaurant}
	existing := mealAt(40.0, -74.0)

	repoMock.EXPECT().GetByID(ctx, existing.ID).Return(existing, nil).Times(1)
	restaurantMock.EXPECT().
		GetByID(ctx, existing.RestaurantID).
		Return(&models.Restaurant{ID: existing.RestaurantID, OwnerID: owner}, nil).
		Times(1)
	repoMock.EXPECT().Deactivate(ctx, existing.ID).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateMealCache(ctx, existing.ID).Return(nil).Times(1)

	// Действие
	err := svc.DeactivateMeal(ctx, existing.ID, requester)

	// Проверки
	require.NoError(t, err)
}

func TestGetSearchStats_Success(t *testing.T) {
	// Подготовка
	svc, _, _, searchMock, _ := newTestMealService(t)
	ctx := context.Background()
	requester := models.Requester{AccountID: uuid.New(), Role: models.RoleRestaurant}

	searchMock.EXPECT().
		CountDistinctSeekers(ctx, 60).
		Return(42, nil).
		Times(1)

	// Действие
	count, err := svc.GetSearchStats(ctx, requester)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 42, count)
}

func TestGetSearchStats_PermissionDenied(t *testing.T) {
	// Подготовка
	svc, _, _, _, _ := newTestMealService(t)
	requester := models.Requester{AccountID: uuid.New(), Role: models.RoleIndividual}

	// Действие
	_, err := svc.GetSearchStats(context.Background(), requester)

	// Проверки
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindPermissionDenied))
}
