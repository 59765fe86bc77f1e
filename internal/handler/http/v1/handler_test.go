package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/mealmatch_system/internal/apperrors"
	auth_mocks "github.com/shenikar/mealmatch_system/internal/auth/mocks"
	"github.com/shenikar/mealmatch_system/internal/config"
	"github.com/shenikar/mealmatch_system/internal/models"
	"github.com/shenikar/mealmatch_system/internal/service"
	"github.com/shenikar/mealmatch_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testCredential = "test-token"

// testServices - моки всех сервисов хендлера
type testServices struct {
	meal       *mocks.MockMealService
	shelter    *mocks.MockShelterService
	restaurant *mocks.MockRestaurantService
}

// newTestHandler создает Handler с мокированными сервисами и роутером.
// Резолвер принимает testCredential и возвращает переданного запрашивающего.
func newTestHandler(t *testing.T, requester models.Requester) (testServices, *gin.Engine) {
	ctrl := gomock.NewController(t)
	services := testServices{
		meal:       mocks.NewMockMealService(ctrl),
		shelter:    mocks.NewMockShelterService(ctrl),
		restaurant: mocks.NewMockRestaurantService(ctrl),
	}
	resolverMock := auth_mocks.NewMockResolver(ctrl)
	resolverMock.EXPECT().
		Resolve(gomock.Any(), testCredential).
		Return(&requester, nil).
		AnyTimes()
	resolverMock.EXPECT().
		Resolve(gomock.Any(), gomock.Not(testCredential)).
		Return(nil, apperrors.New(apperrors.KindUnauthenticated, "unknown credential")).
		AnyTimes()

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		StatsTimeWindowMinutes: 60,
	}

	handler := NewHandler(services.meal, services.shelter, services.restaurant, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api, resolverMock, logger)

	return services, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func authHeader() map[string]string {
	return map[string]string{"Authorization": "Bearer " + testCredential}
}

func restaurantRequester() models.Requester {
	return models.Requester{AccountID: uuid.New(), Role: models.RoleRestaurant}
}

func shelterRequester() models.Requester {
	return models.Requester{AccountID: uuid.New(), Role: models.RoleShelter}
}

func sampleMealResult() service.MealSearchResult {
	now := time.Now()
	dist := 1.2
	return service.MealSearchResult{
		Meal: &models.MealWithRestaurant{
			Meal: models.Meal{
				ID:        uuid.New(),
				Title:     "Обед дня",
				MealType:  models.MealTypeLunch,
				IsFree:    true,
				StartTime: now.Add(-time.Hour),
				EndTime:   now.Add(time.Hour),
				IsActive:  true,
			},
			RestaurantName: "Столовая №1",
			Location:       models.GeoPoint{Lat: 40.01, Lon: -74.0},
		},
		DistanceKm: &dist,
	}
}

func TestSearchMeals_Success(t *testing.T) {
	services, router := newTestHandler(t, restaurantRequester())
	result := sampleMealResult()

	services.meal.EXPECT().
		SearchMeals(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, query service.MealSearchQuery) (*service.MealSearchPage, error) {
			require.NotNil(t, query.Point)
			assert.Equal(t, 40.0, query.Point.Lat)
			assert.Equal(t, -74.0, query.Point.Lon)
			assert.Equal(t, 5.0, query.RadiusKm)
			return &service.MealSearchPage{Results: []service.MealSearchResult{result}, Total: 1}, nil
		}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/meals?lat=40.0&lng=-74.0&radius=5", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp SearchMealsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Meals, 1)
	assert.Equal(t, result.Meal.ID, resp.Meals[0].ID)
	assert.Equal(t, "Столовая №1", resp.Meals[0].RestaurantName)
	require.NotNil(t, resp.Meals[0].DistanceKm)
	assert.Equal(t, 1.2, *resp.Meals[0].DistanceKm)
}

func TestSearchMeals_DefaultsApplied(t *testing.T) {
	services, router := newTestHandler(t, restaurantRequester())

	services.meal.EXPECT().
		SearchMeals(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, query service.MealSearchQuery) (*service.MealSearchPage, error) {
			// Параметры по умолчанию из формы запроса
			assert.Equal(t, 10.0, query.RadiusKm)
			assert.Equal(t, 20, query.Limit)
			assert.Equal(t, 0, query.Offset)
			return &service.MealSearchPage{}, nil
		}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/meals?lat=40.0&lng=-74.0", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSearchMeals_OnlyOneCoordinate(t *testing.T) {
	services, router := newTestHandler(t, restaurantRequester())

	services.meal.EXPECT().SearchMeals(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "GET", "/api/v1/meals?lat=40.0", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), string(apperrors.KindInvalidCoordinate))
}

func TestSearchMeals_ExplicitZeroRadius(t *testing.T) {
	services, router := newTestHandler(t, restaurantRequester())

	services.meal.EXPECT().SearchMeals(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/meals?lat=40.0&lng=-74.0&radius=0", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), string(apperrors.KindInvalidRadius))
}

func TestSearchMeals_CoordinateOutOfRange(t *testing.T) {
	services, router := newTestHandler(t, restaurantRequester())

	services.meal.EXPECT().SearchMeals(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/meals?lat=95.0&lng=-74.0", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), string(apperrors.KindInvalidCoordinate))
}

func TestSearchMeals_NoPoint(t *testing.T) {
	services, router := newTestHandler(t, restaurantRequester())

	services.meal.EXPECT().
		SearchMeals(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, query service.MealSearchQuery) (*service.MealSearchPage, error) {
			assert.Nil(t, query.Point)
			return &service.MealSearchPage{}, nil
		}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/meals", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetMeal_Success(t *testing.T) {
	services, router := newTestHandler(t, restaurantRequester())
	result := sampleMealResult()

	services.meal.EXPECT().GetMeal(gomock.Any(), result.Meal.ID).Return(result.Meal, nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/meals/%s", result.Meal.ID), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp MealResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, result.Meal.ID, resp.ID)
	assert.Nil(t, resp.DistanceKm)
}

func TestGetMeal_InvalidID(t *testing.T) {
	services, router := newTestHandler(t, restaurantRequester())

	services.meal.EXPECT().GetMeal(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/meals/invalid-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid meal ID")
}

func TestGetMeal_NotFound(t *testing.T) {
	services, router := newTestHandler(t, restaurantRequester())
	mealID := uuid.New()

	services.meal.EXPECT().
		GetMeal(gomock.Any(), mealID).
		Return(nil, apperrors.New(apperrors.KindNotFound, "meal not found")).
		Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/meals/%s", mealID), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "meal not found")
}

func TestCreateMeal_Success(t *testing.T) {
	services, router := newTestHandler(t, restaurantRequester())
	now := time.Now().UTC().Truncate(time.Second)
	reqBody := CreateMealRequest{
		RestaurantID:    uuid.New(),
		Title:           "Ужин со скидкой",
		MealType:        "dinner",
		OriginalPrice:   15.0,
		DiscountedPrice: 6.0,
		StartTime:       now,
		EndTime:         now.Add(3 * time.Hour),
	}

	services.meal.EXPECT().
		CreateMeal(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, meal *models.Meal, requester models.Requester) error {
			assert.Equal(t, reqBody.Title, meal.Title)
			assert.Equal(t, models.RoleRestaurant, requester.Role)
			meal.ID = uuid.New()
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/meals", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp MealResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, reqBody.Title, resp.Title)
	assert.NotEqual(t, uuid.Nil, resp.ID)
}

func TestCreateMeal_MissingCredential(t *testing.T) {
	services, router := newTestHandler(t, restaurantRequester())

	services.meal.EXPECT().CreateMeal(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(CreateMealRequest{})
	w := makeRequest(router, "POST", "/api/v1/meals", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "credential required")
}

func TestCreateMeal_UnknownCredential(t *testing.T) {
	services, router := newTestHandler(t, restaurantRequester())

	services.meal.EXPECT().CreateMeal(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(CreateMealRequest{})
	w := makeRequest(router, "POST", "/api/v1/meals", bytes.NewBuffer(bodyBytes), map[string]string{"Authorization": "Bearer wrong-token"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "identity could not be resolved")
}

func TestCreateMeal_ValidationError(t *testing.T) {
	services, router := newTestHandler(t, restaurantRequester())
	now := time.Now()
	reqBody := CreateMealRequest{ // Отсутствует Title
		RestaurantID: uuid.New(),
		MealType:     "lunch",
		StartTime:    now,
		EndTime:      now.Add(time.Hour),
	}

	services.meal.EXPECT().CreateMeal(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/meals", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Title' failed on the 'required' tag")
}

func TestCreateMeal_PermissionDenied(t *testing.T) {
	services, router := newTestHandler(t, models.Requester{AccountID: uuid.New(), Role: models.RoleIndividual})
	now := time.Now()
	reqBody := CreateMealRequest{
		RestaurantID: uuid.New(),
		Title:        "Обед",
		MealType:     "lunch",
		IsFree:       true,
		StartTime:    now,
		EndTime:      now.Add(time.Hour),
	}

	services.meal.EXPECT().
		CreateMeal(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(apperrors.New(apperrors.KindPermissionDenied, "only restaurant accounts may create meals")).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/meals", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), string(apperrors.KindPermissionDenied))
}

func TestUpdateMeal_Success(t *testing.T) {
	services, router := newTestHandler(t, restaurantRequester())
	mealID := uuid.New()
	newTitle := "Обновленное название"
	reqBody := UpdateMealRequest{Title: &newTitle}

	services.meal.EXPECT().
		UpdateMeal(gomock.Any(), mealID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, patch service.MealPatch, _ models.Requester) (*models.Meal, error) {
			require.NotNil(t, patch.Title)
			assert.Equal(t, newTitle, *patch.Title)
			assert.Nil(t, patch.Description) // Непереданные поля не попадают в патч
			return &models.Meal{ID: mealID, Title: newTitle}, nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/meals/%s", mealID), bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp MealResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, newTitle, resp.Title)
}

func TestDeleteMeal_Success(t *testing.T) {
	services, router := newTestHandler(t, restaurantRequester())
	mealID := uuid.New()

	services.meal.EXPECT().DeactivateMeal(gomock.Any(), mealID, gomock.Any()).Return(nil).Times(1)

	w := makeRequest(router, "DELETE", fmt.Sprintf("/api/v1/meals/%s", mealID), nil, authHeader())

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteMeal_NotOwner(t *testing.T) {
	services, router := newTestHandler(t, restaurantRequester())
	mealID := uuid.New()

	services.meal.EXPECT().
		DeactivateMeal(gomock.Any(), mealID, gomock.Any()).
		Return(apperrors.New(apperrors.KindPermissionDenied, "you do not own this restaurant")).
		Times(1)

	w := makeRequest(router, "DELETE", fmt.Sprintf("/api/v1/meals/%s", mealID), nil, authHeader())

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetSearchStats_Success(t *testing.T) {
	services, router := newTestHandler(t, restaurantRequester())

	services.meal.EXPECT().GetSearchStats(gomock.Any(), gomock.Any()).Return(123, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/meals/stats", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 123, resp.SeekerCount)
}

func TestSearchShelters_Success(t *testing.T) {
	services, router := newTestHandler(t, shelterRequester())
	dist := 0.5
	shelter := &models.Shelter{
		ID:            uuid.New(),
		Name:          "Ночлежка",
		Location:      models.GeoPoint{Lat: 40.005, Lon: -74.0},
		TotalBeds:     50,
		AvailableBeds: 12,
		IsActive:      true,
	}

	services.shelter.EXPECT().
		SearchShelters(gomock.Any(), gomock.Any()).
		Return(&service.ShelterSearchPage{
			Results: []service.ShelterSearchResult{{Shelter: shelter, DistanceKm: &dist}},
			Total:   1,
		}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/shelters?lat=40.0&lng=-74.0", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp SearchSheltersResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Shelters, 1)
	assert.Equal(t, 12, resp.Shelters[0].AvailableBeds)
	require.NotNil(t, resp.Shelters[0].DistanceKm)
	assert.Equal(t, 0.5, *resp.Shelters[0].DistanceKm)
}

func TestCreateShelter_Success(t *testing.T) {
	services, router := newTestHandler(t, shelterRequester())
	reqBody := CreateShelterRequest{
		Name:      "Новый приют",
		Latitude:  40.0,
		Longitude: -74.0,
		TotalBeds: 30,
	}

	services.shelter.EXPECT().
		CreateShelter(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, shelter *models.Shelter, _ models.Requester) error {
			shelter.ID = uuid.New()
			shelter.AvailableBeds = shelter.TotalBeds
			shelter.IsActive = true
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/shelters", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp ShelterResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 30, resp.AvailableBeds)
}

func TestCreateShelter_Conflict(t *testing.T) {
	services, router := newTestHandler(t, shelterRequester())
	reqBody := CreateShelterRequest{
		Name:      "Второй приют",
		Latitude:  40.0,
		Longitude: -74.0,
		TotalBeds: 10,
	}

	services.shelter.EXPECT().
		CreateShelter(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(apperrors.New(apperrors.KindConflict, "shelter already exists for this account")).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/shelters", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), string(apperrors.KindConflict))
}

func TestUpdateAvailability_Success(t *testing.T) {
	services, router := newTestHandler(t, shelterRequester())
	shelterID := uuid.New()
	beds := 7
	reqBody := UpdateAvailabilityRequest{AvailableBeds: &beds}

	services.shelter.EXPECT().
		SetBedAvailability(gomock.Any(), shelterID, 7, gomock.Any()).
		Return(&models.Shelter{ID: shelterID, TotalBeds: 50, AvailableBeds: 7, IsActive: true}, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/shelters/%s/availability", shelterID), bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ShelterResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 7, resp.AvailableBeds)
}

func TestUpdateAvailability_OutOfRange(t *testing.T) {
	services, router := newTestHandler(t, shelterRequester())
	shelterID := uuid.New()
	beds := 51
	reqBody := UpdateAvailabilityRequest{AvailableBeds: &beds}

	services.shelter.EXPECT().
		SetBedAvailability(gomock.Any(), shelterID, 51, gomock.Any()).
		Return(nil, apperrors.New(apperrors.KindOutOfRange, "available beds must be between 0 and 50")).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/shelters/%s/availability", shelterID), bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), string(apperrors.KindOutOfRange))
}

func TestUpdateAvailability_NegativeRejectedByValidation(t *testing.T) {
	services, router := newTestHandler(t, shelterRequester())
	shelterID := uuid.New()
	beds := -1
	reqBody := UpdateAvailabilityRequest{AvailableBeds: &beds}

	services.shelter.EXPECT().SetBedAvailability(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/shelters/%s/availability", shelterID), bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRestaurant_Success(t *testing.T) {
	services, router := newTestHandler(t, restaurantRequester())
	reqBody := CreateRestaurantRequest{
		Name:      "Новое заведение",
		Latitude:  40.0,
		Longitude: -74.0,
	}

	services.restaurant.EXPECT().
		CreateRestaurant(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, restaurant *models.Restaurant, _ models.Requester) error {
			restaurant.ID = uuid.New()
			restaurant.IsActive = true
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/restaurants", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp RestaurantResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, reqBody.Name, resp.Name)
}

func TestGetMyRestaurant_NotFound(t *testing.T) {
	services, router := newTestHandler(t, restaurantRequester())

	services.restaurant.EXPECT().
		GetMyRestaurant(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.New(apperrors.KindNotFound, "restaurant not found")).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/restaurants/my", nil, authHeader())

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthCheck_Success(t *testing.T) {
	_, router := newTestHandler(t, restaurantRequester())

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
