package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/mealmatch_system/internal/apperrors"
	"github.com/shenikar/mealmatch_system/internal/config"
	"github.com/shenikar/mealmatch_system/internal/models"
	"github.com/shenikar/mealmatch_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	mealService       service.MealService
	shelterService    service.ShelterService
	restaurantService service.RestaurantService
	logger            *logrus.Logger
	validate          *validator.Validate
	cfg               *config.Config
}

func NewHandler(mealService service.MealService, shelterService service.ShelterService, restaurantService service.RestaurantService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		mealService:       mealService,
		shelterService:    shelterService,
		restaurantService: restaurantService,
		logger:            logger,
		validate:          validator.New(),
		cfg:               cfg,
	}
}

// respondError переводит категорию ошибки ядра в HTTP-статус.
// Наружу уходят только категория и сообщение.
func (h *Handler) respondError(c *gin.Context, err error) {
	kind := apperrors.KindOf(err)
	status := http.StatusInternalServerError
	switch kind {
	case apperrors.KindValidation, apperrors.KindInvalidCoordinate, apperrors.KindInvalidRadius, apperrors.KindOutOfRange:
		status = http.StatusBadRequest
	case apperrors.KindUnauthenticated:
		status = http.StatusUnauthorized
	case apperrors.KindPermissionDenied:
		status = http.StatusForbidden
	case apperrors.KindNotFound:
		status = http.StatusNotFound
	case apperrors.KindConflict:
		status = http.StatusConflict
	case apperrors.KindStorageUnavailable:
		status = http.StatusServiceUnavailable
	}

	message := "internal server error"
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	c.JSON(status, ErrorResponse{Kind: string(kind), Error: message})
}

// searchPoint собирает точку поиска из параметров запроса.
// Обе координаты обязательны вместе; их корректность проверяет модель.
func searchPoint(lat, lng *float64) (*models.GeoPoint, error) {
	if lat == nil && lng == nil {
		return nil, nil
	}
	if lat == nil || lng == nil {
		return nil, apperrors.New(apperrors.KindInvalidCoordinate, "both lat and lng are required")
	}
	point, err := models.NewGeoPoint(*lat, *lng)
	if err != nil {
		return nil, err
	}
	return &point, nil
}

// @Summary Search meal offers
// @Description Search active meal offers, optionally around a point, ranked by distance.
// @Tags Meals
// @Accept json
// @Produce json
// @Param lat query number false "Latitude of the search point"
// @Param lng query number false "Longitude of the search point"
// @Param radius query number false "Search radius in km" default(10)
// @Param mealType query string false "Meal category filter" Enums(breakfast, lunch, dinner, snack, any)
// @Param isFree query bool false "Free offers only"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} SearchMealsResponse
// @Failure 400 {object} ErrorResponse "Invalid coordinates, radius or pagination"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /meals [get]
func (h *Handler) searchMeals(c *gin.Context) {
	var input SearchMealsRequest
	log := h.logger.WithField("method", "searchMeals")

	if err := c.ShouldBindQuery(&input); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, ErrorResponse{Kind: string(apperrors.KindValidation), Error: "invalid query parameters"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Kind: string(apperrors.KindValidation), Error: err.Error()})
		return
	}

	point, err := searchPoint(input.Lat, input.Lng)
	if err != nil {
		log.WithError(err).Warn("Invalid search point")
		h.respondError(c, err)
		return
	}
	if point != nil && input.RadiusKm <= 0 {
		h.respondError(c, apperrors.Newf(apperrors.KindInvalidRadius, "radius %f must be greater than zero", input.RadiusKm))
		return
	}

	page, err := h.mealService.SearchMeals(c.Request.Context(), service.MealSearchQuery{
		Point:    point,
		RadiusKm: input.RadiusKm,
		MealType: models.MealType(input.MealType),
		FreeOnly: input.IsFree,
		Limit:    input.Limit,
		Offset:   input.Offset,
		SeekerID: seekerID(c),
	})
	if err != nil {
		log.WithError(err).Error("Failed to search meals in service")
		h.respondError(c, err)
		return
	}

	resp := SearchMealsResponse{Meals: make([]*MealResponse, 0, len(page.Results)), Total: page.Total}
	for _, result := range page.Results {
		resp.Meals = append(resp.Meals, SearchResultToMealResponse(result))
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get meal offer by ID
// @Description Get a single meal offer with restaurant details.
// @Tags Meals
// @Accept json
// @Produce json
// @Param id path string true "Meal ID"
// @Success 200 {object} MealResponse
// @Failure 400 {object} ErrorResponse "Invalid meal ID"
// @Failure 404 {object} ErrorResponse "Meal not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /meals/{id} [get]
func (h *Handler) getMeal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Kind: string(apperrors.KindValidation), Error: "invalid meal ID"})
		return
	}
	log := h.logger.WithField("method", "getMeal").WithField("id", id)

	meal, err := h.mealService.GetMeal(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get meal from service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SearchResultToMealResponse(service.MealSearchResult{Meal: meal}))
}

// @Summary Create a meal offer
// @Description Create a new meal offer for an owned restaurant. Requires restaurant role.
// @Tags Meals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param meal body CreateMealRequest true "Meal creation request"
// @Success 201 {object} MealResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} ErrorResponse "Unauthenticated"
// @Failure 403 {object} ErrorResponse "Permission denied"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /meals [post]
func (h *Handler) createMeal(c *gin.Context) {
	var input CreateMealRequest
	log := h.logger.WithField("method", "createMeal")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Kind: string(apperrors.KindValidation), Error: "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Kind: string(apperrors.KindValidation), Error: err.Error()})
		return
	}

	requester, _ := requesterFromContext(c)
	meal := DTOToMealModel(input)
	if err := h.mealService.CreateMeal(c.Request.Context(), meal, requester); err != nil {
		log.WithError(err).Warn("Failed to create meal in service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToMealResponse(meal))
}

// @Summary Update a meal offer
// @Description Partially update an owned meal offer. Absent fields are left unchanged.
// @Tags Meals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Meal ID"
// @Param meal body UpdateMealRequest true "Meal update request"
// @Success 200 {object} MealResponse
// @Failure 400 {object} ErrorResponse "Invalid meal ID or request body"
// @Failure 401 {object} ErrorResponse "Unauthenticated"
// @Failure 403 {object} ErrorResponse "Permission denied"
// @Failure 404 {object} ErrorResponse "Meal not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /meals/{id} [put]
func (h *Handler) updateMeal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Kind: string(apperrors.KindValidation), Error: "invalid meal ID"})
		return
	}
	log := h.logger.WithField("method", "updateMeal").WithField("id", id)

	var input UpdateMealRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Kind: string(apperrors.KindValidation), Error: "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Kind: string(apperrors.KindValidation), Error: err.Error()})
		return
	}

	requester, _ := requesterFromContext(c)
	meal, err := h.mealService.UpdateMeal(c.Request.Context(), id, DTOToMealPatch(input), requester)
	if err != nil {
		log.WithError(err).Warn("Failed to update meal in service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToMealResponse(meal))
}

// @Summary Deactivate a meal offer
// @Description Soft-delete an owned meal offer. Idempotent.
// @Tags Meals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Meal ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid meal ID"
// @Failure 401 {object} ErrorResponse "Unauthenticated"
// @Failure 403 {object} ErrorResponse "Permission denied"
// @Failure 404 {object} ErrorResponse "Meal not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /meals/{id} [delete]
func (h *Handler) deleteMeal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Kind: string(apperrors.KindValidation), Error: "invalid meal ID"})
		return
	}
	log := h.logger.WithField("method", "deleteMeal").WithField("id", id)

	requester, _ := requesterFromContext(c)
	if err := h.mealService.DeactivateMeal(c.Request.Context(), id, requester); err != nil {
		log.WithError(err).Warn("Failed to deactivate meal in service")
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List meals of an owned restaurant
// @Description List all meals of a restaurant, including inactive ones. Owner only.
// @Tags Meals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param restaurantId path string true "Restaurant ID"
// @Success 200 {array} MealResponse
// @Failure 400 {object} ErrorResponse "Invalid restaurant ID"
// @Failure 401 {object} ErrorResponse "Unauthenticated"
// @Failure 403 {object} ErrorResponse "Permission denied"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /meals/restaurant/{restaurantId} [get]
func (h *Handler) listRestaurantMeals(c *gin.Context) {
	restaurantID, err := uuid.Parse(c.Param("restaurantId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Kind: string(apperrors.KindValidation), Error: "invalid restaurant ID"})
		return
	}
	log := h.logger.WithField("method", "listRestaurantMeals").WithField("restaurant_id", restaurantID)

	requester, _ := requesterFromContext(c)
	meals, err := h.mealService.ListRestaurantMeals(c.Request.Context(), restaurantID, requester)
	if err != nil {
		log.WithError(err).Warn("Failed to list restaurant meals in service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToMealResponses(meals))
}

// @Summary Get search statistics
// @Description Get the count of distinct seekers over the configured window. Provider roles only.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} ErrorResponse "Unauthenticated"
// @Failure 403 {object} ErrorResponse "Permission denied"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /meals/stats [get]
func (h *Handler) getSearchStats(c *gin.Context) {
	log := h.logger.WithField("method", "getSearchStats")

	requester, _ := requesterFromContext(c)
	count, err := h.mealService.GetSearchStats(c.Request.Context(), requester)
	if err != nil {
		log.WithError(err).Warn("Failed to get search stats from service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, StatsResponse{SeekerCount: count})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
