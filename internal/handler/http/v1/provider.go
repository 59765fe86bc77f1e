package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/mealmatch_system/internal/apperrors"
	"github.com/shenikar/mealmatch_system/internal/service"
)

// @Summary Search shelters
// @Description Search active shelters, optionally around a point, ranked by distance.
// @Tags Shelters
// @Accept json
// @Produce json
// @Param lat query number false "Latitude of the search point"
// @Param lng query number false "Longitude of the search point"
// @Param radius query number false "Search radius in km" default(10)
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} SearchSheltersResponse
// @Failure 400 {object} ErrorResponse "Invalid coordinates, radius or pagination"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /shelters [get]
func (h *Handler) searchShelters(c *gin.Context) {
	var input SearchSheltersRequest
	log := h.logger.WithField("method", "searchShelters")

	if err := c.ShouldBindQuery(&input); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, ErrorResponse{Kind: string(apperrors.KindValidation), Error: "invalid query parameters"})
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

	page, err := h.shelterService.SearchShelters(c.Request.Context(), service.ShelterSearchQuery{
		Point:    point,
		RadiusKm: input.RadiusKm,
		Limit:    input.Limit,
		Offset:   input.Offset,
		SeekerID: seekerID(c),
	})
	if err != nil {
		log.WithError(err).Error("Failed to search shelters in service")
		h.respondError(c, err)
		return
	}

	resp := SearchSheltersResponse{Shelters: make([]*ShelterResponse, 0, len(page.Results)), Total: page.Total}
	for _, result := range page.Results {
		resp.Shelters = append(resp.Shelters, SearchResultToShelterResponse(result))
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Create a shelter
// @Description Register a shelter for the authenticated account. One shelter per account. Requires shelter role.
// @Tags Shelters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param shelter body CreateShelterRequest true "Shelter creation request"
// @Success 201 {object} ShelterResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} ErrorResponse "Unauthenticated"
// @Failure 403 {object} ErrorResponse "Permission denied"
// @Failure 409 {object} ErrorResponse "Shelter already registered for this account"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /shelters [post]
func (h *Handler) createShelter(c *gin.Context) {
	var input CreateShelterRequest
	log := h.logger.WithField("method", "createShelter")

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
	shelter := DTOToShelterModel(input)
	if err := h.shelterService.CreateShelter(c.Request.Context(), shelter, requester); err != nil {
		log.WithError(err).Warn("Failed to create shelter in service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToShelterResponse(shelter))
}

// @Summary Get own shelter
// @Description Get the shelter registered for the authenticated account.
// @Tags Shelters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ShelterResponse
// @Failure 401 {object} ErrorResponse "Unauthenticated"
// @Failure 404 {object} ErrorResponse "Shelter not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /shelters/my [get]
func (h *Handler) getMyShelter(c *gin.Context) {
	log := h.logger.WithField("method", "getMyShelter")

	requester, _ := requesterFromContext(c)
	shelter, err := h.shelterService.GetMyShelter(c.Request.Context(), requester)
	if err != nil {
		log.WithError(err).Warn("Failed to get shelter from service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToShelterResponse(shelter))
}

// @Summary Update a shelter
// @Description Partially update an owned shelter. Absent fields are left unchanged.
// @Tags Shelters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shelter ID"
// @Param shelter body UpdateShelterRequest true "Shelter update request"
// @Success 200 {object} ShelterResponse
// @Failure 400 {object} ErrorResponse "Invalid shelter ID or request body"
// @Failure 401 {object} ErrorResponse "Unauthenticated"
// @Failure 403 {object} ErrorResponse "Permission denied"
// @Failure 404 {object} ErrorResponse "Shelter not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /shelters/{id} [put]
func (h *Handler) updateShelter(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Kind: string(apperrors.KindValidation), Error: "invalid shelter ID"})
		return
	}
	log := h.logger.WithField("method", "updateShelter").WithField("id", id)

	var input UpdateShelterRequest
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

	patch, err := DTOToShelterPatch(input)
	if err != nil {
		log.WithError(err).Warn("Invalid patch")
		h.respondError(c, err)
		return
	}

	requester, _ := requesterFromContext(c)
	shelter, err := h.shelterService.UpdateShelter(c.Request.Context(), id, patch, requester)
	if err != nil {
		log.WithError(err).Warn("Failed to update shelter in service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToShelterResponse(shelter))
}

// @Summary Set available beds
// @Description Set the absolute number of available beds for an owned shelter.
// @Tags Shelters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shelter ID"
// @Param availability body UpdateAvailabilityRequest true "Absolute available bed count"
// @Success 200 {object} ShelterResponse
// @Failure 400 {object} ErrorResponse "Invalid shelter ID, request body or bed count out of range"
// @Failure 401 {object} ErrorResponse "Unauthenticated"
// @Failure 403 {object} ErrorResponse "Permission denied"
// @Failure 404 {object} ErrorResponse "Shelter not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /shelters/{id}/availability [put]
func (h *Handler) updateAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Kind: string(apperrors.KindValidation), Error: "invalid shelter ID"})
		return
	}
	log := h.logger.WithField("method", "updateAvailability").WithField("id", id)

	var input UpdateAvailabilityRequest
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
	shelter, err := h.shelterService.SetBedAvailability(c.Request.Context(), id, *input.AvailableBeds, requester)
	if err != nil {
		log.WithError(err).Warn("Failed to set bed availability in service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToShelterResponse(shelter))
}

// @Summary Deactivate a shelter
// @Description Soft-delete an owned shelter. It disappears from search results.
// @Tags Shelters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shelter ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid shelter ID"
// @Failure 401 {object} ErrorResponse "Unauthenticated"
// @Failure 403 {object} ErrorResponse "Permission denied"
// @Failure 404 {object} ErrorResponse "Shelter not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /shelters/{id} [delete]
func (h *Handler) deleteShelter(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Kind: string(apperrors.KindValidation), Error: "invalid shelter ID"})
		return
	}
	log := h.logger.WithField("method", "deleteShelter").WithField("id", id)

	requester, _ := requesterFromContext(c)
	if err := h.shelterService.DeactivateShelter(c.Request.Context(), id, requester); err != nil {
		log.WithError(err).Warn("Failed to deactivate shelter in service")
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create a restaurant
// @Description Register a restaurant for the authenticated account. One restaurant per account. Requires restaurant role.
// @Tags Restaurants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param restaurant body CreateRestaurantRequest true "Restaurant creation request"
// @Success 201 {object} RestaurantResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} ErrorResponse "Unauthenticated"
// @Failure 403 {object} ErrorResponse "Permission denied"
// @Failure 409 {object} ErrorResponse "Restaurant already registered for this account"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /restaurants [post]
func (h *Handler) createRestaurant(c *gin.Context) {
	var input CreateRestaurantRequest
	log := h.logger.WithField("method", "createRestaurant")

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
	restaurant := DTOToRestaurantModel(input)
	if err := h.restaurantService.CreateRestaurant(c.Request.Context(), restaurant, requester); err != nil {
		log.WithError(err).Warn("Failed to create restaurant in service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToRestaurantResponse(restaurant))
}

// @Summary Get own restaurant
// @Description Get the restaurant registered for the authenticated account.
// @Tags Restaurants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} RestaurantResponse
// @Failure 401 {object} ErrorResponse "Unauthenticated"
// @Failure 404 {object} ErrorResponse "Restaurant not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /restaurants/my [get]
func (h *Handler) getMyRestaurant(c *gin.Context) {
	log := h.logger.WithField("method", "getMyRestaurant")

	requester, _ := requesterFromContext(c)
	restaurant, err := h.restaurantService.GetMyRestaurant(c.Request.Context(), requester)
	if err != nil {
		log.WithError(err).Warn("Failed to get restaurant from service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToRestaurantResponse(restaurant))
}
