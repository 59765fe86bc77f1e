package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/shenikar/mealmatch_system/internal/auth"
	"github.com/sirupsen/logrus"
)

// RegisterRoutes регистрирует все маршруты API v1.
// Поиск и чтение открыты; мутации требуют подтверждённого запрашивающего.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, resolver auth.Resolver, log *logrus.Logger) {
	optional := OptionalRequesterMiddleware(resolver, log)
	required := RequireRequesterMiddleware(resolver, log)

	// Маршруты предложений еды
	meals := api.Group("/meals")
	{
		meals.GET("", optional, h.searchMeals)
		meals.GET("/stats", required, h.getSearchStats)
		meals.GET("/restaurant/:restaurantId", required, h.listRestaurantMeals)
		meals.GET("/:id", h.getMeal)
		meals.POST("", required, h.createMeal)
		meals.PUT("/:id", required, h.updateMeal)
		meals.DELETE("/:id", required, h.deleteMeal)
	}

	// Маршруты приютов
	shelters := api.Group("/shelters")
	{
		shelters.GET("", optional, h.searchShelters)
		shelters.GET("/my", required, h.getMyShelter)
		shelters.POST("", required, h.createShelter)
		shelters.PUT("/:id", required, h.updateShelter)
		shelters.PUT("/:id/availability", required, h.updateAvailability)
		shelters.DELETE("/:id", required, h.deleteShelter)
	}

	// Маршруты ресторанов
	restaurants := api.Group("/restaurants")
	{
		restaurants.GET("/my", required, h.getMyRestaurant)
		restaurants.POST("", required, h.createRestaurant)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
