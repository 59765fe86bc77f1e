package v1

import (
	"github.com/shenikar/mealmatch_system/internal/apperrors"
	"github.com/shenikar/mealmatch_system/internal/models"
	"github.com/shenikar/mealmatch_system/internal/service"
)

// DTOToMealModel преобразует DTO создания в доменную модель предложения
func DTOToMealModel(dto CreateMealRequest) *models.Meal {
	return &models.Meal{
		RestaurantID:      dto.RestaurantID,
		Title:             dto.Title,
		Description:       dto.Description,
		MealType:          models.MealType(dto.MealType),
		IsFree:            dto.IsFree,
		OriginalPrice:     dto.OriginalPrice,
		DiscountedPrice:   dto.DiscountedPrice,
		QuantityAvailable: dto.QuantityAvailable,
		DietaryTags:       dto.DietaryTags,
		StartTime:         dto.StartTime,
		EndTime:           dto.EndTime,
	}
}

// DTOToMealPatch преобразует DTO обновления в частичный патч.
// Нулевые указатели остаются нулевыми: такие поля не изменяются.
func DTOToMealPatch(dto UpdateMealRequest) service.MealPatch {
	patch := service.MealPatch{
		Title:             dto.Title,
		Description:       dto.Description,
		IsFree:            dto.IsFree,
		OriginalPrice:     dto.OriginalPrice,
		DiscountedPrice:   dto.DiscountedPrice,
		QuantityAvailable: dto.QuantityAvailable,
		DietaryTags:       dto.DietaryTags,
		StartTime:         dto.StartTime,
		EndTime:           dto.EndTime,
	}
	if dto.MealType != nil {
		mealType := models.MealType(*dto.MealType)
		patch.MealType = &mealType
	}
	return patch
}

// ModelToMealResponse преобразует доменную модель в DTO для ответа
func ModelToMealResponse(model *models.Meal) *MealResponse {
	return &MealResponse{
		ID:                model.ID,
		RestaurantID:      model.RestaurantID,
		Title:             model.Title,
		Description:       model.Description,
		MealType:          string(model.MealType),
		IsFree:            model.IsFree,
		OriginalPrice:     model.OriginalPrice,
		DiscountedPrice:   model.DiscountedPrice,
		QuantityAvailable: model.QuantityAvailable,
		DietaryTags:       model.DietaryTags,
		StartTime:         model.StartTime,
		EndTime:           model.EndTime,
		IsActive:          model.IsActive,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}

// SearchResultToMealResponse дополняет ответ данными заведения и расстоянием
func SearchResultToMealResponse(result service.MealSearchResult) *MealResponse {
	resp := ModelToMealResponse(&result.Meal.Meal)
	resp.RestaurantName = result.Meal.RestaurantName
	resp.RestaurantAddress = result.Meal.RestaurantAddress
	resp.RestaurantCity = result.Meal.RestaurantCity
	resp.RestaurantPhone = result.Meal.RestaurantPhone
	resp.Latitude = &result.Meal.Location.Lat
	resp.Longitude = &result.Meal.Location.Lon
	resp.DistanceKm = result.DistanceKm
	return resp
}

// ModelsToMealResponses преобразует слайс моделей в слайс DTO
func ModelsToMealResponses(meals []*models.Meal) []*MealResponse {
	responses := make([]*MealResponse, len(meals))
	for i, meal := range meals {
		responses[i] = ModelToMealResponse(meal)
	}
	return responses
}

// DTOToShelterModel преобразует DTO создания в доменную модель приюта
func DTOToShelterModel(dto CreateShelterRequest) *models.Shelter {
	return &models.Shelter{
		Name:            dto.Name,
		Address:         dto.Address,
		City:            dto.City,
		State:           dto.State,
		ZipCode:         dto.ZipCode,
		Phone:           dto.Phone,
		Location:        models.GeoPoint{Lat: dto.Latitude, Lon: dto.Longitude},
		TotalBeds:       dto.TotalBeds,
		ServicesOffered: dto.ServicesOffered,
		BreakfastTime:   dto.BreakfastTime,
		LunchTime:       dto.LunchTime,
		DinnerTime:      dto.DinnerTime,
	}
}

// DTOToShelterPatch преобразует DTO обновления в частичный патч.
// Координаты меняются только парой.
func DTOToShelterPatch(dto UpdateShelterRequest) (service.ShelterPatch, error) {
	patch := service.ShelterPatch{
		Name:            dto.Name,
		Address:         dto.Address,
		City:            dto.City,
		State:           dto.State,
		ZipCode:         dto.ZipCode,
		Phone:           dto.Phone,
		ServicesOffered: dto.ServicesOffered,
		BreakfastTime:   dto.BreakfastTime,
		LunchTime:       dto.LunchTime,
		DinnerTime:      dto.DinnerTime,
	}
	if dto.Latitude != nil || dto.Longitude != nil {
		if dto.Latitude == nil || dto.Longitude == nil {
			return patch, apperrors.New(apperrors.KindInvalidCoordinate, "both latitude and longitude are required")
		}
		point, err := models.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if err != nil {
			return patch, err
		}
		patch.Location = &point
	}
	return patch, nil
}

// ModelToShelterResponse преобразует доменную модель в DTO для ответа
func ModelToShelterResponse(model *models.Shelter) *ShelterResponse {
	return &ShelterResponse{
		ID:              model.ID,
		Name:            model.Name,
		Address:         model.Address,
		City:            model.City,
		State:           model.State,
		ZipCode:         model.ZipCode,
		Phone:           model.Phone,
		Latitude:        model.Location.Lat,
		Longitude:       model.Location.Lon,
		TotalBeds:       model.TotalBeds,
		AvailableBeds:   model.AvailableBeds,
		ServicesOffered: model.ServicesOffered,
		BreakfastTime:   model.BreakfastTime,
		LunchTime:       model.LunchTime,
		DinnerTime:      model.DinnerTime,
		IsActive:        model.IsActive,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

// SearchResultToShelterResponse дополняет ответ расстоянием до точки поиска
func SearchResultToShelterResponse(result service.ShelterSearchResult) *ShelterResponse {
	resp := ModelToShelterResponse(result.Shelter)
	resp.DistanceKm = result.DistanceKm
	return resp
}

// DTOToRestaurantModel преобразует DTO создания в доменную модель ресторана
func DTOToRestaurantModel(dto CreateRestaurantRequest) *models.Restaurant {
	return &models.Restaurant{
		Name:     dto.Name,
		Address:  dto.Address,
		City:     dto.City,
		State:    dto.State,
		ZipCode:  dto.ZipCode,
		Phone:    dto.Phone,
		Location: models.GeoPoint{Lat: dto.Latitude, Lon: dto.Longitude},
	}
}

// ModelToRestaurantResponse преобразует доменную модель в DTO для ответа
func ModelToRestaurantResponse(model *models.Restaurant) *RestaurantResponse {
	return &RestaurantResponse{
		ID:        model.ID,
		Name:      model.Name,
		Address:   model.Address,
		City:      model.City,
		State:     model.State,
		ZipCode:   model.ZipCode,
		Phone:     model.Phone,
		Latitude:  model.Location.Lat,
		Longitude: model.Location.Lon,
		IsActive:  model.IsActive,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
