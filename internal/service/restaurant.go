package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shenikar/mealmatch_system/internal/apperrors"
	"github.com/shenikar/mealmatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

// RestaurantRepository определяет контракт для работы с хранилищем ресторанов
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *models.Restaurant) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Restaurant, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*models.Restaurant, error)
}

// RestaurantService определяет контракт для бизнес-логики ресторанов
type RestaurantService interface {
	CreateRestaurant(ctx context.Context, restaurant *models.Restaurant, requester models.Requester) error
	GetMyRestaurant(ctx context.Context, requester models.Requester) (*models.Restaurant, error)
}

type restaurantService struct {
	repo   RestaurantRepository
	logger *logrus.Logger
}

func NewRestaurantService(repo RestaurantRepository, logger *logrus.Logger) RestaurantService {
	return &restaurantService{
		repo:   repo,
		logger: logger,
	}
}

// CreateRestaurant создает ресторан. У аккаунта может быть только один ресторан.
func (s *restaurantService) CreateRestaurant(ctx context.Context, restaurant *models.Restaurant, requester models.Requester) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "restaurant",
		"method":     "CreateRestaurant",
		"account_id": requester.AccountID,
	})
	log.Info("Attempting to create a new restaurant")

	if requester.Role != models.RoleRestaurant {
		return apperrors.New(apperrors.KindPermissionDenied, "only restaurant accounts may create restaurants")
	}

	existing, err := s.repo.GetByOwner(ctx, requester.AccountID)
	if err != nil && !apperrors.IsKind(err, apperrors.KindNotFound) {
		log.WithError(err).Error("Failed to check for existing restaurant")
		return err
	}
	if existing != nil {
		return apperrors.New(apperrors.KindConflict, "restaurant already exists for this account")
	}

	if restaurant.Name == "" {
		return apperrors.New(apperrors.KindValidation, "name is required")
	}
	if _, err := models.NewGeoPoint(restaurant.Location.Lat, restaurant.Location.Lon); err != nil {
		return err
	}

	restaurant.OwnerID = requester.AccountID
	restaurant.IsActive = true

	if err := s.repo.Create(ctx, restaurant); err != nil {
		log.WithError(err).Error("Failed to create restaurant in repository")
		return err
	}

	log.WithField("restaurant_id", restaurant.ID).Info("Restaurant created successfully")
	return nil
}

// GetMyRestaurant возвращает ресторан владельца для кабинета
func (s *restaurantService) GetMyRestaurant(ctx context.Context, requester models.Requester) (*models.Restaurant, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "restaurant",
		"method":     "GetMyRestaurant",
		"account_id": requester.AccountID,
	})
	log.Info("Fetching restaurant by owner")

	restaurant, err := s.repo.GetByOwner(ctx, requester.AccountID)
	if err != nil {
		log.WithError(err).Warn("Failed to get restaurant by owner")
		return nil, err
	}
	return restaurant, nil
}
