package service_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/mealmatch_system/internal/apperrors"
	"github.com/shenikar/mealmatch_system/internal/models"
	"github.com/shenikar/mealmatch_system/internal/service"
	"github.com/shenikar/mealmatch_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRestaurantService(t *testing.T) (service.RestaurantService, *mocks.MockRestaurantRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockRestaurantRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return service.NewRestaurantService(repoMock, logger), repoMock
}

func TestCreateRestaurant_Success(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestRestaurantService(t)
	ctx := context.Background()
	owner := uuid.New()
	requester := models.Requester{AccountID: owner, Role: models.RoleRestaurant}

	restaurant := &models.Restaurant{
		Name:     "Новое заведение",
		Location: models.GeoPoint{Lat: 40.0, Lon: -74.0},
	}

	// Ожидания
	repoMock.EXPECT().
		GetByOwner(ctx, owner).
		Return(nil, apperrors.New(apperrors.KindNotFound, "restaurant not found")).
		Times(1)
	repoMock.EXPECT().Create(ctx, restaurant).Return(nil).Times(1)

	// Действие
	err := svc.CreateRestaurant(ctx, restaurant, requester)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, owner, restaurant.OwnerID)
	assert.True(t, restaurant.IsActive)
}

func TestCreateRestaurant_Conflict_AlreadyRegistered(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestRestaurantService(t)
	ctx := context.Background()
	owner := uuid.New()
	requester := models.Requester{AccountID: owner, Role: models.RoleRestaurant}

	repoMock.EXPECT().
		GetByOwner(ctx, owner).
		Return(&models.Restaurant{ID: uuid.New(), OwnerID: owner}, nil).
		Times(1)

	// Действие
	err := svc.CreateRestaurant(ctx, &models.Restaurant{Name: "Второе заведение"}, requester)

	// Проверки
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
}

func TestCreateRestaurant_PermissionDenied_WrongRole(t *testing.T) {
	// Подготовка
	svc, _ := newTestRestaurantService(t)
	requester := models.Requester{AccountID: uuid.New(), Role: models.RoleShelter}

	// Действие
	err := svc.CreateRestaurant(context.Background(), &models.Restaurant{Name: "Заведение"}, requester)

	// Проверки
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindPermissionDenied))
}

func TestGetMyRestaurant_Success(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestRestaurantService(t)
	ctx := context.Background()
	owner := uuid.New()
	requester := models.Requester{AccountID: owner, Role: models.RoleRestaurant}
	expected := &models.Restaurant{ID: uuid.New(), OwnerID: owner, Name: "Мое заведение"}

	repoMock.EXPECT().GetByOwner(ctx, owner).Return(expected, nil).Times(1)

	// Действие
	restaurant, err := svc.GetMyRestaurant(ctx, requester)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, restaurant)
}
