package models

import (
	"time"

	"github.com/google/uuid"
)

// Restaurant - заведение, публикующее предложения еды.
// У одного аккаунта-владельца может быть не более одного ресторана.
type Restaurant struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	ZipCode   string    `json:"zip_code"`
	Phone     string    `json:"phone"`
	Location  GeoPoint  `json:"location"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
