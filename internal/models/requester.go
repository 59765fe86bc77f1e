package models

import "github.com/google/uuid"

// Role - роль аккаунта, определяющая какие сущности он может создавать
type Role string

const (
	RoleRestaurant Role = "restaurant"
	RoleShelter    Role = "shelter"
	RoleIndividual Role = "individual"
)

// IsValid проверяет, что роль известна системе
func (r Role) IsValid() bool {
	switch r {
	case RoleRestaurant, RoleShelter, RoleIndividual:
		return true
	}
	return false
}

// Requester - разрешенная внешним коллаборатором личность запроса.
// Аутентификация происходит снаружи, здесь только авторизация.
type Requester struct {
	AccountID uuid.UUID `json:"account_id"`
	Role      Role      `json:"role"`
}
