package dto

import (
	"github.com/yukikurage/member-care-api/internal/models"
	"github.com/yukikurage/member-care-api/internal/timestamp"
)

// UserDTO represents an application user in API responses.
type UserDTO struct {
	ID          string              `json:"id"`
	Email       string              `json:"email"`
	DisplayName string              `json:"displayName,omitempty"`
	Role        models.UserRole     `json:"role"`
	CreatedAt   timestamp.Timestamp `json:"createdAt"`
	UpdatedAt   timestamp.Timestamp `json:"updatedAt"`
}

// ToUserDTO converts a User model to UserDTO.
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        user.Role,
		CreatedAt:   timestamp.New(user.CreatedAt),
		UpdatedAt:   timestamp.New(user.UpdatedAt),
	}
}
