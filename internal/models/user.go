package models

import (
	"time"
)

type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleStaff     UserRole = "staff"
	RoleVolunteer UserRole = "volunteer"
)

// User is keyed by the identity provider's subject ID, not a generated UUID.
type User struct {
	ID          string    `gorm:"type:varchar(128);primarykey" json:"id"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	DisplayName string    `gorm:"type:varchar(255)" json:"displayName"`
	Role        UserRole  `gorm:"type:varchar(20);not null;default:'staff'" json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
