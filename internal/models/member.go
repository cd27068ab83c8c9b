package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MembershipStatus string

const (
	MembershipActive   MembershipStatus = "active"
	MembershipInactive MembershipStatus = "inactive"
	MembershipPending  MembershipStatus = "pending"
)

type MemberStatus string

const (
	MemberStatusNew       MemberStatus = "new"
	MemberStatusContacted MemberStatus = "contacted"
	MemberStatusBaptized  MemberStatus = "baptized"
	MemberStatusActive    MemberStatus = "active"
)

type Member struct {
	ID               string           `gorm:"type:varchar(36);primarykey" json:"id"`
	Name             string           `gorm:"type:varchar(255);not null" json:"name"`
	Email            string           `gorm:"type:varchar(255)" json:"email"`
	Phone            string           `gorm:"type:varchar(50)" json:"phone"`
	Address          string           `gorm:"type:text" json:"address"`
	DateOfBirth      *time.Time       `json:"dateOfBirth"`
	MembershipStatus MembershipStatus `gorm:"type:varchar(20);not null;default:'active'" json:"membershipStatus"`
	JoinDate         *time.Time       `json:"joinDate"`
	ConvertedDate    time.Time        `gorm:"not null" json:"convertedDate"`
	Baptized         bool             `gorm:"not null;default:false" json:"baptized"`
	BaptismDate      *time.Time       `json:"baptismDate"`
	InBibleStudy     bool             `gorm:"not null;default:false" json:"inBibleStudy"`
	InSmallGroup     bool             `gorm:"not null;default:false" json:"inSmallGroup"`
	Notes            string           `gorm:"type:text" json:"notes"`
	AssignedStaff    string           `gorm:"type:varchar(255)" json:"assignedStaff"`
	Status           MemberStatus     `gorm:"type:varchar(20);not null;default:'new'" json:"status"`
	Avatar           string           `gorm:"type:text" json:"avatar"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// BeforeCreate assigns the document key. Keys are server-side only; a
// client-supplied ID is never honored because insert payloads do not carry one.
func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
