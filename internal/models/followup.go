package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FollowUpType string

const (
	FollowUpCall  FollowUpType = "call"
	FollowUpVisit FollowUpType = "visit"
	FollowUpEmail FollowUpType = "email"
	FollowUpText  FollowUpType = "text"
)

type FollowUp struct {
	ID            string       `gorm:"type:varchar(36);primarykey" json:"id"`
	MemberID      string       `gorm:"type:varchar(36);not null;index" json:"memberId"`
	Type          FollowUpType `gorm:"type:varchar(20);not null" json:"type"`
	Notes         string       `gorm:"type:text" json:"notes"`
	ScheduledDate time.Time    `gorm:"not null;index" json:"scheduledDate"`
	CompletedDate *time.Time   `json:"completedDate"`
	NextFollowUp  *time.Time   `json:"nextFollowUp"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

func (f *FollowUp) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
