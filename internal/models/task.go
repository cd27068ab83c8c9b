package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusOverdue   TaskStatus = "overdue"
)

type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityLow    TaskPriority = "low"
)

type Task struct {
	ID            string       `gorm:"type:varchar(36);primarykey" json:"id"`
	Title         string       `gorm:"type:varchar(255);not null" json:"title"`
	Description   string       `gorm:"type:text" json:"description"`
	MemberID      string       `gorm:"type:varchar(36);index" json:"memberId"`
	AssignedTo    string       `gorm:"type:varchar(255)" json:"assignedTo"`
	Priority      TaskPriority `gorm:"type:varchar(20);not null;default:'medium'" json:"priority"`
	Status        TaskStatus   `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	DueDate       time.Time    `gorm:"not null;index" json:"dueDate"`
	CompletedDate *time.Time   `json:"completedDate"`
	ReminderSent  bool         `gorm:"not null;default:false" json:"reminderSent"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
