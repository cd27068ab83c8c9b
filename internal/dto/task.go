package dto

import (
	"github.com/yukikurage/member-care-api/internal/models"
	"github.com/yukikurage/member-care-api/internal/timestamp"
)

// TaskDTO represents a task in API responses.
type TaskDTO struct {
	ID            string               `json:"id"`
	Title         string               `json:"title"`
	Description   string               `json:"description,omitempty"`
	MemberID      string               `json:"memberId,omitempty"`
	AssignedTo    string               `json:"assignedTo,omitempty"`
	Priority      models.TaskPriority  `json:"priority"`
	Status        models.TaskStatus    `json:"status"`
	DueDate       timestamp.Timestamp  `json:"dueDate"`
	CompletedDate *timestamp.Timestamp `json:"completedDate,omitempty"`
	ReminderSent  bool                 `json:"reminderSent"`
	CreatedAt     timestamp.Timestamp  `json:"createdAt"`
	UpdatedAt     timestamp.Timestamp  `json:"updatedAt"`
}

// ToTaskDTO converts a Task model to TaskDTO.
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:            task.ID,
		Title:         task.Title,
		Description:   task.Description,
		MemberID:      task.MemberID,
		AssignedTo:    task.AssignedTo,
		Priority:      task.Priority,
		Status:        task.Status,
		DueDate:       timestamp.New(task.DueDate),
		CompletedDate: optional(task.CompletedDate),
		ReminderSent:  task.ReminderSent,
		CreatedAt:     timestamp.New(task.CreatedAt),
		UpdatedAt:     timestamp.New(task.UpdatedAt),
	}
}

// ToTaskDTOs converts a slice of tasks.
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	out := make([]TaskDTO, len(tasks))
	for i, t := range tasks {
		out[i] = ToTaskDTO(t)
	}
	return out
}
