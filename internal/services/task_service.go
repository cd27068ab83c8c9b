package services

import (
	"errors"
	"strings"
	"time"

	"github.com/yukikurage/member-care-api/internal/models"
	"github.com/yukikurage/member-care-api/internal/repository"
	"github.com/yukikurage/member-care-api/internal/schema"
)

var (
	ErrTaskNotFound   = errors.New("task not found")
	ErrTaskTitleEmpty = errors.New("task title cannot be empty")
)

// TaskService handles task business logic.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// CreateTaskInput represents input for creating a task.
type CreateTaskInput struct {
	Title       string
	Description string
	MemberID    string
	AssignedTo  string
	Priority    models.TaskPriority
	Status      models.TaskStatus
	DueDate     time.Time
}

// UpdateTaskInput represents a partial patch. Nil fields are left unchanged.
type UpdateTaskInput struct {
	Title         *string
	Description   *string
	MemberID      *string
	AssignedTo    *string
	Priority      *models.TaskPriority
	Status        *models.TaskStatus
	DueDate       *time.Time
	CompletedDate *time.Time
	ReminderSent  *bool
}

// ListTasks returns all tasks ordered by due date.
func (s *TaskService) ListTasks() ([]models.Task, error) {
	return s.taskRepo.List()
}

// PendingTasks returns tasks still awaiting completion.
func (s *TaskService) PendingTasks() ([]models.Task, error) {
	return s.taskRepo.Pending()
}

// TasksByMember returns the tasks that reference a member.
func (s *TaskService) TasksByMember(memberID string) ([]models.Task, error) {
	return s.taskRepo.ByMember(memberID)
}

// GetTask returns a single task.
func (s *TaskService) GetTask(id string) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

// CreateTask validates, defaults, and persists a new task.
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	task := &models.Task{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		MemberID:    input.MemberID,
		AssignedTo:  input.AssignedTo,
		Priority:    input.Priority,
		Status:      input.Status,
		DueDate:     input.DueDate,
	}

	schema.ApplyTaskDefaults(task)
	if err := schema.ValidateTask(task); err != nil {
		return nil, err
	}

	return s.taskRepo.Create(task)
}

// UpdateTask applies a partial patch and returns the re-read record.
func (s *TaskService) UpdateTask(id string, input UpdateTaskInput) (*models.Task, error) {
	patch := map[string]any{}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, ErrTaskTitleEmpty
		}
		patch["title"] = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		patch["description"] = *input.Description
	}
	if input.MemberID != nil {
		patch["member_id"] = *input.MemberID
	}
	if input.AssignedTo != nil {
		patch["assigned_to"] = *input.AssignedTo
	}
	if input.Priority != nil && *input.Priority != "" {
		patch["priority"] = *input.Priority
	}
	if input.Status != nil && *input.Status != "" {
		patch["status"] = *input.Status
	}
	if input.DueDate != nil {
		patch["due_date"] = *input.DueDate
	}
	if input.CompletedDate != nil {
		patch["completed_date"] = *input.CompletedDate
	}
	if input.ReminderSent != nil {
		patch["reminder_sent"] = *input.ReminderSent
	}

	task, err := s.taskRepo.Update(id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

// CompleteTask marks a task completed, stamping the completion time. It is a
// restricted form of update and shares its not-found semantics.
func (s *TaskService) CompleteTask(id string) (*models.Task, error) {
	now := time.Now()
	status := models.TaskStatusCompleted
	return s.UpdateTask(id, UpdateTaskInput{
		Status:        &status,
		CompletedDate: &now,
	})
}

// DeleteTask removes a task. Deleting an unknown ID succeeds.
func (s *TaskService) DeleteTask(id string) error {
	return s.taskRepo.Delete(id)
}
