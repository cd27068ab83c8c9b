package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/yukikurage/member-care-api/internal/models"
	"github.com/yukikurage/member-care-api/internal/schema"
)

// GormTaskRepository is a GORM implementation of TaskRepository.
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// List returns all tasks ordered by due date ascending.
func (r *GormTaskRepository) List() ([]models.Task, error) {
	return r.find(r.db, "list tasks")
}

// Pending returns pending tasks ordered by due date ascending.
func (r *GormTaskRepository) Pending() ([]models.Task, error) {
	return r.find(r.db.Where("status = ?", models.TaskStatusPending), "list pending tasks")
}

// ByMember returns a member's tasks ordered by due date ascending.
func (r *GormTaskRepository) ByMember(memberID string) ([]models.Task, error) {
	return r.find(r.db.Where("member_id = ?", memberID), "list member tasks")
}

func (r *GormTaskRepository) find(query *gorm.DB, op string) ([]models.Task, error) {
	var tasks []models.Task
	if err := query.Order("due_date ASC").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for i := range tasks {
		if err := schema.ValidateTask(&tasks[i]); err != nil {
			return nil, err
		}
	}
	return tasks, nil
}

// FindByID finds a task by key.
func (r *GormTaskRepository) FindByID(id string) (*models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	if err := schema.ValidateTask(&task); err != nil {
		return nil, err
	}
	return &task, nil
}

// Create persists a new task and returns the record as read back.
func (r *GormTaskRepository) Create(task *models.Task) (*models.Task, error) {
	if err := r.db.Create(task).Error; err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return r.FindByID(task.ID)
}

// Update applies a partial patch, failing with ErrNotFound when the key is
// absent so a missing task is never silently created.
func (r *GormTaskRepository) Update(id string, patch map[string]any) (*models.Task, error) {
	patch["updated_at"] = time.Now()
	res := r.db.Model(&models.Task{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		return nil, fmt.Errorf("update task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(id)
}

// Delete removes a task. Deleting a missing key is a no-op.
func (r *GormTaskRepository) Delete(id string) error {
	if err := r.db.Delete(&models.Task{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
