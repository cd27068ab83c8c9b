package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yukikurage/member-care-api/internal/dto"
	apierrors "github.com/yukikurage/member-care-api/internal/errors"
	"github.com/yukikurage/member-care-api/internal/models"
	"github.com/yukikurage/member-care-api/internal/schema"
	"github.com/yukikurage/member-care-api/internal/services"
	"github.com/yukikurage/member-care-api/internal/timestamp"
	"github.com/yukikurage/member-care-api/internal/validation"
)

// TaskHandler coordinates task-related HTTP handlers.
type TaskHandler struct {
	tasks *services.TaskService
	log   *logrus.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(tasks *services.TaskService, log *logrus.Logger) *TaskHandler {
	return &TaskHandler{tasks: tasks, log: log}
}

// ListTasks returns all tasks ordered by due date.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.tasks.ListTasks()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// PendingTasks returns tasks still awaiting completion.
func (h *TaskHandler) PendingTasks(c *gin.Context) {
	tasks, err := h.tasks.PendingTasks()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// TasksByMember returns the tasks that reference a member.
func (h *TaskHandler) TasksByMember(c *gin.Context) {
	tasks, err := h.tasks.TasksByMember(c.Param("memberId"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// GetTask returns a single task by ID.
func (h *TaskHandler) GetTask(c *gin.Context) {
	task, err := h.tasks.GetTask(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// CreateTask creates a new task.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	type CreateTaskRequest struct {
		Title       string               `json:"title" binding:"required"`
		Description string               `json:"description"`
		MemberID    string               `json:"memberId"`
		AssignedTo  string               `json:"assignedTo"`
		Priority    string               `json:"priority" binding:"omitempty,oneof=high medium low"`
		Status      string               `json:"status" binding:"omitempty,oneof=pending completed overdue"`
		DueDate     *timestamp.Timestamp `json:"dueDate" binding:"required"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, "Invalid task data", validation.ToDetails(err))
		return
	}

	task, err := h.tasks.CreateTask(services.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		MemberID:    req.MemberID,
		AssignedTo:  req.AssignedTo,
		Priority:    models.TaskPriority(req.Priority),
		Status:      models.TaskStatus(req.Status),
		DueDate:     req.DueDate.Time,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// UpdateTask applies a partial patch to an existing task.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	type UpdateTaskRequest struct {
		Title         *string              `json:"title"`
		Description   *string              `json:"description"`
		MemberID      *string              `json:"memberId"`
		AssignedTo    *string              `json:"assignedTo"`
		Priority      *string              `json:"priority" binding:"omitempty,oneof=high medium low"`
		Status        *string              `json:"status" binding:"omitempty,oneof=pending completed overdue"`
		DueDate       *timestamp.Timestamp `json:"dueDate"`
		CompletedDate *timestamp.Timestamp `json:"completedDate"`
		ReminderSent  *bool                `json:"reminderSent"`
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, "Invalid task data", validation.ToDetails(err))
		return
	}

	task, err := h.tasks.UpdateTask(c.Param("id"), services.UpdateTaskInput{
		Title:         req.Title,
		Description:   req.Description,
		MemberID:      req.MemberID,
		AssignedTo:    req.AssignedTo,
		Priority:      (*models.TaskPriority)(req.Priority),
		Status:        (*models.TaskStatus)(req.Status),
		DueDate:       timePtr(req.DueDate),
		CompletedDate: timePtr(req.CompletedDate),
		ReminderSent:  req.ReminderSent,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// CompleteTask marks a task completed.
func (h *TaskHandler) CompleteTask(c *gin.Context) {
	task, err := h.tasks.CompleteTask(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// DeleteTask removes a task.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	if err := h.tasks.DeleteTask(c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) respondError(c *gin.Context, err error) {
	var schemaErr *schema.ValidationError
	switch {
	case errors.As(err, &schemaErr):
		apierrors.ValidationFailed(c, "Invalid task data", schemaErr.Details())
	case errors.Is(err, services.ErrTaskTitleEmpty):
		apierrors.ValidationFailed(c, "Invalid task data", map[string]string{"title": "cannot be empty"})
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, "Task not found")
	default:
		h.log.WithError(err).Error("task operation failed")
		apierrors.InternalError(c, "")
	}
}
