package repository

import (
	"errors"

	"github.com/yukikurage/member-care-api/internal/models"
)

// ErrNotFound is returned when a requested key has no record. Callers branch
// on it rather than on driver-specific errors.
var ErrNotFound = errors.New("record not found")

// MemberRepository defines the data access surface for members.
type MemberRepository interface {
	// List returns all members, newest first.
	List() ([]models.Member, error)

	// Recent returns the most recently created members, up to limit.
	Recent(limit int) ([]models.Member, error)

	// FindByID finds a member by key, returning ErrNotFound when absent.
	FindByID(id string) (*models.Member, error)

	// Create persists a new member and returns the record as read back,
	// with the server-assigned key and timestamps.
	Create(member *models.Member) (*models.Member, error)

	// Update applies a partial patch. Updating a missing key fails with
	// ErrNotFound; it never creates a record.
	Update(id string, patch map[string]any) (*models.Member, error)

	// Delete removes a member and its dependent tasks and follow-ups.
	// Deleting a missing key is not an error.
	Delete(id string) error
}

// TaskRepository defines the data access surface for tasks.
type TaskRepository interface {
	// List returns all tasks ordered by due date ascending.
	List() ([]models.Task, error)

	// Pending returns pending tasks ordered by due date ascending.
	Pending() ([]models.Task, error)

	// ByMember returns a member's tasks ordered by due date ascending.
	ByMember(memberID string) ([]models.Task, error)

	// FindByID finds a task by key, returning ErrNotFound when absent.
	FindByID(id string) (*models.Task, error)

	// Create persists a new task and returns the record as read back.
	Create(task *models.Task) (*models.Task, error)

	// Update applies a partial patch, failing with ErrNotFound when absent.
	Update(id string, patch map[string]any) (*models.Task, error)

	// Delete removes a task. Deleting a missing key is not an error.
	Delete(id string) error
}

// FollowUpRepository defines the data access surface for follow-ups.
type FollowUpRepository interface {
	// List returns all follow-ups ordered by scheduled date ascending.
	List() ([]models.FollowUp, error)

	// ByMember returns a member's follow-ups ordered by scheduled date.
	ByMember(memberID string) ([]models.FollowUp, error)

	// FindByID finds a follow-up by key, returning ErrNotFound when absent.
	FindByID(id string) (*models.FollowUp, error)

	// Create persists a new follow-up and returns the record as read back.
	Create(followUp *models.FollowUp) (*models.FollowUp, error)

	// Update applies a partial patch, failing with ErrNotFound when absent.
	Update(id string, patch map[string]any) (*models.FollowUp, error)

	// Delete removes a follow-up. Deleting a missing key is not an error.
	Delete(id string) error
}

// UserRepository defines the data access surface for application users.
// User keys are identity-provider subject IDs supplied at registration.
type UserRepository interface {
	// FindByID finds a user by subject ID, returning ErrNotFound when absent.
	FindByID(id string) (*models.User, error)

	// Create persists a new user under the given subject ID.
	Create(user *models.User) (*models.User, error)

	// Update applies a partial patch, failing with ErrNotFound when absent.
	Update(id string, patch map[string]any) (*models.User, error)
}
