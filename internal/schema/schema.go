// Package schema holds the authoritative validation rules for every entity.
// Repositories run these checks on each record read back from the datastore,
// so a record that violates the schema never escapes the storage layer.
package schema

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/yukikurage/member-care-api/internal/models"
)

var validate = validator.New()

// FieldError describes a single field-scoped validation problem.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates the field errors found in one record.
type ValidationError struct {
	Entity string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Entity, strings.Join(parts, "; "))
}

// Details returns the field errors as a field-keyed map for API responses.
func (e *ValidationError) Details() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		out[f.Field] = f.Message
	}
	return out
}

type fieldErrors []FieldError

func (fe *fieldErrors) add(field, message string) {
	*fe = append(*fe, FieldError{Field: field, Message: message})
}

func (fe fieldErrors) wrap(entity string) error {
	if len(fe) == 0 {
		return nil
	}
	return &ValidationError{Entity: entity, Fields: fe}
}

func validEmail(s string) bool {
	return validate.Var(s, "email") == nil
}

func enumMessage(value string) string {
	return fmt.Sprintf("invalid value %q", value)
}

var membershipStatuses = map[models.MembershipStatus]bool{
	models.MembershipActive:   true,
	models.MembershipInactive: true,
	models.MembershipPending:  true,
}

var memberStatuses = map[models.MemberStatus]bool{
	models.MemberStatusNew:       true,
	models.MemberStatusContacted: true,
	models.MemberStatusBaptized:  true,
	models.MemberStatusActive:    true,
}

var taskStatuses = map[models.TaskStatus]bool{
	models.TaskStatusPending:   true,
	models.TaskStatusCompleted: true,
	models.TaskStatusOverdue:   true,
}

var taskPriorities = map[models.TaskPriority]bool{
	models.TaskPriorityHigh:   true,
	models.TaskPriorityMedium: true,
	models.TaskPriorityLow:    true,
}

var followUpTypes = map[models.FollowUpType]bool{
	models.FollowUpCall:  true,
	models.FollowUpVisit: true,
	models.FollowUpEmail: true,
	models.FollowUpText:  true,
}

var userRoles = map[models.UserRole]bool{
	models.RoleAdmin:     true,
	models.RoleStaff:     true,
	models.RoleVolunteer: true,
}

// ValidateMember checks a member record against the schema. Empty email is
// explicitly allowed; a non-empty one must be a valid address.
func ValidateMember(m *models.Member) error {
	var errs fieldErrors
	if strings.TrimSpace(m.Name) == "" {
		errs.add("name", "is required")
	}
	if m.Email != "" && !validEmail(m.Email) {
		errs.add("email", "must be a valid email address")
	}
	if !membershipStatuses[m.MembershipStatus] {
		errs.add("membershipStatus", enumMessage(string(m.MembershipStatus)))
	}
	if !memberStatuses[m.Status] {
		errs.add("status", enumMessage(string(m.Status)))
	}
	if m.ConvertedDate.IsZero() {
		errs.add("convertedDate", "is required")
	}
	return errs.wrap("member")
}

// ValidateTask checks a task record against the schema.
func ValidateTask(t *models.Task) error {
	var errs fieldErrors
	if strings.TrimSpace(t.Title) == "" {
		errs.add("title", "is required")
	}
	if !taskPriorities[t.Priority] {
		errs.add("priority", enumMessage(string(t.Priority)))
	}
	if !taskStatuses[t.Status] {
		errs.add("status", enumMessage(string(t.Status)))
	}
	if t.DueDate.IsZero() {
		errs.add("dueDate", "is required")
	}
	return errs.wrap("task")
}

// ValidateFollowUp checks a follow-up record against the schema.
func ValidateFollowUp(f *models.FollowUp) error {
	var errs fieldErrors
	if f.MemberID == "" {
		errs.add("memberId", "is required")
	}
	if !followUpTypes[f.Type] {
		errs.add("type", enumMessage(string(f.Type)))
	}
	if f.ScheduledDate.IsZero() {
		errs.add("scheduledDate", "is required")
	}
	return errs.wrap("followUp")
}

// ValidateUser checks a user record against the schema.
func ValidateUser(u *models.User) error {
	var errs fieldErrors
	if u.ID == "" {
		errs.add("id", "is required")
	}
	if u.Email == "" || !validEmail(u.Email) {
		errs.add("email", "must be a valid email address")
	}
	if !userRoles[u.Role] {
		errs.add("role", enumMessage(string(u.Role)))
	}
	return errs.wrap("user")
}
