package schema

import (
	"time"

	"github.com/yukikurage/member-care-api/internal/models"
)

// Defaulting is a separate, explicit step run after parsing an insert payload
// and before validation. Only omitted fields are touched.

// ApplyMemberDefaults fills schema defaults on a new member. convertedDate is
// the one date field that defaults to the creation time.
func ApplyMemberDefaults(m *models.Member, now time.Time) {
	if m.MembershipStatus == "" {
		m.MembershipStatus = models.MembershipActive
	}
	if m.Status == "" {
		m.Status = models.MemberStatusNew
	}
	if m.ConvertedDate.IsZero() {
		m.ConvertedDate = now
	}
}

// ApplyTaskDefaults fills schema defaults on a new task.
func ApplyTaskDefaults(t *models.Task) {
	if t.Priority == "" {
		t.Priority = models.TaskPriorityMedium
	}
	if t.Status == "" {
		t.Status = models.TaskStatusPending
	}
}

// ApplyUserDefaults fills schema defaults on a new user.
func ApplyUserDefaults(u *models.User) {
	if u.Role == "" {
		u.Role = models.RoleStaff
	}
}
