package dto

import (
	"time"

	"github.com/yukikurage/member-care-api/internal/models"
	"github.com/yukikurage/member-care-api/internal/timestamp"
)

// MemberDTO represents a member in API responses. All date fields serialize
// as RFC3339 UTC strings regardless of how they arrived.
type MemberDTO struct {
	ID               string                  `json:"id"`
	Name             string                  `json:"name"`
	Email            string                  `json:"email,omitempty"`
	Phone            string                  `json:"phone,omitempty"`
	Address          string                  `json:"address,omitempty"`
	DateOfBirth      *timestamp.Timestamp    `json:"dateOfBirth,omitempty"`
	MembershipStatus models.MembershipStatus `json:"membershipStatus"`
	JoinDate         *timestamp.Timestamp    `json:"joinDate,omitempty"`
	ConvertedDate    timestamp.Timestamp     `json:"convertedDate"`
	Baptized         bool                    `json:"baptized"`
	BaptismDate      *timestamp.Timestamp    `json:"baptismDate,omitempty"`
	InBibleStudy     bool                    `json:"inBibleStudy"`
	InSmallGroup     bool                    `json:"inSmallGroup"`
	Notes            string                  `json:"notes,omitempty"`
	AssignedStaff    string                  `json:"assignedStaff,omitempty"`
	Status           models.MemberStatus     `json:"status"`
	Avatar           string                  `json:"avatar,omitempty"`
	CreatedAt        timestamp.Timestamp     `json:"createdAt"`
	UpdatedAt        timestamp.Timestamp     `json:"updatedAt"`
}

// ToMemberDTO converts a Member model to MemberDTO.
func ToMemberDTO(member models.Member) MemberDTO {
	return MemberDTO{
		ID:               member.ID,
		Name:             member.Name,
		Email:            member.Email,
		Phone:            member.Phone,
		Address:          member.Address,
		DateOfBirth:      optional(member.DateOfBirth),
		MembershipStatus: member.MembershipStatus,
		JoinDate:         optional(member.JoinDate),
		ConvertedDate:    timestamp.New(member.ConvertedDate),
		Baptized:         member.Baptized,
		BaptismDate:      optional(member.BaptismDate),
		InBibleStudy:     member.InBibleStudy,
		InSmallGroup:     member.InSmallGroup,
		Notes:            member.Notes,
		AssignedStaff:    member.AssignedStaff,
		Status:           member.Status,
		Avatar:           member.Avatar,
		CreatedAt:        timestamp.New(member.CreatedAt),
		UpdatedAt:        timestamp.New(member.UpdatedAt),
	}
}

// ToMemberDTOs converts a slice of members.
func ToMemberDTOs(members []models.Member) []MemberDTO {
	out := make([]MemberDTO, len(members))
	for i, m := range members {
		out[i] = ToMemberDTO(m)
	}
	return out
}

func optional(t *time.Time) *timestamp.Timestamp {
	if t == nil {
		return nil
	}
	ts := timestamp.New(*t)
	return &ts
}
