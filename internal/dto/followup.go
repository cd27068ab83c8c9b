package dto

import (
	"github.com/yukikurage/member-care-api/internal/models"
	"github.com/yukikurage/member-care-api/internal/timestamp"
)

// FollowUpDTO represents a follow-up in API responses.
type FollowUpDTO struct {
	ID            string               `json:"id"`
	MemberID      string               `json:"memberId"`
	Type          models.FollowUpType  `json:"type"`
	Notes         string               `json:"notes,omitempty"`
	ScheduledDate timestamp.Timestamp  `json:"scheduledDate"`
	CompletedDate *timestamp.Timestamp `json:"completedDate,omitempty"`
	NextFollowUp  *timestamp.Timestamp `json:"nextFollowUp,omitempty"`
	CreatedAt     timestamp.Timestamp  `json:"createdAt"`
	UpdatedAt     timestamp.Timestamp  `json:"updatedAt"`
}

// ToFollowUpDTO converts a FollowUp model to FollowUpDTO.
func ToFollowUpDTO(followUp models.FollowUp) FollowUpDTO {
	return FollowUpDTO{
		ID:            followUp.ID,
		MemberID:      followUp.MemberID,
		Type:          followUp.Type,
		Notes:         followUp.Notes,
		ScheduledDate: timestamp.New(followUp.ScheduledDate),
		CompletedDate: optional(followUp.CompletedDate),
		NextFollowUp:  optional(followUp.NextFollowUp),
		CreatedAt:     timestamp.New(followUp.CreatedAt),
		UpdatedAt:     timestamp.New(followUp.UpdatedAt),
	}
}

// ToFollowUpDTOs converts a slice of follow-ups.
func ToFollowUpDTOs(followUps []models.FollowUp) []FollowUpDTO {
	out := make([]FollowUpDTO, len(followUps))
	for i, f := range followUps {
		out[i] = ToFollowUpDTO(f)
	}
	return out
}
