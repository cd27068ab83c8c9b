package services

import (
	"errors"
	"time"

	"github.com/yukikurage/member-care-api/internal/models"
	"github.com/yukikurage/member-care-api/internal/repository"
	"github.com/yukikurage/member-care-api/internal/schema"
)

var ErrFollowUpNotFound = errors.New("follow-up not found")

// FollowUpService handles follow-up business logic.
type FollowUpService struct {
	followUpRepo repository.FollowUpRepository
}

// NewFollowUpService creates a new FollowUpService.
func NewFollowUpService(followUpRepo repository.FollowUpRepository) *FollowUpService {
	return &FollowUpService{followUpRepo: followUpRepo}
}

// CreateFollowUpInput represents input for scheduling a follow-up.
type CreateFollowUpInput struct {
	MemberID      string
	Type          models.FollowUpType
	Notes         string
	ScheduledDate time.Time
	NextFollowUp  *time.Time
}

// UpdateFollowUpInput represents a partial patch. Nil fields are left unchanged.
type UpdateFollowUpInput struct {
	MemberID      *string
	Type          *models.FollowUpType
	Notes         *string
	ScheduledDate *time.Time
	CompletedDate *time.Time
	NextFollowUp  *time.Time
}

// ListFollowUps returns all follow-ups ordered by scheduled date.
func (s *FollowUpService) ListFollowUps() ([]models.FollowUp, error) {
	return s.followUpRepo.List()
}

// FollowUpsByMember returns a member's follow-ups.
func (s *FollowUpService) FollowUpsByMember(memberID string) ([]models.FollowUp, error) {
	return s.followUpRepo.ByMember(memberID)
}

// GetFollowUp returns a single follow-up.
func (s *FollowUpService) GetFollowUp(id string) (*models.FollowUp, error) {
	followUp, err := s.followUpRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrFollowUpNotFound
		}
		return nil, err
	}
	return followUp, nil
}

// CreateFollowUp validates and persists a new follow-up.
func (s *FollowUpService) CreateFollowUp(input CreateFollowUpInput) (*models.FollowUp, error) {
	followUp := &models.FollowUp{
		MemberID:      input.MemberID,
		Type:          input.Type,
		Notes:         input.Notes,
		ScheduledDate: input.ScheduledDate,
		NextFollowUp:  input.NextFollowUp,
	}

	if err := schema.ValidateFollowUp(followUp); err != nil {
		return nil, err
	}

	return s.followUpRepo.Create(followUp)
}

// UpdateFollowUp applies a partial patch and returns the re-read record.
func (s *FollowUpService) UpdateFollowUp(id string, input UpdateFollowUpInput) (*models.FollowUp, error) {
	patch := map[string]any{}

	if input.MemberID != nil && *input.MemberID != "" {
		patch["member_id"] = *input.MemberID
	}
	if input.Type != nil && *input.Type != "" {
		patch["type"] = *input.Type
	}
	if input.Notes != nil {
		patch["notes"] = *input.Notes
	}
	if input.ScheduledDate != nil {
		patch["scheduled_date"] = *input.ScheduledDate
	}
	if input.CompletedDate != nil {
		patch["completed_date"] = *input.CompletedDate
	}
	if input.NextFollowUp != nil {
		patch["next_follow_up"] = *input.NextFollowUp
	}

	followUp, err := s.followUpRepo.Update(id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrFollowUpNotFound
		}
		return nil, err
	}
	return followUp, nil
}

// CompleteFollowUp stamps the completion time on a follow-up.
func (s *FollowUpService) CompleteFollowUp(id string) (*models.FollowUp, error) {
	now := time.Now()
	return s.UpdateFollowUp(id, UpdateFollowUpInput{CompletedDate: &now})
}

// DeleteFollowUp removes a follow-up. Deleting an unknown ID succeeds.
func (s *FollowUpService) DeleteFollowUp(id string) error {
	return s.followUpRepo.Delete(id)
}
