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
	ErrMemberNotFound  = errors.New("member not found")
	ErrMemberNameEmpty = errors.New("member name cannot be empty")
)

// MemberService handles member business logic.
type MemberService struct {
	memberRepo repository.MemberRepository
}

// NewMemberService creates a new MemberService.
func NewMemberService(memberRepo repository.MemberRepository) *MemberService {
	return &MemberService{memberRepo: memberRepo}
}

// CreateMemberInput represents input for creating a member. Omitted enum
// fields and convertedDate receive schema defaults.
type CreateMemberInput struct {
	Name             string
	Email            string
	Phone            string
	Address          string
	DateOfBirth      *time.Time
	MembershipStatus models.MembershipStatus
	JoinDate         *time.Time
	ConvertedDate    *time.Time
	Baptized         bool
	BaptismDate      *time.Time
	InBibleStudy     bool
	InSmallGroup     bool
	Notes            string
	AssignedStaff    string
	Status           models.MemberStatus
	Avatar           string
}

// UpdateMemberInput represents a partial patch. Nil fields are left unchanged.
type UpdateMemberInput struct {
	Name             *string
	Email            *string
	Phone            *string
	Address          *string
	DateOfBirth      *time.Time
	MembershipStatus *models.MembershipStatus
	JoinDate         *time.Time
	ConvertedDate    *time.Time
	Baptized         *bool
	BaptismDate      *time.Time
	InBibleStudy     *bool
	InSmallGroup     *bool
	Notes            *string
	AssignedStaff    *string
	Status           *models.MemberStatus
	Avatar           *string
}

// ListMembers returns all members, newest first.
func (s *MemberService) ListMembers() ([]models.Member, error) {
	return s.memberRepo.List()
}

// RecentMembers returns the most recently added members.
func (s *MemberService) RecentMembers(limit int) ([]models.Member, error) {
	return s.memberRepo.Recent(limit)
}

// GetMember returns a single member.
func (s *MemberService) GetMember(id string) (*models.Member, error) {
	member, err := s.memberRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}

// CreateMember validates, defaults, and persists a new member. The returned
// record is the one read back from storage.
func (s *MemberService) CreateMember(input CreateMemberInput) (*models.Member, error) {
	member := &models.Member{
		Name:             strings.TrimSpace(input.Name),
		Email:            input.Email,
		Phone:            input.Phone,
		Address:          input.Address,
		DateOfBirth:      input.DateOfBirth,
		MembershipStatus: input.MembershipStatus,
		JoinDate:         input.JoinDate,
		Baptized:         input.Baptized,
		BaptismDate:      input.BaptismDate,
		InBibleStudy:     input.InBibleStudy,
		InSmallGroup:     input.InSmallGroup,
		Notes:            input.Notes,
		AssignedStaff:    input.AssignedStaff,
		Status:           input.Status,
		Avatar:           input.Avatar,
	}
	if input.ConvertedDate != nil {
		member.ConvertedDate = *input.ConvertedDate
	}

	schema.ApplyMemberDefaults(member, time.Now())
	if err := schema.ValidateMember(member); err != nil {
		return nil, err
	}

	return s.memberRepo.Create(member)
}

// UpdateMember applies a partial patch and returns the re-read record.
func (s *MemberService) UpdateMember(id string, input UpdateMemberInput) (*models.Member, error) {
	patch := map[string]any{}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, ErrMemberNameEmpty
		}
		patch["name"] = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		patch["email"] = *input.Email
	}
	if input.Phone != nil {
		patch["phone"] = *input.Phone
	}
	if input.Address != nil {
		patch["address"] = *input.Address
	}
	if input.DateOfBirth != nil {
		patch["date_of_birth"] = *input.DateOfBirth
	}
	if input.MembershipStatus != nil && *input.MembershipStatus != "" {
		patch["membership_status"] = *input.MembershipStatus
	}
	if input.JoinDate != nil {
		patch["join_date"] = *input.JoinDate
	}
	if input.ConvertedDate != nil {
		patch["converted_date"] = *input.ConvertedDate
	}
	if input.Baptized != nil {
		patch["baptized"] = *input.Baptized
	}
	if input.BaptismDate != nil {
		patch["baptism_date"] = *input.BaptismDate
	}
	if input.InBibleStudy != nil {
		patch["in_bible_study"] = *input.InBibleStudy
	}
	if input.InSmallGroup != nil {
		patch["in_small_group"] = *input.InSmallGroup
	}
	if input.Notes != nil {
		patch["notes"] = *input.Notes
	}
	if input.AssignedStaff != nil {
		patch["assigned_staff"] = *input.AssignedStaff
	}
	if input.Status != nil && *input.Status != "" {
		patch["status"] = *input.Status
	}
	if input.Avatar != nil {
		patch["avatar"] = *input.Avatar
	}

	member, err := s.memberRepo.Update(id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}

// DeleteMember removes a member and its dependent tasks and follow-ups.
// Deleting an unknown ID succeeds.
func (s *MemberService) DeleteMember(id string) error {
	return s.memberRepo.Delete(id)
}
