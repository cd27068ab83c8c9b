package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/yukikurage/member-care-api/internal/models"
	"github.com/yukikurage/member-care-api/internal/schema"
)

// GormMemberRepository is a GORM implementation of MemberRepository.
type GormMemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new MemberRepository.
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &GormMemberRepository{db: db}
}

// List returns all members, newest first.
func (r *GormMemberRepository) List() ([]models.Member, error) {
	var members []models.Member
	if err := r.db.Order("created_at DESC").Find(&members).Error; err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	if err := validateMembers(members); err != nil {
		return nil, err
	}
	return members, nil
}

// Recent returns the most recently created members, up to limit.
func (r *GormMemberRepository) Recent(limit int) ([]models.Member, error) {
	var members []models.Member
	if err := r.db.Order("created_at DESC").Limit(limit).Find(&members).Error; err != nil {
		return nil, fmt.Errorf("list recent members: %w", err)
	}
	if err := validateMembers(members); err != nil {
		return nil, err
	}
	return members, nil
}

// FindByID finds a member by key.
func (r *GormMemberRepository) FindByID(id string) (*models.Member, error) {
	var member models.Member
	if err := r.db.First(&member, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find member: %w", err)
	}
	if err := schema.ValidateMember(&member); err != nil {
		return nil, err
	}
	return &member, nil
}

// Create persists a new member and returns the record as read back, so the
// server-assigned key and timestamps are authoritative in the response.
func (r *GormMemberRepository) Create(member *models.Member) (*models.Member, error) {
	if err := r.db.Create(member).Error; err != nil {
		return nil, fmt.Errorf("create member: %w", err)
	}
	return r.FindByID(member.ID)
}

// Update applies a partial patch through the store's native update, then
// re-reads and validates the result.
func (r *GormMemberRepository) Update(id string, patch map[string]any) (*models.Member, error) {
	patch["updated_at"] = time.Now()
	res := r.db.Model(&models.Member{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		return nil, fmt.Errorf("update member: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(id)
}

// Delete removes a member together with its tasks and follow-ups. The
// dependent rows go in the same transaction so a partial cascade is never
// observable. Deleting a missing key is a no-op.
func (r *GormMemberRepository) Delete(id string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("member_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("member_id = ?", id).Delete(&models.FollowUp{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Member{}, "id = ?", id).Error
	})
	if err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	return nil
}

func validateMembers(members []models.Member) error {
	for i := range members {
		if err := schema.ValidateMember(&members[i]); err != nil {
			return err
		}
	}
	return nil
}
