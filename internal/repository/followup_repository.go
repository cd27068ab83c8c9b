package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/yukikurage/member-care-api/internal/models"
	"github.com/yukikurage/member-care-api/internal/schema"
)

// GormFollowUpRepository is a GORM implementation of FollowUpRepository.
type GormFollowUpRepository struct {
	db *gorm.DB
}

// NewFollowUpRepository creates a new FollowUpRepository.
func NewFollowUpRepository(db *gorm.DB) FollowUpRepository {
	return &GormFollowUpRepository{db: db}
}

// List returns all follow-ups ordered by scheduled date ascending.
func (r *GormFollowUpRepository) List() ([]models.FollowUp, error) {
	return r.find(r.db, "list follow-ups")
}

// ByMember returns a member's follow-ups ordered by scheduled date ascending.
func (r *GormFollowUpRepository) ByMember(memberID string) ([]models.FollowUp, error) {
	return r.find(r.db.Where("member_id = ?", memberID), "list member follow-ups")
}

func (r *GormFollowUpRepository) find(query *gorm.DB, op string) ([]models.FollowUp, error) {
	var followUps []models.FollowUp
	if err := query.Order("scheduled_date ASC").Find(&followUps).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for i := range followUps {
		if err := schema.ValidateFollowUp(&followUps[i]); err != nil {
			return nil, err
		}
	}
	return followUps, nil
}

// FindByID finds a follow-up by key.
func (r *GormFollowUpRepository) FindByID(id string) (*models.FollowUp, error) {
	var followUp models.FollowUp
	if err := r.db.First(&followUp, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find follow-up: %w", err)
	}
	if err := schema.ValidateFollowUp(&followUp); err != nil {
		return nil, err
	}
	return &followUp, nil
}

// Create persists a new follow-up and returns the record as read back.
func (r *GormFollowUpRepository) Create(followUp *models.FollowUp) (*models.FollowUp, error) {
	if err := r.db.Create(followUp).Error; err != nil {
		return nil, fmt.Errorf("create follow-up: %w", err)
	}
	return r.FindByID(followUp.ID)
}

// Update applies a partial patch, failing with ErrNotFound when absent.
func (r *GormFollowUpRepository) Update(id string, patch map[string]any) (*models.FollowUp, error) {
	patch["updated_at"] = time.Now()
	res := r.db.Model(&models.FollowUp{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		return nil, fmt.Errorf("update follow-up: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(id)
}

// Delete removes a follow-up. Deleting a missing key is a no-op.
func (r *GormFollowUpRepository) Delete(id string) error {
	if err := r.db.Delete(&models.FollowUp{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete follow-up: %w", err)
	}
	return nil
}
