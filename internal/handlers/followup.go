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

// FollowUpHandler coordinates follow-up HTTP handlers.
type FollowUpHandler struct {
	followUps *services.FollowUpService
	log       *logrus.Logger
}

// NewFollowUpHandler creates a new FollowUpHandler.
func NewFollowUpHandler(followUps *services.FollowUpService, log *logrus.Logger) *FollowUpHandler {
	return &FollowUpHandler{followUps: followUps, log: log}
}

// ListFollowUps returns all follow-ups ordered by scheduled date.
func (h *FollowUpHandler) ListFollowUps(c *gin.Context) {
	followUps, err := h.followUps.ListFollowUps()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToFollowUpDTOs(followUps))
}

// FollowUpsByMember returns a member's follow-ups.
func (h *FollowUpHandler) FollowUpsByMember(c *gin.Context) {
	followUps, err := h.followUps.FollowUpsByMember(c.Param("memberId"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToFollowUpDTOs(followUps))
}

// GetFollowUp returns a single follow-up by ID.
func (h *FollowUpHandler) GetFollowUp(c *gin.Context) {
	followUp, err := h.followUps.GetFollowUp(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToFollowUpDTO(*followUp))
}

// CreateFollowUp schedules a new follow-up.
func (h *FollowUpHandler) CreateFollowUp(c *gin.Context) {
	type CreateFollowUpRequest struct {
		MemberID      string               `json:"memberId" binding:"required"`
		Type          string               `json:"type" binding:"required,oneof=call visit email text"`
		Notes         string               `json:"notes"`
		ScheduledDate *timestamp.Timestamp `json:"scheduledDate" binding:"required"`
		NextFollowUp  *timestamp.Timestamp `json:"nextFollowUp"`
	}

	var req CreateFollowUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, "Invalid follow-up data", validation.ToDetails(err))
		return
	}

	followUp, err := h.followUps.CreateFollowUp(services.CreateFollowUpInput{
		MemberID:      req.MemberID,
		Type:          models.FollowUpType(req.Type),
		Notes:         req.Notes,
		ScheduledDate: req.ScheduledDate.Time,
		NextFollowUp:  timePtr(req.NextFollowUp),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToFollowUpDTO(*followUp))
}

// UpdateFollowUp applies a partial patch to an existing follow-up.
func (h *FollowUpHandler) UpdateFollowUp(c *gin.Context) {
	type UpdateFollowUpRequest struct {
		MemberID      *string              `json:"memberId"`
		Type          *string              `json:"type" binding:"omitempty,oneof=call visit email text"`
		Notes         *string              `json:"notes"`
		ScheduledDate *timestamp.Timestamp `json:"scheduledDate"`
		CompletedDate *timestamp.Timestamp `json:"completedDate"`
		NextFollowUp  *timestamp.Timestamp `json:"nextFollowUp"`
	}

	var req UpdateFollowUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, "Invalid follow-up data", validation.ToDetails(err))
		return
	}

	followUp, err := h.followUps.UpdateFollowUp(c.Param("id"), services.UpdateFollowUpInput{
		MemberID:      req.MemberID,
		Type:          (*models.FollowUpType)(req.Type),
		Notes:         req.Notes,
		ScheduledDate: timePtr(req.ScheduledDate),
		CompletedDate: timePtr(req.CompletedDate),
		NextFollowUp:  timePtr(req.NextFollowUp),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFollowUpDTO(*followUp))
}

// CompleteFollowUp stamps the completion time on a follow-up.
func (h *FollowUpHandler) CompleteFollowUp(c *gin.Context) {
	followUp, err := h.followUps.CompleteFollowUp(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToFollowUpDTO(*followUp))
}

// DeleteFollowUp removes a follow-up.
func (h *FollowUpHandler) DeleteFollowUp(c *gin.Context) {
	if err := h.followUps.DeleteFollowUp(c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FollowUpHandler) respondError(c *gin.Context, err error) {
	var schemaErr *schema.ValidationError
	switch {
	case errors.As(err, &schemaErr):
		apierrors.ValidationFailed(c, "Invalid follow-up data", schemaErr.Details())
	case errors.Is(err, services.ErrFollowUpNotFound):
		apierrors.NotFound(c, "Follow-up not found")
	default:
		h.log.WithError(err).Error("follow-up operation failed")
		apierrors.InternalError(c, "")
	}
}
