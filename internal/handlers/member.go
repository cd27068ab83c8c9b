package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

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

const defaultRecentLimit = 5

// MemberHandler coordinates member-related HTTP handlers.
type MemberHandler struct {
	members *services.MemberService
	log     *logrus.Logger
}

// NewMemberHandler creates a new MemberHandler.
func NewMemberHandler(members *services.MemberService, log *logrus.Logger) *MemberHandler {
	return &MemberHandler{members: members, log: log}
}

// ListMembers returns all members, newest first.
func (h *MemberHandler) ListMembers(c *gin.Context) {
	members, err := h.members.ListMembers()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberDTOs(members))
}

// RecentMembers returns the most recently added members.
func (h *MemberHandler) RecentMembers(c *gin.Context) {
	limit := defaultRecentLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			apierrors.BadRequest(c, "Invalid limit")
			return
		}
		limit = parsed
	}

	members, err := h.members.RecentMembers(limit)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberDTOs(members))
}

// GetMember returns a single member by ID.
func (h *MemberHandler) GetMember(c *gin.Context) {
	member, err := h.members.GetMember(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberDTO(*member))
}

// CreateMember creates a new member.
func (h *MemberHandler) CreateMember(c *gin.Context) {
	type CreateMemberRequest struct {
		Name             string               `json:"name" binding:"required"`
		Email            string               `json:"email" binding:"omitempty,email"`
		Phone            string               `json:"phone"`
		Address          string               `json:"address"`
		DateOfBirth      *timestamp.Timestamp `json:"dateOfBirth"`
		MembershipStatus string               `json:"membershipStatus" binding:"omitempty,oneof=active inactive pending"`
		JoinDate         *timestamp.Timestamp `json:"joinDate"`
		ConvertedDate    *timestamp.Timestamp `json:"convertedDate"`
		Baptized         bool                 `json:"baptized"`
		BaptismDate      *timestamp.Timestamp `json:"baptismDate"`
		InBibleStudy     bool                 `json:"inBibleStudy"`
		InSmallGroup     bool                 `json:"inSmallGroup"`
		Notes            string               `json:"notes"`
		AssignedStaff    string               `json:"assignedStaff"`
		Status           string               `json:"status" binding:"omitempty,oneof=new contacted baptized active"`
		Avatar           string               `json:"avatar"`
	}

	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, "Invalid member data", validation.ToDetails(err))
		return
	}

	member, err := h.members.CreateMember(services.CreateMemberInput{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		Address:          req.Address,
		DateOfBirth:      timePtr(req.DateOfBirth),
		MembershipStatus: models.MembershipStatus(req.MembershipStatus),
		JoinDate:         timePtr(req.JoinDate),
		ConvertedDate:    timePtr(req.ConvertedDate),
		Baptized:         req.Baptized,
		BaptismDate:      timePtr(req.BaptismDate),
		InBibleStudy:     req.InBibleStudy,
		InSmallGroup:     req.InSmallGroup,
		Notes:            req.Notes,
		AssignedStaff:    req.AssignedStaff,
		Status:           models.MemberStatus(req.Status),
		Avatar:           req.Avatar,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMemberDTO(*member))
}

// UpdateMember applies a partial patch to an existing member.
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	type UpdateMemberRequest struct {
		Name             *string              `json:"name"`
		Email            *string              `json:"email" binding:"omitempty,email"`
		Phone            *string              `json:"phone"`
		Address          *string              `json:"address"`
		DateOfBirth      *timestamp.Timestamp `json:"dateOfBirth"`
		MembershipStatus *string              `json:"membershipStatus" binding:"omitempty,oneof=active inactive pending"`
		JoinDate         *timestamp.Timestamp `json:"joinDate"`
		ConvertedDate    *timestamp.Timestamp `json:"convertedDate"`
		Baptized         *bool                `json:"baptized"`
		BaptismDate      *timestamp.Timestamp `json:"baptismDate"`
		InBibleStudy     *bool                `json:"inBibleStudy"`
		InSmallGroup     *bool                `json:"inSmallGroup"`
		Notes            *string              `json:"notes"`
		AssignedStaff    *string              `json:"assignedStaff"`
		Status           *string              `json:"status" binding:"omitempty,oneof=new contacted baptized active"`
		Avatar           *string              `json:"avatar"`
	}

	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, "Invalid member data", validation.ToDetails(err))
		return
	}

	member, err := h.members.UpdateMember(c.Param("id"), services.UpdateMemberInput{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		Address:          req.Address,
		DateOfBirth:      timePtr(req.DateOfBirth),
		MembershipStatus: (*models.MembershipStatus)(req.MembershipStatus),
		JoinDate:         timePtr(req.JoinDate),
		ConvertedDate:    timePtr(req.ConvertedDate),
		Baptized:         req.Baptized,
		BaptismDate:      timePtr(req.BaptismDate),
		InBibleStudy:     req.InBibleStudy,
		InSmallGroup:     req.InSmallGroup,
		Notes:            req.Notes,
		AssignedStaff:    req.AssignedStaff,
		Status:           (*models.MemberStatus)(req.Status),
		Avatar:           req.Avatar,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMemberDTO(*member))
}

// DeleteMember removes a member and its dependent records.
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	if err := h.members.DeleteMember(c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MemberHandler) respondError(c *gin.Context, err error) {
	var schemaErr *schema.ValidationError
	switch {
	case errors.As(err, &schemaErr):
		apierrors.ValidationFailed(c, "Invalid member data", schemaErr.Details())
	case errors.Is(err, services.ErrMemberNameEmpty):
		apierrors.ValidationFailed(c, "Invalid member data", map[string]string{"name": "cannot be empty"})
	case errors.Is(err, services.ErrMemberNotFound):
		apierrors.NotFound(c, "Member not found")
	default:
		h.log.WithError(err).Error("member operation failed")
		apierrors.InternalError(c, "")
	}
}

func timePtr(ts *timestamp.Timestamp) *time.Time {
	if ts == nil || ts.IsZero() {
		return nil
	}
	t := ts.Time
	return &t
}
