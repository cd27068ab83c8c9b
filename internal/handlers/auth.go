package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yukikurage/member-care-api/internal/dto"
	apierrors "github.com/yukikurage/member-care-api/internal/errors"
	"github.com/yukikurage/member-care-api/internal/middleware"
	"github.com/yukikurage/member-care-api/internal/models"
	"github.com/yukikurage/member-care-api/internal/schema"
	"github.com/yukikurage/member-care-api/internal/services"
	"github.com/yukikurage/member-care-api/internal/validation"
)

// AuthHandler manages application user records for verified identities.
type AuthHandler struct {
	auth *services.AuthService
	log  *logrus.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *services.AuthService, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

// Register creates the application user profile for an identity-provider
// subject. The uid in the body is the provider's subject claim.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		UID         string `json:"uid" binding:"required"`
		Email       string `json:"email" binding:"required,email"`
		DisplayName string `json:"displayName"`
		Role        string `json:"role" binding:"omitempty,oneof=admin staff volunteer"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, "Invalid registration data", validation.ToDetails(err))
		return
	}

	user, err := h.auth.Register(services.RegisterInput{
		SubjectID:   req.UID,
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Role:        models.UserRole(req.Role),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// Me returns the profile of the authenticated user.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	user, err := h.auth.GetUser(userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

func (h *AuthHandler) respondError(c *gin.Context, err error) {
	var schemaErr *schema.ValidationError
	switch {
	case errors.As(err, &schemaErr):
		apierrors.ValidationFailed(c, "Invalid registration data", schemaErr.Details())
	case errors.Is(err, services.ErrUserAlreadyExists):
		apierrors.Conflict(c, "User already registered")
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "User not found")
	default:
		h.log.WithError(err).Error("auth operation failed")
		apierrors.InternalError(c, "")
	}
}
