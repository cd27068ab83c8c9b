package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	apierrors "github.com/yukikurage/member-care-api/internal/errors"
	"github.com/yukikurage/member-care-api/internal/models"
	"github.com/yukikurage/member-care-api/internal/repository"
)

// Context keys for the verified identity.
const (
	ContextKeyUserID    = "user_id"
	ContextKeyUserEmail = "user_email"
	ContextKeyUserRole  = "user_role"
)

// IdentityClaims are the claims the identity provider puts in its tokens.
type IdentityClaims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// TokenVerifier validates bearer tokens issued by the identity provider and
// resolves the application role for the subject.
type TokenVerifier struct {
	secret   []byte
	userRepo repository.UserRepository
}

// NewTokenVerifier creates a TokenVerifier using the shared signing secret.
func NewTokenVerifier(secret string, userRepo repository.UserRepository) *TokenVerifier {
	return &TokenVerifier{secret: []byte(secret), userRepo: userRepo}
}

// Verify parses and validates a raw bearer token.
func (v *TokenVerifier) Verify(tokenStr string) (*IdentityClaims, error) {
	claims := &IdentityClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Subject == "" {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// RequireAuth verifies the Authorization bearer token and attaches the
// identity to the request context. The role comes from the application user
// record when one exists; identities without a record default to staff.
func RequireAuth(verifier *TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			apierrors.Unauthorized(c, "No token provided")
			c.Abort()
			return
		}

		claims, err := verifier.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			apierrors.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		role := models.RoleStaff
		if user, err := verifier.userRepo.FindByID(claims.Subject); err == nil {
			role = user.Role
		}

		c.Set(ContextKeyUserID, claims.Subject)
		c.Set(ContextKeyUserEmail, claims.Email)
		c.Set(ContextKeyUserRole, role)
		c.Next()
	}
}

// GetUserID retrieves the verified subject ID from context.
func GetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get(ContextKeyUserID)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// GetUserEmail retrieves the verified email claim from context.
func GetUserEmail(c *gin.Context) string {
	return c.GetString(ContextKeyUserEmail)
}

// GetUserRole retrieves the resolved application role from context.
func GetUserRole(c *gin.Context) models.UserRole {
	if v, exists := c.Get(ContextKeyUserRole); exists {
		if role, ok := v.(models.UserRole); ok {
			return role
		}
	}
	return models.RoleStaff
}
