package services

import (
	"errors"
	"strings"

	"github.com/yukikurage/member-care-api/internal/models"
	"github.com/yukikurage/member-care-api/internal/repository"
	"github.com/yukikurage/member-care-api/internal/schema"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already registered")
)

// AuthService maps verified identity-provider subjects to application users.
// Credential checking itself happens at the identity provider; this service
// only manages the application-side user record.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// RegisterInput holds the profile for a new application user. SubjectID is
// the identity provider's subject claim and becomes the document key.
type RegisterInput struct {
	SubjectID   string
	Email       string
	DisplayName string
	Role        models.UserRole
}

// Register creates the application user for a verified identity.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	if _, err := s.userRepo.FindByID(input.SubjectID); err == nil {
		return nil, ErrUserAlreadyExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	user := &models.User{
		ID:          input.SubjectID,
		Email:       strings.TrimSpace(input.Email),
		DisplayName: input.DisplayName,
		Role:        input.Role,
	}

	schema.ApplyUserDefaults(user)
	if err := schema.ValidateUser(user); err != nil {
		return nil, err
	}

	return s.userRepo.Create(user)
}

// GetUser retrieves a user by subject ID.
func (s *AuthService) GetUser(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
