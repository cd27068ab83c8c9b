package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yukikurage/member-care-api/internal/dto"
	"github.com/yukikurage/member-care-api/internal/middleware"
	"github.com/yukikurage/member-care-api/internal/models"
	"github.com/yukikurage/member-care-api/internal/repository"
	"github.com/yukikurage/member-care-api/internal/services"
)

type authTestEnv struct {
	db          *gorm.DB
	handler     *AuthHandler
	authService *services.AuthService
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()

	db := openTestDB(t)

	authService := services.NewAuthService(repository.NewUserRepository(db))
	handler := NewAuthHandler(authService, testLogger())

	return authTestEnv{
		db:          db,
		handler:     handler,
		authService: authService,
	}
}

func TestAuthHandler_Register(t *testing.T) {
	env := setupAuthTestEnv(t)

	body, err := json.Marshal(map[string]any{
		"uid":         "subject-123",
		"email":       "staff@example.com",
		"displayName": "Staff Person",
	})
	require.NoError(t, err)

	c, w := testContext(http.MethodPost, "/api/auth/register", body)

	env.handler.Register(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "subject-123", response.ID)
	require.Equal(t, models.RoleStaff, response.Role)
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	env := setupAuthTestEnv(t)

	_, err := env.authService.Register(services.RegisterInput{
		SubjectID: "subject-123",
		Email:     "staff@example.com",
	})
	require.NoError(t, err)

	body, err := json.Marshal(map[string]any{
		"uid":   "subject-123",
		"email": "staff@example.com",
	})
	require.NoError(t, err)

	c, w := testContext(http.MethodPost, "/api/auth/register", body)

	env.handler.Register(c)

	require.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Register_RequiresEmail(t *testing.T) {
	env := setupAuthTestEnv(t)

	body, err := json.Marshal(map[string]any{"uid": "subject-123"})
	require.NoError(t, err)

	c, w := testContext(http.MethodPost, "/api/auth/register", body)

	env.handler.Register(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), `"email"`)
}

func TestAuthHandler_Register_RejectsBadRole(t *testing.T) {
	env := setupAuthTestEnv(t)

	body, err := json.Marshal(map[string]any{
		"uid":   "subject-123",
		"email": "staff@example.com",
		"role":  "superuser",
	})
	require.NoError(t, err)

	c, w := testContext(http.MethodPost, "/api/auth/register", body)

	env.handler.Register(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), `"role"`)
}

func TestAuthHandler_Me(t *testing.T) {
	env := setupAuthTestEnv(t)

	user, err := env.authService.Register(services.RegisterInput{
		SubjectID: "subject-123",
		Email:     "admin@example.com",
		Role:      models.RoleAdmin,
	})
	require.NoError(t, err)

	c, w := testContext(http.MethodGet, "/api/auth/me", nil)
	c.Set(middleware.ContextKeyUserID, user.ID)

	env.handler.Me(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "admin@example.com", response.Email)
	require.Equal(t, models.RoleAdmin, response.Role)
}

func TestAuthHandler_Me_Unauthenticated(t *testing.T) {
	env := setupAuthTestEnv(t)

	c, w := testContext(http.MethodGet, "/api/auth/me", nil)

	env.handler.Me(c)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
