package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yukikurage/member-care-api/internal/models"
	"github.com/yukikurage/member-care-api/internal/repository"
)

const testSecret = "test-secret"

func setupVerifier(t *testing.T) (*TokenVerifier, repository.UserRepository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	userRepo := repository.NewUserRepository(db)
	return NewTokenVerifier(testSecret, userRepo), userRepo
}

func signToken(t *testing.T, secret string, claims IdentityClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func authRequest(token string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/members", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	verifier, _ := setupVerifier(t)

	c, w := authRequest("")
	RequireAuth(verifier)(c)

	require.True(t, c.IsAborted())
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "No token provided")
}

func TestRequireAuth_InvalidSignature(t *testing.T) {
	verifier, _ := setupVerifier(t)

	token := signToken(t, "wrong-secret", IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "subject-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	c, w := authRequest(token)
	RequireAuth(verifier)(c)

	require.True(t, c.IsAborted())
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Invalid token")
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	verifier, _ := setupVerifier(t)

	token := signToken(t, testSecret, IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "subject-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	c, w := authRequest(token)
	RequireAuth(verifier)(c)

	require.True(t, c.IsAborted())
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_MissingSubject(t *testing.T) {
	verifier, _ := setupVerifier(t)

	token := signToken(t, testSecret, IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	c, w := authRequest(token)
	RequireAuth(verifier)(c)

	require.True(t, c.IsAborted())
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_AttachesIdentity(t *testing.T) {
	verifier, userRepo := setupVerifier(t)

	_, err := userRepo.Create(&models.User{
		ID:    "subject-123",
		Email: "admin@example.com",
		Role:  models.RoleAdmin,
	})
	require.NoError(t, err)

	token := signToken(t, testSecret, IdentityClaims{
		Email: "admin@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "subject-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	c, w := authRequest(token)
	RequireAuth(verifier)(c)

	require.False(t, c.IsAborted())
	require.Equal(t, http.StatusOK, w.Code)

	userID, ok := GetUserID(c)
	require.True(t, ok)
	require.Equal(t, "subject-123", userID)
	require.Equal(t, "admin@example.com", GetUserEmail(c))
	require.Equal(t, models.RoleAdmin, GetUserRole(c))
}

func TestRequireAuth_UnknownSubjectDefaultsToStaff(t *testing.T) {
	verifier, _ := setupVerifier(t)

	token := signToken(t, testSecret, IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "never-registered",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	c, _ := authRequest(token)
	RequireAuth(verifier)(c)

	require.False(t, c.IsAborted())
	require.Equal(t, models.RoleStaff, GetUserRole(c))
}
