package repository

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/yukikurage/member-care-api/internal/models"
)

func newTestUser(id string) *models.User {
	return &models.User{
		ID:    id,
		Email: id + "@example.com",
		Role:  models.RoleStaff,
	}
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))

	created, err := repo.Create(newTestUser("subject-123"))
	require.NoError(t, err)
	require.Equal(t, "subject-123", created.ID)
	require.Equal(t, models.RoleStaff, created.Role)

	found, err := repo.FindByID("subject-123")
	require.NoError(t, err)
	require.Equal(t, created.Email, found.Email)
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))

	_, err := repo.FindByID("missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_Update(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))

	_, err := repo.Create(newTestUser("subject-123"))
	require.NoError(t, err)

	updated, err := repo.Update("subject-123", map[string]any{"role": models.RoleAdmin})
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, updated.Role)
}

func TestUserRepository_Update_MissingIsNotFound(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))

	_, err := repo.Update("missing", map[string]any{"role": models.RoleAdmin})
	require.ErrorIs(t, err, ErrNotFound)
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	var db *sql.DB
	var mock sqlmock.Sqlmock
	var err error

	db, mock, err = sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       db,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return gormDB, mock
}

func TestUserRepository_FindByID_WrapsStorageErrors(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	cause := errors.New("connection reset")
	mock.ExpectQuery("SELECT").WillReturnError(cause)

	_, err := repo.FindByID("subject-123")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "find user")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update_WrapsStorageErrors(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	cause := errors.New("connection reset")
	mock.ExpectExec("UPDATE").WillReturnError(cause)

	_, err := repo.Update("subject-123", map[string]any{"role": models.RoleAdmin})
	require.Error(t, err)
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "update user")
	require.NoError(t, mock.ExpectationsWereMet())
}
