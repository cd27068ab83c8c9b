package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yukikurage/member-care-api/internal/models"
	"github.com/yukikurage/member-care-api/internal/schema"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Member{},
		&models.Task{},
		&models.FollowUp{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func newTestMember(name string) *models.Member {
	return &models.Member{
		Name:             name,
		MembershipStatus: models.MembershipActive,
		Status:           models.MemberStatusNew,
		ConvertedDate:    time.Now(),
	}
}

func TestMemberRepository_CreateAssignsKey(t *testing.T) {
	repo := NewMemberRepository(openTestDB(t))

	created, err := repo.Create(newTestMember("Grace"))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())
	require.Equal(t, "Grace", created.Name)
}

func TestMemberRepository_FindByID_NotFound(t *testing.T) {
	repo := NewMemberRepository(openTestDB(t))

	_, err := repo.FindByID("missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemberRepository_List_NewestFirst(t *testing.T) {
	db := openTestDB(t)
	repo := NewMemberRepository(db)

	older := newTestMember("Older")
	require.NoError(t, db.Create(older).Error)
	require.NoError(t, db.Model(older).Update("created_at", time.Now().Add(-time.Hour)).Error)

	newer, err := repo.Create(newTestMember("Newer"))
	require.NoError(t, err)

	members, err := repo.List()
	require.NoError(t, err)
	require.Len(t, members, 2)
	require.Equal(t, newer.ID, members[0].ID)
	require.Equal(t, older.ID, members[1].ID)
}

func TestMemberRepository_Recent_Limits(t *testing.T) {
	repo := NewMemberRepository(openTestDB(t))

	for _, name := range []string{"One", "Two", "Three"} {
		_, err := repo.Create(newTestMember(name))
		require.NoError(t, err)
	}

	members, err := repo.Recent(2)
	require.NoError(t, err)
	require.Len(t, members, 2)
}

func TestMemberRepository_Update_PatchesOnlyGivenColumns(t *testing.T) {
	repo := NewMemberRepository(openTestDB(t))

	member := newTestMember("Ruth")
	member.Email = "ruth@example.com"
	created, err := repo.Create(member)
	require.NoError(t, err)

	updated, err := repo.Update(created.ID, map[string]any{
		"status": models.MemberStatusContacted,
	})
	require.NoError(t, err)
	require.Equal(t, models.MemberStatusContacted, updated.Status)
	require.Equal(t, "ruth@example.com", updated.Email)
	require.Equal(t, "Ruth", updated.Name)
}

func TestMemberRepository_Update_MissingIsNotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewMemberRepository(db)

	_, err := repo.Update("missing", map[string]any{"name": "Ghost"})
	require.ErrorIs(t, err, ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Member{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestMemberRepository_Delete_CascadesDependents(t *testing.T) {
	db := openTestDB(t)
	repo := NewMemberRepository(db)

	created, err := repo.Create(newTestMember("Grace"))
	require.NoError(t, err)

	task := &models.Task{
		Title:    "Visit",
		MemberID: created.ID,
		Priority: models.TaskPriorityMedium,
		Status:   models.TaskStatusPending,
		DueDate:  time.Now(),
	}
	require.NoError(t, db.Create(task).Error)
	followUp := &models.FollowUp{
		MemberID:      created.ID,
		Type:          models.FollowUpCall,
		ScheduledDate: time.Now(),
	}
	require.NoError(t, db.Create(followUp).Error)

	require.NoError(t, repo.Delete(created.ID))

	_, err = repo.FindByID(created.ID)
	require.ErrorIs(t, err, ErrNotFound)

	var taskCount, followUpCount int64
	require.NoError(t, db.Model(&models.Task{}).Count(&taskCount).Error)
	require.NoError(t, db.Model(&models.FollowUp{}).Count(&followUpCount).Error)
	require.Zero(t, taskCount)
	require.Zero(t, followUpCount)
}

func TestMemberRepository_Delete_MissingIsNoOp(t *testing.T) {
	repo := NewMemberRepository(openTestDB(t))

	require.NoError(t, repo.Delete("missing"))
}

func TestMemberRepository_ReadBackValidation(t *testing.T) {
	db := openTestDB(t)
	repo := NewMemberRepository(db)

	// A corrupt row written around the repository never escapes a read
	require.NoError(t, db.Exec(
		"INSERT INTO members (id, name, membership_status, status, converted_date, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		"corrupt", "Corrupt", "bogus", "new", time.Now(), time.Now(), time.Now(),
	).Error)

	_, err := repo.FindByID("corrupt")
	require.Error(t, err)

	var vErr *schema.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Contains(t, vErr.Details(), "membershipStatus")

	_, err = repo.List()
	require.Error(t, err)
}
