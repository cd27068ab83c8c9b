package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yukikurage/member-care-api/internal/dto"
	"github.com/yukikurage/member-care-api/internal/models"
	"github.com/yukikurage/member-care-api/internal/repository"
	"github.com/yukikurage/member-care-api/internal/services"
)

type followUpTestEnv struct {
	db              *gorm.DB
	handler         *FollowUpHandler
	followUpService *services.FollowUpService
}

func setupFollowUpTestEnv(t *testing.T) followUpTestEnv {
	t.Helper()

	db := openTestDB(t)

	followUpService := services.NewFollowUpService(repository.NewFollowUpRepository(db))
	handler := NewFollowUpHandler(followUpService, testLogger())

	return followUpTestEnv{
		db:              db,
		handler:         handler,
		followUpService: followUpService,
	}
}

func TestFollowUpHandler_CreateFollowUp(t *testing.T) {
	env := setupFollowUpTestEnv(t)

	scheduled := time.Date(2026, 9, 5, 18, 30, 0, 0, time.UTC)
	body, err := json.Marshal(map[string]any{
		"memberId":      "member-1",
		"type":          "visit",
		"notes":         "Bring welcome packet",
		"scheduledDate": scheduled.Format(time.RFC3339),
	})
	require.NoError(t, err)

	c, w := testContext(http.MethodPost, "/api/followups", body)

	env.handler.CreateFollowUp(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.FollowUpDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.ID)
	require.Equal(t, models.FollowUpVisit, response.Type)
	require.True(t, response.ScheduledDate.Equal(scheduled))
	require.Nil(t, response.CompletedDate)
}

func TestFollowUpHandler_CreateFollowUp_RequiresMember(t *testing.T) {
	env := setupFollowUpTestEnv(t)

	body, err := json.Marshal(map[string]any{
		"type":          "call",
		"scheduledDate": time.Now().Format(time.RFC3339),
	})
	require.NoError(t, err)

	c, w := testContext(http.MethodPost, "/api/followups", body)

	env.handler.CreateFollowUp(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), `"memberId"`)
}

func TestFollowUpHandler_CreateFollowUp_RejectsBadType(t *testing.T) {
	env := setupFollowUpTestEnv(t)

	body, err := json.Marshal(map[string]any{
		"memberId":      "member-1",
		"type":          "carrier-pigeon",
		"scheduledDate": time.Now().Format(time.RFC3339),
	})
	require.NoError(t, err)

	c, w := testContext(http.MethodPost, "/api/followups", body)

	env.handler.CreateFollowUp(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), `"type"`)
}

func TestFollowUpHandler_ListFollowUps_OrderedByScheduledDate(t *testing.T) {
	env := setupFollowUpTestEnv(t)

	later, err := env.followUpService.CreateFollowUp(services.CreateFollowUpInput{
		MemberID:      "member-1",
		Type:          models.FollowUpEmail,
		ScheduledDate: time.Now().AddDate(0, 0, 10),
	})
	require.NoError(t, err)
	sooner, err := env.followUpService.CreateFollowUp(services.CreateFollowUpInput{
		MemberID:      "member-1",
		Type:          models.FollowUpCall,
		ScheduledDate: time.Now().AddDate(0, 0, 1),
	})
	require.NoError(t, err)

	c, w := testContext(http.MethodGet, "/api/followups", nil)

	env.handler.ListFollowUps(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response []dto.FollowUpDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 2)
	require.Equal(t, sooner.ID, response[0].ID)
	require.Equal(t, later.ID, response[1].ID)
}

func TestFollowUpHandler_FollowUpsByMember(t *testing.T) {
	env := setupFollowUpTestEnv(t)

	mine, err := env.followUpService.CreateFollowUp(services.CreateFollowUpInput{
		MemberID:      "member-1",
		Type:          models.FollowUpCall,
		ScheduledDate: time.Now(),
	})
	require.NoError(t, err)
	_, err = env.followUpService.CreateFollowUp(services.CreateFollowUpInput{
		MemberID:      "member-2",
		Type:          models.FollowUpCall,
		ScheduledDate: time.Now(),
	})
	require.NoError(t, err)

	c, w := testContext(http.MethodGet, "/api/followups/member/member-1", nil)
	c.Params = gin.Params{{Key: "memberId", Value: "member-1"}}

	env.handler.FollowUpsByMember(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response []dto.FollowUpDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 1)
	require.Equal(t, mine.ID, response[0].ID)
}

func TestFollowUpHandler_CompleteFollowUp(t *testing.T) {
	env := setupFollowUpTestEnv(t)

	followUp, err := env.followUpService.CreateFollowUp(services.CreateFollowUpInput{
		MemberID:      "member-1",
		Type:          models.FollowUpText,
		ScheduledDate: time.Now(),
	})
	require.NoError(t, err)

	c, w := testContext(http.MethodPost, "/api/followups/"+followUp.ID+"/complete", nil)
	c.Params = gin.Params{{Key: "id", Value: followUp.ID}}

	env.handler.CompleteFollowUp(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.FollowUpDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotNil(t, response.CompletedDate)
}

func TestFollowUpHandler_UpdateFollowUp_NotFound(t *testing.T) {
	env := setupFollowUpTestEnv(t)

	body, err := json.Marshal(map[string]any{"notes": "updated"})
	require.NoError(t, err)

	c, w := testContext(http.MethodPut, "/api/followups/missing", body)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	env.handler.UpdateFollowUp(c)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestFollowUpHandler_DeleteFollowUp_Idempotent(t *testing.T) {
	env := setupFollowUpTestEnv(t)

	followUp, err := env.followUpService.CreateFollowUp(services.CreateFollowUpInput{
		MemberID:      "member-1",
		Type:          models.FollowUpCall,
		ScheduledDate: time.Now(),
	})
	require.NoError(t, err)

	c, w := testContext(http.MethodDelete, "/api/followups/"+followUp.ID, nil)
	c.Params = gin.Params{{Key: "id", Value: followUp.ID}}
	env.handler.DeleteFollowUp(c)
	c.Writer.WriteHeaderNow()
	require.Equal(t, http.StatusNoContent, w.Code)

	c, w = testContext(http.MethodDelete, "/api/followups/"+followUp.ID, nil)
	c.Params = gin.Params{{Key: "id", Value: followUp.ID}}
	env.handler.DeleteFollowUp(c)
	c.Writer.WriteHeaderNow()
	require.Equal(t, http.StatusNoContent, w.Code)
}
