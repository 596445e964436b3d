package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"property-backend/models"
	"property-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newFormRouter(t *testing.T) (*gin.Engine, *services.SubmissionService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.FormSubmission{}))

	subs := services.NewSubmissionService(db)
	fc := NewFormController(subs)

	r := gin.New()
	r.POST("/api/forms/applications", fc.SubmitApplication)
	r.POST("/api/forms/move-outs", fc.SubmitMoveOut)
	return r, subs
}

func postJSON(t *testing.T, r *gin.Engine, path string, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitApplicationEndpoint(t *testing.T) {
	r, subs := newFormRouter(t)

	w := postJSON(t, r, "/api/forms/applications", map[string]interface{}{
		"fullName":   "John Smith",
		"email":      "john@example.com",
		"roomNumber": "101",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			SubmissionID string `json:"submissionId"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Data.SubmissionID)

	sub, err := subs.GetByUUID(resp.Data.SubmissionID)
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionKindApplication, sub.Kind)
	assert.Equal(t, "John Smith", sub.SubmitterName)
}

func TestSubmitApplicationRequiresName(t *testing.T) {
	r, _ := newFormRouter(t)

	w := postJSON(t, r, "/api/forms/applications", map[string]interface{}{
		"email": "anon@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitMoveOutUsesTenantNameKey(t *testing.T) {
	r, subs := newFormRouter(t)

	w := postJSON(t, r, "/api/forms/move-outs", map[string]interface{}{
		"tenantName": "Mia Wong",
		"email":      "mia@example.com",
		"roomNumber": "201",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	pending, err := subs.ListPending(models.SubmissionKindMoveOut)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Mia Wong", pending[0].SubmitterName)
}
