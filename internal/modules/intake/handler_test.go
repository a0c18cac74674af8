package intake

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"memberdesk/internal/database"
	"memberdesk/internal/domain"
	"memberdesk/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB, *mockNotifier) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Submission{}, &domain.Member{}))

	notifs := &mockNotifier{}
	service := NewService(repository.NewSubmissionRepository(db), repository.NewMemberRepository(db), notifs)
	handler := NewHandler(service)

	router := gin.New()
	v1 := router.Group("/api/v1")
	handler.RegisterRoutes(v1)
	return router, db, notifs
}

func postSubmission(router *gin.Engine, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest("POST", "/api/v1/submit-member", &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestSubmitEndpoint_Success(t *testing.T) {
	router, db, notifs := setupRouter(t)

	resp := postSubmission(router, validRequest())
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "Submission received successfully", resp.Body.String())

	var count int64
	require.NoError(t, db.Model(&domain.Submission{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
	assert.Len(t, notifs.pending, 1)
}

func TestSubmitEndpoint_MissingField(t *testing.T) {
	router, db, _ := setupRouter(t)

	resp := postSubmission(router, gin.H{
		"firstName": "Anna",
		"lastName":  "Virtanen",
		"email":     "a@x.fi",
		"birthDate": "2000-01-01",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "VALIDATION_ERROR")

	var count int64
	require.NoError(t, db.Model(&domain.Submission{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestSubmitEndpoint_DuplicatePending(t *testing.T) {
	router, db, _ := setupRouter(t)

	require.Equal(t, http.StatusOK, postSubmission(router, validRequest()).Code)

	resp := postSubmission(router, validRequest())
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "DUPLICATE_PENDING")

	var count int64
	require.NoError(t, db.Model(&domain.Submission{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSubmitEndpoint_DuplicateMember(t *testing.T) {
	router, db, _ := setupRouter(t)

	member := domain.Member{
		FirstName: "Anna", LastName: "Virtanen", City: "Helsinki",
		Email: "a@x.fi", BirthDate: "2000-01-01",
	}
	require.NoError(t, db.Create(&member).Error)

	resp := postSubmission(router, validRequest())
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "DUPLICATE_MEMBER")
}
