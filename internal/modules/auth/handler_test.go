package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwtsvc "memberdesk/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupLoginRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	service := NewService("hallitus", string(hash), jwtsvc.New("test-secret-123", 24*time.Hour), 24*time.Hour)
	handler := NewHandler(service)

	router := gin.New()
	v1 := router.Group("/api/v1")
	handler.RegisterRoutes(v1)
	return router
}

func postLogin(router *gin.Engine, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest("POST", "/api/v1/login", &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestLoginEndpoint_MissingFields(t *testing.T) {
	router := setupLoginRouter(t)

	resp := postLogin(router, gin.H{"username": "hallitus"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "VALIDATION_ERROR")
}

func TestLoginEndpoint_InvalidCredentials(t *testing.T) {
	router := setupLoginRouter(t)

	resp := postLogin(router, gin.H{"username": "hallitus", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "INVALID_CREDENTIALS")
}

func TestLoginEndpoint_Success(t *testing.T) {
	router := setupLoginRouter(t)

	resp := postLogin(router, gin.H{"username": "hallitus", "password": "correct-horse"})
	require.Equal(t, http.StatusOK, resp.Code)

	var body LoginResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "hallitus", body.Username)
	assert.Equal(t, "24h", body.ExpiresIn)

	claims, err := jwtsvc.New("test-secret-123", 24*time.Hour).ValidateToken(body.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}
