package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"crowdfund/internal/model"
	"crowdfund/pkg/config"
	"crowdfund/pkg/jwt"
	"crowdfund/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, model.AutoMigrate(db))

	return &App{
		cfg:        &config.Config{CORSOrigins: "http://localhost:5173"},
		log:        logger.NewWithWriter(io.Discard, io.Discard),
		db:         db,
		jwtService: jwt.NewService("test-secret"),
	}
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouter_Health(t *testing.T) {
	router := newTestApp(t).Router()

	w := doJSON(t, router, "GET", "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRouter_SwaggerDoc(t *testing.T) {
	router := newTestApp(t).Router()

	w := doJSON(t, router, "GET", "/swagger/doc.json", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/campaigns/{id}")
}

func TestRouter_CreatorFlow(t *testing.T) {
	router := newTestApp(t).Router()

	w := doJSON(t, router, "POST", "/api/v1/auth/register", "", map[string]string{
		"username": "ada", "email": "ada@example.com", "password": "s3cret-pass", "role": "creator",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, router, "POST", "/api/v1/auth/login", "", map[string]string{
		"identifier": "ada@example.com", "password": "s3cret-pass",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var auth struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &auth))
	require.NotEmpty(t, auth.Token)

	w = doJSON(t, router, "POST", "/api/v1/campaigns", auth.Token, map[string]interface{}{
		"title": "Reading Room", "category": "Community", "goal_amount": 1200,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var campaign struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &campaign))
	assert.Equal(t, "pending", campaign.Status)

	w = doJSON(t, router, "GET", "/api/v1/campaigns/search?title=reading", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Reading Room")

	w = doJSON(t, router, "GET", "/api/v1/payments", auth.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	statusPath := fmt.Sprintf("/api/v1/campaigns/%d/status", campaign.ID)
	w = doJSON(t, router, "PUT", statusPath, auth.Token, map[string]string{"status": "approved"})
	assert.Equal(t, http.StatusForbidden, w.Code, "creators cannot approve their own campaign")

	w = doJSON(t, router, "POST", "/api/v1/campaigns", auth.Token, map[string]interface{}{
		"title": "Shortcut", "category": "Arts", "goal_amount": 10, "status": "approved",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRouter_ModerationIsAdminOnly(t *testing.T) {
	router := newTestApp(t).Router()

	w := doJSON(t, router, "POST", "/api/v1/auth/register", "", map[string]string{
		"username": "mallory", "email": "mallory@example.com", "password": "s3cret-pass", "role": "admin",
	})
	assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "token")

	register := func(username, role string) string {
		w := doJSON(t, router, "POST", "/api/v1/auth/register", "", map[string]string{
			"username": username, "email": username + "@example.com", "password": "s3cret-pass", "role": role,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var auth struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &auth))
		return auth.Token
	}
	creatorToken := register("ada", "creator")
	donorToken := register("dan", "donor")

	w = doJSON(t, router, "POST", "/api/v1/campaigns", creatorToken, map[string]interface{}{
		"title": "Reading Room", "category": "Community", "goal_amount": 1200,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var campaign struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &campaign))

	statusPath := fmt.Sprintf("/api/v1/campaigns/%d/status", campaign.ID)
	for _, status := range []string{"approved", "rejected", "completed"} {
		w = doJSON(t, router, "PUT", statusPath, donorToken, map[string]string{"status": status})
		assert.Equal(t, http.StatusForbidden, w.Code, status)
	}

	w = doJSON(t, router, "GET", fmt.Sprintf("/api/v1/campaigns/%d", campaign.ID), "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"pending"`)
}

func TestSplitOrigins(t *testing.T) {
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, splitOrigins(" https://a.example, ,https://b.example "))
	assert.Equal(t, []string{"http://localhost:5173"}, splitOrigins(""))
}
