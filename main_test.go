package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ecolearn/internal/config"
	"ecolearn/internal/database"
)

// MockPublisher is a mock implementation of the event publisher.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishEvent(eventType string, payload interface{}) error {
	args := m.Called(eventType, payload)
	return args.Error(0)
}

func testConfig() *config.Config {
	return &config.Config{
		AppPort:        ":8081",
		DatabaseDriver: "sqlite",
		JWTSecret:      "test_jwt_secret",
		TokenTTL:       time.Hour,
		AllowedOrigins: "*",
		DefaultSchool:  "Unassigned",
	}
}

func getJSON(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return out
}

func TestHealthCheck(t *testing.T) {
	app := NewApp(testConfig(), nil, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := getJSON(t, resp)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "missing", body["store"])
}

func TestMissingStoreConfiguration(t *testing.T) {
	app := NewApp(testConfig(), nil, nil)

	for _, path := range []string{"/api/posts", "/api/CalendarHandler", "/api/login"} {
		method := http.MethodGet
		if path == "/api/login" {
			method = http.MethodPost
		}
		resp, err := app.Test(httptest.NewRequest(method, path, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode, path)
		assert.Equal(t, "database configuration missing", getJSON(t, resp)["message"], path)
	}
}

func TestConfiguredStore(t *testing.T) {
	cfg := testConfig()
	cfg.DatabaseDSN = "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	cfg.DatabaseName = "ecolearn"
	db, err := database.Open(cfg)
	require.NoError(t, err)

	publisher := new(MockPublisher)
	publisher.On("PublishEvent", "calendar.event.created", mock.Anything).Return(nil)
	app := NewApp(cfg, db, publisher)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/posts", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/CalendarHandler",
		strings.NewReader(`{"title":"Cleanup Day","dateString":"2025-03-01","time":"09:30"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	publisher.AssertExpectations(t)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/posts/feed", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, "configured", getJSON(t, resp)["store"])
}
