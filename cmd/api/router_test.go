package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"questions-backend/internal/config"
	"questions-backend/internal/shared/middleware"
	"questions-backend/pkg/container"
	"questions-backend/pkg/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	cfg := &config.Config{
		App: config.AppConfig{
			Environment:   "test",
			Version:       "test",
			StorageDriver: config.StorageDriverMemory,
		},
		Redis:   config.RedisConfig{CacheTTL: time.Minute},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}

	c, err := container.NewContainerFromConfig(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(c.Cleanup)

	return SetupRouter(c)
}

func TestRouter_Health(t *testing.T) {
	r := setupTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Status   string            `json:"status"`
		Services map[string]string `json:"services"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "memory", body.Services["database"])
	assert.Equal(t, "disabled", body.Services["redis"])
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_QuestionLifecycle(t *testing.T) {
	r := setupTestRouter(t)

	send := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusCreated, send(http.MethodPost, "/questions", `{"title":"Foo","description":"Bar","category":"software"}`).Code)
	assert.Equal(t, http.StatusOK, send(http.MethodGet, "/questions?title=foo&category=software", "").Code)
	assert.Equal(t, http.StatusOK, send(http.MethodGet, "/questions/1", "").Code)
	assert.Equal(t, http.StatusOK, send(http.MethodPut, "/questions/1", `{"title":"A","description":"B","category":"C"}`).Code)
	assert.Equal(t, http.StatusOK, send(http.MethodDelete, "/questions/1", "").Code)
	assert.Equal(t, http.StatusNotFound, send(http.MethodGet, "/questions/1", "").Code)
}

func TestRouter_Metrics(t *testing.T) {
	r := setupTestRouter(t)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/questions", nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{method="GET",route="/questions",status="200"}`)
}

func TestRouter_PanicIsRecoveredAndCounted(t *testing.T) {
	r := setupTestRouter(t)
	r.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/boom", "500")
	before := testutil.ToFloat64(counter)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
