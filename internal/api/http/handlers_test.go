package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/urlargs/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/urlargs/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/urlargs/internal/providers/location"
	"github.com/GriffinCanCode/urlargs/internal/service"
	"github.com/GriffinCanCode/urlargs/internal/shared/types"
)

type testEnv struct {
	router   *gin.Engine
	metrics  *monitoring.Metrics
	provider *location.Provider
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	metrics := monitoring.NewMetrics()
	provider := location.NewProvider(location.Config{MaxSessions: 8, Recorder: metrics})
	registry := service.NewRegistry()
	require.NoError(t, registry.Register(provider))

	tracer := tracing.New("test", nil)
	t.Cleanup(tracer.Close)

	h := NewHandlers(registry, provider.Sessions(), NewHandlerMetrics(metrics), tracer, nil)

	router := gin.New()
	router.GET("/", h.Root)
	router.GET("/health", h.Health)
	router.GET("/echo/*path", h.Echo)
	router.GET("/parse", h.Parse)
	router.GET("/services", h.ListServices)
	router.POST("/services/execute", h.ExecuteService)

	return &testEnv{router: router, metrics: metrics, provider: provider}
}

func (e *testEnv) do(t *testing.T, method, target string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var out map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w, out
}

func TestRoot(t *testing.T) {
	env := setupTestEnv(t)

	w, body := env.do(t, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "urlargs", body["service"])
	assert.Equal(t, "0.1.0", body["version"])
}

func TestHealth(t *testing.T) {
	env := setupTestEnv(t)

	w, body := env.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, float64(0), body["sessions"])
	assert.Equal(t, float64(65536), body["version_packed"])
	assert.Contains(t, body, "metrics")
}

func TestEcho(t *testing.T) {
	env := setupTestEnv(t)

	w, body := env.do(t, http.MethodGet, "http://example.com/echo/index.html?a&bb=1&c=spa%20ce", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "http://example.com/echo/index.html", body["path"])
	assert.Equal(t, []interface{}{"http://example.com/echo/index.html", "-a", "--bb=1", "-c=spa ce"}, body["tokens"])

	parsed := body["parsed"].([]interface{})
	require.Len(t, parsed, 3)
	first := parsed[0].(map[string]interface{})
	assert.Equal(t, "a", first["name"])
	assert.Equal(t, false, first["has_value"])
	last := parsed[2].(map[string]interface{})
	assert.Equal(t, "c", last["name"])
	assert.Equal(t, "spa ce", last["value"])
}

func TestEchoNoQuery(t *testing.T) {
	env := setupTestEnv(t)

	_, body := env.do(t, http.MethodGet, "http://example.com/echo/", nil)
	assert.Equal(t, []interface{}{"http://example.com/echo/"}, body["tokens"])
	assert.Empty(t, body["parsed"])
}

func TestParse(t *testing.T) {
	env := setupTestEnv(t)

	tests := []struct {
		name      string
		target    string
		wantCode  int
		wantParam bool
		wantName  string
		wantValue string
	}{
		{name: "short with value", target: "/parse?token=-x%3D1", wantCode: http.StatusOK, wantParam: true, wantName: "x", wantValue: "1"},
		{name: "long flag", target: "/parse?token=--flag", wantCode: http.StatusOK, wantParam: true, wantName: "flag"},
		{name: "not a parameter", target: "/parse?token=notaflag", wantCode: http.StatusOK},
		{name: "empty token", target: "/parse?token=", wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := env.do(t, http.MethodGet, tt.target, nil)
			require.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantParam, body["is_parameter"])
			if tt.wantParam {
				assert.Equal(t, tt.wantName, body["name"])
			}
			if tt.wantValue != "" {
				assert.Equal(t, tt.wantValue, body["value"])
			}
		})
	}

	w, body := env.do(t, http.MethodGet, "/parse", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "token query parameter required", body["error"])
}

func TestListServices(t *testing.T) {
	env := setupTestEnv(t)

	w, body := env.do(t, http.MethodGet, "/services", nil)
	require.Equal(t, http.StatusOK, w.Code)
	services := body["services"].([]interface{})
	require.Len(t, services, 1)
	assert.Equal(t, "location", services[0].(map[string]interface{})["id"])

	_, body = env.do(t, http.MethodGet, "/services?category=system", nil)
	assert.Empty(t, body["services"])

	w, _ = env.do(t, http.MethodGet, "/services?category=Bad!", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExecuteServiceFlow(t *testing.T) {
	env := setupTestEnv(t)

	w, body := env.do(t, http.MethodPost, "/services/execute", types.ExecuteRequest{
		ToolID: "location.create",
		Params: map[string]interface{}{"url": "http://example.com/index.html"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, body["success"])
	sid := body["data"].(map[string]interface{})["session_id"].(string)

	w, body = env.do(t, http.MethodPost, "/services/execute", types.ExecuteRequest{
		ToolID:    "location.set",
		Params:    map[string]interface{}{"key": "something", "value": "spa ce"},
		SessionID: &sid,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{"http://example.com/index.html", "--something=spa ce"},
		body["data"].(map[string]interface{})["params"])

	assert.Equal(t, float64(1), testutil.ToFloat64(env.metrics.SessionsActive))
	assert.Equal(t, float64(1), testutil.ToFloat64(env.metrics.ToolCalls.WithLabelValues("location.set", "success")))
}

func TestExecuteServiceToolFailure(t *testing.T) {
	env := setupTestEnv(t)

	w, body := env.do(t, http.MethodPost, "/services/execute", types.ExecuteRequest{
		ToolID: "location.params",
		Params: map[string]interface{}{"session_id": "sess_missing"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "session not found")
	assert.Equal(t, float64(1), testutil.ToFloat64(env.metrics.ToolCalls.WithLabelValues("location.params", "failure")))
}

func TestExecuteServiceBadRequests(t *testing.T) {
	env := setupTestEnv(t)
	badSession := "not valid!"

	tests := []struct {
		name string
		body interface{}
	}{
		{name: "missing tool id", body: map[string]interface{}{"params": map[string]interface{}{}}},
		{name: "invalid tool id", body: types.ExecuteRequest{ToolID: "location set"}},
		{name: "invalid session id", body: types.ExecuteRequest{ToolID: "location.params", SessionID: &badSession}},
		{name: "unknown service", body: types.ExecuteRequest{ToolID: "nope.tool"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := env.do(t, http.MethodPost, "/services/execute", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, body["error"])
		})
	}
}
