package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"modelarena/internal/config"
	"modelarena/internal/interfaces/mocks"
	"modelarena/internal/model"
)

func routerConfig() *config.Config {
	return &config.Config{
		RateLimitRequests:      100,
		RateLimitWindowSeconds: 60,
		UpstreamTimeoutSeconds: 5,
	}
}

func setupRouter(t *testing.T) (http.Handler, *mocks.MockModelService) {
	mockChatSvc := mocks.NewMockChatService(t)
	mockCompareSvc := mocks.NewMockCompareService(t)
	mockModelSvc := mocks.NewMockModelService(t)
	mockAccountSvc := mocks.NewMockAccountService(t)

	router := NewRouter(
		NewChatHandler(mockChatSvc, mockCompareSvc),
		NewModelHandler(mockModelSvc),
		NewAccountHandler(mockAccountSvc),
		routerConfig(),
	)
	return router, mockModelSvc
}

func TestRouter_RootInfo(t *testing.T) {
	router, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var info InfoResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &info))
	assert.Equal(t, "ok", info.Status)
	assert.NotEmpty(t, info.Endpoints)
}

func TestRouter_Healthz(t *testing.T) {
	router, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRouter_ModelsRoute(t *testing.T) {
	router, mockModelSvc := setupRouter(t)
	mockModelSvc.On("List", mock.Anything).Return(&model.ModelsInfo{Current: "m"}).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/models", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

// Unmatched routes must answer with the standard JSON error shape, including
// the requested path, instead of chi's plain-text default.
func TestRouter_NotFound(t *testing.T) {
	router, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/no-such-route", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
	assert.Equal(t, "Not found", errResp.Error)
	assert.Equal(t, "/api/no-such-route", errResp.Path)
}

// A panicking handler must produce a JSON 500 without killing the process.
func TestJSONRecoverer(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	jsonRecoverer(panicking).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
	assert.Equal(t, "Internal server error", errResp.Error)
}

// The per-IP quota in front of /api answers 429 once the window is exhausted.
func TestRouter_RateLimit(t *testing.T) {
	mockChatSvc := mocks.NewMockChatService(t)
	mockCompareSvc := mocks.NewMockCompareService(t)
	mockModelSvc := mocks.NewMockModelService(t)
	mockAccountSvc := mocks.NewMockAccountService(t)

	cfg := routerConfig()
	cfg.RateLimitRequests = 1
	router := NewRouter(
		NewChatHandler(mockChatSvc, mockCompareSvc),
		NewModelHandler(mockModelSvc),
		NewAccountHandler(mockAccountSvc),
		cfg,
	)

	mockModelSvc.On("List", mock.Anything).Return(&model.ModelsInfo{Current: "m"}).Once()

	first := httptest.NewRequest(http.MethodGet, "/api/models", nil)
	first.RemoteAddr = "203.0.113.7:1234"
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, first)
	assert.Equal(t, http.StatusOK, rr.Code)

	second := httptest.NewRequest(http.MethodGet, "/api/models", nil)
	second.RemoteAddr = "203.0.113.7:1234"
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, second)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
}
