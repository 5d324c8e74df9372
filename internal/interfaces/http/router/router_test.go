package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cargolink/backend/internal/infrastructure/auth"
	"github.com/cargolink/backend/internal/infrastructure/config"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "cargolink-backend", Env: "development", Port: "8080"},
		JWT: config.JWTConfig{
			Secret:                 "test-secret-key-that-is-long-enough",
			AccessTokenExpiration:  15 * time.Minute,
			RefreshTokenExpiration: 24 * time.Hour,
			Issuer:                 "cargolink-test",
		},
		HTTP: config.HTTPConfig{
			MaxBodySize:           1 << 20,
			WriteRateLimitEnabled: true,
			WriteRateLimitCount:   10,
			WriteRateLimitWindow:  time.Minute,
			CORSAllowOrigins:      []string{"http://localhost:3000"},
		},
		Telemetry: config.TelemetryConfig{ServiceName: "cargolink-test"},
	}
}

func TestNew_RegistersRoutes(t *testing.T) {
	cfg := testConfig()
	engine := New(cfg, zap.NewNop(), auth.NewJWTService(cfg.JWT), Handlers{})

	routes := make(map[string]bool)
	for _, r := range engine.Routes() {
		routes[r.Method+" "+r.Path] = true
	}

	expected := []string{
		"GET /api/v1/system/ping",
		"GET /api/v1/system/health",
		"GET /api/v1/carriers",
		"GET /api/v1/carriers/categories",
		"POST /api/v1/tracking/detect",
		"GET /api/v1/quiz/questions",
		"POST /api/v1/quiz/score",
		"GET /api/v1/quiz/profiles/:code",
		"POST /api/v1/auth/login",
		"POST /api/v1/auth/refresh",
		"GET /api/v1/auth/me",
		"POST /api/v1/auth/editors",
		"GET /api/v1/insights",
		"GET /api/v1/insights/:slug",
		"GET /api/v1/community/posts",
		"POST /api/v1/community/posts",
		"POST /api/v1/community/posts/:id/verify",
		"DELETE /api/v1/community/comments/:id",
		"POST /api/v1/feedback",
		"GET /api/v1/surcharges",
		"GET /api/v1/surcharges/:carrier_code/history",
		"POST /api/v1/admin/insights",
		"POST /api/v1/admin/insights/:id/publish",
		"GET /api/v1/admin/feedback",
		"PUT /api/v1/admin/surcharges/:carrier_code",
		"DELETE /api/v1/admin/surcharges/id/:id",
	}
	for _, route := range expected {
		assert.True(t, routes[route], "route %s should be registered", route)
	}
}

func TestNew_AdminRoutesRequireAuth(t *testing.T) {
	cfg := testConfig()
	engine := New(cfg, zap.NewNop(), auth.NewJWTService(cfg.JWT), Handlers{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/insights", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
