package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/models"
)

const testAdminToken = "admin-token"

type testServer struct {
	app *fiber.App
	db  *gorm.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: time.Hour,
		AdminToken:       testAdminToken,
		CORSOrigins:      "*",
	}
	return &testServer{app: New(cfg, db, metrics.New()), db: db}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, headers map[string]string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func (s *testServer) register(t *testing.T, email string) dto.AuthResponse {
	t.Helper()
	status, raw := s.do(t, http.MethodPost, "/api/auth/register",
		dto.RegisterRequest{Email: email, Password: "password123"}, nil)
	require.Equal(t, http.StatusCreated, status, string(raw))

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(raw, &resp))
	return resp
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func adminHeaders() map[string]string {
	return map[string]string{"X-Admin-Token": testAdminToken}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	status, raw := s.do(t, http.MethodGet, "/api/health", nil, nil)
	require.Equal(t, http.StatusOK, status)

	var resp dto.HealthResponse
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "ok", resp.DB)
}

func TestCatalog_EmptyListsRenderArrays(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/api/services", "/api/projects", "/api/testimonials", "/api/pricing"} {
		status, raw := s.do(t, http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusOK, status, path)
		assert.JSONEq(t, "[]", string(raw), path)
	}
}

func TestSeed_RequiresAdmin(t *testing.T) {
	s := newTestServer(t)

	status, _ := s.do(t, http.MethodPost, "/api/admin/seed", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	user := s.register(t, "visitor@example.com")
	status, _ = s.do(t, http.MethodPost, "/api/admin/seed", nil, bearer(user.AccessToken))
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = s.do(t, http.MethodPost, "/api/admin/seed", nil, map[string]string{"X-Admin-Token": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestSeed_ThenCatalogListsInLiteralOrder(t *testing.T) {
	s := newTestServer(t)

	status, raw := s.do(t, http.MethodPost, "/api/admin/seed", nil, adminHeaders())
	require.Equal(t, http.StatusOK, status, string(raw))
	var seeded dto.SeedResponse
	require.NoError(t, json.Unmarshal(raw, &seeded))
	assert.Equal(t, dto.SeedResponse{Success: true, Seeded: true, Services: 14, Projects: 4, Testimonials: 2, Pricing: 8}, seeded)

	status, raw = s.do(t, http.MethodPost, "/api/admin/seed", nil, adminHeaders())
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(raw, &seeded))
	assert.True(t, seeded.Success)
	assert.False(t, seeded.Seeded)

	_, raw = s.do(t, http.MethodGet, "/api/services", nil, nil)
	var svcs []models.Service
	require.NoError(t, json.Unmarshal(raw, &svcs))
	require.Len(t, svcs, 14)
	assert.Equal(t, "Дома из кирпича", svcs[0].Name)
	assert.Equal(t, models.CategoryConstructionServices, svcs[13].Category)

	_, raw = s.do(t, http.MethodGet, "/api/projects", nil, nil)
	var projects []models.Project
	require.NoError(t, json.Unmarshal(raw, &projects))
	require.Len(t, projects, 4)
	assert.Equal(t, "Каркасный дом 120 кв.м", projects[0].Title)

	_, raw = s.do(t, http.MethodGet, "/api/testimonials", nil, nil)
	var testimonials []models.Testimonial
	require.NoError(t, json.Unmarshal(raw, &testimonials))
	require.Len(t, testimonials, 2)
	assert.Equal(t, "Александр Петров", testimonials[0].CustomerName)

	_, raw = s.do(t, http.MethodGet, "/api/pricing", nil, nil)
	var pricing []models.PricingItem
	require.NoError(t, json.Unmarshal(raw, &pricing))
	require.Len(t, pricing, 8)
	assert.Equal(t, "Фундамент ленточный", pricing[0].Name)
}

func TestCatalog_StoreUnavailable(t *testing.T) {
	s := newTestServer(t)
	sqlDB, err := s.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	status, raw := s.do(t, http.MethodGet, "/api/services", nil, nil)
	assert.Equal(t, http.StatusServiceUnavailable, status)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.True(t, resp.Error)
}

func TestContact_SubmitDefaultsOptionalFields(t *testing.T) {
	s := newTestServer(t)

	status, raw := s.do(t, http.MethodPost, "/api/contact",
		map[string]string{"name": "Иван", "phone": "+7 999 000-00-00"}, nil)
	require.Equal(t, http.StatusCreated, status, string(raw))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "Иван", got["name"])
	assert.Equal(t, "+7 999 000-00-00", got["phone"])
	assert.Equal(t, "", got["email"])
	assert.Equal(t, "", got["message"])
	assert.Equal(t, "", got["serviceType"])
	assert.NotEmpty(t, got["id"])
	assert.NotEmpty(t, got["createdAt"])
	assert.NotContains(t, got, "spamReason")
}

func TestContact_BadBody(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestContact_AdminListShowsSpamFlag(t *testing.T) {
	s := newTestServer(t)

	s.do(t, http.MethodPost, "/api/contact", map[string]string{"name": "Анна", "phone": "123", "serviceType": "house"}, nil)
	s.do(t, http.MethodPost, "/api/contact", map[string]string{"name": "Bot", "phone": "1", "message": "visit https://spam.example"}, nil)

	status, _ := s.do(t, http.MethodGet, "/api/admin/contacts", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, raw := s.do(t, http.MethodGet, "/api/admin/contacts?limit=10", nil, adminHeaders())
	require.Equal(t, http.StatusOK, status, string(raw))

	var list struct {
		Submissions []map[string]interface{} `json:"submissions"`
		Total       int64                    `json:"total"`
		Limit       int                      `json:"limit"`
	}
	require.NoError(t, json.Unmarshal(raw, &list))
	assert.EqualValues(t, 2, list.Total)
	assert.Equal(t, 10, list.Limit)
	require.Len(t, list.Submissions, 2)
	assert.Equal(t, "Bot", list.Submissions[0]["name"])
	assert.Equal(t, "links", list.Submissions[0]["spamReason"])
	assert.Equal(t, "", list.Submissions[1]["spamReason"])
}

func TestAdminGate_StatusGrantCheck(t *testing.T) {
	s := newTestServer(t)

	status, raw := s.do(t, http.MethodGet, "/api/admin/status", nil, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"isAdmin":false}`, string(raw))

	status, raw = s.do(t, http.MethodGet, "/api/admin/status", nil, bearer("not-a-jwt"))
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"isAdmin":false}`, string(raw))

	status, _ = s.do(t, http.MethodPost, "/api/admin/grant", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	user := s.register(t, "owner@stroydom.ru")
	auth := bearer(user.AccessToken)

	_, raw = s.do(t, http.MethodGet, "/api/admin/status", nil, auth)
	assert.JSONEq(t, `{"isAdmin":false}`, string(raw))

	status, _ = s.do(t, http.MethodGet, "/api/admin/check", nil, auth)
	assert.Equal(t, http.StatusForbidden, status)

	status, raw = s.do(t, http.MethodPost, "/api/admin/grant", nil, auth)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"success":true}`, string(raw))

	_, raw = s.do(t, http.MethodGet, "/api/admin/status", nil, auth)
	assert.JSONEq(t, `{"isAdmin":true}`, string(raw))

	status, raw = s.do(t, http.MethodGet, "/api/admin/check", nil, auth)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"success":true}`, string(raw))

	// a granted user passes the admin group guard with its JWT alone
	status, _ = s.do(t, http.MethodGet, "/api/admin/contacts", nil, auth)
	assert.Equal(t, http.StatusOK, status)
}

func TestAuth_LoginRefreshLogout(t *testing.T) {
	s := newTestServer(t)
	reg := s.register(t, "user@example.com")

	status, _ := s.do(t, http.MethodPost, "/api/auth/register",
		dto.RegisterRequest{Email: "user@example.com", Password: "password123"}, nil)
	assert.Equal(t, http.StatusConflict, status)

	status, _ = s.do(t, http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Email: "user@example.com", Password: "wrong-password"}, nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, raw := s.do(t, http.MethodPost, "/api/auth/refresh",
		dto.RefreshRequest{RefreshToken: reg.RefreshToken}, nil)
	require.Equal(t, http.StatusOK, status)
	var refreshed dto.AuthResponse
	require.NoError(t, json.Unmarshal(raw, &refreshed))
	assert.NotEqual(t, reg.RefreshToken, refreshed.RefreshToken)

	status, _ = s.do(t, http.MethodPost, "/api/auth/logout",
		dto.LogoutRequest{RefreshToken: refreshed.RefreshToken}, nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = s.do(t, http.MethodPost, "/api/auth/logout",
		dto.LogoutRequest{RefreshToken: refreshed.RefreshToken}, bearer(refreshed.AccessToken))
	assert.Equal(t, http.StatusOK, status)

	status, _ = s.do(t, http.MethodPost, "/api/auth/refresh",
		dto.RefreshRequest{RefreshToken: refreshed.RefreshToken}, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestEstimate(t *testing.T) {
	s := newTestServer(t)

	status, raw := s.do(t, http.MethodPost, "/api/estimate",
		dto.EstimateRequest{HouseType: "Каркасные дома", Area: 100, Floors: 2}, nil)
	require.Equal(t, http.StatusOK, status, string(raw))
	var resp dto.EstimateResponse
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.EqualValues(t, 1950000, resp.Total)
	assert.Equal(t, 1.3, resp.Multiplier)
	assert.Contains(t, resp.Formatted, "руб.")

	status, _ = s.do(t, http.MethodPost, "/api/estimate", dto.EstimateRequest{Area: 0, Floors: 1}, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = s.do(t, http.MethodPost, "/api/estimate", dto.EstimateRequest{Area: 80, Floors: 3}, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestSettings_AdminWritesPublicReads(t *testing.T) {
	s := newTestServer(t)

	status, _ := s.do(t, http.MethodPut, "/api/admin/settings/callback_enabled",
		dto.SettingRequest{Value: "true", Type: "bool"}, nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, raw := s.do(t, http.MethodPut, "/api/admin/settings/callback_enabled",
		dto.SettingRequest{Value: "true", Type: "bool"}, adminHeaders())
	require.Equal(t, http.StatusOK, status, string(raw))

	status, _ = s.do(t, http.MethodPut, "/api/admin/settings/floors",
		dto.SettingRequest{Value: "two", Type: "int"}, adminHeaders())
	assert.Equal(t, http.StatusBadRequest, status)

	_, raw = s.do(t, http.MethodGet, "/api/settings", nil, nil)
	assert.JSONEq(t, `{"callback_enabled":true}`, string(raw))

	status, _ = s.do(t, http.MethodDelete, "/api/admin/settings/callback_enabled", nil, adminHeaders())
	assert.Equal(t, http.StatusOK, status)
	status, _ = s.do(t, http.MethodDelete, "/api/admin/settings/callback_enabled", nil, adminHeaders())
	assert.Equal(t, http.StatusNotFound, status)
}

func TestLegalPages(t *testing.T) {
	s := newTestServer(t)

	status, raw := s.do(t, http.MethodGet, "/api/legal/privacy", nil, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(raw), "СтройДом")

	s.do(t, http.MethodPut, "/api/admin/settings/site_name",
		dto.SettingRequest{Value: "Дом <Мечты>"}, adminHeaders())

	_, raw = s.do(t, http.MethodGet, "/api/legal/terms", nil, nil)
	assert.Contains(t, string(raw), "Дом &lt;Мечты&gt;")
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)

	s.do(t, http.MethodGet, "/api/health", nil, nil)
	s.do(t, http.MethodPost, "/api/contact", map[string]string{"name": "A", "phone": "1"}, nil)

	status, raw := s.do(t, http.MethodGet, "/metrics", nil, nil)
	require.Equal(t, http.StatusOK, status)
	body := string(raw)
	assert.Contains(t, body, `stroydom_http_requests_total{method="GET",route="/api/health",status="200"} 1`)
	assert.Contains(t, body, `stroydom_contact_submissions_total{service_type="unspecified"} 1`)
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t)

	status, raw := s.do(t, http.MethodGet, "/api/nope", nil, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, string(raw), `"error":true`)
}
