package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dmitrijs2005/gophgate/internal/logging"
	"github.com/dmitrijs2005/gophgate/internal/server/auth"
	"github.com/dmitrijs2005/gophgate/internal/server/config"
	"github.com/dmitrijs2005/gophgate/internal/server/metrics"
	"github.com/dmitrijs2005/gophgate/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophgate/internal/server/services"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "admin-password"
)

type testAPI struct {
	t     *testing.T
	app   *fiber.App
	users *services.UserService
	reg   *prometheus.Registry
}

func newTestAPI(t *testing.T, mutate ...func(*config.Config)) *testAPI {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = "http-test-secret"
	cfg.BcryptCost = bcrypt.MinCost
	for _, m := range mutate {
		m(cfg)
	}

	tokens, err := auth.NewTokenService(auth.TokenConfig{
		Secret:    []byte(cfg.SecretKey),
		TTL:       cfg.AccessTokenValidityDuration,
		Algorithm: cfg.SigningAlgorithm,
		Issuer:    cfg.TokenIssuer,
	})
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	us, err := services.NewUserService(repomanager.NewMemoryRepositoryManager(), tokens, cfg, logging.NewNop(), m)
	require.NoError(t, err)

	_, _, err = us.EnsureAdmin(context.Background(), adminEmail, adminPassword)
	require.NoError(t, err)

	srv := NewHTTPServer("127.0.0.1:0", logging.NewNop(), us, m, reg)
	return &testAPI{t: t, app: srv.App(), users: us, reg: reg}
}

type response struct {
	status int
	header func(string) string
	body   []byte
}

func (r response) json(t *testing.T) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(r.body, &out), string(r.body))
	return out
}

func (a *testAPI) do(method, path string, body any, token string) response {
	a.t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := a.app.Test(req, -1)
	require.NoError(a.t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(a.t, err)
	return response{status: resp.StatusCode, header: resp.Header.Get, body: raw}
}

func (a *testAPI) register(email, password string) map[string]any {
	a.t.Helper()
	r := a.do(fiber.MethodPost, "/api/v1/auth/register", map[string]any{"email": email, "password": password}, "")
	require.Equal(a.t, fiber.StatusCreated, r.status, string(r.body))
	return r.json(a.t)
}

func (a *testAPI) login(email, password string) string {
	a.t.Helper()
	r := a.do(fiber.MethodPost, "/api/v1/auth/login", map[string]any{"email": email, "password": password}, "")
	require.Equal(a.t, fiber.StatusOK, r.status, string(r.body))
	return r.json(a.t)["access_token"].(string)
}

func (a *testAPI) adminToken() string {
	return a.login(adminEmail, adminPassword)
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)
	r := api.do(fiber.MethodGet, "/health", nil, "")
	assert.Equal(t, fiber.StatusOK, r.status)
	assert.Equal(t, "ok", r.json(t)["status"])
}

func TestRegister(t *testing.T) {
	api := newTestAPI(t)

	r := api.do(fiber.MethodPost, "/api/v1/auth/register",
		map[string]any{"email": "Neo@Example.com", "password": "password1", "full_name": "Thomas Anderson"}, "")
	require.Equal(t, fiber.StatusCreated, r.status, string(r.body))

	body := r.json(t)
	assert.Equal(t, "neo@example.com", body["email"])
	assert.Equal(t, "Thomas Anderson", body["full_name"])
	assert.Equal(t, "USER", body["role"])
	assert.Equal(t, "PENDING", body["status"])
	assert.Nil(t, body["rejection_reason"])
	assert.Equal(t, true, body["is_active"])
	assert.NotContains(t, string(r.body), "password")
}

func TestRegister_Errors(t *testing.T) {
	api := newTestAPI(t)
	api.register("taken@example.com", "password1")

	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantDetail string
	}{
		{"duplicate any case", map[string]any{"email": "TAKEN@example.com", "password": "password1"}, fiber.StatusConflict, "Email already registered"},
		{"seven characters", map[string]any{"email": "new@example.com", "password": "1234567"}, fiber.StatusBadRequest, "Password must be at least 8 characters"},
		{"missing password", map[string]any{"email": "new@example.com"}, fiber.StatusBadRequest, "Password must be at least 8 characters"},
		{"bad email", map[string]any{"email": "nope", "password": "password1"}, fiber.StatusBadRequest, "invalid input"},
		{"password over 72 bytes", map[string]any{"email": "new@example.com", "password": strings.Repeat("a", 73)}, fiber.StatusBadRequest, "at most 72 bytes"},
		{"malformed json", `{"email":`, fiber.StatusBadRequest, "invalid input"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := api.do(fiber.MethodPost, "/api/v1/auth/register", tt.body, "")
			assert.Equal(t, tt.wantStatus, r.status, string(r.body))
			assert.Contains(t, r.json(t)["detail"], tt.wantDetail)
		})
	}
}

func TestLogin(t *testing.T) {
	api := newTestAPI(t)
	api.register("trinity@example.com", "password1")

	r := api.do(fiber.MethodPost, "/api/v1/auth/login", map[string]any{"email": "trinity@example.com", "password": "password1"}, "")
	require.Equal(t, fiber.StatusOK, r.status)
	body := r.json(t)
	assert.Equal(t, "bearer", body["token_type"])
	assert.NotEmpty(t, body["access_token"])
	assert.EqualValues(t, 1800, body["expires_in"])

	for _, creds := range []map[string]any{
		{"email": "trinity@example.com", "password": "password2"},
		{"email": "ghost@example.com", "password": "password1"},
	} {
		r := api.do(fiber.MethodPost, "/api/v1/auth/login", creds, "")
		assert.Equal(t, fiber.StatusUnauthorized, r.status)
		assert.Equal(t, "Invalid email or password", r.json(t)["detail"])
		assert.Equal(t, "Bearer", r.header(fiber.HeaderWWWAuthenticate))
	}
}

func TestMe(t *testing.T) {
	api := newTestAPI(t)
	created := api.register("morpheus@example.com", "password1")
	token := api.login("morpheus@example.com", "password1")

	r := api.do(fiber.MethodGet, "/api/v1/me", nil, token)
	require.Equal(t, fiber.StatusOK, r.status)
	assert.Equal(t, created["id"], r.json(t)["id"])

	r = api.do(fiber.MethodGet, "/api/v1/me/status", nil, token)
	require.Equal(t, fiber.StatusOK, r.status)
	assert.Equal(t, map[string]any{"status": "PENDING", "rejection_reason": nil}, r.json(t))
}

func TestMe_Unauthenticated(t *testing.T) {
	api := newTestAPI(t)

	cases := map[string]string{
		"no header":    "",
		"wrong scheme": "Basic abc",
		"bad token":    "Bearer not-a-token",
		"empty bearer": "Bearer ",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/api/v1/me", nil)
			if header != "" {
				req.Header.Set(fiber.HeaderAuthorization, header)
			}
			resp, err := api.app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
			assert.Equal(t, "Bearer", resp.Header.Get(fiber.HeaderWWWAuthenticate))
		})
	}
}

func TestAdmin_RequiresAdminRole(t *testing.T) {
	api := newTestAPI(t)
	api.register("user@example.com", "password1")
	userToken := api.login("user@example.com", "password1")

	r := api.do(fiber.MethodGet, "/api/v1/admin/users", nil, userToken)
	assert.Equal(t, fiber.StatusForbidden, r.status)
	assert.Equal(t, "Admin privileges required", r.json(t)["detail"])

	r = api.do(fiber.MethodGet, "/api/v1/admin/users", nil, "")
	assert.Equal(t, fiber.StatusUnauthorized, r.status)
}

func TestAdmin_ListUsers(t *testing.T) {
	api := newTestAPI(t)
	for i := 0; i < 3; i++ {
		api.register(fmt.Sprintf("p%d@example.com", i), "password1")
	}
	token := api.adminToken()

	r := api.do(fiber.MethodGet, "/api/v1/admin/users", nil, token)
	require.Equal(t, fiber.StatusOK, r.status)
	body := r.json(t)
	assert.EqualValues(t, 3, body["total"])
	assert.Len(t, body["items"], 3)

	r = api.do(fiber.MethodGet, "/api/v1/admin/users?status=PENDING&page=0&page_size=500", nil, token)
	require.Equal(t, fiber.StatusOK, r.status)
	body = r.json(t)
	assert.EqualValues(t, 1, body["page"])
	assert.EqualValues(t, 20, body["page_size"])

	r = api.do(fiber.MethodGet, "/api/v1/admin/users?status=APPROVED", nil, token)
	require.Equal(t, fiber.StatusOK, r.status)
	assert.EqualValues(t, 1, r.json(t)["total"], "only the bootstrap admin")

	r = api.do(fiber.MethodGet, "/api/v1/admin/users?status=WHATEVER", nil, token)
	assert.Equal(t, fiber.StatusBadRequest, r.status)
}

func TestAdmin_ApproveReject(t *testing.T) {
	api := newTestAPI(t)
	token := api.adminToken()

	a := api.register("a@example.com", "password1")
	b := api.register("b@example.com", "password1")
	c := api.register("c@example.com", "password1")

	r := api.do(fiber.MethodPost, "/api/v1/admin/users/"+a["id"].(string)+"/approve", nil, token)
	require.Equal(t, fiber.StatusOK, r.status)
	assert.Equal(t, "APPROVED", r.json(t)["status"])

	r = api.do(fiber.MethodPost, "/api/v1/admin/users/"+a["id"].(string)+"/approve", nil, token)
	assert.Equal(t, fiber.StatusBadRequest, r.status)
	assert.Equal(t, "User status is not PENDING", r.json(t)["detail"])

	r = api.do(fiber.MethodPost, "/api/v1/admin/users/00000000-0000-4000-8000-000000000000/approve", nil, token)
	assert.Equal(t, fiber.StatusNotFound, r.status)
	assert.Equal(t, "User not found", r.json(t)["detail"])

	r = api.do(fiber.MethodPost, "/api/v1/admin/users/"+b["id"].(string)+"/reject",
		map[string]any{"status": "APPROVED", "rejection_reason": "x"}, token)
	assert.Equal(t, fiber.StatusBadRequest, r.status)
	assert.Equal(t, "Invalid status for rejection", r.json(t)["detail"])

	r = api.do(fiber.MethodPost, "/api/v1/admin/users/"+b["id"].(string)+"/reject",
		map[string]any{"status": "REJECTED", "rejection_reason": "blurry photo"}, token)
	require.Equal(t, fiber.StatusOK, r.status)
	assert.Equal(t, "REJECTED", r.json(t)["status"])
	assert.Equal(t, "blurry photo", r.json(t)["rejection_reason"])

	r = api.do(fiber.MethodPost, "/api/v1/admin/users/"+c["id"].(string)+"/reject?status=REJECTED&rejection_reason=spam", nil, token)
	require.Equal(t, fiber.StatusOK, r.status, string(r.body))
	assert.Equal(t, "spam", r.json(t)["rejection_reason"])

	userToken := api.login("b@example.com", "password1")
	r = api.do(fiber.MethodGet, "/api/v1/me/status", nil, userToken)
	assert.Equal(t, map[string]any{"status": "REJECTED", "rejection_reason": "blurry photo"}, r.json(t))
}

func TestAdmin_SetActive(t *testing.T) {
	api := newTestAPI(t, func(c *config.Config) { c.RequireActiveAccount = true })
	token := api.adminToken()
	u := api.register("d@example.com", "password1")
	userToken := api.login("d@example.com", "password1")

	path := "/api/v1/admin/users/" + u["id"].(string) + "/active"

	r := api.do(fiber.MethodPost, path, map[string]any{}, token)
	assert.Equal(t, fiber.StatusBadRequest, r.status)

	r = api.do(fiber.MethodPost, path, map[string]any{"active": false}, token)
	require.Equal(t, fiber.StatusOK, r.status)
	assert.Equal(t, false, r.json(t)["is_active"])

	r = api.do(fiber.MethodGet, "/api/v1/me", nil, userToken)
	assert.Equal(t, fiber.StatusForbidden, r.status)
	assert.Equal(t, "Inactive user", r.json(t)["detail"])

	r = api.do(fiber.MethodPost, path, map[string]any{"active": true}, token)
	require.Equal(t, fiber.StatusOK, r.status)

	r = api.do(fiber.MethodGet, "/api/v1/me", nil, userToken)
	assert.Equal(t, fiber.StatusOK, r.status)
}

func TestMetricsEndpoint(t *testing.T) {
	api := newTestAPI(t)
	api.do(fiber.MethodGet, "/health", nil, "")

	r := api.do(fiber.MethodGet, "/metrics", nil, "")
	require.Equal(t, fiber.StatusOK, r.status)
	assert.Contains(t, string(r.body), `gophgate_http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func TestUnknownRoute(t *testing.T) {
	api := newTestAPI(t)
	r := api.do(fiber.MethodGet, "/nope", nil, "")
	assert.Equal(t, fiber.StatusNotFound, r.status)
	assert.NotEmpty(t, r.json(t)["detail"])
}

func TestScenario_RegisterApproveLoginMe(t *testing.T) {
	api := newTestAPI(t)

	created := api.register("a@x.com", "password1")
	assert.Equal(t, "PENDING", created["status"])

	r := api.do(fiber.MethodPost, "/api/v1/admin/users/"+created["id"].(string)+"/approve", nil, api.adminToken())
	require.Equal(t, fiber.StatusOK, r.status)
	assert.Nil(t, r.json(t)["rejection_reason"])

	token := api.login("a@x.com", "password1")
	r = api.do(fiber.MethodGet, "/api/v1/me", nil, token)
	require.Equal(t, fiber.StatusOK, r.status)
	me := r.json(t)
	assert.Equal(t, created["id"], me["id"])
	assert.Equal(t, "APPROVED", me["status"])

	r = api.do(fiber.MethodPost, "/api/v1/auth/register", map[string]any{"email": "b@x.com", "password": "short"}, "")
	assert.Equal(t, fiber.StatusBadRequest, r.status)
	r = api.do(fiber.MethodPost, "/api/v1/auth/login", map[string]any{"email": "b@x.com", "password": "short"}, "")
	assert.Equal(t, fiber.StatusUnauthorized, r.status)
}
