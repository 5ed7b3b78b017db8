package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	catalogservice "github.com/smallbiznis/threadline/internal/catalog/service"
	"github.com/smallbiznis/threadline/internal/clock"
	"github.com/smallbiznis/threadline/internal/config"
	customizationservice "github.com/smallbiznis/threadline/internal/customization/service"
	memberdomain "github.com/smallbiznis/threadline/internal/member/domain"
	memberservice "github.com/smallbiznis/threadline/internal/member/service"
	"github.com/smallbiznis/threadline/internal/migration"
	"github.com/smallbiznis/threadline/internal/notify"
	"github.com/smallbiznis/threadline/internal/observability/metrics"
	orderservice "github.com/smallbiznis/threadline/internal/order/service"
	reportservice "github.com/smallbiznis/threadline/internal/report/service"
	websiteservice "github.com/smallbiznis/threadline/internal/website/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"gorm.io/gorm"

	catalogrepo "github.com/smallbiznis/threadline/internal/catalog/repository"
	customizationrepo "github.com/smallbiznis/threadline/internal/customization/repository"
	memberrepo "github.com/smallbiznis/threadline/internal/member/repository"
	orderrepo "github.com/smallbiznis/threadline/internal/order/repository"
	reportrepo "github.com/smallbiznis/threadline/internal/report/repository"
	websiterepo "github.com/smallbiznis/threadline/internal/website/repository"
)

type noopDispatcher struct{}

func (noopDispatcher) Enqueue(notify.Notification) bool { return true }

func newTestServer(t *testing.T) (*Server, memberdomain.Service) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(migration.Models()...))

	node, err := snowflake.NewNode(7)
	require.NoError(t, err)

	log := zap.NewNop()
	clk := clock.NewSystemClock()

	members := memberservice.New(memberservice.Params{
		DB:         db,
		Log:        log,
		GenID:      node,
		Clock:      clk,
		Repo:       memberrepo.Provide(),
		Dispatcher: noopDispatcher{},
	})

	m, err := metrics.NewHTTPMetrics()
	require.NoError(t, err)

	srv := New(Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    config.Config{HTTPAddr: "127.0.0.1:0", Environment: "test"},
		Log:       log,
		Metrics:   m,
		Orders: orderservice.New(orderservice.Params{
			DB: db, Log: log, GenID: node, Clock: clk, Repo: orderrepo.Provide(),
		}),
		Catalog: catalogservice.New(catalogservice.Params{
			DB: db, Log: log, GenID: node, Clock: clk, Repo: catalogrepo.Provide(),
		}),
		Customization: customizationservice.New(customizationservice.Params{
			DB: db, Log: log, GenID: node, Clock: clk, Repo: customizationrepo.Provide(),
		}),
		Reports: reportservice.New(reportservice.Params{
			DB: db, Log: log, GenID: node, Clock: clk, Repo: reportrepo.Provide(),
		}),
		Website: websiteservice.New(websiteservice.Params{
			DB: db, Log: log, GenID: node, Clock: clk, Repo: websiterepo.Provide(),
		}),
		Members: members,
	})
	return srv, members
}

func perform(srv *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func loginToken(t *testing.T, srv *Server, members memberdomain.Service) string {
	t.Helper()

	w := perform(srv, http.MethodPost, "/members/signup/", "", map[string]any{
		"email":    "admin@example.com",
		"username": "admin",
		"password": "correct-horse",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	env := decodeEnvelope(t, w)
	data := env["response"].(map[string]any)["data"].(map[string]any)
	id := data["id"].(string)

	_, err := members.Approve(context.Background(), id)
	require.NoError(t, err)

	w = perform(srv, http.MethodPost, "/members/login/", "", map[string]any{
		"email":    "admin@example.com",
		"password": "correct-horse",
	})
	require.Equal(t, http.StatusOK, w.Code)

	env = decodeEnvelope(t, w)
	data = env["response"].(map[string]any)["data"].(map[string]any)
	return data["token"].(string)
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	w := perform(srv, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthRequired(t *testing.T) {
	srv, _ := newTestServer(t)

	w := perform(srv, http.MethodGet, "/reports/revenue/generate/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	env := decodeEnvelope(t, w)
	assert.Equal(t, false, env["success"])
	assert.Equal(t, "unauthorized", env["response"].(map[string]any)["message"])
}

func TestLoginBeforeApproval(t *testing.T) {
	srv, _ := newTestServer(t)

	w := perform(srv, http.MethodPost, "/members/signup/", "", map[string]any{
		"email":    "pending@example.com",
		"username": "pending",
		"password": "correct-horse",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = perform(srv, http.MethodPost, "/members/login/", "", map[string]any{
		"email":    "pending@example.com",
		"password": "correct-horse",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	env := decodeEnvelope(t, w)
	assert.Equal(t, false, env["success"])
}

func TestGenerateRevenueReportEndpoint(t *testing.T) {
	srv, members := newTestServer(t)
	token := loginToken(t, srv, members)

	w := perform(srv, http.MethodGet, "/reports/revenue/generate/", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	assert.Equal(t, true, env["success"])
	data := env["response"].(map[string]any)["data"].(map[string]any)
	assert.Contains(t, data, "this_month_revenue")
	assert.Contains(t, data, "growth_percentage")
	assert.NotEmpty(t, data["report_date"])
}

func TestNotFoundEnvelope(t *testing.T) {
	srv, members := newTestServer(t)
	token := loginToken(t, srv, members)

	w := perform(srv, http.MethodGet, "/blogs/123/", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	env := decodeEnvelope(t, w)
	assert.Equal(t, false, env["success"])
	assert.Equal(t, "not_found", env["response"].(map[string]any)["message"])
}

func TestValidationEnvelope(t *testing.T) {
	srv, members := newTestServer(t)
	token := loginToken(t, srv, members)

	w := perform(srv, http.MethodPost, "/colors/", token, map[string]any{
		"name": "Cherry",
		"code": "red",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	env := decodeEnvelope(t, w)
	assert.Equal(t, false, env["success"])
	assert.Equal(t, "invalid_color_code", env["response"].(map[string]any)["message"])
}

func TestMemberAdminRoutesRequireRole(t *testing.T) {
	srv, members := newTestServer(t)
	staffToken := loginToken(t, srv, members)

	w := perform(srv, http.MethodGet, "/members/", staffToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	signup := perform(srv, http.MethodPost, "/members/signup/", "", map[string]any{
		"email":    "boss@example.com",
		"username": "boss",
		"password": "correct-horse",
		"role":     "admin",
	})
	require.Equal(t, http.StatusCreated, signup.Code)
	env := decodeEnvelope(t, signup)
	id := env["response"].(map[string]any)["data"].(map[string]any)["id"].(string)
	_, err := members.Approve(context.Background(), id)
	require.NoError(t, err)

	login := perform(srv, http.MethodPost, "/members/login/", "", map[string]any{
		"email":    "boss@example.com",
		"password": "correct-horse",
	})
	require.Equal(t, http.StatusOK, login.Code)
	env = decodeEnvelope(t, login)
	adminToken := env["response"].(map[string]any)["data"].(map[string]any)["token"].(string)

	w = perform(srv, http.MethodGet, "/members/", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	srv, members := newTestServer(t)
	token := loginToken(t, srv, members)

	w := perform(srv, http.MethodPost, "/members/logout/", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = perform(srv, http.MethodGet, "/orders/", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
