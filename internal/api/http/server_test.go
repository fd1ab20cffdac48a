package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/me-tool/internal/api/http/handlers"
	"github.com/spec-kit/me-tool/internal/auth"
	"github.com/spec-kit/me-tool/internal/config"
	"github.com/spec-kit/me-tool/internal/domain"
	"github.com/spec-kit/me-tool/internal/repository/repositorytest"
	"github.com/spec-kit/me-tool/internal/service"
	"github.com/spec-kit/me-tool/internal/validation"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

type testServer struct {
	app   *fiber.App
	store *repositorytest.Store
	codec *auth.SessionCodec
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	store := repositorytest.NewStore()
	ctx := context.Background()
	hash, err := auth.HashPassword("password123", bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, store.Staff().Create(ctx, &domain.StaffMember{ID: "admin", Name: "Ada", Email: "ada@example.org", PasswordHash: hash, Role: domain.StaffRoleAdmin}))
	require.NoError(t, store.Staff().Create(ctx, &domain.StaffMember{ID: "staff", Name: "Sam", Email: "sam@example.org", PasswordHash: hash, Role: domain.StaffRoleStaff}))

	logger := zap.NewNop()
	codec := auth.NewSessionCodec(config.SessionConfig{Secret: "test-secret", MaxAgeDays: 30}, false)
	guard := auth.NewGuard(codec, store.Staff(), logger)
	decoder := validation.NewDecoder(time.Now)

	org := service.NewStaffService(service.OrgDependencies{StaffRepo: store.Staff(), TeamRepo: store.Teams()}, decoder, bcrypt.MinCost)
	strategy := service.NewStrategyService(service.StrategyDependencies{ObjectiveRepo: store.Objectives(), ProjectRepo: store.Projects()}, decoder)
	activity := service.NewActivityService(service.ActivityDependencies{WorkshopRepo: store.Workshops(), LivelihoodRepo: store.Livelihoods()}, decoder)
	authService := service.NewAuthService(store.Staff(), nil, logger)

	app := NewServer(ServerConfig{AppName: "me-tool-test", RequestTimeout: 5 * time.Second}, logger, RouteConfig{
		Health:   handlers.NewHealthHandler("me-tool", "test", pinger{}, nil),
		Session:  handlers.NewSessionHandler(authService, guard),
		Strategy: handlers.NewStrategyHandler(strategy, org),
		Activity: handlers.NewActivityHandler(activity, strategy),
		Staff:    handlers.NewStaffHandler(org),
		Guard:    guard,
	})
	return &testServer{app: app, store: store, codec: codec}
}

func (s *testServer) do(t *testing.T, req *nethttp.Request, userID string) *nethttp.Response {
	t.Helper()
	if userID != "" {
		value, _, err := s.codec.Encode(userID)
		require.NoError(t, err)
		req.AddCookie(&nethttp.Cookie{Name: auth.CookieName, Value: value})
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func formRequest(method, target string, values url.Values) *nethttp.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
	return req
}

func jsonRequest(method, target, body string) *nethttp.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	return req
}

func decodeBody(t *testing.T, resp *nethttp.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body), string(raw))
	return body
}

func TestProtectedRouteRedirectsToLogin(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/strategy", "/project", "/workshop", "/livelihood", "/staff", "/team"} {
		resp := s.do(t, httptest.NewRequest(nethttp.MethodGet, path, nil), "")
		assert.Equal(t, nethttp.StatusFound, resp.StatusCode, path)
		assert.Equal(t, "/login?redirectTo="+url.QueryEscape(path), resp.Header.Get("Location"), path)
	}
}

func TestWriteWithoutSessionRedirects(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, formRequest(nethttp.MethodPost, "/team", url.Values{"name": {"Ops"}}), "")
	assert.Equal(t, nethttp.StatusFound, resp.StatusCode)
	assert.Zero(t, s.store.Counts()["teams"])
}

func TestNonAdminWriteIsForbidden(t *testing.T) {
	s := newTestServer(t)
	before := s.store.Counts()

	for _, path := range []string{"/strategy", "/project", "/workshop", "/livelihood", "/staff", "/team"} {
		resp := s.do(t, formRequest(nethttp.MethodPost, path, url.Values{"name": {"Ops"}}), "staff")
		assert.Equal(t, nethttp.StatusForbidden, resp.StatusCode, path)
		assert.Equal(t, map[string]any{"error": "Not authorized"}, decodeBody(t, resp), path)
	}
	assert.Equal(t, before, s.store.Counts())
}

func TestTeamCreatedThenListedOnce(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, formRequest(nethttp.MethodPost, "/team", url.Values{"name": {"Ops"}}), "admin")
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)["data"].(map[string]any)
	assert.Equal(t, "Ops", created["name"])

	resp = s.do(t, httptest.NewRequest(nethttp.MethodGet, "/team", nil), "staff")
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	teams := body["teams"].([]any)
	require.Len(t, teams, 1)
	assert.Equal(t, map[string]any{"id": created["id"], "name": "Ops"}, teams[0])
	assert.Equal(t, "Sam", body["user"].(map[string]any)["name"])
}

func TestObjectiveValidationErrors(t *testing.T) {
	s := newTestServer(t)
	s.do(t, formRequest(nethttp.MethodPost, "/team", url.Values{"name": {"Ops"}}), "admin")

	resp := s.do(t, formRequest(nethttp.MethodPost, "/strategy", url.Values{
		"name": {"Literacy"}, "outcome": {"Reading"}, "kpi": {"Kids"}, "targetValue": {"10"},
		"actualValue": {"11"}, "status": {"ON_TRACK"}, "teamId": {"1"}, "lastUpdated": {"2020-01-01"},
	}), "admin")
	require.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, []any{map[string]any{"path": "actualValue", "message": "Actual value cannot exceed target value"}}, body["errors"])
	assert.Zero(t, s.store.Counts()["strategic_objectives"])

	future := time.Now().AddDate(0, 0, 2).Format("2006-01-02")
	resp = s.do(t, formRequest(nethttp.MethodPost, "/strategy", url.Values{
		"name": {"Literacy"}, "outcome": {"Reading"}, "kpi": {"Kids"}, "targetValue": {"10"},
		"actualValue": {"10"}, "status": {"ON_TRACK"}, "teamId": {"1"}, "lastUpdated": {future},
	}), "admin")
	require.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, []any{map[string]any{"path": "lastUpdated", "message": "Last updated date cannot be in the future"}}, body["errors"])
}

func TestObjectiveAndProjectFlow(t *testing.T) {
	s := newTestServer(t)
	s.do(t, formRequest(nethttp.MethodPost, "/team", url.Values{"name": {"Ops"}}), "admin")

	resp := s.do(t, formRequest(nethttp.MethodPost, "/strategy", url.Values{
		"name": {"Literacy"}, "outcome": {"Reading"}, "kpi": {"Kids"}, "targetValue": {"10"},
		"actualValue": {"10"}, "status": {"COMPLETED"}, "teamId": {"1"}, "lastUpdated": {"2020-01-01"},
	}), "admin")
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)

	resp = s.do(t, jsonRequest(nethttp.MethodPost, "/project", `{
		"projectName": "Clubs", "objective": "Start clubs", "strategicObjectiveId": 1,
		"outcome": "Clubs running", "activity": "Sessions", "kpi": "Clubs",
		"targetValue": 8, "actualValue": 2, "progressPercentage": 99, "status": "ON_TRACK",
		"teamId": 1, "timeline": "2026", "lastUpdated": "2020-02-01"
	}`), "admin")
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)
	project := decodeBody(t, resp)["data"].(map[string]any)
	assert.Equal(t, 25.0, project["progressPercentage"])
	assert.Equal(t, "Clubs", project["projectName"])

	resp = s.do(t, httptest.NewRequest(nethttp.MethodGet, "/strategy", nil), "staff")
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	objectives := decodeBody(t, resp)["strategicObjectives"].([]any)
	require.Len(t, objectives, 1)
	assert.Equal(t, 100.0, objectives[0].(map[string]any)["progressPercentage"])

	resp = s.do(t, httptest.NewRequest(nethttp.MethodGet, "/project", nil), "staff")
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	projects := body["projects"].([]any)
	require.Len(t, projects, 1)
	listed := projects[0].(map[string]any)
	assert.Equal(t, 25.0, listed["progressPercentage"])
	assert.Equal(t, "Literacy", listed["strategicObjective"].(map[string]any)["name"])
	assert.Equal(t, "Ops", listed["responsibleTeam"].(map[string]any)["name"])
	assert.Len(t, body["teams"], 1)
}

func TestUnknownTeamIsFieldError(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, formRequest(nethttp.MethodPost, "/strategy", url.Values{
		"name": {"Literacy"}, "outcome": {"Reading"}, "kpi": {"Kids"}, "targetValue": {"10"},
		"actualValue": {"1"}, "status": {"ON_TRACK"}, "teamId": {"7"}, "lastUpdated": {"2020-01-01"},
	}), "admin")
	require.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	errs := decodeBody(t, resp)["errors"].([]any)
	assert.Equal(t, "teamId", errs[0].(map[string]any)["path"])
}

func TestMalformedJSONBody(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, jsonRequest(nethttp.MethodPost, "/team", `{"name":`), "admin")
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, map[string]any{"error": "Invalid form submission"}, decodeBody(t, resp))
}

func TestMissingUserDestroysSession(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, httptest.NewRequest(nethttp.MethodGet, "/staff", nil), "deleted-user")
	assert.Equal(t, nethttp.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	var cleared bool
	for _, cookie := range resp.Cookies() {
		if cookie.Name == auth.CookieName && cookie.Value == "" {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func TestStaffListNeverExposesPasswords(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, httptest.NewRequest(nethttp.MethodGet, "/staff", nil), "staff")
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotContains(t, strings.ToLower(string(raw)), "password")
	assert.Contains(t, string(raw), "ada@example.org")
}

func TestCreateStaffDuplicateEmail(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, formRequest(nethttp.MethodPost, "/staff", url.Values{
		"name": {"Ada 2"}, "email": {"ADA@example.org"}, "role": {"STAFF"}, "password": {"longenough"},
	}), "admin")
	require.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	errs := decodeBody(t, resp)["errors"].([]any)
	assert.Equal(t, "email", errs[0].(map[string]any)["path"])
}

func TestLoginFlow(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, formRequest(nethttp.MethodPost, "/login", url.Values{
		"email": {"ada@example.org"}, "password": {"wrong"},
	}), "")
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, map[string]any{"error": "Invalid email or password"}, decodeBody(t, resp))

	resp = s.do(t, formRequest(nethttp.MethodPost, "/login", url.Values{"email": {"ada@example.org"}}), "")
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, map[string]any{"error": "Invalid form submission"}, decodeBody(t, resp))

	resp = s.do(t, formRequest(nethttp.MethodPost, "/login", url.Values{
		"email": {"ada@example.org"}, "password": {"password123"}, "redirectTo": {"https://evil.example"},
	}), "")
	assert.Equal(t, nethttp.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	var session *nethttp.Cookie
	for _, cookie := range resp.Cookies() {
		if cookie.Name == auth.CookieName {
			session = cookie
		}
	}
	require.NotNil(t, session)

	req := httptest.NewRequest(nethttp.MethodGet, "/login", nil)
	req.AddCookie(session)
	resp, err := s.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	resp = s.do(t, httptest.NewRequest(nethttp.MethodPost, "/logout", nil), "admin")
	assert.Equal(t, nethttp.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestIndex(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, httptest.NewRequest(nethttp.MethodGet, "/", nil), "")
	assert.Equal(t, map[string]any{"user": nil}, decodeBody(t, resp))

	resp = s.do(t, httptest.NewRequest(nethttp.MethodGet, "/", nil), "admin")
	user := decodeBody(t, resp)["user"].(map[string]any)
	assert.Equal(t, "ADMIN", user["role"])
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, httptest.NewRequest(nethttp.MethodGet, "/nope", nil), "")
	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
	assert.Equal(t, map[string]any{"error": "Not Found"}, decodeBody(t, resp))
}

func TestIndexWhenUserLookupFails(t *testing.T) {
	s := newTestServer(t)
	value, _, err := s.codec.Encode("staff")
	require.NoError(t, err)
	s.store.Err = errors.New("connection reset")

	req := httptest.NewRequest(nethttp.MethodGet, "/", nil)
	req.AddCookie(&nethttp.Cookie{Name: auth.CookieName, Value: value})
	resp, err := s.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]any{"user": nil}, decodeBody(t, resp))
}

func TestUnexpectedErrorsAreGeneric(t *testing.T) {
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), 0)
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("relation \"teams\" does not exist")
	})
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("boom")
	})

	resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, map[string]any{"error": "An unexpected error occurred"}, decodeBody(t, resp))

	resp, err = app.Test(httptest.NewRequest(nethttp.MethodGet, "/panic", nil))
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusInternalServerError, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, httptest.NewRequest(nethttp.MethodGet, "/health/live", nil), "")
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)

	resp = s.do(t, httptest.NewRequest(nethttp.MethodGet, "/health/ready", nil), "")
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	deps := decodeBody(t, resp)["dependencies"].(map[string]any)
	assert.Equal(t, "ok", deps["postgres"])
	assert.Equal(t, "disabled", deps["redis"])
}
