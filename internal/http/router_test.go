package http

import (
	"bytes"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/agencyhub-backend/internal/data/memstore"
	httpH "github.com/yungbote/agencyhub-backend/internal/http/handlers"
	httpMW "github.com/yungbote/agencyhub-backend/internal/http/middleware"
	"github.com/yungbote/agencyhub-backend/internal/platform/logger"
	"github.com/yungbote/agencyhub-backend/internal/services"
)

const testSecret = "router-test-secret"

type apiClient struct {
	t      *testing.T
	engine *gin.Engine
	token  string
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logger.Nop()
	st := memstore.New(log)
	rec := services.NewActivityRecorder(services.MoneyFormat{Locale: "en-US", Symbol: "$"}, log)
	clients := services.NewClientService(st, rec, nil, log)
	projects := services.NewProjectService(st, rec, nil, log)
	payments := services.NewPaymentService(st, rec, nil, log)
	return NewRouter(RouterConfig{
		Log:              log,
		AuthMiddleware:   httpMW.NewAuthMiddleware(log, testSecret),
		ClientHandler:    httpH.NewClientHandler(log, clients, projects, payments),
		ProjectHandler:   httpH.NewProjectHandler(log, clients, projects, payments),
		PaymentHandler:   httpH.NewPaymentHandler(log, clients, projects, payments),
		ActivityHandler:  httpH.NewActivityHandler(log, services.NewActivityService(st, 0, log)),
		DashboardHandler: httpH.NewDashboardHandler(log, services.NewDashboardService(st, time.UTC, nil, log)),
		HealthHandler:    httpH.NewHealthHandler(st),
	})
}

func asOwner(t *testing.T, engine *gin.Engine, owner string) *apiClient {
	t.Helper()
	token, err := httpMW.SignOwnerToken(testSecret, owner, time.Hour)
	if err != nil {
		t.Fatalf("SignOwnerToken: %v", err)
	}
	return &apiClient{t: t, engine: engine, token: token}
}

func (a *apiClient) do(method, path string, body any, out any) int {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			a.t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	rec := httptest.NewRecorder()
	a.engine.ServeHTTP(rec, req)
	if out != nil && rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			a.t.Fatalf("decode %s %s: %v (body=%s)", method, path, err, rec.Body.String())
		}
	}
	return rec.Code
}

type errorBody struct {
	Error struct {
		Code string `json:"code"`
	} `json:"error"`
}

func TestHealthcheckIsPublic(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(nethttp.MethodGet, "/healthcheck", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != nethttp.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("healthcheck: %d %q", rec.Code, rec.Body.String())
	}
}

func TestAPIRequiresToken(t *testing.T) {
	r := newTestRouter(t)
	anon := &apiClient{t: t, engine: r}
	if code := anon.do(nethttp.MethodGet, "/api/clients", nil, nil); code != nethttp.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestClientLifecycle(t *testing.T) {
	r := newTestRouter(t)
	api := asOwner(t, r, "owner-a")

	var client map[string]any
	code := api.do(nethttp.MethodPost, "/api/clients", map[string]any{
		"name":             "Acme",
		"email":            "hello@acme.io",
		"company":          "Acme Inc",
		"service_category": "custom",
		"custom_service":   "Podcast editing",
	}, &client)
	if code != nethttp.StatusCreated {
		t.Fatalf("create client: %d %v", code, client)
	}
	id := int64(client["id"].(float64))
	if client["status"] != "active" || client["custom_service"] != "Podcast editing" {
		t.Fatalf("unexpected client: %v", client)
	}

	var eb errorBody
	if code := api.do(nethttp.MethodPost, "/api/clients", map[string]any{"name": "x", "email": "nope", "company": "x"}, &eb); code != nethttp.StatusBadRequest || eb.Error.Code != "invalid_client_data" {
		t.Fatalf("invalid email: %d %+v", code, eb)
	}

	var patched map[string]any
	if code := api.do(nethttp.MethodPatch, "/api/clients/"+itoa(id), map[string]any{"phone": "555-0101"}, &patched); code != nethttp.StatusOK {
		t.Fatalf("patch client: %d", code)
	}
	if patched["phone"] != "555-0101" || patched["name"] != "Acme" {
		t.Fatalf("patch merged wrong: %v", patched)
	}

	var project map[string]any
	if code := api.do(nethttp.MethodPost, "/api/projects", map[string]any{"name": "Site", "client_id": id, "budget": 1200}, &project); code != nethttp.StatusCreated {
		t.Fatalf("create project: %d %v", code, project)
	}
	if project["progress"].(float64) != 0 || project["status"] != "in_progress" {
		t.Fatalf("project defaults: %v", project)
	}

	var payment map[string]any
	if code := api.do(nethttp.MethodPost, "/api/payments", map[string]any{"client_id": id, "project_id": project["id"], "amount": 250}, &payment); code != nethttp.StatusCreated {
		t.Fatalf("create payment: %d %v", code, payment)
	}
	if payment["invoice_label"] == "" || payment["paid_date"] != nil {
		t.Fatalf("payment: %v", payment)
	}

	var paid map[string]any
	payPath := "/api/payments/" + itoa(int64(payment["id"].(float64)))
	if code := api.do(nethttp.MethodPatch, payPath, map[string]any{"status": "paid"}, &paid); code != nethttp.StatusOK {
		t.Fatalf("mark paid: %d", code)
	}
	if paid["paid_date"] == nil {
		t.Fatalf("paid_date not stamped: %v", paid)
	}

	var stats map[string]float64
	if code := api.do(nethttp.MethodGet, "/api/dashboard/stats", nil, &stats); code != nethttp.StatusOK {
		t.Fatalf("stats: %d", code)
	}
	if stats["active_clients"] != 1 || stats["active_projects"] != 1 || stats["monthly_revenue"] != 250 || stats["pending_invoices"] != 0 {
		t.Fatalf("stats: %v", stats)
	}

	if code := api.do(nethttp.MethodDelete, "/api/clients/"+itoa(id), nil, nil); code != nethttp.StatusNoContent {
		t.Fatalf("delete client: %d", code)
	}
	if code := api.do(nethttp.MethodDelete, "/api/clients/"+itoa(id), nil, &eb); code != nethttp.StatusNotFound {
		t.Fatalf("delete twice: %d", code)
	}

	var feed []map[string]any
	if code := api.do(nethttp.MethodGet, "/api/activities?limit=3", nil, &feed); code != nethttp.StatusOK {
		t.Fatalf("activities: %d", code)
	}
	if len(feed) != 3 || feed[0]["type"] != "client_deleted" || feed[1]["type"] != "project_deleted" || feed[2]["type"] != "payment_deleted" {
		t.Fatalf("feed: %v", feed)
	}
}

func TestOwnersAreIsolated(t *testing.T) {
	r := newTestRouter(t)
	alice := asOwner(t, r, "alice")
	bob := asOwner(t, r, "bob")

	var client map[string]any
	if code := alice.do(nethttp.MethodPost, "/api/clients", map[string]any{"name": "Acme", "email": "a@acme.io", "company": "Acme"}, &client); code != nethttp.StatusCreated {
		t.Fatalf("create: %d", code)
	}
	path := "/api/clients/" + itoa(int64(client["id"].(float64)))

	var eb errorBody
	if code := bob.do(nethttp.MethodGet, path, nil, &eb); code != nethttp.StatusNotFound || eb.Error.Code != "client_not_found" {
		t.Fatalf("foreign get: %d %+v", code, eb)
	}
	if code := bob.do(nethttp.MethodDelete, path, nil, nil); code != nethttp.StatusNotFound {
		t.Fatalf("foreign delete: %d", code)
	}
	if code := bob.do(nethttp.MethodPost, "/api/projects", map[string]any{"name": "Steal", "client_id": client["id"]}, &eb); code != nethttp.StatusBadRequest || eb.Error.Code != "client_not_found" {
		t.Fatalf("foreign reference: %d %+v", code, eb)
	}

	var list []map[string]any
	if code := bob.do(nethttp.MethodGet, "/api/clients", nil, &list); code != nethttp.StatusOK || len(list) != 0 {
		t.Fatalf("bob sees %d clients", len(list))
	}
	var feed []map[string]any
	bob.do(nethttp.MethodGet, "/api/activities", nil, &feed)
	if len(feed) != 0 {
		t.Fatalf("bob sees %d activities", len(feed))
	}
}

func TestBadRequests(t *testing.T) {
	r := newTestRouter(t)
	api := asOwner(t, r, "owner-a")

	cases := []struct {
		method string
		path   string
		body   any
		code   string
	}{
		{nethttp.MethodGet, "/api/clients/abc", nil, "invalid_client_id"},
		{nethttp.MethodGet, "/api/projects/0", nil, "invalid_project_id"},
		{nethttp.MethodGet, "/api/activities?limit=abc", nil, "invalid_limit"},
		{nethttp.MethodPost, "/api/projects", map[string]any{"name": "Site", "client_id": 42}, "client_not_found"},
		{nethttp.MethodPost, "/api/projects", map[string]any{"name": "Site"}, "invalid_project_data"},
		{nethttp.MethodPost, "/api/payments", map[string]any{"client_id": 1}, "invalid_payment_data"},
	}
	for _, tc := range cases {
		var eb errorBody
		if code := api.do(tc.method, tc.path, tc.body, &eb); code != nethttp.StatusBadRequest || eb.Error.Code != tc.code {
			t.Fatalf("%s %s: want 400 %s, got %d %+v", tc.method, tc.path, tc.code, code, eb)
		}
	}
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }
