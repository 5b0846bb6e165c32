package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/LeeFlannery/dashboard-playground/internal/application/usecases"
	"github.com/LeeFlannery/dashboard-playground/internal/domain/entities"
	"github.com/LeeFlannery/dashboard-playground/internal/infrastructure/repository"
	"github.com/LeeFlannery/dashboard-playground/internal/interfaces/http/middleware"
)

var testNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T, limiter *middleware.RateLimiter) *fiber.App {
	t.Helper()
	uc := usecases.NewDashboardUseCase(repository.NewMemorySnapshotRepository(time.Minute), usecases.DashboardOptions{
		SnapshotTTL: time.Minute,
		Clock:       func() time.Time { return testNow },
	})
	app := fiber.New()
	SetupRoutes(app, uc, limiter)
	return app
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, []byte) {
	t.Helper()
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", req.Method, req.URL, err)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body failed: %v", err)
	}
	return resp, body
}

func decode(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("decode failed: %v (%s)", err, body)
	}
}

func TestHealth(t *testing.T) {
	app := newTestApp(t, nil)
	resp, body := doRequest(t, app, httptest.NewRequest("GET", "/health", nil))
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var payload map[string]string
	decode(t, body, &payload)
	if payload["status"] != "healthy" {
		t.Fatalf("unexpected health payload %v", payload)
	}
}

func TestSnapshotLifecycle(t *testing.T) {
	app := newTestApp(t, nil)

	resp, body := doRequest(t, app, httptest.NewRequest("POST", "/api/v1/snapshots?seed=42", nil))
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, body)
	}
	var created struct {
		Data entities.SnapshotInfo `json:"data"`
	}
	decode(t, body, &created)
	if created.Data.Seed != 42 || created.Data.Sessions != 100 {
		t.Fatalf("unexpected snapshot info %+v", created.Data)
	}

	resp, body = doRequest(t, app, httptest.NewRequest("GET", "/api/v1/snapshots/"+created.Data.ID, nil))
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}

	resp, _ = doRequest(t, app, httptest.NewRequest("GET", "/api/v1/snapshots/00000000-0000-4000-8000-000000000000", nil))
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown snapshot, got %d", resp.StatusCode)
	}
}

func TestDashboardETag(t *testing.T) {
	app := newTestApp(t, nil)

	resp, body := doRequest(t, app, httptest.NewRequest("GET", "/api/v1/dashboard?seed=7", nil))
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}
	etag := resp.Header.Get("ETag")
	if etag == "" {
		t.Fatal("expected ETag header")
	}

	var payload struct {
		Data entities.DashboardUnified `json:"data"`
	}
	decode(t, body, &payload)
	if payload.Data.SnapshotID == "" || len(payload.Data.Charts) != len(usecases.ChartNames()) {
		t.Fatalf("unexpected dashboard payload: id %q, %d charts", payload.Data.SnapshotID, len(payload.Data.Charts))
	}

	req := httptest.NewRequest("GET", "/api/v1/dashboard?snapshot_id="+payload.Data.SnapshotID, nil)
	req.Header.Set("If-None-Match", etag)
	resp, _ = doRequest(t, app, req)
	if resp.StatusCode != fiber.StatusNotModified {
		t.Fatalf("expected 304, got %d", resp.StatusCode)
	}
}

func TestChartEndpoint(t *testing.T) {
	app := newTestApp(t, nil)

	resp, body := doRequest(t, app, httptest.NewRequest("GET", "/api/v1/charts/funnel?seed=5", nil))
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}
	var payload struct {
		SnapshotID string                    `json:"snapshotId"`
		Chart      string                    `json:"chart"`
		Data       []entities.ChartDataPoint `json:"data"`
	}
	decode(t, body, &payload)
	if payload.Chart != "funnel" || len(payload.Data) != entities.FunnelTotalSteps {
		t.Fatalf("unexpected chart payload %+v", payload)
	}

	resp, _ = doRequest(t, app, httptest.NewRequest("GET", "/api/v1/charts/unknown?snapshot_id="+payload.SnapshotID, nil))
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown chart, got %d", resp.StatusCode)
	}

	resp, body = doRequest(t, app, httptest.NewRequest("GET", "/api/v1/charts", nil))
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 listing charts, got %d: %s", resp.StatusCode, body)
	}
}

func TestBadRequests(t *testing.T) {
	app := newTestApp(t, nil)

	paths := []string{
		"/api/v1/dashboard?seed=abc",
		"/api/v1/dashboard?snapshot_id=not-a-uuid",
		"/api/v1/dashboard?from=2024-13-01",
		"/api/v1/dashboard/summary?device_type=watch",
		"/api/v1/sessions?page=0",
		"/api/v1/users?limit=-1",
	}
	for _, path := range paths {
		resp, body := doRequest(t, app, httptest.NewRequest("GET", path, nil))
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d (%s)", path, resp.StatusCode, body)
			continue
		}
		var payload map[string]string
		decode(t, body, &payload)
		if payload["error"] == "" {
			t.Errorf("%s: missing error message", path)
		}
	}
}

func TestListingEndpoints(t *testing.T) {
	app := newTestApp(t, nil)

	resp, body := doRequest(t, app, httptest.NewRequest("GET", "/api/v1/conversions?seed=11&page=2&limit=500", nil))
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}
	var page usecases.Page[entities.Conversion]
	decode(t, body, &page)
	if page.Meta.Limit != usecases.MaxLimit || page.Meta.Page != 2 || page.Meta.Total != 200 || len(page.Items) != 100 {
		t.Fatalf("unexpected page meta %+v with %d items", page.Meta, len(page.Items))
	}

	resp, body = doRequest(t, app, httptest.NewRequest("GET", "/api/v1/users?snapshot_id="+page.SnapshotID+"&user_role=admin", nil))
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}
	var users usecases.Page[entities.User]
	decode(t, body, &users)
	for _, u := range users.Items {
		if u.Role != entities.RoleAdmin {
			t.Fatalf("user %s has role %s", u.ID, u.Role)
		}
	}

	resp, body = doRequest(t, app, httptest.NewRequest("GET", "/api/v1/sessions?snapshot_id="+page.SnapshotID+"&page=4611686018427387904", nil))
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for a page past the end, got %d: %s", resp.StatusCode, body)
	}
	var sessions usecases.Page[entities.Session]
	decode(t, body, &sessions)
	if len(sessions.Items) != 0 || sessions.Meta.HasNextPage {
		t.Fatalf("page past the end returned %d items, meta %+v", len(sessions.Items), sessions.Meta)
	}
}

func TestRateLimitedAPI(t *testing.T) {
	app := newTestApp(t, middleware.NewRateLimiter(1, 1))

	first, _ := doRequest(t, app, httptest.NewRequest("GET", "/api/v1/charts", nil))
	second, _ := doRequest(t, app, httptest.NewRequest("GET", "/api/v1/charts", nil))
	if first.StatusCode != fiber.StatusOK || second.StatusCode != fiber.StatusTooManyRequests {
		t.Fatalf("expected 200 then 429, got %d then %d", first.StatusCode, second.StatusCode)
	}

	health, _ := doRequest(t, app, httptest.NewRequest("GET", "/health", nil))
	if health.StatusCode != fiber.StatusOK {
		t.Fatalf("health should not be rate limited, got %d", health.StatusCode)
	}
}
