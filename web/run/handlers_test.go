package webapp

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bkinbkin/MinecraftStatFileAnalyzer/models"
)

func setupTestWebApp(t *testing.T) *WebApp {
	t.Helper()

	cfg := &models.AppConfig{
		Report: models.ReportConfig{
			TargetStat: "minecraft:lantern",
			GroupLimit: 1000,
		},
		Server: models.ServerConfig{Port: 8080},
	}

	records := []models.FlatRecord{
		{World: "world1", Player: "uuid-a", Category: "minecraft:custom", Item: "minecraft:lantern", Value: 7, Path: "/saves/world1/stats/uuid-a.json"},
		{World: "world2", Player: "uuid-b", Category: "minecraft:custom", Item: "minecraft:lantern", Value: 3, Path: "/saves/world2/stats/uuid-b.json"},
		{World: "world1", Player: "uuid-a", Category: "minecraft:mined", Item: "minecraft:stone", Value: 120, Path: "/saves/world1/stats/uuid-a.json"},
	}

	return &WebApp{AppConfig: cfg, Records: records}
}

func get(t *testing.T, handler http.Handler, target string) (*http.Response, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	res := rec.Result()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	res.Body.Close()
	return res, string(body)
}

func TestReportHandler(t *testing.T) {
	webapp := setupTestWebApp(t)
	router := webapp.GetRouter()

	t.Run("default stat", func(t *testing.T) {
		res, body := get(t, router, "/report")
		if res.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", res.StatusCode)
		}
		if !strings.Contains(body, "=== minecraft:custom ===") {
			t.Errorf("missing group header:\n%s", body)
		}
		if !strings.Contains(body, "Total matching records: 2") {
			t.Errorf("missing total line:\n%s", body)
		}
		// Value ordering survives the HTTP path.
		if a, b := strings.Index(body, "uuid-a"), strings.Index(body, "uuid-b"); a < 0 || b < 0 || a > b {
			t.Errorf("rows out of order:\n%s", body)
		}
	})

	t.Run("stat override", func(t *testing.T) {
		res, body := get(t, router, "/report?stat=minecraft:stone")
		if res.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", res.StatusCode)
		}
		if !strings.Contains(body, "=== minecraft:mined ===") {
			t.Errorf("missing group header:\n%s", body)
		}
		if !strings.Contains(body, "Total matching records: 1") {
			t.Errorf("missing total line:\n%s", body)
		}
	})

	t.Run("unknown stat yields empty report", func(t *testing.T) {
		res, body := get(t, router, "/report?stat=minecraft:nothing")
		if res.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", res.StatusCode)
		}
		if !strings.Contains(body, "Total matching records: 0") {
			t.Errorf("missing zero total:\n%s", body)
		}
	})
}

func TestStartPage(t *testing.T) {
	webapp := setupTestWebApp(t)

	res, body := get(t, webapp.GetRouter(), "/")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", res.StatusCode)
	}
	if !strings.Contains(body, "3 flat records loaded") {
		t.Errorf("missing record count:\n%s", body)
	}
}

func TestHealthz(t *testing.T) {
	webapp := setupTestWebApp(t)

	res, body := get(t, webapp.GetRouter(), "/healthz")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", res.StatusCode)
	}
	if !strings.Contains(body, "ok") {
		t.Errorf("unexpected body: %q", body)
	}
}

func TestNotFound(t *testing.T) {
	webapp := setupTestWebApp(t)

	res, body := get(t, webapp.GetRouter(), "/nope")
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", res.StatusCode)
	}
	if !strings.Contains(body, "404 Not Found") {
		t.Errorf("unexpected body: %q", body)
	}
}
