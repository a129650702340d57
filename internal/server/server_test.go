package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/sunnyyao/crocheo-blog/pkg/pipeline"
	"github.com/sunnyyao/crocheo-blog/pkg/store"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	return New(Config{
		Logger: logger,
		Store:  store.NewMemoryStore(),
		Runner: pipeline.NewRunner(nil, nil, logger),
	})
}

func doJSON(t *testing.T, s *Server, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	var parsed map[string]any
	if ct := rec.Header().Get("Content-Type"); strings.Contains(ct, "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &parsed); err != nil {
			t.Fatalf("parse response %q: %v", rec.Body.String(), err)
		}
	}
	return rec, parsed
}

func createTestPattern(t *testing.T, s *Server) string {
	t.Helper()
	rec, body := doJSON(t, s, http.MethodPost, "/v1/patterns", `{"name":"blanket square","rounds":3}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}
	id, _ := body["id"].(string)
	if id == "" {
		t.Fatal("create response has no id")
	}
	return id
}

func TestHealthz(t *testing.T) {
	s := testServer(t)
	rec, body := doJSON(t, s, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %v", body["status"])
	}
	if rec.Header().Get(RequestIDHeader) == "" {
		t.Error("missing request id header")
	}
}

func TestCreatePattern(t *testing.T) {
	s := testServer(t)
	rec, body := doJSON(t, s, http.MethodPost, "/v1/patterns", `{"name":"coaster","rounds":2,"pitch":"proportional"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if body["name"] != "coaster" {
		t.Errorf("name = %v", body["name"])
	}
	if hash, _ := body["pattern_hash"].(string); hash == "" {
		t.Error("missing pattern_hash")
	}
}

func TestCreatePatternRejectsBadOptions(t *testing.T) {
	s := testServer(t)

	tests := []struct {
		name string
		body string
		code string
	}{
		{"bad pitch", `{"rounds":2,"pitch":"elastic"}`, "INVALID_PITCH"},
		{"bad palette", `{"rounds":2,"palette":"neon"}`, "INVALID_PALETTE"},
		{"malformed json", `{`, "INVALID_PARAMS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := doJSON(t, s, http.MethodPost, "/v1/patterns", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			errObj, _ := body["error"].(map[string]any)
			if errObj["code"] != tt.code {
				t.Errorf("code = %v, want %s", errObj["code"], tt.code)
			}
		})
	}
}

func TestGetPattern(t *testing.T) {
	s := testServer(t)
	id := createTestPattern(t, s)

	rec, body := doJSON(t, s, http.MethodGet, "/v1/patterns/"+id, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body["id"] != id {
		t.Errorf("id = %v, want %s", body["id"], id)
	}
}

func TestGetPatternNotFound(t *testing.T) {
	s := testServer(t)
	rec, body := doJSON(t, s, http.MethodGet, "/v1/patterns/no-such-id", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	errObj, _ := body["error"].(map[string]any)
	if errObj["code"] != "PATTERN_NOT_FOUND" {
		t.Errorf("code = %v", errObj["code"])
	}
}

func TestListPatterns(t *testing.T) {
	s := testServer(t)
	createTestPattern(t, s)
	createTestPattern(t, s)

	rec, body := doJSON(t, s, http.MethodGet, "/v1/patterns", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	patterns, _ := body["patterns"].([]any)
	if len(patterns) != 2 {
		t.Errorf("patterns = %d, want 2", len(patterns))
	}
}

func TestGetInstructions(t *testing.T) {
	s := testServer(t)
	id := createTestPattern(t, s)

	rec, body := doJSON(t, s, http.MethodGet, "/v1/patterns/"+id+"/instructions", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.HasPrefix(body["preamble"].(string), "Round 1:") {
		t.Errorf("preamble = %v", body["preamble"])
	}
	steps, _ := body["steps"].([]any)
	// 3 rounds compile to the foundation plus two worked rounds.
	if len(steps) != 2 {
		t.Errorf("steps = %d, want 2", len(steps))
	}
}

func TestGetChart(t *testing.T) {
	s := testServer(t)
	id := createTestPattern(t, s)

	req := httptest.NewRequest(http.MethodGet, "/v1/patterns/"+id+"/chart.svg?outline=true&palette=ocean", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("content type = %q", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "<svg") {
		t.Error("body is not an SVG document")
	}
}

func TestGetChartRejectsBadPalette(t *testing.T) {
	s := testServer(t)
	id := createTestPattern(t, s)

	rec, _ := doJSON(t, s, http.MethodGet, "/v1/patterns/"+id+"/chart.svg?palette=neon", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
