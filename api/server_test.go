package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/seenimoa/adlens/internal/config"
	"github.com/seenimoa/adlens/internal/engine"
	"github.com/seenimoa/adlens/internal/infra"
	"github.com/seenimoa/adlens/internal/lexicon"
	"github.com/seenimoa/adlens/pkg/models"
)

// ════════════════════════════════════════════════════════════════════
// Test Helpers
// ════════════════════════════════════════════════════════════════════

func testServer(t *testing.T, mutate ...func(*config.Config)) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.API.RateLimitRPS = 0
	for _, m := range mutate {
		m(cfg)
	}
	return NewServer(cfg, engine.New(), nil)
}

func do(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if data != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, data); err != nil {
			t.Fatalf("failed to decode data: %v", err)
		}
	}
	return env
}

type recordView struct {
	AdID    string `json:"ad_id"`
	Text    string `json:"text"`
	Overall struct {
		Sentiment string `json:"sentiment"`
	} `json:"overall"`
}

const trustCopy = "Join 10,000 happy customers who trust our award-winning service."

// ════════════════════════════════════════════════════════════════════
// Introspection endpoints
// ════════════════════════════════════════════════════════════════════

func TestHandleHealth(t *testing.T) {
	srv := testServer(t)
	for _, path := range []string{"/health", "/api/v1/health"} {
		rec := do(t, srv, http.MethodGet, path, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status got %d, want %d", path, rec.Code, http.StatusOK)
		}
		var data map[string]interface{}
		resp := decodeResponse(t, rec, &data)
		if !resp.Success {
			t.Errorf("%s: expected success", path)
		}
		if data["status"] != "ok" {
			t.Errorf("%s: status got %v, want ok", path, data["status"])
		}
		if data["version"] != engine.Version {
			t.Errorf("%s: version got %v, want %s", path, data["version"], engine.Version)
		}
	}
}

func TestHandleLexicon(t *testing.T) {
	rec := do(t, testServer(t), http.MethodGet, "/api/v1/lexicon", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	var info LexiconInfo
	decodeResponse(t, rec, &info)
	if info.Version != lexicon.Version {
		t.Errorf("Version: got %q, want %q", info.Version, lexicon.Version)
	}
	if len(info.Tables) == 0 {
		t.Error("Tables should not be empty")
	}
}

func TestHandleGetConfig(t *testing.T) {
	rec := do(t, testServer(t), http.MethodGet, "/api/v1/config", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	var data ConfigResponse
	decodeResponse(t, rec, &data)
	if data.Config == nil || data.Config.API.MaxBatch != 100 {
		t.Errorf("Config: got %+v", data.Config)
	}
	if len(data.Settings) == 0 {
		t.Error("Settings should not be empty")
	}
}

// ════════════════════════════════════════════════════════════════════
// POST /api/v1/analyze
// ════════════════════════════════════════════════════════════════════

func TestHandleAnalyze_InvalidJSON(t *testing.T) {
	rec := do(t, testServer(t), http.MethodPost, "/api/v1/analyze", "{not json")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
	resp := decodeResponse(t, rec, nil)
	if resp.Success || resp.Error != "invalid request body" {
		t.Errorf("response: got %+v", resp)
	}
}

func TestHandleAnalyze_EmptyText(t *testing.T) {
	rec := do(t, testServer(t), http.MethodPost, "/api/v1/analyze", `{"text":"   "}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if resp := decodeResponse(t, rec, nil); resp.Error != errEmptyText.Error() {
		t.Errorf("Error: got %q, want %q", resp.Error, errEmptyText.Error())
	}
}

func TestHandleAnalyze_Cached(t *testing.T) {
	srv := testServer(t)
	body := `{"text":"` + trustCopy + `"}`

	first := do(t, srv, http.MethodPost, "/api/v1/analyze", body)
	if first.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", first.Code, http.StatusOK)
	}
	if got := first.Header().Get("X-Cache"); got != "MISS" {
		t.Errorf("first X-Cache: got %q, want MISS", got)
	}
	var rec recordView
	decodeResponse(t, first, &rec)
	if rec.Text != trustCopy {
		t.Errorf("Text: got %q, want %q", rec.Text, trustCopy)
	}
	if rec.Overall.Sentiment == "" {
		t.Error("Overall.Sentiment should be set")
	}

	second := do(t, srv, http.MethodPost, "/api/v1/analyze", body)
	if got := second.Header().Get("X-Cache"); got != "HIT" {
		t.Errorf("second X-Cache: got %q, want HIT", got)
	}
	if srv.cache.Len() != 1 {
		t.Errorf("cache entries: got %d, want 1", srv.cache.Len())
	}
}

func TestHandleAnalyze_CacheDisabled(t *testing.T) {
	srv := testServer(t, func(c *config.Config) { c.Analysis.CacheTTL = 0 })
	rec := do(t, srv, http.MethodPost, "/api/v1/analyze", `{"text":"`+trustCopy+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("X-Cache"); got != "" {
		t.Errorf("X-Cache: got %q, want none", got)
	}
}

func TestHandleAnalyze_BodyTooLarge(t *testing.T) {
	srv := testServer(t, func(c *config.Config) { c.API.MaxBodyBytes = 16 })
	rec := do(t, srv, http.MethodPost, "/api/v1/analyze", `{"text":"`+trustCopy+`"}`)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusRequestEntityTooLarge)
	}
}

func TestRateLimit(t *testing.T) {
	srv := testServer(t, func(c *config.Config) {
		c.API.RateLimitRPS = 0.001
		c.API.RateLimitBurst = 1
	})
	body := `{"text":"` + trustCopy + `"}`

	if rec := do(t, srv, http.MethodPost, "/api/v1/analyze", body); rec.Code != http.StatusOK {
		t.Fatalf("first request: got %d, want %d", rec.Code, http.StatusOK)
	}
	rec := do(t, srv, http.MethodPost, "/api/v1/analyze", body)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("second request: got %d, want %d", rec.Code, http.StatusTooManyRequests)
	}
	// Introspection is not rate limited.
	if rec := do(t, srv, http.MethodGet, "/api/v1/health", ""); rec.Code != http.StatusOK {
		t.Errorf("health: got %d, want %d", rec.Code, http.StatusOK)
	}
}

// ════════════════════════════════════════════════════════════════════
// Ad, batch and competitor endpoints
// ════════════════════════════════════════════════════════════════════

func TestHandleAnalyzeAd(t *testing.T) {
	srv := testServer(t)

	rec := do(t, srv, http.MethodPost, "/api/v1/analyze/ad",
		`{"ad":{"id":"ad-1","primary_text":"`+trustCopy+`","call_to_action":"Shop now"}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	var got recordView
	decodeResponse(t, rec, &got)
	if got.AdID != "ad-1" {
		t.Errorf("AdID: got %q, want %q", got.AdID, "ad-1")
	}
	if want := trustCopy + " Shop now"; got.Text != want {
		t.Errorf("Text: got %q, want %q", got.Text, want)
	}

	rec = do(t, srv, http.MethodPost, "/api/v1/analyze/ad", `{"ad":{"id":"blank"}}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("blank ad: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleAnalyzeBatch(t *testing.T) {
	srv := testServer(t, func(c *config.Config) { c.API.MaxBatch = 2 })

	tests := []struct {
		name   string
		body   string
		status int
		ids    []string
	}{
		{
			name:   "ordered",
			body:   `{"ads":[{"id":"b","primary_text":"Only 3 left! Order now."},{"id":"a","primary_text":"` + trustCopy + `"}]}`,
			status: http.StatusOK,
			ids:    []string{"b", "a"},
		},
		{
			name:   "blank ad kept",
			body:   `{"ads":[{"id":"a","primary_text":"` + trustCopy + `"},{"id":"blank","primary_text":"   "}]}`,
			status: http.StatusOK,
			ids:    []string{"a", "blank"},
		},
		{name: "empty", body: `{"ads":[]}`, status: http.StatusBadRequest},
		{name: "all blank", body: `{"ads":[{"id":"x","headline":"  "}]}`, status: http.StatusBadRequest},
		{
			name:   "too many",
			body:   `{"ads":[{"primary_text":"one"},{"primary_text":"two"},{"primary_text":"three"}]}`,
			status: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, srv, http.MethodPost, "/api/v1/analyze/batch", tt.body)
			if rec.Code != tt.status {
				t.Fatalf("status: got %d, want %d", rec.Code, tt.status)
			}
			var records []recordView
			resp := decodeResponse(t, rec, &records)
			if tt.status != http.StatusOK {
				if resp.Success || resp.Error == "" {
					t.Errorf("expected an error response, got %+v", resp)
				}
				return
			}
			if len(records) != len(tt.ids) {
				t.Fatalf("records: got %d, want %d", len(records), len(tt.ids))
			}
			for i, id := range tt.ids {
				if records[i].AdID != id {
					t.Errorf("records[%d].AdID: got %q, want %q", i, records[i].AdID, id)
				}
			}
		})
	}
}

func TestHandleAnalyzeCompetitor(t *testing.T) {
	srv := testServer(t)

	rec := do(t, srv, http.MethodPost, "/api/v1/competitors/analyze",
		`{"ads":[{"primary_text":"`+trustCopy+`"}]}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing name: got %d, want %d", rec.Code, http.StatusBadRequest)
	}

	rec = do(t, srv, http.MethodPost, "/api/v1/competitors/analyze",
		`{"name":" Acme ","ads":[{"primary_text":"`+trustCopy+`"},{"primary_text":"Only 3 left! Order now before it is gone."}]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	var data struct {
		Records []recordView `json:"records"`
		Summary struct {
			Competitor  string `json:"competitor"`
			AdsAnalyzed int    `json:"ads_analyzed"`
		} `json:"summary"`
	}
	decodeResponse(t, rec, &data)
	if data.Summary.Competitor != "Acme" {
		t.Errorf("Competitor: got %q, want %q", data.Summary.Competitor, "Acme")
	}
	if data.Summary.AdsAnalyzed != 2 || len(data.Records) != 2 {
		t.Errorf("ads: got %d summarized and %d records, want 2", data.Summary.AdsAnalyzed, len(data.Records))
	}

	rec = do(t, srv, http.MethodPost, "/api/v1/competitors/analyze",
		`{"name":"Acme","ads":[{"primary_text":"`+trustCopy+`"},{"primary_text":""}]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("with blank ad: got %d, want %d", rec.Code, http.StatusOK)
	}
	decodeResponse(t, rec, &data)
	if data.Summary.AdsAnalyzed != 2 || len(data.Records) != 2 {
		t.Errorf("with blank ad: got %d summarized and %d records, want 2", data.Summary.AdsAnalyzed, len(data.Records))
	}
}

// ════════════════════════════════════════════════════════════════════
// Middleware and helpers
// ════════════════════════════════════════════════════════════════════

func TestSweepCacheDropsExpired(t *testing.T) {
	srv := testServer(t)
	srv.cache = infra.NewCache[models.AnalysisRecord](time.Nanosecond, 0)
	srv.cache.Set("stale", models.AnalysisRecord{Text: "stale"})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.sweepCache(ctx, time.Millisecond)
		close(done)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for srv.cache.Len() != 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	cancel()
	<-done
	if n := srv.cache.Len(); n != 0 {
		t.Errorf("Len after sweep: got %d, want 0", n)
	}
}

func TestCORSPreflight(t *testing.T) {
	srv := testServer(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/analyze", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Access-Control-Allow-Origin: got %q", got)
	}
}

func TestCacheKeyStable(t *testing.T) {
	if cacheKey("same text") != cacheKey("same text") {
		t.Error("cacheKey should be deterministic")
	}
	if cacheKey("one") == cacheKey("two") {
		t.Error("cacheKey should differ for different text")
	}
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusCreated, APIResponse{Success: true, Data: "ok"})

	if rec.Code != http.StatusCreated {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusCreated)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q", ct)
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, http.StatusBadRequest, "bad input")

	resp := decodeResponse(t, rec, nil)
	if resp.Success {
		t.Error("expected success=false")
	}
	if resp.Error != "bad input" {
		t.Errorf("Error: got %q, want %q", resp.Error, "bad input")
	}
}
