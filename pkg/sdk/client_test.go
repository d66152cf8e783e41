package sdk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNew_InvalidBaseURL(t *testing.T) {
	if _, err := New("not a url"); err == nil {
		t.Error("expected error for relative base URL")
	}
	if _, err := New(""); err == nil {
		t.Error("expected error for empty base URL")
	}
}

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/search/keyword" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("method = %q", r.Method)
		}

		var body searchRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body.Query != "diamond ring" || body.TopK != 5 {
			t.Errorf("request = %+v", body)
		}

		_ = json.NewEncoder(w).Encode(SearchResponse{
			Results: []SearchResult{{ID: "001", Name: "Diamond Solitaire Ring", Score: 1.0}},
			Query:   "diamond ring",
			Method:  "keyword",
		})
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	resp, err := c.Search(context.Background(), Keyword, "diamond ring", 5)
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(resp.Results) != 1 || resp.Results[0].ID != "001" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestSearch_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":"unknown_method","message":"unknown search method"}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	_, err = c.Search(context.Background(), Method("hybrid"), "ring", 0)
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest || apiErr.Code != "unknown_method" {
		t.Errorf("apiErr = %+v", apiErr)
	}
}

func TestSearch_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("Authorization = %q", got)
		}
		_ = json.NewEncoder(w).Encode(SearchResponse{})
	}))
	defer srv.Close()

	c, err := New(srv.URL, WithAPIKey("secret"))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if _, err := c.Search(context.Background(), Keyword, "ring", 0); err != nil {
		t.Fatalf("Search() error: %v", err)
	}
}

func TestSearchAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"keyword":          SearchResponse{Method: "keyword"},
			"fuzzy":            SearchResponse{Method: "fuzzy"},
			"semantic":         SearchResponse{Method: "semantic", RewrittenQuery: "band gold ring"},
			"total_latency_ms": 1.23,
		})
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	out, err := c.SearchAll(context.Background(), "gold ring", 0)
	if err != nil {
		t.Fatalf("SearchAll() error: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("len(out) = %d, want 3", len(out))
	}
	if out[Semantic].RewrittenQuery != "band gold ring" {
		t.Errorf("semantic section = %+v", out[Semantic])
	}
}

func TestSearchAudio(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/search/fuzzy/audio" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if _, _, err := r.FormFile("audio"); err != nil {
			t.Errorf("audio field missing: %v", err)
		}
		_ = json.NewEncoder(w).Encode(SearchResponse{Transcription: "gold necklace"})
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	resp, err := c.SearchAudio(context.Background(), Fuzzy, []byte{0x01})
	if err != nil {
		t.Fatalf("SearchAudio() error: %v", err)
	}
	if resp.Transcription != "gold necklace" {
		t.Errorf("transcription = %q", resp.Transcription)
	}
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(HealthStatus{
			Status: "ok",
			Checks: map[string]string{"index": "ok"},
		})
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	status, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("Health() error: %v", err)
	}
	if status.Status != "ok" || status.Checks["index"] != "ok" {
		t.Errorf("status = %+v", status)
	}
}
