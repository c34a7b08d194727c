package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/kemetlearn/kemet_service/internal/middleware"
	"github.com/kemetlearn/kemet_service/internal/service"
	"github.com/kemetlearn/kemet_service/internal/store"
	"github.com/kemetlearn/kemet_service/internal/words"
)

func progressRouter(kv store.KV) *chi.Mux {
	h := NewProgressHandler(zerolog.Nop(), service.NewProgressService(kv), words.NewStore())
	r := chi.NewRouter()
	r.Use(middleware.Identity(service.NewAuthService(kv)))
	r.Get("/progress", h.Get)
	r.Post("/progress", h.Mark)
	r.Delete("/progress/{day}", h.Unmark)
	return r
}

func TestMarkAndGetProgress(t *testing.T) {
	r := progressRouter(store.NewMemoryStore())

	req := httptest.NewRequest("POST", "/progress", strings.NewReader(`{"day":1}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 marking day, got %d", rec.Code)
	}

	req = httptest.NewRequest("GET", "/progress", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Data struct {
			CompletedDays []int   `json:"completed_days"`
			Percent       float64 `json:"percent"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body.Data.CompletedDays) != 1 || body.Data.CompletedDays[0] != 1 {
		t.Errorf("unexpected completed days: %v", body.Data.CompletedDays)
	}
	if body.Data.Percent != 25 {
		t.Errorf("expected 25%% over 4 days, got %v", body.Data.Percent)
	}
}

func TestMarkUnknownDay(t *testing.T) {
	r := progressRouter(store.NewMemoryStore())

	req := httptest.NewRequest("POST", "/progress", strings.NewReader(`{"day":42}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown day, got %d", rec.Code)
	}
}

func TestUnmarkDayEndpoint(t *testing.T) {
	kv := store.NewMemoryStore()
	r := progressRouter(kv)

	req := httptest.NewRequest("POST", "/progress", strings.NewReader(`{"day":2}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	req = httptest.NewRequest("DELETE", "/progress/2", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	req = httptest.NewRequest("GET", "/progress", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var body struct {
		Data struct {
			CompletedDays []int `json:"completed_days"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body.Data.CompletedDays) != 0 {
		t.Errorf("expected empty set after unmark, got %v", body.Data.CompletedDays)
	}
}

func TestProgressFollowsSessionIdentity(t *testing.T) {
	kv := store.NewMemoryStore()
	authService := service.NewAuthService(kv)
	r := progressRouter(kv)

	session, err := authService.Login(context.Background(), "learner@example.com")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// Mark a day as the logged-in user.
	req := httptest.NewRequest("POST", "/progress", strings.NewReader(`{"day":1}`))
	req.Header.Set("Authorization", "Bearer "+session.Token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	// The guest record stays empty.
	req = httptest.NewRequest("GET", "/progress", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var body struct {
		Data struct {
			CompletedDays []int `json:"completed_days"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body.Data.CompletedDays) != 0 {
		t.Errorf("guest record leaked user progress: %v", body.Data.CompletedDays)
	}
}
