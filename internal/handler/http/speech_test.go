package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/kemetlearn/kemet_service/internal/service"
	"github.com/kemetlearn/kemet_service/internal/store"
)

func newSpeechHandler() *SpeechHandler {
	svc := service.NewSpeechService(zerolog.Nop(), nil, nil, store.NewMemoryStore())
	return NewSpeechHandler(zerolog.Nop(), svc)
}

func TestResolveRequiresText(t *testing.T) {
	h := newSpeechHandler()

	req := httptest.NewRequest("POST", "/speech/resolve", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.Resolve(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without text, got %d", rec.Code)
	}
}

func TestResolveLongSentence(t *testing.T) {
	h := newSpeechHandler()

	req := httptest.NewRequest("POST", "/speech/resolve",
		strings.NewReader(`{"text":"this long sentence has many tokens in it"}`))
	rec := httptest.NewRecorder()
	h.Resolve(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Data service.Resolution `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !body.Data.Synthetic {
		t.Errorf("expected synthetic resolution, got %+v", body.Data)
	}
	if body.Data.Rate != 0.9 || body.Data.Pitch != 1.0 {
		t.Errorf("default rate and pitch not applied: %+v", body.Data)
	}
}

func TestPrefsRoundTrip(t *testing.T) {
	h := newSpeechHandler()

	req := httptest.NewRequest("PUT", "/speech/prefs",
		strings.NewReader(`{"rate":1.5,"pitch":1.2,"accent":"uk"}`))
	rec := httptest.NewRecorder()
	h.PutPrefs(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	req = httptest.NewRequest("GET", "/speech/prefs", nil)
	rec = httptest.NewRecorder()
	h.GetPrefs(rec, req)

	var body struct {
		Data service.VoicePrefs `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Data.Rate != 1.5 || body.Data.Pitch != 1.2 || body.Data.Accent != "uk" {
		t.Errorf("prefs not applied: %+v", body.Data)
	}
}
