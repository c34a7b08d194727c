package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/kemetlearn/kemet_service/internal/client"
)

func TestProxyRequiresText(t *testing.T) {
	h := NewTTSHandler(zerolog.Nop(), client.NewGoogleTTSClient("http://localhost:0"))

	req := httptest.NewRequest("GET", "/api/v1/tts", nil)
	rec := httptest.NewRecorder()
	h.Proxy(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without text, got %d", rec.Code)
	}
}

func TestProxyStreamsUpstreamAudio(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "hello" {
			t.Errorf("unexpected upstream text: %q", got)
		}
		w.Write([]byte("mp3-bytes"))
	}))
	defer upstream.Close()

	h := NewTTSHandler(zerolog.Nop(), client.NewGoogleTTSClient(upstream.URL))

	req := httptest.NewRequest("GET", "/api/v1/tts?text=hello", nil)
	rec := httptest.NewRecorder()
	h.Proxy(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "audio/mpeg" {
		t.Errorf("unexpected content type: %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("missing CORS header, got %q", got)
	}
	if rec.Body.String() != "mp3-bytes" {
		t.Errorf("body not streamed through: %q", rec.Body.String())
	}
}

func TestProxyUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer upstream.Close()

	h := NewTTSHandler(zerolog.Nop(), client.NewGoogleTTSClient(upstream.URL))

	req := httptest.NewRequest("GET", "/api/v1/tts?text=hello", nil)
	rec := httptest.NewRecorder()
	h.Proxy(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 on upstream failure, got %d", rec.Code)
	}
}
