package ws

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"

	"github.com/kemetlearn/kemet_service/internal/service"
	"github.com/kemetlearn/kemet_service/internal/store"
)

func newTestHandler() (*Handler, *service.SpeechService) {
	svc := service.NewSpeechService(zerolog.Nop(), nil, nil, store.NewMemoryStore())
	return NewHandler(zerolog.Nop(), svc), svc
}

func TestHandlePing(t *testing.T) {
	h, _ := newTestHandler()

	data, err := h.Handle(context.Background(), "c1", TypePing, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if resp.Type != TypePong {
		t.Errorf("expected pong, got %q", resp.Type)
	}
}

func TestHandleSpeakStartsStream(t *testing.T) {
	h, svc := newTestHandler()

	data, err := h.Handle(context.Background(), "c1", TypeSpeak, json.RawMessage(`{"text":"hello"}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if data == nil {
		t.Fatal("expected a direct reply with the resolution")
	}
	if !svc.IsSpeaking() {
		t.Error("expected playing state after speak")
	}

	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if resp.Type != TypeSpeak {
		t.Errorf("expected speak reply, got %q", resp.Type)
	}
}

func TestHandleSpeakToggle(t *testing.T) {
	h, svc := newTestHandler()
	ctx := context.Background()

	if _, err := h.Handle(ctx, "c1", TypeSpeak, json.RawMessage(`{"text":"hello"}`)); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	data, err := h.Handle(ctx, "c1", TypeSpeak, json.RawMessage(`{"text":"hello"}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if data != nil {
		t.Errorf("toggle must not produce a direct reply, got %s", data)
	}
	if svc.IsSpeaking() {
		t.Error("expected idle after toggle")
	}
}

func TestHandleStopAndEnded(t *testing.T) {
	h, svc := newTestHandler()
	ctx := context.Background()

	if _, err := h.Handle(ctx, "c1", TypeSpeak, json.RawMessage(`{"text":"hello"}`)); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := h.Handle(ctx, "c1", TypeStop, nil); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if svc.IsSpeaking() {
		t.Error("expected idle after stop")
	}

	if _, err := h.Handle(ctx, "c1", TypeSpeak, json.RawMessage(`{"text":"water"}`)); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := h.Handle(ctx, "c1", TypeEnded, nil); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if svc.IsSpeaking() {
		t.Error("expected idle after playback ended")
	}
}

func TestHandleRejectsMissingText(t *testing.T) {
	h, _ := newTestHandler()

	data, err := h.Handle(context.Background(), "c1", TypeSpeak, json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if resp.Type != TypeError {
		t.Errorf("expected error reply, got %q", resp.Type)
	}
}

func TestHandleUnknownType(t *testing.T) {
	h, _ := newTestHandler()

	data, err := h.Handle(context.Background(), "c1", "bogus", nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if resp.Type != TypeError {
		t.Errorf("expected error reply, got %q", resp.Type)
	}
}
