package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kemetlearn/kemet_service/internal/client"
	"github.com/kemetlearn/kemet_service/internal/errors"
)

// AudioHost stores synthesized audio bytes and returns a playable URL.
type AudioHost interface {
	UploadR2Object(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// GoogleTTSBackend synthesizes speech through the Google Translate TTS
// endpoint and hosts the MP3 bytes on object storage.
type GoogleTTSBackend struct {
	tts  *client.GoogleTTSClient
	host AudioHost
}

// NewGoogleTTSBackend creates the Google Translate TTS backend.
func NewGoogleTTSBackend(tts *client.GoogleTTSClient, host AudioHost) *GoogleTTSBackend {
	return &GoogleTTSBackend{tts: tts, host: host}
}

// ResolveAudio synthesizes text and returns a hosted URL.
func (b *GoogleTTSBackend) ResolveAudio(ctx context.Context, text string) (string, error) {
	if b.host == nil {
		return "", errors.New(errors.ErrSpeechService, "audio host not configured")
	}

	data, err := b.tts.Synthesize(ctx, text, "en")
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("audio/tts-%s.mp3", uuid.New().String()[:8])
	return b.host.UploadR2Object(ctx, key, data, "audio/mpeg")
}

// GeminiTTSBackend synthesizes speech through a Gemini TTS model and hosts
// the audio bytes on object storage.
type GeminiTTSBackend struct {
	gemini *client.GeminiClient
	host   AudioHost
}

// NewGeminiTTSBackend creates the Gemini TTS backend.
func NewGeminiTTSBackend(gemini *client.GeminiClient, host AudioHost) *GeminiTTSBackend {
	return &GeminiTTSBackend{gemini: gemini, host: host}
}

// ResolveAudio synthesizes text and returns a hosted URL.
func (b *GeminiTTSBackend) ResolveAudio(ctx context.Context, text string) (string, error) {
	if b.host == nil {
		return "", errors.New(errors.ErrSpeechService, "audio host not configured")
	}
	if b.gemini == nil {
		return "", errors.New(errors.ErrAIService, "Gemini client not configured")
	}

	data, err := b.gemini.GenerateSpeech(ctx, text)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("audio/tts-%s.pcm", uuid.New().String()[:8])
	return b.host.UploadR2Object(ctx, key, data, "audio/L16")
}
