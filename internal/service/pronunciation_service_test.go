package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

type fakeTranscriber struct {
	transcript string
	err        error
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, audioData []byte, language string) (string, error) {
	return f.transcript, f.err
}

func TestHeuristicAssessEmptyAudio(t *testing.T) {
	a := NewHeuristicAssessor(zerolog.Nop(), &fakeTranscriber{transcript: "hello"})

	result := a.Assess(context.Background(), nil, "audio/wav", "hello")
	if result.Score != 0 {
		t.Errorf("expected score 0 for empty audio, got %v", result.Score)
	}
	if result.Message != msgMicUnavailable {
		t.Errorf("expected mic-unavailable message, got %q", result.Message)
	}
}

func TestHeuristicAssessTranscriberError(t *testing.T) {
	a := NewHeuristicAssessor(zerolog.Nop(), &fakeTranscriber{err: errors.New("service down")})

	result := a.Assess(context.Background(), []byte{1, 2, 3}, "audio/wav", "hello")
	if result.Score != 0 {
		t.Errorf("expected score 0 on transcription failure, got %v", result.Score)
	}
	if result.Message != msgRecognitionError {
		t.Errorf("expected recognition-error message, got %q", result.Message)
	}
}

func TestHeuristicAssessPerfectMatch(t *testing.T) {
	a := NewHeuristicAssessor(zerolog.Nop(), &fakeTranscriber{transcript: "Hello!"})

	result := a.Assess(context.Background(), []byte{1}, "audio/wav", "hello")
	if result.Score != 1.0 {
		t.Errorf("expected perfect score, got %v", result.Score)
	}
	if !strings.Contains(result.Message, "ممتاز") {
		t.Errorf("expected excellent-tier message, got %q", result.Message)
	}
}

func TestHeuristicAssessTiers(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		transcript string
		minScore   float64
		maxScore   float64
	}{
		// "hello" vs "hellp": distance 1 over length 5 = 0.8.
		{"close attempt", "hello", "hellp", 0.7, 0.9},
		// "hello" vs "hero": distance 2 over length 5 = 0.6.
		{"partial attempt", "hello", "hero", 0.4, 0.7},
		// "hello" vs "bye": nothing shared, score 0.
		{"poor attempt", "hello", "bye", 0.0, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewHeuristicAssessor(zerolog.Nop(), &fakeTranscriber{transcript: tt.transcript})
			result := a.Assess(context.Background(), []byte{1}, "audio/wav", tt.target)
			if result.Score < tt.minScore || result.Score > tt.maxScore {
				t.Errorf("score %v outside [%v, %v]", result.Score, tt.minScore, tt.maxScore)
			}
			if !strings.Contains(result.Message, tt.transcript) {
				t.Errorf("message should echo transcript %q: %q", tt.transcript, result.Message)
			}
		})
	}
}

func TestCloudAssessNilClient(t *testing.T) {
	a := NewCloudAssessor(zerolog.Nop(), nil)

	result := a.Assess(context.Background(), []byte{1}, "audio/wav", "hello")
	if result.Score != 0 || result.Message != msgMicUnavailable {
		t.Errorf("expected mic-unavailable fallback, got %+v", result)
	}
}
