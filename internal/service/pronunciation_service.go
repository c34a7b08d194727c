package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kemetlearn/kemet_service/internal/client"
	"github.com/kemetlearn/kemet_service/internal/similarity"
)

// User-facing feedback, localized for the app's Arabic-speaking audience.
const (
	msgMicUnavailable   = "تعذر الوصول للميكروفون أو الخدمة."
	msgRecognitionError = "حدث خطأ في التعرف على الصوت."
)

// Similarity tiers for qualitative feedback.
const (
	tierExcellent = 0.9
	tierGood      = 0.7
	tierFair      = 0.4
)

// Assessment is the transient pronunciation result.
type Assessment struct {
	Score   float64 `json:"score"` // 0..1
	Message string  `json:"message"`
}

// Assessor scores a recorded attempt against a target string. It always
// returns a displayable assessment; failures score 0 with a specific
// message rather than propagating an error.
type Assessor interface {
	Assess(ctx context.Context, audioData []byte, mimeType, targetText string) *Assessment
}

// Transcriber converts audio to text (Whisper via OpenAI or the Hugging
// Face inference endpoint, selected by configuration).
type Transcriber interface {
	Transcribe(ctx context.Context, audioData []byte, language string) (string, error)
}

// HeuristicAssessor transcribes the audio and scores the transcript
// against the target with normalized edit-distance similarity.
type HeuristicAssessor struct {
	log         zerolog.Logger
	transcriber Transcriber
}

// NewHeuristicAssessor creates the edit-distance assessor.
func NewHeuristicAssessor(log zerolog.Logger, transcriber Transcriber) *HeuristicAssessor {
	return &HeuristicAssessor{
		log:         log,
		transcriber: transcriber,
	}
}

// Assess transcribes and scores the attempt.
func (a *HeuristicAssessor) Assess(ctx context.Context, audioData []byte, mimeType, targetText string) *Assessment {
	if len(audioData) == 0 || a.transcriber == nil {
		return &Assessment{Score: 0, Message: msgMicUnavailable}
	}

	transcript, err := a.transcriber.Transcribe(ctx, audioData, "en")
	if err != nil {
		a.log.Warn().Err(err).Msg("Transcription failed")
		return &Assessment{Score: 0, Message: msgRecognitionError}
	}

	score := similarity.Score(targetText, transcript)
	cleanTranscript := similarity.Normalize(transcript)

	var message string
	switch {
	case score >= tierExcellent:
		message = "ممتاز! نطق سليم 100% 🌟"
	case score > tierGood:
		message = fmt.Sprintf("رائع! لقد قلت \"%s\" وهي قريبة جداً.", cleanTranscript)
	case score > tierFair:
		message = fmt.Sprintf("جيد، لكنك قلت \"%s\". حاول مرة أخرى!", cleanTranscript)
	default:
		message = fmt.Sprintf("سمعت \"%s\". حاول بوضوح أكثر.", cleanTranscript)
	}

	return &Assessment{Score: score, Message: message}
}

// CloudAssessor delegates scoring to a multimodal Gemini call that returns
// a structured {score, message} document.
type CloudAssessor struct {
	log   zerolog.Logger
	audio *client.GeminiAudioClient
}

// NewCloudAssessor creates the multimodal assessor.
func NewCloudAssessor(log zerolog.Logger, audio *client.GeminiAudioClient) *CloudAssessor {
	return &CloudAssessor{
		log:   log,
		audio: audio,
	}
}

// Assess sends the audio plus target to the model and parses the score.
func (a *CloudAssessor) Assess(ctx context.Context, audioData []byte, mimeType, targetText string) *Assessment {
	if len(audioData) == 0 || a.audio == nil {
		return &Assessment{Score: 0, Message: msgMicUnavailable}
	}

	prompt := fmt.Sprintf(`The attached audio is a language learner trying to pronounce: "%s".
Rate the pronunciation. Respond with raw JSON only, no markdown:
{"score": <number between 0 and 1>, "message": "<short feedback in Arabic>"}`, targetText)

	raw, err := a.audio.AssessAudio(ctx, audioData, mimeType, prompt)
	if err != nil {
		a.log.Warn().Err(err).Msg("Cloud assessment failed")
		return &Assessment{Score: 0, Message: msgRecognitionError}
	}

	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")

	var result Assessment
	if err := json.Unmarshal([]byte(clean), &result); err != nil || result.Message == "" {
		a.log.Warn().Err(err).Str("raw", raw).Msg("Malformed assessment response")
		return &Assessment{Score: 0, Message: msgRecognitionError}
	}

	if result.Score < 0 {
		result.Score = 0
	}
	if result.Score > 1 {
		result.Score = 1
	}

	return &result
}
