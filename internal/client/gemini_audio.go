package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiAudioClient wraps the Gemini Flash Lite API for multimodal
// audio-plus-text requests (pronunciation assessment).
type GeminiAudioClient struct {
	client *genai.Client
	model  string
}

// NewGeminiAudioClient creates a new audio-capable Gemini client.
func NewGeminiAudioClient(ctx context.Context, apiKey string) (*GeminiAudioClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini audio client: %w", err)
	}

	return &GeminiAudioClient{
		client: client,
		model:  "gemini-2.5-flash-lite",
	}, nil
}

// WithModel sets the model to use.
func (c *GeminiAudioClient) WithModel(model string) *GeminiAudioClient {
	c.model = model
	return c
}

// Close closes the client.
func (c *GeminiAudioClient) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

// AssessAudio sends an audio blob plus an instruction prompt and returns
// the raw text response.
func (c *GeminiAudioClient) AssessAudio(ctx context.Context, audioData []byte, mimeType, prompt string) (string, error) {
	if mimeType == "" {
		mimeType = "audio/wav"
	}

	model := c.client.GenerativeModel(c.model)
	resp, err := model.GenerateContent(ctx,
		genai.Blob{MIMEType: mimeType, Data: audioData},
		genai.Text(prompt),
	)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	return sb.String(), nil
}
