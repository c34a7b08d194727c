package client

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiClient wraps the Gemini API client for conversation practice and
// speech generation.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// ChatTurn is one role-tagged message in a conversation history.
type ChatTurn struct {
	Role string // "user" or "model"
	Text string
}

// NewGeminiClient creates a new Gemini client using an API key.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if model == "" {
		model = "gemini-2.5-flash"
	}

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

// WithModel sets the model to use.
func (c *GeminiClient) WithModel(model string) *GeminiClient {
	c.model = model
	return c
}

// Close closes the client.
func (c *GeminiClient) Close() {
	// No explicit close needed for new SDK
}

// Chat sends a single message and returns the response.
func (c *GeminiClient) Chat(ctx context.Context, message string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(message), nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// ChatWithHistory sends the full ordered conversation history plus a system
// instruction and returns the model reply.
func (c *GeminiClient) ChatWithHistory(ctx context.Context, history []ChatTurn, systemInstruction string) (string, error) {
	contents := make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		contents = append(contents, &genai.Content{
			Role:  turn.Role,
			Parts: []*genai.Part{{Text: turn.Text}},
		})
	}

	var cfg *genai.GenerateContentConfig
	if systemInstruction != "" {
		cfg = &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: systemInstruction}},
			},
		}
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// GenerateSpeech synthesizes speech audio (PCM bytes) for the given text
// using a Gemini TTS model.
func (c *GeminiClient) GenerateSpeech(ctx context.Context, text string) ([]byte, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
	}

	resp, err := c.client.Models.GenerateContent(ctx, "gemini-2.5-flash-preview-tts", genai.Text(text), cfg)
	if err != nil {
		return nil, err
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data, nil
			}
		}
	}

	return nil, fmt.Errorf("no audio data in response")
}
