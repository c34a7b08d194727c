package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kemetlearn/kemet_service/internal/errors"
)

const defaultWhisperEndpoint = "https://api-inference.huggingface.co/models/openai/whisper-base"

// HuggingFaceClient wraps the Hugging Face inference REST API for Whisper
// audio transcription.
type HuggingFaceClient struct {
	endpoint string
	token    string
	client   *http.Client
}

// hfTranscription is the inference response. Whisper returns {"text": "..."}.
type hfTranscription struct {
	Text string `json:"text"`
}

// NewHuggingFaceClient creates a new Hugging Face Whisper client.
func NewHuggingFaceClient(token string) *HuggingFaceClient {
	return &HuggingFaceClient{
		endpoint: defaultWhisperEndpoint,
		token:    token,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// WithEndpoint overrides the inference endpoint (tests, other models).
func (c *HuggingFaceClient) WithEndpoint(endpoint string) *HuggingFaceClient {
	c.endpoint = endpoint
	return c
}

// Transcribe sends raw audio bytes for transcription and returns the text.
func (c *HuggingFaceClient) Transcribe(ctx context.Context, audioData []byte, language string) (string, error) {
	if c.token == "" {
		return "", errors.New(errors.ErrAIService, "Hugging Face token not configured")
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint, bytes.NewReader(audioData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("hugging face api error %d: %s", resp.StatusCode, string(body))
	}

	var result hfTranscription
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	return result.Text, nil
}
