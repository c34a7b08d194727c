package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// GoogleTTSClient wraps the unofficial Google Translate TTS endpoint,
// which returns MP3 audio for short English text.
type GoogleTTSClient struct {
	baseURL string
	client  *http.Client
}

// NewGoogleTTSClient creates a new Google Translate TTS client.
func NewGoogleTTSClient(baseURL string) *GoogleTTSClient {
	return &GoogleTTSClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Synthesize fetches MP3 audio bytes for the given text.
func (c *GoogleTTSClient) Synthesize(ctx context.Context, text, lang string) ([]byte, error) {
	if lang == "" {
		lang = "en"
	}

	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("tl", lang)
	q.Set("client", "tw-ob")
	q.Set("q", text)

	u := fmt.Sprintf("%s/translate_tts?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google tts error %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio body: %w", err)
	}

	return data, nil
}
