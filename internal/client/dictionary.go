package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DictionaryClient wraps the Free Dictionary REST API, used to look up
// pre-recorded pronunciation audio for words and short phrases.
type DictionaryClient struct {
	baseURL string
	client  *http.Client
}

// DictionaryEntry is a single entry in the lookup response.
type DictionaryEntry struct {
	Word      string     `json:"word"`
	Phonetics []Phonetic `json:"phonetics"`
}

// Phonetic holds one phonetic rendering, optionally with audio.
type Phonetic struct {
	Text  string `json:"text,omitempty"`
	Audio string `json:"audio,omitempty"`
}

// NewDictionaryClient creates a new dictionary client.
func NewDictionaryClient(baseURL string) *DictionaryClient {
	return &DictionaryClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Lookup queries the dictionary for the given word or short phrase and
// returns all entries. A 404 (word not in the dictionary) returns an
// empty slice, not an error.
func (c *DictionaryClient) Lookup(ctx context.Context, text string) ([]DictionaryEntry, error) {
	u := fmt.Sprintf("%s/api/v2/entries/en/%s", c.baseURL, url.PathEscape(text))

	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dictionary api error %d", resp.StatusCode)
	}

	var entries []DictionaryEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return entries, nil
}

// FindAudioURL returns the first usable audio URL across all entries, or
// empty string if none. Protocol-relative URLs are upgraded to https.
func FindAudioURL(entries []DictionaryEntry) string {
	for _, entry := range entries {
		for _, p := range entry.Phonetics {
			if p.Audio == "" {
				continue
			}
			if len(p.Audio) >= 2 && p.Audio[:2] == "//" {
				return "https:" + p.Audio
			}
			return p.Audio
		}
	}
	return ""
}
