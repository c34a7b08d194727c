package client

import (
	"bytes"
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient wraps the OpenAI API client for Whisper transcription and
// as an alternate chat provider.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client.
func NewOpenAIClient(apiKey string) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  openai.GPT4oMini,
	}
}

// WithModel sets the chat model to use.
func (c *OpenAIClient) WithModel(model string) *OpenAIClient {
	c.model = model
	return c
}

// Chat sends a chat message and returns the response.
func (c *OpenAIClient) Chat(ctx context.Context, message string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: message,
			},
		},
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}

	return resp.Choices[0].Message.Content, nil
}

// ChatWithHistory sends a chat with message history.
func (c *OpenAIClient) ChatWithHistory(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}

	return resp.Choices[0].Message.Content, nil
}

// Transcribe sends audio bytes to Whisper and returns the transcript.
func (c *OpenAIClient) Transcribe(ctx context.Context, audioData []byte, language string) (string, error) {
	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: "audio.wav",
		Reader:   bytes.NewReader(audioData),
		Language: language,
	})
	if err != nil {
		return "", err
	}

	return resp.Text, nil
}
