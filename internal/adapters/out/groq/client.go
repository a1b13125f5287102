// Package groq talks to a Groq (OpenAI-compatible) API for intent
// classification and speech-to-text. It implements ports.Classifier and
// ports.Transcriber.
package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"maitred/internal/core/ports"
	"maitred/internal/pkg/errs"
)

const (
	// DefaultBaseURL points at Groq's OpenAI-compatible endpoint.
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultChatModel is the conversational classification model.
	DefaultChatModel = "llama-3.3-70b-versatile"

	// DefaultSTTModel is the speech-to-text model.
	DefaultSTTModel = "whisper-large-v3"

	defaultTimeout = 30 * time.Second
)

// Config holds the connection settings for the Groq API.
type Config struct {
	APIKey    string
	BaseURL   string
	ChatModel string
	STTModel  string
	Timeout   time.Duration
}

// Client is an HTTP client for the Groq chat completion and audio
// transcription endpoints.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a Groq API client. An API key is required; every
// other field falls back to a default.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errs.NewValueIsRequiredError("cfg.APIKey")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.ChatModel == "" {
		cfg.ChatModel = DefaultChatModel
	}
	if cfg.STTModel == "" {
		cfg.STTModel = DefaultSTTModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type transcriptionResponse struct {
	Text string `json:"text"`
}

// Classify sends the instruction, the recent conversation history and
// the current utterance to the chat completion endpoint and returns the
// model's raw text output.
func (c *Client) Classify(ctx context.Context, instruction string, history []ports.HistoryEntry, utterance string) (string, error) {
	messages := make([]chatMessage, 0, len(history)+2)
	messages = append(messages, chatMessage{Role: "system", Content: instruction})
	for _, entry := range history {
		messages = append(messages, chatMessage{Role: entry.Role, Content: entry.Content})
	}
	messages = append(messages, chatMessage{Role: "user", Content: utterance})

	payload, err := json.Marshal(chatRequest{
		Model:       c.cfg.ChatModel,
		Messages:    messages,
		Temperature: 0.1,
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return "", err
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("chat response has no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}

// Transcribe uploads the audio to the transcription endpoint and
// returns the recognized text. The format is the file extension of the
// recording, e.g. "wav" or "m4a".
func (c *Client) Transcribe(ctx context.Context, audio []byte, format string) (string, error) {
	if len(audio) == 0 {
		return "", errs.NewValueIsRequiredError("audio")
	}
	if format == "" {
		format = "wav"
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", "audio."+format)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(audio); err != nil {
		return "", err
	}
	if err := writer.WriteField("model", c.cfg.STTModel); err != nil {
		return "", err
	}
	if err := writer.WriteField("language", "ko"); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/audio/transcriptions", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	body, err := c.do(req)
	if err != nil {
		return "", err
	}

	var parsed transcriptionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode transcription response: %w", err)
	}
	return parsed.Text, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("groq api returned status %d: %s", resp.StatusCode, truncate(body, 200))
	}
	return body, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

var (
	_ ports.Classifier  = (*Client)(nil)
	_ ports.Transcriber = (*Client)(nil)
)
