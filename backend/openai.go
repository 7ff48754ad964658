package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/smhanov/dialectic"
)

// OpenAI implements dialectic.Backend against any OpenAI-compatible chat
// completions endpoint. Chat templating happens server-side, so
// ApplyTemplate serializes the message sequence to JSON and Generate
// decodes it back into the request body. A prompt that is not valid JSON
// is sent as a single user message.
type OpenAI struct {
	BaseURL string
	APIKey  string
	Model   string
	client  *http.Client
}

// NewOpenAI constructs an OpenAI-compatible backend.
func NewOpenAI(baseURL, apiKey, model string) *OpenAI {
	return &OpenAI{BaseURL: baseURL, APIKey: apiKey, Model: model, client: &http.Client{Timeout: 10 * time.Minute}}
}

// NewOpenAIWithClient constructs an OpenAI-compatible backend using the
// supplied HTTP client. This is useful for overriding the default timeout.
func NewOpenAIWithClient(baseURL, apiKey, model string, client *http.Client) *OpenAI {
	return &OpenAI{BaseURL: baseURL, APIKey: apiKey, Model: model, client: client}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// ApplyTemplate serializes the messages into the provider wire form.
func (o *OpenAI) ApplyTemplate(messages []dialectic.Message, _ bool) (string, error) {
	if len(messages) == 0 {
		return "", errors.New("openai: no messages to template")
	}
	wire := make([]chatMessage, len(messages))
	for i, m := range messages {
		wire[i] = chatMessage{Role: m.Role, Content: m.Content}
	}
	data, err := json.Marshal(wire)
	if err != nil {
		return "", fmt.Errorf("openai: marshal messages: %w", err)
	}
	return string(data), nil
}

// Generate posts the templated messages to the chat completions endpoint.
func (o *OpenAI) Generate(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	if strings.TrimSpace(o.APIKey) == "" {
		return "", errors.New("openai: API key is missing")
	}

	var messages []chatMessage
	if err := json.Unmarshal([]byte(prompt), &messages); err != nil {
		messages = []chatMessage{{Role: "user", Content: prompt}}
	}

	reqBody := chatRequest{
		Model:       o.Model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("openai: marshal request: %w", err)
	}

	url := strings.TrimSuffix(o.BaseURL, "/") + "/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("openai: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.APIKey)

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai: send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("openai: API error: %s - %s", resp.Status, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("openai: read response: %w", err)
	}
	var out chatResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("openai: parse response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", errors.New("openai: response contained no choices")
	}
	return out.Choices[0].Message.Content, nil
}
