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

// Ollama implements dialectic.Backend using the Ollama generate API.
// Templating renders the messages as role-tagged plain text; the server
// wraps the result in the model's own chat template.
type Ollama struct {
	Endpoint string
	Model    string
	client   *http.Client
}

// NewOllama creates an Ollama backend with a generous timeout, since
// reasoning traces can take minutes on local hardware.
func NewOllama(endpoint, model string) *Ollama {
	return &Ollama{Endpoint: endpoint, Model: model, client: &http.Client{Timeout: 10 * time.Minute}}
}

// NewOllamaWithClient creates an Ollama backend using the supplied HTTP
// client. This is useful for overriding the default timeout.
func NewOllamaWithClient(endpoint, model string, client *http.Client) *Ollama {
	return &Ollama{Endpoint: endpoint, Model: model, client: client}
}

type ollamaRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	Stream  bool           `json:"stream"`
	Options map[string]any `json:"options,omitempty"`
}

type ollamaResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// ApplyTemplate renders the message sequence as role-tagged plain text.
func (o *Ollama) ApplyTemplate(messages []dialectic.Message, addGenerationPrompt bool) (string, error) {
	if len(messages) == 0 {
		return "", errors.New("ollama: no messages to template")
	}
	var b strings.Builder
	for _, m := range messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", strings.ToUpper(m.Role), m.Content)
	}
	if addGenerationPrompt {
		b.WriteString("[ASSISTANT]\n")
	}
	return b.String(), nil
}

// Generate posts the prompt to the Ollama generate endpoint.
func (o *Ollama) Generate(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	endpoint := o.Endpoint
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "http://" + endpoint
	}
	url := fmt.Sprintf("%s/api/generate", endpoint)

	reqBody := ollamaRequest{
		Model:  o.Model,
		Prompt: prompt,
		Stream: false,
		Options: map[string]any{
			"temperature": temperature,
			"num_predict": maxTokens,
		},
	}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("ollama: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("ollama: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama: send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("ollama: API error: %s - %s", resp.Status, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("ollama: read response: %w", err)
	}
	var out ollamaResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("ollama: parse response: %w", err)
	}
	return out.Response, nil
}
