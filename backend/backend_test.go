package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/smhanov/dialectic"
)

func TestOllamaApplyTemplate(t *testing.T) {
	o := NewOllama("localhost:11434", "test-model")
	prompt, err := o.ApplyTemplate([]dialectic.Message{
		{Role: dialectic.RoleSystem, Content: "axiom"},
		{Role: dialectic.RoleUser, Content: "problem"},
	}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"[SYSTEM]\naxiom", "[USER]\nproblem", "[ASSISTANT]\n"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if !strings.HasSuffix(prompt, "[ASSISTANT]\n") {
		t.Fatalf("expected generation prompt at the end:\n%s", prompt)
	}
}

func TestOpenAIRoundTrip(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(chatResponse{
			Choices: []struct {
				Message chatMessage `json:"message"`
			}{{Message: chatMessage{Role: "assistant", Content: `\boxed{2/3}`}}},
		})
	}))
	defer srv.Close()

	o := NewOpenAI(srv.URL, "test-key", "test-model")
	prompt, err := o.ApplyTemplate([]dialectic.Message{
		{Role: dialectic.RoleSystem, Content: "axiom"},
		{Role: dialectic.RoleUser, Content: "problem"},
	}, true)
	if err != nil {
		t.Fatalf("template: %v", err)
	}

	out, err := o.Generate(context.Background(), prompt, 0.7, 256)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if out != `\boxed{2/3}` {
		t.Fatalf("unexpected output %q", out)
	}

	// The templated messages must arrive structurally intact.
	if len(got.Messages) != 2 || got.Messages[0].Role != "system" || got.Messages[1].Content != "problem" {
		t.Fatalf("messages did not survive the round trip: %+v", got.Messages)
	}
	if got.Temperature != 0.7 || got.MaxTokens != 256 {
		t.Fatalf("sampling parameters lost: %+v", got)
	}
}

func TestOpenAIMissingKey(t *testing.T) {
	o := NewOpenAI("http://localhost", "", "m")
	if _, err := o.Generate(context.Background(), "hi", 0, 10); err == nil {
		t.Fatal("expected error for missing API key")
	}
}
