// Package backend provides generation backend implementations for the
// dialectic resolver.
//
// Available backends:
//
//   - Ollama: local models via the Ollama HTTP API, no API key required
//   - OpenAI: any OpenAI-compatible chat completions endpoint, API key
//     via Authorization header
//
// # Ollama Example
//
//	b := backend.NewOllama("localhost:11434", "qwen2.5:72b")
//	resolver := dialectic.New(dialectic.WithBackend(b))
//
// # OpenAI Example
//
//	b := backend.NewOpenAI("https://api.openai.com", "your-api-key", "gpt-4o-mini")
//	resolver := dialectic.New(dialectic.WithBackend(b))
//
// # Custom Backends
//
// Implement the dialectic.Backend interface to connect any other
// generation client:
//
//	type Backend interface {
//	    ApplyTemplate(messages []dialectic.Message, addGenerationPrompt bool) (string, error)
//	    Generate(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error)
//	}
package backend
