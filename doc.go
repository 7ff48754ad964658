// Package dialectic resolves a single natural-language problem statement
// into one final answer by generating several independent reasoning traces
// under different analytical stances, checking whether they agree, and
// escalating to a synthesis pass only on disagreement.
//
// # Architecture
//
// A resolution run moves through a fixed sequence of stages:
//
//  1. One trace is generated per configured persona, each combining a
//     shared system preamble with that persona's prompt transform and
//     temperature.
//  2. The boxed final answer is extracted from each trace.
//  3. The answers are checked for strict unanimity. All of them must be
//     equivalent; two out of three agreeing is still a contradiction.
//  4. On unanimity the first trace's answer is returned with consensus
//     provenance. Otherwise the arbiter reviews every raw trace once, at a
//     low temperature, and its extracted answer is returned with arbiter
//     provenance.
//
// The default personas are the reference triad: the Believer (intuition,
// raw prompt, temp 0.6), the Logician (strict causal deduction, temp 0.7),
// and the Contrarian (red-team counterargument, temp 0.9).
//
// # Equivalence
//
// Two answers are equivalent when they normalize (case-fold, whitespace
// removal) to the same string, or, failing that, when a low-temperature
// judge call answers YES. Any other judge output counts as NO, so an
// ambiguous judge can never produce a false consensus.
//
// # Basic Usage
//
//	resolver := dialectic.New(
//	    dialectic.WithBackend(myBackend),
//	    dialectic.WithMaxTokens(4096),
//	)
//
//	verdict, err := resolver.Resolve(ctx, "Does switching doors help?")
//	fmt.Println(verdict.Answer, verdict.Provenance)
//
// # Interfaces
//
// Implement Backend to connect any text generation client:
//
//	type Backend interface {
//	    ApplyTemplate(messages []Message, addGenerationPrompt bool) (string, error)
//	    Generate(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error)
//	}
//
// The backend/ subpackage provides HTTP implementations for Ollama and
// OpenAI-compatible endpoints.
//
// # Failure Model
//
// A failed backend call at any stage is fatal to the run and surfaces as a
// *GenerationError naming the stage and persona; nothing retries. Parsing
// never fails: a missing answer marker degrades to a trailing-suffix
// heuristic and unbalanced braces consume to end of text.
//
// See the examples/basic directory for a complete example.
package dialectic
