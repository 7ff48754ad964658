package dialectic

import "context"

// Standard message roles understood by chat-templated models.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one role-tagged entry in a prompt sequence.
type Message struct {
	Role    string
	Content string
}

// Backend is implemented by user-supplied text generation clients. The
// backend owns chat templating and sampling; the resolver never assumes
// anything about the wire format beyond these two calls.
type Backend interface {
	// ApplyTemplate assembles a single prompt string from role-tagged
	// messages using the model's own chat template. When
	// addGenerationPrompt is true the prompt ends with the model's
	// assistant-turn opener so generation continues from there.
	ApplyTemplate(messages []Message, addGenerationPrompt bool) (string, error)

	// Generate produces text for a prompt at the given sampling
	// temperature, up to maxTokens output tokens.
	Generate(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error)
}

// Trace is the raw output of one persona's generation call together with
// the answer extracted from it. Traces are created once per persona per
// resolution run and never mutated afterward.
type Trace struct {
	Persona Persona
	Text    string
	Answer  string
}

// Outcome is the result of the consensus check over all traces.
type Outcome struct {
	Unanimous bool
	Answer    string // the first trace's answer, set only when Unanimous
	Traces    []Trace
}

// Provenance records which stage produced the final answer.
type Provenance string

const (
	// ProvenanceConsensus means every persona agreed on the answer.
	ProvenanceConsensus Provenance = "consensus"

	// ProvenanceArbiter means the traces disagreed and the arbiter issued
	// the final answer.
	ProvenanceArbiter Provenance = "arbiter"
)

// Verdict is the terminal result of a resolution run: the final answer,
// where it came from, and the full traces for inspection.
type Verdict struct {
	Answer     string
	Provenance Provenance
	Traces     []Trace
}
