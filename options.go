package dialectic

import "time"

const (
	defaultMaxTokens          = 4096
	defaultJudgeTemperature   = 0.0
	defaultArbiterTemperature = 0.1
	defaultCallTimeout        = 2 * time.Minute

	// judgeMaxTokens caps the equivalence judge's output. A YES/NO verdict
	// needs almost nothing.
	judgeMaxTokens = 10
)

// Option configures a Resolver.
type Option func(*Resolver)

// WithBackend sets the text generation backend. Required.
func WithBackend(b Backend) Option {
	return func(r *Resolver) { r.backend = b }
}

// WithPersonas replaces the default persona triad. The slice order is the
// evaluation order.
func WithPersonas(personas []Persona) Option {
	return func(r *Resolver) {
		if len(personas) > 0 {
			r.personas = personas
		}
	}
}

// WithSystemPreamble overrides the shared system message sent with every
// persona trace.
func WithSystemPreamble(preamble string) Option {
	return func(r *Resolver) { r.systemPreamble = preamble }
}

// WithMaxTokens sets the output-token budget for persona and arbiter calls.
func WithMaxTokens(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.maxTokens = n
		}
	}
}

// WithJudgeTemperature sets the sampling temperature for equivalence
// judge calls. The default is 0.
func WithJudgeTemperature(t float64) Option {
	return func(r *Resolver) { r.judgeTemperature = t }
}

// WithArbiterTemperature sets the sampling temperature for the arbiter
// call. The default of 0.1 is stricter than any default persona.
func WithArbiterTemperature(t float64) Option {
	return func(r *Resolver) { r.arbiterTemperature = t }
}

// WithCallTimeout bounds each backend call. A timeout surfaces as a
// GenerationError and aborts the run, since no stage retries. Zero
// disables the bound.
func WithCallTimeout(d time.Duration) Option {
	return func(r *Resolver) { r.callTimeout = d }
}

// WithParallelGeneration runs the persona calls concurrently. Only enable
// this when the backend supports concurrent sessions; consensus semantics
// do not change because checking is order-independent and traces keep the
// configured persona order.
func WithParallelGeneration(enabled bool) Option {
	return func(r *Resolver) { r.parallel = enabled }
}

// WithDebug enables debug logging of all prompts and responses.
func WithDebug(enabled bool) Option {
	return func(r *Resolver) { r.debug = enabled }
}
