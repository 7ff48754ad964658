package dialectic

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// Resolver runs the dialectical resolution procedure: N persona traces,
// answer extraction, an equivalence check, and, only on disagreement, one
// arbiter pass over all raw traces.
type Resolver struct {
	backend            Backend
	personas           []Persona
	systemPreamble     string
	maxTokens          int
	judgeTemperature   float64
	arbiterTemperature float64
	callTimeout        time.Duration
	parallel           bool
	debug              bool
}

// New constructs a Resolver with optional configuration. A Backend must be
// supplied via WithBackend before calling Resolve.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		personas:           DefaultPersonas(),
		systemPreamble:     defaultSystemPreamble,
		maxTokens:          defaultMaxTokens,
		judgeTemperature:   defaultJudgeTemperature,
		arbiterTemperature: defaultArbiterTemperature,
		callTimeout:        defaultCallTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve runs one full resolution over the problem statement and returns
// exactly one Verdict. The arbiter executes if and only if the traces
// disagree; a backend failure at any stage aborts the run with a
// GenerationError and no retry.
func (r *Resolver) Resolve(ctx context.Context, problem string) (Verdict, error) {
	problem = strings.TrimSpace(problem)
	if problem == "" {
		return Verdict{}, errors.New("problem statement is empty")
	}
	if r.backend == nil {
		return Verdict{}, errors.New("backend is not configured")
	}
	if len(r.personas) == 0 {
		return Verdict{}, errors.New("no personas configured")
	}

	traces, err := r.generateTraces(ctx, problem)
	if err != nil {
		return Verdict{}, err
	}

	outcome, err := r.checkConsensus(ctx, traces)
	if err != nil {
		return Verdict{}, err
	}
	if outcome.Unanimous {
		if r.debug {
			fmt.Printf("[DIALECTIC DEBUG] Consensus reached (%d/%d): %s\n", len(traces), len(traces), outcome.Answer)
		}
		return Verdict{Answer: outcome.Answer, Provenance: ProvenanceConsensus, Traces: traces}, nil
	}

	if r.debug {
		fmt.Printf("[DIALECTIC DEBUG] Contradiction detected, invoking arbiter\n")
	}
	answer, err := r.arbitrate(ctx, traces)
	if err != nil {
		return Verdict{}, err
	}
	return Verdict{Answer: answer, Provenance: ProvenanceArbiter, Traces: traces}, nil
}

// generateTraces produces one trace per persona. Sequential by default; in
// parallel mode the traces still land at their persona's index so the
// configured order is preserved.
func (r *Resolver) generateTraces(ctx context.Context, problem string) ([]Trace, error) {
	traces := make([]Trace, len(r.personas))

	if !r.parallel {
		for i, p := range r.personas {
			t, err := r.generateTrace(ctx, p, problem)
			if err != nil {
				return nil, err
			}
			traces[i] = t
		}
		return traces, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range r.personas {
		i, p := i, p
		g.Go(func() error {
			t, err := r.generateTrace(gctx, p, problem)
			if err != nil {
				return err
			}
			traces[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return traces, nil
}

func (r *Resolver) generateTrace(ctx context.Context, p Persona, problem string) (Trace, error) {
	messages := []Message{
		{Role: RoleSystem, Content: r.systemPreamble},
		{Role: RoleUser, Content: p.Instruct(problem)},
	}
	out, err := r.call(ctx, StageGenerating, p.Name, messages, p.Temperature, r.maxTokens)
	if err != nil {
		return Trace{}, err
	}
	return Trace{Persona: p, Text: out, Answer: ExtractAnswer(out)}, nil
}

// checkConsensus tests strict unanimity: every answer must be equivalent
// to the first. N-1 agreeing and one differing is still contested; there
// is deliberately no shortcut on near-consensus.
func (r *Resolver) checkConsensus(ctx context.Context, traces []Trace) (Outcome, error) {
	for _, t := range traces[1:] {
		ok, err := r.Equivalent(ctx, traces[0].Answer, t.Answer)
		if err != nil {
			return Outcome{}, err
		}
		if !ok {
			return Outcome{Traces: traces}, nil
		}
	}
	return Outcome{Unanimous: true, Answer: traces[0].Answer, Traces: traces}, nil
}

// call templates the messages and issues one generation. Any failure,
// including a timeout, wraps into a GenerationError naming the stage and
// persona.
func (r *Resolver) call(ctx context.Context, stage, persona string, messages []Message, temperature float64, maxTokens int) (string, error) {
	prompt, err := r.backend.ApplyTemplate(messages, true)
	if err != nil {
		return "", &GenerationError{Stage: stage, Persona: persona, Err: err}
	}
	if r.debug {
		fmt.Printf("[DIALECTIC DEBUG] %s prompt (temp %.2f):\n%s\n", stage, temperature, prompt)
	}

	if r.callTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.callTimeout)
		defer cancel()
	}
	out, err := r.backend.Generate(ctx, prompt, temperature, maxTokens)
	if err != nil {
		return "", &GenerationError{Stage: stage, Persona: persona, Err: err}
	}
	if r.debug {
		fmt.Printf("[DIALECTIC DEBUG] %s response:\n%s\n", stage, out)
	}
	return out, nil
}
