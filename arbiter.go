package dialectic

import "context"

// arbitrate reviews every raw trace and produces the final answer. It runs
// exactly once per contested outcome, at a temperature stricter than any
// default persona's, and never re-invokes the personas or retries on a
// disagreeable verdict. The answer is parsed from its output with the same
// extractor the traces use.
func (r *Resolver) arbitrate(ctx context.Context, traces []Trace) (string, error) {
	messages := []Message{{Role: RoleUser, Content: buildArbiterPrompt(traces)}}
	out, err := r.call(ctx, StageArbitrating, "", messages, r.arbiterTemperature, r.maxTokens)
	if err != nil {
		return "", err
	}
	return ExtractAnswer(out), nil
}
