package dialectic

import (
	"context"
	"strings"
)

// Equivalent reports whether two extracted answers denote the same value.
//
// Fast path: both answers normalize (case-fold, whitespace removal) to the
// same string, decided without any backend call. Slow path: one judge
// generation at low temperature embedding both raw values and asking for a
// YES/NO verdict; the answer counts as equivalent only if the response
// contains a literal "YES" anywhere. Anything else, including a well-formed
// "NO", an empty response, or malformed text, resolves to not-equivalent.
// The bias is deliberately conservative: an ambiguous judge never produces
// a false consensus.
func (r *Resolver) Equivalent(ctx context.Context, a, b string) (bool, error) {
	if normalizeAnswer(a) == normalizeAnswer(b) {
		return true, nil
	}

	messages := []Message{{Role: RoleUser, Content: buildJudgePrompt(a, b)}}
	out, err := r.call(ctx, StageJudging, "", messages, r.judgeTemperature, judgeMaxTokens)
	if err != nil {
		return false, err
	}
	return strings.Contains(strings.ToUpper(out), "YES"), nil
}
