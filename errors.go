package dialectic

import "fmt"

// Stages at which a collaborator call can fail.
const (
	StageGenerating  = "generating"
	StageJudging     = "judging"
	StageArbitrating = "arbitrating"
)

// GenerationError reports a failed backend call. It is fatal to the
// resolution run: no stage retries a generation, and partial results are
// never returned.
type GenerationError struct {
	Stage   string
	Persona string // empty for judge and arbiter calls
	Err     error
}

func (e *GenerationError) Error() string {
	if e.Persona != "" {
		return fmt.Sprintf("dialectic: %s: persona %s: %v", e.Stage, e.Persona, e.Err)
	}
	return fmt.Sprintf("dialectic: %s: %v", e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
