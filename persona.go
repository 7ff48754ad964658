package dialectic

// Persona is one configured analytical stance: an identity tag, a sampling
// temperature, and a pure transform from the base problem statement to the
// full instruction payload. Personas are immutable configuration records;
// the resolver evaluates them in the order given.
type Persona struct {
	Name        string
	Temperature float64
	Instruct    func(problem string) string
}

// DefaultPersonas returns the reference triad, in evaluation order:
//
//   - Believer (0.6): runs on the raw prompt with no structural
//     constraints, representing the model's immediate intuition.
//   - Logician (0.7): forced to deconstruct the timeline into atomic
//     events and derive the answer strictly from stated premises.
//   - Contrarian (0.9): instructed to treat the intuitive answer as a trap
//     and argue the opposite conclusion, at high temperature to break
//     pattern-matched responses.
func DefaultPersonas() []Persona {
	return []Persona{
		{Name: "Believer", Temperature: 0.6, Instruct: believerInstruction},
		{Name: "Logician", Temperature: 0.7, Instruct: logicianInstruction},
		{Name: "Contrarian", Temperature: 0.9, Instruct: contrarianInstruction},
	}
}
