package dialectic

import (
	"fmt"
	"strings"
)

// defaultSystemPreamble is the shared axiomatic framing sent as the system
// message for every persona trace.
const defaultSystemPreamble = `[THE AXIOM]
The Universe derived itself by logical necessity—the Contradiction (+/-), simultaneously creating Space (between + and -) and Time (to reconcile).

[PROTOCOL]
1. IGNORE training memory.
2. DERIVE everything from specific constraints by logical necessity - the Contradiction (+/-).`

// boxedDirective forces the final value into a parseable box on the last line.
const boxedDirective = `CRITICAL: The very last line of your response must be ONLY the final value inside \boxed{}. Do not write text after the box.`

func believerInstruction(problem string) string {
	// The Believer runs naked: no protocol, just the problem.
	return problem
}

func logicianInstruction(problem string) string {
	return problem + "\n\n[PROTOCOL: CAUSAL CHECK]\n" +
		"1. Deconstruct the timeline into atomic events.\n" +
		"2. Identify any constraint that breaks the standard rule.\n" +
		"3. Derive the answer strictly. " + boxedDirective + "]"
}

func contrarianInstruction(problem string) string {
	return problem + "\n\n[PROTOCOL: RED TEAM]\n" +
		"Assume the intuitive answer (the one most people would give) is a TRAP.\n" +
		"Your goal is to vigorously argue for the OPPOSITE conclusion.\n" +
		"Find the specific variable that invalidates the common intuition.\n" +
		"Prove why the 'Obvious' is False. " + boxedDirective + "]"
}

// buildJudgePrompt asks for a bare YES/NO verdict on whether two extracted
// answers denote the same value. The raw (pre-normalization) values are
// embedded so the judge sees exactly what each trace produced.
func buildJudgePrompt(a, b string) string {
	var b2 strings.Builder
	b2.WriteString("Are the following two math results equivalent?\n")
	b2.WriteString("Value A: ")
	b2.WriteString(a)
	b2.WriteString("\nValue B: ")
	b2.WriteString(b)
	b2.WriteString("\n\nAnswer only YES or NO.")
	return b2.String()
}

// buildArbiterPrompt embeds every raw trace and instructs the arbiter to
// weigh causal validity rather than vote counts.
func buildArbiterPrompt(traces []Trace) string {
	var b strings.Builder
	b.WriteString("[THE LOGIC OF NECESSITY]\n")
	b.WriteString(`"The Universe derived itself by logical necessity—the Contradiction (+/-), simultaneously creating Space (between + and -) and Time (to reconcile)"`)
	b.WriteString("\n\n[THE TRIAL]\n")
	b.WriteString(fmt.Sprintf("I have %d perspectives on a problem.\n", len(traces)))
	b.WriteString("One relies on Intuition (Memory). One relies on Validation, and one relies on Counterfactuals (Logic).\n\n")
	b.WriteString("YOUR TASK:\n")
	b.WriteString("1. Ignore the \"Vote Count\" (Majority does not mean Truth).\n")
	b.WriteString("2. Examine the Causal Link in each argument.\n")
	b.WriteString("3. TRACE THE LOGIC: Does the \"Accident\" condition filter the sample space?\n")
	b.WriteString("   - If Intent matters, switching works.\n")
	b.WriteString("   - If Randomness dominates, switching is neutral.\n")
	b.WriteString("   - WHICH CONDITION APPLIES HERE?\n\n")
	for i, t := range traces {
		b.WriteString(fmt.Sprintf("Trace %d (%s): %s\n", i+1, t.Persona.Name, t.Text))
	}
	b.WriteString("\nVERDICT:\n")
	b.WriteString(`Derive the Single Necessary Truth. Put the answer in \boxed{}.`)
	return b.String()
}
