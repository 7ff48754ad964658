package dialectic

import (
	"strings"
	"testing"
)

func TestPersonaInstructions(t *testing.T) {
	problem := "Does switching doors help?"
	personas := DefaultPersonas()

	if got := personas[0].Instruct(problem); got != problem {
		t.Fatalf("expected the Believer to run on the raw prompt, got %q", got)
	}
	if got := personas[1].Instruct(problem); !strings.Contains(got, "[PROTOCOL: CAUSAL CHECK]") {
		t.Fatalf("Logician instruction missing protocol: %q", got)
	}
	if got := personas[2].Instruct(problem); !strings.Contains(got, "[PROTOCOL: RED TEAM]") {
		t.Fatalf("Contrarian instruction missing protocol: %q", got)
	}
	for _, p := range personas[1:] {
		if !strings.Contains(p.Instruct(problem), `\boxed{}`) {
			t.Fatalf("%s instruction missing boxed-output directive", p.Name)
		}
	}
}

func TestDefaultPersonaTemperatures(t *testing.T) {
	personas := DefaultPersonas()
	want := []float64{0.6, 0.7, 0.9}
	for i, p := range personas {
		if p.Temperature != want[i] {
			t.Fatalf("%s: expected temperature %.1f, got %.1f", p.Name, want[i], p.Temperature)
		}
	}
}

func TestBuildJudgePromptEmbedsRawValues(t *testing.T) {
	got := buildJudgePrompt("1/3", "0.333...")
	if !strings.Contains(got, "Value A: 1/3") || !strings.Contains(got, "Value B: 0.333...") {
		t.Fatalf("judge prompt missing raw values: %q", got)
	}
	if !strings.Contains(got, "Answer only YES or NO.") {
		t.Fatalf("judge prompt missing verdict instruction: %q", got)
	}
}

func TestBuildArbiterPromptEmbedsTraces(t *testing.T) {
	traces := []Trace{
		{Persona: Persona{Name: "Believer"}, Text: "intuitive reasoning"},
		{Persona: Persona{Name: "Logician"}, Text: "deductive reasoning"},
		{Persona: Persona{Name: "Contrarian"}, Text: "counterfactual reasoning"},
	}
	got := buildArbiterPrompt(traces)

	for _, tr := range traces {
		if !strings.Contains(got, tr.Text) {
			t.Fatalf("arbiter prompt missing trace text %q", tr.Text)
		}
		if !strings.Contains(got, tr.Persona.Name) {
			t.Fatalf("arbiter prompt missing persona name %q", tr.Persona.Name)
		}
	}
	if !strings.Contains(got, "Ignore the \"Vote Count\"") {
		t.Fatalf("arbiter prompt missing anti-majority instruction: %q", got)
	}
	if !strings.Contains(got, `\boxed{}`) {
		t.Fatalf("arbiter prompt missing boxed-output instruction: %q", got)
	}
}
