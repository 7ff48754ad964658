package dialectic

import (
	"context"
	"errors"
	"testing"
)

func TestEquivalentFastPathSkipsJudge(t *testing.T) {
	backend := &scriptedBackend{judge: "NO"}
	r := New(WithBackend(backend))

	for _, v := range []string{"1/3", "YES", "", "f(x)=2"} {
		ok, err := r.Equivalent(context.Background(), v, v)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			t.Fatalf("expected %q equivalent to itself", v)
		}
	}
	ok, err := r.Equivalent(context.Background(), "1 / 3", " 1/3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected normalized forms to be equivalent")
	}
	if backend.judgeCalls != 0 {
		t.Fatalf("expected the judge to stay idle, got %d calls", backend.judgeCalls)
	}
}

func TestEquivalentJudgeYes(t *testing.T) {
	backend := &scriptedBackend{judge: "yes, both equal one third"}
	r := New(WithBackend(backend))

	ok, err := r.Equivalent(context.Background(), "1/3", "0.333...")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected YES verdict to mean equivalent")
	}
	if backend.judgeCalls != 1 {
		t.Fatalf("expected one judge call, got %d", backend.judgeCalls)
	}
}

func TestEquivalentJudgeAnythingElseIsNo(t *testing.T) {
	// A well-formed NO, an empty response, and malformed text all resolve
	// to not-equivalent. This conservative bias is deliberate.
	for _, verdict := range []string{"NO", "", "I am not sure about these values", "maybe?"} {
		backend := &scriptedBackend{judge: verdict}
		r := New(WithBackend(backend))

		ok, err := r.Equivalent(context.Background(), "1/3", "2/3")
		if err != nil {
			t.Fatalf("verdict %q: unexpected error: %v", verdict, err)
		}
		if ok {
			t.Fatalf("verdict %q: expected not-equivalent", verdict)
		}
	}
}

func TestEquivalentJudgeErrorPropagates(t *testing.T) {
	backend := &scriptedBackend{failOn: "Are the following two math results equivalent?"}
	r := New(WithBackend(backend))

	_, err := r.Equivalent(context.Background(), "1/3", "2/3")
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected *GenerationError, got %v", err)
	}
	if genErr.Stage != StageJudging {
		t.Fatalf("expected stage %q, got %q", StageJudging, genErr.Stage)
	}
}
