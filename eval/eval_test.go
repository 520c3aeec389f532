package eval

import (
	"testing"

	"github.com/n0madic/logtemplate/engine"
)

func TestAssignmentFlattensResults(t *testing.T) {
	results := map[string]engine.Result{
		"a <*>": {Template: []string{"a", "<*>"}, LineIDs: []int{1, 2}},
		"b c":   {Template: []string{"b", "c"}, LineIDs: []int{3}},
	}
	got := Assignment(results)

	want := map[int]string{1: "a <*>", 2: "a <*>", 3: "b c"}
	for id, tmpl := range want {
		if got[id] != tmpl {
			t.Fatalf("Assignment()[%d] = %q, want %q", id, got[id], tmpl)
		}
	}
}

func TestGradePerfectAgreement(t *testing.T) {
	predicted := map[int]string{1: "g1", 2: "g1", 3: "g2"}
	reference := map[int]string{1: "E1", 2: "E1", 3: "E2"}

	report := Grade(predicted, reference)
	if report.Correct != 3 || report.Total != 3 || report.Accuracy != 1.0 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestGradeImpureGroupScoresZero(t *testing.T) {
	// Group "g1" merges two true event types (E1, E2): it is impure, so
	// every line in it earns zero credit, even the E1 members.
	predicted := map[int]string{1: "g1", 2: "g1", 3: "g1"}
	reference := map[int]string{1: "E1", 2: "E1", 3: "E2"}

	report := Grade(predicted, reference)
	if report.Correct != 0 || report.Total != 3 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestGradePureButPartialGroupScoresZero(t *testing.T) {
	// Group "g1" is internally pure (only E1 members) but does not capture
	// every E1 line in the corpus (line 3 is E1 but predicted into "g2"):
	// it is not a bijection onto the true E1 group, so it earns no credit.
	predicted := map[int]string{1: "g1", 2: "g1", 3: "g2"}
	reference := map[int]string{1: "E1", 2: "E1", 3: "E1"}

	report := Grade(predicted, reference)
	if report.Correct != 0 || report.Total != 3 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestGradeIgnoresLinesMissingReference(t *testing.T) {
	predicted := map[int]string{1: "g1", 2: "g1"}
	reference := map[int]string{1: "E1"}

	report := Grade(predicted, reference)
	if report.Total != 1 || report.Correct != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
}
