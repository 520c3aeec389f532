// Package eval compares the engine's emitted per-line template assignment
// against a reference grouping (typically a ground-truth CSV column) and
// reports the grouping accuracy. It is read-only: its result never feeds
// back into inference (spec §6).
package eval

import "github.com/n0madic/logtemplate/engine"

// Report is one grouping-accuracy comparison.
type Report struct {
	Accuracy float64
	Correct  int
	Total    int
}

// Assignment reduces the engine's template catalog to a per-line
// predicted-group lookup, the shape the evaluator and the per-line CSV
// writer both need.
func Assignment(results map[string]engine.Result) map[int]string {
	assignment := make(map[int]string)
	for template, res := range results {
		for _, id := range res.LineIDs {
			assignment[id] = template
		}
	}
	return assignment
}

// Grade computes LogPai Grouping Accuracy: a predicted group is credited,
// in full, only when it is internally pure (every member carries the same
// reference label) and that label's total membership across the whole
// reference partition exactly equals the predicted group's size — i.e. the
// predicted group is a bijection onto a true event group, not merely a
// majority-pure subset of one. A group that merges two true event types,
// or captures only part of one, earns zero credit for every line in it.
func Grade(predicted, reference map[int]string) Report {
	groups := make(map[string][]int)
	for lineID, pred := range predicted {
		if _, ok := reference[lineID]; !ok {
			continue
		}
		groups[pred] = append(groups[pred], lineID)
	}

	refCounts := make(map[string]int, len(reference))
	for _, ref := range reference {
		refCounts[ref]++
	}

	correct := 0
	total := 0

	for _, lineIDs := range groups {
		total += len(lineIDs)

		label, pure := pureLabel(lineIDs, reference)
		if !pure {
			continue
		}
		if refCounts[label] == len(lineIDs) {
			correct += len(lineIDs)
		}
	}

	report := Report{Correct: correct, Total: total}
	if total > 0 {
		report.Accuracy = float64(correct) / float64(total)
	}
	return report
}

// pureLabel reports whether every line in lineIDs carries the same
// reference label, returning that label when it does.
func pureLabel(lineIDs []int, reference map[int]string) (label string, pure bool) {
	if len(lineIDs) == 0 {
		return "", true
	}
	label = reference[lineIDs[0]]
	for _, id := range lineIDs[1:] {
		if reference[id] != label {
			return "", false
		}
	}
	return label, true
}
