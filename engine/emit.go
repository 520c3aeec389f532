package engine

import (
	"sort"
	"strings"
)

// emit normalizes and canonicalizes every bucket's mutated freq-desc views
// into templates, per spec §4.G, and aggregates line ordinals per template.
//
// The sentinel triple (column -1) is located explicitly rather than
// dropped by trailing position after an ascending sort: sorting ascending
// places column -1 first, not last, so a positional "drop the last
// element" would instead truncate the highest real column. This
// implementation extracts the sentinel by its Column marker wherever it
// sits, then sorts the remaining columns ascending — the reading that
// satisfies both "sentinel is extracted first" and the arity law of
// spec §3/§8 (see DESIGN.md for the open-question writeup).
func emit(buckets map[RootKey]*bucket, tag bool) map[string]Result {
	results := make(map[string]Result)

	for _, b := range buckets {
		for _, m := range b.members {
			ordinal, rest := extractSentinel(m.freqDesc)

			sort.SliceStable(rest, func(a, c int) bool {
				return rest[a].Column < rest[c].Column
			})

			tokens := make([]string, len(rest))
			for i, t := range rest {
				tokens[i] = normalizeToken(t.Token, tag)
			}

			key := strings.Join(tokens, " ")
			res, ok := results[key]
			if !ok {
				res = Result{Template: tokens}
			}
			res.LineIDs = append(res.LineIDs, ordinal)
			results[key] = res
		}
	}

	return results
}

// extractSentinel removes the sentinel triple from a freq-desc view and
// returns the line's ordinal plus the remaining real triples.
func extractSentinel(freqDesc []Triple) (ordinal int, rest []Triple) {
	rest = make([]Triple, 0, len(freqDesc)-1)
	found := false

	for _, t := range freqDesc {
		if !found && t.Column == sentinelColumn {
			ordinal = t.Frequency
			found = true
			continue
		}
		rest = append(rest, t)
	}

	if !found {
		panic("engine: sentinel triple missing from freq-desc view")
	}

	return ordinal, rest
}

func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// normalizeToken applies the five ordered normalization rules of spec §4.G.
func normalizeToken(token string, tag bool) string {
	switch {
	case strings.Contains(token, "/"):
		return "<*>"
	case digitsOnly(token):
		return "<*>"
	case strings.Contains(token, "<*>"):
		return "<*>"
	case tag && containsDigit(token):
		return "<*>"
	default:
		return token
	}
}

func containsDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
