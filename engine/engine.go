package engine

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Mine runs the full A-through-G pipeline over lines and returns the
// deduplicated template catalog keyed by the space-joined template, per
// spec §6. Groups (length bins) are independent and are dispatched to a
// bounded worker pool; within one bucket the splitters mutate shared state
// and are never run concurrently with each other.
//
// A programmer invariant violation (spec §7) panics rather than returning
// an error: callers at the process boundary (CLI, HTTP) are expected to
// recover it and report it as a bug, not retry.
func Mine(lines []string, cfg Config) (map[string]Result, error) {
	pre := NewPreprocessor(cfg.FilterRegexes, cfg.DelimiterRegexes, cfg.Dataset)
	rawLines := pre.PreprocessAll(lines)

	freq, byLength := buildIndex(rawLines)

	lengths := make([]int, 0, len(byLength))
	for l := range byLength {
		lengths = append(lengths, l)
	}

	groupResults := make([]map[string]Result, len(lengths))

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(max(1, runtime.GOMAXPROCS(0)))

	for i, length := range lengths {
		i, length := i, length
		g.Go(func() error {
			groupResults[i] = mineGroup(freq, byLength[length], cfg)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return mergeResults(groupResults), nil
}

// mineGroup runs stages C through G over one length bin.
func mineGroup(freq frequencyTable, rawLines []rawLine, cfg Config) map[string]Result {
	lines := vectorize(freq, rawLines)
	buckets := buildBuckets(lines)

	for _, b := range buckets {
		upSplit(b)
		downSplit(b, cfg.DownThreshold)
	}

	results := emit(buckets, cfg.Tag)

	for _, l := range lines {
		putTripleSlice(l.raw)
	}

	return results
}

// mergeResults combines per-group template maps. Templates from different
// groups never collide in practice (their arity differs, per spec's
// arity law), but the merge is defensive rather than assuming it.
func mergeResults(groups []map[string]Result) map[string]Result {
	out := make(map[string]Result)
	for _, group := range groups {
		for key, res := range group {
			existing, ok := out[key]
			if !ok {
				out[key] = res
				continue
			}
			existing.LineIDs = append(existing.LineIDs, res.LineIDs...)
			out[key] = existing
		}
	}
	return out
}
