package engine

// selectRoot picks a root key for one line from its commons view, per
// spec §4.D: T = M * thresholdPer where M is the largest multiplicity in
// the commons list; the first entry at or above T wins, non-strict. The
// call site always passes thresholdPer 0, which makes every line qualify
// on its first commons entry and leaves the candidate fallback below dead
// in practice (flagged in DESIGN.md as an open question, preserved here
// since a caller could still exercise it directly).
func selectRoot(commons []freqMultiplicity, thresholdPer float64) RootKey {
	maxMult := 0
	for _, fm := range commons {
		if fm.Multiplicity > maxMult {
			maxMult = fm.Multiplicity
		}
	}
	threshold := float64(maxMult) * thresholdPer

	var candidate freqMultiplicity
	haveCandidate := false

	for _, fm := range commons {
		if float64(fm.Multiplicity) >= threshold {
			return RootKey{Freq: fm.Freq, Mult: fm.Multiplicity}
		}
		if !haveCandidate || fm.Multiplicity > candidate.Multiplicity {
			candidate = fm
			haveCandidate = true
		}
	}

	return RootKey{Freq: candidate.Freq, Mult: candidate.Multiplicity}
}

// rootThresholdPer is hard-wired to 0 at the call site, per spec §4.D.
const rootThresholdPer = 0.0

// buildBuckets runs root selection over one length bin's lines, appends
// the sentinel triple (ordinal, -1, -1) to each line's freq-desc view, and
// groups the lines into root buckets keyed by the chosen root key.
func buildBuckets(lines []*line) map[RootKey]*bucket {
	buckets := make(map[RootKey]*bucket)

	for _, l := range lines {
		key := selectRoot(l.commons, rootThresholdPer)

		l.freqDesc = append(l.freqDesc, Triple{
			Frequency: l.ordinal,
			Token:     sentinelToken,
			Column:    sentinelColumn,
		})

		b, ok := buckets[key]
		if !ok {
			b = &bucket{key: key}
			buckets[key] = b
		}
		b.members = append(b.members, l)
	}

	return buckets
}
