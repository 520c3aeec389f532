package engine

import "sort"

// vectorize builds the line-triple-vector and its three derived views
// (freq-desc, commons, freq-pairs-desc) for every line in one length bin.
// The raw vector covers columns 1..length-1; column 0 (the ordinal) is
// tracked separately and reattached as a sentinel triple during root
// selection.
func vectorize(freq frequencyTable, rawLines []rawLine) []*line {
	out := make([]*line, len(rawLines))

	for i, rl := range rawLines {
		raw := getTripleSlice()
		for col := 1; col < len(rl.tokens); col++ {
			tok := rl.tokens[col]
			raw = append(raw, Triple{
				Frequency: freq[columnToken{Column: col, Token: tok}],
				Token:     tok,
				Column:    col,
			})
		}

		freqDesc := append([]Triple(nil), raw...)
		sort.SliceStable(freqDesc, func(a, b int) bool {
			return freqDesc[a].Frequency > freqDesc[b].Frequency
		})

		commons := commonsOf(raw)

		freqPairs := append([]freqMultiplicity(nil), commons...)
		sort.SliceStable(freqPairs, func(a, b int) bool {
			return freqPairs[a].Freq > freqPairs[b].Freq
		})

		out[i] = &line{
			ordinal:   rl.ordinal,
			length:    len(rl.tokens),
			raw:       raw,
			freqDesc:  freqDesc,
			commons:   commons,
			freqPairs: freqPairs,
		}
	}

	return out
}

// commonsOf counts the multiset of frequencies appearing in raw (in raw's
// column order, first-seen wins on ties) and returns it sorted by
// multiplicity descending. The sort is stable, so ties keep the first-seen
// order, matching Counter.most_common's behavior over an insertion-ordered
// map.
func commonsOf(raw []Triple) []freqMultiplicity {
	order := make([]int, 0, len(raw))
	index := make(map[int]int, len(raw))

	for _, t := range raw {
		if idx, ok := index[t.Frequency]; ok {
			order[idx].Multiplicity++
			continue
		}
		index[t.Frequency] = len(order)
		order = append(order, freqMultiplicity{Freq: t.Frequency, Multiplicity: 1})
	}

	sort.SliceStable(order, func(a, b int) bool {
		return order[a].Multiplicity > order[b].Multiplicity
	})

	return order
}
