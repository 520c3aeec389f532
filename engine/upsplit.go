package engine

// upSplit marks left-of-root tokens as variable when they do not co-occur
// with the root on every member line of the bucket, per spec §4.E.
//
// For each member, the root key's position in that member's freq-pairs-desc
// view bounds a prefix (indices before the root). Every (freq, multiplicity)
// entry seen in any member's prefix is tallied across the whole bucket; an
// entry whose total tally equals the root's frequency component co-occurs
// with the root everywhere and is left alone. The first entry that doesn't
// triggers one replacement pass over every member's freq-desc view, and
// bucket processing stops there — preserved exactly as the source does it,
// including the early termination (see DESIGN.md open question).
func upSplit(b *bucket) {
	type tally struct {
		entry freqMultiplicity
		count int
	}

	order := make([]freqMultiplicity, 0)
	counts := make(map[freqMultiplicity]*tally)

	for _, m := range b.members {
		p := rootPosition(m.freqPairs, b.key)
		for _, entry := range m.freqPairs[:p] {
			t, ok := counts[entry]
			if !ok {
				t = &tally{entry: entry}
				counts[entry] = t
				order = append(order, entry)
			}
			t.count++
		}
	}

	for _, entry := range order {
		if counts[entry].count == b.key.Freq {
			continue
		}

		for _, m := range b.members {
			for i := range m.freqDesc {
				if m.freqDesc[i].Frequency == entry.Freq {
					m.freqDesc[i].Token = "<*>"
				}
			}
		}
		break
	}
}

// rootPosition locates the root key's index in a member's freq-pairs-desc
// view. Its absence is a programmer invariant violation: every bucket
// member chose this key by construction.
func rootPosition(freqPairs []freqMultiplicity, key RootKey) int {
	for i, fm := range freqPairs {
		if fm.Freq == key.Freq && fm.Multiplicity == key.Mult {
			return i
		}
	}
	panic("engine: root key absent from member's freq-pairs-desc view")
}
