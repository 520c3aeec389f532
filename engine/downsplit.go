package engine

// downSplit marks right-of-root tokens as variable when positional token
// diversity at that column meets or exceeds threshold, per spec §4.F.
//
// Candidate positions are read off the bucket's first member: any index
// whose frequency differs from the root's. For each candidate, the set of
// distinct tokens seen at that index across every member long enough to
// have it is measured against threshold; a set that meets it contributes
// every one of its tokens to the bucket's variable token set. Finally every
// member's freq-desc view is scanned and any triple whose token is in that
// set is rewritten to <*>.
func downSplit(b *bucket, threshold int) {
	if len(b.members) == 0 {
		return
	}

	first := b.members[0].raw
	candidates := make([]int, 0)
	for i, t := range first {
		if t.Frequency != b.key.Freq {
			candidates = append(candidates, i)
		}
	}

	variable := make(map[string]struct{})

	for _, i := range candidates {
		seen := make(map[string]struct{})
		for _, m := range b.members {
			if i < len(m.raw) {
				seen[m.raw[i].Token] = struct{}{}
			}
		}
		if len(seen) >= threshold {
			for tok := range seen {
				variable[tok] = struct{}{}
			}
		}
	}

	if len(variable) == 0 {
		return
	}

	for _, m := range b.members {
		for i := range m.freqDesc {
			if _, ok := variable[m.freqDesc[i].Token]; ok {
				m.freqDesc[i].Token = "<*>"
			}
		}
	}
}
