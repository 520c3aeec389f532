package engine

import "testing"

func TestSelectRootFirstEntryQualifiesAtZeroThreshold(t *testing.T) {
	commons := []freqMultiplicity{{Freq: 5, Multiplicity: 1}, {Freq: 2, Multiplicity: 3}}
	got := selectRoot(commons, 0)
	want := RootKey{Freq: 5, Mult: 1}
	if got != want {
		t.Fatalf("selectRoot() = %+v, want %+v", got, want)
	}
}

// With thresholdPer > 1 the candidate fallback (dead at the engine's
// hard-wired call site, spec §9 open question 2) becomes reachable: no
// entry in this list meets the threshold, so the highest-multiplicity
// entry seen during the scan wins.
func TestSelectRootCandidateFallback(t *testing.T) {
	commons := []freqMultiplicity{
		{Freq: 9, Multiplicity: 1},
		{Freq: 7, Multiplicity: 4},
		{Freq: 3, Multiplicity: 2},
	}
	got := selectRoot(commons, 1.5) // T = 4*1.5 = 6, nothing qualifies
	want := RootKey{Freq: 7, Mult: 4}
	if got != want {
		t.Fatalf("selectRoot() = %+v, want %+v", got, want)
	}
}

func TestBuildBucketsGroupsByRootKey(t *testing.T) {
	lines := vectorize(frequencyTable{
		{Column: 1, Token: "a"}: 2,
		{Column: 2, Token: "x"}: 1,
		{Column: 2, Token: "y"}: 1,
	}, []rawLine{
		{ordinal: 0, tokens: []string{"0", "a", "x"}},
		{ordinal: 1, tokens: []string{"1", "a", "y"}},
	})

	buckets := buildBuckets(lines)
	if len(buckets) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(buckets))
	}
	for _, b := range buckets {
		if len(b.members) != 2 {
			t.Fatalf("expected 2 members, got %d", len(b.members))
		}
		for _, m := range b.members {
			last := m.freqDesc[len(m.freqDesc)-1]
			if last.Column != sentinelColumn {
				t.Fatalf("expected sentinel appended, got %+v", last)
			}
		}
	}
}
