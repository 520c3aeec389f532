// Package engine implements the template-inference pipeline: tokenization
// and frequency indexing, length-based grouping, root-token selection, and
// up-split/down-split refinement, producing a deduplicated template catalog
// from a finite batch of pre-tokenized log lines.
package engine

// Triple is one position of one line: the token seen there, the column it
// occupies, and the token's global frequency at that column. Frequency is
// looked up once when the triple is built and never recomputed.
type Triple struct {
	Frequency int
	Token     string
	Column    int
}

// sentinelColumn marks the ordinal triple appended to a line's freq-desc
// view during root selection, so the emitter can recover the line's
// ordinal from the triple carrying this column, wherever it sits.
const sentinelColumn = -1

// sentinelToken is the placeholder token carried by the sentinel triple; it
// is never read back, only its Column and Frequency are.
const sentinelToken = "-1"

// RootKey identifies a root bucket: the (frequency, multiplicity) pair a
// line's commons view qualified on during root selection.
type RootKey struct {
	Freq int
	Mult int
}

// freqMultiplicity is one entry of a commons or freq-pairs-desc view: a
// distinct frequency value seen in a line's triple vector, and how many
// triples in that vector carry it.
type freqMultiplicity struct {
	Freq         int
	Multiplicity int
}

// columnToken is the frequency table's key: two tokens at different columns
// are distinct keys even when their strings match.
type columnToken struct {
	Column int
	Token  string
}

// line is one record of the batch, carrying the raw tokens plus the views
// derived from them in stages C and D. raw and freqDesc are kept as
// separate backing arrays (never aliased) so that up/down-split mutations
// to freqDesc never leak into the down-splitter's raw view, matching the
// source's separation of views.
type line struct {
	ordinal int
	length  int // token count including the ordinal column

	raw       []Triple           // columns 1..length-1, in column order (the "bucket_inorder" source)
	freqDesc  []Triple           // raw, sorted by frequency descending; gains a sentinel in stage D; mutated by E/F
	commons   []freqMultiplicity // frequency multiset of raw, multiplicity descending
	freqPairs []freqMultiplicity // commons, re-sorted by frequency descending
}

// bucket is the set of lines that chose a common root key, plus the state
// the up- and down-splitters mutate jointly. Splitters are not safe to run
// concurrently against the same bucket.
type bucket struct {
	key     RootKey
	members []*line
}

// Result is one emitted template and the ordinals of every line assigned to
// it.
type Result struct {
	Template []string
	LineIDs  []int
}
