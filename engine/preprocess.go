package engine

import (
	"regexp"
	"strconv"
	"strings"
)

// datasetPacks lists, in application order, the characters or short runs a
// dataset's expansion step inserts a trailing space after so they tokenize
// as their own word. Order matters: packs are applied left to right.
var datasetPacks = map[string][]string{
	"HealthApp":   {":", "=", "|"},
	"Android":     {"(", ")", ":", "="},
	"HPC":         {"=", "-", ":"},
	"BGL":         {"=", "..", "(", ")"},
	"Hadoop":      {"_", ":", "=", "(", ")"},
	"HDFS":        {":"},
	"Linux":       {"=", ":"},
	"Spark":       {":"},
	"Thunderbird": {":", "="},
	"Windows":     {":", "=", "[", "]"},
	"Zookeeper":   {":", "="},
}

var spaceRunRe = regexp.MustCompile(`\s+`)

// rawLine is a line's ordinal plus its tokens, including the ordinal token
// at index 0, immediately after preprocessing and before frequency indexing.
type rawLine struct {
	ordinal int
	tokens  []string
}

// Preprocessor applies the filter/delimiter regex lists and the
// dataset-specific expansion pack to raw lines, then tokenizes them.
type Preprocessor struct {
	filters    []*regexp.Regexp
	delimiters []*regexp.Regexp
	pack       []string // nil for an unknown or unset dataset tag
}

// NewPreprocessor takes filters and delimiters already compiled: a regex
// compilation failure is a Configuration error reported at start-up (spec
// §7), not something this constructor surfaces.
func NewPreprocessor(filters, delimiters []*regexp.Regexp, dataset string) *Preprocessor {
	return &Preprocessor{
		filters:    filters,
		delimiters: delimiters,
		pack:       datasetPacks[dataset], // nil (skip step 3) for unknown tags
	}
}

// Preprocess runs the six-step pipeline of spec §4.A over one raw line and
// prepends the line ordinal as a decimal token.
func (p *Preprocessor) Preprocess(ordinal int, s string) rawLine {
	for _, re := range p.filters {
		s = re.ReplaceAllLiteralString(s, "<*>")
	}
	for _, re := range p.delimiters {
		s = re.ReplaceAllString(s, "")
	}
	for _, tok := range p.pack {
		s = strings.ReplaceAll(s, tok, tok+" ")
	}
	s = strings.ReplaceAll(s, ",", ", ")
	s = spaceRunRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)

	var tokens []string
	if s != "" {
		tokens = strings.Split(s, " ")
	}

	full := make([]string, 0, len(tokens)+1)
	full = append(full, strconv.Itoa(ordinal))
	full = append(full, tokens...)

	return rawLine{ordinal: ordinal, tokens: full}
}

// PreprocessAll preprocesses every line in the batch, in order.
func (p *Preprocessor) PreprocessAll(lines []string) []rawLine {
	out := make([]rawLine, len(lines))
	for i, s := range lines {
		out[i] = p.Preprocess(i, s)
	}
	return out
}
