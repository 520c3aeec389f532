// Package header parses raw log lines into named fields using a bracketed
// log-format string, e.g. "<Date> <Time> <Level> <Content>". It is the
// header-parsing collaborator named only through its interface in the
// inference spec: everything here is upstream of the template-inference
// engine, never downstream of it.
package header

import (
	"fmt"
	"regexp"
	"strings"
)

// maxMatchedLines caps how many raw lines Parse will match, per spec §6.
const maxMatchedLines = 2_000_000

var bracketSplit = regexp.MustCompile(`(<[^<>]+>)`)
var spaceRun = regexp.MustCompile(` +`)

// Record is one successfully parsed line: its 1-based LineID, the named
// fields captured from log_format (including Content), and Content pulled
// out on its own since the engine consumes it directly.
type Record struct {
	LineID  int
	Fields  map[string]string
	Content string
}

// Parser compiles a log_format string into the regex that extracts fields
// from matching raw lines.
type Parser struct {
	re    *regexp.Regexp
	names []string
}

// New compiles log_format into a parser. An invalid format (unbalanced
// brackets, or a field whose name collides case-sensitively) is a
// Configuration error, fatal at start-up per spec §7.
func New(logFormat string) (*Parser, error) {
	pieces := bracketSplit.Split(logFormat, -1)
	fields := bracketSplit.FindAllString(logFormat, -1)

	var pattern strings.Builder
	pattern.WriteString("^")

	for i, piece := range pieces {
		if strings.ContainsAny(piece, "<>") {
			return nil, fmt.Errorf("header: invalid log_format %q: unbalanced bracket in %q", logFormat, piece)
		}
		if i > 0 {
			name := strings.Trim(fields[i-1], "<>")
			pattern.WriteString(fmt.Sprintf("(?P<%s>.*?)", name))
		}
		pattern.WriteString(spaceRun.ReplaceAllString(piece, `\s+`))
	}
	pattern.WriteString("$")

	re, err := regexp.Compile(pattern.String())
	if err != nil {
		return nil, fmt.Errorf("header: invalid log_format %q: %w", logFormat, err)
	}

	names := make([]string, len(fields))
	seen := make(map[string]bool, len(fields))
	for i, f := range fields {
		names[i] = strings.Trim(f, "<>")
		if seen[names[i]] {
			return nil, fmt.Errorf("header: invalid log_format %q: duplicate field <%s>", logFormat, names[i])
		}
		seen[names[i]] = true
	}

	return &Parser{re: re, names: names}, nil
}

// Parse matches every raw line against the compiled format. A line that
// fails to match is silently dropped (spec §7); dropped is the count of
// such lines. Matching stops once maxMatchedLines records have been
// produced.
func (p *Parser) Parse(lines []string) (records []Record, dropped int) {
	id := 1
	for _, line := range lines {
		if len(records) >= maxMatchedLines {
			break
		}

		m := p.re.FindStringSubmatch(line)
		if m == nil {
			dropped++
			continue
		}

		fields := make(map[string]string, len(p.names))
		for _, name := range p.names {
			idx := p.re.SubexpIndex(name)
			if idx >= 0 && idx < len(m) {
				fields[name] = m[idx]
			}
		}

		records = append(records, Record{
			LineID:  id,
			Fields:  fields,
			Content: fields["Content"],
		})
		id++
	}

	return records, dropped
}
