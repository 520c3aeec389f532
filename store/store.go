// Package store writes the two output artifacts spec §6 names: a per-line
// CSV augmenting the header-parsed table with a Template column, and a
// per-template flat file of space-joined tokens and member counts.
package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/n0madic/logtemplate/engine"
	"github.com/n0madic/logtemplate/header"
)

// WriteLines writes the per-line CSV: one header row (LineId, the named
// header fields in alphabetical order, Template), then one data row per
// record in records, in order. Records whose LineID has no engine
// assignment are skipped — the header parser and the engine can disagree
// about which lines survived (e.g. an empty-input run).
func WriteLines(w io.Writer, records []header.Record, assignment map[int]string) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	fieldOrder := fieldOrderOf(records)

	headerRow := append([]string{"LineId"}, fieldOrder...)
	headerRow = append(headerRow, "Template")
	if err := cw.Write(headerRow); err != nil {
		return fmt.Errorf("store: write header: %w", err)
	}

	for _, r := range records {
		template, ok := assignment[r.LineID]
		if !ok {
			continue
		}

		row := make([]string, 0, len(fieldOrder)+2)
		row = append(row, fmt.Sprintf("%d", r.LineID))
		for _, f := range fieldOrder {
			row = append(row, r.Fields[f])
		}
		row = append(row, template)

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("store: write row for line %d: %w", r.LineID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// fieldOrderOf returns the header field names seen across records, sorted
// alphabetically, excluding Content (Content is folded into the template, not
// repeated verbatim).
func fieldOrderOf(records []header.Record) []string {
	var order []string
	seen := make(map[string]bool)
	for _, r := range records {
		for name := range r.Fields {
			if name == "Content" || seen[name] {
				continue
			}
			seen[name] = true
			order = append(order, name)
		}
	}
	sort.Strings(order)
	return order
}

// WriteTemplates writes the per-template flat file: one line per template,
// the space-joined tokens, two spaces, then the member count, ordered by
// descending member count (ties broken by the template text itself so
// output is deterministic across runs).
func WriteTemplates(w io.Writer, results map[string]engine.Result) error {
	rows := make([]engine.Result, 0, len(results))
	for _, r := range results {
		rows = append(rows, r)
	}
	sort.Slice(rows, func(i, j int) bool {
		if len(rows[i].LineIDs) != len(rows[j].LineIDs) {
			return len(rows[i].LineIDs) > len(rows[j].LineIDs)
		}
		return strings.Join(rows[i].Template, " ") < strings.Join(rows[j].Template, " ")
	})

	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s  %d\n", strings.Join(r.Template, " "), len(r.LineIDs)); err != nil {
			return fmt.Errorf("store: write template row: %w", err)
		}
	}

	return nil
}
