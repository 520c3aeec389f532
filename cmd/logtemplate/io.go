package main

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/n0madic/logtemplate/engine"
	"github.com/n0madic/logtemplate/header"
	"github.com/n0madic/logtemplate/store"
)

func writeLinesTo(path string, records []header.Record, assignment map[int]string) error {
	f, err := os.Create(path) // #nosec G304 -- operator-provided output path
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := store.WriteLines(f, records, assignment); err != nil {
		return err
	}
	return f.Close()
}

func writeTemplatesTo(path string, results map[string]engine.Result) error {
	f, err := os.Create(path) // #nosec G304 -- operator-provided output path
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := store.WriteTemplates(f, results); err != nil {
		return err
	}
	return f.Close()
}

// readAssignmentCSV reads a CSV written by 'mine' (or an equivalent
// ground-truth file) and reduces it to a per-LineId lookup of the named
// column's value.
func readAssignmentCSV(path, column string) (map[int]string, error) {
	f, err := os.Open(path) // #nosec G304 -- operator-provided input path
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(rows) == 0 {
		return map[int]string{}, nil
	}

	header := rows[0]
	lineIDCol, colIdx := -1, -1
	for i, name := range header {
		switch name {
		case "LineId":
			lineIDCol = i
		case column:
			colIdx = i
		}
	}
	if lineIDCol < 0 {
		return nil, fmt.Errorf("%s: missing LineId column", path)
	}
	if colIdx < 0 {
		return nil, fmt.Errorf("%s: missing %s column", path, column)
	}

	out := make(map[int]string, len(rows)-1)
	for _, row := range rows[1:] {
		var id int
		if _, err := fmt.Sscanf(row[lineIDCol], "%d", &id); err != nil {
			continue
		}
		out[id] = row[colIdx]
	}
	return out, nil
}
