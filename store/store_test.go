package store

import (
	"strings"
	"testing"

	"github.com/n0madic/logtemplate/engine"
	"github.com/n0madic/logtemplate/header"
)

func TestWriteLinesIncludesTemplateColumn(t *testing.T) {
	records := []header.Record{
		{LineID: 1, Fields: map[string]string{"Date": "081109", "Content": "Received block blk_1"}, Content: "Received block blk_1"},
		{LineID: 2, Fields: map[string]string{"Date": "081109", "Content": "Received block blk_2"}, Content: "Received block blk_2"},
	}
	assignment := map[int]string{1: "Received block <*>", 2: "Received block <*>"}

	var buf strings.Builder
	if err := WriteLines(&buf, records, assignment); err != nil {
		t.Fatalf("WriteLines() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "LineId,Date,Template") {
		t.Fatalf("missing expected header, got %q", out)
	}
	if !strings.Contains(out, "1,081109,Received block <*>") {
		t.Fatalf("missing expected row, got %q", out)
	}
}

func TestWriteLinesSkipsUnassignedRecords(t *testing.T) {
	records := []header.Record{{LineID: 1, Fields: map[string]string{}}}
	var buf strings.Builder
	if err := WriteLines(&buf, records, map[int]string{}); err != nil {
		t.Fatalf("WriteLines() error = %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected only the header row, got %v", lines)
	}
}

func TestWriteTemplatesOrdersByCountDescending(t *testing.T) {
	results := map[string]engine.Result{
		"a <*>": {Template: []string{"a", "<*>"}, LineIDs: []int{1}},
		"b c":   {Template: []string{"b", "c"}, LineIDs: []int{1, 2, 3}},
	}

	var buf strings.Builder
	if err := WriteTemplates(&buf, results); err != nil {
		t.Fatalf("WriteTemplates() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[0] != "b c  3" {
		t.Fatalf("lines[0] = %q, want %q", lines[0], "b c  3")
	}
	if lines[1] != "a <*>  1" {
		t.Fatalf("lines[1] = %q, want %q", lines[1], "a <*>  1")
	}
}
