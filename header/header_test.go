package header

import "testing"

func TestParseExtractsNamedFields(t *testing.T) {
	p, err := New("<Date> <Time> <Pid> <Level>: <Content>")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	records, dropped := p.Parse([]string{
		"081109 203615 148 INFO: Received block blk_123",
		"this does not match the format at all",
	})

	if dropped != 1 {
		t.Fatalf("dropped = %d, want 1", dropped)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}

	r := records[0]
	if r.LineID != 1 {
		t.Fatalf("LineID = %d, want 1", r.LineID)
	}
	if r.Fields["Date"] != "081109" || r.Fields["Pid"] != "148" {
		t.Fatalf("unexpected fields: %+v", r.Fields)
	}
	if r.Content != "Received block blk_123" {
		t.Fatalf("Content = %q", r.Content)
	}
}

func TestParseLineIDsIncrementOnlyOnMatch(t *testing.T) {
	p, err := New("<Level>: <Content>")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	records, dropped := p.Parse([]string{"INFO: a", "no match here", "WARN: b"})
	if dropped != 1 {
		t.Fatalf("dropped = %d, want 1", dropped)
	}
	for i, r := range records {
		if r.LineID != i+1 {
			t.Fatalf("records[%d].LineID = %d, want %d", i, r.LineID, i+1)
		}
	}
}

func TestNewInvalidFormatIsConfigurationError(t *testing.T) {
	// "<>" names no field, so it is left as a stray bracket pair in the
	// literal text, which New rejects.
	if _, err := New("<> <Content>"); err == nil {
		t.Fatal("expected error for invalid log_format")
	}
}
