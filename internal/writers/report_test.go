// internal/writers/report_test.go
package writers

import (
	"bytes"
	"strings"
	"testing"

	"repeatscan-core/engine"
	"repeatscan-core/repeats"
)

func feed(t *testing.T, format string, sortOut, header bool, list []engine.Report) string {
	t.Helper()
	var buf bytes.Buffer
	in, errCh := StartReportWriter(&buf, format, sortOut, header, 4)
	for _, r := range list {
		in <- r
	}
	close(in)
	if err := <-errCh; err != nil {
		t.Fatalf("writer: %v", err)
	}
	return buf.String()
}

func TestTextWriter(t *testing.T) {
	out := feed(t, "text", false, true, []engine.Report{
		{SequenceID: "seq1", Sequence: "ACGTACGT", Ranges: []repeats.Range{{Start: 0, End: 3}, {Start: 4, End: 7}}},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "sequence_id\t") {
		t.Errorf("missing header: %q", lines[0])
	}
	if lines[1] != "seq1\t0\t3\t4\tACGT" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "seq1\t4\t7\t4\tACGT" {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestTextWriterNoRepeatPlaceholder(t *testing.T) {
	out := feed(t, "text", false, false, []engine.Report{
		{SequenceID: "seq1", Sequence: "AC"},
	})
	if strings.TrimRight(out, "\n") != "seq1\t-\t-\t-\t-" {
		t.Errorf("placeholder row = %q", out)
	}
}

func TestJSONWriterNullRepeats(t *testing.T) {
	out := feed(t, "json", false, true, []engine.Report{
		{SequenceID: "seq1", Sequence: "AC"},
	})
	if !strings.Contains(out, `"repeats": null`) {
		t.Errorf("want null repeats for repeat-free sequence:\n%s", out)
	}
}

func TestJSONLWriterSorts(t *testing.T) {
	out := feed(t, "jsonl", true, true, []engine.Report{
		{SequenceID: "seq2", Sequence: "TTTT", Ranges: []repeats.Range{{Start: 0, End: 3}}},
		{SequenceID: "seq1", Sequence: "AAAA", Ranges: []repeats.Range{{Start: 0, End: 3}}},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], `"seq1"`) || !strings.Contains(lines[1], `"seq2"`) {
		t.Errorf("not sorted:\n%s", out)
	}
}

func TestUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	in, errCh := StartReportWriter(&buf, "xml", false, true, 1)
	close(in)
	if err := <-errCh; err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
