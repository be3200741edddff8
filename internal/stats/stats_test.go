package stats

import (
	"strings"
	"testing"

	"github.com/wm75/gxseq/internal/fasta"
)

func collect(t *testing.T, input string) Summary {
	t.Helper()
	var c Collector
	records, err := fasta.NewReader(strings.NewReader(input)).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	for _, rec := range records {
		c.Add(rec)
	}
	return c.Summary()
}

func TestSummaryEmpty(t *testing.T) {
	var c Collector
	s := c.Summary()
	if s.Count != 0 || s.TotalLen != 0 || s.N50 != 0 {
		t.Fatalf("unexpected empty summary: %+v", s)
	}
}

func TestSummaryBasic(t *testing.T) {
	input := ">a\n" + strings.Repeat("A", 10) + "\n" +
		">b\n" + strings.Repeat("C", 20) + "\n" +
		">c\n" + strings.Repeat("G", 30) + "\n"
	s := collect(t, input)
	if s.Count != 3 || s.TotalLen != 60 {
		t.Fatalf("unexpected count/total: %+v", s)
	}
	if s.MinLen != 10 || s.MaxLen != 30 {
		t.Fatalf("unexpected min/max: %+v", s)
	}
	// half of 60 is 30, covered by the single longest sequence
	if s.N50 != 30 {
		t.Fatalf("N50 = %d, want 30", s.N50)
	}
}

func TestSummaryN50NeedsSeveral(t *testing.T) {
	// lengths 8,7,5,4,3,3 -> total 30, half 15, 8+7 covers it
	lengths := []int{8, 7, 5, 4, 3, 3}
	var sb strings.Builder
	for _, l := range lengths {
		sb.WriteString(">r\n")
		sb.WriteString(strings.Repeat("T", l))
		sb.WriteString("\n")
	}
	s := collect(t, sb.String())
	if s.N50 != 7 {
		t.Fatalf("N50 = %d, want 7", s.N50)
	}
}
