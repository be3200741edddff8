package fasta

import (
	"errors"
	"testing"
)

func TestRecordCheck(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want error
	}{
		{
			name: "valid",
			rec:  NewRecord("id", "desc", "ACGT"),
		},
		{
			name: "validNoDesc",
			rec:  NewRecord("id", "", "ACGT"),
		},
		{
			name: "missingID",
			rec:  NewRecord("", "", "ACGT"),
			want: ErrMissingID,
		},
		{
			name: "missingIDWinsOverBadSequence",
			rec:  NewRecord("", "", "ACG\xc3\xa9T"),
			want: ErrMissingID,
		},
		{
			name: "nonASCIISequence",
			rec:  NewRecord("id", "", "ACG\xc3\xa9T"),
			want: ErrNonASCIISeq,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.rec.Check(); !errors.Is(err, tc.want) {
				t.Fatalf("Check() = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestRecordString(t *testing.T) {
	rec := NewRecord("id", "a description", "ACGT")
	if got, want := rec.String(), ">id a description\nACGT\n"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}

	rec = NewRecord("id", "", "ACGT")
	if got, want := rec.String(), ">id\nACGT\n"; got != want {
		t.Fatalf("String() without desc = %q, want %q", got, want)
	}
}

func TestRecordLen(t *testing.T) {
	if got := NewRecord("id", "", "ACGTACGT").Len(); got != 8 {
		t.Fatalf("Len() = %d, want 8", got)
	}
	if got := (Record{}).Len(); got != 0 {
		t.Fatalf("Len() of zero record = %d, want 0", got)
	}
}

func TestRecordIsEmpty(t *testing.T) {
	if !(Record{}).IsEmpty() {
		t.Fatal("zero record should be empty")
	}
	if NewRecord("id", "", "").IsEmpty() {
		t.Fatal("record with id should not be empty")
	}
	if NewRecord("", "desc", "").IsEmpty() {
		t.Fatal("record with desc should not be empty")
	}
	if NewRecord("", "", "A").IsEmpty() {
		t.Fatal("record with sequence should not be empty")
	}
}
