package fasta

import "errors"

var (
	// ErrMissingID is reported by Check when a record has no identifier.
	ErrMissingID = errors.New("fasta: expecting id for record")
	// ErrNonASCIISeq is reported by Check when a sequence contains a byte
	// outside the ASCII range.
	ErrNonASCIISeq = errors.New("fasta: non-ascii character found in sequence")
)

// Record represents a single FASTA entry. Desc is the free-text remainder
// of the header line; the empty string means the header carried no
// description (trailing whitespace after the id does not count as one).
type Record struct {
	ID   string
	Desc string
	Seq  string
}

// NewRecord builds a Record from its attributes.
func NewRecord(id, desc, seq string) Record {
	return Record{ID: id, Desc: desc, Seq: seq}
}

// Len returns the length of the sequence in bases.
func (r Record) Len() int {
	return len(r.Seq)
}

// IsEmpty reports whether the record carries no data at all. The Reader
// uses the empty record as its end-of-stream sentinel.
func (r Record) IsEmpty() bool {
	return r.ID == "" && r.Desc == "" && r.Seq == ""
}

// Check validates the record and returns ErrMissingID or ErrNonASCIISeq,
// or nil if the record is well formed. Parsing never rejects a record for
// content reasons, so callers that care must invoke Check themselves.
func (r Record) Check() error {
	if r.ID == "" {
		return ErrMissingID
	}
	for i := 0; i < len(r.Seq); i++ {
		if r.Seq[i] > 0x7f {
			return ErrNonASCIISeq
		}
	}
	return nil
}

// String renders the record as FASTA text: ">id desc\nSEQ\n", with the
// description and its separating space omitted when absent. The sequence
// is always emitted as a single line, so the original line wrapping of a
// multi-line input is not reproduced. That is intentional: format->parse->
// format is stable, parse->format->parse is not byte-identical.
func (r Record) String() string {
	if r.Desc != "" {
		return ">" + r.ID + " " + r.Desc + "\n" + r.Seq + "\n"
	}
	return ">" + r.ID + "\n" + r.Seq + "\n"
}
