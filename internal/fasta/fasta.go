// Package fasta implements a streaming reader and writer for FASTA
// formatted sequence data. The reader yields one record at a time from a
// buffered source, so memory use is bounded by the largest single record
// rather than the file size.
package fasta

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode"
)

// ErrExpectedRecordStart is returned when the next unconsumed line does
// not begin with '>' where a record header is required. The error is
// terminal: the reader reports end of input on every later call.
var ErrExpectedRecordStart = errors.New("fasta: expected '>' at record start")

// Reader reads FASTA records from a buffered source. It keeps a one-line
// lookahead so record boundaries can be detected without rereading, and a
// sticky failure flag so a reader that has errored behaves as exhausted.
// A Reader is not safe for concurrent use.
type Reader struct {
	br     *bufio.Reader
	cache  string // last line read but not yet consumed into a record
	failed bool
}

// NewReader returns a Reader consuming r. No data is read until the first
// call to Read. The Reader takes ownership of r; reading from the same
// source through another handle while the Reader is live corrupts both.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// Read returns the next record in the stream. At end of input it returns
// io.EOF with a zero Record; after any failure, structural or I/O, every
// subsequent call also returns io.EOF. Records are not validated for
// content here, see Record.Check.
func (r *Reader) Read() (Record, error) {
	if r.failed {
		return Record{}, io.EOF
	}

	if r.cache == "" {
		line, err := r.readLine()
		if err != nil {
			r.failed = true
			return Record{}, err
		}
		if line == "" {
			return Record{}, io.EOF
		}
		r.cache = line
	}

	if r.cache[0] != '>' {
		r.failed = true
		return Record{}, ErrExpectedRecordStart
	}

	var rec Record
	header := strings.TrimRightFunc(r.cache[1:], unicode.IsSpace)
	if i := strings.IndexFunc(header, unicode.IsSpace); i >= 0 {
		rec.ID = header[:i]
		rec.Desc = strings.TrimLeftFunc(header[i:], unicode.IsSpace)
	} else {
		rec.ID = header
	}

	var seq strings.Builder
	for {
		r.cache = ""
		line, err := r.readLine()
		if err != nil {
			r.failed = true
			return Record{}, err
		}
		if line == "" || line[0] == '>' {
			// either true end of input, or the header of the next
			// record, which stays cached for the following Read
			r.cache = line
			break
		}
		seq.WriteString(strings.TrimRightFunc(line, unicode.IsSpace))
	}
	rec.Seq = seq.String()

	if rec.IsEmpty() {
		// a bare ">" with nothing after it parses to nothing at all
		r.failed = true
		return Record{}, io.EOF
	}
	return rec, nil
}

// ReadAll drains the reader, collecting records until io.EOF. It returns
// the records read so far and the first real error encountered.
func (r *Reader) ReadAll() ([]Record, error) {
	var records []Record
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
}

// readLine reads one line including its terminator. It returns "" with a
// nil error at true end of input; a final line without a newline is still
// returned whole.
func (r *Reader) readLine() (string, error) {
	line, err := r.br.ReadString('\n')
	if err == io.EOF {
		return line, nil
	}
	return line, err
}
