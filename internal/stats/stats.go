// Package stats computes length statistics over a stream of FASTA
// records without holding the records themselves.
package stats

import (
	"sort"

	"github.com/wm75/gxseq/internal/fasta"
)

// Summary holds aggregate length statistics for a set of records.
type Summary struct {
	Count    int
	TotalLen int
	MinLen   int
	MaxLen   int
	N50      int
}

// Collector accumulates sequence lengths record by record so it composes
// with the streaming reader. Only the lengths are retained.
type Collector struct {
	lengths []int
	total   int
}

// Add registers one record.
func (c *Collector) Add(rec fasta.Record) {
	c.lengths = append(c.lengths, rec.Len())
	c.total += rec.Len()
}

// Summary computes the aggregate statistics for everything added so far.
func (c *Collector) Summary() Summary {
	s := Summary{Count: len(c.lengths), TotalLen: c.total}
	if s.Count == 0 {
		return s
	}

	sorted := make([]int, len(c.lengths))
	copy(sorted, c.lengths)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	s.MaxLen = sorted[0]
	s.MinLen = sorted[len(sorted)-1]

	// N50: length of the shortest sequence in the smallest set of longest
	// sequences covering at least half of the total bases
	half := (c.total + 1) / 2
	run := 0
	for _, l := range sorted {
		run += l
		if run >= half {
			s.N50 = l
			break
		}
	}
	return s
}
