// Package translator provides a thin wrapper around external translation
// tools (e.g., seqkit) to translate single FASTA records to protein
// sequences. The package keeps the translation logic outside the CLI
// control flow, and outside this codebase entirely.
package translator

import (
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/wm75/gxseq/internal/fasta"
)

// TranslateRecords uses the provided seqkitPath to translate each record's
// nucleotide sequence into a protein sequence. It returns a map from the
// record's index in records to the translated protein sequence. If
// seqkitPath is empty, it returns an empty map and no error.
//
// This function does not log; callers should log counts or errors as desired.
func TranslateRecords(records []fasta.Record, seqkitPath string, perRecordTimeout time.Duration) (map[int]string, error) {
	res := make(map[int]string)
	if seqkitPath == "" {
		return res, nil
	}
	if perRecordTimeout <= 0 {
		perRecordTimeout = 15 * time.Second
	}

	for i, rec := range records {
		// create temp fasta file for this record
		tf, err := os.CreateTemp("", "record-*.fasta")
		if err != nil {
			// skip this record on error
			continue
		}
		_, _ = tf.WriteString(rec.String())
		fname := tf.Name()
		tf.Close()

		ctx, cancel := context.WithTimeout(context.Background(), perRecordTimeout)
		cmd := exec.CommandContext(ctx, seqkitPath, "translate", "-w", "0", fname)
		out, err := cmd.CombinedOutput()
		cancel()
		_ = os.Remove(fname)
		if err != nil {
			// skip on error
			continue
		}
		prots, perr := fasta.NewReader(strings.NewReader(string(out))).ReadAll()
		if perr != nil || len(prots) == 0 {
			continue
		}
		res[i] = prots[0].Seq
	}

	return res, nil
}
