package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/wm75/gxseq/internal/fasta"
)

var (
	filterMin int
	filterMax int
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Keep records whose sequence length falls within --min/--max",
	Run: func(cmd *cobra.Command, args []string) {
		min := filterMin
		max := filterMax
		// config provides defaults when flags are left unset
		if min == 0 && cfg.MinLength > 0 {
			min = cfg.MinLength
		}
		if max == 0 && cfg.MaxLength > 0 {
			max = cfg.MaxLength
		}

		in, err := openInput()
		if err != nil {
			logger.Fatal("failed to open input", "err", err)
		}
		defer in.Close()
		out, err := openOutput()
		if err != nil {
			logger.Fatal("failed to open output", "err", err)
		}
		defer out.Close()

		r := fasta.NewReader(in)
		w := fasta.NewWriter(out)
		kept, seen := 0, 0
		for {
			rec, err := r.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				logger.Fatal("parse failed", "record", seen+1, "err", err)
			}
			seen++
			if !keepLength(rec.Len(), min, max) {
				continue
			}
			if err := w.Write(rec); err != nil {
				logger.Fatal("write failed", "id", rec.ID, "err", err)
			}
			kept++
		}
		if err := w.Flush(); err != nil {
			logger.Fatal("flush failed", "err", err)
		}
		logger.Info("filter done", "seen", seen, "kept", kept, "min", min, "max", max)
	},
}

// keepLength reports whether a sequence of length n passes the bounds.
// Zero means no bound on that side.
func keepLength(n, min, max int) bool {
	if min > 0 && n < min {
		return false
	}
	if max > 0 && n > max {
		return false
	}
	return true
}

func init() {
	rootCmd.AddCommand(filterCmd)
	filterCmd.Flags().IntVar(&filterMin, "min", 0, "minimum sequence length (0 = no bound)")
	filterCmd.Flags().IntVar(&filterMax, "max", 0, "maximum sequence length (0 = no bound)")
}
