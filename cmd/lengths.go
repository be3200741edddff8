package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/wm75/gxseq/internal/fasta"
)

var lengthsCmd = &cobra.Command{
	Use:   "lengths",
	Short: "Print id, description and sequence length for each record",
	Run: func(cmd *cobra.Command, args []string) {
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

		bw := bufio.NewWriter(out)
		defer bw.Flush()

		r := fasta.NewReader(in)
		count := 0
		for {
			rec, err := r.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				logger.Fatal("parse failed", "record", count+1, "err", err)
			}
			fmt.Fprintf(bw, "%s\n", lengthsLine(rec))
			count++
		}
		logger.Info("lengths done", "records", count)
	},
}

// lengthsLine renders one tab-separated output row.
func lengthsLine(rec fasta.Record) string {
	return fmt.Sprintf("%s\t%s\t%d", rec.ID, rec.Desc, rec.Len())
}

func init() {
	rootCmd.AddCommand(lengthsCmd)
}
