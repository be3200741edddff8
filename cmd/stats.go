package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/wm75/gxseq/internal/fasta"
	"github.com/wm75/gxseq/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize record count and sequence lengths (incl. N50)",
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

		var c stats.Collector
		r := fasta.NewReader(in)
		for {
			rec, err := r.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				logger.Fatal("parse failed", "err", err)
			}
			c.Add(rec)
		}

		s := c.Summary()
		bw := bufio.NewWriter(out)
		fmt.Fprintf(bw, "records\t%d\n", s.Count)
		fmt.Fprintf(bw, "total_bases\t%d\n", s.TotalLen)
		fmt.Fprintf(bw, "min_length\t%d\n", s.MinLen)
		fmt.Fprintf(bw, "max_length\t%d\n", s.MaxLen)
		fmt.Fprintf(bw, "n50\t%d\n", s.N50)
		if err := bw.Flush(); err != nil {
			logger.Fatal("flush failed", "err", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
