package main

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/wm75/gxseq/internal/fasta"
	"github.com/wm75/gxseq/internal/ncbi"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <accession>...",
	Short: "Download nucleotide FASTA records from NCBI by accession",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out, err := openOutput()
		if err != nil {
			logger.Fatal("failed to open output", "err", err)
		}
		defer out.Close()
		w := fasta.NewWriter(out)

		total := 0
		for _, acc := range args {
			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			text, err := ncbi.FetchFasta(ctx, acc)
			cancel()
			if err != nil {
				logger.Fatal("ncbi fetch failed", "accession", acc, "err", err)
			}
			if text == "" {
				logger.Warn("ncbi returned no data", "accession", acc)
				continue
			}
			// parse what NCBI returned so output is canonical gxseq FASTA
			records, err := fasta.NewReader(strings.NewReader(text)).ReadAll()
			if err != nil {
				logger.Fatal("ncbi response is not parseable FASTA", "accession", acc, "err", err)
			}
			if err := w.WriteAll(records); err != nil {
				logger.Fatal("write failed", "accession", acc, "err", err)
			}
			total += len(records)
			logger.Info("fetched", "accession", acc, "records", len(records))
		}
		if err := w.Flush(); err != nil {
			logger.Fatal("flush failed", "err", err)
		}
		logger.Info("fetch done", "accessions", len(args), "records", total)
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}
