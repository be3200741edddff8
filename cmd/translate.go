package main

import (
	"os/exec"
	"time"

	"github.com/spf13/cobra"

	"github.com/wm75/gxseq/internal/fasta"
	"github.com/wm75/gxseq/internal/translator"
)

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Translate nucleotide records to protein via an external seqkit",
	Run: func(cmd *cobra.Command, args []string) {
		seqkitPath, err := exec.LookPath("seqkit")
		if err != nil {
			logger.Fatal("seqkit not found in PATH; translation needs the external tool")
		}
		logger.Debug("seqkit path", "path", seqkitPath)

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

		// translation shells out per record, so the whole set is read first
		records, err := fasta.NewReader(in).ReadAll()
		if err != nil {
			logger.Fatal("parse failed", "err", err)
		}

		start := time.Now()
		proteins, err := translator.TranslateRecords(records, seqkitPath, 15*time.Second)
		if err != nil {
			logger.Fatal("translation failed", "err", err)
		}
		logger.Info("translation finished", "records", len(records), "translated", len(proteins), "duration_ms", time.Since(start).Milliseconds())

		w := fasta.NewWriter(out)
		for i, rec := range records {
			prot, ok := proteins[i]
			if !ok {
				logger.Warn("no translation produced", "id", rec.ID)
				continue
			}
			if err := w.Write(fasta.NewRecord(rec.ID, rec.Desc, prot)); err != nil {
				logger.Fatal("write failed", "id", rec.ID, "err", err)
			}
		}
		if err := w.Flush(); err != nil {
			logger.Fatal("flush failed", "err", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(translateCmd)
}
