package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/wm75/gxseq/internal/config"
	"github.com/wm75/gxseq/internal/fasta"
	"github.com/wm75/gxseq/internal/ncbi"
)

// version is the program version. It can be overridden at build time with -ldflags "-X main.version=..."
var version = "0.1.0"

// timestampWriter prefixes each flushed line with an RFC3339 timestamp.
type timestampWriter struct {
	w   io.Writer
	buf bytes.Buffer
	mu  sync.Mutex
}

// Write buffers bytes until a newline is found; for each full line, write a timestamped
// line to the underlying writer. Partial lines are kept in the buffer.
func (t *timestampWriter) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	n, _ := t.buf.Write(p)
	total := n
	for {
		line, err := t.buf.ReadString('\n')
		if err != nil {
			break
		}
		ts := time.Now().Format(time.RFC3339)
		if _, err := t.w.Write([]byte(ts + " " + line)); err != nil {
			return total, err
		}
	}
	return total, nil
}

// terminalWriter wraps an io.Writer and exposes an Fd method so libraries that
// inspect the file descriptor (for TTY detection) can work with wrapped writers.
type terminalWriter struct {
	w  io.Writer
	fd uintptr
}

func (tw *terminalWriter) Write(p []byte) (int, error) { return tw.w.Write(p) }

// Fd exposes the underlying file descriptor (e.g., os.Stderr.Fd()).
func (tw *terminalWriter) Fd() uintptr { return tw.fd }

var (
	cfg    *config.Config
	logger *log.Logger

	configFlag string
	inputFlag  string
	outputFlag string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:     "gxseq",
	Short:   "Streaming FASTA toolkit",
	Long:    "gxseq reads, validates, reformats and summarizes FASTA sequence files one record at a time.",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		ncbi.FlushCache()
	},
}

// setup loads .env and config, merges flags and builds the logger. A
// config file that exists but does not parse is a hard error rather than
// a silent fall back to defaults.
func setup() error {
	// .env may hold NCBI_API_KEY and friends; absence is fine
	_ = godotenv.Load()

	var err error
	cfg, err = config.LoadConfig(configFlag)
	if err != nil {
		return fmt.Errorf("invalid config file: %w", err)
	}

	// merge CLI flags into config (flags override config when provided)
	if inputFlag != "" {
		cfg.InputFasta = inputFlag
	}
	if outputFlag != "" {
		cfg.OutputFasta = outputFlag
	}

	logger = newLogger(cfg, verbose)
	logger.Debug("loaded config", "input_fasta", cfg.InputFasta, "output_fasta", cfg.OutputFasta, "log_file", cfg.LogFile, "log_level", cfg.LogLevel)

	// apply ncbi config
	if cfg.NcbiCachePath != "" {
		if absPath, aerr := filepath.Abs(cfg.NcbiCachePath); aerr == nil {
			ncbi.SetCacheFilePath(absPath)
			logger.Debug("ncbi cache path set from config (absolute)", "path", absPath)
		} else {
			ncbi.SetCacheFilePath(cfg.NcbiCachePath)
		}
	}
	if cfg.NcbiApiKey != "" {
		// set the API key directly from config.json (config-only mode)
		os.Setenv("NCBI_API_KEY", cfg.NcbiApiKey)
		logger.Debug("ncbi api key provided in config (not logged)")
	}
	if cfg.NcbiCacheTTLSecs > 0 {
		ncbi.SetCacheTTLSeconds(cfg.NcbiCacheTTLSecs)
	}
	return nil
}

// newLogger builds the charm logger used by every subcommand, writing to
// stderr and, when configured, a log file as well.
func newLogger(cfg *config.Config, verbose bool) *log.Logger {
	var loggerOut io.Writer = os.Stderr
	if cfg.LogFile != "" {
		if f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			// write to both stderr and file so running interactively still shows logs
			loggerOut = io.MultiWriter(os.Stderr, f)
		}
	}
	// If stderr is a terminal-like device, force colors for libraries that honor FORCE_COLOR.
	if fi, err := os.Stderr.Stat(); err == nil {
		if fi.Mode()&os.ModeCharDevice != 0 {
			_ = os.Setenv("FORCE_COLOR", "1")
		}
	}
	// back the logger with the timestamping writer and expose Fd so charm.log can detect TTY
	tw := &timestampWriter{w: loggerOut}
	l := log.New(&terminalWriter{w: tw, fd: os.Stderr.Fd()})

	if verbose {
		l.SetLevel(log.DebugLevel)
		return l
	}
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		l.SetLevel(log.DebugLevel)
	case "info", "":
		l.SetLevel(log.InfoLevel)
	case "warn", "warning":
		l.SetLevel(log.WarnLevel)
	case "error":
		l.SetLevel(log.ErrorLevel)
	default:
		l.SetLevel(log.InfoLevel)
		l.Warn("unknown log_level in config.json, defaulting to info", "provided", cfg.LogLevel)
	}
	return l
}

// openInput opens the configured input FASTA ("-" or empty means stdin).
func openInput() (io.ReadCloser, error) {
	path := cfg.InputFasta
	if path == "" {
		path = "-"
	}
	return fasta.Open(path)
}

// openOutput opens the configured output path, or stdout when none is set.
func openOutput() (io.WriteCloser, error) {
	if cfg.OutputFasta == "" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(cfg.OutputFasta)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func main() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config.json (optional)")
	rootCmd.PersistentFlags().StringVarP(&inputFlag, "in", "i", "", "input FASTA file path ('-' for stdin)")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "out", "o", "", "output file path (default stdout)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose (debug) logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
