// Package main provides the CLI entry point for excelpreview.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
	"go.uber.org/zap"

	"github.com/ukaji3/excelpreview-go/pkg/config"
	"github.com/ukaji3/excelpreview-go/pkg/excelpreview"
	"github.com/ukaji3/excelpreview-go/pkg/excelpreview/cache"
	"github.com/ukaji3/excelpreview-go/pkg/excelpreview/output"
	"github.com/ukaji3/excelpreview-go/pkg/locking"
	"github.com/ukaji3/excelpreview-go/pkg/log"
	"github.com/ukaji3/excelpreview-go/pkg/metrics"
	"github.com/ukaji3/excelpreview-go/pkg/server"
)

var (
	mode     string
	logLevel string

	sheetName  string
	asJSON     bool
	pretty     bool
	outputPath string
	showStats  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "excelpreview",
		Short: "Serve the read_excel MCP tool over stdio",
		Long: `excelpreview previews Excel workbooks (.xlsx) and CSV files for
language-model agents. Without a subcommand it serves the read_excel tool
over MCP on stdin/stdout; logs go to stderr.`,
		Args:          cobra.NoArgs,
		RunE:          runServe,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&mode, "mode", "", "Extraction mode: light, standard, verbose (overrides EXCEL_MCP_MODE)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides LOG_LEVEL)")

	previewCmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Print the read_excel report for a local file",
		Args:  cobra.ExactArgs(1),
		RunE:  runPreview,
	}
	previewCmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet to preview (default: first sheet)")
	previewCmd.Flags().BoolVar(&asJSON, "json", false, "Print the preview as JSON instead of the text report")
	previewCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	previewCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	previewCmd.Flags().BoolVar(&showStats, "stats", false, "Print latency statistics to stderr")

	rootCmd.AddCommand(previewCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig reads the environment and applies command-line overrides
// before validation.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	return config.Load(func(c *config.Config) {
		if cmd.Flags().Changed("mode") {
			c.Extract.Mode = mode
		}
		if cmd.Flags().Changed("log-level") {
			c.Logging.Level = logLevel
		}
	})
}

func newLogger(cfg *config.Config) *zap.SugaredLogger {
	return log.New(strings.ToLower(cfg.Logging.Level), strings.ToLower(cfg.Logging.Format), os.Stderr)
}

func newHandler(cfg *config.Config, logger *zap.SugaredLogger) (*server.Handler, error) {
	group, err := locking.NewGroup(locking.Kind(cfg.Extract.Locking))
	if err != nil {
		return nil, err
	}

	return server.NewHandler(
		cache.New(group),
		excelpreview.NewExtractor(cfg.Options()),
		server.WithLogger(logger),
		server.WithLatencyTracker(metrics.NewLatencyTracker(cfg.Metrics.RelativeAccuracy)),
	), nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	defer logger.Sync()

	handler, err := newHandler(cfg, logger)
	if err != nil {
		return err
	}

	logger.Infow("starting MCP server", "config", cfg.String())

	srv := server.New(cfg.Server, handler)
	if err := srv.Start(); err != nil {
		logger.Errorw("transport failed", "error", err)
		logStats(logger, handler)
		_ = logger.Sync()
		os.Exit(1)
	}

	logStats(logger, handler)
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	defer logger.Sync()

	var data []byte
	if asJSON {
		data, err = previewJSON(inputPath, cfg.Options())
		if err != nil {
			return err
		}
	} else {
		handler, err := newHandler(cfg, logger)
		if err != nil {
			return err
		}
		data = []byte(handler.ReadExcel(inputPath, sheetName) + "\n")
		if showStats {
			defer printStats(os.Stderr, handler)
		}
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return errors.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err = os.Stdout.Write(data)
	return err
}

func previewJSON(inputPath string, opts excelpreview.Options) ([]byte, error) {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return nil, errors.Errorf("%w: %s", excelpreview.ErrFileNotFound, inputPath)
	}

	wb, err := excelpreview.Extract(inputPath, opts)
	if err != nil {
		return nil, errors.Errorf("extraction failed: %w", err)
	}

	p := output.BuildPreview(wb, sheetName)
	var data []byte
	if pretty {
		data, err = json.MarshalIndent(p, "", "  ")
	} else {
		data, err = json.Marshal(p)
	}
	if err != nil {
		return nil, errors.Errorf("serialization failed: %w", err)
	}
	return append(data, '\n'), nil
}

func logStats(logger *zap.SugaredLogger, handler *server.Handler) {
	cs := handler.Cache().Stats()
	logger.Infow("cache", "entries", cs.Entries, "hits", cs.Hits, "misses", cs.Misses)

	for _, s := range handler.Tracker().GetAllStats() {
		logger.Infow("latency",
			"operation", s.Operation,
			"count", s.Count,
			"p50_ms", s.P50,
			"p99_ms", s.P99,
			"max_ms", s.Max,
		)
	}
}

// printStats writes cache counters and per-operation latencies, in request
// order, skipping operations that never ran.
func printStats(w io.Writer, handler *server.Handler) {
	cs := handler.Cache().Stats()
	fmt.Fprintf(w, "Cache: entries=%d hits=%d misses=%d\n", cs.Entries, cs.Hits, cs.Misses)

	fmt.Fprintln(w, "Latency:")
	for _, op := range []string{metrics.OpReadExcel, metrics.OpExtract, metrics.OpRender} {
		s, err := handler.Tracker().GetStats(op)
		if errors.Is(err, metrics.ErrNoData) {
			continue
		}
		fmt.Fprintln(w, s.String())
	}
}
