// Package config loads process configuration from environment variables.
// Defaults come from struct tags and the result is validated at startup.
package config

import (
	"fmt"
	"strings"

	"gitlab.com/tozd/go/errors"

	"github.com/ukaji3/excelpreview-go/pkg/excelpreview"
	"github.com/ukaji3/excelpreview-go/pkg/locking"
	"github.com/ukaji3/excelpreview-go/pkg/log"
)

// Config holds all process configuration.
type Config struct {
	Server  ServerConfig
	Extract ExtractConfig
	Logging LoggingConfig
	Metrics MetricsConfig
}

// ServerConfig holds the MCP server identity.
type ServerConfig struct {
	// Name is reported to clients during initialization (default: excel-mcp)
	Name string `env:"EXCEL_MCP_NAME" default:"excel-mcp"`

	// Version is reported to clients during initialization (default: 1.0.0)
	Version string `env:"EXCEL_MCP_VERSION" default:"1.0.0"`
}

// ExtractConfig holds extraction settings.
type ExtractConfig struct {
	// Mode is the extraction mode: light, standard or verbose (default: standard)
	Mode string `env:"EXCEL_MCP_MODE" default:"standard"`

	// Locking selects per-path load de-duplication: singleflight, memlock or noop
	Locking string `env:"EXCEL_MCP_LOCKING" default:"singleflight"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: console or json (default: console)
	Format string `env:"LOG_FORMAT" default:"console"`
}

// MetricsConfig holds latency tracking settings.
type MetricsConfig struct {
	// RelativeAccuracy of quantile estimates (default: 0.01)
	RelativeAccuracy float64 `env:"EXCEL_MCP_METRICS_ACCURACY" default:"0.01"`
}

// Options converts the extract settings into extractor options.
// Call after Validate.
func (c *Config) Options() excelpreview.Options {
	mode, err := excelpreview.ParseMode(c.Extract.Mode)
	if err != nil {
		mode = excelpreview.ModeStandard
	}
	return excelpreview.Options{Mode: mode}
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.Server.Name) == "" {
		errs = append(errs, "EXCEL_MCP_NAME must not be empty")
	}
	if strings.TrimSpace(c.Server.Version) == "" {
		errs = append(errs, "EXCEL_MCP_VERSION must not be empty")
	}

	if _, err := excelpreview.ParseMode(c.Extract.Mode); err != nil {
		errs = append(errs, fmt.Sprintf("EXCEL_MCP_MODE (%q) must be one of: light, standard, verbose", c.Extract.Mode))
	}

	switch locking.Kind(c.Extract.Locking) {
	case locking.KindSingleFlight, locking.KindMemLock, locking.KindNoOp:
	default:
		errs = append(errs, fmt.Sprintf("EXCEL_MCP_LOCKING (%q) must be one of: singleflight, memlock, noop", c.Extract.Locking))
	}

	if _, err := log.ParseLevel(strings.ToLower(c.Logging.Level)); err != nil {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}

	switch strings.ToLower(c.Logging.Format) {
	case log.FormatConsole, log.FormatJSON:
	default:
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be one of: console, json", c.Logging.Format))
	}

	if c.Metrics.RelativeAccuracy <= 0 || c.Metrics.RelativeAccuracy >= 1 {
		errs = append(errs, fmt.Sprintf("EXCEL_MCP_METRICS_ACCURACY (%g) must be between 0 and 1", c.Metrics.RelativeAccuracy))
	}

	if len(errs) > 0 {
		return errors.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// String returns a one-line representation for logging.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Server: {Name: %q, Version: %q}, Extract: {Mode: %q, Locking: %q}, Logging: {Level: %q, Format: %q}, Metrics: {RelativeAccuracy: %g}}",
		c.Server.Name, c.Server.Version,
		c.Extract.Mode, c.Extract.Locking,
		c.Logging.Level, c.Logging.Format,
		c.Metrics.RelativeAccuracy)
}
