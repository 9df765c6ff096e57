package cli

import (
	"github.com/glorpus-work/platinfo/internal/logger"
)

// These variables will be set by the main package
var (
	Verbose      *bool
	OutputFormat *string
)

// initLogging configures the global logger from the CLI flags.
func initLogging() {
	level := "info"
	if Verbose != nil && *Verbose {
		level = "debug"
	}
	logger.InitLogger(level, logger.FormatText)
}

// outputFormat resolves the output format flag, defaulting to text.
func outputFormat() string {
	if OutputFormat == nil || *OutputFormat == "" {
		return "text"
	}
	return *OutputFormat
}
