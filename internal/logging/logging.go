// Package logging builds the zap logger shared by zsync's commands.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Formats accepted by Options.Format.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Options configures New.
type Options struct {
	Verbose bool   // log at debug level
	Format  string // console (default) or json
	Output  string // zap sink, stderr by default
}

// New builds a logger that writes to stderr so stdout stays free for diffs
// and JSON output.
func New(opts Options) (*zap.Logger, error) {
	format := strings.ToLower(opts.Format)
	if format == "" {
		format = FormatConsole
	}
	if format != FormatConsole && format != FormatJSON {
		return nil, fmt.Errorf("unknown log format %q (valid: %s, %s)", opts.Format, FormatConsole, FormatJSON)
	}

	output := opts.Output
	if output == "" {
		output = "stderr"
	}

	config := zap.NewProductionConfig()
	config.Encoding = format
	config.OutputPaths = []string{output}
	config.ErrorOutputPaths = []string{"stderr"}
	config.DisableStacktrace = true
	config.Sampling = nil
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if format == FormatConsole {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		config.DisableCaller = true
	}
	if opts.Verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}
