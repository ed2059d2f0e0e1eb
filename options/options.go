// Package options defines the global options shared by every stage of a tfdeps run.
package options

import (
	"io"
	"os"

	"github.com/gruntwork-io/tfdeps/pkg/log"
)

// TfdepsOptions holds the run-wide settings resolved from the command line.
type TfdepsOptions struct {
	// ConfigPath is the path to the HCL configuration file whose header comment names the
	// modules directory to scan.
	ConfigPath string

	// Logger is the logger all diagnostics are written to.
	Logger log.Logger

	// Writer is the stream normal program output is written to.
	Writer io.Writer

	// ErrWriter is the stream error output is written to.
	ErrWriter io.Writer
}

// NewTfdepsOptions creates a new TfdepsOptions with default values.
func NewTfdepsOptions() *TfdepsOptions {
	return &TfdepsOptions{
		Logger:    log.New(log.WithOutput(os.Stderr), log.WithLevel(log.InfoLevel)),
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
	}
}
