// Package cli configures the tfdeps command-line application.
package cli

import (
	"github.com/urfave/cli/v2"

	"github.com/gruntwork-io/tfdeps/internal/errors"
	"github.com/gruntwork-io/tfdeps/options"
	"github.com/gruntwork-io/tfdeps/pkg/log"
)

const (
	// AppName is the name of the CLI app.
	AppName = "tfdeps"

	// AppUsage is the one-line description shown in the help output.
	AppUsage = "Analyze Terraform module dependencies, including explicit module references and implicit dependencies through data source naming patterns."

	VerboseFlagName  = "verbose"
	LogLevelFlagName = "log-level"
)

// NewApp creates the tfdeps CLI app.
func NewApp(opts *options.TfdepsOptions) *cli.App {
	app := cli.NewApp()
	app.Name = AppName
	app.Usage = AppUsage
	app.UsageText = "tfdeps [options] <hcl-file>"
	app.Writer = opts.Writer
	app.ErrWriter = opts.ErrWriter
	app.HideHelpCommand = true

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    VerboseFlagName,
			Aliases: []string{"v"},
			Usage:   "Enable verbose output for debugging.",
		},
		&cli.StringFlag{
			Name:  LogLevelFlagName,
			Usage: "Set the log level.",
			Value: log.InfoLevel.String(),
		},
	}

	app.Action = func(ctx *cli.Context) error {
		if err := opts.Logger.SetLevel(ctx.String(LogLevelFlagName)); err != nil {
			return errors.New(err)
		}

		// --verbose maps to debug level, matching the original tool's -v flag.
		if ctx.Bool(VerboseFlagName) && opts.Logger.Level() < log.DebugLevel {
			if err := opts.Logger.SetLevel(log.DebugLevel.String()); err != nil {
				return errors.New(err)
			}
		}

		if ctx.NArg() != 1 {
			return errors.Errorf("expected exactly one argument: the HCL configuration file")
		}

		opts.ConfigPath = ctx.Args().First()

		return Run(opts)
	}

	return app
}
