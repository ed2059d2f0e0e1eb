package cli

import (
	"fmt"

	"github.com/gruntwork-io/tfdeps/config"
	"github.com/gruntwork-io/tfdeps/internal/analysis"
	"github.com/gruntwork-io/tfdeps/internal/discovery"
	"github.com/gruntwork-io/tfdeps/internal/errors"
	"github.com/gruntwork-io/tfdeps/internal/report"
	"github.com/gruntwork-io/tfdeps/options"
	"github.com/gruntwork-io/tfdeps/util"
)

// Run executes the analysis pipeline: resolve the modules directory from the HCL file,
// discover the module universe, aggregate per-module results, and write the report.
// The stages are strictly linear; any failure in an early stage skips the later ones.
func Run(opts *options.TfdepsOptions) error {
	l := opts.Logger

	if !util.IsFile(opts.ConfigPath) {
		return errors.Errorf("HCL file not found: %s", opts.ConfigPath)
	}

	modulesDir, err := config.ResolveModulesDir(l, opts.ConfigPath)
	if err != nil {
		return err
	}

	modules, err := discovery.NewDiscovery(modulesDir).Discover(l)
	if err != nil {
		return err
	}

	if len(modules) == 0 {
		return errors.New(discovery.NoModulesFoundError{Path: modulesDir})
	}

	result := analysis.NewAnalyzer(modulesDir, modules).Run(l)

	outputPath, err := report.Write(l, opts.ConfigPath, report.Render(result))
	if err != nil {
		// The report is best-effort: the failure is reported without failing the run.
		l.Error(err.Error())
		return nil
	}

	fmt.Fprintf(opts.Writer, "Successfully generated %s\n", outputPath)

	return nil
}
