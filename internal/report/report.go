// Package report renders the aggregated analysis into the dependencies.txt report.
//
// The whole report is wrapped in a single /* ... */ block comment so that the output is
// itself a valid fragment of a declaration file. Rendering is fully determined by the
// analysis result: identical inputs produce byte-identical output.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gruntwork-io/tfdeps/internal/analysis"
	"github.com/gruntwork-io/tfdeps/internal/errors"
	"github.com/gruntwork-io/tfdeps/pkg/log"
)

// OutputFilename is the fixed name of the report file, written next to the HCL
// configuration file.
const OutputFilename = "dependencies.txt"

// Render produces the report content for the given analysis result. Lines are joined
// with newlines and carry no trailing newline.
func Render(result *analysis.Result) string {
	lines := []string{"/*", "MODULES:"}

	for _, module := range result.Modules() {
		deps := result.ModuleDependencies(module)
		if len(deps) > 0 {
			lines = append(lines, fmt.Sprintf("- %s (depends_on: %s)", module, strings.Join(deps, ", ")))
		} else {
			lines = append(lines, fmt.Sprintf("- %s", module))
		}
	}

	for _, alias := range result.ProviderAliases() {
		lines = append(lines, "", fmt.Sprintf("PROVIDER %s:", alias))

		for _, module := range result.AliasModules(alias) {
			lines = append(lines, fmt.Sprintf("- %s", module))
		}
	}

	lines = append(lines, "*/")

	return strings.Join(lines, "\n")
}

// Write stores the rendered report as dependencies.txt in the directory containing the
// given HCL configuration file and returns the path it wrote to.
func Write(l log.Logger, configPath string, content string) (string, error) {
	configDir, err := filepath.Abs(filepath.Dir(configPath))
	if err != nil {
		return "", errors.WithStackTrace(err)
	}

	outputPath := filepath.Join(configDir, OutputFilename)

	l.Debugf("Writing report to %s", outputPath)

	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return "", errors.New(WriteError{Path: outputPath, Underlying: err})
	}

	return outputPath, nil
}
