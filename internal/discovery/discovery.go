// Package discovery enumerates the module directories that make up the module universe.
package discovery

import (
	"os"
	"sort"
	"strings"

	"github.com/gruntwork-io/tfdeps/internal/errors"
	"github.com/gruntwork-io/tfdeps/pkg/log"
	"github.com/gruntwork-io/tfdeps/util"
)

// hiddenDirPrefix marks directory entries that are excluded from discovery by default.
const hiddenDirPrefix = "."

// Discovery scans a modules directory for module subdirectories.
type Discovery struct {
	// modulesDir is the directory whose immediate subdirectories are the modules.
	modulesDir string

	// hidden determines whether hidden directories are discovered.
	hidden bool
}

// NewDiscovery creates a new Discovery for the given modules directory.
func NewDiscovery(modulesDir string) *Discovery {
	return &Discovery{
		modulesDir: modulesDir,
	}
}

// WithHidden sets the Hidden flag to true.
func (d *Discovery) WithHidden() *Discovery {
	d.hidden = true

	return d
}

// Discover returns the sorted names of all module directories directly under the modules
// directory. Non-directory entries are skipped; hidden entries are skipped unless
// WithHidden was set.
func (d *Discovery) Discover(l log.Logger) ([]string, error) {
	if !util.IsDir(d.modulesDir) {
		return nil, errors.New(InvalidModulesDirError{Path: d.modulesDir})
	}

	l.Debugf("Scanning modules directory: %s", d.modulesDir)

	dirEntries, err := os.ReadDir(d.modulesDir)
	if err != nil {
		return nil, errors.New(InvalidModulesDirError{Path: d.modulesDir, Underlying: err})
	}

	l.Debugf("Found %d items in directory", len(dirEntries))

	var modules []string

	for _, entry := range dirEntries {
		name := entry.Name()

		switch {
		case strings.HasPrefix(name, hiddenDirPrefix) && !d.hidden:
			l.Debugf("Skipping hidden item: %s", name)
		case !entry.IsDir():
			l.Debugf("Skipping file (not a module): %s", name)
		default:
			l.Debugf("Found module: %s", name)
			modules = append(modules, name)
		}
	}

	l.Debugf("Total modules detected: %d", len(modules))

	sort.Strings(modules)

	return modules, nil
}
