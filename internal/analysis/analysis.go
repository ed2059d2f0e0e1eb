// Package analysis aggregates per-module scan results into the global dependency set and
// provider alias registry.
package analysis

import (
	"path/filepath"
	"sort"

	"github.com/gruntwork-io/tfdeps/internal/scan"
	"github.com/gruntwork-io/tfdeps/pkg/log"
)

// Analyzer visits every module in the universe exactly once and owns the two aggregation
// maps the report is rendered from.
type Analyzer struct {
	modulesDir string
	modules    []string

	// dependencies maps each module name to the set of module names it depends on.
	dependencies map[string]map[string]bool

	// providerAliases maps each provider alias to the set of module names declaring it.
	providerAliases map[string]map[string]bool
}

// Result holds the aggregated analysis for the whole module universe. All accessors
// return lexicographically sorted slices so that rendering is deterministic.
type Result struct {
	modules         []string
	dependencies    map[string]map[string]bool
	providerAliases map[string]map[string]bool
}

// NewAnalyzer creates an Analyzer for the given modules directory and module universe.
func NewAnalyzer(modulesDir string, modules []string) *Analyzer {
	return &Analyzer{
		modulesDir:      modulesDir,
		modules:         modules,
		dependencies:    map[string]map[string]bool{},
		providerAliases: map[string]map[string]bool{},
	}
}

// Run analyzes every module in the universe and returns the aggregated result.
// Per-file read failures degrade to empty results for the affected files and are
// surfaced as debug diagnostics only.
func (a *Analyzer) Run(l log.Logger) *Result {
	for _, module := range a.modules {
		a.analyzeModule(l, module)
	}

	return &Result{
		modules:         a.modules,
		dependencies:    a.dependencies,
		providerAliases: a.providerAliases,
	}
}

// analyzeModule merges a single module's aliases and dependencies into the aggregation maps.
func (a *Analyzer) analyzeModule(l log.Logger, module string) {
	modulePath := filepath.Join(a.modulesDir, module)

	l.Debugf("Processing module: %s", module)

	aliases, err := scan.ProviderAliases(l, modulePath)
	if err != nil {
		l.Debugf("Ignoring unreadable provider files in module %s: %v", module, err)
	}

	for _, alias := range aliases {
		if a.providerAliases[alias] == nil {
			a.providerAliases[alias] = map[string]bool{}
		}

		a.providerAliases[alias][module] = true
	}

	explicitDeps, err := scan.ExplicitDependencies(l, modulePath)
	if err != nil {
		l.Debugf("Ignoring unreadable declaration files in module %s: %v", module, err)
	}

	implicitDeps, err := scan.ImplicitDependencies(l, modulePath)
	if err != nil {
		l.Debugf("Ignoring unreadable declaration files in module %s: %v", module, err)
	}

	deps := map[string]bool{}

	for _, dep := range explicitDeps {
		deps[dep] = true
	}

	for _, dep := range implicitDeps {
		deps[dep] = true
	}

	// A module never depends on itself, even if its own files reference its name.
	delete(deps, module)

	a.dependencies[module] = deps

	l.Debugf("Dependencies for %s: %v", module, sortedKeys(deps))
}

// Modules returns every module in the universe, sorted.
func (r *Result) Modules() []string {
	modules := make([]string, len(r.modules))
	copy(modules, r.modules)
	sort.Strings(modules)

	return modules
}

// ModuleDependencies returns the sorted dependencies of the given module.
func (r *Result) ModuleDependencies(module string) []string {
	return sortedKeys(r.dependencies[module])
}

// ProviderAliases returns every provider alias declared by any module, sorted.
func (r *Result) ProviderAliases() []string {
	aliases := make([]string, 0, len(r.providerAliases))

	for alias := range r.providerAliases {
		aliases = append(aliases, alias)
	}

	sort.Strings(aliases)

	return aliases
}

// AliasModules returns the sorted names of the modules declaring the given alias.
func (r *Result) AliasModules(alias string) []string {
	return sortedKeys(r.providerAliases[alias])
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))

	for key := range set {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
