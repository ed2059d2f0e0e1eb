// Package config resolves the modules directory to scan from the header block comment
// of the HCL configuration file passed on the command line.
package config

import (
	"path/filepath"
	"regexp"
	"strings"

	homedir "github.com/mitchellh/go-homedir"

	"github.com/gruntwork-io/tfdeps/internal/errors"
	"github.com/gruntwork-io/tfdeps/pkg/log"
	"github.com/gruntwork-io/tfdeps/util"
)

// modulesDirPattern matches a `modules_dir: <path>` entry inside a block comment.
// The value runs up to the next whitespace or comment-closing asterisk.
var modulesDirPattern = regexp.MustCompile(`(?s)/\*.*modules_dir:\s*([^\s*]+).*?\*/`)

// ResolveModulesDir reads the given HCL file and extracts the modules_dir setting from its
// header block comment. Relative values are resolved against the directory containing the
// HCL file; the returned path is absolute and normalized.
func ResolveModulesDir(l log.Logger, configPath string) (string, error) {
	content, err := util.ReadFileAsString(configPath)
	if err != nil {
		return "", errors.New(ModulesDirNotFoundError{ConfigPath: configPath, Underlying: err})
	}

	match := modulesDirPattern.FindStringSubmatch(content)
	if match == nil {
		return "", errors.New(ModulesDirNotFoundError{ConfigPath: configPath})
	}

	path := strings.TrimSpace(match[1])

	path, err = homedir.Expand(path)
	if err != nil {
		return "", errors.WithStackTrace(err)
	}

	path, err = util.CanonicalPath(path, filepath.Dir(configPath))
	if err != nil {
		return "", err
	}

	l.Debugf("Resolved modules directory: %s", path)

	return path, nil
}
