package scan

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/gruntwork-io/tfdeps/pkg/log"
	"github.com/gruntwork-io/tfdeps/util"
)

var (
	moduleBlockPattern = regexp.MustCompile(`module\s+"([^"]+)"\s*\{`)
	dataBlockPattern   = regexp.MustCompile(`data\s+"[^"]+"\s+"([^"]+)"\s*\{`)
)

const (
	vpcSuffix = "_vpc"

	innerMarker = "inner"
	outerMarker = "outer"

	innerVpcModule = "inner_vpc"
	outerVpcModule = "outer_vpc"
)

// ExplicitDependencies extracts the names of all modules referenced via module blocks in
// the declaration files directly inside the given module directory. Unreadable files are
// collected into the returned error and contribute nothing.
func ExplicitDependencies(l log.Logger, modulePath string) ([]string, error) {
	var dependencies []string

	readErrs := forEachTfFile(modulePath, func(filename, content string) {
		var found []string

		for _, match := range moduleBlockPattern.FindAllStringSubmatch(content, -1) {
			found = append(found, match[1])
		}

		if len(found) > 0 {
			l.Debugf("Found explicit dependencies in %s: %v", filename, found)
		}

		dependencies = append(dependencies, found...)
	})

	return dependencies, readErrs
}

// ImplicitDependencies extracts module dependencies implied by the local names of data
// source blocks in the declaration files directly inside the given module directory.
// Unreadable files are collected into the returned error and contribute nothing.
func ImplicitDependencies(l log.Logger, modulePath string) ([]string, error) {
	var dependencies []string

	readErrs := forEachTfFile(modulePath, func(filename, content string) {
		for _, match := range dataBlockPattern.FindAllStringSubmatch(content, -1) {
			dataName := match[1]

			if moduleName := InferModuleFromDataName(dataName); moduleName != "" {
				l.Debugf("Found implicit dependency: %s -> %s", dataName, moduleName)
				dependencies = append(dependencies, moduleName)
			}
		}
	})

	return dependencies, readErrs
}

// InferModuleFromDataName maps a data source's local name to the module it implies, based
// on the VPC naming conventions used across the module tree. The rules are evaluated in
// order, first match wins:
//
//  1. The name contains "_vpc": "inner" anywhere implies inner_vpc, then "outer" anywhere
//     implies outer_vpc, otherwise the non-empty prefix before the first "_vpc" implies
//     "{prefix}_vpc".
//  2. The name contains "inner": implies inner_vpc.
//  3. The name contains "outer": implies outer_vpc.
//
// Returns an empty string when the name implies no module, including when the prefix
// before "_vpc" is empty.
func InferModuleFromDataName(dataName string) string {
	if strings.Contains(dataName, vpcSuffix) {
		switch {
		case strings.Contains(dataName, innerMarker):
			return innerVpcModule
		case strings.Contains(dataName, outerMarker):
			return outerVpcModule
		}

		prefix, _, _ := strings.Cut(dataName, vpcSuffix)
		if prefix != "" {
			return prefix + vpcSuffix
		}

		return ""
	}

	switch {
	case strings.Contains(dataName, innerMarker):
		return innerVpcModule
	case strings.Contains(dataName, outerMarker):
		return outerVpcModule
	}

	return ""
}

// forEachTfFile invokes fn with the comment-stripped content of every declaration file
// directly inside the given directory, accumulating read failures without aborting.
func forEachTfFile(dirPath string, fn func(filename, content string)) error {
	tfFiles, err := util.ListTfFiles(dirPath)
	if err != nil {
		return err
	}

	var readErrs *multierror.Error

	for _, filePath := range tfFiles {
		content, err := util.ReadFileAsString(filePath)
		if err != nil {
			readErrs = multierror.Append(readErrs, err)
			continue
		}

		fn(filepath.Base(filePath), StripComments(content))
	}

	return readErrs.ErrorOrNil()
}
