package scan

import (
	"path/filepath"
	"regexp"

	"github.com/hashicorp/go-multierror"

	"github.com/gruntwork-io/tfdeps/pkg/log"
	"github.com/gruntwork-io/tfdeps/util"
)

// ProviderFilenames are the fixed declaration files that may declare provider aliases.
var ProviderFilenames = []string{"provider.tf", "versions.tf"}

var aliasPattern = regexp.MustCompile(`alias\s*=\s*"([^"]+)"`)

// ProviderAliases extracts the provider aliases declared in the module's provider.tf and
// versions.tf files. Missing files contribute no aliases. Unreadable files are collected
// into the returned error, which never prevents the returned aliases from being used.
func ProviderAliases(l log.Logger, modulePath string) ([]string, error) {
	var (
		aliases  []string
		readErrs *multierror.Error
	)

	for _, filename := range ProviderFilenames {
		filePath := filepath.Join(modulePath, filename)
		if !util.IsFile(filePath) {
			continue
		}

		content, err := util.ReadFileAsString(filePath)
		if err != nil {
			readErrs = multierror.Append(readErrs, err)
			continue
		}

		content = StripComments(content)

		var found []string

		for _, match := range aliasPattern.FindAllStringSubmatch(content, -1) {
			found = append(found, match[1])
		}

		l.Debugf("Found aliases in %s: %v", filename, found)

		aliases = append(aliases, found...)
	}

	return aliases, readErrs.ErrorOrNil()
}
