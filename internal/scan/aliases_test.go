package scan_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gruntwork-io/tfdeps/internal/scan"
	"github.com/gruntwork-io/tfdeps/pkg/log"
)

func TestProviderAliases(t *testing.T) {
	t.Parallel()

	l := log.New(log.WithOutput(os.Stderr), log.WithLevel(log.ErrorLevel))

	modulePath := t.TempDir()

	providerTf := `
provider "aws" {
  alias  = "east"
  region = "us-east-1"
}

# provider "aws" {
#   alias = "commented"
# }
`
	versionsTf := `
provider "aws" {
  alias = "west"
}
`
	require.NoError(t, os.WriteFile(filepath.Join(modulePath, "provider.tf"), []byte(providerTf), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(modulePath, "versions.tf"), []byte(versionsTf), 0644))
	// Aliases outside the two fixed filenames are never picked up.
	require.NoError(t, os.WriteFile(filepath.Join(modulePath, "main.tf"), []byte(`alias = "ignored"`), 0644))

	aliases, err := scan.ProviderAliases(l, modulePath)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"east", "west"}, aliases)
}

func TestProviderAliasesMissingFiles(t *testing.T) {
	t.Parallel()

	l := log.New(log.WithOutput(os.Stderr), log.WithLevel(log.ErrorLevel))

	aliases, err := scan.ProviderAliases(l, t.TempDir())

	require.NoError(t, err)
	assert.Empty(t, aliases)
}
