package discovery_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gruntwork-io/tfdeps/internal/discovery"
	"github.com/gruntwork-io/tfdeps/internal/errors"
	"github.com/gruntwork-io/tfdeps/pkg/log"
)

func TestDiscover(t *testing.T) {
	t.Parallel()

	l := log.New(log.WithOutput(os.Stderr), log.WithLevel(log.ErrorLevel))

	tmpDir := t.TempDir()

	for _, dir := range []string{"outer_vpc", "app", "inner_vpc", ".hidden"} {
		require.NoError(t, os.Mkdir(filepath.Join(tmpDir, dir), 0755))
	}

	// Plain files are not modules.
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "notes.txt"), []byte("x"), 0644))

	tests := []struct {
		name      string
		discovery *discovery.Discovery
		expected  []string
	}{
		{
			name:      "hidden directories excluded by default",
			discovery: discovery.NewDiscovery(tmpDir),
			expected:  []string{"app", "inner_vpc", "outer_vpc"},
		},
		{
			name:      "hidden directories included with WithHidden",
			discovery: discovery.NewDiscovery(tmpDir).WithHidden(),
			expected:  []string{".hidden", "app", "inner_vpc", "outer_vpc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			modules, err := tt.discovery.Discover(l)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, modules)
		})
	}
}

func TestDiscoverInvalidModulesDir(t *testing.T) {
	t.Parallel()

	l := log.New(log.WithOutput(os.Stderr), log.WithLevel(log.ErrorLevel))

	tmpDir := t.TempDir()

	filePath := filepath.Join(tmpDir, "not-a-dir")
	require.NoError(t, os.WriteFile(filePath, []byte("x"), 0644))

	tests := []struct {
		name       string
		modulesDir string
	}{
		{name: "missing path", modulesDir: filepath.Join(tmpDir, "does-not-exist")},
		{name: "path is a file", modulesDir: filePath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			modules, err := discovery.NewDiscovery(tt.modulesDir).Discover(l)

			require.Error(t, err)
			assert.Nil(t, modules)

			var invalidDirErr discovery.InvalidModulesDirError
			assert.True(t, errors.As(err, &invalidDirErr))
			assert.Equal(t, tt.modulesDir, invalidDirErr.Path)
			assert.True(t, errors.Is(err, discovery.InvalidModulesDirError{Path: tt.modulesDir}))
		})
	}
}

func TestDiscoverEmptyModulesDir(t *testing.T) {
	t.Parallel()

	l := log.New(log.WithOutput(os.Stderr), log.WithLevel(log.ErrorLevel))

	modules, err := discovery.NewDiscovery(t.TempDir()).Discover(l)

	require.NoError(t, err)
	assert.Empty(t, modules)
}
