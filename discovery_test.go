// FILE: configfile/discovery_test.go
package configfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDiscoverFile tests discovery precedence: env var, then search paths
// and extensions in order
func TestDiscoverFile(t *testing.T) {
	t.Run("EnvVarWins", func(t *testing.T) {
		dir := t.TempDir()
		explicit := filepath.Join(dir, "explicit.cfg")
		require.NoError(t, os.WriteFile(explicit, []byte("a 1\n"), 0644))
		t.Setenv("VRDEVICED_CONFIG", explicit)

		opts := DefaultDiscoveryOptions("vrdeviced")
		opts.UseXDG = false
		opts.UseCurrentDir = false

		path, err := DiscoverFile(opts)
		require.NoError(t, err)
		assert.Equal(t, explicit, path)
	})

	t.Run("SearchPathOrder", func(t *testing.T) {
		first := t.TempDir()
		second := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(second, "vrdeviced.cfg"), []byte("a 1\n"), 0644))

		opts := DefaultDiscoveryOptions("vrdeviced")
		opts.EnvVar = ""
		opts.UseXDG = false
		opts.UseCurrentDir = false
		opts.Paths = []string{first, second}

		path, err := DiscoverFile(opts)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(second, "vrdeviced.cfg"), path)
	})

	t.Run("ExtensionOrder", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "vrdeviced.conf"), []byte("a 1\n"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "vrdeviced.cfg"), []byte("a 1\n"), 0644))

		opts := DefaultDiscoveryOptions("vrdeviced")
		opts.EnvVar = ""
		opts.UseXDG = false
		opts.UseCurrentDir = false
		opts.Paths = []string{dir}

		path, err := DiscoverFile(opts)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "vrdeviced.cfg"), path)
	})

	t.Run("NothingFound", func(t *testing.T) {
		opts := DefaultDiscoveryOptions("vrdeviced")
		opts.EnvVar = ""
		opts.UseXDG = false
		opts.UseCurrentDir = false
		opts.Paths = []string{t.TempDir()}

		_, err := DiscoverFile(opts)
		assert.Error(t, err)
	})
}

// TestOpenDiscovered runs discovery through to a parsed config
func TestOpenDiscovered(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vrdeviced.cfg")
	require.NoError(t, os.WriteFile(path, []byte("serverPort 8555\n"), 0644))
	t.Setenv("VRDEVICED_CONFIG", path)

	cfg, err := OpenDiscovered("vrdeviced")
	require.NoError(t, err)

	port, err := cfg.RootSection().Int("serverPort")
	require.NoError(t, err)
	assert.Equal(t, 8555, port)
}
