package runconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brindlewood/antcolony/runconfig"
)

func TestDefaultProfileMatchesOriginalCLIDefaults(t *testing.T) {
	p := runconfig.Default()
	require.Equal(t, 128, p.Ants)
	require.Equal(t, 150, p.Iterations)
	require.Equal(t, uint32(42), p.Seed)
}

func TestLoadOverridesDefaultsFromTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
ants = 64
iterations = 200
seed = 7
`), 0o644))

	p, err := runconfig.Load(path)
	require.NoError(t, err)
	require.Equal(t, 64, p.Ants)
	require.Equal(t, 200, p.Iterations)
	require.Equal(t, uint32(7), p.Seed)
	// alpha/beta/etc. are untouched, carried over from Default.
	require.Equal(t, 3.0, p.Beta)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := runconfig.Load("/nonexistent/profile.toml")
	require.ErrorIs(t, err, runconfig.ErrProfileNotFound)
}

func TestLoadMalformedTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid toml"), 0o644))

	_, err := runconfig.Load(path)
	require.ErrorIs(t, err, runconfig.ErrInvalidProfile)
}

func TestClampsZeroAntsAndIterations(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zero.toml")
	require.NoError(t, os.WriteFile(path, []byte("ants = 0\niterations = 0\n"), 0o644))

	p, err := runconfig.Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, p.Ants)
	require.Equal(t, 1, p.Iterations)
}
