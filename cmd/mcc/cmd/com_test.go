package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcc/internal/config"
)

func TestResolveTargetBuiltinDefault(t *testing.T) {
	t.Chdir(t.TempDir())
	targetPath = ""

	target, err := resolveTarget()

	require.NoError(t, err)
	assert.Equal(t, config.Default(), target)
}

func TestResolveTargetPicksUpDefaultPath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultPath), []byte(`entry = "start"`), 0o644))
	t.Chdir(dir)
	targetPath = ""

	target, err := resolveTarget()

	require.NoError(t, err)
	assert.Equal(t, "start", target.Entry)
	assert.Equal(t, config.OSLinux, target.OS)
}

func TestResolveTargetExplicitFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "release.yaml")
	require.NoError(t, os.WriteFile(path, []byte("os: windows\n"), 0o644))

	targetPath = path
	t.Cleanup(func() { targetPath = "" })

	target, err := resolveTarget()

	require.NoError(t, err)
	assert.Equal(t, config.OSWindows, target.OS)
	assert.Equal(t, "main", target.Entry)
}
