package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	return tempDir
}

func TestInitCmd_WritesConfigFile(t *testing.T) {
	tempDir := chdirTemp(t)

	cmd, output := newTestRoot(newInitCmd())
	cmd.SetArgs([]string{"init"})

	require.NoError(t, cmd.Execute())

	targetPath := filepath.Join(tempDir, configFileName)
	info, err := os.Stat(targetPath)
	require.NoError(t, err)
	require.False(t, info.IsDir())

	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "max_distance")
	assert.Contains(t, string(contents), "categories")
	assert.Contains(t, output.String(), "wrote "+filepath.Join(configFolderPath, configFileName))
}

func TestInitCmd_KeepsExistingFile(t *testing.T) {
	tempDir := chdirTemp(t)

	targetPath := filepath.Join(tempDir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("grinder:\n  enabled: false\n"), 0o600))

	cmd, _ := newTestRoot(newInitCmd())
	cmd.SetArgs([]string{"init"})

	require.Error(t, cmd.Execute())

	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	assert.Equal(t, "grinder:\n  enabled: false\n", string(contents))
}
