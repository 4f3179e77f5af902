package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile_CreatesParents(t *testing.T) {
	dir := t.TempDir()
	path := WriteFile(t, dir, filepath.Join("a", "b", "c.txt"), "hello")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestWriteConfig(t *testing.T) {
	path := WriteConfig(t, "{}")
	assert.Equal(t, "build_config.json", filepath.Base(path))
	assert.FileExists(t, path)
}

func TestFakeBundler(t *testing.T) {
	script, argsFile := FakeBundler(t, 0)
	assert.Nil(t, RecordedArgs(t, argsFile))

	require.NoError(t, exec.Command(script, "--name", "My App", "main.py").Run())
	assert.Equal(t, []string{"--name", "My App", "main.py"}, RecordedArgs(t, argsFile))
}

func TestFakeBundler_ExitCode(t *testing.T) {
	script, _ := FakeBundler(t, 3)

	err := exec.Command(script).Run()
	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.ExitCode())
}
