package artifacts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appbuild/cli/internal/config"
)

func TestCreateDesktopFile(t *testing.T) {
	buildDir := filepath.Join(t.TempDir(), "build")

	path, err := CreateDesktopFile(config.Values{
		config.KeyAppName:    "Foo",
		config.KeyVersion:    "2.0",
		config.KeyCategories: "Game;",
		config.KeyBuildDir:   buildDir,
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(buildDir, "Foo.desktop"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	for _, line := range []string{
		"Name=Foo",
		"Exec=Foo",
		"Icon=Foo",
		"Type=Application",
		"Categories=Game;",
		"Version=2.0",
	} {
		assert.Contains(t, string(content), line+"\n")
	}
}

func TestCreateDesktopFile_DefaultCategories(t *testing.T) {
	buildDir := t.TempDir()

	path, err := CreateDesktopFile(config.Values{
		config.KeyAppName:  "Foo",
		config.KeyVersion:  "1.0.0",
		config.KeyBuildDir: buildDir,
	})
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Categories=Utility;\n")
}

func TestCreateDesktopFile_CreatesNestedBuildDir(t *testing.T) {
	buildDir := filepath.Join(t.TempDir(), "a", "b", "c")

	path, err := CreateDesktopFile(config.Values{
		config.KeyAppName:  "Foo",
		config.KeyVersion:  "1.0.0",
		config.KeyBuildDir: buildDir,
	})
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestCreateDesktopFile_BuildDirIsFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "build")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	_, err := CreateDesktopFile(config.Values{
		config.KeyAppName:  "Foo",
		config.KeyVersion:  "1.0.0",
		config.KeyBuildDir: blocker,
	})
	assert.Error(t, err)
}

func TestDesktopFilePath(t *testing.T) {
	got := DesktopFilePath(config.Values{config.KeyAppName: "Foo", config.KeyBuildDir: "build"})
	assert.Equal(t, filepath.Join("build", "Foo.desktop"), got)
}
