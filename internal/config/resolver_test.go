package config

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestResolveConfigPath_FlagPrecedence(t *testing.T) {
	t.Setenv(EnvConfig, "/env/build_config.json")

	result := ResolveConfigPath("/flag/build_config.json")

	assert.Equal(t, "/flag/build_config.json", result.Path)
	assert.Equal(t, PathSourceFlag, result.Source)
	assert.Equal(t, "/env/build_config.json", result.Shadowed[PathSourceEnv])
	assert.Equal(t, DefaultConfigFile, result.Shadowed[PathSourceDefault])
}

func TestResolveConfigPath_EnvPrecedence(t *testing.T) {
	t.Setenv(EnvConfig, "/env/build_config.json")

	result := ResolveConfigPath("")

	assert.Equal(t, "/env/build_config.json", result.Path)
	assert.Equal(t, PathSourceEnv, result.Source)
	assert.NotContains(t, result.Shadowed, PathSourceFlag)
	assert.Equal(t, DefaultConfigFile, result.Shadowed[PathSourceDefault])
}

func TestResolveConfigPath_Default(t *testing.T) {
	t.Setenv(EnvConfig, "")

	result := ResolveConfigPath("")

	assert.Equal(t, "build_config.json", result.Path)
	assert.Equal(t, PathSourceDefault, result.Source)
	assert.Empty(t, result.Shadowed)
}

func TestResolvedPath_Log(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	ResolvedPath{
		Path:     "/flag/build_config.json",
		Source:   PathSourceFlag,
		Shadowed: map[PathSource]string{PathSourceDefault: DefaultConfigFile},
	}.Log(logger)

	assert.Contains(t, buf.String(), "config path resolved")
	assert.Contains(t, buf.String(), "/flag/build_config.json")
	assert.Contains(t, buf.String(), "shadowed")
}
