package config

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// EnvConfig is the environment variable naming the configuration document.
const EnvConfig = "APPBUILD_CONFIG"

// PathSource indicates where the configuration path came from.
type PathSource string

const (
	// PathSourceFlag indicates the --config flag.
	PathSourceFlag PathSource = "flag"
	// PathSourceEnv indicates the APPBUILD_CONFIG environment variable.
	PathSourceEnv PathSource = "env"
	// PathSourceDefault indicates the built-in default path.
	PathSourceDefault PathSource = "default"
)

// ResolvedPath is the configuration path and where it came from.
type ResolvedPath struct {
	// Path is the resolved document path.
	Path string
	// Source indicates where Path came from.
	Source PathSource
	// Shadowed contains values overridden by higher precedence.
	Shadowed map[PathSource]string
}

// ResolveConfigPath resolves the document path using precedence:
// (1) --config flag, (2) APPBUILD_CONFIG env, (3) build_config.json.
func ResolveConfigPath(flagValue string) ResolvedPath {
	result := ResolvedPath{Shadowed: make(map[PathSource]string)}
	env := viper.New()
	_ = env.BindEnv("config", EnvConfig)
	envValue := env.GetString("config")

	switch {
	case flagValue != "":
		result.Path = flagValue
		result.Source = PathSourceFlag
		if envValue != "" {
			result.Shadowed[PathSourceEnv] = envValue
		}
		result.Shadowed[PathSourceDefault] = DefaultConfigFile
	case envValue != "":
		result.Path = envValue
		result.Source = PathSourceEnv
		result.Shadowed[PathSourceDefault] = DefaultConfigFile
	default:
		result.Path = DefaultConfigFile
		result.Source = PathSourceDefault
	}

	return result
}

// Log reports the resolution at DEBUG level.
func (r ResolvedPath) Log(logger *log.Logger) {
	logger.Debug("config path resolved", "path", r.Path, "source", r.Source)
	for source, shadowed := range r.Shadowed {
		logger.Debug("  shadowed by higher precedence", "shadowed_source", source, "shadowed_value", shadowed)
	}
}
