package version

import (
	"context"
	"regexp"
	"strings"

	"github.com/appbuild/cli/internal/process"
)

// bundlerVersionRegex matches bundler version output like "6.3.0".
var bundlerVersionRegex = regexp.MustCompile(`\d+\.\d+(?:\.\d+)?(?:[.-][a-zA-Z0-9.]+)?`)

// BundlerInfo describes the bundler installation.
type BundlerInfo struct {
	// Name is the bundler executable name.
	Name string `json:"name"`

	// Version is the reported bundler version.
	Version string `json:"version"`

	// Path is the resolved executable path.
	Path string `json:"path"`

	// Found indicates the executable is in PATH.
	Found bool `json:"found"`

	// Message provides additional detail when detection failed.
	Message string `json:"message,omitempty"`
}

// DetectBundler finds the bundler in PATH and asks it for its version.
func DetectBundler(ctx context.Context, runner process.Runner, name string) BundlerInfo {
	path, err := process.LookPath(name)
	if err != nil {
		return BundlerInfo{
			Name:    name,
			Message: name + " not found in PATH",
		}
	}

	res, err := runner.Run(ctx, process.Command{Name: path, Args: []string{"--version"}})
	if err != nil {
		return BundlerInfo{
			Name:    name,
			Path:    path,
			Found:   true,
			Message: "failed to get version: " + err.Error(),
		}
	}

	version, err := extractVersion(string(res.Output))
	if err != nil {
		return BundlerInfo{
			Name:    name,
			Path:    path,
			Found:   true,
			Message: err.Error(),
		}
	}

	return BundlerInfo{
		Name:    name,
		Version: version,
		Path:    path,
		Found:   true,
	}
}

// extractVersion extracts the version number from the first line of
// bundler output that carries one.
func extractVersion(output string) (string, error) {
	for _, line := range strings.Split(output, "\n") {
		if match := bundlerVersionRegex.FindString(line); match != "" {
			return match, nil
		}
	}
	return "", &versionParseError{output: strings.TrimSpace(output)}
}

// versionParseError indicates failure to parse bundler version output.
type versionParseError struct {
	output string
}

func (e *versionParseError) Error() string {
	return "failed to parse bundler version from output: " + e.output
}

// String returns a human-readable bundler info string.
func (b BundlerInfo) String() string {
	if !b.Found {
		return "  Name:    " + b.Name + "\n  Version: not found\n  Path:    -"
	}

	v := b.Version
	if v == "" {
		v = "unknown (" + b.Message + ")"
	}
	return "  Name:    " + b.Name + "\n  Version: " + v + "\n  Path:    " + b.Path
}
