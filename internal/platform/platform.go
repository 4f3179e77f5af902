// Package platform maps the host operating system to the build platforms
// understood by appbuild and derives their file-extension conventions.
package platform

import (
	"fmt"
	"runtime"
	"strings"
)

// Platform identifies a build target operating system.
type Platform string

const (
	// Windows builds .exe executables with a version resource.
	Windows Platform = "windows"

	// MacOS builds signed .app bundles.
	MacOS Platform = "macos"

	// Linux builds plain executables with a desktop entry.
	Linux Platform = "linux"
)

// All returns every platform in document order.
func All() []Platform {
	return []Platform{Windows, MacOS, Linux}
}

// Current returns the platform of the running host.
func Current() Platform {
	return FromGOOS(runtime.GOOS)
}

// FromGOOS maps a GOOS value to a Platform. Anything that is not Windows or
// macOS is treated as Linux.
func FromGOOS(goos string) Platform {
	switch goos {
	case "windows":
		return Windows
	case "darwin":
		return MacOS
	default:
		return Linux
	}
}

// Parse parses a platform identifier. Matching is case-insensitive and
// accepts "darwin" as an alias for macos.
func Parse(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "windows":
		return Windows, nil
	case "macos", "darwin":
		return MacOS, nil
	case "linux":
		return Linux, nil
	default:
		return "", fmt.Errorf("unknown platform %q (valid: windows, macos, linux)", s)
	}
}

// String returns the platform identifier.
func (p Platform) String() string {
	return string(p)
}

// IsValid reports whether p is one of the known platforms.
func (p Platform) IsValid() bool {
	switch p {
	case Windows, MacOS, Linux:
		return true
	default:
		return false
	}
}

// ExecutableSuffix returns ".exe" on Windows and "" elsewhere.
func (p Platform) ExecutableSuffix() string {
	if p == Windows {
		return ".exe"
	}
	return ""
}

// IconSuffix returns the icon file extension the bundler expects.
func (p Platform) IconSuffix() string {
	switch p {
	case Windows:
		return ".ico"
	case MacOS:
		return ".icns"
	default:
		return ".png"
	}
}
