package artifacts

import (
	"fmt"
	"strconv"
	"strings"

	oerrors "github.com/appbuild/cli/internal/errors"
)

// versionComponents is the number of numeric components in a Windows
// file version.
const versionComponents = 4

// VersionFormatError reports a version string that cannot be expressed as a
// four-component numeric version.
type VersionFormatError struct {
	Version string
	Reason  string
}

// Error implements the error interface.
func (e *VersionFormatError) Error() string {
	return fmt.Sprintf("version %q: %s", e.Version, e.Reason)
}

// Unwrap returns ErrVersionFormat.
func (e *VersionFormatError) Unwrap() error {
	return oerrors.ErrVersionFormat
}

// NormalizeVersion splits a dotted version into four non-negative integers,
// padding missing trailing components with zero.
func NormalizeVersion(version string) ([versionComponents]int, error) {
	var out [versionComponents]int

	trimmed := strings.TrimSpace(version)
	if trimmed == "" {
		return out, &VersionFormatError{Version: version, Reason: "empty version"}
	}

	parts := strings.Split(trimmed, ".")
	if len(parts) > versionComponents {
		return out, &VersionFormatError{
			Version: version,
			Reason:  fmt.Sprintf("has %d components, at most %d allowed", len(parts), versionComponents),
		}
	}

	for i, part := range parts {
		if part == "" || strings.TrimLeft(part, "0123456789") != "" {
			return out, &VersionFormatError{
				Version: version,
				Reason:  fmt.Sprintf("component %d (%q) is not a number", i+1, part),
			}
		}
		n, err := strconv.Atoi(part)
		if err != nil || n > 65535 {
			return out, &VersionFormatError{
				Version: version,
				Reason:  fmt.Sprintf("component %d (%q) is out of range", i+1, part),
			}
		}
		out[i] = n
	}
	return out, nil
}

// VersionTuple renders a normalized version as "a,b,c,d".
func VersionTuple(v [versionComponents]int) string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}
