// Package build orchestrates a single bundler run: cleaning output
// directories, preparing platform artifacts, assembling the bundler
// arguments, invoking the bundler and running post-build steps.
package build

import (
	"time"

	"github.com/appbuild/cli/internal/platform"
)

// DefaultBundler is the bundler executable invoked when none is configured.
const DefaultBundler = "pyinstaller"

// BuildOptions controls a single Build call.
type BuildOptions struct {
	// Clean removes the build and dist directories before building.
	Clean bool
}

// Artifact is a file or directory the build created, copied or removed.
type Artifact struct {
	// Path is the artifact location.
	Path string

	// Status is one of the output.Status* values.
	Status string
}

// Result describes a successful build.
type Result struct {
	// ID uniquely identifies this build invocation.
	ID string

	// ConfigID identifies the resolved configuration. Builds of the same
	// configuration on the same platform share it.
	ConfigID string

	// AppName is the configured application name.
	AppName string

	// Platform is the platform the build targeted.
	Platform platform.Platform

	// WorkDir is the directory the bundler ran in. Empty means the
	// current directory.
	WorkDir string

	// Args are the arguments the bundler was invoked with.
	Args []string

	// Signed reports the macOS signing outcome. Nil on other platforms.
	Signed *bool

	// Artifacts lists what the build touched, in order.
	Artifacts []Artifact

	// Duration is the wall time of the whole build.
	Duration time.Duration
}
