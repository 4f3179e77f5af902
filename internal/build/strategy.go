package build

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/appbuild/cli/internal/artifacts"
	"github.com/appbuild/cli/internal/config"
	"github.com/appbuild/cli/internal/output"
	"github.com/appbuild/cli/internal/platform"
)

// strategy holds the platform-specific parts of a build.
type strategy struct {
	// windowed adds --windowed unless console is set.
	windowed bool

	// prepare generates artifacts and returns extra bundler arguments.
	prepare func(o *Orchestrator) ([]string, []Artifact, error)

	// postBuild runs after a successful bundler invocation.
	postBuild func(ctx context.Context, o *Orchestrator, res *Result) error
}

var strategies = map[platform.Platform]strategy{
	platform.Windows: {
		windowed: true,
		prepare:  prepareWindows,
	},
	platform.MacOS: {
		windowed:  true,
		postBuild: signMacOS,
	},
	platform.Linux: {
		prepare:   prepareLinux,
		postBuild: copyDesktopFile,
	},
}

func strategyFor(p platform.Platform) strategy {
	return strategies[p]
}

func prepareWindows(o *Orchestrator) ([]string, []Artifact, error) {
	path, err := artifacts.CreateVersionInfo(o.Config, o.WorkDir)
	if err != nil {
		return nil, nil, err
	}

	// The bundler runs in WorkDir, so it gets the file name relative to it.
	args := []string{"--version-file", artifacts.VersionInfoFile}
	if o.Config.Bool(config.KeyUACAdmin) {
		args = append(args, "--uac-admin")
	}
	return args, []Artifact{{Path: path, Status: output.StatusGenerated}}, nil
}

func prepareLinux(o *Orchestrator) ([]string, []Artifact, error) {
	path, err := artifacts.CreateDesktopFile(o.rooted())
	if err != nil {
		return nil, nil, err
	}
	return nil, []Artifact{{Path: path, Status: output.StatusGenerated}}, nil
}

// copyDesktopFile places the generated desktop entry next to the bundled
// executable in the dist directory.
func copyDesktopFile(_ context.Context, o *Orchestrator, res *Result) error {
	rooted := o.rooted()
	src := artifacts.DesktopFilePath(rooted)
	dst := filepath.Join(rooted.String(config.KeyDistDir), filepath.Base(src))

	content, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("reading desktop file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("creating dist directory: %w", err)
	}
	if err := os.WriteFile(dst, content, 0o644); err != nil {
		return fmt.Errorf("copying desktop file: %w", err)
	}

	res.Artifacts = append(res.Artifacts, Artifact{Path: dst, Status: output.StatusCopied})
	return nil
}

// signMacOS signs <dist_dir>/<app_name>.app. A signing failure is recorded
// on the result and does not fail the build.
func signMacOS(ctx context.Context, o *Orchestrator, res *Result) error {
	rooted := o.rooted()
	bundle := filepath.Join(rooted.String(config.KeyDistDir), rooted.String(config.KeyAppName)+".app")

	signed := o.signer().SignBundle(ctx, bundle, rooted)
	res.Signed = &signed

	status := output.StatusSigned
	if !signed {
		status = output.StatusUnsigned
		o.log().Warn("bundle left unsigned", "bundle", bundle)
	}
	res.Artifacts = append(res.Artifacts, Artifact{Path: bundle, Status: status})
	return nil
}
