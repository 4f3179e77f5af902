package cmd

import (
	"github.com/spf13/cobra"

	"github.com/appbuild/cli/internal/build"
	"github.com/appbuild/cli/internal/cmdtypes"
	"github.com/appbuild/cli/internal/cmdutil"
	"github.com/appbuild/cli/internal/config"
	oerrors "github.com/appbuild/cli/internal/errors"
	"github.com/appbuild/cli/internal/process"
)

// NewBuildCmd creates the build command.
func NewBuildCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var flags cmdutil.BuildFlags

	c := &cobra.Command{
		Use:   "build",
		Short: "Build the application for the host platform",
		Long: `Build the application for the host platform.

Steps:
  1. Remove build and dist directories (with --clean)
  2. Validate the resolved configuration
  3. Generate platform files (Windows version resource, Linux desktop entry)
  4. Run the bundler
  5. Sign the bundle (macOS)

Examples:
  # Build with build_config.json from the current directory
  appbuild build

  # Clean first, using another configuration
  appbuild build --clean --config release.json`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runBuild(c, gc, &flags)
		},
	}

	flags.AddTo(c)
	return c
}

// runBuild resolves the configuration for the host and runs one build. Any
// failure exits with ExitGeneralError.
func runBuild(c *cobra.Command, gc *cmdtypes.GlobalConfig, flags *cmdutil.BuildFlags) error {
	values, source, err := cmdutil.ResolveValues(gc, gc.Host)
	if err != nil {
		gc.Log.Error("loading configuration", "path", gc.ConfigPath.Path, "err", err)
		return buildFailed(err)
	}
	gc.Log.Debug("configuration resolved", "source", source, "keys", len(values))

	validator, err := config.NewValidator()
	if err != nil {
		return buildFailed(err)
	}

	o := build.New(values, gc.Host, gc.Log)
	o.Runner = process.NewExecRunner()
	o.Validator = validator
	o.WorkDir = flags.WorkDir
	if flags.Bundler != "" {
		o.Bundler = flags.Bundler
	}
	if gc.Verbose {
		o.Stdout = c.ErrOrStderr()
		o.Stderr = c.ErrOrStderr()
	} else {
		o.Progress = true
	}

	res, err := o.Build(c.Context(), build.BuildOptions{Clean: flags.Clean})
	if err != nil {
		gc.Log.Error("build failed", "err", err)
		return buildFailed(err)
	}

	cmdutil.WriteBuildResult(c.OutOrStdout(), gc.Log, res, gc.Verbose)
	return nil
}

func buildFailed(err error) error {
	return &oerrors.ExitError{Err: err, Code: oerrors.ExitGeneralError, Printed: true}
}
