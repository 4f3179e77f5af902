package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/appbuild/cli/internal/build"
	"github.com/appbuild/cli/internal/cmdtypes"
	"github.com/appbuild/cli/internal/process"
	"github.com/appbuild/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	var bundler string

	c := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show appbuild version information.

Displays:
  - appbuild version, commit, and build date
  - CUE SDK version (embedded in CLI)
  - Bundler version and path, when found in PATH`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			info := version.Get()
			bundlerInfo := version.DetectBundler(c.Context(), process.NewExecRunner(), bundler)
			fmt.Fprintln(c.OutOrStdout(), version.FullVersionString(info, bundlerInfo))
			return nil
		},
	}

	c.Flags().StringVar(&bundler, "bundler", build.DefaultBundler, "Bundler executable to detect")
	return c
}
