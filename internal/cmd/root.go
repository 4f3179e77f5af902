// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	cmdconfig "github.com/appbuild/cli/internal/cmd/config"
	"github.com/appbuild/cli/internal/cmdtypes"
	"github.com/appbuild/cli/internal/cmdutil"
	"github.com/appbuild/cli/internal/config"
	"github.com/appbuild/cli/internal/output"
	"github.com/appbuild/cli/internal/platform"
)

// NewRootCmd creates the root command for the appbuild CLI. Run without a
// subcommand it builds the application, like `appbuild build`.
func NewRootCmd() *cobra.Command {
	var (
		configFlag     string
		verboseFlag    bool
		timestampsFlag bool
		buildFlags     cmdutil.BuildFlags
	)

	gc := &cmdtypes.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "appbuild",
		Short: "Cross-platform application bundler driver",
		Long: `appbuild packages an application into a platform-specific executable.

It resolves the layered build configuration (base options plus the host
platform's overlay), generates the auxiliary files the bundler needs, runs
the bundler and, on macOS, code-signs the resulting bundle.

The configuration path is resolved using precedence:
  --config flag > APPBUILD_CONFIG env > build_config.json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			logCfg := output.LogConfig{
				Verbose: verboseFlag,
				Writer:  c.ErrOrStderr(),
			}
			if c.Flags().Changed("timestamps") {
				logCfg.Timestamps = output.BoolPtr(timestampsFlag)
			}

			gc.Log = output.NewLogger(logCfg)
			gc.Verbose = verboseFlag
			gc.Host = platform.Current()
			gc.ConfigPath = config.ResolveConfigPath(configFlag)
			gc.ConfigPath.Log(gc.Log)
			gc.Log.Debug("initializing CLI", "platform", gc.Host, "config", gc.ConfigPath.Path)
			return nil
		},
		RunE: func(c *cobra.Command, _ []string) error {
			return runBuild(c, gc, &buildFlags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to build configuration file (env: APPBUILD_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")
	buildFlags.AddTo(rootCmd)

	rootCmd.AddCommand(NewBuildCmd(gc))
	rootCmd.AddCommand(cmdconfig.NewConfigCmd(gc))
	rootCmd.AddCommand(NewVersionCmd(gc))

	return rootCmd
}
