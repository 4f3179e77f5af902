package config

import (
	"github.com/spf13/cobra"

	"github.com/appbuild/cli/internal/cmdtypes"
	"github.com/appbuild/cli/internal/cmdutil"
)

// NewConfigShowCmd creates the config show command.
func NewConfigShowCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var (
		platformFlags cmdutil.PlatformFlags
		outputFlags   cmdutil.OutputFlags
	)

	c := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		Long: `Print the configuration a build would use: the base section merged with
the platform overlay. Without a config file the built-in defaults are shown.

Examples:
  # Resolved configuration for the host
  appbuild config show

  # Windows configuration as JSON
  appbuild config show --platform windows -o json`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			p, err := platformFlags.Resolve(gc.Host)
			if err != nil {
				return err
			}
			format, err := outputFlags.Resolve()
			if err != nil {
				return err
			}

			values, source, err := cmdutil.ResolveValues(gc, p)
			if err != nil {
				return err
			}
			gc.Log.Debug("showing configuration", "platform", p, "source", source)

			return cmdutil.WriteValues(c.OutOrStdout(), values, format)
		},
	}

	platformFlags.AddTo(c)
	outputFlags.AddTo(c)
	return c
}
