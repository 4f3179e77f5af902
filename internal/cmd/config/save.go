package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/appbuild/cli/internal/cmdtypes"
	"github.com/appbuild/cli/internal/cmdutil"
	"github.com/appbuild/cli/internal/config"
	"github.com/appbuild/cli/internal/output"
)

// NewConfigSaveCmd creates the config save command.
func NewConfigSaveCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var (
		flatten bool
		target  string
	)

	c := &cobra.Command{
		Use:   "save",
		Short: "Write the configuration document back to disk",
		Long: `Write the configuration document back to disk, normalizing its format.

By default the layered document is written unchanged, so every platform's
overlay survives. With --flatten the host's resolved configuration is
written as the base section instead; the other platforms' overlays are
dropped.

Without a config file the built-in defaults are written.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			doc, _, err := cmdutil.LoadDocument(gc)
			if err != nil {
				return err
			}

			if flatten {
				doc = config.Flatten(doc.Resolve(gc.Host), gc.Host)
			}

			path := target
			if path == "" {
				path = gc.ConfigPath.Path
			}
			if err := config.Save(doc, path); err != nil {
				return err
			}

			gc.Log.Debug("saved configuration", "path", path, "flatten", flatten)
			fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Config saved: "+output.StyleNoun.Render(path)))
			return nil
		},
	}

	c.Flags().BoolVar(&flatten, "flatten", false, "Write the host's resolved configuration instead of the layered document")
	c.Flags().StringVar(&target, "to", "", "Destination path (default: the config path)")
	return c
}
