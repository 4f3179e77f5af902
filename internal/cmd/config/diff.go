package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/appbuild/cli/internal/cmdtypes"
	"github.com/appbuild/cli/internal/cmdutil"
	"github.com/appbuild/cli/internal/config"
	"github.com/appbuild/cli/internal/output"
)

// NewConfigDiffCmd creates the config diff command.
func NewConfigDiffCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var platformFlags cmdutil.PlatformFlags

	c := &cobra.Command{
		Use:   "diff",
		Short: "Show what a platform overlay changes",
		Long: `Show the difference between the base section and the configuration
resolved for a platform.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			p, err := platformFlags.Resolve(gc.Host)
			if err != nil {
				return err
			}

			doc, _, err := cmdutil.LoadDocument(gc)
			if err != nil {
				return err
			}

			diff, err := config.OverlayDiff(doc, p, output.IsTTY())
			if err != nil {
				return err
			}

			if diff == "" {
				fmt.Fprintf(c.OutOrStdout(), "%s overlay changes nothing\n", p)
				return nil
			}
			fmt.Fprintf(c.OutOrStdout(), "%s %s\n", output.StyleAction.Render("overlay"), output.StyleNoun.Render(p.String()))
			fmt.Fprint(c.OutOrStdout(), output.IndentDiff(diff, "  "))
			return nil
		},
	}

	platformFlags.AddTo(c)
	return c
}
