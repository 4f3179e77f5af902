package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/appbuild/cli/internal/cmdtypes"
	"github.com/appbuild/cli/internal/config"
	oerrors "github.com/appbuild/cli/internal/errors"
	"github.com/appbuild/cli/internal/output"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a build configuration file with default values",
		Long: `Create a build configuration file holding the built-in defaults for
every platform.

The file is created at build_config.json by default. Use --config to
specify a different location; a .yaml or .yml extension writes YAML.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInit(c, gc, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return c
}

func runInit(c *cobra.Command, gc *cmdtypes.GlobalConfig, force bool) error {
	path, err := config.ExpandPath(gc.ConfigPath.Path)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		if !force {
			return oerrors.NewExitError(
				fmt.Errorf("config file already exists at %s (use --force to overwrite)", path),
				oerrors.ExitGeneralError,
			)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking config file: %w", err)
	}

	if err := config.Save(config.DefaultDocument(gc.Host), path); err != nil {
		return err
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Config file created: "+output.StyleNoun.Render(path)))
	return nil
}
