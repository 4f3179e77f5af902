// Package config provides CLI command implementations for the config command group.
package config

import (
	"github.com/spf13/cobra"

	"github.com/appbuild/cli/internal/cmdtypes"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Build configuration management",
		Long: `Inspect, create and validate the layered build configuration.

The document has a "base" section and one overlay per platform
("windows", "macos", "linux"). The resolved configuration for a platform
is the base section with that platform's overlay laid on top.`,
	}

	c.AddCommand(NewConfigInitCmd(gc))
	c.AddCommand(NewConfigShowCmd(gc))
	c.AddCommand(NewConfigSaveCmd(gc))
	c.AddCommand(NewConfigDiffCmd(gc))
	c.AddCommand(NewConfigVetCmd(gc))

	return c
}
