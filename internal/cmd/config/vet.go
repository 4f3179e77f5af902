package config

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/appbuild/cli/internal/cmdtypes"
	"github.com/appbuild/cli/internal/config"
	oerrors "github.com/appbuild/cli/internal/errors"
	"github.com/appbuild/cli/internal/identity"
	"github.com/appbuild/cli/internal/output"
	"github.com/appbuild/cli/internal/platform"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the build configuration",
		Long: `Validate the build configuration file.

Checks performed:
  1. Config file exists at resolved path
  2. Config file is well-formed JSON or YAML
  3. The configuration resolved for every platform satisfies the schema

The config path is resolved using precedence:
  --config flag > APPBUILD_CONFIG env > build_config.json`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVet(c, gc)
		},
	}
}

func runVet(c *cobra.Command, gc *cmdtypes.GlobalConfig) error {
	path := gc.ConfigPath.Path
	gc.Log.Debug("validating config", "path", path, "source", gc.ConfigPath.Source)

	// Check 1 & 2
	doc, err := config.NewLoader(gc.Log).Load(path)
	if err != nil {
		if errors.Is(err, oerrors.ErrConfigNotFound) {
			return oerrors.NewExitError(oerrors.NewNotFoundError(
				"configuration file not found", path,
				"Run 'appbuild config init' to create a default configuration",
			), oerrors.ExitNotFound)
		}
		return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
	}

	// Check 3
	validator, err := config.NewValidator()
	if err != nil {
		return err
	}

	var failed []platform.Platform
	for _, p := range platform.All() {
		values := doc.Resolve(p)
		if err := validator.Validate(values); err != nil {
			gc.Log.Error("invalid configuration", "platform", p, "err", err)
			failed = append(failed, p)
			continue
		}
		if digest, err := identity.ConfigDigest(values); err == nil {
			gc.Log.Debug("configuration valid", "platform", p, "digest", digest)
		}
	}
	if len(failed) > 0 {
		return &oerrors.ExitError{
			Err: oerrors.NewValidationError(
				fmt.Sprintf("configuration invalid for %v", failed), path, "",
				"Run with --verbose or 'appbuild config show -p <platform>' to inspect the resolved values",
			),
			Code:    oerrors.ExitValidationError,
			Printed: true,
		}
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Configuration is valid: "+output.StyleNoun.Render(path)))
	return nil
}
