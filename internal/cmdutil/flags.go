// Package cmdutil provides shared command utilities for the build and config
// commands. It centralizes flag groups, document loading and output
// formatting helpers.
package cmdutil

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/appbuild/cli/internal/output"
	"github.com/appbuild/cli/internal/platform"
)

// PlatformFlags holds the --platform override used by commands that inspect
// another platform's configuration (config show, config diff).
type PlatformFlags struct {
	Platform string
}

// AddTo registers the platform flag on the given cobra command.
func (f *PlatformFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Platform, "platform", "p", "",
		"Target platform: "+strings.Join(platformNames(), ", ")+" (default: host)")
}

// Resolve returns the selected platform, or host when the flag is unset.
func (f *PlatformFlags) Resolve(host platform.Platform) (platform.Platform, error) {
	if f.Platform == "" {
		return host, nil
	}
	return platform.Parse(f.Platform)
}

func platformNames() []string {
	all := platform.All()
	names := make([]string, len(all))
	for i, p := range all {
		names[i] = p.String()
	}
	return names
}

// OutputFlags holds the -o/--output format flag.
type OutputFlags struct {
	Format string
}

// AddTo registers the output flag on the given cobra command.
func (f *OutputFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Format, "output", "o", string(output.FormatTable),
		"Output format: "+strings.Join(output.ValidFormats(), ", "))
}

// Resolve parses the format flag.
func (f *OutputFlags) Resolve() (output.Format, error) {
	format, ok := output.ParseFormat(f.Format)
	if !ok {
		return "", fmt.Errorf("invalid output format %q (valid: %s)", f.Format, strings.Join(output.ValidFormats(), ", "))
	}
	return format, nil
}

// BuildFlags holds flags of the build action (root command and build).
type BuildFlags struct {
	Clean   bool
	Bundler string
	WorkDir string
}

// AddTo registers the build flags on the given cobra command.
func (f *BuildFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.Clean, "clean", false,
		"Remove build and dist directories before building")
	cmd.Flags().StringVar(&f.Bundler, "bundler", "",
		"Bundler executable (default: pyinstaller)")
	cmd.Flags().StringVar(&f.WorkDir, "workdir", "",
		"Directory the bundler runs in (default: current directory)")
}
