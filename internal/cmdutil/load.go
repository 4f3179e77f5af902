package cmdutil

import (
	"errors"

	"github.com/appbuild/cli/internal/cmdtypes"
	"github.com/appbuild/cli/internal/config"
	oerrors "github.com/appbuild/cli/internal/errors"
	"github.com/appbuild/cli/internal/platform"
)

// LoadDocument loads the layered document at the resolved config path,
// falling back to the built-in defaults when the file does not exist.
func LoadDocument(gc *cmdtypes.GlobalConfig) (*config.Document, config.Source, error) {
	doc, source, err := config.NewLoader(gc.Log).LoadOrDefault(gc.ConfigPath.Path, gc.Host)
	if err != nil {
		return nil, "", WrapConfigError(err)
	}
	return doc, source, nil
}

// ResolveValues returns the configuration resolved for p.
func ResolveValues(gc *cmdtypes.GlobalConfig, p platform.Platform) (config.Values, config.Source, error) {
	values, source, err := config.NewLoader(gc.Log).Resolve(gc.ConfigPath.Path, p)
	if err != nil {
		return nil, "", WrapConfigError(err)
	}
	return values, source, nil
}

// WrapConfigError attaches an exit code to configuration loading failures.
func WrapConfigError(err error) error {
	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
}
