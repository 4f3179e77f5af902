package build

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/appbuild/cli/internal/artifacts"
	"github.com/appbuild/cli/internal/config"
	oerrors "github.com/appbuild/cli/internal/errors"
	"github.com/appbuild/cli/internal/identity"
	"github.com/appbuild/cli/internal/output"
	"github.com/appbuild/cli/internal/platform"
	"github.com/appbuild/cli/internal/process"
)

// Orchestrator runs a build for one resolved configuration on one platform.
type Orchestrator struct {
	// Config is the resolved configuration. It is not modified.
	Config config.Values

	// Platform selects the platform strategy.
	Platform platform.Platform

	// Runner executes the bundler and signing tools.
	Runner process.Runner

	// Logger receives progress. Nil discards.
	Logger *log.Logger

	// Bundler is the bundler executable. Empty means DefaultBundler.
	Bundler string

	// WorkDir is the directory relative paths resolve against and the
	// bundler runs in. Empty means the current directory.
	WorkDir string

	// Stdout and Stderr receive the bundler's output. When both are nil the
	// output is captured and only reported on failure.
	Stdout io.Writer
	Stderr io.Writer

	// Progress shows a spinner while the bundler runs on a TTY.
	Progress bool

	// Validator checks the configuration before anything is written. Nil
	// skips schema validation.
	Validator *config.Validator
}

// New creates an Orchestrator with the exec-backed runner.
func New(cfg config.Values, p platform.Platform, logger *log.Logger) *Orchestrator {
	return &Orchestrator{
		Config:   cfg,
		Platform: p,
		Runner:   process.NewExecRunner(),
		Logger:   logger,
		Bundler:  DefaultBundler,
	}
}

func (o *Orchestrator) log() *log.Logger {
	if o.Logger == nil {
		o.Logger = output.Discard()
	}
	return o.Logger
}

func (o *Orchestrator) bundler() string {
	if o.Bundler == "" {
		return DefaultBundler
	}
	return o.Bundler
}

func (o *Orchestrator) signer() *artifacts.Signer {
	return artifacts.NewSigner(o.Runner, o.log())
}

// path resolves p against WorkDir.
func (o *Orchestrator) path(p string) string {
	if p == "" || o.WorkDir == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(o.WorkDir, p)
}

// rooted returns a copy of the configuration with its filesystem keys
// resolved against WorkDir.
func (o *Orchestrator) rooted() config.Values {
	out := o.Config.Clone()
	for _, key := range []string{config.KeyBuildDir, config.KeyDistDir, config.KeyEntitlementsFile} {
		if out.Has(key) {
			out[key] = o.path(out.String(key))
		}
	}
	return out
}

// Clean removes the build and dist directories. Directories that do not
// exist are skipped silently.
func (o *Orchestrator) Clean() error {
	_, err := o.clean()
	return err
}

func (o *Orchestrator) clean() ([]Artifact, error) {
	var removed []Artifact
	for _, key := range []string{config.KeyBuildDir, config.KeyDistDir} {
		dir := o.Config.String(key)
		if dir == "" {
			continue
		}
		target := o.path(dir)

		if _, err := os.Stat(target); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return removed, fmt.Errorf("checking %s: %w", target, err)
		}

		if err := os.RemoveAll(target); err != nil {
			return removed, fmt.Errorf("removing %s: %w", target, err)
		}
		o.log().Info("cleaned directory", "dir", dir)
		removed = append(removed, Artifact{Path: target, Status: output.StatusRemoved})
	}
	return removed, nil
}

// PlatformArgs generates the platform's artifacts and returns the extra
// bundler arguments they require.
func (o *Orchestrator) PlatformArgs() ([]string, []Artifact, error) {
	s := strategyFor(o.Platform)
	if s.prepare == nil {
		return nil, nil, nil
	}
	return s.prepare(o)
}

// AssembleArgs builds the bundler argument list. The order is fixed:
//
//	--name <app> --noconfirm --clean
//	--windowed (windows and macos, unless console is set)
//	--icon <file>
//	platform arguments
//	--osx-bundle-identifier <id> (macos)
//	--hidden-import <mod> per hidden import
//	--add-data <src><sep><dst> per data pair
//	<main script>
//
// Linux builds never get --windowed, whatever console is set to.
func (o *Orchestrator) AssembleArgs(platformArgs []string) ([]string, error) {
	cfg := o.Config
	args := []string{"--name", cfg.String(config.KeyAppName), "--noconfirm", "--clean"}

	if strategyFor(o.Platform).windowed && !cfg.Bool(config.KeyConsole) {
		args = append(args, "--windowed")
	}

	if cfg.Has(config.KeyIconFile) {
		args = append(args, "--icon", cfg.String(config.KeyIconFile))
	}

	args = append(args, platformArgs...)

	if o.Platform == platform.MacOS && cfg.Has(config.KeyBundleIdentifier) {
		args = append(args, "--osx-bundle-identifier", cfg.String(config.KeyBundleIdentifier))
	}

	for _, mod := range cfg.Strings(config.KeyHiddenImports) {
		args = append(args, "--hidden-import", mod)
	}

	files, err := cfg.DataFiles()
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		args = append(args, "--add-data", f.Source+string(os.PathListSeparator)+f.Destination)
	}

	return append(args, cfg.String(config.KeyMainScript)), nil
}

// Build runs the build.
//
// The build process follows these phases:
//  1. Clean build and dist directories (when requested)
//  2. Validate the configuration against the schema
//  3. Prepare platform artifacts and their bundler arguments
//  4. Assemble the bundler argument list
//  5. Invoke the bundler
//  6. Run platform post-build steps (desktop file copy, code signing)
//
// A bundler failure fails the build. A macOS signing failure is reported
// through Result.Signed and does not.
func (o *Orchestrator) Build(ctx context.Context, opts BuildOptions) (*Result, error) {
	var err error
	start := time.Now()
	res := &Result{
		ID:       uuid.NewString(),
		AppName:  o.Config.String(config.KeyAppName),
		Platform: o.Platform,
		WorkDir:  o.WorkDir,
	}
	logger := output.AppLogger(o.log(), res.AppName)
	logger.Debug("starting build", "id", res.ID, "platform", o.Platform, "bundler", o.bundler())

	// Phase 1
	if opts.Clean {
		removed, err := o.clean()
		res.Artifacts = append(res.Artifacts, removed...)
		if err != nil {
			return nil, phaseError(PhaseClean, err)
		}
	}

	// Phase 2
	if o.Validator != nil {
		if err := o.Validator.Validate(o.Config); err != nil {
			return nil, phaseError(PhaseValidate, fmt.Errorf("%w: %w", oerrors.ErrValidation, err))
		}
	}
	if res.ConfigID, err = identity.ConfigID(o.Config, o.Platform); err != nil {
		return nil, phaseError(PhaseValidate, err)
	}
	logger.Debug("configuration identity", "config_id", res.ConfigID)

	// Phase 3
	platformArgs, generated, err := o.PlatformArgs()
	if err != nil {
		return nil, phaseError(PhasePrepare, err)
	}
	res.Artifacts = append(res.Artifacts, generated...)

	// Phase 4
	args, err := o.AssembleArgs(platformArgs)
	if err != nil {
		return nil, phaseError(PhaseAssemble, err)
	}
	res.Args = args
	logger.Debug("bundler arguments", "args", args)

	// Phase 5
	cmd := process.Command{
		Name:   o.bundler(),
		Args:   args,
		Dir:    o.WorkDir,
		Stdout: o.Stdout,
		Stderr: o.Stderr,
	}
	err = output.RunWithSpinner(ctx, func(ctx context.Context) error {
		_, err := o.Runner.Run(ctx, cmd)
		return err
	}, output.WithTitle(fmt.Sprintf("Bundling %s for %s", res.AppName, o.Platform)), output.WithEnabled(o.Progress))
	if err != nil {
		var perr *process.ExternalProcessError
		if errors.As(err, &perr) && perr.Output != "" {
			logger.Error("bundler output", "output", perr.Output)
		}
		return nil, phaseError(PhaseBundle, err)
	}
	logger.Info("application built")

	// Phase 6
	if post := strategyFor(o.Platform).postBuild; post != nil {
		if err := post(ctx, o, res); err != nil {
			return nil, phaseError(PhasePostBuild, err)
		}
	}

	res.Duration = time.Since(start)
	return res, nil
}
