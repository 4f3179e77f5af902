// Package process runs the external tools appbuild drives: the bundler,
// codesign and the keychain identity listing.
package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	oerrors "github.com/appbuild/cli/internal/errors"
)

// Command describes a single external invocation.
type Command struct {
	// Name is the executable name or path.
	Name string

	// Args are the arguments passed to the executable.
	Args []string

	// Dir is the working directory. Empty means the current directory.
	Dir string

	// Stdout and Stderr receive streamed output. When both are nil the
	// combined output is captured into Result.Output instead.
	Stdout io.Writer
	Stderr io.Writer
}

// String renders the command line for logging.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Result is the outcome of a successful invocation.
type Result struct {
	// Output holds combined stdout and stderr when output was captured.
	Output []byte
}

// Runner executes external commands. Implementations block until the
// command exits.
type Runner interface {
	Run(ctx context.Context, cmd Command) (Result, error)
}

// ExternalProcessError reports a failed external invocation.
type ExternalProcessError struct {
	Command  string
	Args     []string
	Dir      string
	ExitCode int
	Output   string
	Err      error
}

// Error implements the error interface.
func (e *ExternalProcessError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s failed", e.Command)
	if e.ExitCode > 0 {
		fmt.Fprintf(&b, " with exit code %d", e.ExitCode)
	}
	if e.Dir != "" {
		fmt.Fprintf(&b, " (dir %s)", e.Dir)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *ExternalProcessError) Unwrap() []error {
	return []error{oerrors.ErrExternalProcess, e.Err}
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// NewExecRunner creates a Runner backed by os/exec.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run starts the command and waits for it to exit.
func (r *ExecRunner) Run(ctx context.Context, c Command) (Result, error) {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir

	var captured bytes.Buffer
	capture := c.Stdout == nil && c.Stderr == nil
	if capture {
		cmd.Stdout = &captured
		cmd.Stderr = &captured
	} else {
		cmd.Stdout = c.Stdout
		cmd.Stderr = c.Stderr
	}

	err := cmd.Run()
	result := Result{Output: captured.Bytes()}
	if err == nil {
		return result, nil
	}

	perr := &ExternalProcessError{
		Command:  c.Name,
		Args:     c.Args,
		Dir:      c.Dir,
		ExitCode: -1,
		Output:   captured.String(),
		Err:      err,
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		perr.ExitCode = exitErr.ExitCode()
	}
	return result, perr
}

// LookPath reports the resolved path of an executable in PATH.
func LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", oerrors.Wrap(oerrors.ErrNotFound, fmt.Sprintf("%s not found in PATH", name))
	}
	return path, nil
}
