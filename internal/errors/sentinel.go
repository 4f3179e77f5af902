package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrConfigParse indicates a configuration document exists but is not
	// well-formed structured data.
	ErrConfigParse = errors.New("config parse error")

	// ErrConfigNotFound indicates no configuration document exists at the path.
	ErrConfigNotFound = errors.New("config not found")

	// ErrExternalProcess indicates an invoked external process failed.
	ErrExternalProcess = errors.New("external process failed")

	// ErrVersionFormat indicates a version string cannot be normalized.
	ErrVersionFormat = errors.New("invalid version format")

	// ErrValidation indicates the resolved configuration failed schema validation.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a file or tool was not found.
	ErrNotFound = errors.New("not found")
)

// Exit codes returned by the CLI.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates the build or command failed.
	ExitGeneralError = 1

	// ExitValidationError indicates the configuration failed validation.
	ExitValidationError = 2

	// ExitNotFound indicates a configuration file or tool was not found.
	ExitNotFound = 5
)
