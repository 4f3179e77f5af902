package build

import "fmt"

// Phase names a step of the build.
type Phase string

const (
	PhaseClean     Phase = "clean"
	PhaseValidate  Phase = "validate"
	PhasePrepare   Phase = "prepare"
	PhaseAssemble  Phase = "assemble"
	PhaseBundle    Phase = "bundle"
	PhasePostBuild Phase = "post-build"
)

// PhaseError reports which build step failed.
type PhaseError struct {
	Phase Phase
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}

func phaseError(phase Phase, err error) error {
	return &PhaseError{Phase: phase, Err: err}
}
