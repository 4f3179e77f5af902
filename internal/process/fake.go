package process

import (
	"context"
	"fmt"
	"sync"
)

// Call records one invocation seen by a FakeRunner.
type Call struct {
	Name string
	Args []string
	Dir  string
}

// FakeResponse is the scripted outcome for a command name.
type FakeResponse struct {
	Output   string
	ExitCode int
}

// FakeRunner is a Runner that records invocations and replies with scripted
// responses keyed by command name. Commands without a response succeed with
// empty output.
type FakeRunner struct {
	mu        sync.Mutex
	responses map[string][]FakeResponse
	calls     []Call
}

// NewFakeRunner creates an empty FakeRunner.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{responses: make(map[string][]FakeResponse)}
}

// On queues a response for the next invocation of name. Multiple responses
// for the same name are consumed in order; the last one repeats.
func (f *FakeRunner) On(name string, resp FakeResponse) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[name] = append(f.responses[name], resp)
	return f
}

// Calls returns the recorded invocations.
func (f *FakeRunner) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// Run implements Runner.
func (f *FakeRunner) Run(_ context.Context, c Command) (Result, error) {
	f.mu.Lock()
	f.calls = append(f.calls, Call{Name: c.Name, Args: append([]string(nil), c.Args...), Dir: c.Dir})
	resp := FakeResponse{}
	if queue := f.responses[c.Name]; len(queue) > 0 {
		resp = queue[0]
		if len(queue) > 1 {
			f.responses[c.Name] = queue[1:]
		}
	}
	f.mu.Unlock()

	if c.Stdout != nil {
		fmt.Fprint(c.Stdout, resp.Output)
	}
	result := Result{Output: []byte(resp.Output)}
	if resp.ExitCode != 0 {
		return result, &ExternalProcessError{
			Command:  c.Name,
			Args:     c.Args,
			Dir:      c.Dir,
			ExitCode: resp.ExitCode,
			Output:   resp.Output,
			Err:      fmt.Errorf("exit status %d", resp.ExitCode),
		}
	}
	return result, nil
}
