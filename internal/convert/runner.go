package convert

import (
	"bytes"
	"context"
	"os/exec"
)

var commandContext = exec.CommandContext

// Runner executes the transcoder and reports its diagnostic stream.
type Runner interface {
	Run(ctx context.Context, binary string, args []string) (stderr []byte, err error)
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(ctx context.Context, binary string, args []string) ([]byte, error)

// Run calls f.
func (f RunnerFunc) Run(ctx context.Context, binary string, args []string) ([]byte, error) {
	return f(ctx, binary, args)
}

type execRunner struct{}

// NewExecRunner returns a Runner that starts the binary with os/exec and
// captures stderr. Stdout is discarded.
func NewExecRunner() Runner {
	return execRunner{}
}

func (execRunner) Run(ctx context.Context, binary string, args []string) ([]byte, error) {
	cmd := commandContext(ctx, binary, args...) //nolint:gosec
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stderr.Bytes(), err
}
