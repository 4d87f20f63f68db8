// Package vcs reads repository metadata from theme checkouts by shelling out to git.
package vcs

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
)

// ProcessRunner starts a program and collects what it printed. Git talks to
// it exclusively, so tests can answer with canned output instead.
type ProcessRunner interface {
	Run(ctx context.Context, path string, args []string, stdin io.Reader) (stdout, stderr []byte, err error)
}

// quietEnv keeps git from prompting for credentials or opening a pager and
// pins its messages to the C locale.
var quietEnv = []string{
	"GIT_TERMINAL_PROMPT=0",
	"GIT_PAGER=cat",
	"LC_ALL=C",
}

// ExecRunner runs programs with os/exec in a non-interactive environment.
type ExecRunner struct {
	// Env is appended after the inherited environment and quietEnv.
	Env []string
}

// NewExecRunner returns a runner with no extra environment.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run starts path and waits for it. stderr is returned even on success so
// callers can log warnings git printed.
func (r *ExecRunner) Run(ctx context.Context, path string, args []string, stdin io.Reader) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = stdin
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Env = append(append(os.Environ(), quietEnv...), r.Env...)

	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}
