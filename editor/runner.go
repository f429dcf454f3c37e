package editor

import (
	"io"
	"os"
	"os/exec"
)

import (
	"github.com/timtadh/screenedit/errors"
)

// Runner runs a program to completion. status is the exit status of the
// program; err is only set if the program could not be run at all.
type Runner interface {
	Run(name string, args ...string) (status int, err error)
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(name string, args ...string) (int, error)

func (f RunnerFunc) Run(name string, args ...string) (int, error) {
	return f(name, args...)
}

// ExecRunner starts an interactive child process attached to the given
// streams and waits for it.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner attaches children to this process's terminal.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func (self *ExecRunner) Run(name string, args ...string) (int, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = self.Stdin
	cmd.Stdout = self.Stdout
	cmd.Stderr = self.Stderr
	if err := cmd.Run(); err != nil {
		if exit, ok := err.(*exec.ExitError); ok {
			return exit.ExitCode(), nil
		}
		return -1, errors.Wrap(err, "running %v", name)
	}
	return 0, nil
}
