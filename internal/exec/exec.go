// Package exec wraps command execution so callers can be tested with a
// fake runner.
package exec

import (
	"fmt"
	"os/exec"
	"strings"
)

// Commander runs external commands
type Commander interface {
	RunOutput(name string, args ...string) (string, error)
	Run(name string, args ...string) error
	LookPath(name string) error
}

// Runner executes commands on the real system
type Runner struct{}

// Default is the runner used outside of tests
var Default = &Runner{}

// RunOutput runs a command and returns its combined trimmed output
func (r *Runner) RunOutput(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "), err, strings.TrimSpace(string(out)))
	}
	return strings.TrimSpace(string(out)), nil
}

// Run runs a command, discarding output
func (r *Runner) Run(name string, args ...string) error {
	_, err := r.RunOutput(name, args...)
	return err
}

// LookPath reports whether the named binary is on PATH
func (r *Runner) LookPath(name string) error {
	_, err := exec.LookPath(name)
	return err
}
