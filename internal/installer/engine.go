package installer

import (
	"fmt"
	"time"

	"github.com/pvermeer/zbminstall/internal/exec"
	"github.com/pvermeer/zbminstall/internal/logging"
)

// Runner executes the commands of one install step
type Runner interface {
	RunStep(step Step) error
}

// SimRunner pretends to run steps, pausing briefly per command so the
// progress screen behaves like a real install. This is the default:
// nothing touches the system unless --apply is given.
type SimRunner struct {
	Delay time.Duration
}

// NewSimRunner returns a simulated runner with the default pacing
func NewSimRunner() *SimRunner {
	return &SimRunner{Delay: 300 * time.Millisecond}
}

// RunStep pauses once per command in the step
func (r *SimRunner) RunStep(step Step) error {
	for range step.Commands {
		time.Sleep(r.Delay)
	}
	return nil
}

// ExecRunner runs step commands on the real system
type ExecRunner struct {
	Commander exec.Commander
}

// NewExecRunner returns a runner backed by the default command runner
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Commander: exec.Default}
}

// RunStep runs every command of the step, stopping at the first failure
func (r *ExecRunner) RunStep(step Step) error {
	for _, cmd := range step.Commands {
		if len(cmd) == 0 {
			continue
		}
		err := r.Commander.Run(cmd[0], cmd[1:]...)
		logging.LogStep(step.ID, cmd.String(), err)
		if err != nil {
			return fmt.Errorf("step %s: %w", step.ID, err)
		}
	}
	return nil
}

// StepResult records the outcome of one executed step
type StepResult struct {
	Step Step
	Err  error
}

// Execute runs the plan's steps in order through the runner, invoking
// onStep after each one. Execution stops at the first failing step;
// there is no rollback.
func Execute(plan *Plan, runner Runner, onStep func(i int, step Step, err error)) error {
	for i, step := range plan.Steps {
		err := runner.RunStep(step)
		if onStep != nil {
			onStep(i, step, err)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
