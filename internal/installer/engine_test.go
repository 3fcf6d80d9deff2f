package installer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvermeer/zbminstall/internal/config"
)

// failAfter fails every step once n steps have succeeded
type failAfter struct {
	n    int
	seen int
}

func (r *failAfter) RunStep(step Step) error {
	r.seen++
	if r.seen > r.n {
		return assert.AnError
	}
	return nil
}

func TestExecute_AllSteps(t *testing.T) {
	plan, err := Build(ModeNew, testDrives(1), config.Defaults())
	require.NoError(t, err)

	var done []string
	err = Execute(plan, &failAfter{n: len(plan.Steps)}, func(i int, step Step, err error) {
		assert.NoError(t, err)
		done = append(done, step.ID)
	})
	require.NoError(t, err)
	assert.Equal(t, stepIDs(plan), done)
}

func TestExecute_StopsOnFirstFailure(t *testing.T) {
	plan, err := Build(ModeNew, testDrives(1), config.Defaults())
	require.NoError(t, err)

	var calls int
	err = Execute(plan, &failAfter{n: 1}, func(i int, step Step, err error) {
		calls++
	})
	require.Error(t, err)
	assert.Equal(t, 2, calls, "callback fires for the failing step, then execution stops")
}

func TestSimRunner(t *testing.T) {
	r := &SimRunner{Delay: time.Millisecond}
	step := Step{ID: "x", Commands: []Command{{"a"}, {"b"}}}

	start := time.Now()
	require.NoError(t, r.RunStep(step))
	assert.GreaterOrEqual(t, time.Since(start), 2*time.Millisecond)
}

type recordingCommander struct {
	lines []string
	fail  string
}

func (c *recordingCommander) RunOutput(name string, args ...string) (string, error) {
	return "", c.Run(name, args...)
}

func (c *recordingCommander) Run(name string, args ...string) error {
	line := Command(append([]string{name}, args...)).String()
	c.lines = append(c.lines, line)
	if c.fail != "" && name == c.fail {
		return assert.AnError
	}
	return nil
}

func (c *recordingCommander) LookPath(name string) error { return nil }

func TestExecRunner(t *testing.T) {
	cmder := &recordingCommander{}
	r := &ExecRunner{Commander: cmder}

	step := Step{ID: "pool", Commands: []Command{
		{"zpool", "create", "tank"},
		{"zfs", "create", "tank/ROOT"},
	}}
	require.NoError(t, r.RunStep(step))
	assert.Equal(t, []string{"zpool create tank", "zfs create tank/ROOT"}, cmder.lines)
}

func TestExecRunner_FailureStopsStep(t *testing.T) {
	cmder := &recordingCommander{fail: "zpool"}
	r := &ExecRunner{Commander: cmder}

	step := Step{ID: "pool", Commands: []Command{
		{"zpool", "create", "tank"},
		{"zfs", "create", "tank/ROOT"},
	}}
	err := r.RunStep(step)
	require.Error(t, err)
	assert.Len(t, cmder.lines, 1, "commands after the failure must not run")
}
