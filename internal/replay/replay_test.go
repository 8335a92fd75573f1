package replay

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/segstrip/internal/strip"
)

const dragThenTap = `
name: drag then tap
items: [Inbox, Drafts, Sent, Archive, Spam]
width: 90
steps:
  - pan: began
    x: 70
    t: 0
  - pan: changed
    x: 40
    t: 16
    expect: {offset: 30, phase: tracking}
  - pan: ended
    x: 40
    t: 32
    expect: {offset: 30, selected: 0, phase: idle, notified: []}
  - click: 3
    expect: {selected: 3, notified: [3]}
  - click: 3
    expect: {selected: 3, notified: [3]}
  - pan: began
    x: 10
  - pan: ended
    x: 10
    expect: {selected: 1, notified: [1], visible: [1, 3]}
`

func TestRunDragThenTap(t *testing.T) {
	script, err := Parse([]byte(dragThenTap))
	require.NoError(t, err)

	report, err := Run(script)
	require.NoError(t, err)

	assert.Equal(t, "drag then tap", report.Name)
	require.Len(t, report.Steps, 7)
	assert.Equal(t, "pan began", report.Steps[0].Action)
	assert.Equal(t, "click", report.Steps[3].Action)
	assert.Equal(t, []int{3, 3, 1}, report.Notifications())

	require.Len(t, report.Final, 5)
	assert.True(t, report.Final[1].Selected)
	assert.InDelta(t, -30.0, report.Final[0].X, 1e-9)
}

func TestRunTieBreak(t *testing.T) {
	tests := []struct {
		tieBreak string
		want     float64
	}{
		{"", 30},
		{"velocity", 30},
		{"down", 30},
		{"up", 60},
	}

	for _, tt := range tests {
		t.Run("tie_break="+tt.tieBreak, func(t *testing.T) {
			script := &Script{
				Items:    []string{"A", "B", "C", "D", "E"},
				Width:    90,
				TieBreak: tt.tieBreak,
				Steps: []Step{
					{Pan: "began", X: 60},
					{Pan: "changed", X: 15},
					{Pan: "cancelled", X: 15},
				},
			}
			report, err := Run(script)
			require.NoError(t, err)
			assert.InDelta(t, 45.0, report.Steps[1].Offset, 1e-9)
			assert.InDelta(t, tt.want, report.Steps[2].Offset, 1e-9)
			assert.Empty(t, report.Notifications())
		})
	}
}

func TestRunProgrammaticAndResize(t *testing.T) {
	src := `
items: [A, B, C, D, E]
width: 90
steps:
  - select: 4
    reveal: true
    expect: {offset: 60, selected: 4, visible: [2, 4], notified: []}
  - scroll_by: -1
    expect: {offset: 30}
  - set_width: 180
    expect: {offset: 60, visible: [1, 3]}
  - set_display: 5
    expect: {offset: 0, visible: [0, 4]}
  - configure: [X, Y]
    expect: {offset: 0, selected: 0, visible: [0, 1]}
  - select: 7
    expect: {selected: 0}
`
	script, err := Parse([]byte(src))
	require.NoError(t, err)

	_, err = Run(script)
	require.NoError(t, err)
}

func TestRunAnimatedSettle(t *testing.T) {
	src := `
items: [A, B, C, D, E]
width: 90
animate: true
steps:
  - scroll_by: 1
    expect: {offset: 0, phase: settling}
  - frames: 3
    expect: {phase: settling}
  - frames: 0
    expect: {offset: 30, phase: idle}
`
	script, err := Parse([]byte(src))
	require.NoError(t, err)

	report, err := Run(script)
	require.NoError(t, err)

	moving := report.Steps[1].Offset
	assert.Greater(t, moving, 0.0)
	assert.Less(t, moving, 30.0)
}

func TestRunExpectationFailure(t *testing.T) {
	src := `
items: [A, B, C, D]
width: 90
steps:
  - scroll_by: 1
  - scroll_by: 1
    expect: {offset: 60, selected: 2}
  - scroll_by: 1
`
	script, err := Parse([]byte(src))
	require.NoError(t, err)

	report, err := Run(script)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExpectation)

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, 1, stepErr.Step)
	assert.Equal(t, "scroll_by", stepErr.Action)
	assert.Contains(t, err.Error(), "step 2 (scroll_by)")
	assert.Contains(t, err.Error(), "offset = 30.00, want 60.00")
	assert.Contains(t, err.Error(), "selected = 0, want 2")

	require.NotNil(t, report)
	assert.Len(t, report.Steps, 2, "failing step is reported, later steps do not run")
}

func TestRunClickMissingSegment(t *testing.T) {
	seven := 7
	script := &Script{
		Items: []string{"A", "B"},
		Width: 40,
		Steps: []Step{{Click: &seven}},
	}

	report, err := Run(script)
	assert.ErrorIs(t, err, ErrInvalidScript)
	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, "click", stepErr.Action)
	assert.Empty(t, report.Steps)
}

func TestParseRejectsInvalidScripts(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", ``},
		{"no width", "items: [A]\nsteps: []\n"},
		{"unknown field", "width: 10\nbogus: 1\n"},
		{"unknown tie break", "width: 10\ntie_break: sideways\n"},
		{"negative display", "width: 10\ndisplay: -1\n"},
		{"step without action", "width: 10\nsteps:\n  - x: 3\n"},
		{"step with two actions", "width: 10\nsteps:\n  - click: 1\n    scroll_by: 1\n"},
		{"unknown pan phase", "width: 10\nsteps:\n  - pan: wiggle\n"},
		{"bad visible", "width: 10\nsteps:\n  - scroll_by: 1\n    expect: {visible: [1]}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidScript), "error %v should wrap ErrInvalidScript", err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(dragThenTap), 0o600))

	script, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, script.Steps, 7)
	assert.Equal(t, []string{"Inbox", "Drafts", "Sent", "Archive", "Spam"}, script.Items)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestRunnerStepwise(t *testing.T) {
	script, err := Parse([]byte(dragThenTap))
	require.NoError(t, err)

	runner := NewRunner(script)
	assert.Equal(t, 5, runner.Strip().NumberOfSegments())

	n := 0
	for !runner.Done() {
		_, err := runner.Next()
		require.NoError(t, err)
		n++
	}
	assert.Equal(t, 7, n)
	assert.Equal(t, strip.PhaseIdle, runner.Strip().Phase())

	_, err = runner.Next()
	assert.ErrorIs(t, err, ErrInvalidScript)
}

func TestExampleScript(t *testing.T) {
	script, err := Load(filepath.Join("..", "..", "examples", "drag-and-tap.yaml"))
	require.NoError(t, err)

	report, err := Run(script)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, report.Notifications())
}
