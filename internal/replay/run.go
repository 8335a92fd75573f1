package replay

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/segstrip/internal/logging"
	"github.com/muurk/segstrip/internal/strip"
)

// maxSettleFrames bounds a "frames: 0" step.
const maxSettleFrames = 1000

const offsetTolerance = 1e-6

// StepReport is the strip state after one step.
type StepReport struct {
	Step     int
	Action   string
	Offset   float64
	Selected int
	Phase    strip.Phase
	First    int
	Last     int
	Notified []int // delegate notifications raised by this step
}

// Report is the outcome of a replay.
type Report struct {
	Name  string
	Steps []StepReport
	Final []strip.SegmentState
}

// Notifications returns every delegate notification in order.
func (r *Report) Notifications() []int {
	var all []int
	for _, st := range r.Steps {
		all = append(all, st.Notified...)
	}
	return all
}

type recorder struct {
	pending []int
}

func (r *recorder) OnSegmentSelected(index int) {
	r.pending = append(r.pending, index)
}

func (r *recorder) drain() []int {
	got := r.pending
	r.pending = nil
	return got
}

// Runner replays a script one step at a time.
type Runner struct {
	script *Script
	strip  *strip.Strip
	rec    *recorder
	start  time.Time
	next   int
}

// NewRunner builds the strip described by the script header. The script
// must be valid.
func NewRunner(script *Script) *Runner {
	rec := &recorder{}
	tb, _ := strip.ParseTieBreak(script.TieBreak)

	opts := []strip.Option{
		strip.WithDelegate(rec),
		strip.WithTieBreak(tb),
		strip.WithAnimation(script.Animate),
	}
	if script.Display > 0 {
		opts = append(opts, strip.WithDisplayCount(script.Display))
	}
	if script.ClickThreshold > 0 {
		opts = append(opts, strip.WithClickThreshold(script.ClickThreshold))
	}

	return &Runner{
		script: script,
		strip:  strip.NewWithItems(strip.Rect{Width: script.Width}, script.Items, opts...),
		rec:    rec,
		start:  time.Unix(0, 0).UTC(),
	}
}

// Strip returns the strip being driven.
func (r *Runner) Strip() *strip.Strip {
	return r.strip
}

// Done reports whether every step has run.
func (r *Runner) Done() bool {
	return r.next >= len(r.script.Steps)
}

// Next runs the next step. The report is valid even when the step's
// expectation fails; it has no Action when the step could not run.
func (r *Runner) Next() (StepReport, error) {
	if r.Done() {
		return StepReport{}, fmt.Errorf("%w: no steps left", ErrInvalidScript)
	}
	i := r.next
	r.next++
	st := &r.script.Steps[i]

	action, err := st.action()
	if err != nil {
		return StepReport{Step: i}, &StepError{Step: i, Action: "?", Err: err}
	}
	if err := r.apply(st); err != nil {
		return StepReport{Step: i}, &StepError{Step: i, Action: action, Err: err}
	}

	report := r.snapshot(i, action)
	logging.Debug("replay step",
		zap.Int("step", i+1),
		zap.String("action", action),
		zap.Float64("offset", report.Offset),
		zap.Int("selected", report.Selected),
		zap.Ints("notified", report.Notified),
	)

	if st.Expect != nil {
		if err := check(st.Expect, report); err != nil {
			return report, &StepError{Step: i, Action: action, Err: err}
		}
	}
	return report, nil
}

func (r *Runner) apply(st *Step) error {
	s := r.strip
	switch {
	case st.Pan != "":
		phase, _ := parsePanPhase(st.Pan)
		ev := strip.PanEvent{Phase: phase, X: st.X, Y: st.Y}
		if st.T != nil {
			ev.Time = r.start.Add(time.Duration(*st.T) * time.Millisecond)
		}
		s.HandlePan(ev)

	case st.Select != nil:
		var opts []strip.SelectOption
		if st.Reveal {
			opts = append(opts, strip.WithScrollToVisible())
		}
		s.SelectSegment(*st.Select, opts...)

	case st.Click != nil:
		seg := s.Segment(*st.Click)
		if seg == nil {
			return fmt.Errorf("%w: no segment %d to click", ErrInvalidScript, *st.Click)
		}
		seg.Click()

	case st.ScrollBy != nil:
		s.ScrollBy(*st.ScrollBy)

	case st.SetDisplay != nil:
		s.SetDisplayCount(*st.SetDisplay)

	case st.SetWidth != nil:
		frame := s.Frame()
		frame.Width = *st.SetWidth
		s.SetFrame(frame)

	case st.Configure != nil:
		s.Configure(st.Configure)

	case st.Frames != nil:
		n := *st.Frames
		if n <= 0 {
			n = maxSettleFrames
		}
		for f := 0; f < n; f++ {
			if !s.Step() {
				break
			}
		}
	}
	return nil
}

func (r *Runner) snapshot(i int, action string) StepReport {
	first, last := r.strip.VisibleRange()
	return StepReport{
		Step:     i,
		Action:   action,
		Offset:   r.strip.ScrollOffset(),
		Selected: r.strip.SelectedSegmentIndex(),
		Phase:    r.strip.Phase(),
		First:    first,
		Last:     last,
		Notified: r.rec.drain(),
	}
}

func check(want *Expect, got StepReport) error {
	var problems []string
	if want.Offset != nil && math.Abs(*want.Offset-got.Offset) > offsetTolerance {
		problems = append(problems, fmt.Sprintf("offset = %.2f, want %.2f", got.Offset, *want.Offset))
	}
	if want.Selected != nil && *want.Selected != got.Selected {
		problems = append(problems, fmt.Sprintf("selected = %d, want %d", got.Selected, *want.Selected))
	}
	if want.Phase != "" && want.Phase != got.Phase.String() {
		problems = append(problems, fmt.Sprintf("phase = %s, want %s", got.Phase, want.Phase))
	}
	if want.Notified != nil && !slices.Equal(want.Notified, got.Notified) {
		problems = append(problems, fmt.Sprintf("notified = %v, want %v", got.Notified, want.Notified))
	}
	if len(want.Visible) == 2 && (want.Visible[0] != got.First || want.Visible[1] != got.Last) {
		problems = append(problems, fmt.Sprintf("visible = %d-%d, want %d-%d", got.First, got.Last, want.Visible[0], want.Visible[1]))
	}
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrExpectation, strings.Join(problems, "; "))
}

// Run replays every step of script. On failure the report holds the steps
// completed so far, including the failing one when it ran.
func Run(script *Script) (*Report, error) {
	if err := script.Validate(); err != nil {
		return nil, err
	}
	runner := NewRunner(script)
	report := &Report{Name: script.Name}

	for !runner.Done() {
		step, err := runner.Next()
		if step.Action != "" {
			report.Steps = append(report.Steps, step)
		}
		if err != nil {
			report.Final = runner.strip.Segments()
			return report, err
		}
	}
	report.Final = runner.strip.Segments()
	return report, nil
}
