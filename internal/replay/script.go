package replay

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/muurk/segstrip/internal/strip"
)

var (
	// ErrInvalidScript is wrapped by every script validation failure.
	ErrInvalidScript = errors.New("invalid script")
	// ErrExpectation is wrapped when a step's expectation does not hold.
	ErrExpectation = errors.New("expectation failed")
)

// Script is a replayable gesture session.
type Script struct {
	Name           string   `yaml:"name,omitempty"`
	Items          []string `yaml:"items"`
	Width          float64  `yaml:"width"`
	Display        int      `yaml:"display,omitempty"`
	ClickThreshold float64  `yaml:"click_threshold,omitempty"`
	TieBreak       string   `yaml:"tie_break,omitempty"`
	Animate        bool     `yaml:"animate,omitempty"`
	Steps          []Step   `yaml:"steps"`
}

// Step is one action and an optional expectation about the result.
type Step struct {
	// pan sample: began, changed, ended or cancelled
	Pan string  `yaml:"pan,omitempty"`
	X   float64 `yaml:"x,omitempty"`
	Y   float64 `yaml:"y,omitempty"`
	T   *int    `yaml:"t,omitempty"`

	// programmatic selection, optionally scrolled into view
	Select *int `yaml:"select,omitempty"`
	Reveal bool `yaml:"reveal,omitempty"`

	// raw click reported by a segment
	Click *int `yaml:"click,omitempty"`

	ScrollBy   *int     `yaml:"scroll_by,omitempty"`
	SetDisplay *int     `yaml:"set_display,omitempty"`
	SetWidth   *float64 `yaml:"set_width,omitempty"`
	Configure  []string `yaml:"configure,omitempty"`

	// settle animation frames; 0 runs until the strip is idle
	Frames *int `yaml:"frames,omitempty"`

	Expect *Expect `yaml:"expect,omitempty"`
}

// Expect lists the strip state a step must leave behind. Unset fields are
// not checked.
type Expect struct {
	Offset   *float64 `yaml:"offset,omitempty"`
	Selected *int     `yaml:"selected,omitempty"`
	Phase    string   `yaml:"phase,omitempty"`
	Notified []int    `yaml:"notified,omitempty"`
	Visible  []int    `yaml:"visible,omitempty"` // first and last visible index
}

// StepError reports the step at which a script failed.
type StepError struct {
	Step   int // zero based
	Action string
	Err    error
}

// Error implements the error interface
func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Step+1, e.Action, e.Err)
}

// Unwrap returns the underlying error
func (e *StepError) Unwrap() error {
	return e.Err
}

// Load reads and validates a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	script, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return script, nil
}

// Parse decodes and validates a script. Unknown fields are rejected.
func Parse(data []byte) (*Script, error) {
	var script Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&script); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}
	if err := script.Validate(); err != nil {
		return nil, err
	}
	return &script, nil
}

// Validate checks the script header and that every step has exactly one
// action.
func (s *Script) Validate() error {
	if s.Width <= 0 {
		return fmt.Errorf("%w: width must be positive", ErrInvalidScript)
	}
	if s.Display < 0 {
		return fmt.Errorf("%w: display must not be negative", ErrInvalidScript)
	}
	if s.ClickThreshold < 0 {
		return fmt.Errorf("%w: click_threshold must not be negative", ErrInvalidScript)
	}
	if _, ok := strip.ParseTieBreak(s.TieBreak); !ok {
		return fmt.Errorf("%w: unknown tie_break %q", ErrInvalidScript, s.TieBreak)
	}
	for i := range s.Steps {
		action, err := s.Steps[i].action()
		if err != nil {
			return &StepError{Step: i, Action: "?", Err: err}
		}
		if exp := s.Steps[i].Expect; exp != nil && len(exp.Visible) != 0 && len(exp.Visible) != 2 {
			return &StepError{Step: i, Action: action, Err: fmt.Errorf("%w: expect.visible needs [first, last]", ErrInvalidScript)}
		}
	}
	return nil
}

// action names the single action of a step.
func (st *Step) action() (string, error) {
	var names []string
	if st.Pan != "" {
		if _, ok := parsePanPhase(st.Pan); !ok {
			return "", fmt.Errorf("%w: unknown pan phase %q", ErrInvalidScript, st.Pan)
		}
		names = append(names, "pan "+st.Pan)
	}
	if st.Select != nil {
		names = append(names, "select")
	}
	if st.Click != nil {
		names = append(names, "click")
	}
	if st.ScrollBy != nil {
		names = append(names, "scroll_by")
	}
	if st.SetDisplay != nil {
		names = append(names, "set_display")
	}
	if st.SetWidth != nil {
		names = append(names, "set_width")
	}
	if st.Configure != nil {
		names = append(names, "configure")
	}
	if st.Frames != nil {
		names = append(names, "frames")
	}

	switch len(names) {
	case 0:
		return "", fmt.Errorf("%w: step has no action", ErrInvalidScript)
	case 1:
		return names[0], nil
	default:
		return "", fmt.Errorf("%w: step has several actions %v", ErrInvalidScript, names)
	}
}

func parsePanPhase(name string) (strip.PanPhase, bool) {
	switch name {
	case "began", "begin":
		return strip.PanBegan, true
	case "changed", "move":
		return strip.PanChanged, true
	case "ended", "end":
		return strip.PanEnded, true
	case "cancelled", "cancel":
		return strip.PanCancelled, true
	default:
		return 0, false
	}
}
