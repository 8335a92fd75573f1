package strip

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// NoSegment is the selected index of an empty strip and the result of a
// hit test that misses every segment.
const NoSegment = -1

// Defaults applied by New.
const (
	DefaultDisplayCount   = 3
	DefaultClickThreshold = 2.0
)

// Default segment label colors.
var (
	DefaultTextColor      lipgloss.TerminalColor = lipgloss.Color("#FFFFFF")
	DefaultHighlightColor lipgloss.TerminalColor = lipgloss.Color("#7D56F4")
)

// Rect is the strip frame in host coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether the point lies inside the rectangle. A zero
// height disables the vertical check.
func (r Rect) Contains(x, y float64) bool {
	if x < r.X || x >= r.X+r.Width {
		return false
	}
	if r.Height > 0 && (y < r.Y || y >= r.Y+r.Height) {
		return false
	}
	return true
}

// Font describes label typography for terminal surfaces.
type Font struct {
	Bold      bool `yaml:"bold"`
	Italic    bool `yaml:"italic"`
	Underline bool `yaml:"underline"`
	Faint     bool `yaml:"faint"`
}

// SegmentView is the passive rendering surface behind a segment. The strip
// pushes state into it; it never calls back into the strip. Input for the
// segment is reported by the host through Segment.Click or Strip.HandlePan.
type SegmentView interface {
	SetText(text string)
	SetFont(font Font)
	SetColors(text, highlight lipgloss.TerminalColor)
	SetSelected(selected bool)
	SetFrame(x, width float64)
}

// Delegate receives user-driven selection changes.
type Delegate interface {
	OnSegmentSelected(index int)
}

// DelegateFunc adapts a function to the Delegate interface.
type DelegateFunc func(index int)

// OnSegmentSelected calls f(index).
func (f DelegateFunc) OnSegmentSelected(index int) {
	f(index)
}

// Phase is the state of the pan gesture machine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseTracking
	PhaseSettling
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseTracking:
		return "tracking"
	case PhaseSettling:
		return "settling"
	default:
		return "unknown"
	}
}

// PanPhase identifies the kind of pan sample.
type PanPhase int

const (
	PanBegan PanPhase = iota
	PanChanged
	PanEnded
	PanCancelled
)

// String returns the pan phase name.
func (p PanPhase) String() string {
	switch p {
	case PanBegan:
		return "began"
	case PanChanged:
		return "changed"
	case PanEnded:
		return "ended"
	case PanCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// PanEvent is one pan gesture sample in host coordinates. Time is optional;
// when set on consecutive samples it is used to estimate release velocity.
type PanEvent struct {
	Phase PanPhase
	X, Y  float64
	Time  time.Time
}

// SegmentState is a read-only snapshot of one segment.
type SegmentState struct {
	Index    int
	Label    string
	X        float64
	Width    float64
	Selected bool
}
