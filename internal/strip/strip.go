package strip

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/segstrip/internal/logging"
)

// Strip is the controller of a paginated segment strip.
type Strip struct {
	segments   []*Segment
	generation int

	frame        Rect
	displayCount int
	selected     int
	offset       float64

	font           Font
	textColor      lipgloss.TerminalColor
	highlightColor lipgloss.TerminalColor

	clickThreshold float64
	tieBreak       TieBreak

	phase   Phase
	gesture gestureState

	animate bool
	settle  settleState

	delegate    Delegate
	viewFactory func(index int) SegmentView
}

// New returns an empty strip with default appearance and gesture tuning.
func New(opts ...Option) *Strip {
	s := &Strip{
		displayCount:   DefaultDisplayCount,
		selected:       NoSegment,
		textColor:      DefaultTextColor,
		highlightColor: DefaultHighlightColor,
		clickThreshold: DefaultClickThreshold,
		tieBreak:       TieBreakVelocity,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewWithItems returns a strip laid out in frame with one segment per item.
func NewWithItems(frame Rect, items []string, opts ...Option) *Strip {
	s := New(append(opts, WithFrame(frame))...)
	s.Configure(items)
	return s
}

// Configure discards all segments and builds new ones from items. Scroll
// offset resets to zero and the first segment becomes selected. Any gesture
// or settle animation in progress is cancelled. The delegate is not notified.
func (s *Strip) Configure(items []string) {
	s.cancelGesture()
	s.stopSettling()

	for _, seg := range s.segments {
		seg.detach()
	}
	s.generation++

	s.segments = make([]*Segment, len(items))
	for i, label := range items {
		seg := newSegment(i, label, s)
		seg.font = s.font
		seg.textColor = s.textColor
		seg.highlightColor = s.highlightColor
		s.segments[i] = seg
	}

	s.offset = 0
	s.selected = NoSegment
	if len(s.segments) > 0 {
		s.selected = 0
		s.segments[0].selected = true
	}
	s.layout()

	if s.viewFactory != nil {
		for i, seg := range s.segments {
			if v := s.viewFactory(i); v != nil {
				seg.Attach(v)
			}
		}
	}

	logging.LogLayout(len(s.segments), s.EffectiveDisplayCount(), s.SegmentWidth(), s.offset)
}

// SelectSegment selects the segment at index without notifying the delegate.
// Out-of-range indices are ignored. A running settle animation is committed
// to its target first.
func (s *Strip) SelectSegment(index int, opts ...SelectOption) {
	if !s.validIndex(index) {
		logging.LogIgnored("selection", zap.Int("index", index), zap.Int("segments", len(s.segments)))
		return
	}
	var o selectOptions
	for _, opt := range opts {
		opt(&o)
	}

	s.finishSettling()
	s.applySelection(index)

	if o.scrollToVisible {
		s.setOffset(s.offsetRevealing(index))
		if s.phase == PhaseTracking {
			s.gesture.anchor = s.offset + (s.gesture.lastX - s.gesture.startX)
		}
	}
	logging.LogSelection(index, "programmatic")
}

// SetFrame moves or resizes the strip. The scroll offset keeps its position
// measured in segments and is re-clamped.
func (s *Strip) SetFrame(frame Rect) {
	if frame == s.frame {
		return
	}
	oldWidth := s.SegmentWidth()
	s.frame = frame
	s.rescale(oldWidth)
}

// SetDisplayCount changes how many segments are visible at once. Values below
// one are ignored. Counts larger than the number of segments behave as the
// number of segments.
func (s *Strip) SetDisplayCount(n int) {
	if n < 1 || n == s.displayCount {
		return
	}
	oldWidth := s.SegmentWidth()
	s.displayCount = n
	s.rescale(oldWidth)
}

// SetTextColor sets the unselected label color. Nil is ignored.
func (s *Strip) SetTextColor(c lipgloss.TerminalColor) {
	if c == nil {
		return
	}
	s.textColor = c
	for _, seg := range s.segments {
		seg.SetColors(c, nil)
	}
}

// SetHighlightTextColor sets the selected label color. Nil is ignored.
func (s *Strip) SetHighlightTextColor(c lipgloss.TerminalColor) {
	if c == nil {
		return
	}
	s.highlightColor = c
	for _, seg := range s.segments {
		seg.SetColors(nil, c)
	}
}

// SetFont sets the label font of every segment. Nil is ignored.
func (s *Strip) SetFont(font *Font) {
	if font == nil {
		return
	}
	s.font = *font
	for _, seg := range s.segments {
		seg.SetFont(font)
	}
}

// SetDelegate replaces the delegate. Nil removes it.
func (s *Strip) SetDelegate(d Delegate) {
	s.delegate = d
}

// NumberOfSegments returns the segment count.
func (s *Strip) NumberOfSegments() int { return len(s.segments) }

// SelectedSegmentIndex returns the selected index, or NoSegment when empty.
func (s *Strip) SelectedSegmentIndex() int { return s.selected }

// ScrollOffset returns the current scroll offset.
func (s *Strip) ScrollOffset() float64 { return s.offset }

// Frame returns the strip frame.
func (s *Strip) Frame() Rect { return s.frame }

// DisplayCount returns the configured display count.
func (s *Strip) DisplayCount() int { return s.displayCount }

// Font returns the strip label font.
func (s *Strip) Font() Font { return s.font }

// Phase returns the gesture machine state.
func (s *Strip) Phase() Phase { return s.phase }

// Generation increments on every Configure. Indices obtained in an earlier
// generation no longer refer to the same segments.
func (s *Strip) Generation() int { return s.generation }

// EffectiveDisplayCount returns the display count clamped to the segment count.
func (s *Strip) EffectiveDisplayCount() int {
	n := s.displayCount
	if c := len(s.segments); n > c {
		n = c
	}
	if n < 1 {
		n = 1
	}
	return n
}

// SegmentWidth returns the width shared by all segments.
func (s *Strip) SegmentWidth() float64 {
	if len(s.segments) == 0 || s.frame.Width <= 0 {
		return 0
	}
	return s.frame.Width / float64(s.EffectiveDisplayCount())
}

// MaxOffset returns the largest valid scroll offset.
func (s *Strip) MaxOffset() float64 {
	hidden := len(s.segments) - s.EffectiveDisplayCount()
	if hidden <= 0 {
		return 0
	}
	return float64(hidden) * s.SegmentWidth()
}

// Segment returns the segment at index, or nil when out of range.
func (s *Strip) Segment(index int) *Segment {
	if !s.validIndex(index) {
		return nil
	}
	return s.segments[index]
}

// Segments returns a snapshot of every segment in index order.
func (s *Strip) Segments() []SegmentState {
	states := make([]SegmentState, len(s.segments))
	for i, seg := range s.segments {
		states[i] = seg.state()
	}
	return states
}

// VisibleRange returns the first and last index at least partly visible.
// Both are NoSegment for an empty strip.
func (s *Strip) VisibleRange() (first, last int) {
	w := s.SegmentWidth()
	if w <= 0 {
		return NoSegment, NoSegment
	}
	first = int(math.Floor(s.offset/w + snapEpsilon))
	last = int(math.Ceil((s.offset+s.frame.Width)/w-snapEpsilon)) - 1
	if first < 0 {
		first = 0
	}
	if last > len(s.segments)-1 {
		last = len(s.segments) - 1
	}
	return first, last
}

// SegmentAt returns the index of the segment under the host point (x, y), or
// NoSegment.
func (s *Strip) SegmentAt(x, y float64) int {
	w := s.SegmentWidth()
	if w <= 0 || !s.frame.Contains(x, y) {
		return NoSegment
	}
	i := int(math.Floor((x - s.frame.X + s.offset) / w))
	if !s.validIndex(i) {
		return NoSegment
	}
	return i
}

func (s *Strip) validIndex(index int) bool {
	return index >= 0 && index < len(s.segments)
}

func (s *Strip) applySelection(index int) {
	if s.selected != NoSegment && s.selected != index && s.validIndex(s.selected) {
		s.segments[s.selected].SetSelected(false)
	}
	s.segments[index].SetSelected(true)
	s.selected = index
}

// commitUserSelection applies a click-confirmed selection and notifies the
// delegate once everything else is committed.
func (s *Strip) commitUserSelection(index int) {
	if !s.validIndex(index) {
		return
	}
	s.applySelection(index)
	logging.LogSelection(index, "user")
	if s.delegate != nil {
		s.delegate.OnSegmentSelected(index)
	}
}

// didReceiveClick resolves a click reported by a segment.
func (s *Strip) didReceiveClick(index int) {
	if !s.validIndex(index) {
		return
	}
	switch {
	case s.phase == PhaseTracking:
		// resolved on release, once the gesture is classified
		s.gesture.pendingClick = index
	default:
		s.commitUserSelection(index)
	}
}

// offsetRevealing returns the smallest move of the current offset that shows
// all of segment index.
func (s *Strip) offsetRevealing(index int) float64 {
	w := s.SegmentWidth()
	left := float64(index) * w
	right := left + w
	viewport := w * float64(s.EffectiveDisplayCount())

	target := s.offset
	switch {
	case left < target:
		target = left
	case right > target+viewport:
		target = right - viewport
	}
	return clamp(target, 0, s.MaxOffset())
}

func (s *Strip) setOffset(offset float64) {
	s.offset = clamp(offset, 0, s.MaxOffset())
	s.layout()
}

// rescale re-lays out after a segment width change, keeping the offset and
// any in-flight targets at the same position measured in segments.
func (s *Strip) rescale(oldWidth float64) {
	newWidth := s.SegmentWidth()
	if oldWidth > 0 && newWidth > 0 {
		ratio := newWidth / oldWidth
		s.offset *= ratio
		s.settle.target = clamp(s.settle.target*ratio, 0, s.MaxOffset())
		s.gesture.anchor *= ratio
	}
	s.setOffset(s.offset)
	logging.LogLayout(len(s.segments), s.EffectiveDisplayCount(), newWidth, s.offset)
}

func (s *Strip) layout() {
	w := s.SegmentWidth()
	for i, seg := range s.segments {
		seg.setFrame(float64(i)*w-s.offset, w)
	}
}
