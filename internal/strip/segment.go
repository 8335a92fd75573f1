package strip

import "github.com/charmbracelet/lipgloss"

// clickReporter receives click reports from segments.
type clickReporter interface {
	didReceiveClick(index int)
}

// Segment is one selectable unit of a strip. Its geometry is written by the
// owning Strip; its appearance setters only affect the segment itself.
type Segment struct {
	index    int
	label    string
	selected bool

	// width constraint and left edge, written by the strip
	width float64
	x     float64

	font           Font
	textColor      lipgloss.TerminalColor
	highlightColor lipgloss.TerminalColor

	view     SegmentView
	reporter clickReporter
}

func newSegment(index int, label string, reporter clickReporter) *Segment {
	return &Segment{
		index:          index,
		label:          label,
		textColor:      DefaultTextColor,
		highlightColor: DefaultHighlightColor,
		reporter:       reporter,
	}
}

// Index returns the segment's position in the strip.
func (s *Segment) Index() int { return s.index }

// Label returns the display text.
func (s *Segment) Label() string { return s.label }

// IsSelected reports the visual selected state.
func (s *Segment) IsSelected() bool { return s.selected }

// Width returns the width constraint assigned by the strip.
func (s *Segment) Width() float64 { return s.width }

// X returns the left edge relative to the strip origin.
func (s *Segment) X() float64 { return s.x }

// Font returns the label font.
func (s *Segment) Font() Font { return s.font }

// TextColor returns the unselected label color.
func (s *Segment) TextColor() lipgloss.TerminalColor { return s.textColor }

// HighlightColor returns the selected label color.
func (s *Segment) HighlightColor() lipgloss.TerminalColor { return s.highlightColor }

// CurrentColor returns the color the label is drawn with right now.
func (s *Segment) CurrentColor() lipgloss.TerminalColor {
	if s.selected {
		return s.highlightColor
	}
	return s.textColor
}

// SetSelected sets the highlighted state. It does not touch sibling segments
// and never notifies a delegate.
func (s *Segment) SetSelected(selected bool) {
	if s.selected == selected {
		return
	}
	s.selected = selected
	if s.view != nil {
		s.view.SetSelected(selected)
	}
}

// SetText replaces the label.
func (s *Segment) SetText(text string) {
	s.label = text
	if s.view != nil {
		s.view.SetText(text)
	}
}

// SetFont replaces the label font. A nil font is ignored.
func (s *Segment) SetFont(font *Font) {
	if font == nil {
		return
	}
	s.font = *font
	if s.view != nil {
		s.view.SetFont(*font)
	}
}

// SetColors replaces the label colors. A nil color keeps its previous value.
func (s *Segment) SetColors(text, highlight lipgloss.TerminalColor) {
	if text == nil && highlight == nil {
		return
	}
	if text != nil {
		s.textColor = text
	}
	if highlight != nil {
		s.highlightColor = highlight
	}
	if s.view != nil {
		s.view.SetColors(s.textColor, s.highlightColor)
	}
}

// Attach binds a rendering surface and pushes the full current state into it.
func (s *Segment) Attach(view SegmentView) {
	s.view = view
	if view == nil {
		return
	}
	view.SetText(s.label)
	view.SetFont(s.font)
	view.SetColors(s.textColor, s.highlightColor)
	view.SetSelected(s.selected)
	view.SetFrame(s.x, s.width)
}

// View returns the attached rendering surface, if any.
func (s *Segment) View() SegmentView { return s.view }

// Click reports a raw click on this segment to the owning strip, which
// decides whether it is a selection tap or the end of a drag. Clicks on
// segments discarded by a reconfiguration are dropped.
func (s *Segment) Click() {
	if s.reporter == nil {
		return
	}
	s.reporter.didReceiveClick(s.index)
}

func (s *Segment) setFrame(x, width float64) {
	if s.x == x && s.width == width {
		return
	}
	s.x = x
	s.width = width
	if s.view != nil {
		s.view.SetFrame(x, width)
	}
}

func (s *Segment) detach() {
	s.reporter = nil
}

func (s *Segment) state() SegmentState {
	return SegmentState{
		Index:    s.index,
		Label:    s.label,
		X:        s.x,
		Width:    s.width,
		Selected: s.selected,
	}
}
