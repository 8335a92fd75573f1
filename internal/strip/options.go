package strip

import "github.com/charmbracelet/lipgloss"

// Option configures a Strip at construction time.
type Option func(*Strip)

// WithFrame sets the initial frame.
func WithFrame(frame Rect) Option {
	return func(s *Strip) { s.frame = frame }
}

// WithDisplayCount sets how many segments are visible at once. Values below
// one are ignored.
func WithDisplayCount(n int) Option {
	return func(s *Strip) {
		if n >= 1 {
			s.displayCount = n
		}
	}
}

// WithClickThreshold sets the displacement below which a gesture counts as a
// tap. Non-positive values are ignored.
func WithClickThreshold(threshold float64) Option {
	return func(s *Strip) {
		if threshold > 0 {
			s.clickThreshold = threshold
		}
	}
}

// WithTieBreak sets how exact half-segment offsets are snapped.
func WithTieBreak(tb TieBreak) Option {
	return func(s *Strip) { s.tieBreak = tb }
}

// WithAnimation enables spring-animated settling. When disabled the snap is
// committed immediately on release.
func WithAnimation(enabled bool) Option {
	return func(s *Strip) { s.animate = enabled }
}

// WithDelegate sets the selection delegate.
func WithDelegate(d Delegate) Option {
	return func(s *Strip) { s.delegate = d }
}

// WithViewFactory sets the function that creates a rendering surface for
// every segment built by Configure.
func WithViewFactory(f func(index int) SegmentView) Option {
	return func(s *Strip) { s.viewFactory = f }
}

// WithFont sets the label font.
func WithFont(font Font) Option {
	return func(s *Strip) { s.font = font }
}

// WithColors sets the label colors. Nil colors keep the defaults.
func WithColors(text, highlight lipgloss.TerminalColor) Option {
	return func(s *Strip) {
		if text != nil {
			s.textColor = text
		}
		if highlight != nil {
			s.highlightColor = highlight
		}
	}
}

type selectOptions struct {
	scrollToVisible bool
}

// SelectOption modifies a SelectSegment call.
type SelectOption func(*selectOptions)

// WithScrollToVisible scrolls the minimal distance needed to show the whole
// selected segment.
func WithScrollToVisible() SelectOption {
	return func(o *selectOptions) { o.scrollToVisible = true }
}
