package strip

import (
	"math"
	"time"

	"github.com/muurk/segstrip/internal/logging"
)

// gestureState is the in-flight data of one pan gesture.
type gestureState struct {
	startX, startY float64
	lastX          float64
	lastTime       time.Time
	anchor         float64

	// largest distance from the start seen during the gesture
	maxDisplacement float64

	velocity    float64
	hasVelocity bool

	pendingClick int
}

// HandlePan feeds one pan sample into the gesture machine. Samples are
// ignored while the strip has no segments.
func (s *Strip) HandlePan(ev PanEvent) {
	if len(s.segments) == 0 {
		return
	}
	switch ev.Phase {
	case PanBegan:
		s.beginPan(ev)
	case PanChanged:
		s.trackPan(ev)
	case PanEnded:
		s.endPan(ev, true)
	case PanCancelled:
		s.endPan(ev, false)
	}
}

// ClickThreshold returns the tap/drag displacement threshold.
func (s *Strip) ClickThreshold() float64 { return s.clickThreshold }

// TieBreak returns the snap tie-break policy.
func (s *Strip) TieBreak() TieBreak { return s.tieBreak }

func (s *Strip) beginPan(ev PanEvent) {
	// Catching a settling strip takes over from wherever the animation is.
	s.stopSettling()
	s.phase = PhaseTracking
	s.gesture = gestureState{
		startX:       ev.X,
		startY:       ev.Y,
		lastX:        ev.X,
		lastTime:     ev.Time,
		anchor:       s.offset,
		pendingClick: NoSegment,
	}
	logPan(ev, s.offset)
}

func (s *Strip) trackPan(ev PanEvent) {
	if s.phase != PhaseTracking {
		return
	}
	s.sample(ev)
	logPan(ev, s.offset)
}

func (s *Strip) sample(ev PanEvent) {
	g := &s.gesture
	displacement := ev.X - g.startX
	if d := math.Hypot(displacement, ev.Y-g.startY); d > g.maxDisplacement {
		g.maxDisplacement = d
	}
	if ev.X != g.lastX && !ev.Time.IsZero() && !g.lastTime.IsZero() {
		if dt := ev.Time.Sub(g.lastTime).Seconds(); dt > 0 {
			g.velocity = (ev.X - g.lastX) / dt
			g.hasVelocity = true
		}
	}
	g.lastX = ev.X
	if !ev.Time.IsZero() {
		g.lastTime = ev.Time
	}
	s.setOffset(g.anchor - displacement)
}

// endPan classifies the finished gesture, snaps the offset and, for taps,
// selects the segment under the pointer.
func (s *Strip) endPan(ev PanEvent, allowClick bool) {
	if s.phase != PhaseTracking {
		return
	}
	s.sample(ev)
	g := s.gesture

	clicked := NoSegment
	if allowClick && g.maxDisplacement < s.clickThreshold {
		// The release position wins; a reported click covers surfaces
		// that do not deliver coordinates with the release.
		clicked = s.SegmentAt(ev.X, ev.Y)
		if clicked == NoSegment {
			clicked = g.pendingClick
		}
	}

	s.gesture = gestureState{pendingClick: NoSegment}
	s.phase = PhaseIdle

	// Content moves opposite to the pointer.
	velocity := -g.velocity
	target := clamp(snapOffset(s.offset, s.SegmentWidth(), velocity, g.hasVelocity, s.tieBreak), 0, s.MaxOffset())
	s.settleTo(target, velocity)
	logPan(ev, s.offset)

	if clicked != NoSegment {
		s.commitUserSelection(clicked)
	}
}

func (s *Strip) cancelGesture() {
	if s.phase == PhaseTracking {
		s.phase = PhaseIdle
	}
	s.gesture = gestureState{pendingClick: NoSegment}
}

func logPan(ev PanEvent, offset float64) {
	logging.LogGesture(ev.Phase.String(), ev.X, offset)
}
