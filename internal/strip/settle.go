package strip

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Settle animation tuning. A critically damped spring does not overshoot
// unless released with a large velocity, and the offset is clamped anyway.
const (
	settleFPS           = 60
	settleFrequency     = 8.0
	settleDamping       = 1.0
	settleEpsilon       = 0.01
	settleMaxFrames     = 2 * settleFPS
	settleVelocityLimit = 400.0
)

var settleSpring = harmonica.NewSpring(harmonica.FPS(settleFPS), settleFrequency, settleDamping)

type settleState struct {
	target   float64
	velocity float64
	frames   int
}

// FrameInterval is the time between Step calls expected by the settle
// animation.
func FrameInterval() time.Duration {
	return time.Second / settleFPS
}

// Animated reports whether settling is animated.
func (s *Strip) Animated() bool { return s.animate }

// SetAnimated enables or disables settle animation. Disabling it while
// settling commits the target immediately.
func (s *Strip) SetAnimated(enabled bool) {
	s.animate = enabled
	if !enabled {
		s.finishSettling()
	}
}

// SettleTarget returns the offset the strip is settling toward and whether a
// settle is in progress.
func (s *Strip) SettleTarget() (float64, bool) {
	if s.phase != PhaseSettling {
		return s.offset, false
	}
	return s.settle.target, true
}

// Step advances the settle animation by one frame and reports whether more
// frames are needed.
func (s *Strip) Step() bool {
	if s.phase != PhaseSettling {
		return false
	}
	st := &s.settle
	pos, vel := settleSpring.Update(s.offset, st.velocity, st.target)
	st.velocity = vel
	st.frames++

	if math.Abs(pos-st.target) < settleEpsilon && math.Abs(vel) < settleEpsilon || st.frames >= settleMaxFrames {
		s.finishSettling()
		return false
	}
	s.setOffset(pos)
	return true
}

// ScrollBy moves the strip by whole segments from its snapped position,
// clamped to the valid range. It is ignored during a pan gesture.
func (s *Strip) ScrollBy(segments int) {
	if len(s.segments) == 0 || s.phase == PhaseTracking {
		return
	}
	w := s.SegmentWidth()
	base, settling := s.SettleTarget()
	if !settling {
		base = snapOffset(s.offset, w, 0, false, TieBreakDown)
	}
	target := clamp(base+float64(segments)*w, 0, s.MaxOffset())
	s.settleTo(target, s.settle.velocity)
}

// settleTo moves to target, animating when enabled.
func (s *Strip) settleTo(target, velocity float64) {
	if !s.animate || target == s.offset {
		s.settle = settleState{}
		s.phase = PhaseIdle
		s.setOffset(target)
		return
	}
	s.settle = settleState{
		target:   target,
		velocity: clamp(velocity, -settleVelocityLimit, settleVelocityLimit),
	}
	s.phase = PhaseSettling
}

// finishSettling commits a running animation to its target.
func (s *Strip) finishSettling() {
	if s.phase != PhaseSettling {
		return
	}
	target := s.settle.target
	s.settle = settleState{}
	s.phase = PhaseIdle
	s.setOffset(target)
}

// stopSettling abandons a running animation where it is.
func (s *Strip) stopSettling() {
	if s.phase == PhaseSettling {
		s.phase = PhaseIdle
	}
	s.settle = settleState{}
}

