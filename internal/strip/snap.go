package strip

import "math"

// TieBreak decides which way an offset lying exactly halfway between two
// segment boundaries snaps.
type TieBreak int

const (
	// TieBreakVelocity follows the residual scroll velocity and rounds down
	// when no velocity is known.
	TieBreakVelocity TieBreak = iota
	// TieBreakDown always rounds toward the lower boundary.
	TieBreakDown
	// TieBreakUp always rounds toward the upper boundary.
	TieBreakUp
)

// String returns the tie-break name as used in configuration files.
func (tb TieBreak) String() string {
	switch tb {
	case TieBreakVelocity:
		return "velocity"
	case TieBreakDown:
		return "down"
	case TieBreakUp:
		return "up"
	default:
		return "unknown"
	}
}

// ParseTieBreak parses a configuration name. Unknown names yield
// TieBreakVelocity and false.
func ParseTieBreak(name string) (TieBreak, bool) {
	switch name {
	case "velocity", "":
		return TieBreakVelocity, true
	case "down":
		return TieBreakDown, true
	case "up":
		return TieBreakUp, true
	default:
		return TieBreakVelocity, false
	}
}

const snapEpsilon = 1e-9

// snapOffset rounds offset to the nearest multiple of width. velocity is the
// scroll offset velocity (positive moves content toward higher indices).
func snapOffset(offset, width, velocity float64, hasVelocity bool, tb TieBreak) float64 {
	if width <= 0 {
		return 0
	}
	pages := offset / width
	lower := math.Floor(pages)
	frac := pages - lower

	var n float64
	switch {
	case frac < 0.5-snapEpsilon:
		n = lower
	case frac > 0.5+snapEpsilon:
		n = lower + 1
	default:
		n = lower
		switch tb {
		case TieBreakUp:
			n = lower + 1
		case TieBreakVelocity:
			if hasVelocity && velocity > 0 {
				n = lower + 1
			}
		}
	}
	return n * width
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
