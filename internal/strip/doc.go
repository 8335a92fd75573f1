// Package strip implements a horizontally paginated selector: an ordered strip
// of segments of which only a few are visible at once, scrolled by a pan
// gesture that snaps to segment boundaries.
//
// # Model
//
// A Strip owns its segments as one contiguous slice rebuilt by Configure.
// Segment indices are 0..n-1 and are only meaningful within one configuration
// generation (see Strip.Generation). Exactly one segment is selected whenever
// the strip is non-empty.
//
// Geometry is continuous:
//
//	segmentWidth = frame.Width / min(displayCount, len(segments))
//	x(i)         = i*segmentWidth - scrollOffset
//	maxOffset    = max(0, len(segments)-effectiveDisplayCount) * segmentWidth
//
// Rendering surfaces round these values to whatever unit they draw in.
//
// # Gestures
//
// Pan input arrives as discrete PanEvent samples and drives a small state
// machine:
//
//	Idle --PanBegan--> Tracking --PanEnded--> Settling --frames--> Idle
//
// While tracking, every sample moves the scroll offset by the pointer
// displacement, clamped to [0, maxOffset]. On release the offset snaps to the
// nearest segment boundary; ties follow the residual velocity according to the
// configured TieBreak. A gesture whose displacement (in both axes) never
// reached the click threshold is a tap and selects the segment under the
// pointer at release.
//
// A surface that reports segment clicks for the same input as a pan must do
// so before PanEnded: clicks during tracking wait for the gesture to be
// classified, while a click arriving when no gesture is active is a
// standalone tap and selects immediately.
//
// # Notifications
//
// The Delegate is told about user-driven selection changes only. Programmatic
// SelectSegment calls and Configure never notify. Notification happens after
// all state has been committed, so a delegate may safely call back into the
// strip.
//
// # Concurrency
//
// A Strip is not safe for concurrent use. It is meant to be driven from a
// single UI goroutine, such as a Bubble Tea Update loop.
package strip
