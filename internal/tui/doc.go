// Package tui is the terminal surface of the segment strip.
//
// StripModel is a Bubble Tea component that owns a strip.Strip and renders
// each segment as a cell in a two row band: the labels, and an indicator
// rule that is heavy under the selected segment. It translates terminal
// mouse reports into pan samples for the strip's gesture machine:
//
//	left press   -> PanBegan
//	motion       -> PanChanged
//	left release -> segment click (when released over the pressed segment),
//	                then PanEnded
//
// The strip decides whether the gesture was a tap or a drag, so a drag that
// ends over the segment it started on does not change the selection.
// Selections made by the user are delivered as SegmentSelectedMsg.
//
// When the strip animates its settle, StripModel schedules FrameMsg ticks
// at the strip's frame interval and advances the spring one step per tick.
//
// # Key Bindings
//
//   - ←/h, →/l: page by one segment
//   - +, -: show more or fewer segments at once
//   - mouse wheel: page by one segment
//
// AppModel wraps a StripModel in the full-screen demo used by
// `segstrip demo`, with a header, a status line, the most recent
// selections and a help footer.
//
// All updates happen on the Bubble Tea goroutine; the strip itself is not
// safe for concurrent use.
package tui
