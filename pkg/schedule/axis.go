package schedule

import "tableflip.dev/shifthope/pkg/clock"

// The visible day axis runs 7:00 to 23:00.
const (
	WindowStart = clock.RangeStart
	WindowEnd   = clock.RangeEnd
	windowSpan  = WindowEnd - WindowStart
)

// Projection places a slot on the visible axis as percentages of its span.
type Projection struct {
	Visible  bool
	LeftPct  float64
	WidthPct float64
}

// Project maps a slot onto the visible window. An unspecified bound defaults
// to the matching window edge; concrete bounds are clamped into the window.
// A slot with no concrete bound, or one that collapses to zero width after
// clamping, is not visible. Pure function of the slot alone.
func Project(s *Slot) Projection {
	if !s.HasContent() {
		return Projection{}
	}
	start := WindowStart
	if s.Start.Known() {
		start = s.Start.Minutes()
		if start < WindowStart {
			start = WindowStart
		}
	}
	end := WindowEnd
	if s.End.Known() {
		end = s.End.Minutes()
		if end > WindowEnd {
			end = WindowEnd
		}
	}
	if end <= start {
		return Projection{}
	}
	return Projection{
		Visible:  true,
		LeftPct:  float64(start-WindowStart) / float64(windowSpan) * 100,
		WidthPct: float64(end-start) / float64(windowSpan) * 100,
	}
}
