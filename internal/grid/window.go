package grid

// Window is the contiguous index range to materialize for rendering at a
// given scroll position. Both bounds are inclusive; Start > End means an
// empty window. Windows are ephemeral and recomputed per scroll event.
type Window struct {
	Start int
	End   int
}

func (w Window) Empty() bool { return w.Start > w.End }

// Len returns the number of indices covered by the window.
func (w Window) Len() int {
	if w.Empty() {
		return 0
	}
	return w.End - w.Start + 1
}

// ComputeWindow returns the minimal index range covering the viewport plus
// overscan rows on each side. Extents and offsets are in the same unit
// (pixels, terminal cells, ...). The math is O(1) on purpose: it is safe to
// call once per scroll event without debouncing; smoothing, if wanted, is
// the caller's business.
func ComputeWindow(totalCount, rowExtent, viewportExtent, scrollOffset, overscan int) Window {
	if totalCount <= 0 {
		return Window{Start: 0, End: -1}
	}
	if rowExtent <= 0 {
		rowExtent = 1
	}
	if scrollOffset < 0 {
		scrollOffset = 0
	}
	if overscan < 0 {
		overscan = 0
	}
	rawStart := scrollOffset / rowExtent
	visible := (viewportExtent + rowExtent - 1) / rowExtent
	start := rawStart - overscan
	if start < 0 {
		start = 0
	}
	end := rawStart + visible + overscan
	if end > totalCount-1 {
		end = totalCount - 1
	}
	if start > end {
		start = end
	}
	return Window{Start: start, End: end}
}
