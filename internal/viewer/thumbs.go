package viewer

// DefaultOverscan is how many extra rows to materialize beyond the
// visible window on each side, so fast scrolling doesn't flash blanks.
const DefaultOverscan = 3

// Window is the inclusive 1-based range of thumbnail rows that should
// be materialized. First > Last means nothing.
type Window struct {
	First int
	Last  int
}

func (w Window) Empty() bool {
	return w.First > w.Last
}

func (w Window) Count() int {
	if w.Empty() {
		return 0
	}
	return w.Last - w.First + 1
}

func (w Window) Contains(row int) bool {
	return row >= w.First && row <= w.Last
}

// VisibleWindow computes which thumbnail rows to materialize for a
// virtualized rail: the rows intersecting [scrollTop, scrollTop +
// viewportHeight), widened by overscan and clamped to the document.
func VisibleWindow(scrollTop, viewportHeight, rowHeight float64, numRows, overscan int) Window {
	if numRows < 1 || rowHeight <= 0 || viewportHeight <= 0 {
		return Window{First: 1, Last: 0}
	}
	if scrollTop < 0 {
		scrollTop = 0
	}

	first := int(scrollTop/rowHeight) + 1
	last := int((scrollTop+viewportHeight-1)/rowHeight) + 1

	first -= overscan
	last += overscan

	if first < 1 {
		first = 1
	}
	if last > numRows {
		last = numRows
	}

	return Window{First: first, Last: last}
}
