// Package viewer holds the poster viewer's state core: pagination,
// responsive layout, gesture interpretation, comment-target scoping,
// thumbnail windowing, and the comment composer's draft lifecycle.
//
// Everything in here is pure state with no I/O; the rendering layer and
// the network layer sit on top and stay thin. That split is what lets
// the navigation and gesture rules be tested without a DOM or a server.
package viewer

// Breakpoint splits the small (single-pane, swipe navigation) layout
// from the large (three-pane) one, in CSS pixels.
const Breakpoint = 1024.0

const (
	pageGutter     = 16.0
	minRenderWidth = 100.0
)

type SizeClass int

const (
	SizeSmall SizeClass = iota
	SizeLarge
)

type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

type Arrangement int

const (
	// ArrangeSinglePane: mobile layout, one column, swipe to navigate.
	ArrangeSinglePane Arrangement = iota
	// ArrangeThreePane: desktop layout, thumbnail rail / viewer / panel.
	ArrangeThreePane
)

// Viewport is the visible area the viewer is laid out in. Both classes
// below are re-derived from it synchronously on every resize or
// orientation change; nothing caches them.
type Viewport struct {
	Width  float64
	Height float64
}

func (v Viewport) SizeClass() SizeClass {
	if v.Width >= Breakpoint {
		return SizeLarge
	}
	return SizeSmall
}

func (v Viewport) Orientation() Orientation {
	if v.Width > v.Height {
		return Landscape
	}
	return Portrait
}

// Arrange maps a size class to a pane arrangement. Layout is a pure
// function of the derived classes, never of raw pixel values.
func Arrange(sc SizeClass) Arrangement {
	if sc == SizeLarge {
		return ArrangeThreePane
	}
	return ArrangeSinglePane
}

// RenderWidth computes the pixel width to render a PDF page at, given
// the container width and the current zoom scale. Deterministic so the
// size-observer adapter stays a one-liner.
func RenderWidth(containerWidth, scale float64) float64 {
	if containerWidth <= 0 {
		return 0
	}

	w := containerWidth - 2*pageGutter
	if w < minRenderWidth {
		w = minRenderWidth
	}

	if scale < MinScale {
		scale = MinScale
	} else if scale > MaxScale {
		scale = MaxScale
	}

	return w * scale
}
