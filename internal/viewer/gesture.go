package viewer

import (
	"math"
	"time"
)

// Zoom bounds. Scale 1 is fit-to-width; pinching past MaxScale clamps.
const (
	MinScale = 1.0
	MaxScale = 4.0

	// zoomThreshold separates Idle from Zoomed. A scale within the
	// threshold of 1 still counts as fit, so a pinch that barely moved
	// doesn't silently eat swipe navigation.
	zoomThreshold = 1.02
)

// Swipe recognition thresholds.
const (
	swipeMinDistance = 60.0 // px of horizontal travel
	swipeAxisRatio   = 1.2  // horizontal must dominate vertical by this
)

const swipeMaxDuration = 800 * time.Millisecond

// Zoom tracks the pinch-zoom/pan transform. Two states, mutually
// exclusive with swiping:
//
//	Idle   (scale ≤ threshold): drags may be swipes, panning is off.
//	Zoomed (scale > threshold): drags pan, swiping is suppressed.
type Zoom struct {
	scale float64
	panX  float64
	panY  float64
}

func NewZoom() *Zoom {
	return &Zoom{scale: MinScale}
}

func (z *Zoom) Scale() float64 {
	return z.scale
}

func (z *Zoom) Pan() (x, y float64) {
	return z.panX, z.panY
}

func (z *Zoom) Zoomed() bool {
	return z.scale > zoomThreshold
}

// Pinch applies a relative scale factor, clamped into [MinScale,
// MaxScale]. Leaving the zoomed state recenters the pan.
func (z *Zoom) Pinch(factor float64) {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return
	}

	z.scale *= factor
	if z.scale < MinScale {
		z.scale = MinScale
	} else if z.scale > MaxScale {
		z.scale = MaxScale
	}

	if !z.Zoomed() {
		z.panX, z.panY = 0, 0
	}
}

// ApplyPan moves the viewport while zoomed. Ignored at fit: vertical
// motion belongs to native scroll, horizontal to swipe navigation.
func (z *Zoom) ApplyPan(dx, dy float64) bool {
	if !z.Zoomed() {
		return false
	}
	z.panX += dx
	z.panY += dy
	return true
}

// Fit resets to the idle state ("Fit/Reset" control, or programmatic
// page navigation).
func (z *Zoom) Fit() {
	z.scale = MinScale
	z.panX, z.panY = 0, 0
}

// EndGesture settles state after fingers lift: a scale that drifted
// back within the threshold collapses to a clean fit.
func (z *Zoom) EndGesture() {
	if !z.Zoomed() {
		z.Fit()
	}
}

// Drag is one completed touch drag.
type Drag struct {
	DX       float64 // rightward positive
	DY       float64 // downward positive
	Duration time.Duration
}

type Swipe int

const (
	SwipeNone Swipe = iota
	SwipeNext       // content dragged left: advance a page
	SwipePrev       // content dragged right: go back a page
)

// InterpretSwipe classifies a completed drag. A swipe must be primarily
// horizontal, travel far enough, finish quickly enough, and only counts
// while at fit; while zoomed the same motion is a pan.
func InterpretSwipe(d Drag, zoomed bool) Swipe {
	if zoomed {
		return SwipeNone
	}

	absX := math.Abs(d.DX)
	absY := math.Abs(d.DY)

	if absX < swipeMinDistance {
		return SwipeNone
	}
	if d.Duration >= swipeMaxDuration {
		return SwipeNone
	}
	if absX < swipeAxisRatio*absY {
		return SwipeNone
	}

	if d.DX < 0 {
		return SwipeNext
	}
	return SwipePrev
}
