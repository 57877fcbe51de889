package viewer

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestZoomStartsAtFit(t *testing.T) {
	z := NewZoom()

	assert.Equal(t, MinScale, z.Scale())
	assert.False(t, z.Zoomed())

	x, y := z.Pan()
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestZoomPinchClamps(t *testing.T) {
	z := NewZoom()

	z.Pinch(100)
	assert.Equal(t, MaxScale, z.Scale())

	z.Pinch(0.0001)
	assert.Equal(t, MinScale, z.Scale())
	assert.False(t, z.Zoomed())
}

func TestZoomPinchIgnoresBadFactors(t *testing.T) {
	z := NewZoom()
	z.Pinch(2)

	for _, f := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		z.Pinch(f)
		assert.Equal(t, 2.0, z.Scale())
	}
}

func TestZoomPanOnlyWhileZoomed(t *testing.T) {
	z := NewZoom()

	assert.False(t, z.ApplyPan(10, 10))
	x, y := z.Pan()
	assert.Zero(t, x)
	assert.Zero(t, y)

	z.Pinch(2)
	assert.True(t, z.ApplyPan(10, -5))
	x, y = z.Pan()
	assert.Equal(t, 10.0, x)
	assert.Equal(t, -5.0, y)
}

func TestZoomLeavingZoomedStateRecentersPan(t *testing.T) {
	z := NewZoom()
	z.Pinch(2)
	z.ApplyPan(40, 40)

	z.Pinch(0.5) // back to fit
	x, y := z.Pan()
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestZoomFit(t *testing.T) {
	z := NewZoom()
	z.Pinch(3)
	z.ApplyPan(15, 20)

	z.Fit()
	assert.Equal(t, MinScale, z.Scale())
	assert.False(t, z.Zoomed())
}

func TestZoomEndGestureCollapsesNearFit(t *testing.T) {
	z := NewZoom()
	z.Pinch(1.01) // within threshold, still "fit"

	z.EndGesture()
	assert.Equal(t, MinScale, z.Scale())

	z.Pinch(2)
	z.EndGesture()
	assert.Equal(t, 2.0, z.Scale())
}

func TestInterpretSwipe(t *testing.T) {
	quick := 200 * time.Millisecond

	tests := []struct {
		name   string
		drag   Drag
		zoomed bool
		want   Swipe
	}{
		{"left drag advances", Drag{DX: -120, DY: 5, Duration: quick}, false, SwipeNext},
		{"right drag goes back", Drag{DX: 120, DY: -5, Duration: quick}, false, SwipePrev},
		{"too short", Drag{DX: -59, DY: 0, Duration: quick}, false, SwipeNone},
		{"exactly at min distance", Drag{DX: -60, DY: 0, Duration: quick}, false, SwipeNext},
		{"too slow", Drag{DX: -200, DY: 0, Duration: time.Second}, false, SwipeNone},
		{"mostly vertical is a scroll", Drag{DX: -80, DY: 90, Duration: quick}, false, SwipeNone},
		{"horizontal not dominant enough", Drag{DX: -120, DY: 110, Duration: quick}, false, SwipeNone},
		{"horizontal clearly dominates", Drag{DX: -120, DY: 40, Duration: quick}, false, SwipeNext},
		{"zoomed suppresses swipe", Drag{DX: -200, DY: 0, Duration: quick}, true, SwipeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InterpretSwipe(tt.drag, tt.zoomed))
		})
	}
}
