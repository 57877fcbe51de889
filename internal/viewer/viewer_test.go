package viewer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedViewer(t *testing.T, numPages int) *Viewer {
	t.Helper()
	v := New()
	require.NoError(t, v.DocumentLoaded(numPages))
	return v
}

func TestViewerNavigationResetsZoom(t *testing.T) {
	v := loadedViewer(t, 5)

	v.Zoom.Pinch(2.5)
	v.Zoom.ApplyPan(30, 10)
	require.True(t, v.Zoom.Zoomed())

	assert.True(t, v.Next())
	assert.Equal(t, 2, v.Pager.Current())

	// The zoomed transform must not carry onto another page.
	assert.Equal(t, MinScale, v.Zoom.Scale())
	assert.False(t, v.Zoom.Zoomed())
}

func TestViewerFailedNavigationKeepsZoom(t *testing.T) {
	v := loadedViewer(t, 3)
	v.Zoom.Pinch(2)

	// Already on page 1; Prev changes nothing, including the zoom.
	assert.False(t, v.Prev())
	assert.Equal(t, 2.0, v.Zoom.Scale())
}

func TestViewerEndDragSwipesAtFit(t *testing.T) {
	v := loadedViewer(t, 3)

	changed := v.EndDrag(Drag{DX: -100, DY: 0, Duration: 150 * time.Millisecond})
	assert.True(t, changed)
	assert.Equal(t, 2, v.Pager.Current())

	changed = v.EndDrag(Drag{DX: 100, DY: 0, Duration: 150 * time.Millisecond})
	assert.True(t, changed)
	assert.Equal(t, 1, v.Pager.Current())
}

func TestViewerEndDragPansWhileZoomed(t *testing.T) {
	v := loadedViewer(t, 3)
	v.Zoom.Pinch(2)

	changed := v.EndDrag(Drag{DX: -100, DY: 0, Duration: 150 * time.Millisecond})
	assert.False(t, changed, "a zoomed drag pans instead of turning the page")
	assert.Equal(t, 1, v.Pager.Current())

	x, _ := v.Zoom.Pan()
	assert.Equal(t, -100.0, x)
}

func TestViewerEndDragBeforeLoad(t *testing.T) {
	v := New()
	assert.False(t, v.EndDrag(Drag{DX: -100, Duration: 150 * time.Millisecond}))
}

func TestViewerCommentTargetFollowsPageOnDesktop(t *testing.T) {
	v := loadedViewer(t, 5)
	v.SetViewport(Viewport{Width: 1280, Height: 800})

	assert.Equal(t, 1, v.CommentTarget())

	require.True(t, v.JumpTo(4))
	assert.Equal(t, 4, v.CommentTarget())
}

func TestViewerCommentTargetTapOnMobile(t *testing.T) {
	v := loadedViewer(t, 5)
	v.SetViewport(Viewport{Width: 390, Height: 844})

	v.TapPage(3)
	assert.Equal(t, 3, v.CommentTarget())

	// On the small layout, navigating does not re-scope the panel; only
	// taps do.
	require.True(t, v.JumpTo(5))
	assert.Equal(t, 3, v.CommentTarget())

	// Out-of-range taps are ignored.
	v.TapPage(99)
	assert.Equal(t, 3, v.CommentTarget())
}

func TestViewerCommentTargetFallsBackToCurrentPage(t *testing.T) {
	v := New()
	v.SetViewport(Viewport{Width: 390, Height: 844})
	require.NoError(t, v.Pager.SetNumPages(4))

	// No focus recorded yet (DocumentLoaded not used): fall back to the
	// displayed page.
	assert.Equal(t, 1, v.CommentTarget())
}

func TestViewerArrangement(t *testing.T) {
	v := New()

	v.SetViewport(Viewport{Width: 390, Height: 844})
	assert.Equal(t, ArrangeSinglePane, v.Arrangement())

	v.SetViewport(Viewport{Width: 1440, Height: 900})
	assert.Equal(t, ArrangeThreePane, v.Arrangement())
}

func TestViewerRenderWidthUsesZoom(t *testing.T) {
	v := loadedViewer(t, 2)

	assert.Equal(t, 768.0, v.RenderWidth(800))

	v.Zoom.Pinch(2)
	assert.Equal(t, 1536.0, v.RenderWidth(800))
}

func TestViewerThumbnailWindow(t *testing.T) {
	v := loadedViewer(t, 50)

	w := v.ThumbnailWindow(0, 400, 100)
	assert.Equal(t, 1, w.First)
	assert.Equal(t, 7, w.Last)
}
