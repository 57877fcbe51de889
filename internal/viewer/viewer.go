package viewer

// Viewer ties the pieces together: one state object per open poster,
// independent of rendering. The rendering layer reads derived values
// (current page, arrangement, render width, thumbnail window) and feeds
// events back in (viewport changes, drags, taps, document load).
type Viewer struct {
	Pager *Pager
	Zoom  *Zoom

	focus Focus
	vp    Viewport
}

func New() *Viewer {
	return &Viewer{
		Pager: NewPager(),
		Zoom:  NewZoom(),
	}
}

// SetViewport records the layout container size. Size and orientation
// classes are derived on read, so this is all a resize handler does.
func (v *Viewer) SetViewport(vp Viewport) {
	v.vp = vp
}

func (v *Viewer) Viewport() Viewport {
	return v.vp
}

func (v *Viewer) Arrangement() Arrangement {
	return Arrange(v.vp.SizeClass())
}

// DocumentLoaded enables navigation once the page count is known.
func (v *Viewer) DocumentLoaded(numPages int) error {
	if err := v.Pager.SetNumPages(numPages); err != nil {
		return err
	}
	v.focus.FollowDisplayed(v.Pager.Current())
	return nil
}

// Next, Prev, JumpTo are the programmatic navigations (buttons,
// thumbnail clicks, swipe outcomes). A page change always resets zoom —
// a zoomed transform must not persist onto another page's content — and
// re-scopes the comment panel in the desktop arrangement.
func (v *Viewer) Next() bool    { return v.navigate(v.Pager.Current() + 1) }
func (v *Viewer) Prev() bool    { return v.navigate(v.Pager.Current() - 1) }
func (v *Viewer) JumpTo(n int) bool { return v.navigate(n) }

func (v *Viewer) navigate(n int) bool {
	if !v.Pager.JumpTo(n) {
		return false
	}

	v.Zoom.Fit()

	if v.vp.SizeClass() == SizeLarge {
		v.focus.FollowDisplayed(v.Pager.Current())
	}
	return true
}

// TapPage scopes the comment panel to an explicitly tapped page header
// in the mobile all-pages list; scroll position is irrelevant there.
func (v *Viewer) TapPage(page int) {
	if !v.Pager.Loaded() || page < 1 || page > v.Pager.NumPages() {
		return
	}
	v.focus.Tap(page)
}

// CommentTarget is the page the panel and composer are scoped to.
// Opening them always targets the displayed page unless a tap chose
// another one.
func (v *Viewer) CommentTarget() int {
	if t := v.focus.Target(); t != 0 {
		return t
	}
	return v.Pager.Current()
}

// EndDrag routes a completed drag: pan while zoomed, swipe navigation
// at fit. Reports whether the page changed.
func (v *Viewer) EndDrag(d Drag) bool {
	if !v.Pager.Loaded() {
		return false
	}

	if v.Zoom.Zoomed() {
		v.Zoom.ApplyPan(d.DX, d.DY)
		return false
	}

	switch InterpretSwipe(d, false) {
	case SwipeNext:
		return v.Next()
	case SwipePrev:
		return v.Prev()
	}
	return false
}

// RenderWidth is the width to render the current page at in the given
// container.
func (v *Viewer) RenderWidth(containerWidth float64) float64 {
	return RenderWidth(containerWidth, v.Zoom.Scale())
}

// ThumbnailWindow is the slice of the rail to materialize.
func (v *Viewer) ThumbnailWindow(scrollTop, viewportHeight, rowHeight float64) Window {
	return VisibleWindow(scrollTop, viewportHeight, rowHeight, v.Pager.NumPages(), DefaultOverscan)
}
