package viewer

// DefaultVisibilityThreshold is the minimum visible fraction for a page
// to be considered at all when picking the "current" page in a
// scrollable all-pages layout.
const DefaultVisibilityThreshold = 0.5

// Focus tracks which page the comment panel and composer are scoped to.
// On desktop the target follows the displayed page; in the mobile
// all-pages list the target is whichever page header the user tapped,
// independent of scroll position.
type Focus struct {
	target int
}

// FollowDisplayed re-scopes the panel to the page being displayed
// (desktop navigation).
func (f *Focus) FollowDisplayed(page int) {
	if page >= 1 {
		f.target = page
	}
}

// Tap scopes the panel to an explicitly chosen page (mobile list).
func (f *Focus) Tap(page int) {
	if page >= 1 {
		f.target = page
	}
}

// Target returns the scoped page, or 0 when nothing is scoped yet.
func (f *Focus) Target() int {
	return f.target
}

// PageVisibility is one page's visible fraction of the viewport,
// reported by the rendering layer's intersection observer.
type PageVisibility struct {
	Page     int
	Fraction float64
}

// MostVisiblePage picks the displayed-page indicator for a scrolling
// list of all pages: among pages intersecting above the threshold, the
// one with the greatest visible fraction wins; ties go to the earlier
// page. ok is false when nothing qualifies.
func MostVisiblePage(entries []PageVisibility, threshold float64) (page int, ok bool) {
	best := -1.0
	for _, e := range entries {
		if e.Page < 1 || e.Fraction < threshold {
			continue
		}
		if e.Fraction > best || (e.Fraction == best && e.Page < page) {
			best = e.Fraction
			page = e.Page
			ok = true
		}
	}
	if !ok {
		return 0, false
	}
	return page, true
}
