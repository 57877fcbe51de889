package viewer

import "errors"

var ErrInvalidPageCount = errors.New("page count must be at least 1")

// Pager owns the 1-based current page, clamped to [1, numPages].
// Until the document reports its page count, navigation is disabled
// and Current returns 0 so callers show a loading state instead of a
// stale page number.
type Pager struct {
	current  int
	numPages int
}

func NewPager() *Pager {
	return &Pager{}
}

// Loaded reports whether the document's page count is known.
func (p *Pager) Loaded() bool {
	return p.numPages > 0
}

// SetNumPages is called once the document loads. The current page
// snaps into the new range; a fresh pager lands on page 1.
func (p *Pager) SetNumPages(n int) error {
	if n < 1 {
		return ErrInvalidPageCount
	}
	p.numPages = n
	p.current = p.clamp(p.current)
	return nil
}

func (p *Pager) Current() int {
	if !p.Loaded() {
		return 0
	}
	return p.current
}

func (p *Pager) NumPages() int {
	return p.numPages
}

// Next advances one page. Reports whether the page changed; repeated
// calls past the last page stay put.
func (p *Pager) Next() bool {
	return p.JumpTo(p.current + 1)
}

func (p *Pager) Prev() bool {
	return p.JumpTo(p.current - 1)
}

// JumpTo clamps n into range. No-op before the document loads.
func (p *Pager) JumpTo(n int) bool {
	if !p.Loaded() {
		return false
	}
	n = p.clamp(n)
	if n == p.current {
		return false
	}
	p.current = n
	return true
}

func (p *Pager) clamp(n int) int {
	if n < 1 {
		return 1
	}
	if n > p.numPages {
		return p.numPages
	}
	return n
}
