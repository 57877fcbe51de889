package viewer

import "strings"

type ComposerMode int

const (
	ModeAdd ComposerMode = iota
	ModeEdit
)

type ComposerAction int

const (
	ActionNone ComposerAction = iota
	ActionSubmit
	ActionClose
)

// KeyEvent is a keyboard event as the rendering layer saw it.
// Primary is the platform's primary modifier (Cmd on mac, Ctrl
// elsewhere).
type KeyEvent struct {
	Key     string
	Primary bool
}

// Composer collects free text bound to a page and a mode. It validates
// non-emptiness and decides open/close/submit; the actual network call
// is the caller's job.
type Composer struct {
	open  bool
	mode  ComposerMode
	page  int
	seed  string
	draft string
}

// Open shows the composer targeted at (mode, page, seed). Reopening on
// the same target keeps the in-progress draft; any change of target
// reseeds it, so a draft never leaks across pages, modes, or comments.
func (c *Composer) Open(mode ComposerMode, page int, seed string) {
	retarget := !c.open || c.mode != mode || c.page != page || c.seed != seed

	c.open = true
	c.mode = mode
	c.page = page
	c.seed = seed

	if retarget {
		c.draft = seed
	}
}

func (c *Composer) IsOpen() bool      { return c.open }
func (c *Composer) Mode() ComposerMode { return c.mode }
func (c *Composer) Page() int         { return c.page }
func (c *Composer) Draft() string     { return c.draft }

func (c *Composer) SetDraft(s string) {
	if c.open {
		c.draft = s
	}
}

// CanSubmit is false while the draft is empty or whitespace-only.
func (c *Composer) CanSubmit() bool {
	return c.open && strings.TrimSpace(c.draft) != ""
}

// HandleKey implements the shortcuts: primary+Enter submits (when the
// draft qualifies), Escape closes without submitting.
func (c *Composer) HandleKey(k KeyEvent) ComposerAction {
	if !c.open {
		return ActionNone
	}

	switch {
	case k.Key == "Escape":
		c.Close()
		return ActionClose
	case k.Key == "Enter" && k.Primary:
		if c.CanSubmit() {
			return ActionSubmit
		}
	}
	return ActionNone
}

// Submit hands the trimmed draft to the caller and closes. ok is false
// when there is nothing valid to submit.
func (c *Composer) Submit() (text string, ok bool) {
	if !c.CanSubmit() {
		return "", false
	}
	text = strings.TrimSpace(c.draft)
	c.Close()
	return text, true
}

func (c *Composer) Close() {
	c.open = false
	c.draft = ""
	c.seed = ""
}
