package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposerOpenSeedsDraft(t *testing.T) {
	var c Composer

	c.Open(ModeAdd, 3, "")
	assert.True(t, c.IsOpen())
	assert.Equal(t, ModeAdd, c.Mode())
	assert.Equal(t, 3, c.Page())
	assert.Empty(t, c.Draft())

	c.Open(ModeEdit, 3, "original text")
	assert.Equal(t, "original text", c.Draft())
}

func TestComposerReopenSameTargetKeepsDraft(t *testing.T) {
	var c Composer

	c.Open(ModeAdd, 3, "")
	c.SetDraft("half-written thought")

	c.Open(ModeAdd, 3, "")
	assert.Equal(t, "half-written thought", c.Draft())
}

func TestComposerRetargetReseedsDraft(t *testing.T) {
	var c Composer

	c.Open(ModeAdd, 3, "")
	c.SetDraft("about page three")

	// Different page: the draft must not follow.
	c.Open(ModeAdd, 4, "")
	assert.Empty(t, c.Draft())

	// Different mode on the same page reseeds too.
	c.SetDraft("about page four")
	c.Open(ModeEdit, 4, "stored comment")
	assert.Equal(t, "stored comment", c.Draft())
}

func TestComposerCanSubmit(t *testing.T) {
	var c Composer

	assert.False(t, c.CanSubmit(), "closed composer cannot submit")

	c.Open(ModeAdd, 1, "")
	assert.False(t, c.CanSubmit())

	c.SetDraft("   \t\n ")
	assert.False(t, c.CanSubmit(), "whitespace-only draft cannot submit")

	c.SetDraft("  real text  ")
	assert.True(t, c.CanSubmit())
}

func TestComposerSubmitTrimsAndCloses(t *testing.T) {
	var c Composer
	c.Open(ModeAdd, 1, "")
	c.SetDraft("  hello  ")

	text, ok := c.Submit()
	require.True(t, ok)
	assert.Equal(t, "hello", text)
	assert.False(t, c.IsOpen())

	_, ok = c.Submit()
	assert.False(t, ok, "second submit has nothing left")
}

func TestComposerHandleKey(t *testing.T) {
	var c Composer

	assert.Equal(t, ActionNone, c.HandleKey(KeyEvent{Key: "Escape"}), "closed composer ignores keys")

	c.Open(ModeAdd, 1, "")
	c.SetDraft("something")

	assert.Equal(t, ActionNone, c.HandleKey(KeyEvent{Key: "Enter"}), "plain Enter is a newline")
	assert.Equal(t, ActionSubmit, c.HandleKey(KeyEvent{Key: "Enter", Primary: true}))

	c.SetDraft("")
	assert.Equal(t, ActionNone, c.HandleKey(KeyEvent{Key: "Enter", Primary: true}), "empty draft never submits")

	assert.Equal(t, ActionClose, c.HandleKey(KeyEvent{Key: "Escape"}))
	assert.False(t, c.IsOpen())
}

func TestComposerSetDraftIgnoredWhileClosed(t *testing.T) {
	var c Composer
	c.SetDraft("typed into the void")
	assert.Empty(t, c.Draft())
}
