package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionReadyRequiresBothFetches(t *testing.T) {
	s := NewSession("p1")

	assert.False(t, s.Ready())
	assert.False(t, s.Usable())

	require.True(t, s.ApplyPoster("p1", ""))
	assert.False(t, s.Ready())
	assert.True(t, s.Usable())

	require.True(t, s.ApplyComments("p1", []string{"c1", "c2"}, ""))
	assert.True(t, s.Ready())
	assert.Equal(t, []string{"c1", "c2"}, s.Comments())
}

func TestSessionFetchOrderDoesNotMatter(t *testing.T) {
	s := NewSession("p1")

	require.True(t, s.ApplyComments("p1", nil, ""))
	assert.False(t, s.Ready())

	require.True(t, s.ApplyPoster("p1", ""))
	assert.True(t, s.Ready())
}

func TestSessionDiscardsStaleResults(t *testing.T) {
	s := NewSession("p2")

	// Results for the poster the user already navigated away from.
	assert.False(t, s.ApplyPoster("p1", ""))
	assert.False(t, s.ApplyComments("p1", []string{"old"}, ""))

	assert.False(t, s.Ready())
	assert.Empty(t, s.Comments())
}

func TestSessionCommentFailureDoesNotBlockViewing(t *testing.T) {
	s := NewSession("p1")

	require.True(t, s.ApplyPoster("p1", ""))
	require.True(t, s.ApplyComments("p1", nil, "fetch failed"))

	assert.False(t, s.Ready())
	assert.True(t, s.Usable(), "viewer runs even when the panel failed")

	msg, failed := s.CommentsFailed()
	assert.True(t, failed)
	assert.Equal(t, "fetch failed", msg)
}

func TestSessionPosterFailure(t *testing.T) {
	s := NewSession("p1")

	require.True(t, s.ApplyPoster("p1", "not found"))
	assert.False(t, s.Usable())

	msg, failed := s.PosterFailed()
	assert.True(t, failed)
	assert.Equal(t, "not found", msg)
}

func TestSessionConfirmComment(t *testing.T) {
	s := NewSession("p1")
	require.True(t, s.ApplyComments("p1", []string{"c1"}, ""))

	// Appended only after the server said yes.
	s.ConfirmComment("c2")
	assert.Equal(t, []string{"c1", "c2"}, s.Comments())

	s.RemoveComment("c1")
	assert.Equal(t, []string{"c2"}, s.Comments())

	s.RemoveComment("missing")
	assert.Equal(t, []string{"c2"}, s.Comments())
}
