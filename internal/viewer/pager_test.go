package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagerUnloaded(t *testing.T) {
	p := NewPager()

	assert.False(t, p.Loaded())
	assert.Equal(t, 0, p.Current())

	assert.False(t, p.Next())
	assert.False(t, p.Prev())
	assert.False(t, p.JumpTo(3))
	assert.Equal(t, 0, p.Current())
}

func TestPagerSetNumPages(t *testing.T) {
	p := NewPager()

	require.NoError(t, p.SetNumPages(5))
	assert.True(t, p.Loaded())
	assert.Equal(t, 1, p.Current())
	assert.Equal(t, 5, p.NumPages())

	assert.ErrorIs(t, NewPager().SetNumPages(0), ErrInvalidPageCount)
	assert.ErrorIs(t, NewPager().SetNumPages(-3), ErrInvalidPageCount)
}

func TestPagerNextClampsAtLastPage(t *testing.T) {
	p := NewPager()
	require.NoError(t, p.SetNumPages(3))

	assert.True(t, p.Next())
	assert.True(t, p.Next())
	assert.Equal(t, 3, p.Current())

	// Hammering Next past the end stays put.
	for i := 0; i < 5; i++ {
		assert.False(t, p.Next())
	}
	assert.Equal(t, 3, p.Current())
}

func TestPagerPrevClampsAtFirstPage(t *testing.T) {
	p := NewPager()
	require.NoError(t, p.SetNumPages(3))

	assert.False(t, p.Prev())
	assert.Equal(t, 1, p.Current())
}

func TestPagerJumpTo(t *testing.T) {
	tests := []struct {
		name     string
		numPages int
		jump     int
		want     int
		changed  bool
	}{
		{"in range", 10, 7, 7, true},
		{"below range clamps to first", 10, -2, 1, false},
		{"zero clamps to first", 10, 0, 1, false},
		{"above range clamps to last", 10, 42, 10, true},
		{"same page is a no-op", 10, 1, 1, false},
		{"single page document", 1, 5, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPager()
			require.NoError(t, p.SetNumPages(tt.numPages))

			assert.Equal(t, tt.changed, p.JumpTo(tt.jump))
			assert.Equal(t, tt.want, p.Current())
		})
	}
}

func TestPagerShrinkingDocumentSnapsCurrentIntoRange(t *testing.T) {
	p := NewPager()
	require.NoError(t, p.SetNumPages(10))
	require.True(t, p.JumpTo(9))

	require.NoError(t, p.SetNumPages(4))
	assert.Equal(t, 4, p.Current())
}
