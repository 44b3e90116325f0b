package unrolled

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorSteppingAcrossChunks(t *testing.T) {
	l := newIntList(t, 2, 1, 2, 3, 4, 5)

	c, err := l.Cursor(1)
	require.NoError(t, err)
	assert.True(t, c.Valid())
	assert.Equal(t, 1, c.Index())
	assert.Equal(t, 2, c.Value())

	require.True(t, c.Next())
	assert.Equal(t, 2, c.Index())
	assert.Equal(t, 3, c.Value(), "Next should cross into the second chunk")

	var forward []int
	for c.Valid() {
		forward = append(forward, c.Value())
		c.Next()
	}
	assert.Equal(t, []int{3, 4, 5}, forward)
	assert.Equal(t, 5, c.Index(), "stepping off the back leaves Index at Len")
	assert.False(t, c.Next())

	require.NoError(t, c.Seek(4))
	var backward []int
	for c.Valid() {
		backward = append(backward, c.Value())
		c.Prev()
	}
	assert.Equal(t, []int{5, 4, 3, 2, 1}, backward)
	assert.Equal(t, -1, c.Index())
	assert.False(t, c.Prev())
	assert.Equal(t, 0, c.Value())
	assert.ErrorIs(t, c.Set(9), ErrInvalidCursor)
}

func TestCursorSet(t *testing.T) {
	l := newIntList(t, 3, 1, 2, 3, 4)

	c, err := l.Cursor(0)
	require.NoError(t, err)
	for c.Valid() {
		require.NoError(t, c.Set(c.Value()*10))
		c.Next()
	}
	assert.Equal(t, []int{10, 20, 30, 40}, l.Slice())
}

func TestCursorSeekBounds(t *testing.T) {
	l := newIntList(t, 2, 1, 2, 3)

	_, err := l.Cursor(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = l.Cursor(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	empty := newIntList(t, 2)
	_, err = empty.Cursor(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	c, err := l.Cursor(2)
	require.NoError(t, err)
	assert.ErrorIs(t, c.Seek(5), ErrIndexOutOfRange)
	assert.Equal(t, 2, c.Index(), "failed Seek must not move the cursor")
	assert.Equal(t, 3, c.Value())
}

func TestCursorFind(t *testing.T) {
	l := newIntList(t, 2, 1, 2, 3, 4, 5)
	even := func(v int) bool { return v%2 == 0 }

	c, err := l.Cursor(0)
	require.NoError(t, err)

	require.True(t, c.FindNext(even))
	assert.Equal(t, 1, c.Index())
	require.True(t, c.FindNext(even))
	assert.Equal(t, 3, c.Index())
	assert.Equal(t, 4, c.Value())

	assert.False(t, c.FindNext(even))
	assert.Equal(t, 3, c.Index(), "cursor stays put when nothing matches")

	require.True(t, c.FindPrev(func(v int) bool { return v == 1 }))
	assert.Equal(t, 0, c.Index())
	assert.False(t, c.FindPrev(even))
	assert.Equal(t, 0, c.Index())
}
