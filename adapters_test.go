package unrolled

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDequeOnList(t *testing.T) {
	var d Deque[int] = newIntList(t, 2)

	d.PushBack(2)
	d.PushBack(3)
	d.PushFront(1)
	d.PushFront(0)

	front, err := d.PeekFront()
	require.NoError(t, err)
	assert.Equal(t, 0, front)
	back, err := d.PeekBack()
	require.NoError(t, err)
	assert.Equal(t, 3, back)

	var got []int
	for {
		v, err := d.PopFront()
		if err != nil {
			assert.ErrorIs(t, err, ErrEmpty)
			break
		}
		got = append(got, v)
		if v, err := d.PopBack(); err == nil {
			got = append(got, v)
		}
	}
	assert.Equal(t, []int{0, 3, 1, 2}, got)

	_, err = d.PeekFront()
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = d.PeekBack()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestStack(t *testing.T) {
	s, err := NewStack[string](Options{ChunkCapacity: 2})
	require.NoError(t, err)
	assert.True(t, s.IsEmpty())

	for _, v := range []string{"a", "b", "c"} {
		s.Push(v)
	}
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"a", "b", "c"}, slices.Collect(s.Values()))

	top, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, "c", top)

	for _, want := range []string{"c", "b", "a"} {
		v, err := s.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	_, err = s.Pop()
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = s.Peek()
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = NewStack[int](Options{ChunkCapacity: -3})
	assert.ErrorIs(t, err, ErrInvalidCapacity)
}

func TestQueue(t *testing.T) {
	q, err := NewQueue[int](Options{ChunkCapacity: 3})
	require.NoError(t, err)

	for i := 1; i <= 7; i++ {
		q.Enqueue(i)
	}
	assert.Equal(t, 7, q.Len())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, slices.Collect(q.Values()))

	head, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, 1, head)

	for want := 1; want <= 7; want++ {
		v, err := q.Dequeue()
		require.NoError(t, err)
		assert.Equal(t, want, v)
		require.NoError(t, q.list.verify())
	}
	assert.True(t, q.IsEmpty())
	_, err = q.Dequeue()
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = NewQueue[int](Options{ChunkCapacity: -1})
	assert.ErrorIs(t, err, ErrInvalidCapacity)
}
