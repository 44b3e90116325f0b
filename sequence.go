package unrolled

import "iter"

// Sequence is a read-only indexable sequence.
type Sequence[T any] interface {
	// Len returns the number of elements.
	Len() int

	// Get returns the element at index, or an error wrapping
	// ErrIndexOutOfRange.
	Get(index int) (T, error)

	// All iterates index/element pairs in order.
	All() iter.Seq2[int, T]
}

// Mutable is a Sequence that supports positional edits.
type Mutable[T any] interface {
	Sequence[T]

	Set(index int, v T) error
	Insert(index int, v T) error
	Remove(index int) (T, error)
}

// Deque supports insertion and removal at both ends.
type Deque[T any] interface {
	PushFront(v T)
	PushBack(v T)
	PopFront() (T, error)
	PopBack() (T, error)
	PeekFront() (T, error)
	PeekBack() (T, error)
}

var (
	_ Mutable[int] = (*List[int])(nil)
	_ Deque[int]   = (*List[int])(nil)
)

// Equal reports whether a and b hold the same elements in the same order,
// comparing elements with eq.
func Equal[T any](a, b Sequence[T], eq func(x, y T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	next, stop := iter.Pull2(b.All())
	defer stop()
	for _, x := range a.All() {
		_, y, ok := next()
		if !ok || !eq(x, y) {
			return false
		}
	}
	_, _, more := next()
	return !more
}
