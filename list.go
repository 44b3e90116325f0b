package unrolled

import (
	"fmt"
	"iter"
	"log/slog"
	"strings"
)

// List is an indexable sequence stored as a chain of fixed-capacity chunks.
//
// The zero value is an empty list with DefaultChunkCapacity. A List performs
// no internal synchronization; see Guarded for sharing one between
// goroutines.
type List[T any] struct {
	head     *chunk[T]
	size     int
	capacity int
	chunks   int // number of chunks in the chain
	log      *slog.Logger
}

// New creates an empty list configured by options.
func New[T any](options Options) (*List[T], error) {
	opts, err := options.resolve()
	if err != nil {
		return nil, err
	}
	l := &List[T]{
		capacity: opts.ChunkCapacity,
		log:      opts.Logger,
	}
	l.head = newChunk[T](l.capacity)
	l.chunks = 1
	return l, nil
}

// FromSlice creates a list holding a copy of values, in order.
func FromSlice[T any](options Options, values []T) (*List[T], error) {
	l, err := New[T](options)
	if err != nil {
		return nil, err
	}
	l.AppendAll(values...)
	return l, nil
}

// lazyInit prepares a zero-value List for use.
func (l *List[T]) lazyInit() {
	if l.head != nil {
		return
	}
	if l.capacity <= 0 {
		l.capacity = DefaultChunkCapacity
	}
	if l.log == nil {
		l.log = discardLogger
	}
	l.head = newChunk[T](l.capacity)
	l.chunks = 1
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.size
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// ChunkCapacity returns the fixed capacity of every chunk in the list.
func (l *List[T]) ChunkCapacity() int {
	l.lazyInit()
	return l.capacity
}

// Get returns the element at index.
func (l *List[T]) Get(index int) (T, error) {
	if err := l.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	c, local := l.locate(index)
	return c.get(local), nil
}

// Set replaces the element at index.
func (l *List[T]) Set(index int, v T) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}
	c, local := l.locate(index)
	c.set(local, v)
	return nil
}

// Insert places v at index, shifting later elements back by one. index may
// equal Len to append.
func (l *List[T]) Insert(index int, v T) error {
	if index < 0 || index > l.size {
		return fmt.Errorf("%w: insert at %d, want [0, %d]", ErrIndexOutOfRange, index, l.size)
	}
	l.lazyInit()

	c, local := l.locateInsert(index)
	if c.full() && local == c.count {
		// End of a full chunk: continue at the front of its successor.
		if c.next == nil {
			c.linkAfter(newChunk[T](l.capacity))
			l.grew(1)
		}
		c, local = c.next, 0
	}
	l.grew(c.insertAt(local, v))
	l.size++
	return nil
}

// Remove deletes and returns the element at index.
func (l *List[T]) Remove(index int) (T, error) {
	if err := l.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	c, local := l.locate(index)
	v := c.removeAt(local)
	l.size--
	if c.count == 0 {
		l.release(c)
	}
	return v, nil
}

// Append adds v at the end of the list.
func (l *List[T]) Append(v T) {
	_ = l.Insert(l.size, v)
}

// Prepend adds v at the front of the list.
func (l *List[T]) Prepend(v T) {
	_ = l.Insert(0, v)
}

// InsertAll inserts values starting at index, keeping their order.
func (l *List[T]) InsertAll(index int, values ...T) error {
	if index < 0 || index > l.size {
		return fmt.Errorf("%w: insert at %d, want [0, %d]", ErrIndexOutOfRange, index, l.size)
	}
	for i, v := range values {
		if err := l.Insert(index+i, v); err != nil {
			return err
		}
	}
	return nil
}

// AppendAll adds values at the end of the list, keeping their order.
func (l *List[T]) AppendAll(values ...T) {
	_ = l.InsertAll(l.size, values...)
}

// PrependAll adds values at the front of the list, keeping their order.
func (l *List[T]) PrependAll(values ...T) {
	_ = l.InsertAll(0, values...)
}

// Clear removes every element and releases all chunks but a fresh head.
func (l *List[T]) Clear() {
	l.lazyInit()
	released := l.chunks - 1
	l.head = newChunk[T](l.capacity)
	l.size = 0
	l.chunks = 1
	if released > 0 {
		l.log.Debug("chain cleared", "released", released)
	}
}

// First returns the first element.
func (l *List[T]) First() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return l.head.get(0), nil
}

// Last returns the last element.
func (l *List[T]) Last() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return l.Get(l.size - 1)
}

// RemoveFirst deletes and returns the first element.
func (l *List[T]) RemoveFirst() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return l.Remove(0)
}

// RemoveLast deletes and returns the last element.
func (l *List[T]) RemoveLast() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return l.Remove(l.size - 1)
}

// All returns an iterator over index/element pairs from front to back.
// Each call starts again from the head. The list must not be structurally
// modified while the iterator is in use.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for c := l.head; c != nil; c = c.next {
			for _, v := range c.values[:c.count] {
				if !yield(i, v) {
					return
				}
				i++
			}
		}
	}
}

// Values returns an iterator over the elements from front to back.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/element pairs from back to front.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		tail := l.tail()
		i := l.size - 1
		for c := tail; c != nil; c = c.prev {
			for j := c.count - 1; j >= 0; j-- {
				if !yield(i, c.values[j]) {
					return
				}
				i--
			}
		}
	}
}

// Slice returns a copy of the elements in order.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.size)
	for c := l.head; c != nil; c = c.next {
		out = append(out, c.values[:c.count]...)
	}
	return out
}

// Chunks returns a copy of each chunk's live elements, head first.
func (l *List[T]) Chunks() [][]T {
	var out [][]T
	for c := l.head; c != nil; c = c.next {
		out = append(out, append(make([]T, 0, c.count), c.values[:c.count]...))
	}
	return out
}

// String formats the elements as [a, b, c].
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	writeValues(&sb, l.Values())
	sb.WriteByte(']')
	return sb.String()
}

// DebugString formats the chunk layout as [[a, b] -> [c]].
func (l *List[T]) DebugString() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for c := l.head; c != nil; c = c.next {
		if c != l.head {
			sb.WriteString(" -> ")
		}
		sb.WriteByte('[')
		writeValues(&sb, func(yield func(T) bool) {
			for _, v := range c.values[:c.count] {
				if !yield(v) {
					return
				}
			}
		})
		sb.WriteByte(']')
	}
	sb.WriteByte(']')
	return sb.String()
}

func writeValues[T any](sb *strings.Builder, values iter.Seq[T]) {
	first := true
	for v := range values {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprint(sb, v)
	}
}
