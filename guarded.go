package unrolled

import "sync"

// Guarded serializes access to a List shared between goroutines.
type Guarded[T any] struct {
	mu   sync.Mutex
	list *List[T]
}

// NewGuarded wraps l. The caller must not use l directly afterwards.
func NewGuarded[T any](l *List[T]) *Guarded[T] {
	return &Guarded[T]{list: l}
}

// Do runs fn with exclusive access to the list and returns its error.
// fn must not retain the list, its iterators or cursors after returning.
func (g *Guarded[T]) Do(fn func(l *List[T]) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn(g.list)
}

// Append adds v at the end of the list.
func (g *Guarded[T]) Append(v T) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.list.Append(v)
}

// Get returns the element at index.
func (g *Guarded[T]) Get(index int) (T, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.list.Get(index)
}

// Len returns the number of elements.
func (g *Guarded[T]) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.list.Len()
}

// Snapshot returns a copy of the elements in order.
func (g *Guarded[T]) Snapshot() []T {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.list.Slice()
}
