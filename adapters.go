package unrolled

import "iter"

// PushFront inserts v at the front.
func (l *List[T]) PushFront(v T) {
	l.Prepend(v)
}

// PushBack inserts v at the back.
func (l *List[T]) PushBack(v T) {
	l.Append(v)
}

// PopFront removes and returns the front element.
func (l *List[T]) PopFront() (T, error) {
	return l.RemoveFirst()
}

// PopBack removes and returns the back element.
func (l *List[T]) PopBack() (T, error) {
	return l.RemoveLast()
}

// PeekFront returns the front element without removing it.
func (l *List[T]) PeekFront() (T, error) {
	return l.First()
}

// PeekBack returns the back element without removing it.
func (l *List[T]) PeekBack() (T, error) {
	return l.Last()
}

// Stack is a last-in first-out view of a List; the top is the list's tail.
type Stack[T any] struct {
	list *List[T]
}

// NewStack returns a stack backed by a new List configured by options.
func NewStack[T any](options Options) (*Stack[T], error) {
	l, err := New[T](options)
	if err != nil {
		return nil, err
	}
	return &Stack[T]{list: l}, nil
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.list.Append(v)
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, error) {
	return s.list.RemoveLast()
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, error) {
	return s.list.Last()
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int { return s.list.Len() }

// IsEmpty reports whether the stack is empty.
func (s *Stack[T]) IsEmpty() bool { return s.list.IsEmpty() }

// Values iterates from the bottom of the stack to the top.
func (s *Stack[T]) Values() iter.Seq[T] { return s.list.Values() }

// Queue is a first-in first-out view of a List; elements enter at the tail
// and leave from the head.
type Queue[T any] struct {
	list *List[T]
}

// NewQueue returns a queue backed by a new List configured by options.
func NewQueue[T any](options Options) (*Queue[T], error) {
	l, err := New[T](options)
	if err != nil {
		return nil, err
	}
	return &Queue[T]{list: l}, nil
}

// Enqueue adds v at the back of the queue.
func (q *Queue[T]) Enqueue(v T) {
	q.list.Append(v)
}

// Dequeue removes and returns the front element.
func (q *Queue[T]) Dequeue() (T, error) {
	return q.list.RemoveFirst()
}

// Peek returns the front element without removing it.
func (q *Queue[T]) Peek() (T, error) {
	return q.list.First()
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return q.list.Len() }

// IsEmpty reports whether the queue is empty.
func (q *Queue[T]) IsEmpty() bool { return q.list.IsEmpty() }

// Values iterates from the front of the queue to the back.
func (q *Queue[T]) Values() iter.Seq[T] { return q.list.Values() }
