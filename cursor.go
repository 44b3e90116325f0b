package unrolled

// Cursor is a position within a List that steps across chunk boundaries
// without descending from the head again.
//
// A cursor is invalidated by any structural change to its list (Insert,
// Remove, Clear, Compact, DeleteFunc). Set through the cursor or the list is
// safe.
type Cursor[T any] struct {
	list *List[T]

	node  *chunk[T] // nil once the cursor has stepped off either end
	local int
	index int
}

// Cursor returns a cursor positioned at index.
func (l *List[T]) Cursor(index int) (*Cursor[T], error) {
	c := &Cursor[T]{list: l}
	if err := c.Seek(index); err != nil {
		return nil, err
	}
	return c, nil
}

// Seek moves the cursor to an absolute index.
func (c *Cursor[T]) Seek(index int) error {
	if err := c.list.checkIndex(index); err != nil {
		return err
	}
	c.node, c.local = c.list.locate(index)
	c.index = index
	return nil
}

// Valid reports whether the cursor is positioned on an element.
func (c *Cursor[T]) Valid() bool {
	return c.node != nil
}

// Index returns the cursor's absolute index. After stepping off the front it
// is -1; after stepping off the back it equals the list's length.
func (c *Cursor[T]) Index() int {
	return c.index
}

// Value returns the element under the cursor, or the zero value when the
// cursor is not valid.
func (c *Cursor[T]) Value() T {
	if c.node == nil {
		var zero T
		return zero
	}
	return c.node.get(c.local)
}

// Set replaces the element under the cursor.
func (c *Cursor[T]) Set(v T) error {
	if c.node == nil {
		return ErrInvalidCursor
	}
	c.node.set(c.local, v)
	return nil
}

// Next advances to the following element and reports whether the cursor is
// still valid.
func (c *Cursor[T]) Next() bool {
	if c.node == nil {
		return false
	}
	c.node, c.local = stepForward(c.node, c.local)
	c.index++
	return c.node != nil
}

// Prev moves to the preceding element and reports whether the cursor is
// still valid.
func (c *Cursor[T]) Prev() bool {
	if c.node == nil {
		return false
	}
	c.node, c.local = stepBackward(c.node, c.local)
	c.index--
	return c.node != nil
}

// FindNext moves the cursor to the next element after it that satisfies
// match. The cursor is left in place when there is none.
func (c *Cursor[T]) FindNext(match func(T) bool) bool {
	if c.node == nil {
		return false
	}
	node, local, index := c.node, c.local, c.index
	for {
		node, local = stepForward(node, local)
		index++
		if node == nil {
			return false
		}
		if match(node.get(local)) {
			c.node, c.local, c.index = node, local, index
			return true
		}
	}
}

// FindPrev moves the cursor to the nearest element before it that satisfies
// match. The cursor is left in place when there is none.
func (c *Cursor[T]) FindPrev(match func(T) bool) bool {
	if c.node == nil {
		return false
	}
	node, local, index := c.node, c.local, c.index
	for {
		node, local = stepBackward(node, local)
		index--
		if node == nil {
			return false
		}
		if match(node.get(local)) {
			c.node, c.local, c.index = node, local, index
			return true
		}
	}
}

func stepForward[T any](n *chunk[T], local int) (*chunk[T], int) {
	if local+1 < n.count {
		return n, local + 1
	}
	if n.next == nil {
		return nil, 0
	}
	return n.next, 0
}

func stepBackward[T any](n *chunk[T], local int) (*chunk[T], int) {
	if local > 0 {
		return n, local - 1
	}
	if n.prev == nil {
		return nil, 0
	}
	return n.prev, n.prev.count - 1
}
