package unrolled

// chunk is one link in the chain: a fixed-capacity array segment holding a
// contiguous run of the list's elements.
//
// Slots [0, count) are live. Slots past count always hold the zero value so
// removed elements can be collected.
type chunk[T any] struct {
	values []T
	count  int

	// next and prev are non-owning links; the List owns the chain as a whole.
	next *chunk[T]
	prev *chunk[T]
}

// newChunk creates an empty chunk with the given capacity.
func newChunk[T any](capacity int) *chunk[T] {
	return &chunk[T]{values: make([]T, capacity)}
}

// full reports whether the chunk has no free slot.
func (c *chunk[T]) full() bool {
	return c.count == len(c.values)
}

// get returns the element at a local index.
func (c *chunk[T]) get(local int) T {
	return c.values[local]
}

// set replaces the element at a local index.
func (c *chunk[T]) set(local int, v T) {
	c.values[local] = v
}

// insertAt stores v at local, shifting later elements right. If the chunk is
// full its last element is overflowed into the next chunk first, so local
// must be < count in that case. Returns the number of chunks allocated.
func (c *chunk[T]) insertAt(local int, v T) int {
	allocated := 0
	if c.full() {
		allocated = c.overflowLast()
	}
	copy(c.values[local+1:c.count+1], c.values[local:c.count])
	c.values[local] = v
	c.count++
	return allocated
}

// prepend stores v at index 0. The chunk must not be full.
func (c *chunk[T]) prepend(v T) {
	copy(c.values[1:c.count+1], c.values[:c.count])
	c.values[0] = v
	c.count++
}

// popLast removes and returns the last live element.
func (c *chunk[T]) popLast() T {
	var zero T
	c.count--
	v := c.values[c.count]
	c.values[c.count] = zero
	return v
}

// overflowLast moves this chunk's last element to the front of next,
// allocating next when it is absent. When next is full too, the whole run of
// full chunks shifts one element forward, walking back from the end of the
// run so every receiving chunk has room. Returns the number of chunks
// allocated (0 or 1).
func (c *chunk[T]) overflowLast() int {
	end := c
	for end.next != nil && end.next.full() {
		end = end.next
	}

	allocated := 0
	if end.next == nil {
		end.linkAfter(newChunk[T](len(c.values)))
		allocated = 1
	}

	for k := end; ; k = k.prev {
		k.next.prepend(k.popLast())
		if k == c {
			break
		}
	}
	return allocated
}

// removeAt removes and returns the element at local, shifting later elements
// left.
func (c *chunk[T]) removeAt(local int) T {
	var zero T
	v := c.values[local]
	copy(c.values[local:c.count-1], c.values[local+1:c.count])
	c.count--
	c.values[c.count] = zero
	return v
}

// linkAfter splices n into the chain directly after c.
func (c *chunk[T]) linkAfter(n *chunk[T]) {
	n.prev = c
	n.next = c.next
	if c.next != nil {
		c.next.prev = n
	}
	c.next = n
}

// unlink removes c from the chain, connecting its neighbours directly.
func (c *chunk[T]) unlink() {
	if c.prev != nil {
		c.prev.next = c.next
	}
	if c.next != nil {
		c.next.prev = c.prev
	}
	c.next = nil
	c.prev = nil
}

// clearFrom zeroes the slots at and after local and truncates count.
func (c *chunk[T]) clearFrom(local int) {
	clear(c.values[local:])
	c.count = local
}
