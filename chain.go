package unrolled

import "fmt"

// checkIndex validates an element index against [0, size).
func (l *List[T]) checkIndex(index int) error {
	if index < 0 || index >= l.size {
		return fmt.Errorf("%w: index %d, want [0, %d)", ErrIndexOutOfRange, index, l.size)
	}
	return nil
}

// locate translates a valid element index into its chunk and local index.
// An index that lands exactly at a chunk's count belongs to the next chunk.
func (l *List[T]) locate(index int) (*chunk[T], int) {
	c := l.head
	local := index
	for local >= c.count {
		local -= c.count
		c = c.next
		if c == nil {
			panic(fmt.Errorf("%w: index %d ran past the tail (len %d)", ErrCorrupted, index, l.size))
		}
	}
	return c, local
}

// locateInsert translates an insertion index into a chunk and local index.
// An index that lands exactly at a chunk's count stays in that chunk, so
// appends fill the tail before a new chunk is allocated.
func (l *List[T]) locateInsert(index int) (*chunk[T], int) {
	c := l.head
	local := index
	for local > c.count {
		local -= c.count
		c = c.next
		if c == nil {
			panic(fmt.Errorf("%w: insert index %d ran past the tail (len %d)", ErrCorrupted, index, l.size))
		}
	}
	return c, local
}

// tail returns the last chunk of the chain, or nil for an uninitialized list.
func (l *List[T]) tail() *chunk[T] {
	c := l.head
	for c != nil && c.next != nil {
		c = c.next
	}
	return c
}

// grew records newly allocated chunks.
func (l *List[T]) grew(n int) {
	if n == 0 {
		return
	}
	l.chunks += n
	l.log.Debug("chunk allocated", "chunks", l.chunks, "len", l.size)
}

// release unlinks a chunk that has just become empty. The sole chunk stays
// as the empty head; an emptied head with a successor hands headship over.
func (l *List[T]) release(c *chunk[T]) {
	if c == l.head {
		if c.next == nil {
			return
		}
		l.head = c.next
	}
	c.unlink()
	l.chunks--
	l.log.Debug("chunk unlinked", "chunks", l.chunks, "len", l.size)
}

// verify checks the chain against the list's bookkeeping.
func (l *List[T]) verify() error {
	if l.head == nil {
		if l.size != 0 || l.chunks != 0 {
			return fmt.Errorf("%w: no head but len %d, chunks %d", ErrCorrupted, l.size, l.chunks)
		}
		return nil
	}
	if l.head.prev != nil {
		return fmt.Errorf("%w: head has a predecessor", ErrCorrupted)
	}

	total, n := 0, 0
	for c := l.head; c != nil; c = c.next {
		n++
		if len(c.values) != l.capacity {
			return fmt.Errorf("%w: chunk %d has capacity %d, want %d", ErrCorrupted, n-1, len(c.values), l.capacity)
		}
		if c.count < 0 || c.count > l.capacity {
			return fmt.Errorf("%w: chunk %d count %d outside [0, %d]", ErrCorrupted, n-1, c.count, l.capacity)
		}
		if c.count == 0 && (c != l.head || c.next != nil) {
			return fmt.Errorf("%w: chunk %d is empty", ErrCorrupted, n-1)
		}
		if c.next != nil && c.next.prev != c {
			return fmt.Errorf("%w: chunk %d back-link broken", ErrCorrupted, n)
		}
		total += c.count
	}

	if total != l.size {
		return fmt.Errorf("%w: chunks hold %d elements, len is %d", ErrCorrupted, total, l.size)
	}
	if n != l.chunks {
		return fmt.Errorf("%w: chain has %d chunks, recorded %d", ErrCorrupted, n, l.chunks)
	}
	return nil
}
