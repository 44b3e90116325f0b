package unrolled

// ChainStats describes the shape of a list's chunk chain.
type ChainStats struct {
	Len            int     // number of elements
	Chunks         int     // number of chunks in the chain
	ChunkCapacity  int     // slots per chunk
	UsedSlots      int     // equal to Len
	FreeSlots      int     // allocated but unused slots
	FillRatio      float64 // UsedSlots / allocated slots (0 for an empty chain)
	MergeablePairs int     // adjacent chunks whose elements would fit in one
}

// MaintenanceStats contains statistics from a maintenance run.
type MaintenanceStats struct {
	ChunksReleased  int // chunks unlinked from the chain
	ElementsRemoved int // elements dropped by a filter
}

// Stats walks the chain and reports its shape.
func (l *List[T]) Stats() ChainStats {
	l.lazyInit()

	stats := ChainStats{
		Len:           l.size,
		ChunkCapacity: l.capacity,
		UsedSlots:     l.size,
	}
	for c := l.head; c != nil; c = c.next {
		stats.Chunks++
		if c.next != nil && c.count+c.next.count <= l.capacity {
			stats.MergeablePairs++
		}
	}

	allocated := stats.Chunks * l.capacity
	stats.FreeSlots = allocated - l.size
	if allocated > 0 {
		stats.FillRatio = float64(l.size) / float64(allocated)
	}
	return stats
}

// Compact packs the elements so every chunk but the last is full, releasing
// chunks left sparse by removals. Removal never does this on its own; call
// Compact when fragmentation matters.
func (l *List[T]) Compact() MaintenanceStats {
	stats := l.repack(nil)
	if stats.ChunksReleased > 0 {
		l.log.Debug("chain compacted", "released", stats.ChunksReleased, "chunks", l.chunks)
	}
	return stats
}

// repack moves every element accepted by keep (all elements when keep is nil)
// towards the head in one pass, leaving the chain dense, and unlinks the
// chunks that end up unused.
//
// The write position never passes the read position, so elements are only
// overwritten after they have been read.
func (l *List[T]) repack(keep func(T) bool) MaintenanceStats {
	l.lazyInit()

	var stats MaintenanceStats
	w, wi := l.head, 0
	for r := l.head; r != nil; r = r.next {
		n := r.count
		for j := 0; j < n; j++ {
			v := r.values[j]
			if keep != nil && !keep(v) {
				stats.ElementsRemoved++
				continue
			}
			if wi == l.capacity {
				w, wi = w.next, 0
			}
			w.values[wi] = v
			wi++
		}
	}

	for c := l.head; c != w; c = c.next {
		c.count = l.capacity
	}
	w.clearFrom(wi)

	for c := w.next; c != nil; {
		next := c.next
		c.next, c.prev = nil, nil
		c = next
		stats.ChunksReleased++
	}
	w.next = nil

	l.chunks -= stats.ChunksReleased
	l.size -= stats.ElementsRemoved
	return stats
}
