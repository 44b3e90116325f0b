package unrolled

// IndexFunc returns the index of the first element satisfying match, or -1.
func (l *List[T]) IndexFunc(match func(T) bool) int {
	for i, v := range l.All() {
		if match(v) {
			return i
		}
	}
	return -1
}

// LastIndexFunc returns the index of the last element satisfying match, or -1.
func (l *List[T]) LastIndexFunc(match func(T) bool) int {
	for i, v := range l.Backward() {
		if match(v) {
			return i
		}
	}
	return -1
}

// ContainsFunc reports whether any element satisfies match.
func (l *List[T]) ContainsFunc(match func(T) bool) bool {
	return l.IndexFunc(match) >= 0
}

// DeleteFunc removes every element satisfying del and returns how many were
// removed. Survivors keep their order and are packed densely.
func (l *List[T]) DeleteFunc(del func(T) bool) int {
	stats := l.repack(func(v T) bool { return !del(v) })
	if stats.ElementsRemoved > 0 {
		l.log.Debug("elements deleted", "removed", stats.ElementsRemoved,
			"released", stats.ChunksReleased, "len", l.size)
	}
	return stats.ElementsRemoved
}

// RetainFunc keeps only the elements satisfying keep and returns how many
// were removed.
func (l *List[T]) RetainFunc(keep func(T) bool) int {
	return l.DeleteFunc(func(v T) bool { return !keep(v) })
}

// Index returns the index of the first element equal to v, or -1.
func Index[T comparable](l *List[T], v T) int {
	return l.IndexFunc(func(x T) bool { return x == v })
}

// Contains reports whether l holds an element equal to v.
func Contains[T comparable](l *List[T], v T) bool {
	return Index(l, v) >= 0
}

// ContainsAll reports whether every value in vs occurs in l.
func ContainsAll[T comparable](l *List[T], vs ...T) bool {
	seen := make(map[T]struct{}, l.Len())
	for v := range l.Values() {
		seen[v] = struct{}{}
	}
	for _, v := range vs {
		if _, ok := seen[v]; !ok {
			return false
		}
	}
	return true
}

// ContainsAny reports whether at least one value in vs occurs in l.
func ContainsAny[T comparable](l *List[T], vs ...T) bool {
	want := make(map[T]struct{}, len(vs))
	for _, v := range vs {
		want[v] = struct{}{}
	}
	return l.ContainsFunc(func(x T) bool {
		_, ok := want[x]
		return ok
	})
}

// RemoveValue removes the first element equal to v and reports whether one
// was found.
func RemoveValue[T comparable](l *List[T], v T) bool {
	i := Index(l, v)
	if i < 0 {
		return false
	}
	_, err := l.Remove(i)
	return err == nil
}
