package difflib

// autoJunkMinLength is the length from which popular elements of the second
// sequence are treated as junk.
const autoJunkMinLength = 200

// Index maps every interesting element of the second sequence to the
// ascending positions at which it occurs. Junk elements and, for long
// sequences, popular elements are left out.
type Index[T comparable] struct {
	positions map[T][]int
	junk      map[T]struct{}
	popular   map[T]struct{}
}

func newIndex[T comparable](to []T, isJunk func(T) bool, autoJunk bool) *Index[T] {
	idx := &Index[T]{
		positions: map[T][]int{},
		junk:      map[T]struct{}{},
		popular:   map[T]struct{}{},
	}

	indexed := 0
	for i, v := range to {
		if _, ok := idx.junk[v]; ok {
			continue
		}
		if isJunk != nil && isJunk(v) {
			idx.junk[v] = struct{}{}
			continue
		}
		idx.positions[v] = append(idx.positions[v], i)
		indexed++
	}

	// A value is popular when it takes more than 1% of the indexed
	// positions. Junk values never reach positions, so they are never
	// counted twice.
	if autoJunk && len(to) >= autoJunkMinLength {
		for v, indices := range idx.positions {
			if len(indices)*100 > indexed {
				idx.popular[v] = struct{}{}
			}
		}
		for v := range idx.popular {
			delete(idx.positions, v)
		}
	}
	return idx
}

// Positions returns the ascending positions of v in the second sequence. It
// returns nil for unknown, junk and popular values.
func (idx *Index[T]) Positions(v T) []int {
	return idx.positions[v]
}

// IsJunk reports whether v was classified as junk by the junk predicate.
func (idx *Index[T]) IsJunk(v T) bool {
	_, ok := idx.junk[v]
	return ok
}

// IsPopular reports whether v was dropped from the index for being too
// common.
func (idx *Index[T]) IsPopular(v T) bool {
	_, ok := idx.popular[v]
	return ok
}
