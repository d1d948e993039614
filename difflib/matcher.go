package difflib

import "fmt"

// DefaultContextSize is the number of unchanged elements kept around each
// change by GroupedOperations unless SetContextSize says otherwise.
const DefaultContextSize = 3

// SequenceMatcher compares two sequences of comparable elements. It looks
// for the longest run both sequences share that holds no junk, then repeats
// the search on the pieces left and right of that run, in the manner of
// Ratcliff/Obershelp pattern matching. The edit scripts it derives are not
// minimal, but they line up the way a reader expects.
//
// Junk elements never anchor a match, but identical junk adjacent to a match
// is absorbed into it. When the second sequence has 200 elements or more,
// elements that make up more than 1% of it are treated as junk too
// ("autojunk"), unless autojunk is disabled.
//
// Matching is quadratic in the worst case and linear in the best. Between
// the two, the cost grows with the number of elements the sequences share.
//
// The sequences are never modified. Derived results are computed lazily and
// cached, so a SequenceMatcher must not be shared between goroutines without
// external locking.
type SequenceMatcher[T comparable] struct {
	from        []T
	to          []T
	index       *Index[T]
	contextSize int

	matches     []Match
	blocks      []Match
	operations  []Operation
	groups      []OperationGroup
	fullToCount map[T]int
}

// NewMatcher returns a matcher comparing from with to. No element is junk and
// autojunk is enabled.
func NewMatcher[T comparable](from, to []T) *SequenceMatcher[T] {
	return NewMatcherWithJunk(from, to, true, nil)
}

// NewMatcherWithJunk returns a matcher comparing from with to. isJunk may be
// nil; otherwise it must be a pure function. autoJunk enables the popular
// element heuristic.
func NewMatcherWithJunk[T comparable](from, to []T, autoJunk bool, isJunk func(T) bool) *SequenceMatcher[T] {
	return newMatcherWithIndex(from, to, newIndex(to, isJunk, autoJunk))
}

func newMatcherWithIndex[T comparable](from, to []T, index *Index[T]) *SequenceMatcher[T] {
	return &SequenceMatcher[T]{
		from:        from,
		to:          to,
		index:       index,
		contextSize: DefaultContextSize,
	}
}

// From returns the first sequence.
func (m *SequenceMatcher[T]) From() []T { return m.from }

// To returns the second sequence.
func (m *SequenceMatcher[T]) To() []T { return m.to }

// ToIndex returns the ascending positions at which v occurs in the second
// sequence, leaving out junk and popular values.
func (m *SequenceMatcher[T]) ToIndex(v T) []int {
	return m.index.Positions(v)
}

// ContextSize returns the number of context elements used by
// GroupedOperations.
func (m *SequenceMatcher[T]) ContextSize() int { return m.contextSize }

// SetContextSize changes the number of context elements used by
// GroupedOperations. It panics if n is negative.
func (m *SequenceMatcher[T]) SetContextSize(n int) {
	if n < 0 {
		panic(fmt.Sprintf("difflib: negative context size %d", n))
	}
	if n != m.contextSize {
		m.contextSize = n
		m.groups = nil
	}
}

// LongestMatch returns the longest run shared by from[fromLo:fromHi] and
// to[toLo:toHi] as a Match (i, j, k) with from[i:i+k] == to[j:j+k].
//
// Ties go to the run starting first in from, then to the one starting first
// in to. Without junk, every other shared run (i', j', k') inside the ranges
// satisfies
//
//	k >= k'
//	i <= i'
//	j <= j' if i == i'
//
// Junk never takes part in the search itself. The run found without it is
// grown over equal non-junk neighbors first, then over equal junk neighbors,
// so junk only ends up in a match when it borders one.
//
// A Match of size 0 at (fromLo, toLo) means the ranges share nothing.
//
// Upper bounds past the end of a sequence are clamped to its length. Negative
// bounds and inverted ranges are programming errors and panic.
func (m *SequenceMatcher[T]) LongestMatch(fromLo, fromHi, toLo, toHi int) Match {
	fromHi = min(fromHi, len(m.from))
	toHi = min(toHi, len(m.to))
	if fromLo < 0 || toLo < 0 || fromLo > fromHi || toLo > toHi {
		panic(fmt.Sprintf("difflib: invalid ranges from[%d:%d] to[%d:%d]", fromLo, fromHi, toLo, toHi))
	}

	// Shared ends are not trimmed before searching. For "ab" against "acab"
	// trimming would keep "a" at the front and report "ca" inserted, where a
	// reader sees "ac" added before "ab".
	besti, bestj, bestsize := fromLo, toLo, 0

	// runs[j] is the length of the longest junk-free match ending with
	// from[i-1] and to[j].
	runs := map[int]int{}
	for i := fromLo; i < fromHi; i++ {
		next := map[int]int{}
		for _, j := range m.index.Positions(m.from[i]) {
			if j < toLo {
				continue
			}
			if j >= toHi {
				break
			}
			k := runs[j-1] + 1
			next[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		runs = next
	}

	// The index skips popular elements, so the run cannot contain any yet.
	// Grow it over equal neighbors that are not junk.
	for besti > fromLo && bestj > toLo &&
		!m.index.IsJunk(m.to[bestj-1]) &&
		m.from[besti-1] == m.to[bestj-1] {
		besti, bestj, bestsize = besti-1, bestj-1, bestsize+1
	}
	for besti+bestsize < fromHi && bestj+bestsize < toHi &&
		!m.index.IsJunk(m.to[bestj+bestsize]) &&
		m.from[besti+bestsize] == m.to[bestj+bestsize] {
		bestsize++
	}

	// Then grow it over equal junk neighbors. When the run is still empty,
	// this is the only way the ranges can match.
	for besti > fromLo && bestj > toLo &&
		m.index.IsJunk(m.to[bestj-1]) &&
		m.from[besti-1] == m.to[bestj-1] {
		besti, bestj, bestsize = besti-1, bestj-1, bestsize+1
	}
	for besti+bestsize < fromHi && bestj+bestsize < toHi &&
		m.index.IsJunk(m.to[bestj+bestsize]) &&
		m.from[besti+bestsize] == m.to[bestj+bestsize] {
		bestsize++
	}

	return Match{From: besti, To: bestj, Size: bestsize}
}

// Matches returns the matching blocks found by recursively applying
// LongestMatch, in increasing order of From and To. Blocks are reported as
// found: two adjacent blocks are not merged. There is no trailing sentinel.
func (m *SequenceMatcher[T]) Matches() []Match {
	if m.matches != nil {
		return m.matches
	}

	var collect func(fromLo, fromHi, toLo, toHi int, matched []Match) []Match
	collect = func(fromLo, fromHi, toLo, toHi int, matched []Match) []Match {
		match := m.LongestMatch(fromLo, fromHi, toLo, toHi)
		if match.Size == 0 {
			return matched
		}
		i, j, k := match.From, match.To, match.Size
		if fromLo < i && toLo < j {
			matched = collect(fromLo, i, toLo, j, matched)
		}
		matched = append(matched, match)
		if i+k < fromHi && j+k < toHi {
			matched = collect(i+k, fromHi, j+k, toHi, matched)
		}
		return matched
	}

	m.matches = collect(0, len(m.from), 0, len(m.to), []Match{})
	return m.matches
}

// Blocks returns Matches with adjacent blocks merged, followed by the
// sentinel (len(from), len(to), 0). The sentinel is the only block with size
// 0, and no two consecutive blocks describe adjacent equal runs.
func (m *SequenceMatcher[T]) Blocks() []Match {
	if m.blocks != nil {
		return m.blocks
	}

	matches := m.Matches()
	blocks := make([]Match, 0, len(matches)+1)
	cur := Match{}
	for _, b := range matches {
		if cur.From+cur.Size == b.From && cur.To+cur.Size == b.To {
			// Adjacent: grow the current block and keep comparing against it.
			cur.Size += b.Size
			continue
		}
		if cur.Size > 0 {
			blocks = append(blocks, cur)
		}
		cur = b
	}
	if cur.Size > 0 {
		blocks = append(blocks, cur)
	}

	m.blocks = append(blocks, Match{From: len(m.from), To: len(m.to), Size: 0})
	return m.blocks
}

// Operations returns the edit script turning from into to.
//
// The first operation starts at (0, 0) and each following one starts where
// the previous one ended, so the script partitions both sequences. Equal
// operations never follow each other. The result is cached and must not be
// modified.
func (m *SequenceMatcher[T]) Operations() []Operation {
	if m.operations != nil {
		return m.operations
	}

	i, j := 0, 0
	blocks := m.Blocks()
	ops := make([]Operation, 0, 2*len(blocks))
	for _, b := range blocks {
		// (i, j) is where the previous block ended. Whatever lies between
		// there and b is a change.
		switch {
		case i < b.From && j < b.To:
			ops = append(ops, Operation{OpReplace, i, b.From, j, b.To})
		case i < b.From:
			ops = append(ops, Operation{OpDelete, i, b.From, j, j})
		case j < b.To:
			ops = append(ops, Operation{OpInsert, i, i, j, b.To})
		}
		i, j = b.From+b.Size, b.To+b.Size
		// Only the sentinel is empty.
		if b.Size > 0 {
			ops = append(ops, Operation{OpEqual, b.From, i, b.To, j})
		}
	}
	m.operations = ops
	return m.operations
}

// GroupedOperations isolates change clusters by eliminating ranges with no
// changes. Each group keeps up to ContextSize unchanged elements around its
// changes; two changes separated by more than twice that many unchanged
// elements end up in different groups.
//
// With a context size of 0, groups hold only their changes and carry no
// empty equal operations.
//
// Comparing two empty sequences yields a single group holding
// equal(0, 0, 0, 0). Comparing identical sequences yields a single equal
// group.
func (m *SequenceMatcher[T]) GroupedOperations() []OperationGroup {
	if m.groups != nil {
		return m.groups
	}

	n := m.contextSize
	codes := append([]Operation(nil), m.Operations()...)
	if len(codes) == 0 {
		m.groups = []OperationGroup{{{OpEqual, 0, 0, 0, 0}}}
		return m.groups
	}

	// Unchanged runs at either end keep only the n elements next to a change.
	if c := codes[0]; c.Kind == OpEqual {
		codes[0] = Operation{OpEqual, max(c.FromBegin, c.FromEnd-n), c.FromEnd, max(c.ToBegin, c.ToEnd-n), c.ToEnd}
	}
	if c := codes[len(codes)-1]; c.Kind == OpEqual {
		codes[len(codes)-1] = Operation{OpEqual, c.FromBegin, min(c.FromEnd, c.FromBegin+n), c.ToBegin, min(c.ToEnd, c.ToBegin+n)}
	}

	nn := n + n
	var groups []OperationGroup
	var group OperationGroup
	for _, c := range codes {
		// An unchanged run longer than 2n closes the group. Its last n
		// elements open the next one.
		if c.Kind == OpEqual && c.FromLen() > nn {
			group = append(group, Operation{OpEqual, c.FromBegin, min(c.FromEnd, c.FromBegin+n), c.ToBegin, min(c.ToEnd, c.ToBegin+n)})
			groups = append(groups, group)
			group = nil
			c.FromBegin, c.ToBegin = max(c.FromBegin, c.FromEnd-n), max(c.ToBegin, c.ToEnd-n)
		}
		group = append(group, c)
	}
	if len(group) > 0 {
		groups = append(groups, group)
	}
	if n == 0 {
		for k, g := range groups {
			groups[k] = dropEmptyEqual(g)
		}
	}
	m.groups = groups
	return m.groups
}

// dropEmptyEqual returns g without its zero-length equal operations. A group
// with nothing else is returned as is.
func dropEmptyEqual(g OperationGroup) OperationGroup {
	kept := make(OperationGroup, 0, len(g))
	for _, op := range g {
		if op.Kind == OpEqual && op.FromLen() == 0 {
			continue
		}
		kept = append(kept, op)
	}
	if len(kept) == 0 {
		return g
	}
	return kept
}

// Ratio returns a measure of the sequences' similarity in [0, 1].
//
// It is 2*M/T, with M the number of matched elements and T the length of
// both sequences together. Identical sequences score 1, two empty ones
// included. Sequences with nothing in common score 0.
//
// Ratio runs the full matching unless Matches is already cached.
// QuickRatio and RealQuickRatio bound it from above for less.
func (m *SequenceMatcher[T]) Ratio() float64 {
	matches := 0
	for _, b := range m.Matches() {
		matches += b.Size
	}
	return calculateRatio(matches, len(m.from)+len(m.to))
}

// QuickRatio returns an upper bound on Ratio relatively quickly.
func (m *SequenceMatcher[T]) QuickRatio() float64 {
	// Count the elements both sequences hold, ignoring their order.
	if m.fullToCount == nil {
		m.fullToCount = make(map[T]int, len(m.to))
		for _, v := range m.to {
			m.fullToCount[v]++
		}
	}

	// left[v] is the number of copies of v in to not yet paired with one in
	// from.
	left := map[T]int{}
	matches := 0
	for _, v := range m.from {
		n, ok := left[v]
		if !ok {
			n = m.fullToCount[v]
		}
		left[v] = n - 1
		if n > 0 {
			matches++
		}
	}
	return calculateRatio(matches, len(m.from)+len(m.to))
}

// RealQuickRatio returns an upper bound on Ratio very quickly.
func (m *SequenceMatcher[T]) RealQuickRatio() float64 {
	la, lb := len(m.from), len(m.to)
	return calculateRatio(min(la, lb), la+lb)
}
