// Package difflib compares sequences and generates human-readable diffs.
//
// The core is SequenceMatcher, a matcher in the Ratcliff/Obershelp family: it
// finds the longest contiguous junk-free matching run, then recurses on the
// pieces to the left and to the right of it. From the resulting matching
// blocks it derives an edit script (equal, insert, delete and replace
// operations) and groups that script into hunks with a bounded amount of
// context.
//
// Differ sits on top of a SequenceMatcher. It decides whether a diff is worth
// emitting at all and streams hunks to a Writer. The package ships several
// writers:
//
// - UnifiedWriter and ContextWriter emit the classic diff(1) formats
//
// - ReadableWriter emits an ndiff-style delta with intraline "? " guides
//
// - SummaryWriter emits a one line tally of the operations
//
// - Recorder keeps every event in memory
//
// Keep in mind this code is mostly suitable to output text differences in a
// human friendly way, there are no guarantees generated diffs are consumable
// by patch(1).
package difflib

import "fmt"

func calculateRatio(matches, length int) float64 {
	if length > 0 {
		return 2.0 * float64(matches) / float64(length)
	}
	return 1.0
}

// Match describes a run of Size equal elements starting at From in the first
// sequence and at To in the second one. A Match with Size 0 marks "no match"
// or the end of both sequences.
type Match struct {
	From int
	To   int
	Size int
}

func (m Match) String() string {
	return fmt.Sprintf("<from: %d, to: %d, size: %d>", m.From, m.To, m.Size)
}

// OpKind is the kind of an Operation.
type OpKind int

const (
	OpEqual OpKind = iota
	OpInsert
	OpDelete
	OpReplace
)

func (k OpKind) String() string {
	switch k {
	case OpEqual:
		return "equal"
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	case OpReplace:
		return "replace"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Tag returns the single letter difflib tag of k: 'e', 'i', 'd' or 'r'.
func (k OpKind) Tag() byte {
	switch k {
	case OpEqual:
		return 'e'
	case OpInsert:
		return 'i'
	case OpDelete:
		return 'd'
	case OpReplace:
		return 'r'
	default:
		panic(fmt.Sprintf("difflib: unknown OpKind %d", int(k)))
	}
}

// Operation describes how to turn from[FromBegin:FromEnd] into
// to[ToBegin:ToEnd]. Ranges are half-open.
//
//	OpEqual:   from[FromBegin:FromEnd] == to[ToBegin:ToEnd]
//	OpInsert:  to[ToBegin:ToEnd] is inserted at from[FromBegin], FromBegin == FromEnd
//	OpDelete:  from[FromBegin:FromEnd] is deleted, ToBegin == ToEnd
//	OpReplace: from[FromBegin:FromEnd] is replaced by to[ToBegin:ToEnd]
type Operation struct {
	Kind      OpKind
	FromBegin int
	FromEnd   int
	ToBegin   int
	ToEnd     int
}

func (o Operation) String() string {
	return fmt.Sprintf("<%s from: [%d, %d) to: [%d, %d)>",
		o.Kind, o.FromBegin, o.FromEnd, o.ToBegin, o.ToEnd)
}

// FromLen returns the number of elements o covers in the first sequence.
func (o Operation) FromLen() int { return o.FromEnd - o.FromBegin }

// ToLen returns the number of elements o covers in the second sequence.
func (o Operation) ToLen() int { return o.ToEnd - o.ToBegin }

// OperationGroup is one hunk: a non-empty, gapless run of operations.
type OperationGroup []Operation

// FromRange returns the half-open range the group spans in the first sequence.
func (g OperationGroup) FromRange() (begin, end int) {
	return g[0].FromBegin, g[len(g)-1].FromEnd
}

// ToRange returns the half-open range the group spans in the second sequence.
func (g OperationGroup) ToRange() (begin, end int) {
	return g[0].ToBegin, g[len(g)-1].ToEnd
}
