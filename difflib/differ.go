package difflib

import "fmt"

// DefaultCutOffRatio is the similarity a pair of lines needs before a
// ReadableWriter shows intraline guides for it.
const DefaultCutOffRatio = 0.75

// FullContext, used as a context size, keeps every unchanged element so a
// single hunk covers both sequences.
const FullContext = -1

// Edit is an Operation together with the elements it covers.
type Edit[T comparable] struct {
	Operation
	From []T // from[FromBegin:FromEnd]
	To   []T // to[ToBegin:ToEnd]
}

// Hunk is one group of edits, in order and without gaps.
type Hunk[T comparable] struct {
	Edits []Edit[T]
}

// FromRange returns the half-open range h spans in the first sequence.
func (h Hunk[T]) FromRange() (begin, end int) {
	return h.Edits[0].FromBegin, h.Edits[len(h.Edits)-1].FromEnd
}

// ToRange returns the half-open range h spans in the second sequence.
func (h Hunk[T]) ToRange() (begin, end int) {
	return h.Edits[0].ToBegin, h.Edits[len(h.Edits)-1].ToEnd
}

// Summary counts operations by kind.
type Summary struct {
	Equal    int
	Inserted int
	Deleted  int
	Replaced int
}

func (s Summary) String() string {
	return fmt.Sprintf("%d equal, %d inserted, %d deleted, %d replaced",
		s.Equal, s.Inserted, s.Deleted, s.Replaced)
}

// Summarize tallies ops by kind.
func Summarize(ops []Operation) Summary {
	var s Summary
	for _, op := range ops {
		switch op.Kind {
		case OpEqual:
			s.Equal++
		case OpInsert:
			s.Inserted++
		case OpDelete:
			s.Deleted++
		case OpReplace:
			s.Replaced++
		}
	}
	return s
}

// Writer receives the structured events produced by a Differ and renders
// them. Any error it returns is handed back to the Differ's caller.
type Writer[T comparable] interface {
	// WriteIdentical is called instead of any hunk when both sequences are
	// equal.
	WriteIdentical(from, to []T) error
	// WriteReplaced is called instead of any hunk when the sequences have
	// nothing in common, so the second one fully replaces the first one.
	WriteReplaced(from, to []T) error
	// WriteHunk is called once per hunk, in order.
	WriteHunk(h Hunk[T]) error
	// WriteSummary reports operation totals.
	WriteSummary(s Summary) error
}

// CutOffSetter is implemented by writers that pair similar elements. Differ
// hands them its cut-off ratio before writing.
type CutOffSetter interface {
	SetCutOffRatio(ratio float64)
}

type differConfig struct {
	cutOffRatio float64
	contextSize int
}

// DifferOption configures a Differ.
type DifferOption func(*differConfig)

// WithCutOffRatio sets the similarity threshold used by pairing writers. It
// panics if ratio is outside [0, 1].
func WithCutOffRatio(ratio float64) DifferOption {
	if ratio < 0 || ratio > 1 {
		panic(fmt.Sprintf("difflib: cut-off ratio %v out of [0, 1]", ratio))
	}
	return func(c *differConfig) { c.cutOffRatio = ratio }
}

// WithContextSize sets the initial number of context elements around each
// change. FullContext keeps everything.
func WithContextSize(n int) DifferOption {
	if n < 0 && n != FullContext {
		panic(fmt.Sprintf("difflib: negative context size %d", n))
	}
	return func(c *differConfig) { c.contextSize = n }
}

// Differ decides whether two sequences deserve a diff and streams the diff
// to a Writer.
type Differ[T comparable] struct {
	matcher     *SequenceMatcher[T]
	cutOffRatio float64
	contextSize int
}

// NewDiffer returns a Differ over m.
func NewDiffer[T comparable](m *SequenceMatcher[T], opts ...DifferOption) *Differ[T] {
	c := differConfig{
		cutOffRatio: DefaultCutOffRatio,
		contextSize: DefaultContextSize,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return &Differ[T]{
		matcher:     m,
		cutOffRatio: c.cutOffRatio,
		contextSize: c.contextSize,
	}
}

// Matcher returns the underlying SequenceMatcher.
func (d *Differ[T]) Matcher() *SequenceMatcher[T] { return d.matcher }

// CutOffRatio returns the similarity threshold handed to pairing writers.
func (d *Differ[T]) CutOffRatio() float64 { return d.cutOffRatio }

// ContextSize returns the configured context size, possibly FullContext.
func (d *Differ[T]) ContextSize() int { return d.contextSize }

// SetContextSize changes the context size used by the next Diff.
func (d *Differ[T]) SetContextSize(n int) {
	if n < 0 && n != FullContext {
		panic(fmt.Sprintf("difflib: negative context size %d", n))
	}
	d.contextSize = n
}

// NeedDiff reports whether the sequences differ but still share something.
// Identical sequences need no diff, and for disjoint ones an element level
// diff says nothing a full replacement does not.
func (d *Differ[T]) NeedDiff() bool {
	r := d.matcher.Ratio()
	return r > 0 && r < 1
}

// Diff writes the difference between the two sequences to w: a single
// WriteIdentical or WriteReplaced event when NeedDiff is false, one WriteHunk
// per operation group otherwise.
func (d *Differ[T]) Diff(w Writer[T]) error {
	if s, ok := w.(CutOffSetter); ok {
		s.SetCutOffRatio(d.cutOffRatio)
	}

	from, to := d.matcher.From(), d.matcher.To()
	if !d.NeedDiff() {
		if d.matcher.Ratio() >= 1 {
			if err := w.WriteIdentical(from, to); err != nil {
				return fmt.Errorf("writing identical content: %w", err)
			}
			return nil
		}
		if err := w.WriteReplaced(from, to); err != nil {
			return fmt.Errorf("writing replacement: %w", err)
		}
		return nil
	}

	n := d.contextSize
	if n == FullContext {
		n = max(len(from), len(to))
	}
	d.matcher.SetContextSize(n)
	for i, g := range d.matcher.GroupedOperations() {
		if err := w.WriteHunk(newHunk(g, from, to)); err != nil {
			return fmt.Errorf("writing hunk %d: %w", i, err)
		}
	}
	return nil
}

// WriteSummary tallies ops and reports the totals to w.
func (d *Differ[T]) WriteSummary(w Writer[T], ops []Operation) error {
	if err := w.WriteSummary(Summarize(ops)); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}

// IsSameContent reports whether groups describe two equal sequences: a single
// group made of a single equal operation.
func IsSameContent(groups []OperationGroup) bool {
	return len(groups) == 1 && len(groups[0]) == 1 && groups[0][0].Kind == OpEqual
}

func newHunk[T comparable](g OperationGroup, from, to []T) Hunk[T] {
	edits := make([]Edit[T], len(g))
	for i, op := range g {
		edits[i] = Edit[T]{
			Operation: op,
			From:      from[op.FromBegin:op.FromEnd],
			To:        to[op.ToBegin:op.ToEnd],
		}
	}
	return Hunk[T]{Edits: edits}
}
