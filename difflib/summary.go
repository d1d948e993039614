package difflib

// SummaryWriter only renders summaries. Hunk events are tallied so that
// Total reports what a full diff would have contained.
type SummaryWriter[T comparable] struct {
	out   Output
	total Summary
}

// NewSummaryWriter returns a SummaryWriter rendering into out.
func NewSummaryWriter[T comparable](out Output) *SummaryWriter[T] {
	return &SummaryWriter[T]{out: out}
}

// Total returns the operations seen through WriteIdentical, WriteReplaced
// and WriteHunk so far.
func (w *SummaryWriter[T]) Total() Summary { return w.total }

func (w *SummaryWriter[T]) WriteIdentical(from, _ []T) error {
	if len(from) > 0 {
		w.total.Equal++
	}
	return nil
}

func (w *SummaryWriter[T]) WriteReplaced(from, to []T) error {
	switch {
	case len(from) == 0:
		w.total.Inserted++
	case len(to) == 0:
		w.total.Deleted++
	default:
		w.total.Replaced++
	}
	return nil
}

func (w *SummaryWriter[T]) WriteHunk(h Hunk[T]) error {
	for _, e := range h.Edits {
		switch e.Kind {
		case OpEqual:
			w.total.Equal++
		case OpInsert:
			w.total.Inserted++
		case OpDelete:
			w.total.Deleted++
		case OpReplace:
			w.total.Replaced++
		}
	}
	return nil
}

func (w *SummaryWriter[T]) WriteSummary(s Summary) error {
	return w.out.WriteLine(s.String(), StyleSummary)
}

// EventKind identifies a recorded Writer call.
type EventKind int

const (
	EventIdentical EventKind = iota
	EventReplaced
	EventHunk
	EventSummary
)

func (k EventKind) String() string {
	switch k {
	case EventIdentical:
		return "identical"
	case EventReplaced:
		return "replaced"
	case EventHunk:
		return "hunk"
	case EventSummary:
		return "summary"
	default:
		return "unknown"
	}
}

// Event is one Writer call captured by a Recorder. Only the fields relevant
// to Kind are set.
type Event[T comparable] struct {
	Kind    EventKind
	From    []T
	To      []T
	Hunk    Hunk[T]
	Summary Summary
}

// Recorder is a Writer keeping every event in memory.
type Recorder[T comparable] struct {
	Events []Event[T]
}

func (r *Recorder[T]) WriteIdentical(from, to []T) error {
	r.Events = append(r.Events, Event[T]{Kind: EventIdentical, From: from, To: to})
	return nil
}

func (r *Recorder[T]) WriteReplaced(from, to []T) error {
	r.Events = append(r.Events, Event[T]{Kind: EventReplaced, From: from, To: to})
	return nil
}

func (r *Recorder[T]) WriteHunk(h Hunk[T]) error {
	r.Events = append(r.Events, Event[T]{Kind: EventHunk, Hunk: h})
	return nil
}

func (r *Recorder[T]) WriteSummary(s Summary) error {
	r.Events = append(r.Events, Event[T]{Kind: EventSummary, Summary: s})
	return nil
}

// Hunks returns the recorded hunks in order.
func (r *Recorder[T]) Hunks() []Hunk[T] {
	var hunks []Hunk[T]
	for _, e := range r.Events {
		if e.Kind == EventHunk {
			hunks = append(hunks, e.Hunk)
		}
	}
	return hunks
}
