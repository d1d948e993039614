package difflib

import "fmt"

// FileHeader names the two sides of a diff in the headers of unified and
// context diffs. Dates are normally expressed in the ISO 8601 format. When
// both file names are empty no header is written.
type FileHeader struct {
	FromFile string
	FromDate string
	ToFile   string
	ToDate   string
}

func (h FileHeader) empty() bool { return h.FromFile == "" && h.ToFile == "" }

func withDate(name, date string) string {
	if date == "" {
		return name
	}
	return name + "\t" + date
}

// formatRangeUnified converts a range to the "ed" format used by unified
// diffs.
func formatRangeUnified(start, stop int) string {
	// Per the diff spec at http://www.unix.org/single_unix_specification/
	beginning := start + 1 // lines start numbering with one
	length := stop - start
	if length == 1 {
		return fmt.Sprintf("%d", beginning)
	}
	if length == 0 {
		beginning-- // empty ranges begin at line just before the range
	}
	return fmt.Sprintf("%d,%d", beginning, length)
}

// formatRangeContext converts a range to the "ed" format used by context
// diffs.
func formatRangeContext(start, stop int) string {
	beginning := start + 1
	length := stop - start
	if length == 0 {
		beginning--
	}
	if length <= 1 {
		return fmt.Sprintf("%d", beginning)
	}
	return fmt.Sprintf("%d,%d", beginning, beginning+length-1)
}

// replacementHunk returns the single hunk turning from into to wholesale.
func replacementHunk[T comparable](from, to []T) Hunk[T] {
	kind := OpReplace
	switch {
	case len(from) == 0:
		kind = OpInsert
	case len(to) == 0:
		kind = OpDelete
	}
	return Hunk[T]{Edits: []Edit[T]{{
		Operation: Operation{kind, 0, len(from), 0, len(to)},
		From:      from,
		To:        to,
	}}}
}

// UnifiedWriter renders lines as a unified diff.
//
// Unified diffs are a compact way of showing line changes and a few lines of
// context. Hunks start with "@@ -a,b +c,d @@" and their lines are prefixed
// with ' ', '-' or '+'. Identical content produces no output.
type UnifiedWriter struct {
	out     Output
	header  FileHeader
	started bool
}

var _ Writer[string] = (*UnifiedWriter)(nil)

// NewUnifiedWriter returns a UnifiedWriter rendering into out.
func NewUnifiedWriter(out Output, header FileHeader) *UnifiedWriter {
	return &UnifiedWriter{out: out, header: header}
}

func (w *UnifiedWriter) WriteIdentical(_, _ []string) error { return nil }

func (w *UnifiedWriter) WriteReplaced(from, to []string) error {
	return w.WriteHunk(replacementHunk(from, to))
}

func (w *UnifiedWriter) WriteHunk(h Hunk[string]) error {
	if !w.started {
		w.started = true
		if !w.header.empty() {
			if err := w.out.WriteLine("--- "+withDate(w.header.FromFile, w.header.FromDate), StyleHeader); err != nil {
				return err
			}
			if err := w.out.WriteLine("+++ "+withDate(w.header.ToFile, w.header.ToDate), StyleHeader); err != nil {
				return err
			}
		}
	}

	fromBegin, fromEnd := h.FromRange()
	toBegin, toEnd := h.ToRange()
	range1 := formatRangeUnified(fromBegin, fromEnd)
	range2 := formatRangeUnified(toBegin, toEnd)
	if err := w.out.WriteLine(fmt.Sprintf("@@ -%s +%s @@", range1, range2), StyleHunkHeader); err != nil {
		return err
	}
	for _, e := range h.Edits {
		if e.Kind == OpEqual {
			if err := writePrefixed(w.out, " ", e.From, StyleEqual); err != nil {
				return err
			}
			continue
		}
		if err := writePrefixed(w.out, "-", e.From, StyleDeleted); err != nil {
			return err
		}
		if err := writePrefixed(w.out, "+", e.To, StyleInserted); err != nil {
			return err
		}
	}
	return nil
}

func (w *UnifiedWriter) WriteSummary(s Summary) error {
	return w.out.WriteLine(s.String(), StyleSummary)
}

// ContextWriter renders lines as a context diff.
//
// Each hunk starts with a row of asterisks, then shows the affected range of
// the first sequence followed by the range of the second one. Lines are
// prefixed with "  ", "- ", "+ " or "! ". Identical content produces no
// output.
type ContextWriter struct {
	out     Output
	header  FileHeader
	started bool
}

var _ Writer[string] = (*ContextWriter)(nil)

// NewContextWriter returns a ContextWriter rendering into out.
func NewContextWriter(out Output, header FileHeader) *ContextWriter {
	return &ContextWriter{out: out, header: header}
}

var contextPrefixes = map[OpKind]string{
	OpInsert:  "+ ",
	OpDelete:  "- ",
	OpReplace: "! ",
	OpEqual:   "  ",
}

var contextStyles = map[OpKind]Style{
	OpInsert:  StyleInserted,
	OpDelete:  StyleDeleted,
	OpReplace: StyleGuide,
	OpEqual:   StyleEqual,
}

func (w *ContextWriter) WriteIdentical(_, _ []string) error { return nil }

func (w *ContextWriter) WriteReplaced(from, to []string) error {
	return w.WriteHunk(replacementHunk(from, to))
}

func (w *ContextWriter) WriteHunk(h Hunk[string]) error {
	if !w.started {
		w.started = true
		if !w.header.empty() {
			if err := w.out.WriteLine("*** "+withDate(w.header.FromFile, w.header.FromDate), StyleHeader); err != nil {
				return err
			}
			if err := w.out.WriteLine("--- "+withDate(w.header.ToFile, w.header.ToDate), StyleHeader); err != nil {
				return err
			}
		}
	}

	if err := w.out.WriteLine("***************", StyleHunkHeader); err != nil {
		return err
	}

	fromBegin, fromEnd := h.FromRange()
	if err := w.out.WriteLine(fmt.Sprintf("*** %s ****", formatRangeContext(fromBegin, fromEnd)), StyleHunkHeader); err != nil {
		return err
	}
	if hasKind(h, OpReplace, OpDelete) {
		for _, e := range h.Edits {
			if e.Kind == OpInsert {
				continue
			}
			if err := writePrefixed(w.out, contextPrefixes[e.Kind], e.From, contextStyles[e.Kind]); err != nil {
				return err
			}
		}
	}

	toBegin, toEnd := h.ToRange()
	if err := w.out.WriteLine(fmt.Sprintf("--- %s ----", formatRangeContext(toBegin, toEnd)), StyleHunkHeader); err != nil {
		return err
	}
	if hasKind(h, OpReplace, OpInsert) {
		for _, e := range h.Edits {
			if e.Kind == OpDelete {
				continue
			}
			if err := writePrefixed(w.out, contextPrefixes[e.Kind], e.To, contextStyles[e.Kind]); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *ContextWriter) WriteSummary(s Summary) error {
	return w.out.WriteLine(s.String(), StyleSummary)
}

func hasKind[T comparable](h Hunk[T], kinds ...OpKind) bool {
	for _, e := range h.Edits {
		for _, k := range kinds {
			if e.Kind == k {
				return true
			}
		}
	}
	return false
}

func writePrefixed(out Output, prefix string, lines []string, style Style) error {
	for _, line := range lines {
		if err := out.WriteLine(prefix+line, style); err != nil {
			return err
		}
	}
	return nil
}
