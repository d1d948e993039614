package difflib

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ReadableOptions configures a ReadableWriter.
type ReadableOptions struct {
	// CharJunk filters ignorable characters when comparing two similar lines.
	// Defaults to IsSpaceCharacter.
	CharJunk func(string) bool
	// Width controls how guide lines are aligned under wide characters.
	Width *WidthOptions
}

// ReadableWriter renders lines as a human-readable delta. Each line is
// prefixed with one of
//
//	"  " line common to both sequences
//	"- " line unique to the first sequence
//	"+ " line unique to the second sequence
//	"? " guide pointing at intraline differences
//
// When a block of lines is replaced, the most similar pair of lines is
// matched character by character and shown with guide lines marking
// replaced ('^'), deleted ('-') and inserted ('+') characters. Guides are
// aligned by display width, so wide characters get as many marks as the
// columns they occupy. The changed characters of such a pair are also
// written in StyleDeletedSpan and StyleInsertedSpan, so a coloring Output
// can highlight them. Lines below the cut-off ratio are shown as plain
// deletions and insertions. Hunks after the first one are preceded by a
// "--" separator.
type ReadableWriter struct {
	out         Output
	cutOffRatio float64
	charJunk    func(string) bool
	width       *runewidth.Condition
	started     bool
}

var (
	_ Writer[string] = (*ReadableWriter)(nil)
	_ CutOffSetter   = (*ReadableWriter)(nil)
)

// NewReadableWriter returns a ReadableWriter rendering into out.
func NewReadableWriter(out Output, opts ReadableOptions) *ReadableWriter {
	charJunk := opts.CharJunk
	if charJunk == nil {
		charJunk = IsSpaceCharacter
	}
	return &ReadableWriter{
		out:         out,
		cutOffRatio: DefaultCutOffRatio,
		charJunk:    charJunk,
		width:       widthCondition(opts.Width),
	}
}

// SetCutOffRatio sets the minimal similarity for two lines to be paired.
func (w *ReadableWriter) SetCutOffRatio(ratio float64) { w.cutOffRatio = ratio }

func (w *ReadableWriter) WriteIdentical(from, _ []string) error {
	return w.dump("  ", from, StyleEqual)
}

func (w *ReadableWriter) WriteReplaced(from, to []string) error {
	switch {
	case len(from) == 0:
		return w.dump("+ ", to, StyleInserted)
	case len(to) == 0:
		return w.dump("- ", from, StyleDeleted)
	}
	return w.fancyReplace(from, to)
}

func (w *ReadableWriter) WriteHunk(h Hunk[string]) error {
	if w.started {
		if err := w.out.WriteLine("--", StyleHunkHeader); err != nil {
			return err
		}
	}
	w.started = true

	for _, e := range h.Edits {
		var err error
		switch e.Kind {
		case OpEqual:
			err = w.dump("  ", e.From, StyleEqual)
		case OpDelete:
			err = w.dump("- ", e.From, StyleDeleted)
		case OpInsert:
			err = w.dump("+ ", e.To, StyleInserted)
		case OpReplace:
			err = w.fancyReplace(e.From, e.To)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *ReadableWriter) WriteSummary(s Summary) error {
	return w.out.WriteLine(s.String(), StyleSummary)
}

func (w *ReadableWriter) dump(prefix string, lines []string, style Style) error {
	for _, line := range lines {
		if err := w.out.Write(prefix, style); err != nil {
			return err
		}
		if err := w.out.WriteLine(line, style); err != nil {
			return err
		}
	}
	return nil
}

func (w *ReadableWriter) plainReplace(from, to []string) error {
	// Show the shorter side first.
	if len(to) < len(from) {
		if err := w.dump("+ ", to, StyleInserted); err != nil {
			return err
		}
		return w.dump("- ", from, StyleDeleted)
	}
	if err := w.dump("- ", from, StyleDeleted); err != nil {
		return err
	}
	return w.dump("+ ", to, StyleInserted)
}

// fancyReplace finds the most similar pair of lines in from and to, writes
// it with intraline guides and recurses on the lines before and after it.
// An identical pair is used as a synch point when no pair reaches the
// cut-off ratio.
func (w *ReadableWriter) fancyReplace(from, to []string) error {
	fromChars := make([][]string, len(from))
	for i, line := range from {
		fromChars[i] = SplitGraphemes(line)
	}

	bestRatio, cutOff := w.cutOffRatio-0.01, w.cutOffRatio
	besti, bestj := -1, -1
	eqi, eqj := -1, -1
	for j, toLine := range to {
		toChars := SplitGraphemes(toLine)
		index := newIndex(toChars, w.charJunk, true)
		for i, fromLine := range from {
			if fromLine == toLine {
				if eqi < 0 {
					eqi, eqj = i, j
				}
				continue
			}
			m := newMatcherWithIndex(fromChars[i], toChars, index)
			// Computing Ratio is expensive, so try the cheap upper bounds
			// first.
			if m.RealQuickRatio() > bestRatio && m.QuickRatio() > bestRatio {
				if r := m.Ratio(); r > bestRatio {
					bestRatio, besti, bestj = r, i, j
				}
			}
		}
	}

	if bestRatio < cutOff {
		if eqi < 0 {
			return w.plainReplace(from, to)
		}
		besti, bestj = eqi, eqj
	} else {
		eqi = -1
	}

	if err := w.fancyHelper(from[:besti], to[:bestj]); err != nil {
		return err
	}
	if eqi >= 0 {
		if err := w.dump("  ", from[besti:besti+1], StyleEqual); err != nil {
			return err
		}
	} else if err := w.writeIntraline(from[besti], to[bestj]); err != nil {
		return err
	}
	return w.fancyHelper(from[besti+1:], to[bestj+1:])
}

func (w *ReadableWriter) fancyHelper(from, to []string) error {
	switch {
	case len(from) > 0 && len(to) > 0:
		return w.fancyReplace(from, to)
	case len(from) > 0:
		return w.dump("- ", from, StyleDeleted)
	case len(to) > 0:
		return w.dump("+ ", to, StyleInserted)
	}
	return nil
}

func (w *ReadableWriter) writeIntraline(fromLine, toLine string) error {
	fromChars, toChars := SplitGraphemes(fromLine), SplitGraphemes(toLine)
	m := NewMatcherWithJunk(fromChars, toChars, true, w.charJunk)

	var fromGuide, toGuide strings.Builder
	var fromSpans, toSpans []span
	for _, op := range m.Operations() {
		changed := op.Kind != OpEqual
		fromSpans = appendSpan(fromSpans, strings.Join(fromChars[op.FromBegin:op.FromEnd], ""), changed)
		toSpans = appendSpan(toSpans, strings.Join(toChars[op.ToBegin:op.ToEnd], ""), changed)

		var fromTag, toTag byte
		switch op.Kind {
		case OpEqual:
			fromTag, toTag = ' ', ' '
		case OpReplace:
			fromTag, toTag = '^', '^'
		case OpDelete:
			fromTag = '-'
		case OpInsert:
			toTag = '+'
		}
		if fromTag != 0 {
			for _, c := range fromChars[op.FromBegin:op.FromEnd] {
				fromGuide.WriteString(w.guide(c, fromTag))
			}
		}
		if toTag != 0 {
			for _, c := range toChars[op.ToBegin:op.ToEnd] {
				toGuide.WriteString(w.guide(c, toTag))
			}
		}
	}

	if err := w.writeSpans("- ", fromSpans, StyleDeleted, StyleDeletedSpan); err != nil {
		return err
	}
	if g := strings.TrimRight(fromGuide.String(), " \t"); g != "" {
		if err := w.out.WriteLine("? "+g, StyleGuide); err != nil {
			return err
		}
	}
	if err := w.writeSpans("+ ", toSpans, StyleInserted, StyleInsertedSpan); err != nil {
		return err
	}
	if g := strings.TrimRight(toGuide.String(), " \t"); g != "" {
		if err := w.out.WriteLine("? "+g, StyleGuide); err != nil {
			return err
		}
	}
	return nil
}

// span is a run of characters of one line, changed or not.
type span struct {
	text    string
	changed bool
}

func appendSpan(spans []span, text string, changed bool) []span {
	if text == "" {
		return spans
	}
	if n := len(spans); n > 0 && spans[n-1].changed == changed {
		spans[n-1].text += text
		return spans
	}
	return append(spans, span{text, changed})
}

// writeSpans writes one line with its changed runs in changedStyle.
func (w *ReadableWriter) writeSpans(prefix string, spans []span, style, changedStyle Style) error {
	if err := w.out.Write(prefix, style); err != nil {
		return err
	}
	for _, s := range spans {
		st := style
		if s.changed {
			st = changedStyle
		}
		if err := w.out.Write(s.text, st); err != nil {
			return err
		}
	}
	return w.out.WriteLine("", style)
}

// guide returns the guide marks to put under character c. Tabs under
// unchanged positions are kept so that the guide stays aligned.
func (w *ReadableWriter) guide(c string, tag byte) string {
	if c == "\t" {
		if tag == ' ' {
			return "\t"
		}
		return string(tag)
	}
	return strings.Repeat(string(tag), w.width.StringWidth(c))
}

// Restore reconstructs one of the two sequences from a readable delta: the
// first one when which is 1, the second one when which is 2. Guide lines and
// hunk separators are ignored. It panics if which is neither 1 nor 2.
func Restore(delta []string, which int) []string {
	var want string
	switch which {
	case 1:
		want = "- "
	case 2:
		want = "+ "
	default:
		panic(fmt.Sprintf("difflib: Restore: which must be 1 or 2, not %d", which))
	}
	var out []string
	for _, d := range delta {
		if len(d) < 2 {
			continue
		}
		if prefix := d[:2]; prefix == "  " || prefix == want {
			out = append(out, d[2:])
		}
	}
	return out
}
