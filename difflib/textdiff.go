package difflib

import (
	"fmt"
	"io"
	"strings"
)

// Readable returns a readable delta between the lines of from and those of
// to, every line shown, without a trailing newline.
//
//	Readable("aaa\nbbb", "aaa\nbbb") == "  aaa\n  bbb"
func Readable(from, to string) string {
	return renderLines(from, to, FullContext, plainOutput, func(out Output) Writer[string] {
		return NewReadableWriter(out, ReadableOptions{})
	})
}

// Colorize is like Readable but decorates the delta with ANSI colors.
func Colorize(from, to string) string {
	return renderLines(from, to, FullContext, ansiOutput, func(out Output) Writer[string] {
		return NewReadableWriter(out, ReadableOptions{})
	})
}

// Unified returns a unified diff between the lines of from and those of to
// with DefaultContextSize lines of context. Labels are used for the file
// header, which is left out when both are empty.
func Unified(from, to, fromLabel, toLabel string) string {
	return renderLines(from, to, DefaultContextSize, plainOutput, func(out Output) Writer[string] {
		return NewUnifiedWriter(out, FileHeader{FromFile: fromLabel, ToFile: toLabel})
	})
}

func plainOutput(w io.Writer) Output { return NewPlainOutput(w) }

func ansiOutput(w io.Writer) Output { return NewANSIOutput(w) }

func renderLines(from, to string, context int, newOutput func(io.Writer) Output, newWriter func(Output) Writer[string]) string {
	var b strings.Builder
	out := newOutput(&b)
	d := NewDiffer(NewMatcher(SplitLines(from), SplitLines(to)), WithContextSize(context))
	// A strings.Builder never fails, so neither can the writers.
	if err := d.Diff(newWriter(out)); err != nil {
		panic(fmt.Sprintf("difflib: rendering to memory: %v", err))
	}
	if err := out.Flush(); err != nil {
		panic(fmt.Sprintf("difflib: rendering to memory: %v", err))
	}
	return strings.TrimSuffix(b.String(), "\n")
}
