package difflib

import (
	"bufio"
	"io"
)

// Style tags a piece of diff text so an Output can decorate it.
type Style int

const (
	StyleNone Style = iota
	StyleHeader
	StyleHunkHeader
	StyleEqual
	StyleDeleted
	StyleInserted
	StyleGuide
	StyleDeletedSpan
	StyleInsertedSpan
	StyleSummary
)

// Output is the text sink writers render into.
type Output interface {
	// Write writes text without a line break.
	Write(text string, style Style) error
	// WriteLine writes text followed by a line break.
	WriteLine(text string, style Style) error
	// Flush writes any buffered data to the underlying io.Writer.
	Flush() error
}

// PlainOutput writes text as is and ignores styles.
type PlainOutput struct {
	buf *bufio.Writer
	eol string
}

// NewPlainOutput returns an Output writing to w with "\n" line breaks.
func NewPlainOutput(w io.Writer) *PlainOutput {
	return &PlainOutput{buf: bufio.NewWriter(w), eol: "\n"}
}

func (o *PlainOutput) Write(text string, _ Style) error {
	_, err := o.buf.WriteString(text)
	return err
}

func (o *PlainOutput) WriteLine(text string, _ Style) error {
	if _, err := o.buf.WriteString(text); err != nil {
		return err
	}
	_, err := o.buf.WriteString(o.eol)
	return err
}

func (o *PlainOutput) Flush() error { return o.buf.Flush() }

// ANSI escape sequences used by ANSIOutput.
const (
	ansiReset     = "\x1b[0m"
	ansiBold      = "\x1b[1m"
	ansiCyanBold  = "\x1b[1;36m"
	ansiRed       = "\x1b[31m"
	ansiGreen     = "\x1b[32m"
	ansiYellow    = "\x1b[33m"
	ansiDim       = "\x1b[2m"
	ansiRedSpan   = "\x1b[30m\x1b[48;5;217m" // black on darker pink
	ansiGreenSpan = "\x1b[30m\x1b[48;5;114m" // black on darker green
)

var ansiStyles = map[Style]string{
	StyleHeader:       ansiBold,
	StyleHunkHeader:   ansiCyanBold,
	StyleDeleted:      ansiRed,
	StyleInserted:     ansiGreen,
	StyleGuide:        ansiYellow,
	StyleDeletedSpan:  ansiRedSpan,
	StyleInsertedSpan: ansiGreenSpan,
	StyleSummary:      ansiDim,
}

// ANSIOutput decorates styled text with ANSI color escape sequences. It is
// meant for terminals.
type ANSIOutput struct {
	plain *PlainOutput
}

// NewANSIOutput returns an Output writing colorized text to w.
func NewANSIOutput(w io.Writer) *ANSIOutput {
	return &ANSIOutput{plain: NewPlainOutput(w)}
}

func (o *ANSIOutput) Write(text string, style Style) error {
	code, ok := ansiStyles[style]
	if !ok || text == "" {
		return o.plain.Write(text, style)
	}
	return o.plain.Write(code+text+ansiReset, style)
}

func (o *ANSIOutput) WriteLine(text string, style Style) error {
	if err := o.Write(text, style); err != nil {
		return err
	}
	return o.plain.WriteLine("", StyleNone)
}

func (o *ANSIOutput) Flush() error { return o.plain.Flush() }
