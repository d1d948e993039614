package difflib

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

// SplitLines splits s into lines. Line terminators ("\n" or "\r\n") are
// dropped, and a terminator at the very end of s does not start an extra
// empty line. SplitLines("") returns nil.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// SplitGraphemes splits s into user-perceived characters (extended grapheme
// clusters), so that a base letter and its combining marks compare as one
// element.
func SplitGraphemes(s string) []string {
	out := make([]string, 0, len(s))
	iter := graphemes.FromString(s)
	for iter.Next() {
		out = append(out, iter.Value())
	}
	return out
}

// IsLineJunk reports whether a line is ignorable: blank or containing only a
// single '#', possibly surrounded by whitespace.
func IsLineJunk(line string) bool {
	t := strings.TrimSpace(line)
	return t == "" || t == "#"
}

// IsSpaceCharacter reports whether a character is a space or a tab.
func IsSpaceCharacter(c string) bool { return c == " " || c == "\t" }

// WidthOptions controls display width computation.
type WidthOptions struct {
	// EastAsianWidth treats ambiguous East Asian characters as two columns
	// wide. Use it for CJK locales.
	EastAsianWidth bool
}

func widthCondition(opts *WidthOptions) *runewidth.Condition {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	cond.StrictEmojiNeutral = true
	if opts != nil && opts.EastAsianWidth {
		cond.EastAsianWidth = true
	}
	return cond
}

// DisplayWidth returns the number of monospace terminal columns s occupies.
// If opts is nil, the locale is assumed to be non East Asian.
func DisplayWidth(s string, opts *WidthOptions) int {
	return widthCondition(opts).StringWidth(s)
}
