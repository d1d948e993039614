package difflib

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderReadable(t *testing.T, from, to []string, opts ReadableOptions, dopts ...DifferOption) []string {
	t.Helper()
	var b bytes.Buffer
	out := NewPlainOutput(&b)
	d := NewDiffer(NewMatcher(from, to), dopts...)
	require.NoError(t, d.Diff(NewReadableWriter(out, opts)))
	require.NoError(t, out.Flush())
	return SplitLines(b.String())
}

func TestReadablePairsSimilarLines(t *testing.T) {
	from := []string{"one", "two", "three"}
	to := []string{"ore", "tree", "emu"}

	got := renderReadable(t, from, to, ReadableOptions{}, WithCutOffRatio(0.6))
	want := []string{
		"- one",
		"?  ^",
		"+ ore",
		"?  ^",
		"- two",
		"- three",
		"?  -",
		"+ tree",
		"+ emu",
	}
	assert.Equal(t, want, got)

	// With the default cut-off, only three and tree are similar enough.
	got = renderReadable(t, from, to, ReadableOptions{})
	want = []string{
		"+ ore",
		"- one",
		"- two",
		"- three",
		"?  -",
		"+ tree",
		"+ emu",
	}
	assert.Equal(t, want, got)
}

func TestReadableKeepsTabsInGuides(t *testing.T) {
	got := renderReadable(t, []string{"\tabcDefghiJkl"}, []string{"\tabcdefGhijkl"}, ReadableOptions{})
	want := []string{
		"- \tabcDefghiJkl",
		"? \t   ^  ^  ^",
		"+ \tabcdefGhijkl",
		"? \t   ^  ^  ^",
	}
	assert.Equal(t, want, got)
}

func TestReadableWideCharacters(t *testing.T) {
	got := renderReadable(t, []string{"日本語です"}, []string{"日本人です"}, ReadableOptions{})
	want := []string{
		"- 日本語です",
		"?     ^^",
		"+ 日本人です",
		"?     ^^",
	}
	assert.Equal(t, want, got)
}

func TestReadableInsertionGuide(t *testing.T) {
	got := renderReadable(t, []string{"abcdefgh"}, []string{"abcdXefgh"}, ReadableOptions{})
	want := []string{
		"- abcdefgh",
		"+ abcdXefgh",
		"?     +",
	}
	assert.Equal(t, want, got)
}

func TestReadableIdenticalLineIsSynchPoint(t *testing.T) {
	// No pair of different lines is similar, but "same" occurs on both sides.
	from := []string{"aaaa", "same", "bbbb"}
	to := []string{"xxxx", "same", "yyyy"}

	var b bytes.Buffer
	out := NewPlainOutput(&b)
	w := NewReadableWriter(out, ReadableOptions{})
	require.NoError(t, w.WriteReplaced(from, to))
	require.NoError(t, out.Flush())

	want := []string{
		"- aaaa",
		"+ xxxx",
		"  same",
		"- bbbb",
		"+ yyyy",
	}
	assert.Equal(t, want, SplitLines(b.String()))
}

func TestReadableHunkSeparator(t *testing.T) {
	got := renderReadable(t, alnum, alnumGarbage, ReadableOptions{})
	want := []string{
		"  1",
		"- 2",
		"+ i",
		"  3",
		"  4",
		"  5",
		"--",
		"  9",
		"  a",
		"  b",
		"- c",
		"+ cX",
		"  d",
		"- e",
		"- f",
		"- g",
		"  h",
		"- i",
		"+ iX",
		"  j",
		"  k",
	}
	assert.Equal(t, want, got)
}

func TestReadableWholeSides(t *testing.T) {
	assert.Equal(t, []string{"+ a", "+ b"}, renderReadable(t, []string{}, []string{"a", "b"}, ReadableOptions{}))
	assert.Equal(t, []string{"- a", "- b"}, renderReadable(t, []string{"a", "b"}, []string{}, ReadableOptions{}))
	assert.Equal(t, []string{"  a", "  b"}, renderReadable(t, []string{"a", "b"}, []string{"a", "b"}, ReadableOptions{}))
	assert.Empty(t, renderReadable(t, []string{}, []string{}, ReadableOptions{}))
}

func TestReadableHelper(t *testing.T) {
	assert.Equal(t, "  aaa", Readable("aaa", "aaa"))
	assert.Equal(t, "  aaa\n  bbb", Readable("aaa\nbbb", "aaa\nbbb"))
	assert.Equal(t, "  a\n- b\n+ c\n  d", Readable("a\nb\nd", "a\nc\nd"))
}

func TestColorize(t *testing.T) {
	want := "\x1b[31m- \x1b[0m\x1b[31ma\x1b[0m\n" +
		"\x1b[32m+ \x1b[0m\x1b[32mb\x1b[0m"
	assert.Equal(t, want, Colorize("a", "b"))
}

func TestColorizeIntraline(t *testing.T) {
	want := "\x1b[31m- \x1b[0m\x1b[31mab\x1b[0m\x1b[30m\x1b[48;5;217mc\x1b[0m\x1b[31mde\x1b[0m\n" +
		"\x1b[33m?   ^\x1b[0m\n" +
		"\x1b[32m+ \x1b[0m\x1b[32mab\x1b[0m\x1b[30m\x1b[48;5;114mX\x1b[0m\x1b[32mde\x1b[0m\n" +
		"\x1b[33m?   ^\x1b[0m"
	assert.Equal(t, want, Colorize("abcde", "abXde"))

	// Deleted and inserted runs are marked on their own side only.
	got := Colorize("abcdef", "abcdXef")
	assert.Contains(t, got, "\x1b[31m- \x1b[0m\x1b[31mabcdef\x1b[0m\n")
	assert.Contains(t, got, "\x1b[32mabcd\x1b[0m\x1b[30m\x1b[48;5;114mX\x1b[0m\x1b[32mef\x1b[0m\n")
}

func TestReadableSpansArePlainWithoutColor(t *testing.T) {
	assert.Equal(t, "- abcde\n?   ^\n+ abXde\n?   ^", Readable("abcde", "abXde"))
}

func TestRestore(t *testing.T) {
	from := []string{"one", "two", "three"}
	to := []string{"ore", "tree", "emu"}
	delta := renderReadable(t, from, to, ReadableOptions{}, WithCutOffRatio(0.6))

	assert.Equal(t, from, Restore(delta, 1))
	assert.Equal(t, to, Restore(delta, 2))

	delta = renderReadable(t, alnum, alnumGarbage, ReadableOptions{}, WithContextSize(FullContext))
	assert.Equal(t, alnum, Restore(delta, 1))
	assert.Equal(t, alnumGarbage, Restore(delta, 2))

	assert.Panics(t, func() { Restore(delta, 3) })
}

func TestReadableWriterErrors(t *testing.T) {
	w := NewReadableWriter(failingOutput{}, ReadableOptions{})
	assert.ErrorIs(t, w.WriteIdentical([]string{"a"}, []string{"a"}), errBroken)
	assert.ErrorIs(t, w.WriteReplaced([]string{"abcd"}, []string{"abce"}), errBroken)
	assert.ErrorIs(t, w.WriteSummary(Summary{}), errBroken)

	err := NewDiffer(NewMatcher(alnum, alnumGarbage)).Diff(w)
	require.ErrorIs(t, err, errBroken)
	assert.True(t, strings.HasPrefix(err.Error(), "writing hunk 0: "))
}

type failingOutput struct{}

func (failingOutput) Write(string, Style) error     { return errBroken }
func (failingOutput) WriteLine(string, Style) error { return errBroken }
func (failingOutput) Flush() error                  { return errBroken }
