package difflib

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a\n", []string{"a"}},
		{"a\nb", []string{"a", "b"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
		{"\n", []string{""}},
		{"a\n\nb\n", []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitLines(tt.in), "SplitLines(%q)", tt.in)
	}
}

func TestSplitGraphemes(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitGraphemes("abc"))
	assert.Equal(t, []string{"e\u0301", "a"}, SplitGraphemes("e\u0301a"))
	assert.Equal(t, []string{"🇫🇷", "!"}, SplitGraphemes("🇫🇷!"))
	assert.Empty(t, SplitGraphemes(""))
}

func TestIsLineJunk(t *testing.T) {
	assert.True(t, IsLineJunk(""))
	assert.True(t, IsLineJunk("   "))
	assert.True(t, IsLineJunk("  #  "))
	assert.True(t, IsLineJunk("\t#"))
	assert.False(t, IsLineJunk("##"))
	assert.False(t, IsLineJunk("# comment"))
	assert.False(t, IsLineJunk("x"))
}

func TestIsSpaceCharacter(t *testing.T) {
	assert.True(t, IsSpaceCharacter(" "))
	assert.True(t, IsSpaceCharacter("\t"))
	assert.False(t, IsSpaceCharacter("\n"))
	assert.False(t, IsSpaceCharacter("a"))
	assert.False(t, IsSpaceCharacter("  "))
}

func TestDisplayWidth(t *testing.T) {
	assert.Equal(t, 3, DisplayWidth("abc", nil))
	assert.Equal(t, 4, DisplayWidth("日本", nil))
	assert.Equal(t, 1, DisplayWidth("é", nil))
	assert.Equal(t, 1, DisplayWidth("±", nil))
	assert.Equal(t, 2, DisplayWidth("±", &WidthOptions{EastAsianWidth: true}))
}

func TestCloseMatches(t *testing.T) {
	possibilities := []string{"ape", "apple", "peach", "puppy"}
	assert.Equal(t, []string{"apple", "ape"}, CloseMatches("appel", possibilities, 3, 0.6))
	assert.Equal(t, []string{"apple"}, CloseMatches("appel", possibilities, 1, 0.6))
	assert.Empty(t, CloseMatches("zzzzz", possibilities, 3, 0.6))

	assert.Nil(t, CloseMatches("appel", possibilities, 0, 0.6))
	assert.Nil(t, CloseMatches("appel", possibilities, 3, 1.2))
	assert.Nil(t, CloseMatches("appel", possibilities, 3, -0.1))
}

func TestCloseMatchesKeepsOrderOfTies(t *testing.T) {
	got := CloseMatches("ab", []string{"ax", "xb", "ab", "ay"}, 4, 0.5)
	assert.Equal(t, []string{"ab", "ax", "xb", "ay"}, got)
}

func TestPlainOutput(t *testing.T) {
	var b bytes.Buffer
	out := NewPlainOutput(&b)
	require.NoError(t, out.Write("- ", StyleDeleted))
	require.NoError(t, out.WriteLine("a", StyleDeleted))
	assert.Empty(t, b.String())
	require.NoError(t, out.Flush())
	assert.Equal(t, "- a\n", b.String())
}

func TestANSIOutput(t *testing.T) {
	var b bytes.Buffer
	out := NewANSIOutput(&b)
	require.NoError(t, out.WriteLine("@@ -1 +1 @@", StyleHunkHeader))
	require.NoError(t, out.WriteLine("", StyleInserted))
	require.NoError(t, out.WriteLine("same", StyleEqual))
	require.NoError(t, out.Flush())
	assert.Equal(t, "\x1b[1;36m@@ -1 +1 @@\x1b[0m\n\nsame\n", b.String())
}

func TestOpKind(t *testing.T) {
	assert.Equal(t, "equal", OpEqual.String())
	assert.Equal(t, "replace", OpReplace.String())
	assert.Equal(t, "OpKind(9)", OpKind(9).String())
	assert.Equal(t, byte('d'), OpDelete.Tag())
	assert.Equal(t, byte('i'), OpInsert.Tag())
	assert.Panics(t, func() { OpKind(9).Tag() })

	op := Operation{OpReplace, 1, 3, 2, 3}
	assert.Equal(t, "<replace from: [1, 3) to: [2, 3)>", op.String())
	assert.Equal(t, 2, op.FromLen())
	assert.Equal(t, 1, op.ToLen())
	assert.Equal(t, "<from: 1, to: 2, size: 3>", Match{1, 2, 3}.String())
}
