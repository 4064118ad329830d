package gen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"wrapgen/gen"
)

func TestIndentLinesSkipsBlankLines(t *testing.T) {
	lb := gen.LineBuffer{"a", "", "b"}
	got := gen.IndentLines(lb, 1)
	require.Equal(t, gen.LineBuffer{"    a", "", "    b"}, got)
}

func TestCommentLines(t *testing.T) {
	lb := gen.LineBuffer{"a", "b"}
	got := gen.CommentLines(lb, "#")
	require.Equal(t, gen.LineBuffer{"# a", "# b"}, got)
}

func TestCollapseExpandRoundTrip(t *testing.T) {
	lb := gen.LineBuffer{"a", "b", "c"}
	require.Equal(t, lb, gen.Expand(gen.Collapse(lb)))
}

func TestConcatWithSeparator(t *testing.T) {
	got := gen.Concat([]gen.LineBuffer{{"a"}, {"b"}}, "")
	require.Equal(t, gen.LineBuffer{"a", "", "b"}, got)
}

func TestBlankBeforeAndAfterAreIdempotent(t *testing.T) {
	lb := gen.LineBuffer{"a"}
	once := gen.BlankAfter(gen.BlankBefore(lb))
	twice := gen.BlankAfter(gen.BlankBefore(once))
	require.Equal(t, once, twice)
}

func TestWrapLineBreaksAtWordBoundary(t *testing.T) {
	got := gen.WrapLine("the quick brown fox jumps", 10)
	for _, line := range got {
		require.LessOrEqual(t, len(line), 20) // a single long word may still exceed width
	}
	require.Equal(t, "the quick brown fox jumps", strings.Join(got, " "))
}
