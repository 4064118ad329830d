package boutiques

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitCommandLineWhitespace(t *testing.T) {
	require.Equal(t, []string{"dummy", "[X]"}, splitCommandLine("dummy [X]"))
	require.Equal(t, []string{"dummy", "[X]"}, splitCommandLine("  dummy   [X]  "))
}

func TestSplitCommandLineQuoting(t *testing.T) {
	require.Equal(t, []string{"dummy", "hello world"}, splitCommandLine(`dummy "hello world"`))
	require.Equal(t, []string{"dummy", "hello world"}, splitCommandLine(`dummy 'hello world'`))
}

func TestSplitCommandLineBackslashEscape(t *testing.T) {
	require.Equal(t, []string{"a b"}, splitCommandLine(`a\ b`))
}

func TestSplitCommandLineEmpty(t *testing.T) {
	require.Empty(t, splitCommandLine(""))
}
