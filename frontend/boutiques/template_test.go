package boutiques

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDestructTemplateBasic(t *testing.T) {
	lookup := map[string]any{"x": 12, "y": 34}
	got := destructTemplate("hello x, I am y", lookup)
	require.Equal(t, []any{"hello ", 12, ", I am ", 34}, got)
}

func TestDestructTemplateNoMatch(t *testing.T) {
	got := destructTemplate("no replacements here", map[string]any{"[X]": 1})
	require.Equal(t, []any{"no replacements here"}, got)
}

func TestDestructTemplateLongestKeyWins(t *testing.T) {
	lookup := map[string]any{"X": "short", "[X_MIN]": "long"}
	got := destructTemplate("val=[X_MIN]", lookup)
	require.Equal(t, []any{"val=", "long"}, got)
}

func TestDestructTemplateEntireStringIsKey(t *testing.T) {
	got := destructTemplate("[X]", map[string]any{"[X]": 99})
	require.Equal(t, []any{99}, got)
}
