package gen_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"wrapgen/gen"
	"wrapgen/ir"
)

func alwaysLegal(string) bool { return true }

// This dodge scheme ("_", then "_2", "_3", ...) is distinct from
// normalize's struct/param renaming scheme ("_1", "_2", ...) — they solve
// different problems (codegen-time symbol allocation vs. IR-level name
// dedup) and must not be conflated.
func TestAddOrDodgeSuffixScheme(t *testing.T) {
	s := gen.NewRootScope(alwaysLegal, nil)

	require.Equal(t, "x", s.AddOrDodge("x"))
	require.Equal(t, "x_", s.AddOrDodge("x"))
	require.Equal(t, "x_2", s.AddOrDodge("x"))
	require.Equal(t, "x_3", s.AddOrDodge("x"))
}

func TestAddOrDodgeSkipsIllegalCandidates(t *testing.T) {
	legal := func(s string) bool { return s != "x_" }
	s := gen.NewRootScope(legal, nil)

	require.Equal(t, "x", s.AddOrDodge("x"))
	require.Equal(t, "x_2", s.AddOrDodge("x"))
}

func TestChildScopeSeesParentReservations(t *testing.T) {
	parent := gen.NewRootScope(alwaysLegal, []string{"reserved"})
	child := gen.NewChildScope(parent)

	require.True(t, child.Contains("reserved"))
	require.Equal(t, "reserved_", child.AddOrDodge("reserved"))
}

func TestChildReservationInvisibleToParent(t *testing.T) {
	parent := gen.NewRootScope(alwaysLegal, nil)
	child := gen.NewChildScope(parent)

	child.AddOrDodge("local")
	require.False(t, parent.Contains("local"))
}

func TestAddOrDieFailsOnDuplicate(t *testing.T) {
	s := gen.NewRootScope(alwaysLegal, []string{"taken"})

	_, err := s.AddOrDie("taken")
	require.Error(t, err)
	require.True(t, errors.Is(err, ir.KindDuplicateSymbol))
}

func TestAddOrDieFailsOnIllegal(t *testing.T) {
	legal := func(s string) bool { return s != "class" }
	s := gen.NewRootScope(legal, nil)

	_, err := s.AddOrDie("class")
	require.Error(t, err)
	require.True(t, errors.Is(err, ir.KindIllegalSymbol))
}

func TestAddOrDieSucceedsOnFreshLegalSymbol(t *testing.T) {
	s := gen.NewRootScope(alwaysLegal, nil)

	got, err := s.AddOrDie("fresh")
	require.NoError(t, err)
	require.Equal(t, "fresh", got)
	require.True(t, s.Contains("fresh"))
}
