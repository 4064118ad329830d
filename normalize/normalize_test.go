package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"wrapgen/ir"
	"wrapgen/normalize"
)

func buildCollidingInterface() *ir.Interface {
	// root has a direct child "x" and a nested struct whose struct name,
	// "root", collides with the root struct's own name. The nested struct's
	// own child "x" is no collision, since it lives in a different struct.
	x1 := &ir.Param{Base: ir.Base{ID: 1, Name: "x"}, Body: ir.StringBody{}}
	x2 := &ir.Param{Base: ir.Base{ID: 2, Name: "x"}, Body: ir.StringBody{}}
	nested := &ir.Param{
		Base: ir.Base{ID: 3, Name: "nested"},
		Body: ir.StructBody{
			Name: "root",
			Groups: []ir.ConditionalGroup{
				{Cargs: []ir.Carg{{Tokens: []ir.CargToken{x1}}}},
			},
		},
	}
	root := &ir.Param{
		Base: ir.Base{ID: 0, Name: "root"},
		Body: ir.StructBody{
			Name: "root",
			Groups: []ir.ConditionalGroup{
				{Cargs: []ir.Carg{{Tokens: []ir.CargToken{x2, nested}}}},
			},
		},
	}
	return &ir.Interface{Root: root}
}

func TestNormalizeDedupesStructNames(t *testing.T) {
	iface := buildCollidingInterface()
	normalize.Normalize(iface)

	rootBody := iface.Root.Body.(ir.StructBody)
	require.Equal(t, "root", rootBody.Name)

	names := map[string]bool{}
	for s := range ir.IterStructsRecursively(iface.Root, true) {
		sb := s.Body.(ir.StructBody)
		require.False(t, names[sb.Name], "duplicate struct name %q", sb.Name)
		names[sb.Name] = true
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	iface := buildCollidingInterface()
	normalize.Normalize(iface)

	firstPass := snapshotNames(iface)
	normalize.Normalize(iface)
	secondPass := snapshotNames(iface)

	require.Equal(t, firstPass, secondPass)
}

func snapshotNames(iface *ir.Interface) []string {
	var out []string
	for s := range ir.IterStructsRecursively(iface.Root, true) {
		sb := s.Body.(ir.StructBody)
		out = append(out, sb.Name)
		for _, p := range sb.Params() {
			out = append(out, p.Name)
		}
	}
	return out
}

// Invariant 7: for an integer body, folding an exclusive bound to
// inclusive (+1 for minimum, -1 for maximum) and back is a no-op. The fold
// itself happens in frontend/boutiques; this exercises the arithmetic
// identity the fold relies on, independent of any particular descriptor.
func TestInvariant7ExclusiveBoundFoldRoundTrips(t *testing.T) {
	for _, exclusiveMin := range []int64{0, 5, -3} {
		inclusiveMin := exclusiveMin + 1
		require.Equal(t, exclusiveMin, inclusiveMin-1)
	}
	for _, exclusiveMax := range []int64{0, 10, -1} {
		inclusiveMax := exclusiveMax - 1
		require.Equal(t, exclusiveMax, inclusiveMax+1)
	}
}

func TestIncrementSuffixDedupeChain(t *testing.T) {
	root := &ir.Param{
		Base: ir.Base{ID: 0, Name: "root"},
		Body: ir.StructBody{
			Name: "root",
			Groups: []ir.ConditionalGroup{
				{Cargs: []ir.Carg{{Tokens: []ir.CargToken{
					&ir.Param{Base: ir.Base{ID: 1, Name: "a"}, Body: ir.StringBody{}},
					&ir.Param{Base: ir.Base{ID: 2, Name: "a"}, Body: ir.StringBody{}},
					&ir.Param{Base: ir.Base{ID: 3, Name: "a_1"}, Body: ir.StringBody{}},
				}}}},
			},
		},
	}
	iface := &ir.Interface{Root: root}
	normalize.Normalize(iface)

	sb := iface.Root.Body.(ir.StructBody)
	var names []string
	for _, p := range sb.Params() {
		names = append(names, p.Name)
	}
	require.Equal(t, []string{"a", "a_1", "a_2"}, names)
}
