package ir_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"wrapgen/ir"
)

// buildSample builds a tiny interface: root struct with one string param
// "x" and one output "out" referencing it.
func buildSample(t *testing.T) *ir.Interface {
	t.Helper()
	x := &ir.Param{
		Base: ir.Base{ID: 1, Name: "x"},
		Body: ir.StringBody{},
	}
	out := &ir.Output{
		ID:   2,
		Name: "out",
		Tokens: []ir.OutputToken{
			ir.OutputLiteral("out-"),
			ir.OutputParamReference{RefID: 1},
		},
	}
	root := &ir.Param{
		Base: ir.Base{ID: 0, Name: "root", Outputs: []*ir.Output{out}},
		Body: ir.StructBody{
			Name: "root",
			Groups: []ir.ConditionalGroup{
				{Cargs: []ir.Carg{{Tokens: []ir.CargToken{ir.CargLiteral("dummy"), x}}}},
			},
		},
	}
	return &ir.Interface{UID: "deadbeef.boutiques", Root: root}
}

// Invariant 1: every OutputParamReference.RefID resolves to a Param in the
// same interface.
func TestOutputReferencesResolve(t *testing.T) {
	iface := buildSample(t)
	ids := map[ir.ID]bool{}
	for p := range ir.IterParamsRecursively(iface.Root, true) {
		ids[p.ID] = true
	}
	for p := range ir.IterParamsRecursively(iface.Root, true) {
		for _, out := range p.Outputs {
			for _, ref := range out.ParamRefs() {
				require.True(t, ids[ref.RefID], "dangling output reference to id %d", ref.RefID)
			}
		}
	}
}

// Invariant 2 groundwork: struct/child-name uniqueness is normalize's job,
// verified in the normalize package; here we just verify the traversal
// helpers see every struct and every child exactly once on a tree with a
// nested struct-union.
func TestIterStructsRecursivelyVisitsNestedUnion(t *testing.T) {
	alt1 := &ir.Param{Base: ir.Base{ID: 10, Name: "alt1"}, Body: ir.StructBody{Name: "alt1"}}
	alt2 := &ir.Param{Base: ir.Base{ID: 11, Name: "alt2"}, Body: ir.StructBody{Name: "alt2"}}
	union := &ir.Param{
		Base: ir.Base{ID: 12, Name: "choice"},
		Body: ir.StructUnionBody{Alts: []*ir.Param{alt1, alt2}},
	}
	root := &ir.Param{
		Base: ir.Base{ID: 0, Name: "root"},
		Body: ir.StructBody{
			Name: "root",
			Groups: []ir.ConditionalGroup{
				{Cargs: []ir.Carg{{Tokens: []ir.CargToken{union}}}},
			},
		},
	}
	iface := &ir.Interface{Root: root}

	var seen []ir.ID
	for p := range ir.IterStructsRecursively(iface.Root, true) {
		seen = append(seen, p.ID)
	}
	require.ElementsMatch(t, []ir.ID{0, 12, 10, 11}, seen)
}

// Invariant 3: a non-nullable Param must never carry a SetToNone default.
func TestNonNullableNeverSetToNone(t *testing.T) {
	p := &ir.Param{
		Base:     ir.Base{ID: 1, Name: "x"},
		Body:     ir.StringBody{},
		Nullable: false,
	}
	// Constructing this is a caller bug, not something the IR itself
	// forbids structurally (Go has no dependent types); the frontend is
	// responsible for never doing it. Here we assert that the zero value
	// carries no default, and that the IR stores a SetToNone default as
	// given, without checking Nullable.
	require.False(t, p.HasDefault())

	p.Default = &ir.DefaultValue{Kind: ir.DefaultSetToNone}
	require.True(t, p.HasDefault())
	require.Equal(t, ir.DefaultSetToNone, p.Default.Kind)
}

// Invariant 4: a Bool body never carries a list modifier (frontend never
// constructs one) — the IR models this by BoolBody simply having no
// interaction with ListMod; any Param wrapping BoolBody with List != nil
// would be a frontend bug. We verify the degenerate flag shape at least.
func TestBoolBodyFlagShape(t *testing.T) {
	flag := ir.BoolBody{ValueTrue: []string{"-v"}, ValueFalse: nil}
	require.Len(t, flag.ValueTrue, 1)
	require.Empty(t, flag.ValueFalse)
}

func TestErrorKindMatchesViaErrorsIs(t *testing.T) {
	err := ir.InvalidDescriptorError("x", "missing type")
	require.True(t, errors.Is(err, ir.KindInvalidDescriptor))
	require.False(t, errors.Is(err, ir.KindDuplicateSymbol))
}

func TestConditionalGroupUnconditionalWhenNoNullableRefs(t *testing.T) {
	req := &ir.Param{Base: ir.Base{ID: 1, Name: "x"}, Body: ir.StringBody{}, Nullable: false}
	g := ir.ConditionalGroup{Cargs: []ir.Carg{{Tokens: []ir.CargToken{req}}}}
	require.True(t, g.IsUnconditional())

	opt := &ir.Param{Base: ir.Base{ID: 2, Name: "y"}, Body: ir.StringBody{}, Nullable: true}
	g2 := ir.ConditionalGroup{Cargs: []ir.Carg{{Tokens: []ir.CargToken{opt}}}}
	require.False(t, g2.IsUnconditional())
}
