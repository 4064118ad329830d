package provider_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"wrapgen/gen/provider"
	"wrapgen/ir"
)

// fakeTypes is a minimal TypeProvider standing in for a real backend, just
// enough to exercise TypeParam's default-implementation logic.
type fakeTypes struct{}

func (fakeTypes) TypeStr() string                             { return "str" }
func (fakeTypes) TypeInt() string                              { return "int" }
func (fakeTypes) TypeFloat() string                            { return "float" }
func (fakeTypes) TypeBool() string                              { return "bool" }
func (fakeTypes) TypeInputPath() string                         { return "Path" }
func (fakeTypes) TypeOutputPath() string                        { return "OutputPath" }
func (fakeTypes) TypeRunner() string                            { return "Runner" }
func (fakeTypes) TypeExecution() string                         { return "Execution" }
func (fakeTypes) TypeLiteralUnion(choices []ir.Literal) string {
	return fmt.Sprintf("Literal%v", choices)
}
func (fakeTypes) TypeList(elem string) string     { return "list[" + elem + "]" }
func (fakeTypes) TypeOptional(elem string) string { return elem + " | None" }
func (fakeTypes) TypeUnion(elems []string) string {
	out := elems[0]
	for _, e := range elems[1:] {
		out += " | " + e
	}
	return out
}

func TestTypeParamScalarListOptional(t *testing.T) {
	p := fakeTypes{}
	param := &ir.Param{
		Base:     ir.Base{ID: 1, Name: "x"},
		Body:     ir.StringBody{},
		List:     &ir.ListMod{},
		Nullable: true,
	}
	got := provider.TypeParam(p, param, nil)
	require.Equal(t, "list[str] | None", got)
}

func TestTypeParamStructResolvesFromLookup(t *testing.T) {
	p := fakeTypes{}
	param := &ir.Param{Base: ir.Base{ID: 7, Name: "sub"}, Body: ir.StructBody{Name: "Sub"}}
	lookup := map[ir.ID]string{7: "SubParams"}
	require.Equal(t, "SubParams", provider.TypeParam(p, param, lookup))
}

func TestTypeParamChoicesUsesLiteralUnion(t *testing.T) {
	p := fakeTypes{}
	param := &ir.Param{
		Base:    ir.Base{ID: 1, Name: "x"},
		Body:    ir.StringBody{},
		Choices: []ir.Literal{"a", "b"},
	}
	got := provider.TypeParam(p, param, nil)
	require.Contains(t, got, "Literal")
}

// fakeExpr is a minimal ExprProvider for ExprLiteral/ParamDefaultValue.
type fakeExpr struct{}

func (fakeExpr) ExprBool(v bool) string                               { return fmt.Sprintf("%v", v) }
func (fakeExpr) ExprInt(v int64) string                                { return fmt.Sprintf("%d", v) }
func (fakeExpr) ExprFloat(v float64) string                            { return fmt.Sprintf("%g", v) }
func (fakeExpr) ExprStr(v string) string                               { return fmt.Sprintf("%q", v) }
func (fakeExpr) ExprPath(v string) string                              { return fmt.Sprintf("%q", v) }
func (fakeExpr) ExprList(elems []string) string                        { return fmt.Sprintf("%v", elems) }
func (fakeExpr) ExprDict(entries map[string]string) string             { return fmt.Sprintf("%v", entries) }
func (fakeExpr) ExprRemoveSuffixes(s string, suffixes []string) string { return s }
func (fakeExpr) ExprPathGetFilename(p string) string                   { return p }
func (fakeExpr) ExprNumericToStr(n string) string                      { return n }
func (fakeExpr) ExprConditionsJoinAnd(c []string) string               { return fmt.Sprintf("and(%v)", c) }
func (fakeExpr) ExprConditionsJoinOr(c []string) string                { return fmt.Sprintf("or(%v)", c) }
func (fakeExpr) ExprConcatStrs(e []string, join string) string         { return fmt.Sprintf("%v", e) }
func (fakeExpr) ExprTernary(c, t, f string, enbrace bool) string       { return c + "?" + t + ":" + f }
func (fakeExpr) ExprNull() string                                      { return "null" }
func (fakeExpr) ExprLineComment(c []string) []string                   { return c }

func TestExprLiteralNestedListAndMap(t *testing.T) {
	p := fakeExpr{}
	got := provider.ExprLiteral(p, []ir.Literal{"a", int64(1), nil})
	require.Equal(t, `["a" 1 null]`, got)

	nested := provider.ExprLiteral(p, []ir.Literal{"a", []ir.Literal{int64(1)}, map[string]ir.Literal{"k": "v"}})
	require.Equal(t, `["a" [1] map["k":"v"]]`, nested)
}

func TestParamDefaultValueAbsentVsSetToNoneVsLiteral(t *testing.T) {
	p := fakeExpr{}

	noDefault := &ir.Param{Base: ir.Base{ID: 1, Name: "x"}, Body: ir.StringBody{}}
	_, ok := provider.ParamDefaultValue(p, noDefault)
	require.False(t, ok)

	setNone := &ir.Param{
		Base:    ir.Base{ID: 2, Name: "y"},
		Body:    ir.StringBody{},
		Default: &ir.DefaultValue{Kind: ir.DefaultSetToNone},
	}
	v, ok := provider.ParamDefaultValue(p, setNone)
	require.True(t, ok)
	require.Equal(t, "null", v)

	literal := &ir.Param{
		Base:    ir.Base{ID: 3, Name: "z"},
		Body:    ir.StringBody{},
		Default: &ir.DefaultValue{Kind: ir.DefaultLiteral, Literal: "hi"},
	}
	v, ok = provider.ParamDefaultValue(p, literal)
	require.True(t, ok)
	require.Equal(t, `"hi"`, v)
}
