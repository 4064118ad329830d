package python_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"wrapgen/gen"
	"wrapgen/gen/python"
	"wrapgen/gen/provider"
	"wrapgen/ir"
)

func TestSymbolCasing(t *testing.T) {
	require.Equal(t, "my_var", python.SymbolVarCaseFrom("My Var"))
	require.Equal(t, "MyClass", python.SymbolClassCaseFrom("my-class"))
	require.Equal(t, "MY_CONST", python.SymbolConstantCaseFrom("my const"))
}

func TestSymbolFromPrefixesLeadingDigit(t *testing.T) {
	require.Equal(t, "v_1abc", python.SymbolFrom("1abc"))
}

func TestLanguageScopeRejectsKeywords(t *testing.T) {
	scope := python.LanguageScope()
	require.True(t, scope.Contains("class"))
	require.Equal(t, "class_", scope.AddOrDodge("class"))
}

func TestExprTernaryEnbracesMultiWordCondition(t *testing.T) {
	p := python.New()
	got := p.ExprTernary("a and b", "1", "2", false)
	require.Equal(t, "1 if (a and b) else 2", got)
}

func TestMstrCargsAddAppendsScalarExtendsList(t *testing.T) {
	p := python.New()
	got := p.MstrCargsAdd("cargs", []provider.MStr{
		{Expr: `"x"`, IsList: false},
		{Expr: "vals", IsList: true},
	})
	require.Equal(t, gen.LineBuffer{`cargs.append("x")`, "cargs.extend(vals)"}, got)
}

func TestParamVarToMstrListOfIntsNoJoin(t *testing.T) {
	p := python.New()
	param := &ir.Param{
		Base: ir.Base{ID: 1, Name: "n"},
		Body: ir.IntBody{},
		List: &ir.ListMod{},
	}
	got := p.ParamVarToMstr(param, "n")
	require.True(t, got.IsList)
	require.Equal(t, "map(str, n)", got.Expr)
}

func TestParamVarToMstrFlagTrueOnly(t *testing.T) {
	p := python.New()
	param := &ir.Param{
		Base: ir.Base{ID: 1, Name: "verbose"},
		Body: ir.BoolBody{ValueTrue: []string{"--verbose"}},
	}
	got := p.ParamVarToMstr(param, "verbose")
	require.False(t, got.IsList)
	require.Equal(t, `"--verbose"`, got.Expr)
}

func TestIsSetByUserNullablePrecedesFlagLogic(t *testing.T) {
	p := python.New()
	param := &ir.Param{Base: ir.Base{ID: 1, Name: "x"}, Body: ir.StringBody{}, Nullable: true}
	expr, ok := p.ParamIsSetByUser(param, "x", false)
	require.True(t, ok)
	require.Equal(t, "x is not None", expr)
}
