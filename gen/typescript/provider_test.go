package typescript_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"wrapgen/gen/typescript"
	"wrapgen/ir"
)

func TestSymbolCasing(t *testing.T) {
	require.Equal(t, "MyClass", typescript.SymbolClassCaseFrom("my-class"))
	require.Equal(t, "MY_CONST", typescript.SymbolConstantCaseFrom("my const"))
}

func TestSymbolFromPrefixesLeadingDigit(t *testing.T) {
	require.Equal(t, "_$1abc", typescript.SymbolFrom("1abc"))
}

func TestLanguageScopeRejectsKeywords(t *testing.T) {
	scope := typescript.LanguageScope()
	require.True(t, scope.Contains("const"))
}

func TestParamVarToMstrNullableStringSetCheck(t *testing.T) {
	p := typescript.New()
	param := &ir.Param{Base: ir.Base{ID: 1, Name: "x"}, Body: ir.StringBody{}, Nullable: true}
	expr, ok := p.ParamIsSetByUser(param, "x", false)
	require.True(t, ok)
	require.Equal(t, "x !== null", expr)
}

func TestParamVarToMstrListJoin(t *testing.T) {
	p := typescript.New()
	join := ","
	param := &ir.Param{
		Base: ir.Base{ID: 1, Name: "xs"},
		Body: ir.StringBody{},
		List: &ir.ListMod{Join: &join},
	}
	got := p.ParamVarToMstr(param, "xs")
	require.False(t, got.IsList)
	require.Equal(t, `xs.join(",")`, got.Expr)
}
