package r_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"wrapgen/gen/provider"
	"wrapgen/gen/r"
	"wrapgen/ir"
)

func TestSymbolVarCaseUsesDotCase(t *testing.T) {
	require.Equal(t, "my.var", r.SymbolVarCaseFrom("My Var"))
}

func TestSymbolLegalRejectsDotThenDigit(t *testing.T) {
	require.False(t, r.SymbolLegal(".5x"))
	require.True(t, r.SymbolLegal(".x5"))
}

func TestSymbolFromPrefixesLeadingDigit(t *testing.T) {
	require.Equal(t, "X1abc", r.SymbolFrom("1abc"))
}

func TestParamVarToMstrFileUsesExecutionInputFile(t *testing.T) {
	p := r.New()
	param := &ir.Param{Base: ir.Base{ID: 1, Name: "f"}, Body: ir.FileBody{}}
	got := p.ParamVarToMstr(param, "f")
	require.False(t, got.IsList)
	require.Equal(t, "execution$input_file(f)", got.Expr)
}

func TestMstrCollapseUsesPasteCollapse(t *testing.T) {
	p := r.New()
	got := p.MstrCollapse(provider.MStr{Expr: "xs", IsList: true}, ",")
	require.Equal(t, `paste(xs, collapse = ",")`, got.Expr)
}
