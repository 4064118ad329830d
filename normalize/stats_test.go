package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"wrapgen/ir"
	"wrapgen/normalize"
)

func TestComputeStatsFlatInterface(t *testing.T) {
	x := &ir.Param{Base: ir.Base{ID: 1, Name: "x"}, Body: ir.StringBody{}}
	root := &ir.Param{
		Base: ir.Base{ID: 0, Name: "root"},
		Body: ir.StructBody{
			Name: "root",
			Groups: []ir.ConditionalGroup{
				{Cargs: []ir.Carg{{Tokens: []ir.CargToken{x}}}},
			},
		},
	}
	iface := &ir.Interface{Root: root}

	stats := normalize.ComputeStats(iface)
	require.Equal(t, "root", stats.Name)
	require.Equal(t, 1, stats.NumParams)
	require.Equal(t, 2, stats.NumExpressions) // root struct (1) + child (1)
	require.Equal(t, 1, stats.McCabe)
}

func TestComputeStatsNullableChildDoublesComplexity(t *testing.T) {
	x := &ir.Param{Base: ir.Base{ID: 1, Name: "x"}, Body: ir.StringBody{}, Nullable: true}
	root := &ir.Param{
		Base: ir.Base{ID: 0, Name: "root"},
		Body: ir.StructBody{
			Name: "root",
			Groups: []ir.ConditionalGroup{
				{Cargs: []ir.Carg{{Tokens: []ir.CargToken{x}}}},
			},
		},
	}
	iface := &ir.Interface{Root: root}

	stats := normalize.ComputeStats(iface)
	// one child, nullable -> mccabe(x) = 2; root: complexity(1) * (sum(2) - 1 + 1) = 2
	require.Equal(t, 2, stats.McCabe)
}
