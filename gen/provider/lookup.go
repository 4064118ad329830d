package provider

import (
	"strconv"

	"wrapgen/ir"
)

// LookupParam is the precomputed id-keyed index a Provider's IR-glue
// methods use to resolve a Param reference into the symbol/type a
// previous codegen step already assigned it, without re-walking the tree.
// Built once per compiled interface by the compile package. Grounded on
// gen/lookup.py's LookupParam.
type LookupParam struct {
	// ParamSymbol maps a param's id to the field/variable name chosen for
	// it in its enclosing struct.
	ParamSymbol map[ir.ID]string
	// StructType maps a struct/struct-union param's id to the generated
	// type name for that struct.
	StructType map[ir.ID]string
	// ParamByID maps an id straight back to its Param, for glue code that
	// only has an id in hand (carg/output token resolution).
	ParamByID map[ir.ID]*ir.Param

	// OutputType maps a struct param's id to the generated name of its
	// outputs class.
	OutputType map[ir.ID]string
	// OutputFieldSymbol maps an Output's or a struct-shaped sub-param's id
	// to the field symbol chosen for it in its owning outputs class.
	OutputFieldSymbol map[ir.ID]string
	// StdoutFieldSymbol and StderrFieldSymbol are the outputs-class field
	// symbols reserved for the interface's optional captured streams.
	// Empty when the interface captures no such stream.
	StdoutFieldSymbol string
	StderrFieldSymbol string

	// FuncBuildParams, FuncBuildCargs, FuncBuildOutputs, and FuncExecute
	// map a struct param's id to the distinct function name generated for
	// it, so nested sub-commands never collide on a shared name like
	// "build_cargs".
	FuncBuildParams  map[ir.ID]string
	FuncBuildCargs   map[ir.ID]string
	FuncBuildOutputs map[ir.ID]string
	FuncExecute      map[ir.ID]string
}

// Param resolves id back to its Param, panicking if absent: every id
// appearing in a compiled interface's tokens is expected to have been
// registered during the same compile pass, so a miss is an internal
// inconsistency, not a user-facing error.
func (l LookupParam) Param(id ir.ID) *ir.Param {
	p, ok := l.ParamByID[id]
	if !ok {
		panic("provider: unresolved param id " + strconv.FormatInt(int64(id), 10))
	}
	return p
}
