package compile

import (
	"fmt"

	"wrapgen/gen"
	"wrapgen/gen/provider"
	"wrapgen/ir"
)

// Lookup precomputes, once per compiled Interface, every symbol, type
// name, and function name the driver and the chosen Provider's
// high-level/IR-glue methods need to resolve a Param by id without
// re-walking the struct tree. Grounded on gen/lookup.py's LookupParam,
// generalized from a single fixed field set to one shared by all three
// backends.
type Lookup struct {
	// Param finds a Param by id, including every struct and struct-union
	// alternative in the tree.
	Param map[ir.ID]*ir.Param
	// Symbol finds the function-argument/field symbol chosen for a param,
	// scoped to its owning struct's independent symbol scope.
	Symbol map[ir.ID]string
	// Type finds the target-language type expression for a param.
	Type map[ir.ID]string
	// StructType finds the generated struct type name for a struct or
	// struct-union alternative.
	StructType map[ir.ID]string
	// OutputType finds the generated outputs-class name for a struct.
	OutputType map[ir.ID]string
	// OutputFieldSymbol finds the outputs-class field symbol for an
	// Output or a struct-shaped sub-param.
	OutputFieldSymbol map[ir.ID]string
	// StdoutFieldSymbol and StderrFieldSymbol are the root outputs-class
	// field symbols reserved for the interface's captured streams. Empty
	// when the interface captures no such stream.
	StdoutFieldSymbol string
	StderrFieldSymbol string

	// FuncBuildParams, FuncBuildCargs, FuncBuildOutputs, and FuncExecute
	// find the distinct function name generated for a struct, so nested
	// sub-commands never collide on a shared name.
	FuncBuildParams  map[ir.ID]string
	FuncBuildCargs   map[ir.ID]string
	FuncBuildOutputs map[ir.ID]string
	FuncExecute      map[ir.ID]string
}

func (l *Lookup) providerLookup() provider.LookupParam {
	return provider.LookupParam{
		ParamSymbol:       l.Symbol,
		StructType:        l.StructType,
		ParamByID:         l.Param,
		OutputType:        l.OutputType,
		OutputFieldSymbol: l.OutputFieldSymbol,
		StdoutFieldSymbol: l.StdoutFieldSymbol,
		StderrFieldSymbol: l.StderrFieldSymbol,
		FuncBuildParams:   l.FuncBuildParams,
		FuncBuildCargs:    l.FuncBuildCargs,
		FuncBuildOutputs:  l.FuncBuildOutputs,
		FuncExecute:       l.FuncExecute,
	}
}

// buildLookup walks iface's struct tree once and fills every table in a
// Lookup. packageScope is shared across the whole interface (struct type
// names, outputs-class names, output field symbols all dodge against it).
// functionScope is the base scope every struct's own build_params function
// arguments are drawn from; each struct gets an independent child of it, so
// sibling structs may reuse the same field names without collision.
func buildLookup(p provider.Provider, iface *ir.Interface, packageScope, functionScope *gen.Scope, rootSymbol string) *Lookup {
	root := iface.Root
	rootBody, ok := root.Body.(ir.StructBody)
	if !ok {
		panic("compile: interface root is not struct-bodied")
	}

	l := &Lookup{
		Param:             map[ir.ID]*ir.Param{root.ID: root},
		Symbol:            map[ir.ID]string{},
		Type:              map[ir.ID]string{root.ID: rootSymbol},
		StructType:        map[ir.ID]string{root.ID: rootSymbol},
		OutputType:        map[ir.ID]string{},
		OutputFieldSymbol: map[ir.ID]string{},
		FuncBuildParams:   map[ir.ID]string{},
		FuncBuildCargs:    map[ir.ID]string{},
		FuncBuildOutputs:  map[ir.ID]string{},
		FuncExecute:       map[ir.ID]string{},
	}

	rootFnScope := gen.NewChildScope(functionScope)
	for _, child := range rootBody.Params() {
		l.Symbol[child.ID] = rootFnScope.AddOrDodge(p.SymbolVarCaseFrom(child.Name))
	}

	rootOfScope := gen.NewChildScope(packageScope)
	if _, err := rootOfScope.AddOrDie("root"); err != nil {
		panic(err)
	}
	// Stream captures are interface-wide, not per-struct, so they're
	// resolved once here rather than in the generic per-struct pass
	// below.
	if iface.Stdout != nil {
		l.StdoutFieldSymbol = rootOfScope.AddOrDodge(p.SymbolVarCaseFrom(iface.Stdout.Name))
	}
	if iface.Stderr != nil {
		l.StderrFieldSymbol = rootOfScope.AddOrDodge(p.SymbolVarCaseFrom(iface.Stderr.Name))
	}
	collectOutputFieldSymbols(p, rootOfScope, root, rootBody, l)

	l.OutputType[root.ID] = packageScope.AddOrDodge(p.SymbolClassCaseFrom(root.Name + "_Outputs"))

	for s := range ir.IterStructsRecursively(root, false) {
		sb, ok := s.Body.(ir.StructBody)
		if !ok {
			continue // a struct-union node carries no fields of its own
		}
		l.Param[s.ID] = s

		if _, exists := l.StructType[s.ID]; !exists {
			l.StructType[s.ID] = packageScope.AddOrDodge(p.SymbolClassCaseFrom(fmt.Sprintf("%s_%s", rootBody.Name, sb.Name)))
		}
		l.Type[s.ID] = provider.TypeParam(p, s, l.StructType)
		l.OutputType[s.ID] = packageScope.AddOrDodge(p.SymbolClassCaseFrom(fmt.Sprintf("%s_%s_Outputs", rootBody.Name, sb.Name)))

		fnScope := gen.NewChildScope(functionScope)
		for _, child := range sb.Params() {
			l.Symbol[child.ID] = fnScope.AddOrDodge(p.SymbolVarCaseFrom(child.Name))
		}

		ofScope := gen.NewChildScope(packageScope)
		if _, err := ofScope.AddOrDie("root"); err != nil {
			panic(err)
		}
		collectOutputFieldSymbols(p, ofScope, s, sb, l)
	}

	// Every struct-union alternative was already visited (and so already
	// has a StructType) by the IterStructsRecursively pass above, since
	// struct-union alternatives are struct-bodied nodes in that walk.
	// What remains is the type string for every plain (non-struct) param.
	for elem := range ir.IterParamsRecursively(root, false) {
		l.Param[elem.ID] = elem
		if _, exists := l.Type[elem.ID]; !exists {
			l.Type[elem.ID] = provider.TypeParam(p, elem, l.StructType)
		}
	}

	for id, st := range l.StructType {
		l.FuncBuildParams[id] = p.SymbolVarCaseFrom(st + "_build_params")
		l.FuncBuildCargs[id] = p.SymbolVarCaseFrom(st + "_build_cargs")
		l.FuncBuildOutputs[id] = p.SymbolVarCaseFrom(st + "_build_outputs")
		l.FuncExecute[id] = p.SymbolVarCaseFrom(st + "_execute")
	}

	return l
}

// collectOutputFieldSymbols assigns scope-allocated field symbols for
// every Output directly on s and every struct-shaped direct child of s,
// into l.OutputFieldSymbol.
func collectOutputFieldSymbols(p provider.Provider, scope *gen.Scope, s *ir.Param, sb ir.StructBody, l *Lookup) {
	for _, output := range s.Outputs {
		l.OutputFieldSymbol[output.ID] = scope.AddOrDodge(p.SymbolVarCaseFrom(output.Name))
	}
	for _, sub := range sb.Params() {
		switch sub.Body.(type) {
		case ir.StructBody, ir.StructUnionBody:
			l.OutputFieldSymbol[sub.ID] = scope.AddOrDodge(p.SymbolVarCaseFrom(sub.Name))
		}
	}
}
