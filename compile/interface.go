// Package compile drives a chosen gen/provider.Provider over a normalized
// *ir.Interface, producing one gen.GenericModule per wrapper. It owns no
// target-language syntax of its own; every rendering decision is delegated
// to the Provider. Grounded on
// _examples/original_source's backend/generic/gen/interface.py.
package compile

import (
	"fmt"
	"strings"

	"wrapgen/gen"
	"wrapgen/gen/provider"
	"wrapgen/ir"
)

func backtick(s string) string { return "`" + s + "`" }

// paramsDictType is the generated parameter-dict type name for struct s.
// Every backend's ParamDictTypeDeclare computes the same name from
// lookup.StructType, so the driver derives it identically rather than
// storing a redundant third map alongside Lookup.StructType.
func paramsDictType(l *Lookup, s *ir.Param) string {
	return l.StructType[s.ID] + "Parameters"
}

// compileBuildParams emits the function that turns a struct's positional
// arguments into its parameter dict. Grounded on _compile_build_params.
func compileBuildParams(p provider.Provider, s *ir.Param, l *Lookup) gen.GenericFunc {
	sb := s.Body.(ir.StructBody)

	f := gen.GenericFunc{
		Name:          l.FuncBuildParams[s.ID],
		DocstringBody: "Build parameters.",
		ReturnType:    paramsDictType(l, s),
		ReturnDescr:   "Parameter dictionary",
	}

	for _, child := range sb.Params() {
		def, _ := provider.ParamDefaultValue(p, child)
		f.Args = append(f.Args, gen.GenericArg{
			Name:      l.Symbol[child.ID],
			Type:      l.Type[child.ID],
			Default:   def,
			Docstring: child.Docs.Description,
		})
	}

	const paramsSymbol = "params"

	var items []provider.ParamValueExpr
	for _, child := range sb.Params() {
		if child.Nullable {
			continue
		}
		items = append(items, provider.ParamValueExpr{Param: child, Expr: l.Symbol[child.ID]})
	}
	f.Body = append(f.Body, p.ParamDictCreate(paramsSymbol, s, items)...)

	for _, child := range sb.Params() {
		if !child.Nullable {
			continue
		}
		cond, ok := p.ParamVarIsSetByUser(child, l.Symbol[child.ID], false)
		if !ok {
			continue
		}
		f.Body = append(f.Body, p.IfElseBlock(cond, p.ParamDictSet(paramsSymbol, child, l.Symbol[child.ID]), nil)...)
	}

	f.Body = append(f.Body, p.ReturnStatement(paramsSymbol))
	return f
}

func compileParamDictType(p provider.Provider, s *ir.Param, l *Lookup) gen.LineBuffer {
	return p.ParamDictTypeDeclare(l.providerLookup(), s)
}

// compileBuildCargs emits the function assembling command-line arguments
// from a struct's parameter dict. Each ConditionalGroup contributes its
// cargs either unconditionally, or guarded by an if whose condition is the
// disjunction of every nullable param referenced within it; when more than
// one such param is referenced, the guarded cargs also substitute an empty
// placeholder for any one of them that ends up unset while the others are
// set. Grounded on _compile_build_cargs.
func compileBuildCargs(p provider.Provider, s *ir.Param, l *Lookup) gen.GenericFunc {
	sb := s.Body.(ir.StructBody)

	f := gen.GenericFunc{
		Name:          l.FuncBuildCargs[s.ID],
		DocstringBody: "Build command-line arguments from parameters.",
		ReturnType:    provider.TypeStringList(p),
		ReturnDescr:   "Command-line arguments.",
		Args: []gen.GenericArg{
			{Name: "params", Type: paramsDictType(l, s), Docstring: "The parameters."},
			{Name: p.SymbolExecution(), Type: p.TypeExecution(), Docstring: "The execution object for resolving input paths."},
		},
	}

	const cargsSymbol = "cargs"
	f.Body = append(f.Body, p.CargsDeclare(cargsSymbol)...)

	for _, group := range sb.Groups {
		var groupConditions []string
		var cargsExprs, cargsExprsMaybeNull []provider.MStr

		for _, carg := range group.Cargs {
			var cargExprs, cargExprsMaybeNull []provider.MStr

			for _, tok := range carg.Tokens {
				switch t := tok.(type) {
				case ir.CargLiteral:
					lit := provider.ExprLiteral(p, string(t))
					cargExprs = append(cargExprs, provider.MStr{Expr: lit})
					cargExprsMaybeNull = append(cargExprsMaybeNull, provider.MStr{Expr: lit})
				case *ir.Param:
					elemSymbol := p.ParamDictGetOrNull("params", t)
					asMstr := p.ParamVarToMstr(t, elemSymbol)
					cargExprs = append(cargExprs, asMstr)
					if cond, ok := p.ParamVarIsSetByUser(t, elemSymbol, false); ok {
						groupConditions = append(groupConditions, cond)
						empty := provider.MstrEmptyLiteralLike(p, asMstr)
						cargExprsMaybeNull = append(cargExprsMaybeNull, provider.MStr{
							Expr:   p.ExprTernary(cond, asMstr.Expr, empty, true),
							IsList: asMstr.IsList,
						})
					} else {
						cargExprsMaybeNull = append(cargExprsMaybeNull, asMstr)
					}
				}
			}

			if len(cargExprs) == 1 {
				cargsExprs = append(cargsExprs, cargExprs[0])
				cargsExprsMaybeNull = append(cargsExprsMaybeNull, cargExprsMaybeNull[0])
			} else {
				cargsExprs = append(cargsExprs, p.MstrConcat(cargExprs, "", ""))
				cargsExprsMaybeNull = append(cargsExprsMaybeNull, p.MstrConcat(cargExprsMaybeNull, "", ""))
			}
		}

		src := cargsExprs
		if len(groupConditions) > 1 {
			src = cargsExprsMaybeNull
		}
		bufAppending := p.MstrCargsAdd(cargsSymbol, src)

		if len(groupConditions) > 0 {
			f.Body = append(f.Body, p.IfElseBlock(p.ExprConditionsJoinOr(groupConditions), bufAppending, nil)...)
		} else {
			f.Body = append(f.Body, bufAppending...)
		}
	}

	f.Body = append(f.Body, p.ReturnStatement(cargsSymbol))
	return f
}

// compileOutputsClass emits struct s's outputs class: a root output-folder
// field, the captured-stream fields when stdout/stderr are non-nil (only
// ever true for the interface root), one field per declared Output, and one
// field per struct/struct-union child that itself produces outputs.
// Grounded on _compile_outputs_class.
func compileOutputsClass(p provider.Provider, s *ir.Param, module *gen.GenericModule, l *Lookup, stdout, stderr *ir.StdStreamCapture) {
	sb := s.Body.(ir.StructBody)

	outputsClass := &gen.GenericStructure{
		Name:      l.OutputType[s.ID],
		Docstring: fmt.Sprintf("Output object returned when calling %s(...).", backtick(l.StructType[s.ID])),
	}
	outputsClass.Fields = append(outputsClass.Fields, gen.GenericArg{
		Name:      "root",
		Type:      p.TypeOutputPath(),
		Docstring: "Output root folder. This is the root folder for all outputs.",
	})

	if stdout != nil {
		outputsClass.Fields = append(outputsClass.Fields, gen.GenericArg{
			Name:      l.StdoutFieldSymbol,
			Type:      provider.TypeStringList(p),
			Docstring: stdout.Docs.Description,
		})
	}
	if stderr != nil {
		outputsClass.Fields = append(outputsClass.Fields, gen.GenericArg{
			Name:      l.StderrFieldSymbol,
			Type:      provider.TypeStringList(p),
			Docstring: stderr.Docs.Description,
		})
	}

	for _, output := range s.Outputs {
		optional := false
		for _, ref := range output.ParamRefs() {
			if refParam, ok := l.Param[ref.RefID]; ok && refParam.Nullable {
				optional = true
			}
		}
		outType := p.TypeOutputPath()
		if optional {
			outType = p.TypeOptional(outType)
		}
		outputsClass.Fields = append(outputsClass.Fields, gen.GenericArg{
			Name:      l.OutputFieldSymbol[output.ID],
			Type:      outType,
			Docstring: output.Docs.Description,
		})
	}

	for _, sub := range sb.Params() {
		switch b := sub.Body.(type) {
		case ir.StructBody:
			if !ir.StructHasOutputs(sub) {
				continue
			}
			outType := l.OutputType[sub.ID]
			if sub.IsList() {
				outType = p.TypeList(outType)
			}
			if sub.Nullable {
				outType = p.TypeOptional(outType)
			}
			docsAppend := ""
			if sub.IsList() {
				docsAppend = " This is a list of outputs with the same length and order as the inputs."
			}
			outputsClass.Fields = append(outputsClass.Fields, gen.GenericArg{
				Name:      l.OutputFieldSymbol[sub.ID],
				Type:      outType,
				Docstring: fmt.Sprintf("Outputs from %s.%s", backtick(l.FuncBuildOutputs[sub.ID]), docsAppend),
			})
		case ir.StructUnionBody:
			var altTypes, altInputTypes []string
			for _, alt := range b.Alts {
				if ir.StructHasOutputs(alt) {
					altTypes = append(altTypes, l.OutputType[alt.ID])
					altInputTypes = append(altInputTypes, paramsDictType(l, alt))
				}
			}
			if len(altTypes) == 0 {
				continue
			}
			outType := p.TypeUnion(altTypes)
			if sub.IsList() {
				outType = p.TypeList(outType)
			}
			if sub.Nullable {
				outType = p.TypeOptional(outType)
			}
			docsAppend := ""
			if sub.IsList() {
				docsAppend = " This is a list of outputs with the same length and order as the inputs."
			}
			humanTypes := make([]string, len(altInputTypes))
			for i, t := range altInputTypes {
				humanTypes[i] = backtick(t)
			}
			outputsClass.Fields = append(outputsClass.Fields, gen.GenericArg{
				Name:      l.OutputFieldSymbol[sub.ID],
				Type:      outType,
				Docstring: fmt.Sprintf("Outputs from %s.%s", strings.Join(humanTypes, " or "), docsAppend),
			})
		}
	}

	module.FuncsAndStructs = append(module.FuncsAndStructs, outputsClass)
	module.Exports = append(module.Exports, outputsClass.Name)
}

// outputPathSegmentExpr renders the expression a single OutputParamReference
// contributes to an output path template, per the referenced param's body
// kind. Grounded on _compile_func_build_outputs's local _py_get_val.
func outputPathSegmentExpr(p provider.Provider, l *Lookup, ref ir.OutputParamReference) string {
	param := l.Param[ref.RefID]
	symbol := p.ParamDictGetOrNull("params", param)

	switch param.Body.(type) {
	case ir.StringBody:
		return p.ExprRemoveSuffixes(symbol, ref.FileRemoveSuffixes)
	case ir.IntBody, ir.FloatBody:
		return p.ExprNumericToStr(symbol)
	case ir.FileBody:
		return p.ExprRemoveSuffixes(p.ExprPathGetFilename(symbol), ref.FileRemoveSuffixes)
	default:
		panic(fmt.Sprintf("compile: unsupported output path template reference type for %q", param.Name))
	}
}

// compileFuncBuildOutputs emits the function resolving a struct's declared
// Outputs (and its output-bearing struct children) into its outputs object.
// Grounded on _compile_func_build_outputs.
func compileFuncBuildOutputs(p provider.Provider, s *ir.Param, l *Lookup, stdout, stderr *ir.StdStreamCapture) gen.GenericFunc {
	sb := s.Body.(ir.StructBody)

	f := gen.GenericFunc{
		Name:          l.FuncBuildOutputs[s.ID],
		DocstringBody: "Build outputs object containing output file paths and possibly stdout/stderr.",
		ReturnType:    l.OutputType[s.ID],
		ReturnDescr:   "Outputs object.",
		Args: []gen.GenericArg{
			{Name: "params", Type: paramsDictType(l, s), Docstring: "The parameters."},
			{Name: p.SymbolExecution(), Type: p.TypeExecution(), Docstring: "The execution object for resolving input paths."},
		},
	}

	members := map[string]string{}

	if stdout != nil {
		members[l.StdoutFieldSymbol] = p.ExprList(nil)
	}
	if stderr != nil {
		members[l.StderrFieldSymbol] = p.ExprList(nil)
	}

	for _, output := range s.Outputs {
		var segments []string
		var conditions []string
		for _, tok := range output.Tokens {
			switch t := tok.(type) {
			case ir.OutputLiteral:
				segments = append(segments, provider.ExprLiteral(p, string(t)))
			case ir.OutputParamReference:
				segments = append(segments, outputPathSegmentExpr(p, l, t))
				refParam := l.Param[t.RefID]
				refSymbol := p.ParamDictGetOrNull("params", refParam)
				if cond, ok := p.ParamVarIsSetByUser(refParam, refSymbol, false); ok {
					conditions = append(conditions, cond)
				}
			}
		}

		resolved := p.ResolveOutputFile(p.SymbolExecution(), p.ExprConcatStrs(segments, ""))
		if len(conditions) > 0 {
			members[l.OutputFieldSymbol[output.ID]] = p.ExprTernary(p.ExprConditionsJoinAnd(conditions), resolved, p.ExprNull(), false)
		} else {
			members[l.OutputFieldSymbol[output.ID]] = resolved
		}
	}

	for _, sub := range sb.Params() {
		hasOutputs := false
		switch b := sub.Body.(type) {
		case ir.StructBody:
			hasOutputs = ir.StructHasOutputs(sub)
		case ir.StructUnionBody:
			for _, alt := range b.Alts {
				if ir.StructHasOutputs(alt) {
					hasOutputs = true
					break
				}
			}
		}
		if !hasOutputs {
			continue
		}
		resolved := p.ParamDictGetOrNull("params", sub)
		members[l.OutputFieldSymbol[sub.ID]] = p.StructCollectOutputs(sub, resolved)
	}

	f.Body = p.GenerateRetObjectCreation(f.Body, p.SymbolExecution(), l.OutputType[s.ID], members)
	f.Body = append(f.Body, p.ReturnStatement("ret"))
	return f
}

// compileFuncExecute emits the function that, given an already-built
// parameter dict and an Execution, builds cargs, builds the outputs object,
// lets the execution process the params, runs, and returns the outputs.
// Only ever compiled for the interface root. Grounded on
// _compile_func_execute.
func compileFuncExecute(p provider.Provider, s *ir.Param, l *Lookup, stdout, stderr *ir.StdStreamCapture) gen.GenericFunc {
	outputsType := l.OutputType[s.ID]

	f := gen.GenericFunc{
		Name:          l.FuncExecute[s.ID],
		ReturnType:    outputsType,
		ReturnDescr:   fmt.Sprintf("Outputs object (described in %s).", backtick(outputsType)),
		DocstringBody: gen.DocsToDocstring(s.Docs),
		Args: []gen.GenericArg{
			{Name: "params", Type: paramsDictType(l, s), Docstring: "The parameters."},
			{Name: p.SymbolExecution(), Type: p.TypeExecution(), Docstring: "The execution object."},
		},
	}

	lookup := l.providerLookup()
	f.Body = append(f.Body, p.CallBuildCargs(lookup, s, "params", p.SymbolExecution(), "cargs")...)
	f.Body = append(f.Body, p.CallBuildOutputs(lookup, s, "params", p.SymbolExecution(), "ret")...)
	f.Body = append(f.Body, p.ExecutionProcessParams(p.SymbolExecution(), "params")...)

	var stdoutSymbol, stderrSymbol *string
	if stdout != nil {
		stdoutSymbol = &l.StdoutFieldSymbol
	}
	if stderr != nil {
		stderrSymbol = &l.StderrFieldSymbol
	}
	f.Body = append(f.Body, p.ExecutionRun(p.SymbolExecution(), "cargs", stdoutSymbol, stderrSymbol)...)
	f.Body = append(f.Body, p.ReturnStatement("ret"))
	return f
}

// compileFuncWrapperRoot emits the module's single public entry point: one
// positional/keyword argument per root parameter, a runner and execution
// setup, and a call into the root struct's build_params/execute chain.
// Grounded on _compile_func_wrapper_root.
func compileFuncWrapperRoot(p provider.Provider, s *ir.Param, l *Lookup, metadataSymbol, wrapperFuncName string) gen.GenericFunc {
	outputsType := l.OutputType[s.ID]

	f := gen.GenericFunc{
		Name:          wrapperFuncName,
		ReturnType:    outputsType,
		ReturnDescr:   fmt.Sprintf("Outputs object (described in %s).", backtick(outputsType)),
		DocstringBody: gen.DocsToDocstring(s.Docs),
	}

	sb := s.Body.(ir.StructBody)
	for _, elem := range sb.Params() {
		def, _ := provider.ParamDefaultValue(p, elem)
		f.Args = append(f.Args, gen.GenericArg{
			Name:      l.Symbol[elem.ID],
			Type:      l.Type[elem.ID],
			Default:   def,
			Docstring: elem.Docs.Description,
		})
	}

	f.Body = append(f.Body, p.RunnerDeclare(p.RunnerSymbol())...)
	f.Body = append(f.Body, p.ExecutionDeclare(p.SymbolExecution(), metadataSymbol)...)
	f.Body = append(f.Body, p.BuildParamsAndExecute(l.providerLookup(), s, p.SymbolExecution())...)

	f.Args = append(f.Args, gen.GenericArg{
		Name:      p.RunnerSymbol(),
		Type:      p.TypeOptional(p.TypeRunner()),
		Default:   p.ExprNull(),
		Docstring: "Command runner",
	})
	return f
}

// compileStruct recursively compiles struct s and every struct/struct-union
// descendant reachable through its own fields, appending each one's
// generated pieces to module in declaration order. Stream captures are
// carried only at the interface root — a nested struct never owns its own
// stdout/stderr field. Grounded on _compile_struct.
func compileStruct(p provider.Provider, s *ir.Param, module *gen.GenericModule, l *Lookup, isRoot bool, stdout, stderr *ir.StdStreamCapture) {
	sb := s.Body.(ir.StructBody)

	for _, child := range sb.Params() {
		switch b := child.Body.(type) {
		case ir.StructBody:
			compileStruct(p, child, module, l, false, nil, nil)
		case ir.StructUnionBody:
			for _, alt := range b.Alts {
				compileStruct(p, alt, module, l, false, nil, nil)
			}
		}
	}

	hasOutputs := isRoot || ir.StructHasOutputs(s)
	if hasOutputs {
		compileOutputsClass(p, s, module, l, stdout, stderr)
	}

	buildParams := compileBuildParams(p, s, l)
	module.FuncsAndStructs = append(module.FuncsAndStructs, buildParams)
	module.Exports = append(module.Exports, buildParams.Name)

	module.Header = append(module.Header, compileParamDictType(p, s, l)...)
	module.Exports = append(module.Exports, paramsDictType(l, s))

	module.FuncsAndStructs = append(module.FuncsAndStructs, compileBuildCargs(p, s, l))

	if hasOutputs {
		module.FuncsAndStructs = append(module.FuncsAndStructs, compileFuncBuildOutputs(p, s, l, stdout, stderr))
	}

	if isRoot {
		module.FuncsAndStructs = append(module.FuncsAndStructs, compileFuncExecute(p, s, l, stdout, stderr))
	}
}

// Interface compiles a normalized Interface into one wrapper module using
// Provider p. packageScope is shared across however many interfaces are
// emitted into the same target package, so every generated class/type name
// dodges its siblings. Grounded on compile_interface.
func Interface(p provider.Provider, iface *ir.Interface, packageScope *gen.Scope) *gen.GenericModule {
	module := &gen.GenericModule{}
	module.Imports = append(module.Imports, p.WrapperModuleImports()...)

	metadataSymbol := generateStaticMetadata(p, module, packageScope, iface)
	module.Exports = append(module.Exports, metadataSymbol)

	root := iface.Root
	wrapperFuncName := packageScope.AddOrDodge(p.SymbolVarCaseFrom(root.Name))
	module.Exports = append(module.Exports, wrapperFuncName)

	functionScope := gen.NewChildScope(p.LanguageScope())
	for _, reserved := range []string{p.RunnerSymbol(), p.SymbolExecution(), p.CargsSymbol(), "ret"} {
		if _, err := functionScope.AddOrDie(reserved); err != nil {
			panic(err)
		}
	}

	l := buildLookup(p, iface, packageScope, functionScope, wrapperFuncName)

	for _, fn := range p.DynDeclare(l.providerLookup(), root) {
		module.FuncsAndStructs = append(module.FuncsAndStructs, fn)
	}

	compileStruct(p, root, module, l, true, iface.Stdout, iface.Stderr)

	module.FuncsAndStructs = append(module.FuncsAndStructs, compileFuncWrapperRoot(p, root, l, metadataSymbol, wrapperFuncName))

	return module
}
