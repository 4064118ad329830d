package python

import (
	"fmt"
	"sort"
	"strings"

	"wrapgen/gen"
	"wrapgen/gen/provider"
	"wrapgen/ir"
)

func (Provider) IfElseBlock(condition string, truthy, falsy gen.LineBuffer) gen.LineBuffer {
	buf := gen.LineBuffer{fmt.Sprintf("if %s:", condition)}
	buf = append(buf, gen.IndentLines(truthy, 1)...)
	if len(falsy) > 0 {
		buf = append(buf, "else:")
		buf = append(buf, gen.IndentLines(falsy, 1)...)
	}
	return buf
}

func (Provider) GenerateArgDeclaration(arg gen.GenericArg) string {
	annot := ""
	if arg.Type != "" {
		annot = ": " + arg.Type
	}
	if arg.Default == "" {
		return arg.Name + annot
	}
	return fmt.Sprintf("%s%s = %s", arg.Name, annot, arg.Default)
}

func (p Provider) GenerateFunc(fn gen.GenericFunc) gen.LineBuffer {
	args := append([]gen.GenericArg(nil), fn.Args...)
	sort.SliceStable(args, func(i, j int) bool {
		return (args[i].Default != "") != (args[j].Default != "") && args[i].Default == ""
	})

	buf := gen.LineBuffer{fmt.Sprintf("def %s(", fn.Name)}
	for _, a := range args {
		buf = append(buf, gen.IndentLines(gen.LineBuffer{p.GenerateArgDeclaration(a) + ","}, 1)...)
	}
	buf = append(buf, fmt.Sprintf(") -> %s:", fn.ReturnType))

	var argDocs gen.LineBuffer
	for _, a := range args {
		if a.Name == "self" {
			continue
		}
		line := fmt.Sprintf("%s: %s", a.Name, a.Docstring)
		wrapped := gen.WrapParagraph(line, 80-4*3-1, 80-4*2-1)
		argDocs = append(argDocs, wrapped[0])
		argDocs = append(argDocs, gen.IndentLines(wrapped[1:], 1)...)
	}

	var docLines gen.LineBuffer
	if fn.DocstringBody != "" {
		docLines = gen.WrapParagraph(fn.DocstringBody, 80-4, 80-4)
	} else {
		docLines = gen.LineBuffer{""}
	}
	docstring := gen.LineBuffer{`"""`}
	docstring = append(docstring, docLines...)
	docstring = append(docstring, "", "Args:")
	docstring = append(docstring, gen.IndentLines(argDocs, 1)...)
	if fn.ReturnDescr != "" {
		docstring = append(docstring, "Returns:")
		docstring = append(docstring, gen.IndentLines(gen.LineBuffer{fn.ReturnDescr}, 1)...)
	}
	docstring = append(docstring, `"""`)
	buf = append(buf, gen.IndentLines(docstring, 1)...)

	body := fn.Body
	if len(body) == 0 {
		body = gen.LineBuffer{"pass"}
	}
	buf = append(buf, gen.IndentLines(body, 1)...)
	return buf
}

func (p Provider) GenerateStructure(s gen.GenericStructure) gen.LineBuffer {
	fields := append([]gen.GenericArg(nil), s.Fields...)
	sort.SliceStable(fields, func(i, j int) bool {
		return (fields[i].Default != "") != (fields[j].Default != "") && fields[i].Default == ""
	})

	var fieldLines gen.LineBuffer
	for _, f := range fields {
		fieldLines = append(fieldLines, p.GenerateArgDeclaration(f))
		if f.Docstring != "" {
			fieldLines = append(fieldLines, `"""`+f.Docstring+`"""`)
		}
	}

	var methodLines gen.LineBuffer
	for i, m := range s.Methods {
		if i > 0 {
			methodLines = append(methodLines, "")
		}
		methodLines = append(methodLines, p.GenerateFunc(m)...)
	}

	buf := gen.LineBuffer{"@dataclasses.dataclass", fmt.Sprintf("class %s:", s.Name)}
	var inner gen.LineBuffer
	if s.Docstring != "" {
		inner = append(inner, `"""`)
		inner = append(inner, gen.WrapParagraph(s.Docstring, 80-4, 80-4)...)
		inner = append(inner, `"""`)
	}
	inner = append(inner, fieldLines...)
	inner = append(inner, gen.BlankBefore(methodLines)...)
	buf = append(buf, gen.IndentLines(inner, 1)...)
	return buf
}

func (p Provider) GenerateModule(m gen.GenericModule) gen.LineBuffer {
	var exports gen.LineBuffer
	if len(m.Exports) > 0 {
		sorted := append([]string(nil), m.Exports...)
		sort.Strings(sorted)
		exports = append(exports, "__all__ = [")
		for _, e := range sorted {
			exports = append(exports, gen.IndentLines(gen.LineBuffer{enquote(e) + ","}, 1)...)
		}
		exports = append(exports, "]")
	}

	var buf gen.LineBuffer
	if m.Docstring != "" {
		buf = append(buf, `"""`)
		buf = append(buf, gen.WrapParagraph(m.Docstring, 80, 80)...)
		buf = append(buf, `"""`)
	}
	buf = append(buf, gen.CommentLines(gen.LineBuffer{
		"This file was generated by wrapgen.",
		"Do not edit this file directly.",
	}, "#")...)
	buf = append(buf, gen.BlankBefore(m.Imports)...)
	buf = append(buf, gen.BlankBefore(m.Header)...)
	for _, fc := range m.FuncsAndStructs {
		buf = append(buf, gen.BlankBefore(provider.GenerateModel(p, fc))...)
		buf = append(buf, "")
	}
	buf = append(buf, gen.BlankBefore(m.Footer)...)
	if len(exports) > 0 {
		buf = append(buf, gen.BlankBefore(exports)...)
	}
	return gen.BlankAfter(buf)
}

func (Provider) ReturnStatement(value string) string { return "return " + value }

func (Provider) WrapperModuleImports() gen.LineBuffer {
	return gen.LineBuffer{
		"import typing",
		"import pathlib",
		"import dataclasses",
		"from styxdefs import *",
	}
}

// ReexportImport re-exports an interface module's wildcard public names
// from a package's __init__.py. Grounded on reexport_module.py's
// generate_reexport_module.
func (Provider) ReexportImport(moduleSymbol string) string {
	return fmt.Sprintf("from .%s import *", moduleSymbol)
}

func (p Provider) MetadataSymbol(interfaceBaseName string) string {
	return SymbolConstantCaseFrom(interfaceBaseName + "_METADATA")
}

func (p Provider) GenerateMetadata(metadataSymbol string, entries map[string]ir.Literal) gen.LineBuffer {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buf := gen.LineBuffer{metadataSymbol + " = Metadata("}
	for _, k := range keys {
		buf = append(buf, gen.IndentLines(gen.LineBuffer{
			fmt.Sprintf("%s=%s,", k, provider.ExprLiteral(p, entries[k])),
		}, 1)...)
	}
	buf = append(buf, ")")
	return buf
}

func (Provider) CargsSymbol() string { return "cargs" }

func (Provider) CargsDeclare(cargsSymbol string) gen.LineBuffer {
	return gen.LineBuffer{cargsSymbol + ": list[str] = []"}
}

func (Provider) MstrCargsAdd(cargsSymbol string, mstrs []provider.MStr) gen.LineBuffer {
	var buf gen.LineBuffer
	for _, m := range mstrs {
		if m.IsList {
			buf = append(buf, fmt.Sprintf("%s.extend(%s)", cargsSymbol, m.Expr))
		} else {
			buf = append(buf, fmt.Sprintf("%s.append(%s)", cargsSymbol, m.Expr))
		}
	}
	return buf
}

func (Provider) MstrCollapse(m provider.MStr, join string) provider.MStr {
	if !m.IsList {
		return m
	}
	quoted := strings.ReplaceAll(join, `"`, `\"`)
	return provider.MStr{Expr: fmt.Sprintf("%q.join(%s)", quoted, m.Expr), IsList: false}
}

func (Provider) MstrConcat(mstrs []provider.MStr, innerJoin, outerJoin string) provider.MStr {
	parts := make([]string, len(mstrs))
	for i, m := range mstrs {
		c := Provider{}.MstrCollapse(m, innerJoin)
		parts[i] = c.Expr
	}
	if outerJoin == "" {
		return provider.MStr{Expr: strings.Join(parts, " + "), IsList: false}
	}
	quoted := strings.ReplaceAll(outerJoin, `"`, `\"`)
	return provider.MStr{Expr: fmt.Sprintf("%q.join([%s])", quoted, strings.Join(parts, ", ")), IsList: false}
}

func (Provider) RunnerSymbol() string { return "runner" }

func (Provider) RunnerDeclare(runnerSymbol string) gen.LineBuffer {
	return gen.LineBuffer{fmt.Sprintf("%s = %s or get_global_runner()", runnerSymbol, runnerSymbol)}
}

func (Provider) SymbolExecution() string { return "execution" }

func (Provider) ExecutionDeclare(executionSymbol, metadataSymbol string) gen.LineBuffer {
	return gen.LineBuffer{fmt.Sprintf("%s = runner.start_execution(%s)", executionSymbol, metadataSymbol)}
}

func (Provider) ExecutionProcessParams(executionSymbol, paramsSymbol string) gen.LineBuffer {
	return gen.LineBuffer{fmt.Sprintf("%s = %s.process_params(%s)", paramsSymbol, executionSymbol, paramsSymbol)}
}

func (Provider) ExecutionRun(executionSymbol, cargsSymbol string, stdoutSymbol, stderrSymbol *string) gen.LineBuffer {
	args := cargsSymbol
	if stdoutSymbol != nil {
		args += fmt.Sprintf(", handle_stdout=%s", *stdoutSymbol)
	}
	if stderrSymbol != nil {
		args += fmt.Sprintf(", handle_stderr=%s", *stderrSymbol)
	}
	return gen.LineBuffer{fmt.Sprintf("%s.run(%s)", executionSymbol, args)}
}

func (Provider) GenerateRetObjectCreation(buf gen.LineBuffer, executionSymbol, outputType string, members map[string]string) gen.LineBuffer {
	buf = append(buf, fmt.Sprintf("ret = %s(", outputType))
	buf = append(buf, gen.IndentLines(gen.LineBuffer{fmt.Sprintf(`root=%s.output_file("."),`, executionSymbol)}, 1)...)

	keys := make([]string, 0, len(members))
	for k := range members {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		buf = append(buf, gen.IndentLines(gen.LineBuffer{fmt.Sprintf("%s=%s,", k, members[k])}, 1)...)
	}
	buf = append(buf, ")")
	return buf
}

func (Provider) ResolveOutputFile(executionSymbol, fileExpr string) string {
	return fmt.Sprintf("%s.output_file(%s)", executionSymbol, fileExpr)
}

func (Provider) StructCollectOutputs(s *ir.Param, structSymbol string) string {
	if s.IsList() {
		opt := ""
		if s.Nullable {
			opt = fmt.Sprintf(" if %s else None", structSymbol)
		}
		return fmt.Sprintf(`[i.outputs(execution) if hasattr(i, "outputs") else None for i in %s]%s`, structSymbol, opt)
	}
	o := fmt.Sprintf("%s.outputs(execution)", structSymbol)
	if s.Nullable {
		o += fmt.Sprintf(" if %s else None", structSymbol)
	}
	return o
}

// DynDeclare builds dyn_cargs/dyn_outputs: each constructs a dict literal from
// root's struct tree, keyed by struct name, and indexes it with t. Every
// struct contributes to the cargs table; only struct_has_outputs structs
// contribute to the outputs table. The reference implementation leaves this
// override out of its Python backend entirely (dynamic dispatch there goes
// through a different mechanism not present in this pack), so the table
// shape here follows the TypeScript/R overrides' pattern and keys by the
// struct's own name for consistency with param_dict_set's keying elsewhere.
func (p Provider) DynDeclare(lookup provider.LookupParam, root *ir.Param) []gen.GenericFunc {
	var cargsItems, outputsItems []string
	for s := range ir.IterStructsRecursively(root, false) {
		if _, ok := s.Body.(ir.StructBody); !ok {
			continue
		}
		cargsItems = append(cargsItems, fmt.Sprintf("%s: %s,", enquote(s.Name), lookup.FuncBuildCargs[s.ID]))
		if ir.StructHasOutputs(s) {
			outputsItems = append(outputsItems, fmt.Sprintf("%s: %s,", enquote(s.Name), lookup.FuncBuildOutputs[s.ID]))
		}
	}

	cargsFunc := gen.GenericFunc{
		Name:          "dyn_cargs",
		DocstringBody: "Get build cargs function by command type.",
		ReturnDescr:   "Build cargs function.",
		Args:          []gen.GenericArg{{Name: "t", Type: "str", Docstring: "Command type"}},
		ReturnType:    "typing.Callable[..., list[str]]",
		Body: append(append(gen.LineBuffer{"cargs_funcs = {"},
			gen.IndentLines(gen.LineBuffer(cargsItems), 1)...),
			"}", "return cargs_funcs[t]"),
	}
	outputsFunc := gen.GenericFunc{
		Name:          "dyn_outputs",
		DocstringBody: "Get build outputs function by command type.",
		ReturnDescr:   "Build outputs function.",
		Args:          []gen.GenericArg{{Name: "t", Type: "str", Docstring: "Command type"}},
		ReturnType:    "typing.Callable[..., typing.Any]",
		Body: append(append(gen.LineBuffer{"outputs_funcs = {"},
			gen.IndentLines(gen.LineBuffer(outputsItems), 1)...),
			"}", "return outputs_funcs[t]"),
	}
	return []gen.GenericFunc{cargsFunc, outputsFunc}
}

func (p Provider) ParamDictTypeDeclare(lookup provider.LookupParam, s *ir.Param) gen.LineBuffer {
	typeName := lookup.StructType[s.ID] + "Parameters"
	sb, ok := s.Body.(ir.StructBody)
	if !ok {
		panic("python: ParamDictTypeDeclare called on a non-struct param")
	}

	buf := gen.LineBuffer{fmt.Sprintf("%s = typing.TypedDict(%q, {", typeName, typeName)}
	buf = append(buf, gen.IndentLines(gen.LineBuffer{
		fmt.Sprintf(`"__STYXTYPE__": typing.Literal[%s],`, enquote(s.Name)),
	}, 1)...)
	for _, child := range sb.Params() {
		buf = append(buf, gen.IndentLines(gen.LineBuffer{
			fmt.Sprintf("%s: %s,", enquote(child.Name), provider.TypeParam(p, child, lookup.StructType)),
		}, 1)...)
	}
	buf = append(buf, "})")
	return buf
}

func (p Provider) ParamDictCreate(name string, s *ir.Param, items []provider.ParamValueExpr) gen.LineBuffer {
	buf := gen.LineBuffer{name + " = {"}
	buf = append(buf, gen.IndentLines(gen.LineBuffer{fmt.Sprintf(`"__STYXTYPE__": %s,`, enquote(s.Name))}, 1)...)
	for _, it := range items {
		buf = append(buf, gen.IndentLines(gen.LineBuffer{fmt.Sprintf("%s: %s,", enquote(it.Param.Name), it.Expr)}, 1)...)
	}
	buf = append(buf, "}")
	return buf
}

func (Provider) ParamDictSet(dictSymbol string, p *ir.Param, valueExpr string) gen.LineBuffer {
	return gen.LineBuffer{fmt.Sprintf("%s[%s] = %s", dictSymbol, enquote(p.Name), valueExpr)}
}

func (Provider) ParamDictGet(name string, p *ir.Param) string {
	return fmt.Sprintf("%s[%s]", name, enquote(p.Name))
}

func (Provider) ParamDictGetOrNull(name string, p *ir.Param) string {
	return fmt.Sprintf("%s.get(%s)", name, enquote(p.Name))
}
