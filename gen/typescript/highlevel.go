package typescript

import (
	"fmt"
	"sort"
	"strings"

	"wrapgen/gen"
	"wrapgen/gen/provider"
	"wrapgen/ir"
)

func (Provider) IfElseBlock(condition string, truthy, falsy gen.LineBuffer) gen.LineBuffer {
	buf := gen.LineBuffer{fmt.Sprintf("if (%s) {", condition)}
	buf = append(buf, gen.IndentLines(truthy, 1)...)
	if len(falsy) > 0 {
		buf = append(buf, "} else {")
		buf = append(buf, gen.IndentLines(falsy, 1)...)
	}
	buf = append(buf, "}")
	return buf
}

func (Provider) GenerateArgDeclaration(arg gen.GenericArg) string {
	opt := ""
	typ := arg.Type
	if arg.Default != "" {
		opt = "?"
	}
	annot := ""
	if typ != "" {
		annot = ": " + typ
	}
	decl := arg.Name + opt + annot
	if arg.Default != "" {
		decl += " = " + arg.Default
	}
	return decl
}

func (p Provider) GenerateFunc(fn gen.GenericFunc) gen.LineBuffer {
	args := append([]gen.GenericArg(nil), fn.Args...)
	sort.SliceStable(args, func(i, j int) bool {
		return (args[i].Default != "") != (args[j].Default != "") && args[i].Default == ""
	})

	var argDecls []string
	for _, a := range args {
		argDecls = append(argDecls, p.GenerateArgDeclaration(a))
	}

	buf := gen.LineBuffer{fmt.Sprintf("export function %s(%s): %s {", fn.Name, strings.Join(argDecls, ", "), fn.ReturnType)}

	var doc gen.LineBuffer
	if fn.DocstringBody != "" || len(args) > 0 || fn.ReturnDescr != "" {
		doc = append(doc, "/**")
		if fn.DocstringBody != "" {
			for _, l := range gen.WrapParagraph(fn.DocstringBody, 76, 76) {
				doc = append(doc, " * "+l)
			}
		}
		for _, a := range args {
			if a.Docstring != "" {
				doc = append(doc, fmt.Sprintf(" * @param %s %s", a.Name, a.Docstring))
			}
		}
		if fn.ReturnDescr != "" {
			doc = append(doc, " * @returns "+fn.ReturnDescr)
		}
		doc = append(doc, " */")
	}

	body := fn.Body
	out := append(gen.LineBuffer(nil), doc...)
	out = append(out, buf...)
	out = append(out, gen.IndentLines(body, 1)...)
	out = append(out, "}")
	return out
}

func (p Provider) GenerateStructure(s gen.GenericStructure) gen.LineBuffer {
	fields := append([]gen.GenericArg(nil), s.Fields...)
	sort.SliceStable(fields, func(i, j int) bool {
		return (fields[i].Default != "") != (fields[j].Default != "") && fields[i].Default == ""
	})

	buf := gen.LineBuffer{}
	if s.Docstring != "" {
		buf = append(buf, "/**")
		for _, l := range gen.WrapParagraph(s.Docstring, 76, 76) {
			buf = append(buf, " * "+l)
		}
		buf = append(buf, " */")
	}
	buf = append(buf, fmt.Sprintf("export interface %s {", s.Name))
	for _, f := range fields {
		opt := ""
		if f.Default != "" {
			opt = "?"
		}
		buf = append(buf, gen.IndentLines(gen.LineBuffer{fmt.Sprintf("%s%s: %s;", f.Name, opt, f.Type)}, 1)...)
	}
	buf = append(buf, "}")

	for _, m := range s.Methods {
		buf = append(buf, "")
		buf = append(buf, p.GenerateFunc(m)...)
	}
	return buf
}

func (p Provider) GenerateModule(m gen.GenericModule) gen.LineBuffer {
	var buf gen.LineBuffer
	if m.Docstring != "" {
		buf = append(buf, "/**")
		for _, l := range gen.WrapParagraph(m.Docstring, 78, 78) {
			buf = append(buf, " * "+l)
		}
		buf = append(buf, " */")
	}
	buf = append(buf, gen.CommentLines(gen.LineBuffer{
		"This file was generated by wrapgen.",
		"Do not edit this file directly.",
	}, "//")...)
	buf = append(buf, gen.BlankBefore(m.Imports)...)
	buf = append(buf, gen.BlankBefore(m.Header)...)
	for _, fc := range m.FuncsAndStructs {
		buf = append(buf, gen.BlankBefore(provider.GenerateModel(p, fc))...)
		buf = append(buf, "")
	}
	buf = append(buf, gen.BlankBefore(m.Footer)...)
	return gen.BlankAfter(buf)
}

func (Provider) ReturnStatement(value string) string { return "return " + value + ";" }

func (Provider) WrapperModuleImports() gen.LineBuffer {
	return gen.LineBuffer{
		`import * as path from "node:path";`,
		`import { Runner, Execution, Metadata, getGlobalRunner } from "styxdefs";`,
	}
}

// ReexportImport re-exports an interface module from a package's index
// barrel file, the ECMAScript-module equivalent of the reference
// implementation's Python-only __init__.py reexport.
func (Provider) ReexportImport(moduleSymbol string) string {
	return fmt.Sprintf(`export * from "./%s";`, moduleSymbol)
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

	buf := gen.LineBuffer{fmt.Sprintf("const %s: Metadata = {", metadataSymbol)}
	for _, k := range keys {
		buf = append(buf, gen.IndentLines(gen.LineBuffer{
			fmt.Sprintf("%s: %s,", k, provider.ExprLiteral(p, entries[k])),
		}, 1)...)
	}
	buf = append(buf, "};")
	return buf
}

func (Provider) CargsSymbol() string { return "cargs" }

func (Provider) CargsDeclare(cargsSymbol string) gen.LineBuffer {
	return gen.LineBuffer{fmt.Sprintf("const %s: string[] = [];", cargsSymbol)}
}

func (Provider) MstrCargsAdd(cargsSymbol string, mstrs []provider.MStr) gen.LineBuffer {
	var buf gen.LineBuffer
	for _, m := range mstrs {
		if m.IsList {
			buf = append(buf, fmt.Sprintf("%s.push(...%s);", cargsSymbol, m.Expr))
		} else {
			buf = append(buf, fmt.Sprintf("%s.push(%s);", cargsSymbol, m.Expr))
		}
	}
	return buf
}

func (Provider) MstrCollapse(m provider.MStr, join string) provider.MStr {
	if !m.IsList {
		return m
	}
	return provider.MStr{Expr: fmt.Sprintf("%s.join(%s)", m.Expr, enquote(join)), IsList: false}
}

func (p Provider) MstrConcat(mstrs []provider.MStr, innerJoin, outerJoin string) provider.MStr {
	parts := make([]string, len(mstrs))
	for i, m := range mstrs {
		parts[i] = p.MstrCollapse(m, innerJoin).Expr
	}
	if outerJoin == "" {
		return provider.MStr{Expr: strings.Join(parts, " + "), IsList: false}
	}
	return provider.MStr{Expr: fmt.Sprintf("[%s].join(%s)", strings.Join(parts, ", "), enquote(outerJoin)), IsList: false}
}

func (Provider) RunnerSymbol() string { return "runner" }

func (Provider) RunnerDeclare(runnerSymbol string) gen.LineBuffer {
	return gen.LineBuffer{fmt.Sprintf("%s = %s ?? getGlobalRunner();", runnerSymbol, runnerSymbol)}
}

func (Provider) SymbolExecution() string { return "execution" }

func (Provider) ExecutionDeclare(executionSymbol, metadataSymbol string) gen.LineBuffer {
	return gen.LineBuffer{fmt.Sprintf("const %s = runner.startExecution(%s);", executionSymbol, metadataSymbol)}
}

func (Provider) ExecutionProcessParams(executionSymbol, paramsSymbol string) gen.LineBuffer {
	return gen.LineBuffer{fmt.Sprintf("%s = %s.processParams(%s);", paramsSymbol, executionSymbol, paramsSymbol)}
}

func (Provider) ExecutionRun(executionSymbol, cargsSymbol string, stdoutSymbol, stderrSymbol *string) gen.LineBuffer {
	args := cargsSymbol
	if stdoutSymbol != nil {
		args += fmt.Sprintf(", %s", *stdoutSymbol)
	}
	if stderrSymbol != nil {
		args += fmt.Sprintf(", %s", *stderrSymbol)
	}
	return gen.LineBuffer{fmt.Sprintf("%s.run(%s);", executionSymbol, args)}
}

func (Provider) GenerateRetObjectCreation(buf gen.LineBuffer, executionSymbol, outputType string, members map[string]string) gen.LineBuffer {
	buf = append(buf, fmt.Sprintf("const ret: %s = {", outputType))
	buf = append(buf, gen.IndentLines(gen.LineBuffer{fmt.Sprintf(`root: %s.outputFile("."),`, executionSymbol)}, 1)...)

	keys := make([]string, 0, len(members))
	for k := range members {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		buf = append(buf, gen.IndentLines(gen.LineBuffer{fmt.Sprintf("%s: %s,", k, members[k])}, 1)...)
	}
	buf = append(buf, "};")
	return buf
}

func (Provider) ResolveOutputFile(executionSymbol, fileExpr string) string {
	return fmt.Sprintf("%s.outputFile(%s)", executionSymbol, fileExpr)
}

func (Provider) StructCollectOutputs(s *ir.Param, structSymbol string) string {
	if s.IsList() {
		opt := ""
		if s.Nullable {
			opt = " ?? null"
		}
		return fmt.Sprintf("%s.map((i) => i.outputs?.(execution) ?? null)%s", structSymbol, opt)
	}
	o := fmt.Sprintf("%s.outputs(execution)", structSymbol)
	if s.Nullable {
		o = fmt.Sprintf("%s ? %s : null", structSymbol, o)
	}
	return o
}

// DynDeclare builds dynCargs/dynOutputs: each constructs a lookup object from
// root's struct tree, keyed by struct name, and indexes it with t. Every
// struct contributes to the cargs table; only struct_has_outputs structs
// contribute to the outputs table. Grounded on
// TypescriptLanguageProvider.dyn_declare.
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
		Name:          "dynCargs",
		DocstringBody: "Get build cargs function by command type.",
		ReturnDescr:   "Build cargs function.",
		Args:          []gen.GenericArg{{Name: "t", Type: "string", Docstring: "Command type"}},
		ReturnType:    "Function | undefined",
		Body: append(append(gen.LineBuffer{"const cargsFuncs = {"},
			gen.IndentLines(gen.LineBuffer(cargsItems), 1)...),
			"};", "return cargsFuncs[t];"),
	}
	outputsFunc := gen.GenericFunc{
		Name:          "dynOutputs",
		DocstringBody: "Get build outputs function by command type.",
		ReturnDescr:   "Build outputs function.",
		Args:          []gen.GenericArg{{Name: "t", Type: "string", Docstring: "Command type"}},
		ReturnType:    "Function | undefined",
		Body: append(append(gen.LineBuffer{"const outputsFuncs = {"},
			gen.IndentLines(gen.LineBuffer(outputsItems), 1)...),
			"};", "return outputsFuncs[t];"),
	}
	return []gen.GenericFunc{cargsFunc, outputsFunc}
}

func (p Provider) ParamDictTypeDeclare(lookup provider.LookupParam, s *ir.Param) gen.LineBuffer {
	typeName := lookup.StructType[s.ID] + "Parameters"
	sb, ok := s.Body.(ir.StructBody)
	if !ok {
		panic("typescript: ParamDictTypeDeclare called on a non-struct param")
	}

	buf := gen.LineBuffer{fmt.Sprintf("export interface %s {", typeName)}
	buf = append(buf, gen.IndentLines(gen.LineBuffer{
		fmt.Sprintf(`"__STYXTYPE__": %s;`, enquote(s.Name)),
	}, 1)...)
	for _, child := range sb.Params() {
		buf = append(buf, gen.IndentLines(gen.LineBuffer{
			fmt.Sprintf("%s: %s;", child.Name, provider.TypeParam(p, child, lookup.StructType)),
		}, 1)...)
	}
	buf = append(buf, "}")
	return buf
}

func (p Provider) ParamDictCreate(name string, s *ir.Param, items []provider.ParamValueExpr) gen.LineBuffer {
	buf := gen.LineBuffer{fmt.Sprintf("const %s = {", name)}
	buf = append(buf, gen.IndentLines(gen.LineBuffer{fmt.Sprintf(`"__STYXTYPE__": %s,`, enquote(s.Name))}, 1)...)
	for _, it := range items {
		buf = append(buf, gen.IndentLines(gen.LineBuffer{fmt.Sprintf("%s: %s,", it.Param.Name, it.Expr)}, 1)...)
	}
	buf = append(buf, "};")
	return buf
}

func (Provider) ParamDictSet(dictSymbol string, p *ir.Param, valueExpr string) gen.LineBuffer {
	return gen.LineBuffer{fmt.Sprintf("%s.%s = %s;", dictSymbol, p.Name, valueExpr)}
}

func (Provider) ParamDictGet(name string, p *ir.Param) string {
	return fmt.Sprintf("%s.%s", name, p.Name)
}

func (Provider) ParamDictGetOrNull(name string, p *ir.Param) string {
	return fmt.Sprintf("%s.%s ?? null", name, p.Name)
}
