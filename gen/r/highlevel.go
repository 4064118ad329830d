package r

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
	if arg.Default == "" {
		return arg.Name
	}
	return fmt.Sprintf("%s = %s", arg.Name, arg.Default)
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

	var doc gen.LineBuffer
	if fn.DocstringBody != "" {
		for _, l := range gen.WrapParagraph(fn.DocstringBody, 76, 76) {
			doc = append(doc, "#' "+l)
		}
	}
	for _, a := range args {
		if a.Docstring != "" {
			doc = append(doc, fmt.Sprintf("#' @param %s %s", a.Name, a.Docstring))
		}
	}
	if fn.ReturnDescr != "" {
		doc = append(doc, "#' @return "+fn.ReturnDescr)
	}

	buf := append(gen.LineBuffer(nil), doc...)
	buf = append(buf, fmt.Sprintf("%s <- function(%s) {", fn.Name, strings.Join(argDecls, ", ")))
	buf = append(buf, gen.IndentLines(fn.Body, 1)...)
	buf = append(buf, "}")
	return buf
}

func (p Provider) GenerateStructure(s gen.GenericStructure) gen.LineBuffer {
	fields := append([]gen.GenericArg(nil), s.Fields...)
	sort.SliceStable(fields, func(i, j int) bool {
		return (fields[i].Default != "") != (fields[j].Default != "") && fields[i].Default == ""
	})

	var doc gen.LineBuffer
	if s.Docstring != "" {
		for _, l := range gen.WrapParagraph(s.Docstring, 76, 76) {
			doc = append(doc, "#' "+l)
		}
	}

	ctorName := "new_" + SymbolVarCaseFrom(s.Name)
	var argDecls []string
	for _, f := range fields {
		argDecls = append(argDecls, p.GenerateArgDeclaration(f))
	}
	var listEntries []string
	for _, f := range fields {
		listEntries = append(listEntries, fmt.Sprintf("%s = %s", f.Name, f.Name))
	}

	buf := append(gen.LineBuffer(nil), doc...)
	buf = append(buf, fmt.Sprintf("%s <- function(%s) {", ctorName, strings.Join(argDecls, ", ")))
	buf = append(buf, gen.IndentLines(gen.LineBuffer{
		fmt.Sprintf("structure(list(%s), class = %s)", strings.Join(listEntries, ", "), enquote(s.Name)),
	}, 1)...)
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
		for _, l := range gen.WrapParagraph(m.Docstring, 78, 78) {
			buf = append(buf, "#' "+l)
		}
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
	return gen.BlankAfter(buf)
}

func (Provider) ReturnStatement(value string) string { return value }

func (Provider) WrapperModuleImports() gen.LineBuffer {
	return gen.LineBuffer{"library(styxdefs)"}
}

// ReexportImport returns "": an R package's NAMESPACE, not a per-file
// import statement, governs what's exported, and every R/*.R file is
// sourced automatically at build time regardless of cross-references
// between them.
func (Provider) ReexportImport(moduleSymbol string) string {
	return ""
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

	buf := gen.LineBuffer{metadataSymbol + " <- list("}
	for i, k := range keys {
		sep := ","
		if i == len(keys)-1 {
			sep = ""
		}
		buf = append(buf, gen.IndentLines(gen.LineBuffer{
			fmt.Sprintf("%s = %s%s", k, provider.ExprLiteral(p, entries[k]), sep),
		}, 1)...)
	}
	buf = append(buf, ")")
	return buf
}

func (Provider) CargsSymbol() string { return "cargs" }

func (Provider) CargsDeclare(cargsSymbol string) gen.LineBuffer {
	return gen.LineBuffer{fmt.Sprintf("%s <- character(0)", cargsSymbol)}
}

func (Provider) MstrCargsAdd(cargsSymbol string, mstrs []provider.MStr) gen.LineBuffer {
	var buf gen.LineBuffer
	for _, m := range mstrs {
		buf = append(buf, fmt.Sprintf("%s <- c(%s, %s)", cargsSymbol, cargsSymbol, m.Expr))
	}
	return buf
}

func (Provider) MstrCollapse(m provider.MStr, join string) provider.MStr {
	if !m.IsList {
		return m
	}
	return provider.MStr{Expr: fmt.Sprintf("paste(%s, collapse = %s)", m.Expr, enquote(join)), IsList: false}
}

func (p Provider) MstrConcat(mstrs []provider.MStr, innerJoin, outerJoin string) provider.MStr {
	parts := make([]string, len(mstrs))
	for i, m := range mstrs {
		parts[i] = p.MstrCollapse(m, innerJoin).Expr
	}
	return provider.MStr{Expr: fmt.Sprintf("paste(%s, collapse = %s)", strings.Join(parts, ", "), enquote(outerJoin)), IsList: false}
}

func (Provider) RunnerSymbol() string { return "runner" }

func (Provider) RunnerDeclare(runnerSymbol string) gen.LineBuffer {
	return gen.LineBuffer{fmt.Sprintf("%s <- if (is.null(%s)) get_global_runner() else %s", runnerSymbol, runnerSymbol, runnerSymbol)}
}

func (Provider) SymbolExecution() string { return "execution" }

func (Provider) ExecutionDeclare(executionSymbol, metadataSymbol string) gen.LineBuffer {
	return gen.LineBuffer{fmt.Sprintf("%s <- runner$start_execution(%s)", executionSymbol, metadataSymbol)}
}

func (Provider) ExecutionProcessParams(executionSymbol, paramsSymbol string) gen.LineBuffer {
	return gen.LineBuffer{fmt.Sprintf("%s <- %s$process_params(%s)", paramsSymbol, executionSymbol, paramsSymbol)}
}

func (Provider) ExecutionRun(executionSymbol, cargsSymbol string, stdoutSymbol, stderrSymbol *string) gen.LineBuffer {
	return gen.LineBuffer{fmt.Sprintf("%s$run(%s)", executionSymbol, cargsSymbol)}
}

func (Provider) GenerateRetObjectCreation(buf gen.LineBuffer, executionSymbol, outputType string, members map[string]string) gen.LineBuffer {
	buf = append(buf, fmt.Sprintf("ret <- structure(list(root = %s$output_file(\".\"),", executionSymbol))
	keys := make([]string, 0, len(members))
	for k := range members {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		buf = append(buf, gen.IndentLines(gen.LineBuffer{fmt.Sprintf("%s = %s,", k, members[k])}, 1)...)
	}
	buf = append(buf, fmt.Sprintf("class = %s)", enquote(outputType)))
	return buf
}

func (Provider) ResolveOutputFile(executionSymbol, fileExpr string) string {
	return fmt.Sprintf("%s$output_file(%s)", executionSymbol, fileExpr)
}

func (Provider) StructCollectOutputs(s *ir.Param, structSymbol string) string {
	if s.IsList() {
		opt := ""
		if s.Nullable {
			opt = " else NULL"
		}
		return fmt.Sprintf("if (!is.null(%s)) lapply(%s, function(i) i$outputs(execution))%s", structSymbol, structSymbol, opt)
	}
	o := fmt.Sprintf("%s$outputs(execution)", structSymbol)
	if s.Nullable {
		o = fmt.Sprintf("if (!is.null(%s)) %s else NULL", structSymbol, o)
	}
	return o
}

// DynDeclare builds dyn.cargs/dyn.outputs: each rebuilds a dispatch table,
// keyed by struct name, from root's struct tree, and looks up t in it. Every
// struct contributes to the cargs table; only struct_has_outputs structs
// contribute to the outputs table. Grounded on
// RLanguageProvider.dyn_declare.
func (p Provider) DynDeclare(lookup provider.LookupParam, root *ir.Param) []gen.GenericFunc {
	dispatchBody := func(name string, items []string) gen.LineBuffer {
		buf := gen.LineBuffer{"dispatch_table <- list("}
		buf = append(buf, gen.IndentLines(gen.LineBuffer(items), 1)...)
		buf = append(buf, ")", fmt.Sprintf("return(dispatch_table[[%s]])", name))
		return buf
	}

	var cargsItems, outputsItems []string
	for s := range ir.IterStructsRecursively(root, false) {
		if _, ok := s.Body.(ir.StructBody); !ok {
			continue
		}
		// Keyed by s.Name (the struct's own Base.Name), matching the
		// "__STYXTYPE__" discriminant struct_collect_outputs/param_dict_set
		// stamp onto every built params object.
		cargsItems = append(cargsItems, fmt.Sprintf("%s = %s,", enquote(s.Name), lookup.FuncBuildCargs[s.ID]))
		if ir.StructHasOutputs(s) {
			outputsItems = append(outputsItems, fmt.Sprintf("%s = %s,", enquote(s.Name), lookup.FuncBuildOutputs[s.ID]))
		}
	}

	cargsFunc := gen.GenericFunc{
		Name:          "dyn.cargs",
		DocstringBody: "Get build cargs function by command type.",
		ReturnDescr:   "Build cargs function.",
		Args:          []gen.GenericArg{{Name: "t", Docstring: "Command type"}},
		Body:          dispatchBody("t", cargsItems),
	}
	outputsFunc := gen.GenericFunc{
		Name:          "dyn.outputs",
		DocstringBody: "Get build outputs function by command type.",
		ReturnDescr:   "Build outputs function.",
		Args:          []gen.GenericArg{{Name: "t", Docstring: "Command type"}},
		Body:          dispatchBody("t", outputsItems),
	}
	return []gen.GenericFunc{cargsFunc, outputsFunc}
}

func (p Provider) ParamDictTypeDeclare(lookup provider.LookupParam, s *ir.Param) gen.LineBuffer {
	return gen.LineBuffer{fmt.Sprintf("# %sParameters is represented as a named list, not a declared type.", lookup.StructType[s.ID])}
}

func (p Provider) ParamDictCreate(name string, s *ir.Param, items []provider.ParamValueExpr) gen.LineBuffer {
	entries := []string{fmt.Sprintf(`"__STYXTYPE__" = %s`, enquote(s.Name))}
	for _, it := range items {
		entries = append(entries, fmt.Sprintf("%s = %s", it.Param.Name, it.Expr))
	}
	return gen.LineBuffer{fmt.Sprintf("%s <- list(%s)", name, strings.Join(entries, ", "))}
}

func (Provider) ParamDictSet(dictSymbol string, p *ir.Param, valueExpr string) gen.LineBuffer {
	return gen.LineBuffer{fmt.Sprintf("%s[[%s]] <- %s", dictSymbol, enquote(p.Name), valueExpr)}
}

func (Provider) ParamDictGet(name string, p *ir.Param) string {
	return fmt.Sprintf("%s[[%s]]", name, enquote(p.Name))
}

func (Provider) ParamDictGetOrNull(name string, p *ir.Param) string {
	return fmt.Sprintf("%s[[%s]]", name, enquote(p.Name))
}
