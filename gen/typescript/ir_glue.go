package typescript

import (
	"fmt"
	"strings"

	"wrapgen/gen"
	"wrapgen/gen/provider"
	"wrapgen/ir"
)

func (p Provider) ParamVarToMstr(param *ir.Param, symbol string) provider.MStr {
	if !param.IsList() {
		switch b := param.Body.(type) {
		case ir.StringBody:
			return provider.MStr{Expr: symbol, IsList: false}
		case ir.IntBody, ir.FloatBody:
			return provider.MStr{Expr: fmt.Sprintf("String(%s)", symbol), IsList: false}
		case ir.BoolBody:
			return p.boolVarToMstr(b, symbol)
		case ir.FileBody:
			return provider.MStr{Expr: fmt.Sprintf("execution.inputFile(%s%s)", symbol, fileExtraArgs(b)), IsList: false}
		case ir.StructBody, ir.StructUnionBody:
			return provider.MStr{Expr: fmt.Sprintf("dynCargs(%s.__STYXTYPE__)(%s, execution)", symbol, symbol), IsList: true}
		default:
			panic("typescript: unhandled param body in ParamVarToMstr")
		}
	}

	join := param.List.Join
	switch b := param.Body.(type) {
	case ir.StringBody:
		if join == nil {
			return provider.MStr{Expr: symbol, IsList: true}
		}
		return provider.MStr{Expr: fmt.Sprintf("%s.join(%s)", symbol, enquote(*join)), IsList: false}
	case ir.IntBody, ir.FloatBody:
		if join == nil {
			return provider.MStr{Expr: fmt.Sprintf("%s.map(String)", symbol), IsList: true}
		}
		return provider.MStr{Expr: fmt.Sprintf("%s.map(String).join(%s)", symbol, enquote(*join)), IsList: false}
	case ir.FileBody:
		expr := fmt.Sprintf("%s.map((f) => execution.inputFile(f%s))", symbol, fileExtraArgs(b))
		if join == nil {
			return provider.MStr{Expr: expr, IsList: true}
		}
		return provider.MStr{Expr: fmt.Sprintf("%s.join(%s)", expr, enquote(*join)), IsList: false}
	case ir.StructBody, ir.StructUnionBody:
		expr := fmt.Sprintf("%s.map((s) => dynCargs(s.__STYXTYPE__)(s, execution)).flat()", symbol)
		if join == nil {
			return provider.MStr{Expr: expr, IsList: true}
		}
		return provider.MStr{Expr: fmt.Sprintf("%s.join(%s)", expr, enquote(*join)), IsList: false}
	default:
		panic("typescript: unhandled list param body in ParamVarToMstr")
	}
}

func fileExtraArgs(b ir.FileBody) string {
	extra := ""
	if b.ResolveParent {
		extra += ", { resolveParent: true }"
	}
	if b.Mutable {
		extra += ", { mutable: true }"
	}
	return extra
}

func (p Provider) boolVarToMstr(b ir.BoolBody, symbol string) provider.MStr {
	asList := len(b.ValueTrue) > 1 || len(b.ValueFalse) > 1
	literalFor := func(vals []string) string {
		if asList {
			elems := make([]string, len(vals))
			for i, v := range vals {
				elems[i] = p.ExprStr(v)
			}
			return p.ExprList(elems)
		}
		if len(vals) == 0 {
			return p.ExprNull()
		}
		return p.ExprStr(vals[0])
	}

	switch {
	case len(b.ValueTrue) > 0 && len(b.ValueFalse) > 0:
		return provider.MStr{
			Expr:   fmt.Sprintf("(%s ? %s : %s)", symbol, literalFor(b.ValueTrue), literalFor(b.ValueFalse)),
			IsList: asList,
		}
	case len(b.ValueTrue) > 0:
		return provider.MStr{Expr: literalFor(b.ValueTrue), IsList: asList}
	default:
		return provider.MStr{Expr: literalFor(b.ValueFalse), IsList: asList}
	}
}

func (Provider) ParamVarIsSetByUser(param *ir.Param, symbol string, enbraceStatement bool) (string, bool) {
	return isSetByUser(param, symbol, enbraceStatement)
}

func (Provider) ParamIsSetByUser(param *ir.Param, symbol string, enbraceStatement bool) (string, bool) {
	return isSetByUser(param, symbol, enbraceStatement)
}

func isSetByUser(param *ir.Param, symbol string, enbraceStatement bool) (string, bool) {
	if param.Nullable {
		if enbraceStatement {
			return fmt.Sprintf("(%s !== null)", symbol), true
		}
		return fmt.Sprintf("%s !== null", symbol), true
	}

	if b, ok := param.Body.(ir.BoolBody); ok {
		if len(b.ValueTrue) > 0 && len(b.ValueFalse) == 0 {
			return symbol, true
		}
		if len(b.ValueFalse) > 0 && len(b.ValueTrue) == 0 {
			if enbraceStatement {
				return fmt.Sprintf("(!%s)", symbol), true
			}
			return "!" + symbol, true
		}
	}
	return "", false
}

func (Provider) BuildParamsAndExecute(lookup provider.LookupParam, s *ir.Param, executionSymbol string) gen.LineBuffer {
	sb := s.Body.(ir.StructBody)
	args := make([]string, 0, len(sb.Params()))
	for _, child := range sb.Params() {
		args = append(args, lookup.ParamSymbol[child.ID])
	}
	return gen.LineBuffer{
		fmt.Sprintf("const params = %s(%s);", lookup.FuncBuildParams[s.ID], strings.Join(args, ", ")),
		fmt.Sprintf("return %s(params, %s);", lookup.FuncExecute[s.ID], executionSymbol),
	}
}

func (Provider) CallBuildCargs(lookup provider.LookupParam, s *ir.Param, paramsSymbol, executionSymbol, returnSymbol string) gen.LineBuffer {
	return gen.LineBuffer{fmt.Sprintf("const %s = %s(%s, %s);", returnSymbol, lookup.FuncBuildCargs[s.ID], paramsSymbol, executionSymbol)}
}

func (Provider) CallBuildOutputs(lookup provider.LookupParam, s *ir.Param, paramsSymbol, executionSymbol, returnSymbol string) gen.LineBuffer {
	return gen.LineBuffer{fmt.Sprintf("const %s = %s(%s, %s);", returnSymbol, lookup.FuncBuildOutputs[s.ID], paramsSymbol, executionSymbol)}
}
