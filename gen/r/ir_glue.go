package r

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
			return provider.MStr{Expr: fmt.Sprintf("as.character(%s)", symbol), IsList: false}
		case ir.BoolBody:
			return p.boolVarToMstr(b, symbol)
		case ir.FileBody:
			return provider.MStr{Expr: fmt.Sprintf("execution$input_file(%s)", symbol), IsList: false}
		case ir.StructBody, ir.StructUnionBody:
			return provider.MStr{Expr: fmt.Sprintf("%s$run(execution)", symbol), IsList: true}
		default:
			panic("r: unhandled param body in ParamVarToMstr")
		}
	}

	join := param.List.Join
	switch param.Body.(type) {
	case ir.StringBody:
		if join == nil {
			return provider.MStr{Expr: symbol, IsList: true}
		}
		return provider.MStr{Expr: fmt.Sprintf("paste(%s, collapse = %s)", symbol, enquote(*join)), IsList: false}
	case ir.IntBody, ir.FloatBody:
		expr := fmt.Sprintf("vapply(%s, as.character, character(1))", symbol)
		if join == nil {
			return provider.MStr{Expr: expr, IsList: true}
		}
		return provider.MStr{Expr: fmt.Sprintf("paste(%s, collapse = %s)", expr, enquote(*join)), IsList: false}
	case ir.FileBody:
		expr := fmt.Sprintf("vapply(%s, function(f) execution$input_file(f), character(1))", symbol)
		if join == nil {
			return provider.MStr{Expr: expr, IsList: true}
		}
		return provider.MStr{Expr: fmt.Sprintf("paste(%s, collapse = %s)", expr, enquote(*join)), IsList: false}
	case ir.StructBody, ir.StructUnionBody:
		expr := fmt.Sprintf("unlist(lapply(%s, function(s) s$run(execution)))", symbol)
		if join == nil {
			return provider.MStr{Expr: expr, IsList: true}
		}
		return provider.MStr{Expr: fmt.Sprintf("paste(%s, collapse = %s)", expr, enquote(*join)), IsList: false}
	default:
		panic("r: unhandled list param body in ParamVarToMstr")
	}
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
			Expr:   fmt.Sprintf("(if (%s) %s else %s)", symbol, literalFor(b.ValueTrue), literalFor(b.ValueFalse)),
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
			return fmt.Sprintf("(!is.null(%s))", symbol), true
		}
		return fmt.Sprintf("!is.null(%s)", symbol), true
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
		fmt.Sprintf("params <- %s(%s)", lookup.FuncBuildParams[s.ID], strings.Join(args, ", ")),
		fmt.Sprintf("%s(params, %s)", lookup.FuncExecute[s.ID], executionSymbol),
	}
}

func (Provider) CallBuildCargs(lookup provider.LookupParam, s *ir.Param, paramsSymbol, executionSymbol, returnSymbol string) gen.LineBuffer {
	return gen.LineBuffer{fmt.Sprintf("%s <- %s(%s, %s)", returnSymbol, lookup.FuncBuildCargs[s.ID], paramsSymbol, executionSymbol)}
}

func (Provider) CallBuildOutputs(lookup provider.LookupParam, s *ir.Param, paramsSymbol, executionSymbol, returnSymbol string) gen.LineBuffer {
	return gen.LineBuffer{fmt.Sprintf("%s <- %s(%s, %s)", returnSymbol, lookup.FuncBuildOutputs[s.ID], paramsSymbol, executionSymbol)}
}
