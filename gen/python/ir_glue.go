package python

import (
	"fmt"
	"strings"

	"wrapgen/gen"
	"wrapgen/gen/provider"
	"wrapgen/ir"
)

// ParamVarToMstr renders symbol (a variable already holding param's
// value) as an MStr suitable for splicing into cargs. Grounded on
// PythonLanguageProvider.param_var_to_str.
func (p Provider) ParamVarToMstr(param *ir.Param, symbol string) provider.MStr {
	if !param.IsList() {
		switch b := param.Body.(type) {
		case ir.StringBody:
			return provider.MStr{Expr: symbol, IsList: false}
		case ir.IntBody:
			return provider.MStr{Expr: fmt.Sprintf("str(%s)", symbol), IsList: false}
		case ir.FloatBody:
			return provider.MStr{Expr: fmt.Sprintf("str(%s)", symbol), IsList: false}
		case ir.BoolBody:
			return p.boolVarToMstr(b, symbol)
		case ir.FileBody:
			return provider.MStr{Expr: fmt.Sprintf("execution.input_file(%s%s)", symbol, fileExtraArgs(b)), IsList: false}
		case ir.StructBody, ir.StructUnionBody:
			return provider.MStr{Expr: fmt.Sprintf("%s.run(execution)", symbol), IsList: true}
		default:
			panic("python: unhandled param body in ParamVarToMstr")
		}
	}

	join := param.List.Join
	switch b := param.Body.(type) {
	case ir.StringBody:
		if join == nil {
			return provider.MStr{Expr: symbol, IsList: true}
		}
		return provider.MStr{Expr: fmt.Sprintf("%q.join(%s)", *join, symbol), IsList: false}
	case ir.IntBody, ir.FloatBody:
		if join == nil {
			return provider.MStr{Expr: fmt.Sprintf("map(str, %s)", symbol), IsList: true}
		}
		return provider.MStr{Expr: fmt.Sprintf("%q.join(map(str, %s))", *join, symbol), IsList: false}
	case ir.FileBody:
		expr := fmt.Sprintf("[execution.input_file(f%s) for f in %s]", fileExtraArgs(b), symbol)
		if join == nil {
			return provider.MStr{Expr: expr, IsList: true}
		}
		return provider.MStr{Expr: fmt.Sprintf("%q.join(%s)", *join, expr), IsList: false}
	case ir.StructBody, ir.StructUnionBody:
		expr := fmt.Sprintf("[a for c in [s.run(execution) for s in %s] for a in c]", symbol)
		if join == nil {
			return provider.MStr{Expr: expr, IsList: true}
		}
		return provider.MStr{Expr: fmt.Sprintf("%q.join(%s)", *join, expr), IsList: false}
	default:
		panic("python: unhandled list param body in ParamVarToMstr")
	}
}

func fileExtraArgs(b ir.FileBody) string {
	extra := ""
	if b.ResolveParent {
		extra += ", resolve_parent=True"
	}
	if b.Mutable {
		extra += ", mutable=True"
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
			Expr:   fmt.Sprintf("(%s if %s else %s)", literalFor(b.ValueTrue), symbol, literalFor(b.ValueFalse)),
			IsList: asList,
		}
	case len(b.ValueTrue) > 0:
		return provider.MStr{Expr: literalFor(b.ValueTrue), IsList: asList}
	default:
		return provider.MStr{Expr: literalFor(b.ValueFalse), IsList: asList}
	}
}

// ParamVarIsSetByUser and ParamIsSetByUser share one implementation: a
// nullable param is set whenever its variable isn't None; a non-nullable
// Flag param is "set" when true (or when false, for a Flag whose only
// literal is the false-branch) — anything else is always set. Grounded
// on PythonLanguageProvider.param_var_is_set_by_user.
func (Provider) ParamVarIsSetByUser(param *ir.Param, symbol string, enbraceStatement bool) (string, bool) {
	return isSetByUser(param, symbol, enbraceStatement)
}

func (Provider) ParamIsSetByUser(param *ir.Param, symbol string, enbraceStatement bool) (string, bool) {
	return isSetByUser(param, symbol, enbraceStatement)
}

func isSetByUser(param *ir.Param, symbol string, enbraceStatement bool) (string, bool) {
	if param.Nullable {
		if enbraceStatement {
			return fmt.Sprintf("(%s is not None)", symbol), true
		}
		return fmt.Sprintf("%s is not None", symbol), true
	}

	if b, ok := param.Body.(ir.BoolBody); ok {
		if len(b.ValueTrue) > 0 && len(b.ValueFalse) == 0 {
			return symbol, true
		}
		if len(b.ValueFalse) > 0 && len(b.ValueTrue) == 0 {
			if enbraceStatement {
				return fmt.Sprintf("(not %s)", symbol), true
			}
			return "not " + symbol, true
		}
	}
	return "", false
}

// BuildParamsAndExecute, CallBuildCargs, and CallBuildOutputs are the
// three glue statements that stitch a struct's generated build_params,
// build_cargs, and build_outputs functions into its run() method. In the
// Python backend each is a one-line call since build_params returns a
// dict and build_cargs/build_outputs both take (params, execution).
func (Provider) BuildParamsAndExecute(lookup provider.LookupParam, s *ir.Param, executionSymbol string) gen.LineBuffer {
	sb := s.Body.(ir.StructBody)
	args := make([]string, 0, len(sb.Params()))
	for _, child := range sb.Params() {
		args = append(args, lookup.ParamSymbol[child.ID])
	}
	return gen.LineBuffer{
		fmt.Sprintf("params = %s(%s)", lookup.FuncBuildParams[s.ID], strings.Join(args, ", ")),
		fmt.Sprintf("return %s(params, %s)", lookup.FuncExecute[s.ID], executionSymbol),
	}
}

func (Provider) CallBuildCargs(lookup provider.LookupParam, s *ir.Param, paramsSymbol, executionSymbol, returnSymbol string) gen.LineBuffer {
	return gen.LineBuffer{fmt.Sprintf("%s = %s(%s, %s)", returnSymbol, lookup.FuncBuildCargs[s.ID], paramsSymbol, executionSymbol)}
}

func (Provider) CallBuildOutputs(lookup provider.LookupParam, s *ir.Param, paramsSymbol, executionSymbol, returnSymbol string) gen.LineBuffer {
	return gen.LineBuffer{fmt.Sprintf("%s = %s(%s, %s)", returnSymbol, lookup.FuncBuildOutputs[s.ID], paramsSymbol, executionSymbol)}
}
