package provider

import (
	"wrapgen/gen"
	"wrapgen/ir"
)

// IrProvider bridges IR semantics (defaults, nullability, conditional
// groups) into the expression/statement primitives the other provider
// facets expose. Grounded on languageprovider.py's LanguageIrProvider.
type IrProvider interface {
	ParamVarToMstr(param *ir.Param, symbol string) MStr
	ParamVarIsSetByUser(param *ir.Param, symbol string, enbraceStatement bool) (string, bool)
	ParamIsSetByUser(param *ir.Param, symbol string, enbraceStatement bool) (string, bool)

	BuildParamsAndExecute(lookup LookupParam, s *ir.Param, executionSymbol string) gen.LineBuffer
	CallBuildCargs(lookup LookupParam, s *ir.Param, paramsSymbol, executionSymbol, returnSymbol string) gen.LineBuffer
	CallBuildOutputs(lookup LookupParam, s *ir.Param, paramsSymbol, executionSymbol, returnSymbol string) gen.LineBuffer
}

// ParamDefaultValue returns the target-language literal for param's
// default, or ok=false if param has no default at all (as opposed to a
// default of null, which does produce a literal: the null one). Grounded
// on LanguageIrProvider.param_default_value's default implementation.
func ParamDefaultValue(p ExprProvider, param *ir.Param) (value string, ok bool) {
	if param.Default == nil || param.Default.Kind == ir.DefaultAbsent {
		return "", false
	}
	if param.Default.Kind == ir.DefaultSetToNone {
		return p.ExprNull(), true
	}
	return ExprLiteral(p, param.Default.Literal), true
}
