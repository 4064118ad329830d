package provider

import (
	"wrapgen/gen"
	"wrapgen/ir"
)

// HighLevelProvider emits the larger structural pieces of a wrapper
// module: functions, structures, whole modules, and the command-building
// glue (cargs list, runner, execution, dynamic dispatch tables) that sits
// above raw expression syntax. Grounded on languageprovider.py's
// LanguageHighLevelProvider.
type HighLevelProvider interface {
	IfElseBlock(condition string, truthy, falsy gen.LineBuffer) gen.LineBuffer
	GenerateArgDeclaration(arg gen.GenericArg) string
	GenerateFunc(fn gen.GenericFunc) gen.LineBuffer
	GenerateStructure(s gen.GenericStructure) gen.LineBuffer
	GenerateModule(m gen.GenericModule) gen.LineBuffer
	ReturnStatement(value string) string
	WrapperModuleImports() gen.LineBuffer
	// ReexportImport renders the import line a package's entry module uses
	// to re-export everything public from one of its interface modules.
	// Returns "" when the target has no such notion (the module is simply
	// appended to the package's source list with nothing to declare).
	ReexportImport(moduleSymbol string) string
	MetadataSymbol(interfaceBaseName string) string
	GenerateMetadata(metadataSymbol string, entries map[string]ir.Literal) gen.LineBuffer

	CargsSymbol() string
	CargsDeclare(cargsSymbol string) gen.LineBuffer
	MstrCargsAdd(cargsSymbol string, mstrs []MStr) gen.LineBuffer
	MstrCollapse(m MStr, join string) MStr
	MstrConcat(mstrs []MStr, innerJoin, outerJoin string) MStr

	RunnerSymbol() string
	RunnerDeclare(runnerSymbol string) gen.LineBuffer
	SymbolExecution() string
	ExecutionDeclare(executionSymbol, metadataSymbol string) gen.LineBuffer
	ExecutionProcessParams(executionSymbol, paramsSymbol string) gen.LineBuffer
	ExecutionRun(executionSymbol, cargsSymbol string, stdoutSymbol, stderrSymbol *string) gen.LineBuffer

	GenerateRetObjectCreation(buf gen.LineBuffer, executionSymbol, outputType string, members map[string]string) gen.LineBuffer
	ResolveOutputFile(executionSymbol, fileExpr string) string
	StructCollectOutputs(struct_ *ir.Param, structSymbol string) string

	DynDeclare(lookup LookupParam, root *ir.Param) []gen.GenericFunc
	ParamDictTypeDeclare(lookup LookupParam, s *ir.Param) gen.LineBuffer
	ParamDictCreate(name string, s *ir.Param, items []ParamValueExpr) gen.LineBuffer
	ParamDictSet(dictSymbol string, p *ir.Param, valueExpr string) gen.LineBuffer
	ParamDictGet(name string, p *ir.Param) string
	ParamDictGetOrNull(name string, p *ir.Param) string
}

// ParamValueExpr pairs a param with an already-rendered expression for its
// value, used when seeding a param dict literal with values that aren't
// simply "read this field" (e.g. a constant or a recursively built
// sub-struct dict).
type ParamValueExpr struct {
	Param *ir.Param
	Expr  string
}

// GenerateModel dispatches to GenerateFunc or GenerateStructure depending
// on m's dynamic type. Grounded on
// LanguageHighLevelProvider.generate_model's default implementation.
func GenerateModel(p HighLevelProvider, m any) gen.LineBuffer {
	switch v := m.(type) {
	case gen.GenericFunc:
		return p.GenerateFunc(v)
	case *gen.GenericStructure:
		return p.GenerateStructure(*v)
	default:
		panic("provider: unsupported model type in GenerateModel")
	}
}

// MstrEmptyLiteralLike returns an empty-string or empty-list literal
// matching mstr's IsList shape, for a fallback expression when a
// conditionally-set param ends up unset. Grounded on
// LanguageHighLevelProvider.mstr_empty_literal_like's default
// implementation.
func MstrEmptyLiteralLike(p ExprProvider, m MStr) string {
	if m.IsList {
		return p.ExprList(nil)
	}
	return p.ExprStr("")
}
