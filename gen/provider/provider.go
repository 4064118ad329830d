package provider

// Provider is the full capability surface a target-language backend
// implements: types, symbol casing/legality, expression literals,
// high-level structural emission, and IR-semantics glue. compile.Interface
// holds one Provider per compile run and never branches on which target
// language it is; every target difference lives behind this interface.
// Grounded on languageprovider.py's LanguageProvider, which composes the
// same six facets (minus LanguageStyxDefsProvider — a version-compat
// string for a runtime shim package this module has no equivalent of, so
// it isn't carried forward).
type Provider interface {
	TypeProvider
	SymbolProvider
	ExprProvider
	HighLevelProvider
	IrProvider
}
