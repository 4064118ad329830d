package provider

import "wrapgen/gen"

// SymbolProvider converts arbitrary IR names into legal, idiomatically
// cased target-language identifiers and seeds the reserved-word scope
// every backend allocates names from. Grounded on languageprovider.py's
// LanguageSymbolProvider.
type SymbolProvider interface {
	SymbolLegal(name string) bool
	LanguageScope() *gen.Scope
	SymbolFrom(name string) string
	SymbolConstantCaseFrom(name string) string
	SymbolClassCaseFrom(name string) string
	SymbolVarCaseFrom(name string) string
}
