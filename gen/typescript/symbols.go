package typescript

import "wrapgen/gen"

func (Provider) SymbolLegal(name string) bool             { return SymbolLegal(name) }
func (Provider) LanguageScope() *gen.Scope                { return LanguageScope() }
func (Provider) SymbolFrom(name string) string             { return SymbolFrom(name) }
func (Provider) SymbolConstantCaseFrom(name string) string { return SymbolConstantCaseFrom(name) }
func (Provider) SymbolClassCaseFrom(name string) string    { return SymbolClassCaseFrom(name) }
func (Provider) SymbolVarCaseFrom(name string) string      { return SymbolVarCaseFrom(name) }
