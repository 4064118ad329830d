// Package typescript implements the TypeScript target backend: it emits
// ES module wrapper functions built on the styxdefs-ts runtime package,
// the same way the Boutiques compiler's TypeScript backend does.
// Grounded on
// _examples/original_source's backend/typescript/languageprovider.py.
package typescript

import (
	"regexp"
	"strings"

	"goa.design/goa/v3/codegen"

	"wrapgen/gen"
)

var identifierRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
var illegalCharRe = regexp.MustCompile(`[^A-Za-z0-9_$]`)
var leadingDigitRe = regexp.MustCompile(`^[0-9]`)

var reservedSymbols = []string{
	"break", "case", "catch", "class", "const", "continue", "debugger",
	"default", "delete", "do", "else", "enum", "export", "extends",
	"false", "finally", "for", "function", "if", "import", "in",
	"instanceof", "new", "null", "return", "super", "switch", "this",
	"throw", "true", "try", "typeof", "var", "void", "while", "with",
	"implements", "interface", "let", "package", "private", "protected",
	"public", "static", "yield", "any", "boolean", "constructor",
	"declare", "get", "module", "require", "number", "set", "string",
	"symbol", "type", "from", "of",
}

// LanguageScope builds the reserved-symbol scope every TypeScript module's
// top level derives its child scopes from.
func LanguageScope() *gen.Scope {
	return gen.NewRootScope(SymbolLegal, reservedSymbols)
}

// SymbolLegal reports whether name is a legal TypeScript identifier.
func SymbolLegal(name string) bool {
	return identifierRe.MatchString(name)
}

// SymbolFrom rewrites name into a similar-looking legal TypeScript
// identifier.
func SymbolFrom(name string) string {
	out := illegalCharRe.ReplaceAllString(name, "_")
	if leadingDigitRe.MatchString(out) {
		out = "_$" + out
	}
	return out
}

func SymbolConstantCaseFrom(name string) string {
	return strings.ToUpper(codegen.SnakeCase(SymbolFrom(name)))
}

func SymbolClassCaseFrom(name string) string {
	return codegen.Goify(SymbolFrom(name), true)
}

func SymbolVarCaseFrom(name string) string {
	return codegen.SnakeCase(SymbolFrom(name))
}
