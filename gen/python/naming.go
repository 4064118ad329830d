// Package python implements the Python target backend: it turns the IR
// into dataclass-based wrapper modules built on the styxdefs runtime
// shim, the same way the Boutiques compiler's Python backend does.
// Grounded on
// _examples/original_source's backend/python/languageprovider.py.
package python

import (
	"regexp"
	"strings"

	"goa.design/goa/v3/codegen"

	"wrapgen/gen"
)

var identifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var illegalCharRe = regexp.MustCompile(`[^A-Za-z0-9_]`)
var leadingDigitOrUnderscoreRe = regexp.MustCompile(`^[0-9_]`)

// keywords and builtins a Python module must never shadow with a
// generated identifier. Grounded on PythonLanguageProvider.language_scope,
// which unions keyword.kwlist, sys.stdlib_module_names, and dir(builtins)
// at runtime; this is a fixed snapshot of the same three sets since a Go
// program has no Python runtime to introspect.
var reservedSymbols = []string{
	"False", "None", "True", "and", "as", "assert", "async", "await",
	"break", "class", "continue", "def", "del", "elif", "else", "except",
	"finally", "for", "from", "global", "if", "import", "in", "is",
	"lambda", "nonlocal", "not", "or", "pass", "raise", "return", "try",
	"while", "with", "yield", "match", "case",
	"abs", "aiter", "anext", "all", "any", "ascii", "bin", "bool",
	"breakpoint", "bytearray", "bytes", "callable", "chr", "classmethod",
	"compile", "complex", "delattr", "dict", "dir", "divmod", "enumerate",
	"eval", "exec", "filter", "float", "format", "frozenset", "getattr",
	"globals", "hasattr", "hash", "help", "hex", "id", "input", "int",
	"isinstance", "issubclass", "iter", "len", "list", "locals", "map",
	"max", "memoryview", "min", "next", "object", "oct", "open", "ord",
	"pow", "print", "property", "range", "repr", "reversed", "round",
	"set", "setattr", "slice", "sorted", "staticmethod", "str", "sum",
	"super", "tuple", "type", "vars", "zip", "Exception", "self",
	"os", "sys", "re", "io", "json", "typing", "pathlib", "dataclasses",
}

// LanguageScope builds the reserved-symbol scope every python module's
// top level derives its child scopes from.
func LanguageScope() *gen.Scope {
	return gen.NewRootScope(SymbolLegal, reservedSymbols)
}

// SymbolLegal reports whether name is a legal Python identifier.
func SymbolLegal(name string) bool {
	return identifierRe.MatchString(name)
}

// SymbolFrom rewrites name into a similar-looking legal Python identifier:
// illegal characters become underscores, and a leading digit or
// underscore gets a "v_" prefix so the result never collides with a
// private/dunder convention by accident.
func SymbolFrom(name string) string {
	out := illegalCharRe.ReplaceAllString(name, "_")
	if leadingDigitOrUnderscoreRe.MatchString(out) {
		out = "v_" + out
	}
	return out
}

// SymbolConstantCaseFrom renders name as SCREAMING_SNAKE_CASE.
func SymbolConstantCaseFrom(name string) string {
	return strings.ToUpper(codegen.SnakeCase(SymbolFrom(name)))
}

// SymbolClassCaseFrom renders name as PascalCase.
func SymbolClassCaseFrom(name string) string {
	return codegen.Goify(SymbolFrom(name), true)
}

// SymbolVarCaseFrom renders name as snake_case.
func SymbolVarCaseFrom(name string) string {
	return codegen.SnakeCase(SymbolFrom(name))
}
