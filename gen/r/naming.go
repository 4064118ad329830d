// Package r implements the R target backend: it emits R6-class-free,
// list()-based wrapper functions following R's dot.case convention.
// Grounded on
// _examples/original_source's backend/r/languageprovider.py. The dot.case
// variable convention is built on goa.design/goa/v3/codegen's SnakeCase,
// with underscores then swapped for dots; class and constant casing use
// Goify and SnakeCase as in the other backends.
package r

import (
	"regexp"
	"strings"
	"unicode"

	"goa.design/goa/v3/codegen"

	"wrapgen/gen"
)

var illegalCharRe = regexp.MustCompile(`[^a-zA-Z0-9_.]`)
var leadingDigitRe = regexp.MustCompile(`^[0-9]`)

var reservedSymbols = []string{
	"if", "else", "repeat", "while", "function", "for", "in", "next",
	"break", "TRUE", "FALSE", "NULL", "Inf", "NaN", "NA", "NA_integer_",
	"NA_real_", "NA_complex_", "NA_character_", "...",
	"c", "list", "data.frame", "matrix", "array", "factor", "sum",
	"mean", "median", "sd", "var", "cor", "cov", "plot", "print", "cat",
	"paste", "paste0", "sprintf",
}

// LanguageScope builds the reserved-symbol scope every R module's top
// level derives its child scopes from.
func LanguageScope() *gen.Scope {
	return gen.NewRootScope(SymbolLegal, reservedSymbols)
}

// SymbolLegal reports whether name is a legal R identifier: letters,
// digits, dots, and underscores, not starting with a digit, and not
// starting with a dot immediately followed by a digit.
func SymbolLegal(name string) bool {
	if name == "" {
		return false
	}
	r := []rune(name)
	if unicode.IsDigit(r[0]) {
		return false
	}
	if r[0] == '.' && len(r) > 1 && unicode.IsDigit(r[1]) {
		return false
	}
	for _, c := range r {
		if !(unicode.IsLetter(c) || unicode.IsDigit(c) || c == '.' || c == '_') {
			return false
		}
	}
	return true
}

// SymbolFrom rewrites name into a similar-looking legal R identifier,
// replacing illegal characters with dots (the R convention) rather than
// underscores.
func SymbolFrom(name string) string {
	out := illegalCharRe.ReplaceAllString(name, ".")
	if leadingDigitRe.MatchString(out) {
		out = "X" + out
	}
	if strings.HasPrefix(out, ".") && len(out) > 1 && unicode.IsDigit(rune(out[1])) {
		out = "X" + out
	}
	return out
}

func SymbolConstantCaseFrom(name string) string {
	return strings.ToUpper(codegen.SnakeCase(SymbolFrom(name)))
}

func SymbolClassCaseFrom(name string) string {
	return codegen.Goify(SymbolFrom(name), true)
}

// SymbolVarCaseFrom renders name as R's dot.case: snake_case with
// underscores swapped for dots, lowercased.
func SymbolVarCaseFrom(name string) string {
	snake := codegen.SnakeCase(SymbolFrom(name))
	return strings.ToLower(strings.ReplaceAll(snake, "_", "."))
}
