// Package provider declares Provider, the interface every target-language
// backend (gen/python, gen/typescript, gen/r) implements, plus the
// handful of default-implementation free functions (TypeParam,
// ExprLiteral, ParamDefaultValue, GenerateModel, MstrEmptyLiteralLike)
// that the original gave a body in the Protocol base class itself — Go
// interfaces can't carry default method bodies, so those became ordinary
// functions taking a Provider (or narrower facet) as their first
// argument.
package provider
