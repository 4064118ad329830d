package provider

import (
	"fmt"

	"wrapgen/gen"
	"wrapgen/ir"
)

// ExprProvider renders language-literal expressions and the small set of
// string/condition operations carg- and output-building need. Grounded on
// languageprovider.py's LanguageExprProvider.
type ExprProvider interface {
	ExprBool(v bool) string
	ExprInt(v int64) string
	ExprFloat(v float64) string
	ExprStr(v string) string
	ExprPath(v string) string
	ExprList(elems []string) string
	ExprDict(entries map[string]string) string
	ExprRemoveSuffixes(strExpr string, suffixes []string) string
	ExprPathGetFilename(pathExpr string) string
	ExprNumericToStr(numExpr string) string
	ExprConditionsJoinAnd(conds []string) string
	ExprConditionsJoinOr(conds []string) string
	ExprConcatStrs(exprs []string, join string) string
	ExprTernary(condition, truthy, falsy string, enbrace bool) string
	ExprNull() string
	ExprLineComment(comment gen.LineBuffer) gen.LineBuffer
}

// ExprLiteral converts an arbitrary Boutiques literal value (string,
// bool, int64, float64, path, list, or map — whatever JSON unmarshaling
// into `any` produced) into a target-language literal expression.
// Grounded on LanguageExprProvider.expr_literal's default implementation.
func ExprLiteral(p ExprProvider, obj ir.Literal) string {
	switch v := obj.(type) {
	case nil:
		return p.ExprNull()
	case bool:
		return p.ExprBool(v)
	case int:
		return p.ExprInt(int64(v))
	case int64:
		return p.ExprInt(v)
	case float64:
		return p.ExprFloat(v)
	case string:
		return p.ExprStr(v)
	case []ir.Literal:
		elems := make([]string, len(v))
		for i, e := range v {
			elems[i] = ExprLiteral(p, e)
		}
		return p.ExprList(elems)
	case map[string]ir.Literal:
		entries := make(map[string]string, len(v))
		for k, e := range v {
			entries[p.ExprStr(k)] = ExprLiteral(p, e)
		}
		return p.ExprDict(entries)
	default:
		panic(fmt.Sprintf("provider: unsupported literal type %T", obj))
	}
}
