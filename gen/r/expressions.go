package r

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"wrapgen/gen"
)

func enquote(s string) string { return fmt.Sprintf("%q", s) }

func (Provider) ExprBool(v bool) string {
	if v {
		return "TRUE"
	}
	return "FALSE"
}

func (Provider) ExprInt(v int64) string     { return fmt.Sprintf("%dL", v) }
func (Provider) ExprFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
func (Provider) ExprStr(v string) string    { return enquote(v) }
func (Provider) ExprPath(v string) string   { return enquote(v) }

func (Provider) ExprList(elems []string) string {
	return "c(" + strings.Join(elems, ", ") + ")"
}

func (Provider) ExprDict(entries map[string]string) string {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + " = " + entries[k]
	}
	return "list(" + strings.Join(parts, ", ") + ")"
}

func (Provider) ExprRemoveSuffixes(strExpr string, suffixes []string) string {
	out := strExpr
	for _, suffix := range suffixes {
		var pattern strings.Builder
		for _, r := range suffix {
			if strings.ContainsRune(`.*+?^${}()|[]\`, r) {
				pattern.WriteByte('\\')
			}
			pattern.WriteRune(r)
		}
		out = fmt.Sprintf("sub(%s, \"\", %s)", enquote(pattern.String()+"$"), out)
	}
	return out
}

func (Provider) ExprPathGetFilename(pathExpr string) string {
	return fmt.Sprintf("basename(%s)", pathExpr)
}

func (Provider) ExprNumericToStr(numExpr string) string {
	return fmt.Sprintf("as.character(%s)", numExpr)
}

func (Provider) ExprConditionsJoinAnd(conds []string) string {
	return strings.Join(conds, " && ")
}

func (Provider) ExprConditionsJoinOr(conds []string) string {
	return strings.Join(conds, " || ")
}

func (Provider) ExprConcatStrs(exprs []string, join string) string {
	return fmt.Sprintf("paste0(%s)", strings.Join(exprs, ", "))
}

func (Provider) ExprTernary(condition, truthy, falsy string, enbrace bool) string {
	ret := fmt.Sprintf("if (%s) %s else %s", condition, truthy, falsy)
	if enbrace {
		return "(" + ret + ")"
	}
	return ret
}

func (Provider) ExprNull() string { return "NULL" }

func (Provider) ExprLineComment(comment gen.LineBuffer) gen.LineBuffer {
	return gen.CommentLines(comment, "#")
}
