package python

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
		return "True"
	}
	return "False"
}

func (Provider) ExprInt(v int64) string     { return strconv.FormatInt(v, 10) }
func (Provider) ExprFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
func (Provider) ExprStr(v string) string    { return enquote(v) }
func (Provider) ExprPath(v string) string   { return enquote(v) }

func (Provider) ExprList(elems []string) string {
	return "[" + strings.Join(elems, ", ") + "]"
}

func (Provider) ExprDict(entries map[string]string) string {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + entries[k]
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (Provider) ExprRemoveSuffixes(strExpr string, suffixes []string) string {
	out := strExpr
	for _, suffix := range suffixes {
		out += fmt.Sprintf(".removesuffix(%s)", enquote(suffix))
	}
	return out
}

func (Provider) ExprPathGetFilename(pathExpr string) string {
	return fmt.Sprintf("pathlib.Path(%s).name", pathExpr)
}

func (Provider) ExprNumericToStr(numExpr string) string {
	return fmt.Sprintf("str(%s)", numExpr)
}

func (Provider) ExprConditionsJoinAnd(conds []string) string {
	return strings.Join(conds, " and ")
}

func (Provider) ExprConditionsJoinOr(conds []string) string {
	return strings.Join(conds, " or ")
}

func (Provider) ExprConcatStrs(exprs []string, join string) string {
	if join == "" {
		return strings.Join(exprs, " + ")
	}
	return fmt.Sprintf("%s.join([%s])", enquote(join), strings.Join(exprs, ", "))
}

func (Provider) ExprTernary(condition, truthy, falsy string, enbrace bool) string {
	if strings.Contains(condition, " ") {
		condition = "(" + condition + ")"
	}
	ret := fmt.Sprintf("%s if %s else %s", truthy, condition, falsy)
	if enbrace {
		return "(" + ret + ")"
	}
	return ret
}

func (Provider) ExprNull() string { return "None" }

func (Provider) ExprLineComment(comment gen.LineBuffer) gen.LineBuffer {
	return gen.CommentLines(comment, "#")
}
