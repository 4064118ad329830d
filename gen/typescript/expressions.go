package typescript

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
		return "true"
	}
	return "false"
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
	return "{ " + strings.Join(parts, ", ") + " }"
}

func (Provider) ExprRemoveSuffixes(strExpr string, suffixes []string) string {
	out := strExpr
	for _, suffix := range suffixes {
		out = fmt.Sprintf("%s.replace(/%s$/, \"\")", out, regexpEscape(suffix))
	}
	return out
}

func regexpEscape(s string) string {
	special := `.*+?^${}()|[]\`
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(special, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (Provider) ExprPathGetFilename(pathExpr string) string {
	return fmt.Sprintf("path.basename(%s)", pathExpr)
}

func (Provider) ExprNumericToStr(numExpr string) string {
	return fmt.Sprintf("String(%s)", numExpr)
}

func (Provider) ExprConditionsJoinAnd(conds []string) string {
	return strings.Join(conds, " && ")
}

func (Provider) ExprConditionsJoinOr(conds []string) string {
	return strings.Join(conds, " || ")
}

func (Provider) ExprConcatStrs(exprs []string, join string) string {
	if join == "" {
		return strings.Join(exprs, " + ")
	}
	return fmt.Sprintf("[%s].join(%s)", strings.Join(exprs, ", "), enquote(join))
}

func (Provider) ExprTernary(condition, truthy, falsy string, enbrace bool) string {
	ret := fmt.Sprintf("%s ? %s : %s", condition, truthy, falsy)
	if enbrace {
		return "(" + ret + ")"
	}
	return ret
}

func (Provider) ExprNull() string { return "null" }

func (Provider) ExprLineComment(comment gen.LineBuffer) gen.LineBuffer {
	return gen.CommentLines(comment, "//")
}
