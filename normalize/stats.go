package normalize

import "wrapgen/ir"

// Stats is a diagnostic snapshot of an interface's complexity. It is not
// required for correctness and nothing downstream consumes it for codegen
// decisions — it exists for callers (e.g. a batch CLI run) that want to
// report how large a compiled interface turned out to be. Grounded on
// stats.py's stats().
type Stats struct {
	Name           string
	NumExpressions int
	NumParams      int
	McCabe         int
}

// ComputeStats computes Stats for iface's root param.
func ComputeStats(iface *ir.Interface) Stats {
	return Stats{
		Name:           iface.Root.Name,
		NumExpressions: exprCount(iface.Root),
		NumParams:      paramCount(iface.Root),
		McCabe:         mccabe(iface.Root),
	}
}

func exprCount(p *ir.Param) int {
	switch b := p.Body.(type) {
	case ir.StructBody:
		total := 1
		for _, child := range b.Params() {
			total += exprCount(child)
		}
		return total
	case ir.StructUnionBody:
		total := 1
		for _, alt := range b.Alts {
			total += exprCount(alt)
		}
		return total
	default:
		return 1
	}
}

func paramCount(p *ir.Param) int {
	switch b := p.Body.(type) {
	case ir.StructBody:
		total := 0
		for _, child := range b.Params() {
			total += paramCount(child)
		}
		return total
	case ir.StructUnionBody:
		total := 0
		for _, alt := range b.Alts {
			total += paramCount(alt)
		}
		return total
	default:
		return 1
	}
}

// mccabe computes a McCabe-style product-of-sums complexity score: each
// struct contributes a branch factor of (sum of child scores - childCount +
// 1), each struct-union contributes the sum of its alternatives' scores,
// and a param doubles its own contribution when it is nullable or is a
// list-valued struct/struct-union (both introduce a runtime branch).
func mccabe(p *ir.Param) int {
	complexity := 1
	_, isStruct := p.Body.(ir.StructBody)
	_, isUnion := p.Body.(ir.StructUnionBody)
	if p.Nullable || ((isStruct || isUnion) && p.IsList()) {
		complexity = 2
	}

	switch b := p.Body.(type) {
	case ir.StructBody:
		children := b.Params()
		sum := 0
		for _, c := range children {
			sum += mccabe(c)
		}
		return complexity * (sum - len(children) + 1)
	case ir.StructUnionBody:
		sum := 0
		for _, alt := range b.Alts {
			sum += mccabe(alt)
		}
		return complexity * sum
	default:
		return complexity
	}
}
