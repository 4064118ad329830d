package ir

import "iter"

// Params returns the Params directly reachable as tokens from this struct's
// cargs, in declaration order. A normalization or codegen pass over a
// struct's direct children uses this rather than re-walking cargs itself.
func (sb StructBody) Params() []*Param {
	var out []*Param
	for _, g := range sb.Groups {
		out = append(out, g.ReferencedParams()...)
	}
	return out
}

// structChildren returns the direct struct-bodied children of p: for a
// StructBody, every child param whose own body is StructBody or
// StructUnionBody; for a StructUnionBody, every alternative.
func structChildren(p *Param) []*Param {
	switch b := p.Body.(type) {
	case StructBody:
		var out []*Param
		for _, child := range b.Params() {
			switch child.Body.(type) {
			case StructBody, StructUnionBody:
				out = append(out, child)
			}
		}
		return out
	case StructUnionBody:
		return b.Alts
	default:
		return nil
	}
}

// IterStructsRecursively walks the struct/struct-union tree rooted at root
// in depth-first, pre-order. If includeSelf is false, root itself is
// skipped.
func IterStructsRecursively(root *Param, includeSelf bool) iter.Seq[*Param] {
	return func(yield func(*Param) bool) {
		var walk func(p *Param, first bool) bool
		walk = func(p *Param, first bool) bool {
			if !first || includeSelf {
				if !yield(p) {
					return false
				}
			}
			for _, child := range structChildren(p) {
				if !walk(child, false) {
					return false
				}
			}
			return true
		}
		walk(root, true)
	}
}

// IterParamsRecursively walks every Param reachable from root: root itself
// (if includeSelf), and every direct child param of every struct in the
// tree (which naturally includes nested struct/struct-union params, each
// exactly once, as a child of its parent).
func IterParamsRecursively(root *Param, includeSelf bool) iter.Seq[*Param] {
	return func(yield func(*Param) bool) {
		if includeSelf {
			if !yield(root) {
				return
			}
		}
		for s := range IterStructsRecursively(root, true) {
			sb, ok := s.Body.(StructBody)
			if !ok {
				continue
			}
			for _, child := range sb.Params() {
				if !yield(child) {
					return
				}
			}
		}
	}
}
