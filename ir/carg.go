package ir

// CargToken is a token inside a Carg: either a literal string or a reference
// to a Param embedded by direct pointer. It is a sealed interface.
type CargToken interface {
	cargToken()
}

// CargLiteral is a fixed string token, e.g. a command-line flag spelling.
type CargLiteral string

func (CargLiteral) cargToken() {}

// cargToken makes *Param satisfy CargToken, so a Carg can embed a parameter
// reference directly rather than through an id indirection.
func (*Param) cargToken() {}

// Carg is a non-empty sequence of tokens that together form one or more
// command-line arguments once rendered.
type Carg struct {
	Tokens []CargToken
}

// ConditionalGroup is an ordered list of Cargs emitted only if at least one
// of the group's referenced nullable params is user-set; a group with no
// nullable references is unconditional.
type ConditionalGroup struct {
	Cargs []Carg
}

// ReferencedParams returns every *Param token reachable from g's cargs, in
// order, including duplicates.
func (g ConditionalGroup) ReferencedParams() []*Param {
	var out []*Param
	for _, c := range g.Cargs {
		for _, t := range c.Tokens {
			if p, ok := t.(*Param); ok {
				out = append(out, p)
			}
		}
	}
	return out
}

// IsUnconditional reports whether none of g's referenced params are
// nullable, meaning the group always contributes to the command line.
func (g ConditionalGroup) IsUnconditional() bool {
	for _, p := range g.ReferencedParams() {
		if p.Nullable {
			return false
		}
	}
	return true
}
