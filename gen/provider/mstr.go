// Package provider declares the capability surface every target-language
// backend implements: a Provider turns IR nodes into target-language
// syntax fragments, and the compile package drives it to emit whole
// wrapper modules. Grounded on
// _examples/original_source's backend/generic/languageprovider.py.
package provider

// MStr is an expression that may refer to either a single string or a
// list of strings, paired with which case it is. Command-line argument
// building constantly produces one or the other (a flag value vs. a
// joined/repeated list value) and needs to treat both uniformly until the
// point they're spliced into the cargs list. Grounded on
// languageprovider.py's MStr NamedTuple.
type MStr struct {
	Expr   string
	IsList bool
}
