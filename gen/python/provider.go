package python

import "wrapgen/gen/provider"

// Provider implements gen/provider.Provider for the Python target. It is
// stateless: every method is a pure function of its arguments, so one
// Provider value is reused across an entire compile run.
type Provider struct{}

// New returns a Python backend Provider.
func New() Provider { return Provider{} }

var _ provider.Provider = Provider{}
