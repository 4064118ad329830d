package r

import "wrapgen/gen/provider"

// Provider implements gen/provider.Provider for the R target. Stateless,
// like the Python and TypeScript providers.
type Provider struct{}

// New returns an R backend Provider.
func New() Provider { return Provider{} }

var _ provider.Provider = Provider{}
