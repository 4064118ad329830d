package typescript

import "wrapgen/gen/provider"

// Provider implements gen/provider.Provider for the TypeScript target. It
// is stateless, like python.Provider.
type Provider struct{}

// New returns a TypeScript backend Provider.
func New() Provider { return Provider{} }

var _ provider.Provider = Provider{}
