package compile

import (
	"wrapgen/ir"
	"wrapgen/normalize"
)

// Result is a diagnostic companion to a compiled Interface: nothing in
// Modules reads it back, it exists purely for a caller that wants to
// report on what it just compiled. Grounded on
// original_source's stats.py, wired in here as a driver-level convenience
// rather than folded into the module stream itself.
type Result struct {
	InterfaceName string
	Stats         normalize.Stats
}

// NewResult computes the diagnostic Result for iface. Call it alongside
// (not instead of) compiling iface's modules; it never mutates iface.
func NewResult(iface *ir.Interface) Result {
	return Result{
		InterfaceName: iface.Root.Name,
		Stats:         normalize.ComputeStats(iface),
	}
}
