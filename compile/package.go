package compile

import (
	"iter"
	"sort"

	"wrapgen/gen"
	"wrapgen/gen/provider"
	"wrapgen/ir"
)

// packageState accumulates, across however many interfaces share a single
// ir.Package, the re-export module every such package gets alongside its
// per-interface modules.
type packageState struct {
	pkg    ir.Package
	symbol string
	scope  *gen.Scope
	module *gen.GenericModule
}

// Package drains a stream of normalized interfaces through Provider p,
// grouping them by their declared ir.Package, and exposes the resulting
// module texts as a lazy sequence. Grounded on
// backend/generic/core.py's compile_language.
type Package struct {
	p          provider.Provider
	interfaces []*ir.Interface
}

// NewPackage builds a Package driver for interfaces, all to be compiled
// with the same Provider.
func NewPackage(p provider.Provider, interfaces []*ir.Interface) *Package {
	return &Package{p: p, interfaces: interfaces}
}

// Modules lazily compiles every interface and yields (module_text,
// module_path_segments) pairs: one pair per interface, in the order
// interfaces were given, followed by one package-entry module per distinct
// ir.Package encountered (in first-seen order), whose text is nothing but
// re-export statements for its sibling interface modules. A consumer that
// stops ranging early simply stops compiling — nothing is pre-materialized
// beyond the interface currently in flight.
func (pk *Package) Modules() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		globalScope := pk.p.LanguageScope()
		packages := map[string]*packageState{}
		var order []string

		for _, iface := range pk.interfaces {
			ps, ok := packages[iface.Package.Name]
			if !ok {
				ps = &packageState{
					pkg:    iface.Package,
					symbol: globalScope.AddOrDodge(pk.p.SymbolVarCaseFrom(iface.Package.Name)),
					scope:  gen.NewChildScope(globalScope),
					module: &gen.GenericModule{Docstring: gen.DocsToDocstring(iface.Package.Docs)},
				}
				packages[iface.Package.Name] = ps
				order = append(order, iface.Package.Name)
			}

			interfaceModuleSymbol := pk.p.SymbolVarCaseFrom(iface.Root.Name)
			module := Interface(pk.p, iface, ps.scope)
			if imp := pk.p.ReexportImport(interfaceModuleSymbol); imp != "" {
				ps.module.Imports = append(ps.module.Imports, imp)
			}

			if !yield(gen.Collapse(pk.p.GenerateModule(*module)), []string{ps.symbol, interfaceModuleSymbol}) {
				return
			}
		}

		for _, name := range order {
			ps := packages[name]
			sort.Strings(ps.module.Imports)
			if !yield(gen.Collapse(pk.p.GenerateModule(*ps.module)), []string{ps.symbol, "__init__"}) {
				return
			}
		}
	}
}
