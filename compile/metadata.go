package compile

import (
	"wrapgen/gen"
	"wrapgen/gen/provider"
	"wrapgen/ir"
)

// generateStaticMetadata emits the module-level metadata constant and
// appends it to module's header, returning the symbol it was bound to.
// Grounded on gen/metadata.py's generate_static_metadata.
func generateStaticMetadata(p provider.Provider, module *gen.GenericModule, scope *gen.Scope, iface *ir.Interface) string {
	metadataSymbol := scope.AddOrDodge(p.MetadataSymbol(iface.Root.Name))

	entries := map[string]ir.Literal{
		"id":      iface.UID,
		"name":    iface.Root.Name,
		"package": iface.Package.Name,
	}

	if len(iface.Root.Docs.Literature) > 0 {
		lits := make([]ir.Literal, len(iface.Root.Docs.Literature))
		for i, v := range iface.Root.Docs.Literature {
			lits[i] = v
		}
		entries["citations"] = lits
	}

	if iface.Package.Docker != "" {
		entries["container_image_tag"] = iface.Package.Docker
	}

	module.Header = append(module.Header, p.GenerateMetadata(metadataSymbol, entries)...)

	return metadataSymbol
}
