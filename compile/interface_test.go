package compile_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"wrapgen/compile"
	"wrapgen/frontend/boutiques"
	"wrapgen/gen"
	"wrapgen/gen/python"
	"wrapgen/ir"
	"wrapgen/normalize"
)

func decodeJSON(t *testing.T, src string) map[string]any {
	t.Helper()
	var v map[string]any
	require.NoError(t, json.Unmarshal([]byte(src), &v))
	return v
}

// compilePython runs descriptor through the full pipeline this package
// drives over an already-normalized interface: lowering, normalization,
// and a single-interface compile with the Python provider. It returns the
// collapsed module text.
func compilePython(t *testing.T, descriptor string) string {
	t.Helper()
	doc := decodeJSON(t, descriptor)

	iface, err := boutiques.Lower(doc, "testpkg", nil)
	require.NoError(t, err)
	normalize.Normalize(iface)

	p := python.New()
	packageScope := gen.NewChildScope(p.LanguageScope())
	module := compile.Interface(p, iface, packageScope)
	return gen.Collapse(p.GenerateModule(*module))
}

// S1 — Positional string: build_cargs splices the literal prefix and the
// string argument in command order.
func TestInterfaceS1PositionalString(t *testing.T) {
	text := compilePython(t, `{
		"name": "dummy",
		"command-line": "dummy [X]",
		"inputs": [{"id": "x", "value-key": "[X]", "type": "String"}]
	}`)

	require.Contains(t, text, `cargs.append("dummy")`)
	require.Contains(t, text, "def dummy(")
	require.Contains(t, text, "x: str")
}

// S2 — Flag: the boolean carries a ternary-free direct append since it is
// non-nullable (REDESIGN ii), and the wrapper signature defaults it false.
func TestInterfaceS2Flag(t *testing.T) {
	text := compilePython(t, `{
		"name": "dummy",
		"command-line": "dummy [V]",
		"inputs": [{"id": "v", "value-key": "[V]", "type": "Flag", "command-line-flag": "-v"}]
	}`)

	require.Contains(t, text, "v: bool = False")
	require.Contains(t, text, `"-v"`)
}

// S4 — List with joiner: the param's carg renders through a joined
// expression rather than per-element append/extend.
func TestInterfaceS4ListWithJoiner(t *testing.T) {
	text := compilePython(t, `{
		"name": "dummy",
		"command-line": "dummy [Y]",
		"inputs": [{
			"id": "y", "value-key": "[Y]", "type": "String",
			"list": true, "list-separator": " "
		}]
	}`)

	require.Contains(t, text, "def dummy(")
	require.Contains(t, text, "y: list[str]")
	require.Contains(t, text, `cargs.append(" ".join(params.get("y")))`)
}

// S5 — Output template with stripped extensions: the outputs function
// resolves the templated path via a filename/suffix-stripping expression
// chain rather than the raw param value.
func TestInterfaceS5OutputTemplate(t *testing.T) {
	text := compilePython(t, `{
		"name": "dummy",
		"command-line": "dummy [X]",
		"inputs": [{"id": "x", "value-key": "[X]", "type": "File"}],
		"output-files": [{
			"id": "out", "name": "out", "path-template": "out-[X].png",
			"path-template-stripped-extensions": [".txt"]
		}]
	}`)

	require.Contains(t, text, "class DummyOutputs")
	require.Contains(t, text, "out-")
	require.Contains(t, text, ".png")
	require.True(t, strings.Contains(text, "pathlib.Path(x).name") || strings.Contains(text, ".name"))
}

// S6 — Mutually exclusive group: all three inputs are nullable and every
// one of them ends up in its own conditional carg guard; none is forced
// unconditional just because its siblings in the group are also optional.
func TestInterfaceS6MutuallyExclusiveGroup(t *testing.T) {
	descriptor := decodeJSON(t, `{
		"name": "dummy",
		"command-line": "dummy [X] [Y] [Z]",
		"inputs": [
			{"id": "x", "value-key": "[X]", "type": "Number", "optional": true, "integer": true},
			{"id": "y", "value-key": "[Y]", "type": "Number", "optional": true, "integer": true},
			{"id": "z", "value-key": "[Z]", "type": "Number", "optional": true, "integer": true}
		]
	}`)

	iface, err := boutiques.Lower(descriptor, "testpkg", nil)
	require.NoError(t, err)
	normalize.Normalize(iface)

	root := iface.Root.Body.(ir.StructBody)
	for _, group := range root.Groups {
		for _, ref := range group.ReferencedParams() {
			require.True(t, ref.Nullable, "every input in the exclusive group must be nullable: %s", ref.Name)
		}
	}

	p := python.New()
	packageScope := gen.NewChildScope(p.LanguageScope())
	module := compile.Interface(p, iface, packageScope)
	text := gen.Collapse(p.GenerateModule(*module))
	require.Contains(t, text, "x: int | None")
	require.Contains(t, text, "y: int | None")
	require.Contains(t, text, "z: int | None")
	require.Contains(t, text, `if params.get("x") is not None:`)
	require.Contains(t, text, `if params.get("y") is not None:`)
	require.Contains(t, text, `if params.get("z") is not None:`)
}

// Package re-export: two interfaces sharing an ir.Package emit an extra
// __init__ module re-exporting both, after their own per-interface
// modules.
func TestPackageModulesEmitsReexportLast(t *testing.T) {
	doc1 := decodeJSON(t, `{
		"name": "alpha",
		"command-line": "alpha [X]",
		"inputs": [{"id": "x", "value-key": "[X]", "type": "String"}]
	}`)
	doc2 := decodeJSON(t, `{
		"name": "beta",
		"command-line": "beta [X]",
		"inputs": [{"id": "x", "value-key": "[X]", "type": "String"}]
	}`)

	ifaceA, err := boutiques.Lower(doc1, "toolsuite", nil)
	require.NoError(t, err)
	ifaceB, err := boutiques.Lower(doc2, "toolsuite", nil)
	require.NoError(t, err)
	normalize.Normalize(ifaceA)
	normalize.Normalize(ifaceB)

	p := python.New()
	pkg := compile.NewPackage(p, []*ir.Interface{ifaceA, ifaceB})

	var paths [][]string
	var texts []string
	for text, path := range pkg.Modules() {
		paths = append(paths, path)
		texts = append(texts, text)
	}

	require.Len(t, paths, 3)
	require.Equal(t, "__init__", paths[2][1])
	require.Contains(t, texts[2], "from .alpha import *")
	require.Contains(t, texts[2], "from .beta import *")
}
