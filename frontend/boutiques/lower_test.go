package boutiques

import (
	"testing"

	"github.com/stretchr/testify/require"

	"wrapgen/ir"
)

func decodeJSON(t *testing.T, src string) map[string]any {
	t.Helper()
	v := jsonDecode(t, src)
	m, ok := v.(map[string]any)
	require.True(t, ok)
	return m
}

// S1 — Positional string: the root struct gets one group per command-line
// word, so the literal "dummy" and the string param land in two groups, in
// order.
func TestLowerS1PositionalString(t *testing.T) {
	descriptor := decodeJSON(t, `{
		"name": "dummy",
		"command-line": "dummy [X]",
		"inputs": [{"id": "x", "value-key": "[X]", "type": "String"}]
	}`)

	iface, err := Lower(descriptor, "testpkg", nil)
	require.NoError(t, err)

	root := iface.Root.Body.(ir.StructBody)
	require.Len(t, root.Groups, 2)
	require.Len(t, root.Groups[0].Cargs, 1)
	require.Equal(t, []ir.CargToken{ir.CargLiteral("dummy")}, root.Groups[0].Cargs[0].Tokens)
	tokens := root.Groups[1].Cargs[0].Tokens
	require.Len(t, tokens, 1)
	p, ok := tokens[0].(*ir.Param)
	require.True(t, ok)
	require.Equal(t, "x", p.Name)
	require.IsType(t, ir.StringBody{}, p.Body)
}

// S2 — Flag: Flag params always lower to non-nullable BoolBody with a
// false default (REDESIGN ii), and the carg carries the param itself (the
// emitted flag token is produced from BoolBody.ValueTrue at codegen time,
// not as a separate literal carg).
func TestLowerS2Flag(t *testing.T) {
	descriptor := decodeJSON(t, `{
		"name": "dummy",
		"command-line": "dummy [V]",
		"inputs": [{"id": "v", "value-key": "[V]", "type": "Flag", "command-line-flag": "-v"}]
	}`)

	iface, err := Lower(descriptor, "testpkg", nil)
	require.NoError(t, err)

	root := iface.Root.Body.(ir.StructBody)
	tokens := root.Groups[1].Cargs[0].Tokens
	require.Len(t, tokens, 1)
	p, ok := tokens[0].(*ir.Param)
	require.True(t, ok)
	require.False(t, p.Nullable)
	body, ok := p.Body.(ir.BoolBody)
	require.True(t, ok)
	require.Equal(t, []string{"-v"}, body.ValueTrue)
	require.Empty(t, body.ValueFalse)
	require.NotNil(t, p.Default)
	require.Equal(t, ir.DefaultLiteral, p.Default.Kind)
	require.Equal(t, false, p.Default.Literal)
}

// S3 (constraint collection only — runtime validation is a codegen
// concern): minimum/maximum on an integer input fold exclusivity, are
// preserved inclusive otherwise.
func TestLowerS3RangeConstraints(t *testing.T) {
	descriptor := decodeJSON(t, `{
		"name": "dummy",
		"command-line": "dummy [X]",
		"inputs": [{"id": "x", "value-key": "[X]", "type": "Number", "integer": true, "minimum": 5, "maximum": 10}]
	}`)

	iface, err := Lower(descriptor, "testpkg", nil)
	require.NoError(t, err)

	root := iface.Root.Body.(ir.StructBody)
	p := root.Groups[1].Cargs[0].Tokens[0].(*ir.Param)
	body, ok := p.Body.(ir.IntBody)
	require.True(t, ok)
	require.Equal(t, int64(5), *body.Min)
	require.Equal(t, int64(10), *body.Max)
}

// S4 — List with joiner.
func TestLowerS4ListWithJoiner(t *testing.T) {
	descriptor := decodeJSON(t, `{
		"name": "dummy",
		"command-line": "dummy [Y]",
		"inputs": [{"id": "y", "value-key": "[Y]", "type": "String", "list": true, "list-separator": " "}]
	}`)

	iface, err := Lower(descriptor, "testpkg", nil)
	require.NoError(t, err)

	root := iface.Root.Body.(ir.StructBody)
	p := root.Groups[1].Cargs[0].Tokens[0].(*ir.Param)
	require.True(t, p.IsList())
	require.Equal(t, " ", *p.List.Join)
}

// S5 — Output template with stripped extensions.
func TestLowerS5OutputTemplate(t *testing.T) {
	descriptor := decodeJSON(t, `{
		"name": "dummy",
		"command-line": "dummy [X]",
		"inputs": [{"id": "x", "value-key": "[X]", "type": "File"}],
		"output-files": [{
			"id": "out",
			"name": "out",
			"path-template": "out-[X].png",
			"path-template-stripped-extensions": [".txt"]
		}]
	}`)

	iface, err := Lower(descriptor, "testpkg", nil)
	require.NoError(t, err)

	require.Len(t, iface.Root.Outputs, 1)
	out := iface.Root.Outputs[0]
	require.Equal(t, "out", out.Name)
	require.Len(t, out.Tokens, 3)
	require.Equal(t, ir.OutputLiteral("out-"), out.Tokens[0])
	ref, ok := out.Tokens[1].(ir.OutputParamReference)
	require.True(t, ok)
	require.Equal(t, []string{".txt"}, ref.FileRemoveSuffixes)
	require.Equal(t, ir.OutputLiteral(".png"), out.Tokens[2])
}

// Invariant 8: the concatenation of tokens in the first-emitted
// unconditional group equals the whitespace split of command-line up to
// the first variable reference.
func TestInvariant8FirstGroupMatchesWhitespaceSplit(t *testing.T) {
	descriptor := decodeJSON(t, `{
		"name": "dummy",
		"command-line": "dummy run [X]",
		"inputs": [{"id": "x", "value-key": "[X]", "type": "String"}]
	}`)

	iface, err := Lower(descriptor, "testpkg", nil)
	require.NoError(t, err)

	root := iface.Root.Body.(ir.StructBody)
	require.True(t, root.Groups[0].IsUnconditional())
	var literals []string
	for _, tok := range root.Groups[0].Cargs[0].Tokens {
		if lit, ok := tok.(ir.CargLiteral); ok {
			literals = append(literals, string(lit))
		} else {
			break
		}
	}
	require.Equal(t, []string{"dummy", "run"}, literals)
}

func TestInvariant1OutputRefsResolve(t *testing.T) {
	descriptor := decodeJSON(t, `{
		"name": "dummy",
		"command-line": "dummy [X]",
		"inputs": [{"id": "x", "value-key": "[X]", "type": "File"}],
		"output-files": [{"id": "out", "name": "out", "path-template": "[X].out"}]
	}`)
	iface, err := Lower(descriptor, "testpkg", nil)
	require.NoError(t, err)

	ids := map[ir.ID]bool{}
	for p := range ir.IterParamsRecursively(iface.Root, true) {
		ids[p.ID] = true
	}
	for _, ref := range iface.Root.Outputs[0].ParamRefs() {
		require.True(t, ids[ref.RefID])
	}
}

func TestMissingCommandLineIsInvalidDescriptor(t *testing.T) {
	descriptor := decodeJSON(t, `{"name": "dummy", "inputs": []}`)
	_, err := Lower(descriptor, "testpkg", nil)
	require.Error(t, err)
	require.ErrorIs(t, err, ir.KindInvalidDescriptor)
}
