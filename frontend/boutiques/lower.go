// Package boutiques lowers a Boutiques 0.5 tool descriptor into the core
// ir package's typed tree. Grounded throughout on
// _examples/original_source's frontend/boutiques/core.py.
package boutiques

import (
	"fmt"

	"wrapgen/ir"
)

// Lower converts a deserialised Boutiques descriptor into an *ir.Interface.
// descriptor must be the result of unmarshaling the tool's JSON document
// into ordinary Go primitives/maps/slices (e.g. json.Unmarshal into `any`).
func Lower(descriptor map[string]any, packageName string, packageDocs *ir.Documentation) (*ir.Interface, error) {
	hash, err := hashDescriptor(descriptor)
	if err != nil {
		return nil, ir.InvalidDescriptorError(packageName, fmt.Sprintf("descriptor is not JSON-stable: %v", err))
	}

	var docker string
	if ci, ok := descriptor["container-image"].(map[string]any); ok {
		docker, _ = ci["image"].(string)
	}

	counter := &idCounter{}
	base, structBody, err := structFromBoutiques(descriptor, counter)
	if err != nil {
		return nil, err
	}

	docs := ir.Documentation{}
	if packageDocs != nil {
		docs = *packageDocs
	}
	version, _ := descriptor["tool-version"].(string)

	return &ir.Interface{
		UID: hash + ".boutiques",
		Package: ir.Package{
			Name:    packageName,
			Version: version,
			Docker:  docker,
			Docs:    docs,
		},
		Root: &ir.Param{Base: base, Body: structBody},
	}, nil
}

// idCounter assigns monotonically increasing ids, scoped to one Lower call.
// Grounded on IdCounter (frontend/boutiques/core.py).
type idCounter struct{ n ir.ID }

func (c *idCounter) Next() ir.ID {
	v := c.n
	c.n++
	return v
}

// primitive mirrors InputTypePrimitive.
type primitive int

const (
	primString primitive = iota
	primFloat
	primInteger
	primFile
	primFlag
	primSubCommand
	primSubCommandUnion
)

func primitiveFromBoutiques(elem map[string]any) (primitive, error) {
	t, present := elem["type"]
	if !present || t == nil {
		return 0, ir.InvalidDescriptorError(idOf(elem), "type is missing")
	}
	switch v := t.(type) {
	case map[string]any:
		return primSubCommand, nil
	case []any:
		return primSubCommandUnion, nil
	case string:
		switch v {
		case "String":
			return primString, nil
		case "File":
			return primFile, nil
		case "Flag":
			return primFlag, nil
		case "Number":
			if isTrue(elem["integer"]) {
				return primInteger, nil
			}
			return primFloat, nil
		default:
			return 0, ir.InvalidDescriptorError(idOf(elem), fmt.Sprintf("unknown primitive type %q", v))
		}
	default:
		return 0, ir.InvalidDescriptorError(idOf(elem), "type field has an unsupported shape")
	}
}

type inputType struct {
	Primitive  primitive
	IsList     bool
	IsOptional bool
	IsEnum     bool
}

// inputTypeFromBoutiques mirrors _input_type_from_boutiques. Per REDESIGN
// FLAG (ii), Flag is always lowered as non-nullable regardless of the
// descriptor's own `optional` field — the newer frontend behavior.
func inputTypeFromBoutiques(elem map[string]any) (inputType, error) {
	prim, err := primitiveFromBoutiques(elem)
	if err != nil {
		return inputType{}, err
	}
	if prim == primFlag {
		return inputType{Primitive: primFlag}, nil
	}
	return inputType{
		Primitive:  prim,
		IsList:     isTrue(elem["list"]),
		IsOptional: isTrue(elem["optional"]),
		IsEnum:     elem["value-choices"] != nil,
	}, nil
}

// lowerParam lowers one Boutiques input element to an *ir.Param. Grounded on
// _arg_elem_from_bt_elem.
func lowerParam(elem map[string]any, counter *idCounter, idLookup map[string]ir.ID) (*ir.Param, error) {
	valueKey, _ := elem["value-key"].(string)
	name, _ := elem["id"].(string)
	if name == "" {
		return nil, ir.InvalidDescriptorError(valueKey, "input is missing id")
	}
	title, _ := elem["name"].(string)
	desc, _ := elem["description"].(string)
	docs := ir.Documentation{Title: title, Description: desc}

	it, err := inputTypeFromBoutiques(elem)
	if err != nil {
		return nil, err
	}

	id := counter.Next()
	if valueKey != "" {
		idLookup[valueKey] = id
	}
	base := ir.Base{ID: id, Name: name, Docs: docs}

	var joinPtr *string
	if j, ok := elem["list-separator"].(string); ok {
		joinPtr = &j
	}

	switch it.Primitive {
	case primString:
		constraints := collectConstraints(elem, false, false, it.IsList)
		choices, err := stringChoices(elem)
		if err != nil {
			return nil, err
		}
		return &ir.Param{
			Base:     base,
			Body:     ir.StringBody{},
			List:     listModFor(it.IsList, constraints, joinPtr),
			Nullable: it.IsOptional,
			Default:  defaultValueFor(elem, it.IsOptional),
			Choices:  choices,
		}, nil

	case primInteger:
		constraints := collectConstraints(elem, true, false, it.IsList)
		choices, err := intChoices(elem)
		if err != nil {
			return nil, err
		}
		return &ir.Param{
			Base:     base,
			Body:     ir.IntBody{Min: constraints.IntMin, Max: constraints.IntMax},
			List:     listModFor(it.IsList, constraints, joinPtr),
			Nullable: it.IsOptional,
			Default:  defaultValueFor(elem, it.IsOptional),
			Choices:  choices,
		}, nil

	case primFloat:
		constraints := collectConstraints(elem, false, true, it.IsList)
		return &ir.Param{
			Base: base,
			Body: ir.FloatBody{
				Min:          constraints.FloatMin,
				Max:          constraints.FloatMax,
				MinExclusive: constraints.FloatMinExclusive,
				MaxExclusive: constraints.FloatMaxExclusive,
			},
			List:     listModFor(it.IsList, constraints, joinPtr),
			Nullable: it.IsOptional,
			Default:  defaultValueFor(elem, it.IsOptional),
		}, nil

	case primFile:
		return &ir.Param{
			Base: base,
			Body: ir.FileBody{
				ResolveParent: isTrue(elem["resolve-parent"]),
				Mutable:       isTrue(elem["mutable"]),
			},
			List:     listModFor(it.IsList, collectConstraints(elem, false, false, it.IsList), joinPtr),
			Nullable: it.IsOptional,
			Default:  setToNoneIfOptional(it.IsOptional),
		}, nil

	case primFlag:
		prefix, _ := elem["command-line-flag"].(string)
		if prefix == "" {
			return nil, ir.InvalidDescriptorError(name, "Flag input must have command-line-flag")
		}
		return &ir.Param{
			Base:     base,
			Body:     ir.BoolBody{ValueTrue: []string{prefix}, ValueFalse: nil},
			Nullable: false,
			Default:  &ir.DefaultValue{Kind: ir.DefaultLiteral, Literal: isTrue(elem["default-value"])},
		}, nil

	case primSubCommand:
		subBase, subStruct, err := structFromBoutiques(elem, counter)
		if err != nil {
			return nil, err
		}
		if valueKey != "" {
			idLookup[valueKey] = subBase.ID // override: the struct's own id, not the wrapper input's
		}
		return &ir.Param{
			Base:     subBase,
			Body:     subStruct,
			List:     listModFor(it.IsList, collectConstraints(elem, false, false, it.IsList), joinPtr),
			Nullable: it.IsOptional,
			Default:  setToNoneIfOptional(it.IsOptional),
		}, nil

	case primSubCommandUnion:
		rawAlts, _ := elem["type"].([]any)
		alts := make([]*ir.Param, 0, len(rawAlts))
		for _, rawAlt := range rawAlts {
			altMap, ok := rawAlt.(map[string]any)
			if !ok {
				return nil, ir.InvalidDescriptorError(name, "struct-union alternative is not an object")
			}
			altBase, altStruct, err := structFromBoutiques(altMap, counter)
			if err != nil {
				return nil, err
			}
			alts = append(alts, &ir.Param{Base: altBase, Body: altStruct})
		}
		return &ir.Param{
			Base:     base,
			Body:     ir.StructUnionBody{Alts: alts},
			List:     listModFor(it.IsList, collectConstraints(elem, false, false, it.IsList), joinPtr),
			Nullable: it.IsOptional,
			Default:  setToNoneIfOptional(it.IsOptional),
		}, nil
	}

	return nil, ir.InvalidDescriptorError(name, "unreachable primitive")
}

func listModFor(isList bool, c numericConstraints, join *string) *ir.ListMod {
	if !isList {
		return nil
	}
	return &ir.ListMod{Min: c.ListLengthMin, Max: c.ListLengthMax, Join: join}
}

func setToNoneIfOptional(optional bool) *ir.DefaultValue {
	if optional {
		return &ir.DefaultValue{Kind: ir.DefaultSetToNone}
	}
	return nil
}

// defaultValueFor mirrors the ternary in _arg_elem_from_bt_elem: when the
// param is optional, an absent declared default becomes the SetToNone
// marker; when required, an absent declared default stays absent.
func defaultValueFor(elem map[string]any, optional bool) *ir.DefaultValue {
	if v, ok := elem["default-value"]; ok && v != nil {
		return &ir.DefaultValue{Kind: ir.DefaultLiteral, Literal: v}
	}
	if optional {
		return &ir.DefaultValue{Kind: ir.DefaultSetToNone}
	}
	return nil
}

func stringChoices(elem map[string]any) ([]ir.Literal, error) {
	raw, ok := elem["value-choices"].([]any)
	if !ok {
		return nil, nil
	}
	out := make([]ir.Literal, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			return nil, ir.InvalidDescriptorError(idOf(elem), "value-choices must be all string for a String input")
		}
		out = append(out, s)
	}
	return out, nil
}

func intChoices(elem map[string]any) ([]ir.Literal, error) {
	raw, ok := elem["value-choices"].([]any)
	if !ok {
		return nil, nil
	}
	out := make([]ir.Literal, 0, len(raw))
	for _, v := range raw {
		n, ok := v.(float64)
		if !ok {
			return nil, ir.InvalidDescriptorError(idOf(elem), "value-choices must be all integer for an Integer input")
		}
		out = append(out, int64(n))
	}
	return out, nil
}

// structFromBoutiques lowers either a root descriptor or a nested
// sub-command wrapper input into (the Base of the Param that owns the
// struct, the StructBody itself). Grounded on _struct_from_boutiques.
func structFromBoutiques(bt map[string]any, counter *idCounter) (ir.Base, ir.StructBody, error) {
	if _, hasType := bt["type"]; !hasType {
		id, hasID := bt["id"].(string)
		if !hasID || id == "" {
			id, _ = bt["name"].(string)
		}
		if id == "" {
			return ir.Base{}, ir.StructBody{}, ir.InvalidDescriptorError("", "descriptor is missing id/name")
		}

		groups, idLookup, err := collectInputs(bt, counter)
		if err != nil {
			return ir.Base{}, ir.StructBody{}, err
		}
		outputs, err := collectOutputs(bt, idLookup, counter)
		if err != nil {
			return ir.Base{}, ir.StructBody{}, err
		}
		docs := descriptorDocs(bt)

		return ir.Base{ID: counter.Next(), Name: id, Outputs: outputs, Docs: docs},
			ir.StructBody{Name: id, Groups: groups, Docs: docs},
			nil
	}

	parent := bt
	child, ok := bt["type"].(map[string]any)
	if !ok {
		return ir.Base{}, ir.StructBody{}, ir.InvalidDescriptorError(idOf(parent), "sub-command type is not an object")
	}

	groups, idLookup, err := collectInputs(child, counter)
	if err != nil {
		return ir.Base{}, ir.StructBody{}, err
	}
	outputs, err := collectOutputs(child, idLookup, counter)
	if err != nil {
		return ir.Base{}, ir.StructBody{}, err
	}

	parentDocs := descriptorDocs(parent)
	childDocs := descriptorDocs(child)
	childID, _ := child["id"].(string)

	return ir.Base{ID: counter.Next(), Name: idOf(parent), Outputs: outputs, Docs: parentDocs},
		ir.StructBody{Name: childID, Groups: groups, Docs: childDocs},
		nil
}

func descriptorDocs(bt map[string]any) ir.Documentation {
	desc, _ := bt["description"].(string)
	var authors, urls []string
	if a, ok := bt["author"].(string); ok && a != "" {
		authors = []string{a}
	}
	if u, ok := bt["url"].(string); ok && u != "" {
		urls = []string{u}
	}
	return ir.Documentation{Description: desc, Authors: authors, URLs: urls}
}

// collectInputs destructures a struct-level command-line template into
// ConditionalGroups. Grounded on _collect_inputs.
func collectInputs(bt map[string]any, counter *idCounter) ([]ir.ConditionalGroup, map[string]ir.ID, error) {
	inputsLookup := map[string]any{}
	rawInputs, _ := bt["inputs"].([]any)
	for _, raw := range rawInputs {
		elem, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if vk, ok := elem["value-key"].(string); ok && vk != "" {
			inputsLookup[vk] = elem
		}
	}

	cmdRaw, present := bt["command-line"]
	if !present || cmdRaw == nil {
		return nil, nil, ir.InvalidDescriptorError(idOf(bt), "command-line is missing (null template is a hard error)")
	}
	cmdline, ok := cmdRaw.(string)
	if !ok {
		return nil, nil, ir.InvalidDescriptorError(idOf(bt), "command-line is not a string")
	}

	idLookup := map[string]ir.ID{}
	var groups []ir.ConditionalGroup

	for _, word := range splitCommandLine(cmdline) {
		segment := destructTemplate(word, inputsLookup)

		group := ir.ConditionalGroup{}
		var carg ir.Carg

		for _, item := range segment {
			if s, ok := item.(string); ok {
				carg.Tokens = append(carg.Tokens, ir.CargLiteral(s))
				continue
			}
			elem, ok := item.(map[string]any)
			if !ok {
				return nil, nil, ir.InvalidDescriptorError(idOf(bt), "command-line references a non-object input")
			}

			param, err := lowerParam(elem, counter, idLookup)
			if err != nil {
				return nil, nil, err
			}

			if _, isBool := param.Body.(ir.BoolBody); !isBool {
				prefix, _ := elem["command-line-flag"].(string)
				if sep, hasSep := elem["command-line-flag-separator"].(string); hasSep {
					carg.Tokens = append(carg.Tokens, ir.CargLiteral(prefix+sep))
				} else if prefix != "" {
					group.Cargs = append(group.Cargs, ir.Carg{Tokens: []ir.CargToken{ir.CargLiteral(prefix)}})
				}
			}
			carg.Tokens = append(carg.Tokens, param)
		}

		group.Cargs = append(group.Cargs, carg)
		groups = append(groups, group)
	}

	return groups, idLookup, nil
}

// collectOutputs lowers a struct's output-files entries. Grounded on
// _collect_outputs.
func collectOutputs(bt map[string]any, idLookup map[string]ir.ID, counter *idCounter) ([]*ir.Output, error) {
	rawOutputs, _ := bt["output-files"].([]any)
	if len(rawOutputs) == 0 {
		return nil, nil
	}

	lookupAny := make(map[string]any, len(idLookup))
	for k, v := range idLookup {
		lookupAny[k] = v
	}

	outputs := make([]*ir.Output, 0, len(rawOutputs))
	for _, raw := range rawOutputs {
		spec, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		pathTemplate, _ := spec["path-template"].(string)
		destructed := destructTemplate(pathTemplate, lookupAny)

		stripSuffixes := stringSliceField(spec, "path-template-stripped-extensions")

		tokens := make([]ir.OutputToken, 0, len(destructed))
		for _, x := range destructed {
			switch v := x.(type) {
			case string:
				tokens = append(tokens, ir.OutputLiteral(v))
			case ir.ID:
				tokens = append(tokens, ir.OutputParamReference{RefID: v, FileRemoveSuffixes: stripSuffixes})
			}
		}

		name, _ := spec["id"].(string)
		title, _ := spec["name"].(string)
		desc, _ := spec["description"].(string)
		outputs = append(outputs, &ir.Output{
			ID:     counter.Next(),
			Name:   name,
			Docs:   ir.Documentation{Title: title, Description: desc},
			Tokens: tokens,
		})
	}
	return outputs, nil
}

func stringSliceField(m map[string]any, key string) []string {
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func idOf(m map[string]any) string {
	if s, ok := m["id"].(string); ok {
		return s
	}
	return ""
}

func isTrue(v any) bool {
	b, ok := v.(bool)
	return ok && b
}
