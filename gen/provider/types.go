package provider

import "wrapgen/ir"

// TypeProvider emits the target language's type syntax. Grounded on
// languageprovider.py's LanguageTypeProvider.
type TypeProvider interface {
	TypeStr() string
	TypeInt() string
	TypeFloat() string
	TypeBool() string
	TypeInputPath() string
	TypeOutputPath() string
	TypeRunner() string
	TypeExecution() string
	TypeLiteralUnion(choices []ir.Literal) string
	TypeList(elem string) string
	TypeOptional(elem string) string
	TypeUnion(elems []string) string
}

// TypeStringList is the type of a string list, e.g. the accumulated cargs
// list. Grounded on LanguageTypeProvider.type_string_list's default
// implementation.
func TypeStringList(p TypeProvider) string {
	return p.TypeList(p.TypeStr())
}

// TypeParam returns the target-language type expression for param, given a
// precomputed struct-id -> type-name lookup (built once per compile pass,
// since a struct's own type name isn't known until that struct itself has
// been visited). Grounded on LanguageTypeProvider.type_param's default
// implementation.
func TypeParam(p TypeProvider, param *ir.Param, lookupStructType map[ir.ID]string) string {
	base := func() string {
		switch b := param.Body.(type) {
		case ir.StringBody:
			if len(param.Choices) > 0 {
				return p.TypeLiteralUnion(param.Choices)
			}
			return p.TypeStr()
		case ir.IntBody:
			if len(param.Choices) > 0 {
				return p.TypeLiteralUnion(param.Choices)
			}
			return p.TypeInt()
		case ir.FloatBody:
			return p.TypeFloat()
		case ir.FileBody:
			return p.TypeInputPath()
		case ir.BoolBody:
			return p.TypeBool()
		case ir.StructBody:
			return lookupStructType[param.ID]
		case ir.StructUnionBody:
			var elems []string
			for _, alt := range b.Alts {
				elems = append(elems, lookupStructType[alt.ID])
			}
			return p.TypeUnion(elems)
		default:
			panic("provider: unhandled param body type in TypeParam")
		}
	}

	t := base()
	if param.IsList() {
		t = p.TypeList(t)
	}
	if param.Nullable {
		t = p.TypeOptional(t)
	}
	return t
}
