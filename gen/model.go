package gen

// GenericArg is a language-agnostic function argument, struct field, or
// class member: a name plus optional type/default/doc text a backend
// renders in its own syntax. Grounded on model.py's GenericArg.
type GenericArg struct {
	Name      string
	Type      string
	Default   string
	Docstring string
}

// GenericFunc is a language-agnostic function: a name, its arguments, a
// body already rendered as a LineBuffer (backends build the body with
// their own expression emission, not generically), and optional return
// documentation. Grounded on model.py's GenericFunc.
type GenericFunc struct {
	Name          string
	Args          []GenericArg
	DocstringBody string
	Body          LineBuffer
	ReturnDescr   string
	ReturnType    string
}

// GenericStructure is a language-agnostic struct/class/dataclass: a name,
// its fields, and the methods attached to it (a constructor, a
// to-args/build-command method, ...). Grounded on model.py's
// GenericDataClass (the teacher also has a GenericNamedTuple with an
// identical shape; this module has no use for both so only one survives).
type GenericStructure struct {
	Name      string
	Docstring string
	Fields    []GenericArg
	Methods   []GenericFunc
}

// GenericModule is a whole emitted source file: accumulated imports, a
// fixed header (license banner, lint directives), the module's
// structures/functions in emission order, a footer, and the symbols it
// exports. A provider assembles one of these per wrapper module and then
// renders it to text in its own syntax. Grounded on model.py's
// GenericModule.
type GenericModule struct {
	Imports         LineBuffer
	Header          LineBuffer
	FuncsAndStructs []any // each element is a GenericFunc or *GenericStructure
	Footer          LineBuffer
	Exports         []string
	Docstring       string
}
