package python

import (
	"fmt"
	"strings"

	"wrapgen/gen/provider"
	"wrapgen/ir"
)

func (Provider) TypeStr() string        { return "str" }
func (Provider) TypeInt() string        { return "int" }
func (Provider) TypeFloat() string      { return "float" }
func (Provider) TypeBool() string       { return "bool" }
func (Provider) TypeInputPath() string  { return "InputPathType" }
func (Provider) TypeOutputPath() string { return "OutputPathType" }
func (Provider) TypeRunner() string     { return "Runner" }
func (Provider) TypeExecution() string  { return "Execution" }

func (p Provider) TypeLiteralUnion(choices []ir.Literal) string {
	parts := make([]string, len(choices))
	for i, c := range choices {
		parts[i] = provider.ExprLiteral(p, c)
	}
	return fmt.Sprintf("typing.Literal[%s]", strings.Join(parts, ", "))
}

func (Provider) TypeList(elem string) string { return fmt.Sprintf("list[%s]", elem) }

func (Provider) TypeOptional(elem string) string { return elem + " | None" }

func (Provider) TypeUnion(elems []string) string {
	return fmt.Sprintf("typing.Union[%s]", strings.Join(elems, ", "))
}
