package typescript

import (
	"fmt"
	"strings"

	"wrapgen/gen/provider"
	"wrapgen/ir"
)

func (Provider) TypeStr() string        { return "string" }
func (Provider) TypeInt() string        { return "number" }
func (Provider) TypeFloat() string      { return "number" }
func (Provider) TypeBool() string       { return "boolean" }
func (Provider) TypeInputPath() string  { return "InputPathType" }
func (Provider) TypeOutputPath() string { return "OutputPathType" }
func (Provider) TypeRunner() string     { return "Runner" }
func (Provider) TypeExecution() string  { return "Execution" }

func (p Provider) TypeLiteralUnion(choices []ir.Literal) string {
	parts := make([]string, len(choices))
	for i, c := range choices {
		parts[i] = provider.ExprLiteral(p, c)
	}
	return strings.Join(parts, " | ")
}

func (Provider) TypeList(elem string) string     { return fmt.Sprintf("Array<%s>", elem) }
func (Provider) TypeOptional(elem string) string { return elem + " | null" }
func (Provider) TypeUnion(elems []string) string { return strings.Join(elems, " | ") }
