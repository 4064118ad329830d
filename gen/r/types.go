package r

import (
	"fmt"
	"strings"

	"wrapgen/gen/provider"
	"wrapgen/ir"
)

func (Provider) TypeStr() string        { return "character" }
func (Provider) TypeInt() string        { return "integer" }
func (Provider) TypeFloat() string      { return "numeric" }
func (Provider) TypeBool() string       { return "logical" }
func (Provider) TypeInputPath() string  { return "character" }
func (Provider) TypeOutputPath() string { return "character" }
func (Provider) TypeRunner() string     { return "Runner" }
func (Provider) TypeExecution() string  { return "Execution" }

func (p Provider) TypeLiteralUnion(choices []ir.Literal) string {
	parts := make([]string, len(choices))
	for i, c := range choices {
		parts[i] = provider.ExprLiteral(p, c)
	}
	return fmt.Sprintf("Union[%s]", strings.Join(parts, ", "))
}

func (Provider) TypeList(elem string) string     { return fmt.Sprintf("vector[%s]", elem) }
func (Provider) TypeOptional(elem string) string { return fmt.Sprintf("nullable[%s]", elem) }
func (Provider) TypeUnion(elems []string) string { return fmt.Sprintf("Union[%s]", strings.Join(elems, ", ")) }
