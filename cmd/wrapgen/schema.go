package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// validateAgainstSchema checks descriptor against the JSON Schema at
// schemaPath, if one was given. Grounded on registry/service.go's
// validatePayloadJSONAgainstSchema. The core itself never validates a
// descriptor against its schema (spec.md Non-goals); this is the CLI's own
// ambient affordance layered on top.
func validateAgainstSchema(schemaPath string, descriptor map[string]any) error {
	if schemaPath == "" {
		return nil
	}

	schemaBytes, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("read schema %q: %w", schemaPath, err)
	}

	var schemaDoc any
	if err := json.Unmarshal(schemaBytes, &schemaDoc); err != nil {
		return fmt.Errorf("unmarshal schema %q: %w", schemaPath, err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaPath, schemaDoc); err != nil {
		return fmt.Errorf("add schema resource %q: %w", schemaPath, err)
	}
	schema, err := c.Compile(schemaPath)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", schemaPath, err)
	}

	if err := schema.Validate(descriptor); err != nil {
		return fmt.Errorf("descriptor does not satisfy schema %q: %w", schemaPath, err)
	}
	return nil
}
