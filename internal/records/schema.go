package records

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed wire_schema.json
var wireSchema []byte

// ValidateWire checks an encoded success payload against the output
// contract: a JSON array of flat objects whose values are numbers,
// strings, booleans, or null.
func ValidateWire(data []byte) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("wire_schema.json", bytes.NewReader(wireSchema)); err != nil {
		return fmt.Errorf("failed to load wire schema: %w", err)
	}
	schema, err := compiler.Compile("wire_schema.json")
	if err != nil {
		return fmt.Errorf("failed to compile wire schema: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to decode payload for validation: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("payload does not match output contract: %w", err)
	}
	return nil
}
