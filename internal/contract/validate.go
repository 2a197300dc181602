package contract

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiledSchemas caches compiled JSON schemas by shape.
var compiledSchemas sync.Map // map[Shape]*jsonschema.Schema

// validateShape checks parsed JSON against the schema for the given shape.
func validateShape(shape Shape, def map[string]any, parsed any) error {
	compiled, err := compiledSchema(shape, def)
	if err != nil {
		return fmt.Errorf("compile %s schema: %w", shape, err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	return nil
}

func compiledSchema(shape Shape, def map[string]any) (*jsonschema.Schema, error) {
	if cached, ok := compiledSchemas.Load(shape); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library wants a parsed JSON value, not Go maps with
	// typed values. Round-trip through encoding/json to normalize.
	defBytes, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", shape)
	if err := c.AddResource(url, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	compiledSchemas.Store(shape, compiled)
	return compiled, nil
}
