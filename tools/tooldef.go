package tools

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// ToolDefinition binds a tool name and input schema to its local executor.
// Definitions are immutable for the lifetime of a conversation.
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema *jsonschema.Schema
	Function    func(input json.RawMessage) (string, error)
}

// GenerateSchema derives the JSON input schema for a tool from a Go struct
// type. Inline (non-$ref) output keeps the advertised catalog self-contained.
func GenerateSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}
