// Package tools defines tool contracts, the name-keyed registry, and the
// builtin sandboxed file tools.
//
// Includes:
//   - ToolDefinition: name, description, JSON input schema, executor.
//   - GenerateSchema[T](): derive a JSON input schema from a Go struct.
//   - Registry: registration-ordered catalog plus Execute dispatch; unknown
//     names and executor failures fold into an error payload the model can
//     see and recover from on the next turn.
//   - File tools: read_file, list_files (non-recursive), sandbox-scoped.
package tools
