package tools

import (
	"encoding/json"
	"strings"

	"github.com/rowanvale/toolloop/internal/fsops"
)

type ReadFileInput struct {
	Path     string `json:"path" jsonschema_description:"Relative file path within the workspace."`
	MaxLines int    `json:"max_lines,omitempty" jsonschema_description:"Maximum lines to return (default 200)."`
}

const defaultReadFileLines = 200
const truncationSentinel = "-- truncated --\n"

var ReadFileDefinition = ToolDefinition{
	Name:        "read_file",
	Description: "Read the contents of a file addressed by a relative path within the workspace. Directory paths and unsafe paths are rejected.",
	InputSchema: ReadFileInputSchema,
	Function:    ReadFile,
}

var ReadFileInputSchema = GenerateSchema[ReadFileInput]()

// ReadFile reads via fsops (sandbox policy) and clamps output to max_lines
// so tool results stay predictably small.
func ReadFile(input json.RawMessage) (string, error) {
	var in ReadFileInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}

	content, err := fsops.ReadFile(in.Path)
	if err != nil {
		return "", err
	}

	limit := in.MaxLines
	if limit <= 0 {
		limit = defaultReadFileLines
	}
	lines := strings.Split(content, "\n")
	if len(lines) <= limit {
		return content, nil
	}
	return strings.Join(lines[:limit], "\n") + "\n" + truncationSentinel, nil
}
