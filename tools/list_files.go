package tools

import (
	"encoding/json"
	"sort"

	"github.com/rowanvale/toolloop/internal/fsops"
)

type ListFilesInput struct {
	Path string `json:"path,omitempty" jsonschema_description:"Optional relative directory to list (defaults to the workspace root)."`
}

var ListFilesDefinition = ToolDefinition{
	Name:        "list_files",
	Description: "List names of files in a directory within the workspace (non-recursive). Directories are suffixed with /.",
	InputSchema: ListFilesInputSchema,
	Function:    ListFiles,
}

var ListFilesInputSchema = GenerateSchema[ListFilesInput]()

// ListFiles lists directory entries under the sandbox via fsops and sorts
// them so output is deterministic across filesystems. Returns a
// JSON-encoded []string.
func ListFiles(input json.RawMessage) (string, error) {
	var in ListFilesInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}

	names, err := fsops.ListDir(in.Path)
	if err != nil {
		return "", err
	}
	sort.Strings(names)

	b, err := json.Marshal(names)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
