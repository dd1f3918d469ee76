package fsops

import (
	"os"

	"github.com/rowanvale/toolloop/internal/safety"
)

// ReadFile reads a file addressed by a relative path under the sandbox root.
// Policy violations return a safety.ToolError; plain I/O failures pass
// through as standard errors.
func ReadFile(relPath string) (string, error) {
	root, err := sandboxRoot()
	if err != nil {
		return "", err
	}

	absPath, err := safety.ValidateRelPath(root, relPath)
	if err != nil {
		return "", err
	}

	fi, err := os.Stat(absPath)
	if err != nil {
		return "", err
	}
	if fi.IsDir() {
		return "", safety.ToolError{Code: "ERR_NOT_A_FILE", Message: "path is a directory"}
	}

	b, err := os.ReadFile(absPath)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
