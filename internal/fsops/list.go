package fsops

import (
	"os"

	"github.com/rowanvale/toolloop/internal/safety"
)

// ListDir returns non-recursive entry names for a relative directory under
// the sandbox root, with directories suffixed by "/". Ordering is whatever
// the filesystem yields; callers sort.
func ListDir(relDir string) ([]string, error) {
	root, err := sandboxRoot()
	if err != nil {
		return nil, err
	}

	if relDir == "" {
		relDir = "."
	}
	absDir, err := safety.ValidateRelPath(root, relDir)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(absDir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			name += "/"
		}
		names = append(names, name)
	}
	return names, nil
}
