// Package fsops performs sandbox-scoped file operations for the builtin tools.
package fsops

import (
	"os"
	"sync"

	"github.com/rowanvale/toolloop/internal/safety"
)

var (
	rootOnce    sync.Once
	absRoot     string
	initRootErr error
)

func initRoot() {
	absRoot, initRootErr = safety.ResolveRoot(os.Getenv("TL_SANDBOX_ROOT"))
}

// sandboxRoot returns the cached absolute sandbox root, resolving it from
// TL_SANDBOX_ROOT (or the working directory) once on first use.
func sandboxRoot() (string, error) {
	rootOnce.Do(initRoot)
	return absRoot, initRootErr
}
