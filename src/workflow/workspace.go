package workflow

import (
	"fmt"
	"os"
	"path/filepath"
)

// Workspace is a process-local scratch directory owned by exactly one
// backup or restore invocation. Release removes it with everything inside;
// callers defer Release at acquisition so every exit path cleans up.
type Workspace struct {
	dir string
}

// AcquireWorkspace creates a fresh scratch directory.
func AcquireWorkspace() (*Workspace, error) {
	dir, err := os.MkdirTemp("", "dvm-*")
	if err != nil {
		return nil, fmt.Errorf("create scratch workspace: %w", err)
	}
	return &Workspace{dir: dir}, nil
}

// Path joins elements under the workspace root.
func (w *Workspace) Path(elem ...string) string {
	return filepath.Join(append([]string{w.dir}, elem...)...)
}

// Mkdir creates a subdirectory inside the workspace and returns its path.
func (w *Workspace) Mkdir(name string) (string, error) {
	p := w.Path(name)
	if err := os.Mkdir(p, 0o700); err != nil {
		return "", fmt.Errorf("create workspace subdirectory: %w", err)
	}
	return p, nil
}

// Release deletes the workspace and all its contents.
func (w *Workspace) Release() {
	_ = os.RemoveAll(w.dir)
}
