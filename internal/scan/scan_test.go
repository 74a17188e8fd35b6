package scan

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"agentctx/internal/fsys"
)

// memFS builds an in-memory FS populated with the given files.
func memFS(t *testing.T, files map[string]string) fsys.FS {
	t.Helper()
	mem := afero.NewMemMapFs()
	for path, content := range files {
		if err := mem.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatalf("mkdir %s: %v", path, err)
		}
		if err := afero.WriteFile(mem, path, []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	return fsys.NewAferoFS(mem)
}

// failingFS wraps an FS and fails reads of specific paths, standing in for
// files that exist in a listing but cannot be opened.
type failingFS struct {
	fsys.FS
	failPaths map[string]bool
}

func (f failingFS) ReadFile(path string) ([]byte, error) {
	if f.failPaths[path] {
		return nil, fsys.ErrAccessDenied
	}
	return f.FS.ReadFile(path)
}
