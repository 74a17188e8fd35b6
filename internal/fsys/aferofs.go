package fsys

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/afero"
)

// AferoFS implements FS over any afero.Fs. This is the virtual-filesystem
// seam: editor hosts hand in whatever overlay they own, and tests use
// afero.NewMemMapFs to exercise the scanners without touching disk.
type AferoFS struct {
	inner afero.Fs
}

// NewAferoFS wraps an afero filesystem in the scanning FS contract.
func NewAferoFS(inner afero.Fs) AferoFS {
	return AferoFS{inner: inner}
}

// ReadFile returns the contents of the file at path.
func (a AferoFS) ReadFile(path string) ([]byte, error) {
	data, err := afero.ReadFile(a.inner, path)
	if err != nil {
		return nil, mapAferoError("read", path, err)
	}
	return data, nil
}

// ReadDir lists the immediate entries of the directory at path.
func (a AferoFS) ReadDir(path string) ([]FileEntry, error) {
	infos, err := afero.ReadDir(a.inner, path)
	if err != nil {
		return nil, mapAferoError("list", path, err)
	}
	out := make([]FileEntry, 0, len(infos))
	for _, info := range infos {
		out = append(out, FileEntry{Name: info.Name(), Kind: kindFromMode(info.Mode().Type())})
	}
	return out, nil
}

// Stat reports the kind and modification time of path.
func (a AferoFS) Stat(path string) (StatResult, error) {
	info, err := a.inner.Stat(path)
	if err != nil {
		return StatResult{}, mapAferoError("stat", path, err)
	}
	result := StatResult{Kind: kindFromMode(info.Mode().Type())}
	if mt := info.ModTime(); !mt.IsZero() {
		millis := mt.UnixMilli()
		result.ModTimeMillis = &millis
	}
	return result, nil
}

func mapAferoError(op, path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist), os.IsNotExist(err):
		return pathError(op, path, ErrNotFound)
	case errors.Is(err, fs.ErrPermission), os.IsPermission(err):
		return pathError(op, path, ErrAccessDenied)
	default:
		return pathError(op, path, ErrNotFound)
	}
}
