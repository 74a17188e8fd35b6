package fsys

import (
	"io/fs"
	"os"
)

// OSFS implements FS over the native filesystem. It is the backend the
// standalone server host runs on.
type OSFS struct{}

// NewOSFS returns an FS backed by the operating system.
func NewOSFS() OSFS {
	return OSFS{}
}

// ReadFile returns the contents of the file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	// #nosec G304 - paths are composed by the scanners from configured roots
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, mapOSError("read", path, err)
	}
	return data, nil
}

// ReadDir lists the immediate entries of the directory at path.
func (OSFS) ReadDir(path string) ([]FileEntry, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, mapOSError("list", path, err)
	}
	out := make([]FileEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, FileEntry{Name: e.Name(), Kind: kindFromMode(e.Type())})
	}
	return out, nil
}

// Stat reports the kind and modification time of path. Symlinks are not
// followed, matching the listing behavior.
func (OSFS) Stat(path string) (StatResult, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return StatResult{}, mapOSError("stat", path, err)
	}
	millis := info.ModTime().UnixMilli()
	return StatResult{Kind: kindFromMode(info.Mode().Type()), ModTimeMillis: &millis}, nil
}

// kindFromMode maps an os file mode to the shared kind enum. Anything that
// is not a file, directory, or symlink collapses to KindUnknown.
func kindFromMode(mode fs.FileMode) FileKind {
	switch {
	case mode.IsRegular():
		return KindFile
	case mode.IsDir():
		return KindDirectory
	case mode&fs.ModeSymlink != 0:
		return KindSymlink
	default:
		return KindUnknown
	}
}

func mapOSError(op, path string, err error) error {
	switch {
	case os.IsNotExist(err):
		return pathError(op, path, ErrNotFound)
	case os.IsPermission(err):
		return pathError(op, path, ErrAccessDenied)
	default:
		// Anything else (not-a-directory reads, IO faults) reads the same
		// to the scanners as a missing entry.
		return pathError(op, path, ErrNotFound)
	}
}
