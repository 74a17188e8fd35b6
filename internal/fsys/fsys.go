// Package fsys defines the filesystem capability surface the scanners run on.
// Every traversal and read in the scanning core goes through the FS interface,
// so the same orchestrators work over the native filesystem and over any
// host-provided virtual filesystem.
package fsys

import (
	"errors"
	"fmt"
)

// FileKind classifies a directory entry or stat target.
type FileKind int

const (
	// KindUnknown is the fallback for entry types the backend does not map.
	KindUnknown FileKind = iota
	// KindFile is a regular file.
	KindFile
	// KindDirectory is a directory.
	KindDirectory
	// KindSymlink is a symbolic link.
	KindSymlink
)

// String returns a short lowercase name for the kind.
func (k FileKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	case KindSymlink:
		return "symlink"
	default:
		return "unknown"
	}
}

// FileEntry is a single directory listing result.
type FileEntry struct {
	Name string
	Kind FileKind
}

// StatResult describes a statted path. ModTimeMillis is nil when the
// backend cannot report a modification time.
type StatResult struct {
	Kind          FileKind
	ModTimeMillis *int64
}

// Sentinel errors returned by FS implementations. Callers match them with
// errors.Is; the concrete error carries the offending path.
var (
	// ErrNotFound indicates the path does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAccessDenied indicates the path exists but could not be read.
	ErrAccessDenied = errors.New("access denied")
)

// FS is the minimal capability set the scanning core needs. Implementations
// perform no retries: every failure is a single error return with no partial
// results.
type FS interface {
	// ReadFile returns the full contents of the file at path.
	ReadFile(path string) ([]byte, error)
	// ReadDir lists the immediate entries of the directory at path, in
	// whatever order the backend yields them.
	ReadDir(path string) ([]FileEntry, error)
	// Stat reports the kind and optional modification time of path.
	Stat(path string) (StatResult, error)
}

// pathError wraps a sentinel with the path it applies to.
func pathError(op, path string, sentinel error) error {
	return fmt.Errorf("%s %q: %w", op, path, sentinel)
}
