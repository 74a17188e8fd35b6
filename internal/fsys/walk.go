package fsys

import (
	"path/filepath"
	"strings"
)

// WalkFiles descends recursively from root and collects full paths of files
// and symlinks whose lowercase extension (leading dot included) is in exts.
// It never ascends above root, and a directory it cannot read is treated as
// empty rather than failing the walk, so the call always succeeds with
// whatever was collected. Ordering follows the backend's listing order and
// is not meaningful.
func WalkFiles(fs FS, root string, exts []string) []string {
	allowed := extSet(exts)
	var files []string
	walkInto(fs, root, allowed, &files)
	return files
}

func walkInto(fs FS, dir string, allowed map[string]bool, files *[]string) {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		// Unreadable subtree: contribute nothing, keep walking siblings.
		return
	}
	for _, entry := range entries {
		if entry.Name == "." || entry.Name == ".." {
			continue
		}
		full := filepath.Join(dir, entry.Name)
		switch entry.Kind {
		case KindDirectory:
			walkInto(fs, full, allowed, files)
		case KindFile, KindSymlink:
			if allowed[strings.ToLower(filepath.Ext(entry.Name))] {
				*files = append(*files, full)
			}
		}
	}
}

// ListFiles collects full paths of matching files in the immediate children
// of dir only. exclude filters by exact name, which is how README-style files
// are kept out of artifact listings. Fail-soft like WalkFiles: an unreadable
// or missing dir yields an empty result.
func ListFiles(fs FS, dir string, exts []string, exclude []string) []string {
	allowed := extSet(exts)
	excluded := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		excluded[name] = true
	}

	entries, err := fs.ReadDir(dir)
	if err != nil {
		return nil
	}
	var files []string
	for _, entry := range entries {
		if entry.Kind != KindFile && entry.Kind != KindSymlink {
			continue
		}
		if excluded[entry.Name] {
			continue
		}
		if allowed[strings.ToLower(filepath.Ext(entry.Name))] {
			files = append(files, filepath.Join(dir, entry.Name))
		}
	}
	return files
}

// ListDirs collects the names of the immediate subdirectories of dir, with
// the same fail-soft contract as the file listings.
func ListDirs(fs FS, dir string) []string {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return nil
	}
	var dirs []string
	for _, entry := range entries {
		if entry.Kind == KindDirectory && entry.Name != "." && entry.Name != ".." {
			dirs = append(dirs, entry.Name)
		}
	}
	return dirs
}

func extSet(exts []string) map[string]bool {
	set := make(map[string]bool, len(exts))
	for _, ext := range exts {
		set[strings.ToLower(ext)] = true
	}
	return set
}
