package rename

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
)

// DefaultExtensions is the C source/header pair scanned when nothing else is configured
var DefaultExtensions = []string{".c", ".h"}

// DefaultSkipDirs lists directory names that are never descended into
var DefaultSkipDirs = []string{".git"}

// Discover walks root recursively and returns every regular file whose
// extension is in extensions. Directories whose base name is in skipDirs are
// not entered. The root itself is never skipped.
func Discover(root string, extensions, skipDirs []string) ([]string, error) {
	exts := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		exts[ext] = true
	}
	skip := make(map[string]bool, len(skipDirs))
	for _, dir := range skipDirs {
		skip[dir] = true
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != root && skip[d.Name()] {
				slog.Debug("Skipping directory", "path", path)
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		if exts[filepath.Ext(path)] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	slog.Debug("Discovered source files", "root", root, "count", len(files), "extensions", extensions)
	return files, nil
}
