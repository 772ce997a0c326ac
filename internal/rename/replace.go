package rename

import (
	"fmt"
	"log/slog"
	"os"
)

// ApplyStats summarises a rewrite pass
type ApplyStats struct {
	FilesWritten int
	Replacements int
}

// FileChange is the before and after text of one file that a mapping would modify
type FileChange struct {
	Path   string
	Before string
	After  string
	Count  int
}

// ReplaceText substitutes every whole-word occurrence of a mapped identifier
// and returns the new text together with the number of substitutions.
//
// Substitution is a single pass over identifier tokens, so text produced by
// one rename is never matched again by another.
func ReplaceText(text string, lookup map[string]string) (string, int) {
	if len(lookup) == 0 {
		return text, 0
	}

	count := 0
	out := identifier.ReplaceAllStringFunc(text, func(tok string) string {
		if to, ok := lookup[tok]; ok {
			count++
			return to
		}
		return tok
	})
	return out, count
}

// Preview computes the changes the mapping would make without writing anything.
// Files that would stay the same are omitted.
func Preview(files []string, m Mapping) ([]FileChange, error) {
	lookup := m.Lookup()

	var changes []FileChange
	for _, path := range files {
		text, err := readText(path)
		if err != nil {
			return nil, err
		}

		out, n := ReplaceText(text, lookup)
		if out == text {
			continue
		}
		changes = append(changes, FileChange{Path: path, Before: text, After: out, Count: n})
	}
	return changes, nil
}

// Apply rewrites every file in place with the mapping applied.
// Files are handled one at a time; the first failure stops the pass and
// leaves already written files modified.
func Apply(files []string, m Mapping, progress ProgressCallback) (*ApplyStats, error) {
	lookup := m.Lookup()
	stats := &ApplyStats{}

	for i, path := range files {
		text, err := readText(path)
		if err != nil {
			return stats, err
		}

		out, n := ReplaceText(text, lookup)
		if out != text {
			if err := writeText(path, out); err != nil {
				return stats, err
			}
			stats.FilesWritten++
			stats.Replacements += n
			slog.Debug("Rewrote file", "path", path, "replacements", n)
		}

		if progress != nil {
			progress(i+1, len(files), path)
		}
	}

	return stats, nil
}

// writeText replaces the contents of an existing file, keeping its permissions
func writeText(path, text string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(text), info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
