package rename

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"slices"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/jchantrell/camel2snake/internal/casing"
)

// ErrNotText is returned for files whose contents are not valid UTF-8
var ErrNotText = errors.New("file is not valid UTF-8 text")

// identifier matches a whole identifier token: a letter or underscore
// followed by letters, digits and underscores.
var identifier = regexp.MustCompile(`\b[A-Za-z_][A-Za-z0-9_]*\b`)

// ProgressCallback is called after each file is processed
type ProgressCallback func(current int, total int, description string)

// Scan reads every file and returns the distinct camelCase-looking
// identifiers found across all of them, sorted lexicographically.
// The first unreadable or undecodable file aborts the scan.
func Scan(files []string, progress ProgressCallback) ([]string, error) {
	start := time.Now()
	seen := make(map[string]struct{})
	var totalBytes uint64

	for i, path := range files {
		text, err := readText(path)
		if err != nil {
			return nil, err
		}
		totalBytes += uint64(len(text))

		before := len(seen)
		collectCandidates(text, seen)
		slog.Debug("Scanned file", "path", path, "new_candidates", len(seen)-before)

		if progress != nil {
			progress(i+1, len(files), path)
		}
	}

	candidates := make([]string, 0, len(seen))
	for ident := range seen {
		candidates = append(candidates, ident)
	}
	slices.Sort(candidates)

	slog.Info("Scan complete",
		"files", len(files),
		"size", humanize.Bytes(totalBytes),
		"candidates", len(candidates),
		"elapsed", time.Since(start).Round(time.Millisecond))

	return candidates, nil
}

// Candidates returns the sorted camelCase-looking identifiers in text.
func Candidates(text string) []string {
	seen := make(map[string]struct{})
	collectCandidates(text, seen)

	out := make([]string, 0, len(seen))
	for ident := range seen {
		out = append(out, ident)
	}
	slices.Sort(out)
	return out
}

func collectCandidates(text string, into map[string]struct{}) {
	for _, tok := range identifier.FindAllString(text, -1) {
		if casing.IsCamelCase(tok) {
			into[tok] = struct{}{}
		}
	}
}

// readText loads a file and rejects content that does not decode as UTF-8
func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("decoding %s: %w", path, ErrNotText)
	}
	return string(data), nil
}
