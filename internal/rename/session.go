package rename

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jchantrell/camel2snake/internal/prompt"
	"github.com/jchantrell/camel2snake/internal/report"
)

// Session runs one discover, scan, confirm and rewrite cycle
type Session struct {
	Root       string
	Extensions []string
	SkipDirs   []string

	// AssumeYes skips the confirmation prompt
	AssumeYes bool
	// ShowDiff prints the per-file changes before asking for confirmation
	ShowDiff bool
	// ScanOnly stops after the renames have been listed
	ScanOnly bool

	In      io.Reader
	Printer *report.Printer

	OnScan  ProgressCallback
	OnApply ProgressCallback
}

// Result describes the outcome of a session
type Result struct {
	FilesScanned int
	Mapping      Mapping
	Applied      bool
	FilesWritten int
	Replacements int
}

// Run executes the session. Nothing is written unless the user confirms.
func (s *Session) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	files, err := Discover(s.Root, s.Extensions, s.SkipDirs)
	if err != nil {
		return nil, fmt.Errorf("discovering source files: %w", err)
	}

	s.Printer.Scanning(len(files))

	candidates, err := Scan(files, s.OnScan)
	if err != nil {
		return nil, fmt.Errorf("scanning identifiers: %w", err)
	}

	mapping := BuildMapping(candidates)
	result := &Result{FilesScanned: len(files), Mapping: mapping}

	for _, r := range mapping {
		s.Printer.Rename(r.From, r.To)
	}

	if len(mapping) == 0 {
		s.Printer.NothingToRename()
		return result, nil
	}

	if s.ShowDiff {
		changes, err := Preview(files, mapping)
		if err != nil {
			return nil, fmt.Errorf("previewing changes: %w", err)
		}
		for _, c := range changes {
			s.Printer.Diff(c.Path, c.Before, c.After)
		}
	}

	if s.ScanOnly {
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("rename canceled: %w", err)
	}

	confirmed := s.AssumeYes
	if !confirmed {
		confirmed, err = prompt.Confirm(s.In, s.Printer.Writer(), s.Printer.Prompt())
		if err != nil {
			return nil, fmt.Errorf("confirming renames: %w", err)
		}
	}

	if !confirmed {
		s.Printer.Aborted()
		return result, nil
	}

	stats, err := Apply(files, mapping, s.OnApply)
	if err != nil {
		return nil, fmt.Errorf("applying renames: %w", err)
	}

	result.Applied = true
	result.FilesWritten = stats.FilesWritten
	result.Replacements = stats.Replacements

	slog.Info("Renames applied",
		"renames", len(mapping),
		"files_written", stats.FilesWritten,
		"replacements", stats.Replacements,
		"elapsed", time.Since(start).Round(time.Millisecond))

	s.Printer.Done()
	return result, nil
}
