// Package report renders the user-facing output of a rename run: the scan
// header, the proposed renames, optional per-file diffs and the final status.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Printer writes report lines to an output stream
type Printer struct {
	w       io.Writer
	colored bool
}

// NewPrinter creates a printer writing to w. Colors are only emitted when colored is set.
func NewPrinter(w io.Writer, colored bool) *Printer {
	return &Printer{w: w, colored: colored}
}

// Writer returns the underlying output stream
func (p *Printer) Writer() io.Writer {
	return p.w
}

func (p *Printer) color(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if p.colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// Scanning announces how many files are about to be scanned
func (p *Printer) Scanning(files int) {
	fmt.Fprintf(p.w, "Scanning %s source files...\n\n", humanize.Comma(int64(files)))
}

// Rename prints one proposed rename as "<original> -> <converted>"
func (p *Printer) Rename(from, to string) {
	fmt.Fprintf(p.w, "%s -> %s\n", from, p.color(color.FgGreen).Sprint(to))
}

// Diff prints the changed lines between before and after for a single file.
// Unchanged lines are not shown.
func (p *Printer) Diff(path, before, after string) {
	bold := p.color(color.Bold)
	red := p.color(color.FgRed)
	green := p.color(color.FgGreen)

	fmt.Fprintln(p.w)
	bold.Fprintf(p.w, "--- %s\n", path)
	bold.Fprintf(p.w, "+++ %s\n", path)

	dmp := diffmatchpatch.New()
	src, dst, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(src, dst, false), lines)

	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			for _, line := range splitLines(d.Text) {
				red.Fprintf(p.w, "-%s\n", line)
			}
		case diffmatchpatch.DiffInsert:
			for _, line := range splitLines(d.Text) {
				green.Fprintf(p.w, "+%s\n", line)
			}
		case diffmatchpatch.DiffEqual:
		}
	}
}

// Prompt returns the confirmation question shown after the rename list
func (p *Printer) Prompt() string {
	return "\nApply these replacements? [y/N]: "
}

// NothingToRename reports an empty mapping
func (p *Printer) NothingToRename() {
	fmt.Fprintln(p.w, "Nothing to rename.")
}

// Done reports that all replacements were written
func (p *Printer) Done() {
	p.color(color.FgGreen).Fprintln(p.w, "✔ Done.")
}

// Aborted reports that the user declined and nothing was written
func (p *Printer) Aborted() {
	p.color(color.FgYellow).Fprintln(p.w, "✖ Aborted.")
}

// splitLines breaks text into lines without their terminators
func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{""}
	}
	return strings.Split(text, "\n")
}
