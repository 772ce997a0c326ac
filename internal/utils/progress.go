package utils

import (
	"io"
	"os"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"golang.org/x/term"
)

// Progress is a single labelled progress bar on stderr
type Progress struct {
	container   *mpb.Progress
	bar         *mpb.Bar
	enabled     bool
	finished    bool
	description string
}

var descLength = 32

// NewProgress creates a progress bar for total items. The bar is only drawn
// when enabled is set and stderr is a terminal.
func NewProgress(label string, total int, enabled bool) *Progress {
	p := &Progress{
		enabled: enabled && IsTerminal(os.Stderr),
	}

	if !p.enabled || total == 0 {
		p.enabled = false
		return p
	}

	p.container = mpb.New(
		mpb.WithOutput(os.Stderr),
		mpb.WithWidth(48),
		mpb.WithRefreshRate(100*time.Millisecond),
	)

	p.bar = p.container.New(int64(total),
		mpb.BarStyle().Lbound("[").Filler("█").Tip("█").Padding("░").Rbound("]"),
		mpb.PrependDecorators(
			decor.Name(label, decor.WC{W: len(label) + 1, C: decor.DindentRight}),
			decor.Any(func(decor.Statistics) string {
				return shortenPath(p.description, descLength)
			}, decor.WC{W: descLength, C: decor.DindentRight}),
			decor.CountersNoUnit("%d/%d", decor.WC{W: 12}),
		),
		mpb.AppendDecorators(
			decor.Percentage(),
		),
	)

	return p
}

// Update moves the bar to current and shows description next to it
func (p *Progress) Update(current int, description string) {
	if !p.enabled || p.bar == nil {
		return
	}

	p.description = description
	p.bar.SetCurrent(int64(current))
}

// Callback adapts the bar to a (current, total, description) progress function
func (p *Progress) Callback() func(current int, total int, description string) {
	return func(current int, _ int, description string) {
		p.Update(current, description)
	}
}

// Finish waits for the bar to render its final state. Calling it again is a no-op.
func (p *Progress) Finish() {
	if !p.enabled || p.container == nil || p.finished {
		return
	}
	p.finished = true

	if !p.bar.Completed() {
		p.bar.Abort(false)
	}
	p.container.Wait()
}

// IsTerminal reports whether w is a file attached to a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// shortenPath keeps the tail of s so that it fits in width characters
func shortenPath(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return ".." + string(r[len(r)-width+2:])
}
