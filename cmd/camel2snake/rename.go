package main

import (
	"github.com/jchantrell/camel2snake/internal/rename"
	"github.com/jchantrell/camel2snake/internal/utils"
	"github.com/spf13/cobra"
)

var (
	assumeYes bool
	showDiff  bool
)

func runRename(cmd *cobra.Command, args []string) error {
	return runSession(cmd, false)
}

// runSession wires the configured session to the command's streams and progress bars
func runSession(cmd *cobra.Command, scanOnly bool) error {
	session := &rename.Session{
		Root:       cfg.Root,
		Extensions: cfg.Extensions,
		SkipDirs:   cfg.SkipDirs,
		AssumeYes:  assumeYes,
		ShowDiff:   showDiff,
		ScanOnly:   scanOnly,
		In:         cmd.InOrStdin(),
		Printer:    newPrinter(cmd),
	}

	var bars []*utils.Progress
	newBar := func(label string) rename.ProgressCallback {
		var bar *utils.Progress
		return func(current, total int, path string) {
			if bar == nil {
				bar = utils.NewProgress(label, total, progressEnabled())
				bars = append(bars, bar)
			}
			bar.Update(current, path)
			if current == total {
				bar.Finish()
			}
		}
	}
	session.OnScan = newBar("scanning")
	session.OnApply = newBar("rewriting")
	defer func() {
		for _, bar := range bars {
			bar.Finish()
		}
	}()

	_, err := session.Run(cmd.Context())
	return err
}
