package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jchantrell/camel2snake/internal/config"
	"github.com/jchantrell/camel2snake/internal/rename"
	"github.com/jchantrell/camel2snake/internal/report"
	"github.com/jchantrell/camel2snake/internal/utils"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var (
	cfg     *config.Config
	cfgFile string

	root       string
	extensions []string
	skipDirs   []string
	logLevel   string
	logFormat  string
	noProgress bool
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "camel2snake",
	Short: "Rename camelCase identifiers to snake_case across source files",
	Long: `camel2snake scans every C source and header file below the current directory,
lists each camelCase identifier it finds together with its snake_case form, and
after confirmation rewrites all files with the renames applied.

Matching is purely textual: identifiers inside strings and comments are renamed
too, and no backups are made.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runRename,
}

// setup loads configuration, applies flag overrides and installs the logger
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if cmd.Flags().Changed("root") {
		cfg.Root = root
	}
	if cmd.Flags().Changed("ext") {
		cfg.Extensions = extensions
	}
	if cmd.Flags().Changed("skip-dir") {
		cfg.SkipDirs = skipDirs
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = logFormat
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})
	} else {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:   level,
			NoColor: noColor || !utils.IsTerminal(os.Stderr),
		})
	}

	slog.SetDefault(slog.New(handler))

	slog.Debug("Configuration",
		"root", cfg.Root,
		"extensions", cfg.Extensions,
		"skip_dirs", cfg.SkipDirs,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat)

	return nil
}

// newPrinter writes the report to the command's stdout
func newPrinter(cmd *cobra.Command) *report.Printer {
	out := cmd.OutOrStdout()
	return report.NewPrinter(out, !noColor && utils.IsTerminal(out))
}

// progressEnabled reports whether progress bars would get in the way of the logs
func progressEnabled() bool {
	return !(noProgress || cfg.LogFormat == "json" || cfg.LogLevel == "debug")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is camel2snake.yaml in $HOME or pwd)")
	rootCmd.PersistentFlags().StringVarP(&root, "root", "r", "", "directory to scan (default is the current directory)")
	rootCmd.PersistentFlags().StringSliceVarP(&extensions, "ext", "e", rename.DefaultExtensions, "comma-separated list of file extensions to scan")
	rootCmd.PersistentFlags().StringSliceVar(&skipDirs, "skip-dir", rename.DefaultSkipDirs, "comma-separated list of directory names to skip")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (text, json)")
	rootCmd.PersistentFlags().BoolVar(&noProgress, "no-progress", false, "disable progress bars")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "apply renames without asking")
	rootCmd.Flags().BoolVar(&showDiff, "diff", false, "show the changed lines of every file before asking")

	scanCmd.Flags().BoolVar(&showDiff, "diff", false, "show the changed lines of every file")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(convertCmd)
}
