package main

import (
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List the renames that would be applied without changing any file",
	Long: `Scan discovers source files and prints every camelCase identifier with its
snake_case replacement. It never prompts and never writes. Use --diff to also
see the lines each file would change.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(cmd, true)
	},
}
