package main

import (
	"github.com/jchantrell/camel2snake/internal/casing"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <identifier>...",
	Short: "Print the snake_case form of the given identifiers",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := newPrinter(cmd)
		for _, ident := range args {
			p.Rename(ident, casing.ToSnakeCase(ident))
		}
		return nil
	},
}
