package main

import (
	"github.com/aretw0/luxmeme/internal/cli"
	"github.com/aretw0/luxmeme/internal/motif"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in motifs",
	Long:  `Prints name, width and sequence of every motif, tab separated, in output order.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := motif.Default()
		if err != nil {
			return err
		}
		return cli.List(cmd.OutOrStdout(), table)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
