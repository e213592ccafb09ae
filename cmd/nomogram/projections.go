package main

import (
	"fmt"

	"github.com/RMahshie/vibronomogram/pkg/nomogram"
	"github.com/spf13/cobra"
)

func (c *cli) newProjectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "projections",
		Short: "List the registered projections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range nomogram.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
