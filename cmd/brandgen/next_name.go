package main

import (
	"fmt"

	"github.com/mhpenta/brandgen"
	"github.com/spf13/cobra"
)

func newNextNameCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "next-name",
		Short: "Print the next free batch name in the output directory.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := brandgen.NextBaseName(a.opts.OutputDir, a.opts.BasePrefix)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), base)
			return nil
		},
	}
}
