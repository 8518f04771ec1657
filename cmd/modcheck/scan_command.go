package main

import (
	"github.com/spf13/cobra"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scan [path]",
		Short: "Report conflicts without prompting or deleting anything",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, ctx, pathArg(args), checkOptions{ReportOnly: true})
		},
	}
}
