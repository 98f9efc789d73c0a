package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckInvalidCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check-invalid",
		Short: "Check that known-invalid spellings are rejected with the expected diagnostics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := root.service(cmd).CheckInvalid(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, f := range report.Failures {
				fmt.Fprintf(out, "%s: want /%s/, got %s\n", f.Spelling, f.Pattern, f.Got)
			}
			fmt.Fprintf(out, "run %d, failed %d\n", report.Run, report.Failed)

			if !report.Passed() {
				return errFailed
			}
			return nil
		},
	}
}
