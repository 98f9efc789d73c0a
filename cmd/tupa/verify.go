package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/tupa/internal/seeder/corpus"
	"github.com/heartmarshall/tupa/internal/service/decoding"
)

const fileSource = "file"

type verifyOptions struct {
	corpusPath string
	printLimit int
}

func newVerifyCmd(root *rootOptions) *cobra.Command {
	opts := &verifyOptions{}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that every spelling of a corpus file decodes to its description",
		Long: `Reads a tab-separated corpus file (spelling, position description),
decodes every spelling and compares the result with the listed position.
Malformed corpus lines count as failures.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.corpusPath, "corpus", "", "corpus TSV file (required)")
	cmd.Flags().IntVar(&opts.printLimit, "print-limit", 30, "failures to print, 0 prints all")
	_ = cmd.MarkFlagRequired("corpus")
	return cmd
}

func runVerify(cmd *cobra.Command, root *rootOptions, opts *verifyOptions) error {
	if opts.printLimit < 0 {
		return errors.New("--print-limit must not be negative")
	}

	parsed, err := corpus.Parse(opts.corpusPath, fileSource)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, le := range parsed.Invalid {
		fmt.Fprintf(out, "%s: %v\n", opts.corpusPath, le)
	}

	report, err := root.service(cmd).VerifySyllables(cmd.Context(), parsed.Syllables, opts.printLimit)
	if err != nil {
		return err
	}

	printFailures(out, report)
	fmt.Fprintf(out, "run %d, failed %d, invalid lines %d, duplicates %d\n",
		report.Run, report.Failed, parsed.Stats.InvalidLines, parsed.Stats.Duplicates)

	if !report.Passed() || len(parsed.Invalid) > 0 {
		return errFailed
	}
	return nil
}

func printFailures(w io.Writer, report decoding.Report) {
	for _, f := range report.Failures {
		if f.Err != nil {
			fmt.Fprintf(w, "%s: expected %s: %v\n", f.Spelling, f.Expected, f.Err)
			continue
		}
		fmt.Fprintf(w, "%s: expected %s, got %s\n", f.Spelling, f.Expected, f.Actual)
	}
	if hidden := report.Failed - len(report.Failures); hidden > 0 {
		fmt.Fprintf(w, "... %d more failures\n", hidden)
	}
}
