package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/tupa/internal/domain"
	"github.com/heartmarshall/tupa/internal/service/decoding"
)

type decodeOptions struct {
	marginal string
	json     bool
}

type decodeLine struct {
	Syllable    string `json:"syllable"`
	Description string `json:"description,omitempty"`
	Error       string `json:"error,omitempty"`
	Kind        string `json:"kind,omitempty"`
}

func newDecodeCmd(root *rootOptions) *cobra.Command {
	opts := &decodeOptions{}

	cmd := &cobra.Command{
		Use:   "decode <syllable>...",
		Short: "Decode syllables and print their position descriptions",
		Example: `  tupa decode taeq kwang
  tupa decode --marginal 正則,框架 --json dwi`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, root, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.marginal, "marginal", "", "admitted marginal kinds: 正則,原貌,框架 or regular,original,framework")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print one JSON object per syllable")
	return cmd
}

func runDecode(cmd *cobra.Command, root *rootOptions, opts *decodeOptions, args []string) error {
	kinds, err := domain.ParseMarginalKinds(opts.marginal)
	if err != nil {
		return err
	}

	results, err := root.service(cmd).DecodeBatch(cmd.Context(), decoding.BatchInput{
		Syllables: args,
		Marginal:  &kinds,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)

	failed := 0
	for _, res := range results {
		line := decodeLine{Syllable: res.Syllable}
		if res.Err != nil {
			failed++
			line.Error = res.Err.Error()
			line.Kind = res.Kind().String()
		} else {
			line.Description = res.Position.Description()
		}

		if opts.json {
			if err := enc.Encode(line); err != nil {
				return err
			}
			continue
		}
		if line.Error != "" {
			fmt.Fprintf(out, "%s\terror: %s\n", line.Syllable, line.Error)
		} else {
			fmt.Fprintf(out, "%s\t%s\n", line.Syllable, line.Description)
		}
	}

	if failed > 0 {
		return errFailed
	}
	return nil
}
