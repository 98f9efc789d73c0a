// Command tupa decodes TUPA syllables offline and checks the decoder
// against a reference corpus file or the built-in invalid-spelling table.
//
// Usage:
//
//	tupa decode taeq kwang [--marginal 正則,原貌] [--json]
//	tupa verify --corpus corpus.tsv [--print-limit 30]
//	tupa check-invalid
//
// Exit codes: 0 = success, 1 = any decode or verification failure.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs the CLI and returns the process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errFailed):
	default:
		fmt.Fprintf(stderr, "tupa: %v\n", err)
	}
	return 1
}
