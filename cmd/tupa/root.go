package main

import (
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/tupa/internal/app"
	"github.com/heartmarshall/tupa/internal/config"
	"github.com/heartmarshall/tupa/internal/service/decoding"
	"github.com/heartmarshall/tupa/internal/tupa"
)

// errFailed marks a completed run whose failures were already printed.
var errFailed = errors.New("failures reported")

type rootOptions struct {
	logLevel string
	workers  int
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "tupa",
		Short:         "Decode TUPA romanized syllables into Middle Chinese positions",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	root.PersistentFlags().IntVar(&opts.workers, "workers", 8, "concurrent decoders for batch and corpus runs")

	root.AddCommand(
		newDecodeCmd(opts),
		newVerifyCmd(opts),
		newCheckInvalidCmd(opts),
	)
	return root
}

func (o *rootOptions) logger(cmd *cobra.Command) *slog.Logger {
	return app.NewLoggerTo(cmd.ErrOrStderr(), config.LogConfig{Level: o.logLevel, Format: "text"})
}

// service builds an offline decoding service. There is no corpus
// repository; corpus files are passed to VerifySyllables directly.
func (o *rootOptions) service(cmd *cobra.Command) *decoding.Service {
	return decoding.NewService(o.logger(cmd), tupa.New(nil), nil, decoding.Config{
		Workers: o.workers,
	})
}
