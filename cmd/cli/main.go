package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/ventas-tools/sales-atlas/pkg/runtime/reporters"
	"github.com/ventas-tools/sales-atlas/pkg/runtime/terminal"
	"github.com/ventas-tools/sales-atlas/pkg/runtime/terminal/export"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	registry := reporters.NewRegistry()
	_ = registry.Register("text", func(w io.Writer, opts reporters.Options) reporters.Reporter {
		return terminal.NewReporter(w, opts)
	})
	_ = registry.Register("html", func(w io.Writer, opts reporters.Options) reporters.Reporter {
		return export.NewReporter(w, opts)
	})

	cli := terminal.NewCLI(terminal.Options{
		Registry: registry,
		Logger:   logger,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
