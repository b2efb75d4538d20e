// Command acncheck validates Australian Company Numbers.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/crandicha/acncheck/internal/cli"
)

func main() {
	cfg, err := cli.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "acncheck: %v\n\n", err)
		if errors.Is(err, cli.ErrUsage) || errors.Is(err, cli.ErrUnknownCommand) {
			cli.Usage(os.Stderr, flag.CommandLine)
		}
		os.Exit(cli.ExitCode(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = cli.Run(ctx, cfg, os.Stdin, os.Stdout, os.Stderr)
	stop()

	if err != nil && !errors.Is(err, cli.ErrInvalidValues) {
		fmt.Fprintf(os.Stderr, "acncheck: %v\n", err)
	}
	os.Exit(cli.ExitCode(err))
}
