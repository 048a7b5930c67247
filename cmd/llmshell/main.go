package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"

	"github.com/llmshell/llmshell/internal/infrastructure/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := cli.Options{Verbose: isVerbose()}
	root := cli.NewRootCmd(opts)

	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			fmt.Fprintln(os.Stderr, "\nOperation cancelled by user")
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		if opts.Verbose {
			debug.PrintStack()
		}
		os.Exit(1)
	}
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("LLMSHELL_DEBUG"), "1") || strings.EqualFold(os.Getenv("LLMSHELL_DEBUG"), "true")
}
