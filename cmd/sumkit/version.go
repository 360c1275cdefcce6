package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/urfave/cli/v3"

	"github.com/sumkit/internal/version"
)

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print version information",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			printVersion(os.Stdout)
			return nil
		},
	}
}

func printVersion(w io.Writer) {
	info := version.Resolve()
	fmt.Fprintf(w, "sumkit %s\n", info.Version)
	if info.Commit != "" {
		fmt.Fprintf(w, "commit:     %s\n", info.Commit)
	}
	if info.BuildTime != "" {
		fmt.Fprintf(w, "build time: %s\n", info.BuildTime)
	}
	fmt.Fprintf(w, "go:         %s\n", runtime.Version())
}
