package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/sumkit/pkg/ngram"
)

func filterCmd() *cli.Command {
	var n int64

	return &cli.Command{
		Name:      "filter",
		Usage:     "Drop candidate spans that repeat n-gram content of earlier lines",
		ArgsUsage: "<file> (use - for stdin)",
		Flags: append(loggingFlags(),
			&cli.Int64Flag{
				Name:        "n",
				Usage:       "n-gram order used for blocking",
				Value:       3,
				Destination: &n,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := LoadConfig()
			applyLoggingConfig(cmd, cfg)
			applyFilterConfig(cmd, cfg, &n)
			log := newLogger()

			if n < 1 {
				return fmt.Errorf("filter: n must be positive, got %d", n)
			}

			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("filter: missing input file argument (use - for stdin)")
			}

			in := io.Reader(os.Stdin)
			if path != "-" {
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				defer func() { _ = f.Close() }()
				in = f
			}

			kept, dropped, err := filterLines(in, os.Stdout, int(n))
			if err != nil {
				return err
			}
			log.Info("filtered candidates", "n", n, "kept", kept, "dropped", dropped)
			return nil
		},
	}
}

// filterLines reads one candidate span per line and writes the spans that
// survive n-gram blocking against the already-kept spans, in input order.
// Blank lines are skipped.
func filterLines(r io.Reader, w io.Writer, n int) (kept, dropped int, err error) {
	var accepted []string

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if ngram.Blocked(n, line, accepted) {
			dropped++
			continue
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return kept, dropped, err
		}
		accepted = append(accepted, line)
		kept++
	}
	if err := sc.Err(); err != nil {
		return kept, dropped, err
	}
	return kept, dropped, nil
}
