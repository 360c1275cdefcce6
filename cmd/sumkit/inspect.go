package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/sumkit/pkg/dataset"
)

func inspectCmd() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Summarize a .json or .json.gz dataset file",
		ArgsUsage: "<file>",
		Flags:     loggingFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyLoggingConfig(cmd, LoadConfig())
			log := newLogger()

			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("inspect: missing dataset file argument")
			}

			docs, base, err := dataset.Load(path)
			if err != nil {
				return err
			}
			log.Debug("dataset loaded", "path", path, "base", base)

			st := dataset.Describe(docs)
			fmt.Printf("documents:     %d\n", st.Documents)
			fmt.Printf("sentences:     %d\n", st.Sentences)
			fmt.Printf("tokens:        %d\n", st.Tokens)
			fmt.Printf("labeled:       %d\n", st.Labeled)
			fmt.Printf("with target:   %d\n", st.WithTarget)
			fmt.Printf("max sentences: %d\n", st.MaxSentences)
			return nil
		},
	}
}
