package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/sumkit/pkg/checkpoint"
)

func checkpointsCmd() *cli.Command {
	var (
		dir  string
		name string
	)

	return &cli.Command{
		Name:    "checkpoints",
		Aliases: []string{"ckpts"},
		Usage:   "List retained checkpoints for a training run",
		Flags: append(loggingFlags(),
			&cli.StringFlag{
				Name:        "dir",
				Usage:       "checkpoint directory",
				Value:       ".",
				Destination: &dir,
			},
			&cli.StringFlag{
				Name:        "name",
				Usage:       "checkpoint base name",
				Value:       "model",
				Destination: &name,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyLoggingConfig(cmd, LoadConfig())
			log := newLogger()

			steps, err := checkpoint.List(dir, name)
			if err != nil {
				return err
			}
			if len(steps) == 0 {
				log.Info("no checkpoints found", "dir", dir, "name", name)
				return nil
			}

			latest, _, err := checkpoint.Latest(dir, name)
			if err != nil {
				return err
			}

			fmt.Printf("Checkpoints in %s:\n\n", dir)
			for _, step := range steps {
				path := filepath.Join(dir, fmt.Sprintf("%s.%d.ckpt", name, step))
				line := fmt.Sprintf("  step %-10d %s.%d.ckpt", step, name, step)

				m, err := checkpoint.ReadManifest(path)
				switch {
				case err == nil:
					line += fmt.Sprintf("  run=%s saved=%s", m.RunID, m.SavedAt.Format(time.RFC3339))
				case errors.Is(err, fs.ErrNotExist):
					// Checkpoint predates manifests; list it bare.
				default:
					log.Warn("unreadable manifest", "path", path, "error", err)
				}

				if path == latest {
					line += "  (latest)"
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}
