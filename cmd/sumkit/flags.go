package main

import (
	"os"

	"github.com/urfave/cli/v3"

	"github.com/sumkit/internal/logger"
)

var (
	logLevel  string
	logFormat string
	debug     bool
)

func loggingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (auto, pretty, json, text)",
			Value:       "auto",
			Destination: &logFormat,
		},
		&cli.BoolFlag{
			Name:        "debug",
			Usage:       "enable debug logging (shorthand for --log-level=debug)",
			Destination: &debug,
		},
	}
}

// newLogger builds the command logger from the logging flags. The "auto"
// format picks pretty output only when stderr is a terminal.
func newLogger() logger.Logger {
	level := logLevel
	if debug {
		level = "debug"
	}
	format := logFormat
	if format == "auto" || format == "" {
		if stderrIsTTY() {
			format = "pretty"
		} else {
			format = "text"
		}
	}
	return logger.Build(os.Stderr, format, level)
}
