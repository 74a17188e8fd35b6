// Package cli provides the command-line interface for agentctx.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"agentctx/internal/config"
	"agentctx/internal/logging"
	"agentctx/internal/ui"
)

var (
	// Version is the current version of the application.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// BuildDate is the date and time of the build.
	BuildDate = "unknown"
)

// Run executes the CLI application with the given context and arguments.
func Run(ctx context.Context, args []string) error {
	app := &cli.Command{
		Name:    "agentctx",
		Usage:   "Discover and inspect agent context artifacts",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "project",
				Aliases: []string{"p"},
				Usage:   "Project root to scan (defaults to the working directory)",
			},
			&cli.StringFlag{
				Name:  "user",
				Usage: "User root to scan (defaults to the home directory)",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable verbose output (info level logging)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug output (debug level logging, implies verbose)",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			configureColors(cmd)
			return ctx, configureLogging(cmd)
		},
		Commands: []*cli.Command{
			rulesCommand(),
			commandsCommand(),
			skillsCommand(),
			artifactsCommand(),
			contextCommand(),
			treeCommand(),
			serveCommand(),
			configCommand(),
			versionCommand(),
		},
	}
	return app.Run(ctx, args)
}

// configureColors sets up color output based on CLI flags, config, and
// whether stdout is a terminal.
func configureColors(cmd *cli.Command) {
	if cmd.Bool("no-color") || !term.IsTerminal(int(os.Stdout.Fd())) {
		ui.DisableColors()
		return
	}
	cfg, err := config.Load()
	if err == nil && cfg.Output.Color == "never" {
		ui.DisableColors()
	}
}

// configureLogging sets up the logging level based on CLI flags.
func configureLogging(cmd *cli.Command) error {
	opts := logging.DefaultOptions()

	if cmd.Bool("debug") {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	} else if cmd.Bool("verbose") {
		opts.Level = slog.LevelInfo
	}

	logger := logging.New(opts)
	logging.SetDefault(logger)

	logging.Debug("logging configured", slog.String("level", opts.Level.String()))

	return nil
}
