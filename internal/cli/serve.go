package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"agentctx/internal/config"
	"agentctx/internal/logging"
	"agentctx/internal/server"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the context protocol server over stdio",
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			projectRoot := cfg.Scan.ProjectRoot
			if p := cmd.String("project"); p != "" {
				projectRoot = p
			}
			userRoot := cfg.Scan.UserRoot
			if u := cmd.String("user"); u != "" {
				userRoot = u
			}

			logging.Info("starting protocol server",
				logging.Path(projectRoot),
				logging.Location("workspace"))

			q := server.NewQuery(fsysBackend(), projectRoot, userRoot).
				WithRuleExtensions(cfg.Scan.RuleExtensions)
			s := server.New(cfg.Server.Name, q)
			return server.ServeStdio(s)
		},
	}
}
