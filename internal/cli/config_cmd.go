package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"agentctx/internal/config"
	"agentctx/internal/ui"
)

func configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Display or initialize the configuration",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Display the effective configuration",
				Action: func(_ context.Context, _ *cli.Command) error {
					cfg, err := config.Load()
					if err != nil {
						return fmt.Errorf("loading configuration: %w", err)
					}
					fmt.Println(ui.Header("Configuration"))
					fmt.Printf("  project root: %s\n", cfg.Scan.ProjectRoot)
					fmt.Printf("  user root: %s\n", cfg.Scan.UserRoot)
					fmt.Printf("  rule extensions: %v\n", cfg.Scan.RuleExtensions)
					fmt.Printf("  server name: %s\n", cfg.Server.Name)
					fmt.Printf("  output format: %s\n", cfg.Output.Format)
					fmt.Printf("  color: %s\n", cfg.Output.Color)
					return nil
				},
			},
			{
				Name:  "path",
				Usage: "Print the configuration file path",
				Action: func(_ context.Context, _ *cli.Command) error {
					fmt.Println(config.FilePath())
					return nil
				},
			},
			{
				Name:  "init",
				Usage: "Write a default configuration file",
				Action: func(_ context.Context, _ *cli.Command) error {
					cfg := config.Default()
					if err := cfg.Save(); err != nil {
						return fmt.Errorf("writing configuration: %w", err)
					}
					fmt.Println(ui.StatusSuccess("wrote " + config.FilePath()))
					return nil
				},
			},
		},
	}
}
