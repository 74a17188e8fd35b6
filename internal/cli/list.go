package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"agentctx/internal/config"
	"agentctx/internal/fsys"
	"agentctx/internal/model"
	"agentctx/internal/server"
	"agentctx/internal/ui"
)

// fsysBackend returns the filesystem every CLI command scans over.
func fsysBackend() fsys.FS {
	return fsys.NewOSFS()
}

// newQuery builds a query over the native filesystem using the configured
// roots, with the --project and --user flags taking precedence.
func newQuery(cmd *cli.Command) (*server.Query, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	projectRoot := cfg.Scan.ProjectRoot
	if p := cmd.String("project"); p != "" {
		projectRoot = p
	}
	userRoot := cfg.Scan.UserRoot
	if u := cmd.String("user"); u != "" {
		userRoot = u
	}
	q := server.NewQuery(fsysBackend(), projectRoot, userRoot).
		WithRuleExtensions(cfg.Scan.RuleExtensions)
	return q, nil
}

// jsonFlag is shared by every list subcommand.
func jsonFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "json",
		Usage: "Emit JSON instead of a table",
	}
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func rulesCommand() *cli.Command {
	return &cli.Command{
		Name:  "rules",
		Usage: "List rule files discovered under the project root",
		Flags: []cli.Flag{jsonFlag()},
		Action: func(_ context.Context, cmd *cli.Command) error {
			q, err := newQuery(cmd)
			if err != nil {
				return err
			}
			rules := q.Rules()
			if cmd.Bool("json") {
				return printJSON(rules)
			}
			if len(rules) == 0 {
				fmt.Println("No rules found.")
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDESCRIPTION\tALWAYS\tGLOBS")
			for _, r := range rules {
				desc := r.Metadata.Description
				if desc == model.ErrParsingFile || desc == model.ErrReadingContent {
					desc = ui.StatusError(desc)
				}
				fmt.Fprintf(w, "%s\t%s\t%v\t%d\n", r.FileName, desc, r.Metadata.AlwaysApply, len(r.Metadata.Globs))
			}
			return w.Flush()
		},
	}
}

func commandsCommand() *cli.Command {
	return &cli.Command{
		Name:  "commands",
		Usage: "List command files from the workspace and global roots",
		Flags: []cli.Flag{jsonFlag()},
		Action: func(_ context.Context, cmd *cli.Command) error {
			q, err := newQuery(cmd)
			if err != nil {
				return err
			}
			commands := q.Commands()
			if cmd.Bool("json") {
				return printJSON(commands)
			}
			if len(commands) == 0 {
				fmt.Println("No commands found.")
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tLOCATION\tDESCRIPTION")
			for _, c := range commands {
				desc := server.DescribeCommand(c.Content)
				if c.Content == model.ErrReadingContent {
					desc = ui.StatusError(model.ErrReadingContent)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", c.FileName, c.Location, desc)
			}
			return w.Flush()
		},
	}
}

func skillsCommand() *cli.Command {
	return &cli.Command{
		Name:  "skills",
		Usage: "List skills from the workspace and global roots",
		Flags: []cli.Flag{jsonFlag()},
		Action: func(_ context.Context, cmd *cli.Command) error {
			q, err := newQuery(cmd)
			if err != nil {
				return err
			}
			skills := q.Skills()
			if cmd.Bool("json") {
				return printJSON(skills)
			}
			if len(skills) == 0 {
				fmt.Println("No skills found.")
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tLOCATION\tTITLE\tSTEPS")
			for _, s := range skills {
				title, steps := "-", 0
				if s.Metadata != nil {
					if s.Metadata.Title != "" {
						title = s.Metadata.Title
					}
					steps = len(s.Metadata.Steps)
				}
				if s.Content == model.ErrReadingContent {
					title = ui.StatusError("unreadable")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", s.FileName, s.Location, title, steps)
			}
			return w.Flush()
		},
	}
}

func contextCommand() *cli.Command {
	return &cli.Command{
		Name:  "context",
		Usage: "Emit the full project context as JSON",
		Action: func(_ context.Context, cmd *cli.Command) error {
			q, err := newQuery(cmd)
			if err != nil {
				return err
			}
			return printJSON(q.Context())
		},
	}
}
