package cli

import (
	"context"
	"errors"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"agentctx/internal/ui/tui"
)

func treeCommand() *cli.Command {
	return &cli.Command{
		Name:  "tree",
		Usage: "Browse discovered artifacts in an interactive tree",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return errors.New("tree requires an interactive terminal; use 'context' for scripted output")
			}
			q, err := newQuery(cmd)
			if err != nil {
				return err
			}
			return tui.Run(q.Context())
		},
	}
}
