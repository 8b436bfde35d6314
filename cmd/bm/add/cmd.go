// Package addcmd implements the `bm add` command.
package addcmd

import (
	"github.com/spf13/cobra"

	"github.com/go-ports/bm/cmd/bm/shared"
)

// Command implements `bm add`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the add command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "add <name> <url>",
		Short: "Add a bookmark",
		Args:  cobra.ExactArgs(2),
		RunE:  c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(_ *cobra.Command, args []string) error {
	svc, err := c.ctx.Service()
	if err != nil {
		return err
	}
	return svc.Add(args[0], args[1])
}
