// Package removecmd implements the `bm remove` command.
package removecmd

import (
	"github.com/spf13/cobra"

	"github.com/go-ports/bm/cmd/bm/shared"
)

// Command implements `bm remove`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the remove command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove the first bookmark with the given name",
		Long:  "Remove the first bookmark with the given name. Does nothing if no bookmark matches.",
		Args:  cobra.ExactArgs(1),
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
	_, err = svc.Remove(args[0])
	return err
}
