// Package opencmd implements the `bm open` command.
package opencmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/bm/cmd/bm/shared"
	"github.com/go-ports/bm/internal/service"
)

// Command implements `bm open`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the open command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "open <name>",
		Short: "Open a bookmark in the default URL handler",
		Args:  cobra.ExactArgs(1),
		RunE:  c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, args []string) error {
	svc, err := c.ctx.Service()
	if err != nil {
		return err
	}
	if _, found := svc.Open(args[0]); !found {
		fmt.Fprintln(cmd.OutOrStdout(), service.NotFoundMessage(args[0]))
	}
	return nil
}
