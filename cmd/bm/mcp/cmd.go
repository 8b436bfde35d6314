// Package mcpcmd implements the `bm mcp` command.
package mcpcmd

import (
	"github.com/spf13/cobra"

	"github.com/go-ports/bm/cmd/bm/shared"
	internalmcp "github.com/go-ports/bm/internal/mcp"
)

// Command implements `bm mcp`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the mcp command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "mcp",
		Short: "Start the bm MCP server (stdio transport)",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	path, _, err := c.ctx.StorePath()
	if err != nil {
		return err
	}
	return internalmcp.Serve(cmd.Context(), path, c.ctx.Opener)
}
