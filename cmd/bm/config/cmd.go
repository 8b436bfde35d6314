// Package configcmd implements the `bm config` command group.
package configcmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/go-ports/bm/cmd/bm/shared"
	"github.com/go-ports/bm/internal/buildinfo"
)

// Command implements `bm config`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the config command group.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "config",
		Short: "Show where bookmarks are stored",
		Args:  cobra.NoArgs,
		RunE:  c.runShow,
	}
	c.cmd.AddCommand(newPath(ctx))
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) runShow(cmd *cobra.Command, _ []string) error {
	path, source, err := c.ctx.StorePath()
	if err != nil {
		return err
	}
	_, statErr := os.Stat(path)

	svc, err := c.ctx.Service()
	if err != nil {
		return err
	}

	data := map[string]any{
		"store_path":   path,
		"store_source": source,
		"store_exists": statErr == nil,
		"bookmarks":    svc.Count(),
		"version":      buildinfo.Version,
		"git_commit":   buildinfo.GitCommit,
	}
	b, err := yaml.Marshal(data)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(b))
	return nil
}

// ---------------------------------------------------------------------------
// config path
// ---------------------------------------------------------------------------

func newPath(ctx *shared.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the bookmark file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _, err := ctx.StorePath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
