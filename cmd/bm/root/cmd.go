// Package rootcmd wires the root cobra.Command for the bm CLI binary.
package rootcmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	addcmd "github.com/go-ports/bm/cmd/bm/add"
	configcmd "github.com/go-ports/bm/cmd/bm/config"
	listcmd "github.com/go-ports/bm/cmd/bm/list"
	mcpcmd "github.com/go-ports/bm/cmd/bm/mcp"
	opencmd "github.com/go-ports/bm/cmd/bm/open"
	removecmd "github.com/go-ports/bm/cmd/bm/remove"
	"github.com/go-ports/bm/cmd/bm/shared"
	"github.com/go-ports/bm/internal/buildinfo"
)

// New creates and returns the root cobra.Command for the bm CLI.
func New() *cobra.Command {
	return NewWithContext(&shared.Context{})
}

// NewWithContext builds the root command around ctx. Tests use it to inject
// a recording opener.
func NewWithContext(ctx *shared.Context) *cobra.Command {
	root := &cobra.Command{
		Use:           "bm",
		Short:         "Named URL bookmarks from the command line",
		Version:       buildinfo.Summary(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          func(cmd *cobra.Command, _ []string) error { return cmd.Help() },
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if ctx.Verbose {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
		},
	}

	root.PersistentFlags().StringVar(
		&ctx.ConfigPath, "config", "",
		"Override bookmark file (default: $HOME/.config/bm/config.json)",
	)
	root.PersistentFlags().BoolVar(&ctx.Verbose, "verbose", false, "Enable debug logging")

	root.AddCommand(
		addcmd.New(ctx).Cmd(),
		listcmd.New(ctx).Cmd(),
		opencmd.New(ctx).Cmd(),
		removecmd.New(ctx).Cmd(),
		configcmd.New(ctx).Cmd(),
		mcpcmd.New(ctx).Cmd(),
	)

	return root
}
