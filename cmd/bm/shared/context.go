// Package shared holds the context passed to all CLI commands.
package shared

import (
	"log/slog"

	"github.com/go-ports/bm/internal/config"
	"github.com/go-ports/bm/internal/opener"
	"github.com/go-ports/bm/internal/service"
)

// Context carries global CLI state (flags set on the root command).
type Context struct {
	// ConfigPath overrides the bookmark file location.
	// When empty, $HOME/.config/bm/config.json is used.
	ConfigPath string

	// Verbose enables debug logging.
	Verbose bool

	// Opener launches URLs. Nil means the system handler.
	Opener opener.Opener
}

// StorePath resolves the bookmark file and where the location came from.
func (c *Context) StorePath() (path, source string, err error) {
	path, source, err = config.ResolveStorePath(c.ConfigPath)
	if err != nil {
		return "", "", err
	}
	slog.Debug("resolved bookmark file", "path", path, "source", source)
	return path, source, nil
}

// Service loads the bookmark store for one command invocation.
func (c *Context) Service() (*service.Service, error) {
	path, _, err := c.StorePath()
	if err != nil {
		return nil, err
	}
	return service.New(path, c.Opener)
}
