// Package config resolves where the bookmark store lives.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// RelativePath is the store location below $HOME.
const RelativePath = ".config/bm/config.json"

// Sources reported by ResolveStorePath.
const (
	SourceFlag    = "flag"
	SourceDefault = "default"
)

// ErrHomeNotSet is returned when the default path is needed but HOME is unset.
var ErrHomeNotSet = errors.New("HOME environment variable is not set")

// DefaultStorePath returns $HOME/.config/bm/config.json.
// Only the HOME variable is consulted.
func DefaultStorePath() (string, error) {
	home := os.Getenv("HOME")
	if home == "" {
		return "", ErrHomeNotSet
	}
	return filepath.Join(home, filepath.FromSlash(RelativePath)), nil
}

// ResolveStorePath returns the store path and the source of the resolution.
// Priority: override (from --config) → $HOME default.
// source is one of SourceFlag or SourceDefault.
func ResolveStorePath(override string) (path, source string, err error) {
	if override != "" {
		p, err := normalizePath(override)
		if err != nil {
			return "", "", err
		}
		return p, SourceFlag, nil
	}

	p, err := DefaultStorePath()
	if err != nil {
		return "", "", err
	}
	return p, SourceDefault, nil
}

// normalizePath expands ~ and makes the path absolute.
func normalizePath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home := os.Getenv("HOME")
		if home == "" {
			return "", ErrHomeNotSet
		}
		path = filepath.Join(home, path[1:])
	}
	return filepath.Abs(os.ExpandEnv(path))
}
