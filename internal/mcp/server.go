// Package mcp provides the stdio MCP server exposing bookmark tools to agents.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/go-ports/bm/internal/buildinfo"
	"github.com/go-ports/bm/internal/opener"
	"github.com/go-ports/bm/internal/service"
)

const addDescription = `Add a named URL bookmark. Names are not unique; adding an existing name keeps both entries and lookups use the first one.`

const listDescription = `List all bookmarks sorted by name. Returns an array of {name, url}.`

const openDescription = `Open the first bookmark with the given name in the user's default URL handler. Returns found=false when no bookmark has that name.`

const removeDescription = `Remove the first bookmark with the given name. Returns removed=false when no bookmark has that name.`

// NewServer creates and registers all bookmark tools on a new MCP server.
// It is separate from Serve so tests can drive the server in-process.
func NewServer(svc *service.Service) *mcpserver.MCPServer {
	s := mcpserver.NewMCPServer("bm", buildinfo.Version)
	registerTools(s, svc)
	return s
}

// Serve starts the stdio MCP server on the store at storePath, blocking
// until stdin closes. An empty storePath uses the default location.
func Serve(_ context.Context, storePath string, o opener.Opener) error {
	svc, err := service.New(storePath, o)
	if err != nil {
		return fmt.Errorf("mcp: init service: %w", err)
	}
	return mcpserver.ServeStdio(NewServer(svc))
}

// registerTools wires the four bookmark tools into the server.
func registerTools(s *mcpserver.MCPServer, svc *service.Service) {
	s.AddTool(mcp.NewTool("bookmark_add",
		mcp.WithDescription(addDescription),
		mcp.WithString("name",
			mcp.Description("Label used to refer to the bookmark."),
			mcp.Required(),
		),
		mcp.WithString("url",
			mcp.Description("URL to store."),
			mcp.Required(),
		),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleAdd(ctx, svc, req)
	})

	s.AddTool(mcp.NewTool("bookmark_list",
		mcp.WithDescription(listDescription),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleList(ctx, svc, req)
	})

	s.AddTool(mcp.NewTool("bookmark_open",
		mcp.WithDescription(openDescription),
		mcp.WithString("name",
			mcp.Description("Exact bookmark name."),
			mcp.Required(),
		),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleOpen(ctx, svc, req)
	})

	s.AddTool(mcp.NewTool("bookmark_remove",
		mcp.WithDescription(removeDescription),
		mcp.WithString("name",
			mcp.Description("Exact bookmark name."),
			mcp.Required(),
		),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleRemove(ctx, svc, req)
	})
}

// ---------------------------------------------------------------------------
// Tool handlers
// ---------------------------------------------------------------------------

// Every handler reloads first: the server is long-lived and the CLI may have
// rewritten the file in between calls.

func handleAdd(_ context.Context, svc *service.Service, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	url := req.GetString("url", "")

	if err := svc.Reload(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := svc.Add(name, url); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{
		"name":  name,
		"url":   url,
		"count": svc.Count(),
	})
}

func handleList(_ context.Context, svc *service.Service, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := svc.Reload(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	list := svc.List()
	clean := make([]map[string]any, 0, len(list))
	for _, b := range list {
		clean = append(clean, map[string]any{
			"name": b.Name,
			"url":  b.URL,
		})
	}
	return jsonResult(clean)
}

func handleOpen(_ context.Context, svc *service.Service, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")

	if err := svc.Reload(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	b, found := svc.Open(name)
	if !found {
		return jsonResult(map[string]any{
			"found":   false,
			"message": service.NotFoundMessage(name),
		})
	}
	return jsonResult(map[string]any{
		"found": true,
		"url":   b.URL,
	})
}

func handleRemove(_ context.Context, svc *service.Service, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")

	if err := svc.Reload(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	removed, err := svc.Remove(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{
		"removed": removed,
		"count":   svc.Count(),
	})
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
