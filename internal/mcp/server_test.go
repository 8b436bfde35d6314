// In-process tests for the MCP server. Each test wires the real server to an
// mcp-go in-process client backed by a Service on a temporary store file and
// a recording opener.
package mcp_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
	mcpclient "github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/go-ports/bm/internal/checkers"
	internalmcp "github.com/go-ports/bm/internal/mcp"
	"github.com/go-ports/bm/internal/opener"
	"github.com/go-ports/bm/internal/service"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type fixture struct {
	cl   *mcpclient.Client
	rec  *opener.Recorder
	path string
}

// newFixture starts and initializes an in-process client. Cleanup is
// registered on c.
func newFixture(c *qt.C) *fixture {
	c.TB.Helper()

	path := filepath.Join(c.TB.TempDir(), "bm", "config.json")
	rec := &opener.Recorder{}
	svc, err := service.New(path, rec)
	c.Assert(err, qt.IsNil)

	cl, err := mcpclient.NewInProcessClient(internalmcp.NewServer(svc))
	c.Assert(err, qt.IsNil)
	c.TB.Cleanup(func() { _ = cl.Close() })

	c.Assert(cl.Start(context.Background()), qt.IsNil)

	initReq := mcp.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initReq.Params.ClientInfo = mcp.Implementation{Name: "bm-test", Version: "0.0.1"}
	_, err = cl.Initialize(context.Background(), initReq)
	c.Assert(err, qt.IsNil)

	return &fixture{cl: cl, rec: rec, path: path}
}

// callTool invokes the named tool and returns the text of the first content
// item.
func (f *fixture) callTool(c *qt.C, name string, args map[string]any) string {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	result, err := f.cl.CallTool(context.Background(), req)
	c.Assert(err, qt.IsNil)
	c.Assert(result.Content, qt.HasLen, 1)

	tc, ok := mcp.AsTextContent(result.Content[0])
	c.Assert(ok, qt.IsTrue)
	return tc.Text
}

// ---------------------------------------------------------------------------
// ListTools
// ---------------------------------------------------------------------------

func TestMCPListTools_HappyPath(t *testing.T) {
	c := qt.New(t)
	f := newFixture(c)

	result, err := f.cl.ListTools(context.Background(), mcp.ListToolsRequest{})
	c.Assert(err, qt.IsNil)
	c.Assert(result.Tools, qt.HasLen, 4)

	names := make([]string, len(result.Tools))
	for i, tool := range result.Tools {
		names[i] = tool.Name
	}
	c.Assert(names, qt.Contains, "bookmark_add")
	c.Assert(names, qt.Contains, "bookmark_list")
	c.Assert(names, qt.Contains, "bookmark_open")
	c.Assert(names, qt.Contains, "bookmark_remove")
}

// ---------------------------------------------------------------------------
// bookmark_add / bookmark_list
// ---------------------------------------------------------------------------

func TestMCPAddList_HappyPath(t *testing.T) {
	c := qt.New(t)
	f := newFixture(c)

	text := f.callTool(c, "bookmark_add", map[string]any{"name": "zig", "url": "https://ziglang.org"})
	c.Assert(text, checkers.JSONPathEquals("$.count"), float64(1))
	f.callTool(c, "bookmark_add", map[string]any{"name": "go", "url": "https://go.dev"})

	data, err := os.ReadFile(f.path)
	c.Assert(err, qt.IsNil)
	c.Assert(data, checkers.JSONPathEquals("$.bookmarks[0].name"), "zig")
	c.Assert(data, checkers.JSONPathEquals("$.bookmarks[1].name"), "go")

	text = f.callTool(c, "bookmark_list", map[string]any{})
	var list []map[string]any
	c.Assert(json.Unmarshal([]byte(text), &list), qt.IsNil)
	c.Assert(list, qt.DeepEquals, []map[string]any{
		{"name": "go", "url": "https://go.dev"},
		{"name": "zig", "url": "https://ziglang.org"},
	})
}

func TestMCPList_EmptyStore_HappyPath(t *testing.T) {
	c := qt.New(t)
	f := newFixture(c)

	text := f.callTool(c, "bookmark_list", map[string]any{})
	c.Assert(text, qt.Equals, "[]")
}

func TestMCPList_SeesExternalWrites(t *testing.T) {
	c := qt.New(t)
	f := newFixture(c)

	// A separate CLI invocation writes the file behind the server's back.
	other, err := service.New(f.path, &opener.Recorder{})
	c.Assert(err, qt.IsNil)
	c.Assert(other.Add("docs", "https://go.dev/doc"), qt.IsNil)

	text := f.callTool(c, "bookmark_list", map[string]any{})
	c.Assert(text, checkers.JSONPathEquals("$[0].name"), "docs")
}

// ---------------------------------------------------------------------------
// bookmark_open
// ---------------------------------------------------------------------------

func TestMCPOpen_HappyPath(t *testing.T) {
	c := qt.New(t)
	f := newFixture(c)

	f.callTool(c, "bookmark_add", map[string]any{"name": "go", "url": "https://go.dev"})

	text := f.callTool(c, "bookmark_open", map[string]any{"name": "go"})
	c.Assert(text, checkers.JSONPathEquals("$.found"), true)
	c.Assert(text, checkers.JSONPathEquals("$.url"), "https://go.dev")
	c.Assert(f.rec.URLs(), qt.DeepEquals, []string{"https://go.dev"})
}

func TestMCPOpen_FailurePath(t *testing.T) {
	c := qt.New(t)
	f := newFixture(c)

	text := f.callTool(c, "bookmark_open", map[string]any{"name": "missing"})
	c.Assert(text, checkers.JSONPathEquals("$.found"), false)
	c.Assert(text, checkers.JSONPathEquals("$.message"), `could not find "missing"`)
	c.Assert(f.rec.URLs(), qt.HasLen, 0)
}

// ---------------------------------------------------------------------------
// bookmark_remove
// ---------------------------------------------------------------------------

func TestMCPRemove_HappyPath(t *testing.T) {
	c := qt.New(t)
	f := newFixture(c)

	for _, b := range [][2]string{{"a", "u1"}, {"b", "u2"}, {"a", "u3"}} {
		f.callTool(c, "bookmark_add", map[string]any{"name": b[0], "url": b[1]})
	}

	text := f.callTool(c, "bookmark_remove", map[string]any{"name": "a"})
	c.Assert(text, checkers.JSONPathEquals("$.removed"), true)
	c.Assert(text, checkers.JSONPathEquals("$.count"), float64(2))

	data, err := os.ReadFile(f.path)
	c.Assert(err, qt.IsNil)
	c.Assert(data, checkers.JSONPathEquals("$.bookmarks[0].url"), "u2")
	c.Assert(data, checkers.JSONPathEquals("$.bookmarks[1].url"), "u3")
}

func TestMCPRemove_FailurePath(t *testing.T) {
	c := qt.New(t)
	f := newFixture(c)

	text := f.callTool(c, "bookmark_remove", map[string]any{"name": "missing"})
	c.Assert(text, checkers.JSONPathEquals("$.removed"), false)

	_, err := os.Stat(f.path)
	c.Assert(os.IsNotExist(err), qt.IsTrue)
}

// ---------------------------------------------------------------------------
// Failure paths
// ---------------------------------------------------------------------------

func TestMCPCallTool_FailurePath(t *testing.T) {
	c := qt.New(t)
	f := newFixture(c)

	c.Run("unknown tool name returns error", func(c *qt.C) {
		req := mcp.CallToolRequest{}
		req.Params.Name = "nonexistent_tool"
		req.Params.Arguments = make(map[string]any)

		_, err := f.cl.CallTool(context.Background(), req)
		c.Assert(err, qt.IsNotNil)
	})

	c.Run("malformed store file is reported as a tool error", func(c *qt.C) {
		c.Assert(os.MkdirAll(filepath.Dir(f.path), 0o755), qt.IsNil)
		c.Assert(os.WriteFile(f.path, []byte("{oops"), 0o644), qt.IsNil)

		req := mcp.CallToolRequest{}
		req.Params.Name = "bookmark_list"
		req.Params.Arguments = make(map[string]any)

		result, err := f.cl.CallTool(context.Background(), req)
		c.Assert(err, qt.IsNil)
		c.Assert(result.IsError, qt.IsTrue)
	})
}
