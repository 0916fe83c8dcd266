// file: internal/mcptools/tools_test.go
// version: 1.1.0
// guid: fbacb391-4fac-433e-9890-61671afaf4ef

package mcptools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdfalk/folio/internal/content"
	"github.com/jdfalk/folio/internal/locale"
	"github.com/jdfalk/folio/internal/testutil"
)

func call(t *testing.T, h func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) *mcp.CallToolResult {
	t.Helper()
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return tc.Text
}

func TestSearchContent(t *testing.T) {
	h := searchHandler(Static(testutil.Catalog(t, false)), locale.English)

	res := call(t, h, map[string]any{"query": "shogi"})
	require.False(t, res.IsError, text(t, res))

	var hits []SearchHit
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &hits))
	require.Len(t, hits, 1)
	assert.Equal(t, "shogi", hits[0].ID)
	assert.Equal(t, 90, hits[0].Score)
}

func TestSearchContent_BlankAndFiltered(t *testing.T) {
	h := searchHandler(Static(testutil.Catalog(t, false)), locale.English)

	res := call(t, h, map[string]any{"query": "   "})
	assert.JSONEq(t, `[]`, text(t, res))

	res = call(t, h, map[string]any{"query": "shogi", "kind": "page"})
	assert.JSONEq(t, `[]`, text(t, res))

	res = call(t, h, map[string]any{"query": "shogi", "kind": "gallery"})
	assert.True(t, res.IsError)

	res = call(t, h, map[string]any{"query": "shogi", "max": "many"})
	assert.True(t, res.IsError)

	res = call(t, h, map[string]any{"query": "shogi", "lang": "xx"})
	assert.True(t, res.IsError)
}

func TestGetContent(t *testing.T) {
	h := getHandler(Static(testutil.Catalog(t, false)), locale.English)

	res := call(t, h, map[string]any{"kind": "projects", "id": "shogi", "lang": "ja"})
	require.False(t, res.IsError, text(t, res))

	var view content.ProjectView
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &view))
	assert.Equal(t, "将棋アプリ", view.Title)
	assert.Equal(t, "Play shogi online", view.Description)

	res = call(t, h, map[string]any{"kind": "project", "id": "nonexistent-id"})
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "project not found: nonexistent-id")

	res = call(t, h, map[string]any{"kind": "project"})
	assert.True(t, res.IsError)
}

func TestGetContent_DefaultLanguage(t *testing.T) {
	h := getHandler(Static(testutil.Catalog(t, false)), locale.Japanese)

	res := call(t, h, map[string]any{"kind": "project", "id": "shogi"})
	require.False(t, res.IsError)
	assert.Contains(t, text(t, res), "将棋アプリ")
}

func TestListContent(t *testing.T) {
	h := listHandler(Static(testutil.Catalog(t, false)), locale.English)

	res := call(t, h, map[string]any{"kind": "pages"})
	require.False(t, res.IsError)

	var pages []content.PageView
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &pages))
	require.Len(t, pages, 1)
	assert.Equal(t, "about", pages[0].ID)

	res = call(t, h, map[string]any{"kind": "experiences"})
	assert.JSONEq(t, `[]`, text(t, res))

	res = call(t, h, map[string]any{})
	assert.True(t, res.IsError)
}

func TestNewServerRegistersTools(t *testing.T) {
	s := NewServer("folio", "test", Static(testutil.Catalog(t, false)), locale.English)

	msg := s.HandleMessage(context.Background(), json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	body, err := json.Marshal(msg)
	require.NoError(t, err)
	for _, name := range []string{"search_content", "get_content", "list_content"} {
		assert.Contains(t, string(body), name)
	}
}
