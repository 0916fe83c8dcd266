// file: internal/mcptools/tools.go
// version: 1.0.0
// guid: cbb2b9a5-2ca1-4a37-b0c1-b587f5679331

// Package mcptools exposes catalog search and lookup as MCP tools so
// assistants can query the portfolio content directly.
package mcptools

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jdfalk/folio/internal/content"
	"github.com/jdfalk/folio/internal/locale"
	"github.com/jdfalk/folio/internal/metrics"
	"github.com/jdfalk/folio/internal/search"
)

// CatalogSource returns the catalog to answer from. It is called once per
// tool invocation so a reloaded catalog is picked up.
type CatalogSource func() *content.Catalog

// Static wraps a fixed catalog as a CatalogSource.
func Static(c *content.Catalog) CatalogSource {
	return func() *content.Catalog { return c }
}

// SearchHit is one ranked record returned by search_content.
type SearchHit struct {
	content.Summary
	Score   int            `json:"score"`
	Matches []search.Match `json:"matches"`
}

// NewServer builds an MCP server with the catalog tools registered.
func NewServer(name, version string, source CatalogSource, defaultLang locale.Language) *server.MCPServer {
	s := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(true),
	)

	searchTool := mcp.NewTool(
		"search_content",
		mcp.WithDescription("Ranked fuzzy search over projects, experiences and pages."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Free text query.")),
		mcp.WithString("lang", mcp.Description("Display language: en or ja (default from config).")),
		mcp.WithString("kind", mcp.Description("Restrict to one kind: project, experience or page.")),
		mcp.WithString("max", mcp.Description("Max number of results to return (default 20, 0 for all).")),
	)
	getTool := mcp.NewTool(
		"get_content",
		mcp.WithDescription("Fetch one record by kind and id, localized to lang."),
		mcp.WithString("kind", mcp.Required(), mcp.Description("project, experience or page.")),
		mcp.WithString("id", mcp.Required(), mcp.Description("Record id (case-sensitive).")),
		mcp.WithString("lang", mcp.Description("Display language: en or ja.")),
	)
	listTool := mcp.NewTool(
		"list_content",
		mcp.WithDescription("List every record of a kind, localized to lang."),
		mcp.WithString("kind", mcp.Required(), mcp.Description("project, experience or page.")),
		mcp.WithString("lang", mcp.Description("Display language: en or ja.")),
	)

	s.AddTool(searchTool, searchHandler(source, defaultLang))
	s.AddTool(getTool, getHandler(source, defaultLang))
	s.AddTool(listTool, listHandler(source, defaultLang))
	return s
}

// ServeStdio runs s on stdin/stdout until the client disconnects.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

func resolveLang(req mcp.CallToolRequest, fallback locale.Language) (locale.Language, error) {
	raw := req.GetString("lang", "")
	if raw == "" {
		return fallback, nil
	}
	return locale.Parse(raw)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return mcp.NewToolResultText(string(body)), nil
}

func searchHandler(source CatalogSource, defaultLang locale.Language) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		lang, err := resolveLang(req, defaultLang)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		var kinds []content.Kind
		if raw := req.GetString("kind", ""); raw != "" {
			k, err := content.ParseKind(raw)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			kinds = append(kinds, k)
		}
		maxText := req.GetString("max", "20")
		max, err := strconv.Atoi(maxText)
		if err != nil || max < 0 {
			return mcp.NewToolResultError(fmt.Sprintf("invalid max: %s", maxText)), nil
		}

		start := time.Now()
		results := search.Limit(source().Search(lang, query, kinds...), max)
		metrics.ObserveSearch(lang.String(), time.Since(start), len(results))

		hits := make([]SearchHit, len(results))
		for i, r := range results {
			hits[i] = SearchHit{Summary: r.Record.View.Summary(), Score: r.Score, Matches: r.Matches}
		}
		log.Printf("[DEBUG] mcp search_content %q (%s): %d results", query, lang, len(hits))
		return jsonResult(hits)
	}
}

func getHandler(source CatalogSource, defaultLang locale.Language) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kind, err := content.ParseKind(req.GetString("kind", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		id := req.GetString("id", "")
		if id == "" {
			return mcp.NewToolResultError("id is required"), nil
		}
		lang, err := resolveLang(req, defaultLang)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		view, ok := source().Lookup(kind, id, lang)
		metrics.IncLookup(kind.String(), ok)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("%s not found: %s", kind, id)), nil
		}
		return jsonResult(view)
	}
}

func listHandler(source CatalogSource, defaultLang locale.Language) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kind, err := content.ParseKind(req.GetString("kind", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		lang, err := resolveLang(req, defaultLang)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(source().List(kind, lang))
	}
}
