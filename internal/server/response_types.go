// file: internal/server/response_types.go
// version: 2.0.0
// guid: 7f8a9b0c-1d2e-3f4a-5b6c-7d8e9f0a1b2c

package server

import (
	"github.com/jdfalk/folio/internal/content"
	"github.com/jdfalk/folio/internal/locale"
	"github.com/jdfalk/folio/internal/search"
)

// ListResponse provides a consistent format for paginated list responses
type ListResponse struct {
	Items  any             `json:"items"`
	Lang   locale.Language `json:"lang"`
	Count  int             `json:"count"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
	Total  int             `json:"total"`
}

// ItemResponse provides a consistent format for single item responses
type ItemResponse struct {
	Data any             `json:"data"`
	Lang locale.Language `json:"lang,omitempty"`
}

// StatusResponse provides a consistent format for status check responses
type StatusResponse struct {
	Status string `json:"status"` // "ok", "degraded"
	Code   string `json:"code,omitempty"`
	Data   any    `json:"data,omitempty"`
}

// SearchHit is one ranked record in a search response.
type SearchHit struct {
	content.Summary
	Score   int            `json:"score"`
	Matches []search.Match `json:"matches"`
}

// SearchResponse is the body of GET /api/v1/search.
type SearchResponse struct {
	Query   string          `json:"query"`
	Lang    locale.Language `json:"lang"`
	Count   int             `json:"count"`
	Results []SearchHit     `json:"results"`
}

// LanguageRequest is the body of PUT /api/v1/language.
type LanguageRequest struct {
	Lang string `json:"lang" binding:"required"`
}

// PaginationParams holds common pagination parameters
type PaginationParams struct {
	Limit  int
	Offset int
}

// NewListResponse creates a ListResponse for one page of a total.
func NewListResponse[T any](items []T, lang locale.Language, total int, p PaginationParams) *ListResponse {
	return &ListResponse{
		Items:  items,
		Lang:   lang,
		Count:  len(items),
		Limit:  p.Limit,
		Offset: p.Offset,
		Total:  total,
	}
}

// NewSearchHits flattens catalog search results for the wire.
func NewSearchHits(results []search.Result[content.Entry]) []SearchHit {
	hits := make([]SearchHit, len(results))
	for i, r := range results {
		hits[i] = SearchHit{
			Summary: r.Record.View.Summary(),
			Score:   r.Score,
			Matches: r.Matches,
		}
	}
	return hits
}
