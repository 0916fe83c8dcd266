// file: internal/server/handlers.go
// version: 1.0.0
// guid: 8b997a5e-8d66-4849-b88a-0e584d513a57

package server

import (
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jdfalk/folio/internal/content"
	"github.com/jdfalk/folio/internal/locale"
	"github.com/jdfalk/folio/internal/matcher"
	"github.com/jdfalk/folio/internal/metrics"
	"github.com/jdfalk/folio/internal/search"
)

// LanguageCookie remembers the visitor's language choice.
const LanguageCookie = "folio_lang"

const languageCookieMaxAge = 365 * 24 * 60 * 60

// resolveLanguage picks the display language for a request: an explicit
// ?lang= wins, then the cookie, then Accept-Language, then the configured
// default. Only an invalid ?lang= is an error; a stale cookie is ignored.
func (s *Server) resolveLanguage(c *gin.Context) (locale.Language, error) {
	if raw, ok := c.GetQuery("lang"); ok {
		return locale.Parse(raw)
	}
	if raw, err := c.Cookie(LanguageCookie); err == nil {
		if lang, err := locale.Parse(raw); err == nil {
			return lang, nil
		}
	}
	if lang, ok := locale.Match(c.GetHeader("Accept-Language")); ok {
		return lang, nil
	}
	return s.opts.DefaultLanguage, nil
}

// requestContext resolves the language and the published catalog, writing
// the error response itself when either is unavailable.
func (s *Server) requestContext(c *gin.Context) (*content.Catalog, locale.Language, bool) {
	lang, err := s.resolveLanguage(c)
	if err != nil {
		RespondWithValidationError(c, "lang", err.Error())
		return nil, "", false
	}
	c.Header("Content-Language", lang.String())
	c.Header("Vary", "Accept-Language, Cookie")

	catalog := s.Catalog()
	if catalog == nil {
		RespondWithServiceUnavailable(c, "content not loaded")
		return nil, "", false
	}
	return catalog, lang, true
}

// parseKinds reads a comma separated ?kind= list. No value means all kinds.
func parseKinds(raw string) ([]content.Kind, error) {
	var kinds []content.Kind
	for part := range strings.SplitSeq(raw, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		k, err := content.ParseKind(part)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(kinds, k) {
			kinds = append(kinds, k)
		}
	}
	return kinds, nil
}

// parseLimit reads ?limit= for search. Zero means no limit.
func (s *Server) parseLimit(c *gin.Context) (int, error) {
	raw, ok := c.GetQuery("limit")
	if !ok || raw == "" {
		return s.opts.DefaultLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("must be a non-negative integer")
	}
	return n, nil
}

func searchCacheKey(lang locale.Language, kinds []content.Kind, limit int, q matcher.Query) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	slices.Sort(names)
	return fmt.Sprintf("%s|%s|%d|%s", lang, strings.Join(names, ","), limit, q.Normalized())
}

func (s *Server) searchContent(c *gin.Context) {
	ol := newOperationLogger(c, "searchContent")

	catalog, lang, ok := s.requestContext(c)
	if !ok {
		return
	}
	kinds, err := parseKinds(c.Query("kind"))
	if err != nil {
		RespondWithValidationError(c, "kind", err.Error())
		return
	}
	limit, err := s.parseLimit(c)
	if err != nil {
		RespondWithValidationError(c, "limit", err.Error())
		return
	}

	raw := c.Query("q")
	query := matcher.NewQuery(raw)
	resp := SearchResponse{Query: raw, Lang: lang, Results: []SearchHit{}}
	if query.Blank() {
		c.JSON(http.StatusOK, resp)
		return
	}

	key := searchCacheKey(lang, kinds, limit, query)
	hits, cached := s.searches.Get(key)
	if cached {
		LogServiceCacheHit("search", key)
	} else {
		LogServiceCacheMiss("search", key)
		start := time.Now()
		results := catalog.Search(lang, raw, kinds...)
		if limit > 0 {
			results = search.Limit(results, limit)
		}
		hits = NewSearchHits(results)
		metrics.ObserveSearch(lang.String(), time.Since(start), len(hits))
		s.searches.Set(key, hits)
	}

	resp.Results = hits
	resp.Count = len(hits)
	ol.AddDetail("query", query.Normalized())
	ol.AddDetail("cached", cached)
	ol.LogSuccess(http.StatusOK)
	c.JSON(http.StatusOK, resp)
}

func (s *Server) listContent(kind content.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		catalog, lang, ok := s.requestContext(c)
		if !ok {
			return
		}
		p := ParsePaginationParams(c)
		views := catalog.List(kind, lang)
		c.JSON(http.StatusOK, NewListResponse(Page(views, p), lang, len(views), p))
	}
}

func (s *Server) listFeatured(c *gin.Context) {
	catalog, lang, ok := s.requestContext(c)
	if !ok {
		return
	}
	p := ParsePaginationParams(c)
	views := catalog.Featured(lang)
	c.JSON(http.StatusOK, NewListResponse(Page(views, p), lang, len(views), p))
}

func (s *Server) getContent(kind content.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		ol := newOperationLogger(c, "getContent")
		catalog, lang, ok := s.requestContext(c)
		if !ok {
			return
		}
		id := c.Param("id")
		ol.SetResourceID(id)

		view, found := catalog.Lookup(kind, id, lang)
		metrics.IncLookup(kind.String(), found)
		if !found {
			RespondWithNotFound(c, kind.String(), id)
			return
		}
		ol.LogSuccess(http.StatusOK)
		c.JSON(http.StatusOK, ItemResponse{Data: view, Lang: lang})
	}
}

func (s *Server) getLanguage(c *gin.Context) {
	lang, err := s.resolveLanguage(c)
	if err != nil {
		RespondWithValidationError(c, "lang", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"lang":      lang,
		"default":   s.opts.DefaultLanguage,
		"supported": locale.Supported(),
	})
}

// setLanguage stores the visitor's choice in a cookie so later requests
// without ?lang= render in it.
func (s *Server) setLanguage(c *gin.Context) {
	var req LanguageRequest
	if HandleBindError(c, c.ShouldBindJSON(&req)) {
		return
	}
	lang, err := locale.Parse(req.Lang)
	if err != nil {
		RespondWithValidationError(c, "lang", err.Error())
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(LanguageCookie, lang.String(), languageCookieMaxAge, "/", "", false, true)
	c.Header("Content-Language", lang.String())
	c.JSON(http.StatusOK, gin.H{"lang": lang})
}
