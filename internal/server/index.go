// file: internal/server/index.go
// version: 2.0.0
// guid: 2b3c4d5e-6f7a-8b9c-0d1e-2f3a4b5c6d7e

package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const indexHTML = `<!DOCTYPE html>
<html>
<head>
    <title>Folio</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; background-color: #f5f5f5; }
        .container { max-width: 800px; margin: 0 auto; background: white; padding: 40px; border-radius: 8px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        h1 { color: #333; }
        .api-list { background: #f8f9fa; padding: 20px; border-radius: 4px; margin: 20px 0; }
        .api-endpoint { font-family: 'Courier New', monospace; background: #e9ecef; padding: 4px 8px; margin: 2px 0; border-radius: 3px; display: block; }
        .method { color: #007bff; font-weight: bold; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Folio Content API</h1>
        <p>Every endpoint accepts <code>?lang=en</code> or <code>?lang=ja</code>.</p>

        <div class="api-list">
            <h3>System:</h3>
            <code class="api-endpoint"><span class="method">GET</span> /api/v1/health - Health check</code>
            <code class="api-endpoint"><span class="method">GET</span> /metrics - Prometheus metrics</code>
            <code class="api-endpoint"><span class="method">GET</span> /api/v1/events - Content reload events (SSE)</code>

            <h3>Search:</h3>
            <code class="api-endpoint"><span class="method">GET</span> /api/v1/search?q=&amp;kind=&amp;limit= - Ranked search</code>

            <h3>Content:</h3>
            <code class="api-endpoint"><span class="method">GET</span> /api/v1/projects - List projects</code>
            <code class="api-endpoint"><span class="method">GET</span> /api/v1/projects/featured - Featured projects</code>
            <code class="api-endpoint"><span class="method">GET</span> /api/v1/projects/:id - Get project</code>
            <code class="api-endpoint"><span class="method">GET</span> /api/v1/experiences - List experiences</code>
            <code class="api-endpoint"><span class="method">GET</span> /api/v1/experiences/:id - Get experience</code>
            <code class="api-endpoint"><span class="method">GET</span> /api/v1/pages - List pages</code>
            <code class="api-endpoint"><span class="method">GET</span> /api/v1/pages/:id - Get page</code>

            <h3>Language:</h3>
            <code class="api-endpoint"><span class="method">GET</span> /api/v1/language - Resolved language</code>
            <code class="api-endpoint"><span class="method">PUT</span> /api/v1/language - Remember a language</code>
        </div>
    </div>
</body>
</html>
`

// setupPlaceholder serves the endpoint index page
func (s *Server) setupPlaceholder() {
	s.router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
	})

	s.router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			RespondWithError(c, http.StatusNotFound, "endpoint not found", "NOT_FOUND")
			return
		}
		// For non-API routes, redirect to home
		c.Redirect(http.StatusFound, "/")
	})
}
