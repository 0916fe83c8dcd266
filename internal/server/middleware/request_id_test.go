// file: internal/server/middleware/request_id_test.go
// version: 1.0.0
// guid: b07215f9-8fc3-44db-bfff-19fa9591e0fb

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	ulid "github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestIDRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/id", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})
	return router
}

func TestRequestID_Generated(t *testing.T) {
	t.Parallel()

	resp := httptest.NewRecorder()
	requestIDRouter().ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/id", nil))

	id := resp.Header().Get(RequestIDHeader)
	require.NotEmpty(t, id)
	assert.Equal(t, id, resp.Body.String())
	_, err := ulid.ParseStrict(id)
	assert.NoError(t, err)
}

func TestRequestID_ClientSupplied(t *testing.T) {
	t.Parallel()

	router := requestIDRouter()

	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.Header.Set(RequestIDHeader, "trace-123")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, "trace-123", resp.Header().Get(RequestIDHeader))

	long := httptest.NewRequest(http.MethodGet, "/id", nil)
	long.Header.Set(RequestIDHeader, strings.Repeat("x", 200))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, long)
	assert.Len(t, resp.Header().Get(RequestIDHeader), 26)
}
