// file: internal/server/middleware/request_size_test.go
// version: 1.1.0
// guid: 8f5ed221-2f04-49aa-86f7-f63fa1732b2d

package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMethodHasBody(t *testing.T) {
	t.Parallel()

	assert.True(t, methodHasBody(http.MethodPost))
	assert.True(t, methodHasBody(http.MethodPut))
	assert.True(t, methodHasBody(http.MethodPatch))
	assert.False(t, methodHasBody(http.MethodGet))
	assert.False(t, methodHasBody(http.MethodDelete))
}

func TestMaxRequestBodySize_Middleware(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(MaxRequestBodySize(8))
	router.PUT("/api/v1/language", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})
	router.GET("/api/v1/language", func(c *gin.Context) { c.Status(http.StatusOK) })

	// Declared length over the limit is rejected up front.
	bigReq := httptest.NewRequest(http.MethodPut, "/api/v1/language", bytes.NewReader(bytes.Repeat([]byte("a"), 9)))
	bigResp := httptest.NewRecorder()
	router.ServeHTTP(bigResp, bigReq)
	assert.Equal(t, http.StatusRequestEntityTooLarge, bigResp.Code)
	assert.Contains(t, bigResp.Body.String(), "PAYLOAD_TOO_LARGE")

	okReq := httptest.NewRequest(http.MethodPut, "/api/v1/language", bytes.NewReader([]byte(`{"a":1}`)))
	okResp := httptest.NewRecorder()
	router.ServeHTTP(okResp, okReq)
	assert.Equal(t, http.StatusOK, okResp.Code)

	// Methods without request bodies should pass untouched.
	getReq := httptest.NewRequest(http.MethodGet, "/api/v1/language", nil)
	getResp := httptest.NewRecorder()
	router.ServeHTTP(getResp, getReq)
	assert.Equal(t, http.StatusOK, getResp.Code)
}

func TestMaxRequestBodySize_DefaultLimit(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(MaxRequestBodySize(0))
	router.POST("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodPost, "/x", bytes.NewReader(bytes.Repeat([]byte("a"), DefaultBodyLimit+1)))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.Code)
}
