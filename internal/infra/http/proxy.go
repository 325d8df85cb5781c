package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ahmadalarjah/crypto-admin/internal/domain"
	"github.com/ahmadalarjah/crypto-admin/internal/httpcall"
)

// handleForward proxies one request to the upstream origin. Each
// request is stateless and independent: no retry, no backoff, no
// circuit breaking. The outcome is always one of a forwarded success,
// a forwarded upstream error with the status mirrored, or a local 500.
func (s *Server) handleForward(prefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		s.forward(c, prefix)
		s.recorder.Record(c.Request.Context(), domain.AuditEntry{
			Method:     c.Request.Method,
			Path:       "/api/" + prefix + c.Param("path"),
			Query:      c.Request.URL.RawQuery,
			Status:     c.Writer.Status(),
			LatencyMS:  elapsedMS(start),
			RequestID:  c.GetHeader("X-Request-ID"),
			Authorized: c.GetHeader("Authorization") != "",
		})
	}
}

func (s *Server) forward(c *gin.Context, prefix string) {
	method := c.Request.Method
	target := s.upstream.String() + "/api/" + prefix + c.Param("path")
	if raw := c.Request.URL.RawQuery; raw != "" {
		target += "?" + raw
	}

	authHeader := c.GetHeader("Authorization")

	var reader io.Reader
	if method == http.MethodPost || method == http.MethodPut {
		if body := forwardableBody(c, prefix, authHeader); body != nil {
			reader = bytes.NewReader(body)
		}
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), method, target, reader)
	if err != nil {
		writeProxyError(c, err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	result, err := httpcall.Exchange(s.httpClient(), req)
	if err != nil {
		writeProxyError(c, err)
		return
	}
	if result.ParseErr != nil {
		c.JSON(http.StatusInternalServerError, errorBody{
			Message: fmt.Sprintf("Backend returned invalid JSON: %v", result.ParseErr),
		})
		return
	}
	if !result.OK() {
		message, ok := httpcall.MessageField(result.Body)
		if !ok {
			message = fmt.Sprintf("Backend error: %d", result.Status)
		}
		c.JSON(result.Status, errorBody{Message: message})
		return
	}
	c.JSON(http.StatusOK, result.Body)
}

// forwardableBody reads and re-serializes a JSON request body. A body
// that is absent or malformed never fails the request; the upstream
// call simply goes out without one. Bodies on auth routes are dropped
// when the caller used a Basic scheme; that quirk matches a specific
// upstream login flow and must not be generalized.
func forwardableBody(c *gin.Context, prefix, authHeader string) []byte {
	if prefix == "auth" && strings.HasPrefix(authHeader, "Basic ") {
		return nil
	}
	if prefix == "admin" {
		contentType := c.GetHeader("Content-Type")
		if !strings.Contains(contentType, "application/json") {
			return nil
		}
	}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil
	}
	out, err := json.Marshal(decoded)
	if err != nil {
		return nil
	}
	return out
}

func writeProxyError(c *gin.Context, err error) {
	message := "Internal server error"
	if err != nil && err.Error() != "" {
		message = err.Error()
	}
	c.JSON(http.StatusInternalServerError, errorBody{Message: message})
}
