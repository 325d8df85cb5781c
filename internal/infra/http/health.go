package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ahmadalarjah/crypto-admin/internal/httpcall"
)

// handleHealth probes the upstream diagnostic route and reports
// connectivity. 200 when the backend answered 2xx, 503 otherwise.
func (s *Server) handleHealth(c *gin.Context) {
	target := s.upstream.String() + "/api/auth/test"
	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, target, nil)
	if err != nil {
		writeProxyError(c, err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	result, err := httpcall.Exchange(s.httpClient(), req)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unhealthy",
			"backend": "unreachable",
			"error":   err.Error(),
		})
		return
	}
	if !result.OK() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unhealthy",
			"backend": "error",
			"error":   fmt.Sprintf("Backend returned %d", result.Status),
		})
		return
	}
	if result.ParseErr != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unhealthy",
			"backend": "error",
			"error":   fmt.Sprintf("Backend returned invalid JSON: %v", result.ParseErr),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"backend":  "connected",
		"testData": result.Body,
	})
}
