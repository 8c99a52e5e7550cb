package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// getClientIP resolves the caller's address for rate limiting, trusting the
// usual proxy headers before falling back to the socket address.
func getClientIP(c *gin.Context) string {
	// X-Forwarded-For may carry a comma-separated chain; the first entry is
	// the original client.
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		if first, _, found := strings.Cut(xff, ","); found || first != "" {
			return strings.TrimSpace(first)
		}
	}

	if xri := c.GetHeader("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	// RemoteAddr is usually "ip:port"; strip the port when present.
	addr := c.Request.RemoteAddr
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
