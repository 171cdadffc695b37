package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// clientIP resolves the originating address of a request for rate
// limiting. Proxy-set headers take precedence over the socket address,
// since the service runs behind a reverse proxy.
func clientIP(c *gin.Context) string {
	// X-Forwarded-For carries the whole proxy chain; the first entry is
	// the original client.
	if chain := c.GetHeader("X-Forwarded-For"); chain != "" {
		first, _, _ := strings.Cut(chain, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}

	if realIP := c.GetHeader("X-Real-IP"); realIP != "" {
		return strings.TrimSpace(realIP)
	}

	// RemoteAddr is usually "ip:port"; keep only the host part.
	addr := c.Request.RemoteAddr
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
