package middleware

import (
	"strings"

	"resort-backend/services"

	"github.com/gin-gonic/gin"
)

// AuditTrail records every successful mutating API call as an append-only
// audit row. Reads are not audited.
func AuditTrail(audit *services.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		switch c.Request.Method {
		case "POST", "PUT", "PATCH", "DELETE":
		default:
			return
		}
		if c.Writer.Status() >= 400 {
			return
		}

		actor := "anonymous"
		if v, ok := c.Get(ContextActor); ok {
			if s, ok := v.(string); ok && s != "" {
				actor = s
			}
		}

		// first path segment after /api names the table the call touched
		table := ""
		trimmed := strings.TrimPrefix(c.Request.URL.Path, "/api/")
		if parts := strings.SplitN(trimmed, "/", 2); len(parts) > 0 {
			table = parts[0]
		}

		_ = audit.Record(actor, c.Request.Method, table, c.Param("id"), map[string]interface{}{
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
		})
	}
}
