package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Zachkp/portfolio/internal/logger"
)

const (
	visitorCookieName = "visitor"
	visitorKey        = "visitorID"
)

// visitorCookie gives every browser an opaque id that keys its theme
// preference. Nothing else is recorded about the visitor.
func visitorCookie() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/static/") || strings.HasPrefix(path, imagesPrefix) || path == "/healthz" {
			c.Next()
			return
		}

		id, err := c.Cookie(visitorCookieName)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(visitorCookieName, id, cookieMaxAge, "/", "", false, true)
		}
		c.Set(visitorKey, id)
		c.Next()
	}
}

func visitorID(c *gin.Context) string {
	return c.GetString(visitorKey)
}

func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := map[string]any{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			log.Warn("request failed", fields)
			return
		}
		log.Debug("request", fields)
	}
}
