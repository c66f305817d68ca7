package middleware

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/fintrack/fintrack-api/internal/domain/port/core"
)

// Logger middleware logs incoming requests and their responses
func Logger(logger coreport.Logger, timeProvider coreport.TimeProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := timeProvider.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path += "?" + redactToken(c)
		}

		c.Next()

		statusCode := c.Writer.Status()
		fields := map[string]any{
			"method":      c.Request.Method,
			"path":        path,
			"status":      statusCode,
			"latency_ms":  timeProvider.Since(start).Std().Milliseconds(),
			"ip":          c.ClientIP(),
			"request_id":  RequestIDFrom(c),
			"user_agent":  c.Request.UserAgent(),
			"status_text": statusText(statusCode),
		}
		if identity := CurrentUser(c); identity != nil {
			fields["user_id"] = identity.UserID
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.Errors()
		}

		switch {
		case statusCode >= 500:
			logger.Error("Request processed", fields)
		case statusCode >= 400:
			logger.Warn("Request processed", fields)
		default:
			logger.Info("Request processed", fields)
		}
	}
}

// redactToken hides the token query parameter accepted by the event stream
func redactToken(c *gin.Context) string {
	q := c.Request.URL.Query()
	if q.Has("token") {
		q.Set("token", "REDACTED")
	}
	return q.Encode()
}

// statusText returns the text for the HTTP status code
func statusText(code int) string {
	switch {
	case code >= 100 && code < 200:
		return "Informational"
	case code >= 200 && code < 300:
		return "Success"
	case code >= 300 && code < 400:
		return "Redirect"
	case code >= 400 && code < 500:
		return "Client Error"
	default:
		return "Server Error"
	}
}
