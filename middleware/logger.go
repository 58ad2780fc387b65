package middleware

import (
	"encoding/json"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

// LoggerMiddleware writes one JSON access log line per request.
func LoggerMiddleware() gin.HandlerFunc {
	hostname, _ := os.Hostname()
	return gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/health", "/metrics"},
		Formatter: func(param gin.LogFormatterParams) string {
			entry := struct {
				Timestamp string  `json:"ts"`
				Level     string  `json:"level"`
				Hostname  string  `json:"host"`
				ClientIP  string  `json:"ip"`
				Method    string  `json:"method"`
				Path      string  `json:"path"`
				Status    int     `json:"status"`
				LatencyMs float64 `json:"latencyMs"`
				UserAgent string  `json:"ua"`
				BodySize  int     `json:"size"`
				Error     string  `json:"error,omitempty"`
			}{
				Timestamp: param.TimeStamp.UTC().Format(time.RFC3339Nano),
				Level:     levelFor(param.StatusCode),
				Hostname:  hostname,
				ClientIP:  param.ClientIP,
				Method:    param.Method,
				Path:      param.Path,
				Status:    param.StatusCode,
				LatencyMs: float64(param.Latency) / float64(time.Millisecond),
				UserAgent: param.Request.UserAgent(),
				BodySize:  param.BodySize,
				Error:     param.ErrorMessage,
			}
			b, _ := json.Marshal(entry)
			return string(b) + "\n"
		},
	})
}

func levelFor(status int) string {
	switch {
	case status >= 500:
		return "error"
	case status >= 400:
		return "warn"
	}
	return "info"
}
