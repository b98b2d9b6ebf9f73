package middleware

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Logger emits one JSON line per request to stdout: ts, request_id, method,
// path, status and latency in milliseconds. The request id comes from the
// RequestID middleware, so Logger must be registered after it.
func Logger() fiber.Handler {
	return LoggerWithWriter(os.Stdout, time.Local)
}

// LoggerWithWriter is Logger with the output writer and the timestamp
// location made explicit.
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
	enc := json.NewEncoder(w)

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		rid, _ := c.Locals(RequestIDLocalKey).(string)

		_ = enc.Encode(map[string]any{
			"ts":         time.Now().In(loc).Format(time.RFC3339),
			"request_id": rid,
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     c.Response().StatusCode(),
			"latency":    float64(time.Since(start).Milliseconds()),
		})

		return err
	}
}
