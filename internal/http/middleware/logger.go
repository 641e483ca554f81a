package middleware

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/trace"
)

// Logger is a middleware that logs each HTTP request as one JSON line on stdout.
func Logger() fiber.Handler {
	return LoggerWithWriter(os.Stdout, time.UTC)
}

// LoggerWithWriter logs each request to w. Fields:
// - ts (RFC3339Nano in loc)
// - request_id (set by RequestID)
// - method, path, status
// - latency in milliseconds
// - trace_id when the request carries a valid span
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
	if loc == nil {
		loc = time.UTC
	}

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		rid, _ := c.Locals(RequestIDLocalKey).(string)
		entry := map[string]any{
			"ts":         start.In(loc).Format(time.RFC3339Nano),
			"request_id": rid,
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     responseStatus(c, err),
			"latency":    float64(time.Since(start).Microseconds()) / 1000,
		}
		if sc := trace.SpanContextFromContext(c.UserContext()); sc.IsValid() {
			entry["trace_id"] = sc.TraceID().String()
		}

		// One Write per line keeps concurrent requests from interleaving.
		if b, mErr := json.Marshal(entry); mErr == nil {
			_, _ = w.Write(append(b, '\n'))
		}

		return err
	}
}
