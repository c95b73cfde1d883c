package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader carries the trace ID between services
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey is the echo context key the trace ID is stored under
	TraceIDContextKey = "trace_id"
)

// RequestID tags every request with a trace ID. An ID already present in the
// X-Trace-ID header is reused so traces span service boundaries; otherwise a
// fresh UUID is generated. The ID ends up in both the request context and
// the response header.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()

			traceID := req.Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.New().String()
			}

			c.Set(TraceIDContextKey, traceID)
			res.Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID returns the trace ID stored on the context, or the empty string
// when the RequestID middleware did not run.
func GetTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}
