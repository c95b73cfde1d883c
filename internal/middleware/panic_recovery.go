package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"bank-reconciliation/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery converts handler panics into a logged 500 response. The
// stack trace stays in the server log; the client only sees the standard
// system error envelope.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r)
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}) {
	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	slog.Error("recovered from handler panic",
		"trace_id", traceID,
		"panic", fmt.Sprintf("%v", r),
		"stack_trace", string(debug.Stack()),
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
	)

	errorResponse := errors.NewErrorResponse(errors.SystemInternalError, traceID)
	if err := c.JSON(http.StatusInternalServerError, errorResponse); err != nil {
		slog.Error("failed to write panic recovery response",
			"trace_id", traceID,
			"error", err.Error(),
		)
	}
}
