package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/pradipta/paystream/internal/pkg/logger"
	"github.com/sirupsen/logrus"
)

// PanicRecoveryMiddleware creates a middleware that recovers from panics,
// logs them with the stack trace, and returns a generic server error so a
// single bad request never crashes the process
func PanicRecoveryMiddleware(appLogger *logger.AppLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					appLogger.WithFields(logrus.Fields{
						"panic":      r,
						"method":     c.Request().Method,
						"path":       c.Request().URL.Path,
						"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
						"stack":      string(debug.Stack()),
					}).Error("recovered from panic")

					_ = c.JSON(http.StatusInternalServerError, map[string]string{
						"error": "An unexpected error occurred",
					})
				}
			}()

			return next(c)
		}
	}
}
