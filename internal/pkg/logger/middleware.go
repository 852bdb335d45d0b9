package logger

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// EchoMiddleware returns an echo middleware that logs each request with
// structured fields
func EchoMiddleware(appLogger *AppLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			fields := logrus.Fields{
				"method":     req.Method,
				"path":       req.URL.Path,
				"status":     res.Status,
				"latency_ms": time.Since(start).Milliseconds(),
				"request_id": res.Header().Get(echo.HeaderXRequestID),
			}

			if err != nil {
				fields["error"] = err.Error()
				appLogger.WithFields(fields).Error("request completed with error")
				return err
			}

			appLogger.WithFields(fields).Info("request completed")
			return nil
		}
	}
}
