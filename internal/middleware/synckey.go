package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"sheetsync-service/pkg/logger"
	"sheetsync-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SyncKeyHeader carries the shared secret on push requests
const SyncKeyHeader = "x-sync-key"

// SyncKeyMiddleware guards the sync endpoint with a static shared secret.
// An empty configured key is a server misconfiguration, not a caller
// failure, and is reported as such. The comparison is constant-time.
func SyncKeyMiddleware(expectedKey string) echo.MiddlewareFunc {
	expected := strings.TrimSpace(expectedKey)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log := logger.FromEcho(c)

			if expected == "" {
				log.Error("SYNC_KEY is not configured, rejecting sync request")
				return c.JSON(http.StatusInternalServerError, echo.Map{
					"error": "sync key not configured",
				})
			}

			provided := strings.TrimSpace(c.Request().Header.Get(SyncKeyHeader))
			if provided == "" || subtle.ConstantTimeCompare([]byte(expected), []byte(provided)) != 1 {
				prometheus.AuthFailuresCounter.Inc()
				log.Warn("Rejected sync request with invalid key",
					zap.Bool("key_present", provided != ""),
					zap.String("ip", c.RealIP()))
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": "invalid sync key",
				})
			}

			return next(c)
		}
	}
}
