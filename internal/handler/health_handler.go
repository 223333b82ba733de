package handler

import (
	"net/http"

	"sheetsync-service/pkg/database"
	"sheetsync-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Root handles the plain-text liveness probe
func Root(c echo.Context) error {
	return c.String(http.StatusOK, "sheetsync-service is running")
}

// Ping handles the plain-text ping probe
func Ping(c echo.Context) error {
	return c.String(http.StatusOK, "pong")
}

// DBHealth reports whether the database answers a trivial query, returning
// the server time it reports
func DBHealth(c echo.Context) error {
	now, err := database.Now()
	if err != nil {
		logger.FromEcho(c).Error("Database health check failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"ok":    false,
			"error": "database unavailable",
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"ok":  true,
		"now": now,
	})
}
