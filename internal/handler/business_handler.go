package handler

import (
	"net/http"

	"sheetsync-service/internal/model"
	"sheetsync-service/internal/store"
	"sheetsync-service/pkg/database"
	"sheetsync-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// GetMenu returns a business's menu ordered by item id. A business with no
// synced menu gets an empty list, not an error.
func GetMenu(c echo.Context) error {
	log := logger.FromEcho(c)
	businessID := c.Param("id")

	items, err := store.MenuForBusiness(database.GetDB(), businessID)
	if err != nil {
		log.Error("Failed to query menu",
			zap.String("business_id", businessID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve menu"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"business_id": businessID,
		"menu":        items,
	})
}

// GetHours returns a business's hours rows in Monday-through-Sunday order
func GetHours(c echo.Context) error {
	log := logger.FromEcho(c)
	businessID := c.Param("id")

	entries, err := store.HoursForBusiness(database.GetDB(), businessID)
	if err != nil {
		log.Error("Failed to query hours",
			zap.String("business_id", businessID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve hours"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"business_id": businessID,
		"hours":       entries,
	})
}

// GetLocation returns a business's location row. A business that never
// synced a location gets a row with both fields null.
func GetLocation(c echo.Context) error {
	log := logger.FromEcho(c)
	businessID := c.Param("id")

	loc, err := store.LocationForBusiness(database.GetDB(), businessID)
	if err != nil {
		log.Error("Failed to query location",
			zap.String("business_id", businessID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve location"})
	}
	if loc == nil {
		loc = &model.Location{BusinessID: businessID}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"business_id": businessID,
		"location":    loc,
	})
}

// GetStatus returns a business's sync status, or null if it never synced
func GetStatus(c echo.Context) error {
	log := logger.FromEcho(c)
	businessID := c.Param("id")

	status, err := store.StatusForBusiness(database.GetDB(), businessID)
	if err != nil {
		log.Error("Failed to query sync status",
			zap.String("business_id", businessID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve status"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"business_id": businessID,
		"status":      status,
	})
}
