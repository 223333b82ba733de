package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"sheetsync-service/internal/sheet"
	"sheetsync-service/internal/store"
	"sheetsync-service/pkg/database"
	"sheetsync-service/pkg/logger"
	"sheetsync-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// BusinessKey is the caller-supplied tenant key. The spreadsheet tool sends
// it as either a JSON string or a number; numbers canonicalize to their
// decimal string.
type BusinessKey string

// UnmarshalJSON accepts a string or numeric business key
func (b *BusinessKey) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case string:
		*b = BusinessKey(strings.TrimSpace(t))
	case float64:
		*b = BusinessKey(sheet.CellString(t))
	case nil:
		*b = ""
	default:
		return fmt.Errorf("business_id must be a string or number")
	}
	return nil
}

// SyncRequest is the push payload from the spreadsheet automation tool
type SyncRequest struct {
	BusinessID BusinessKey     `json:"business_id"`
	Sheet      string          `json:"sheet"`
	Values     [][]interface{} `json:"values"`
	Timestamp  interface{}     `json:"timestamp"`
}

// Sync handles a full-sheet push for one business. The matching table is
// replaced (or upserted, for location) and the sync status row advanced in
// a single transaction; the response is sent only after the write commits,
// so the HTTP status reflects actual success or failure.
func Sync(c echo.Context) error {
	log := logger.FromEcho(c)

	var req SyncRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Malformed sync payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	businessID := string(req.BusinessID)
	if businessID == "" {
		log.Warn("Sync payload missing business_id")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "business_id is required"})
	}
	if req.Values == nil {
		log.Warn("Sync payload missing values",
			zap.String("business_id", businessID),
			zap.String("sheet", req.Sheet))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "values must be a two-dimensional array"})
	}
	if !sheet.ValidType(req.Sheet) {
		log.Warn("Sync payload has unknown sheet type",
			zap.String("business_id", businessID),
			zap.String("sheet", req.Sheet))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown sheet type"})
	}

	log.Info("Sync request received",
		zap.String("business_id", businessID),
		zap.String("sheet", req.Sheet),
		zap.Int("rows", len(req.Values)),
		zap.Any("timestamp", req.Timestamp))

	db := database.GetDB()
	var rowsWritten int
	var err error

	switch req.Sheet {
	case sheet.Menu:
		items, parseErr := sheet.ParseMenu(businessID, req.Values)
		if parseErr != nil {
			prometheus.RecordSyncRequest(req.Sheet, "error")
			log.Error("Menu transform failed",
				zap.String("business_id", businessID),
				zap.Error(parseErr))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "sync failed"})
		}
		defer prometheus.TrackDBOperation("replace_menu")(time.Now())
		err = store.ReplaceMenu(db, businessID, items)
		rowsWritten = len(items)
	case sheet.Hours:
		entries := sheet.ParseHours(businessID, req.Values)
		defer prometheus.TrackDBOperation("replace_hours")(time.Now())
		err = store.ReplaceHours(db, businessID, entries)
		rowsWritten = len(entries)
	case sheet.Location:
		loc := sheet.ParseLocation(businessID, req.Values)
		defer prometheus.TrackDBOperation("upsert_location")(time.Now())
		err = store.UpsertLocation(db, loc)
		rowsWritten = 1
	}

	if err != nil {
		prometheus.RecordSyncRequest(req.Sheet, "error")
		log.Error("Sync write failed",
			zap.String("business_id", businessID),
			zap.String("sheet", req.Sheet),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "sync failed"})
	}

	prometheus.RecordSyncRequest(req.Sheet, "ok")
	prometheus.RecordSyncRows(req.Sheet, rowsWritten)
	log.Info("Sync completed",
		zap.String("business_id", businessID),
		zap.String("sheet", req.Sheet),
		zap.Int("rows_written", rowsWritten))
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
