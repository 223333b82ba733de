// Package store owns every statement the service issues against the sync
// tables. Write paths wrap the full replace (or upsert) plus the status
// touch in one transaction, so a failed push never leaves a half-written
// table or a falsely advanced sync status.
package store

import (
	"time"

	"sheetsync-service/internal/model"
	"sheetsync-service/internal/sheet"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReplaceMenu swaps a business's entire menu for the parsed rows and
// records the sync. Commit or nothing.
func ReplaceMenu(db *gorm.DB, businessID string, items []model.MenuItem) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("business_id = ?", businessID).Delete(&model.MenuItem{}).Error; err != nil {
			return err
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return touchStatus(tx, businessID, sheet.Menu)
	})
}

// ReplaceHours swaps a business's entire hours set for the parsed rows and
// records the sync.
func ReplaceHours(db *gorm.DB, businessID string, entries []model.HoursEntry) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("business_id = ?", businessID).Delete(&model.HoursEntry{}).Error; err != nil {
			return err
		}
		if len(entries) > 0 {
			if err := tx.Create(&entries).Error; err != nil {
				return err
			}
		}
		return touchStatus(tx, businessID, sheet.Hours)
	})
}

// UpsertLocation overwrites the business's single location row in place and
// records the sync. The row is never deleted, only created or updated.
func UpsertLocation(db *gorm.DB, loc model.Location) error {
	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "business_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"current_spot", "note"}),
		}).Create(&loc).Error
		if err != nil {
			return err
		}
		return touchStatus(tx, loc.BusinessID, sheet.Location)
	})
}

// touchStatus upserts the per-business sync status inside the caller's
// transaction, so it only lands when the transform commits.
func touchStatus(tx *gorm.DB, businessID, sheetType string) error {
	status := model.SyncStatus{
		BusinessID:   businessID,
		LastSyncedAt: time.Now().UTC(),
		LastSheet:    sheetType,
	}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "business_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_synced_at", "last_sheet"}),
	}).Create(&status).Error
}
