package store

import (
	"errors"
	"sort"
	"strings"

	"sheetsync-service/internal/model"

	"gorm.io/gorm"
)

// dayRank fixes the client rendering order for hours rows. Day names the
// sheet invented sort after the recognized week.
var dayRank = map[string]int{
	"monday":    0,
	"tuesday":   1,
	"wednesday": 2,
	"thursday":  3,
	"friday":    4,
	"saturday":  5,
	"sunday":    6,
}

// MenuForBusiness returns the business's menu ordered by ascending item id.
// No rows is an empty slice, not an error.
func MenuForBusiness(db *gorm.DB, businessID string) ([]model.MenuItem, error) {
	items := []model.MenuItem{}
	err := db.Where("business_id = ?", businessID).Order("id ASC").Find(&items).Error
	return items, err
}

// HoursForBusiness returns the business's hours rows ordered Monday through
// Sunday, unrecognized day names last in stored order.
func HoursForBusiness(db *gorm.DB, businessID string) ([]model.HoursEntry, error) {
	entries := []model.HoursEntry{}
	if err := db.Where("business_id = ?", businessID).Find(&entries).Error; err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return rankDay(entries[i].Day) < rankDay(entries[j].Day)
	})
	return entries, nil
}

func rankDay(day string) int {
	if rank, ok := dayRank[strings.ToLower(day)]; ok {
		return rank
	}
	return len(dayRank)
}

// LocationForBusiness returns the business's location row, or nil when none
// has been synced yet.
func LocationForBusiness(db *gorm.DB, businessID string) (*model.Location, error) {
	var loc model.Location
	err := db.Where("business_id = ?", businessID).First(&loc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

// StatusForBusiness returns the business's sync status row, or nil when the
// business has never synced.
func StatusForBusiness(db *gorm.DB, businessID string) (*model.SyncStatus, error) {
	var status model.SyncStatus
	err := db.Where("business_id = ?", businessID).First(&status).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &status, nil
}
