package model

import "time"

// SyncStatus records the last successful sheet push per business. It is only
// advanced when the accompanying transform commits.
type SyncStatus struct {
	BusinessID   string    `json:"-" gorm:"column:business_id;type:varchar(128);primaryKey"`
	LastSyncedAt time.Time `json:"last_synced_at" gorm:"not null"`
	LastSheet    string    `json:"last_sheet" gorm:"type:varchar(16);not null"`
}

// TableName overrides the default table name
func (SyncStatus) TableName() string {
	return "sync_status"
}
