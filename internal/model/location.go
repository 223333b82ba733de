package model

// Location is the single whereabouts row for a business, upserted in place
// rather than replaced.
type Location struct {
	BusinessID  string  `json:"-" gorm:"column:business_id;type:varchar(128);primaryKey"`
	CurrentSpot *string `json:"current_spot" gorm:"type:text"`
	Note        *string `json:"note" gorm:"type:text"`
}

// TableName overrides the default table name
func (Location) TableName() string {
	return "location"
}
