package model

// HoursEntry is one day row of a business's opening-hours sheet. Open and
// Close hold normalized "HH:MM" values; nil means the sheet left the cell
// blank or unrecognizable.
type HoursEntry struct {
	BusinessID string  `json:"-" gorm:"column:business_id;type:varchar(128);not null;index"`
	Day        string  `json:"day" gorm:"type:varchar(32);not null"`
	Open       *string `json:"open" gorm:"type:varchar(5)"`
	Close      *string `json:"close" gorm:"type:varchar(5)"`
}

// TableName overrides the default table name
func (HoursEntry) TableName() string {
	return "hours"
}
