package model

// MenuItem is one row of a business's menu sheet. The whole set is replaced
// on every menu sync, so there is no surrogate key and no soft delete.
type MenuItem struct {
	BusinessID  string  `json:"-" gorm:"column:business_id;type:varchar(128);primaryKey"`
	ItemID      int     `json:"id" gorm:"column:id;primaryKey;autoIncrement:false"`
	Name        string  `json:"name" gorm:"type:varchar(255);not null"`
	Price       float64 `json:"price" gorm:"not null"`
	Description *string `json:"description" gorm:"type:text"`
	Active      bool    `json:"active"`
}

// TableName overrides the default table name
func (MenuItem) TableName() string {
	return "menu_items"
}
