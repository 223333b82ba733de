package sheet

import (
	"fmt"

	"sheetsync-service/internal/model"
)

// Menu sheet column layout: id, name, price, description, active.
const menuColumns = 5

// ParseMenu maps a raw menu grid to menu item rows for one business. Row 0
// is the header and is discarded. Rows that are too short or have a blank
// id, name or price cell are skipped. A non-blank id or price that does not
// parse as a number fails the whole sync; there is no partial-row recovery.
func ParseMenu(businessID string, values [][]interface{}) ([]model.MenuItem, error) {
	items := make([]model.MenuItem, 0, len(values))
	if len(values) == 0 {
		return items, nil
	}

	for i, row := range values[1:] {
		if len(row) < menuColumns {
			continue
		}
		idCell := CellString(row[0])
		name := CellString(row[1])
		priceCell := CellString(row[2])
		if idCell == "" || name == "" || priceCell == "" {
			continue
		}

		id, err := cellInt(row[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid id %q", i+1, idCell)
		}
		price, err := cellFloat(row[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid price %q", i+1, priceCell)
		}

		items = append(items, model.MenuItem{
			BusinessID:  businessID,
			ItemID:      id,
			Name:        name,
			Price:       price,
			Description: cellStringPtr(row[3]),
			Active:      CellBool(row[4]),
		})
	}

	return items, nil
}
