package sheet

import (
	"strings"

	"sheetsync-service/internal/model"
)

// ParseLocation maps a raw location grid to the single location row for a
// business. The grid is a label/value pair list: row 0 is the header, each
// later row carries a label in its first cell ("current_spot" or "note",
// case-insensitive) and the value in its second. Unknown labels are ignored
// and absent labels leave the field nil.
func ParseLocation(businessID string, values [][]interface{}) model.Location {
	loc := model.Location{BusinessID: businessID}
	if len(values) == 0 {
		return loc
	}

	for _, row := range values[1:] {
		if len(row) < 2 {
			continue
		}
		switch strings.ToLower(CellString(row[0])) {
		case "current_spot":
			loc.CurrentSpot = cellStringPtr(row[1])
		case "note":
			loc.Note = cellStringPtr(row[1])
		}
	}

	return loc
}
