package sheet

import "sheetsync-service/internal/model"

// Hours sheet column layout: day, open, close.
const hoursColumns = 3

// ParseHours maps a raw hours grid to hour rows for one business. Row 0 is
// the header and is discarded. Rows that are too short or have a blank day
// cell are skipped. Open and close cells are normalized to "HH:MM"; values
// that match no recognized time shape become nil, never an error.
func ParseHours(businessID string, values [][]interface{}) []model.HoursEntry {
	entries := make([]model.HoursEntry, 0, len(values))
	if len(values) == 0 {
		return entries
	}

	for _, row := range values[1:] {
		if len(row) < hoursColumns {
			continue
		}
		day := CellString(row[0])
		if day == "" {
			continue
		}

		entries = append(entries, model.HoursEntry{
			BusinessID: businessID,
			Day:        day,
			Open:       NormalizeClock(row[1]),
			Close:      NormalizeClock(row[2]),
		})
	}

	return entries
}
