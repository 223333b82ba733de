// Package sheet turns raw spreadsheet value grids into model rows. Cells
// arrive as whatever encoding/json produced for the push payload: string,
// float64, bool or nil.
package sheet

import (
	"strconv"
	"strings"
)

// CellString renders a cell as a trimmed string. Nil and unknown types
// render as the empty string.
func CellString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		if t {
			return "TRUE"
		}
		return "FALSE"
	default:
		return ""
	}
}

// CellBool is true only for the boolean true or the case-insensitive
// string "TRUE"; everything else is false.
func CellBool(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return strings.EqualFold(strings.TrimSpace(t), "TRUE")
	default:
		return false
	}
}

func cellInt(v interface{}) (int, error) {
	return strconv.Atoi(CellString(v))
}

func cellFloat(v interface{}) (float64, error) {
	return strconv.ParseFloat(CellString(v), 64)
}

// cellStringPtr renders a cell as a nullable string: empty becomes nil.
func cellStringPtr(v interface{}) *string {
	s := CellString(v)
	if s == "" {
		return nil
	}
	return &s
}
