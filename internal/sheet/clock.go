package sheet

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// clockPattern matches H:MM, HH:MM and HH:MM:SS cell values.
var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::\d{2})?$`)

// timestampLayouts are the date encodings spreadsheet exports use for
// time-only cells (epoch-relative instants, wall time in UTC).
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// NormalizeClock reduces a raw open/close cell to "HH:MM" or nil.
//
// Recognized variants:
//   - a native time value: hour and minute taken in UTC
//   - a timestamp string parseable as a date: hour and minute in UTC
//   - a bare clock string (H:MM, HH:MM, HH:MM:SS): truncated and zero-padded
//
// Anything else, including blank cells, is nil. Unrecognized input is never
// an error; the sheet cell simply does not carry a usable time.
func NormalizeClock(v interface{}) *string {
	switch t := v.(type) {
	case time.Time:
		s := t.UTC().Format("15:04")
		return &s
	case string:
		raw := strings.TrimSpace(t)
		if raw == "" {
			return nil
		}
		if m := clockPattern.FindStringSubmatch(raw); m != nil {
			hour, _ := strconv.Atoi(m[1])
			minute, _ := strconv.Atoi(m[2])
			if hour > 23 || minute > 59 {
				return nil
			}
			s := fmt.Sprintf("%02d:%02d", hour, minute)
			return &s
		}
		for _, layout := range timestampLayouts {
			if ts, err := time.Parse(layout, raw); err == nil {
				s := ts.UTC().Format("15:04")
				return &s
			}
		}
		return nil
	default:
		return nil
	}
}
