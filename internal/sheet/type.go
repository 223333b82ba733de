package sheet

// Sheet types a push request may carry. The type selects the transformer
// and the table it replaces.
const (
	Menu     = "menu"
	Hours    = "hours"
	Location = "location"
)

// ValidType reports whether a request's sheet field names a known sheet.
func ValidType(s string) bool {
	switch s {
	case Menu, Hours, Location:
		return true
	}
	return false
}
