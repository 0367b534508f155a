package field_type_enum

// Topical tag kinds for a group's field.
const (
	NONE     = ""
	LANGUAGE = "language"
	TRACK    = "track"
)

// Valid reports whether s is a recognized field type.
func Valid(s string) bool {
	switch s {
	case NONE, LANGUAGE, TRACK:
		return true
	}
	return false
}
