package group_privacy_enum

// Group privacy modes.
const (
	PUBLIC     = "public"
	PRIVATE    = "private"
	RESTRICTED = "restricted"
)

// Valid reports whether s is a recognized privacy mode.
func Valid(s string) bool {
	switch s {
	case PUBLIC, PRIVATE, RESTRICTED:
		return true
	}
	return false
}
