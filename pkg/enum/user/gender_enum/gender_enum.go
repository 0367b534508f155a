package gender_enum

// Gender values. Empty means undisclosed.
const (
	UNSET  = ""
	MALE   = "male"
	FEMALE = "female"
	OTHER  = "other"
)

// Valid reports whether s is a recognized gender value.
func Valid(s string) bool {
	switch s {
	case UNSET, MALE, FEMALE, OTHER:
		return true
	}
	return false
}
