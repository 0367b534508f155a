package ban_type_enum

// Ban types. MESSAGE silences the user in the external channel,
// JOIN evicts from membership and blocks rejoining.
const (
	MESSAGE = "message"
	JOIN    = "join"
)

// Valid reports whether s is a recognized ban type.
func Valid(s string) bool {
	return s == MESSAGE || s == JOIN
}
