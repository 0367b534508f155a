package group_role_enum

// Group member roles.
const (
	MEMBER  int8 = 1
	ADMIN   int8 = 2
	CREATOR int8 = 3
)
