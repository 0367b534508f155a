package friend_request_status_enum

// Friend request lifecycle. PENDING is the only non-terminal state.
const (
	PENDING  = "pending"
	ACCEPTED = "accepted"
	REJECTED = "rejected"
)
