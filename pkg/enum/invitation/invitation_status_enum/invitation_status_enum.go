package invitation_status_enum

// Invitation lifecycle. PENDING is the only non-terminal state.
const (
	PENDING  = "pending"
	ACCEPTED = "accepted"
	REJECTED = "rejected"
)
