package notification_type_enum

// Notification types emitted by workflow transitions.
const (
	NEW_MESSAGE    = "new_message"
	GROUP_INVITE   = "group_invite"
	ADMIN_ACTION   = "admin_action"
	JOIN_REQUEST   = "join_request"
	FRIEND_REQUEST = "friend_request"
	FRIEND_ACCEPT  = "friend_accept"
)
