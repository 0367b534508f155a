package respond

import "time"

// NotificationRespond is one in-app notification.
type NotificationRespond struct {
	Uuid      string    `json:"uuid"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	GroupUuid string    `json:"groupUuid,omitempty"`
	RequestId string    `json:"requestId,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
