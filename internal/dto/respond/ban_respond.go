package respond

import "time"

// BanRespond is one entry of a group's ban list.
type BanRespond struct {
	UserId    string     `json:"userId"`
	FullName  string     `json:"fullName"`
	BanType   string     `json:"banType"`
	Reason    string     `json:"reason"`
	BannedBy  string     `json:"bannedBy"`
	BannedAt  time.Time  `json:"bannedAt"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}
