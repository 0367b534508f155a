package respond

import "time"

// InvitationRespond is one invitation as shown to its invitee.
type InvitationRespond struct {
	Uuid       string    `json:"uuid"`
	GroupUuid  string    `json:"groupUuid"`
	GroupName  string    `json:"groupName"`
	InviterId  string    `json:"inviterId"`
	Status     string    `json:"status"`
	InviteLink string    `json:"inviteLink"`
	ExpiresAt  time.Time `json:"expiresAt"`
}
