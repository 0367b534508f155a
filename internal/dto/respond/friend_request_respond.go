package respond

// FriendRequestRespond is one friend request with the counterpart's
// profile embedded for list rendering.
type FriendRequestRespond struct {
	Uuid      string          `json:"uuid"`
	Sender    UserInfoRespond `json:"sender"`
	Recipient UserInfoRespond `json:"recipient"`
	Status    string          `json:"status"`
}
