package respond

// FriendRequestLists groups the two halves of GET /users/friend-requests:
// incoming pending requests and the caller's accepted outgoing ones.
type FriendRequestLists struct {
	Incoming []FriendRequestRespond `json:"incomingReqs"`
	Accepted []FriendRequestRespond `json:"acceptedReqs"`
}
