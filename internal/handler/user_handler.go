// This file serves the user directory and the friend-request workflow.
package handler

import (
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/dto/request"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/service"

	"github.com/gin-gonic/gin"
)

// SearchUsersHandler matches users by name or email.
// GET /api/users/search?query=
func SearchUsersHandler(c *gin.Context) {
	rsp, err := service.Svc.User.Search(c.GetString("user_id"), c.Query("query"))
	if err != nil {
		HandleError(c, err)
		return
	}

	HandleSuccess(c, rsp)
}

// GetRecommendedUsersHandler lists suggested partners.
// GET /api/users?nativeLang=&learningLang=&track=&q=&page=&limit=
func GetRecommendedUsersHandler(c *gin.Context) {
	var query request.RecommendedQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		HandleParamError(c, err)
		return
	}

	rsp, err := service.Svc.User.GetRecommended(c.GetString("user_id"), query)
	if err != nil {
		HandleError(c, err)
		return
	}

	HandleSuccess(c, rsp)
}

// GetFriendsHandler lists the caller's friends.
// GET /api/users/friends
func GetFriendsHandler(c *gin.Context) {
	rsp, err := service.Svc.User.GetFriends(c.GetString("user_id"))
	if err != nil {
		HandleError(c, err)
		return
	}

	HandleSuccess(c, rsp)
}

// SendFriendRequestHandler creates a pending friend request.
// POST /api/users/friend-request/:id
func SendFriendRequestHandler(c *gin.Context) {
	rsp, err := service.Svc.Friend.SendFriendRequest(c.GetString("user_id"), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}

	HandleCreated(c, rsp)
}

// AcceptFriendRequestHandler resolves a received request.
// PUT /api/users/friend-request/:id/accept
func AcceptFriendRequestHandler(c *gin.Context) {
	if err := service.Svc.Friend.AcceptFriendRequest(c.GetString("user_id"), c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}

	HandleSuccess(c, gin.H{"message": "friend request accepted"})
}

// RejectFriendRequestHandler rejects a received request.
// PUT /api/users/friend-request/:id/reject
func RejectFriendRequestHandler(c *gin.Context) {
	if err := service.Svc.Friend.RejectFriendRequest(c.GetString("user_id"), c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}

	HandleSuccess(c, gin.H{"message": "friend request rejected"})
}

// GetFriendRequestsHandler returns incoming pending requests plus the
// caller's accepted outgoing ones.
// GET /api/users/friend-requests
func GetFriendRequestsHandler(c *gin.Context) {
	rsp, err := service.Svc.Friend.GetFriendRequests(c.GetString("user_id"))
	if err != nil {
		HandleError(c, err)
		return
	}

	HandleSuccess(c, rsp)
}

// GetOutgoingFriendRequestsHandler lists the caller's pending sends.
// GET /api/users/outgoing-friend-requests
func GetOutgoingFriendRequestsHandler(c *gin.Context) {
	rsp, err := service.Svc.Friend.GetOutgoingFriendRequests(c.GetString("user_id"))
	if err != nil {
		HandleError(c, err)
		return
	}

	HandleSuccess(c, rsp)
}
