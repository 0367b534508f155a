// This file serves the group endpoints: lifecycle, membership, roles
// and bans.
package handler

import (
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/dto/request"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateGroupHandler creates a group with the caller as creator.
// POST /api/groups
func CreateGroupHandler(c *gin.Context) {
	var req request.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	rsp, err := service.Svc.Group.CreateGroup(c.GetString("user_id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}

	HandleCreated(c, rsp)
}

// GetGroupsHandler lists visible groups, member groups first. Works
// for anonymous callers too.
// GET /api/groups
func GetGroupsHandler(c *gin.Context) {
	rsp, err := service.Svc.Group.GetGroups(c.GetString("user_id"))
	if err != nil {
		HandleError(c, err)
		return
	}

	HandleSuccess(c, rsp)
}

// GetGroupHandler returns one group with caller-relative flags.
// GET /api/groups/:groupId
func GetGroupHandler(c *gin.Context) {
	rsp, err := service.Svc.Group.GetGroup(c.GetString("user_id"), c.Param("groupId"))
	if err != nil {
		HandleError(c, err)
		return
	}

	HandleSuccess(c, rsp)
}

// GetGroupMembersHandler lists a group's members with profile data.
// GET /api/groups/:groupId/members
func GetGroupMembersHandler(c *gin.Context) {
	rsp, err := service.Svc.Group.GetMembers(c.GetString("user_id"), c.Param("groupId"))
	if err != nil {
		HandleError(c, err)
		return
	}

	HandleSuccess(c, rsp)
}

// UpdateGroupPrivacyHandler changes the privacy mode.
// PUT /api/groups/:groupId/privacy
func UpdateGroupPrivacyHandler(c *gin.Context) {
	var req request.UpdatePrivacyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	if err := service.Svc.Group.UpdatePrivacy(c.GetString("user_id"), c.Param("groupId"), req.Privacy); err != nil {
		HandleError(c, err)
		return
	}

	HandleSuccess(c, gin.H{"message": "privacy updated"})
}

// UpdateGroupHandler applies a bulk update to a group.
// PUT /api/groups/:groupId
func UpdateGroupHandler(c *gin.Context) {
	var req request.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	rsp, err := service.Svc.Group.UpdateGroup(c.GetString("user_id"), c.Param("groupId"), req)
	if err != nil {
		HandleError(c, err)
		return
	}

	HandleSuccess(c, rsp)
}

// DeleteGroupHandler removes a group and everything under it.
// DELETE /api/groups/:groupId
func DeleteGroupHandler(c *gin.Context) {
	if err := service.Svc.Group.DeleteGroup(c.GetString("user_id"), c.Param("groupId")); err != nil {
		HandleError(c, err)
		return
	}

	HandleSuccess(c, gin.H{"message": "group deleted"})
}

// AddGroupMemberHandler adds a user to the group.
// POST /api/groups/:groupId/members
func AddGroupMemberHandler(c *gin.Context) {
	var req request.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	if err := service.Svc.Group.AddMember(c.GetString("user_id"), c.Param("groupId"), req.UserId); err != nil {
		HandleError(c, err)
		return
	}

	HandleSuccess(c, gin.H{"message": "member added"})
}

// RemoveGroupMemberHandler removes a user from the group.
// DELETE /api/groups/:groupId/members/:userId
func RemoveGroupMemberHandler(c *gin.Context) {
	if err := service.Svc.Group.RemoveMember(c.GetString("user_id"), c.Param("groupId"), c.Param("userId")); err != nil {
		HandleError(c, err)
		return
	}

	HandleSuccess(c, gin.H{"message": "member removed"})
}

// ManageGroupAdminHandler grants or revokes admin status.
// POST /api/groups/:groupId/admin
func ManageGroupAdminHandler(c *gin.Context) {
	var req request.ManageAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	if err := service.Svc.Group.ManageAdmin(c.GetString("user_id"), c.Param("groupId"), req.UserId, req.Action); err != nil {
		HandleError(c, err)
		return
	}

	HandleSuccess(c, gin.H{"message": "admin " + req.Action + " successful"})
}

// JoinGroupHandler lets the caller join a public group.
// POST /api/groups/:groupId/join
func JoinGroupHandler(c *gin.Context) {
	if err := service.Svc.Group.JoinGroup(c.GetString("user_id"), c.Param("groupId")); err != nil {
		HandleError(c, err)
		return
	}

	HandleSuccess(c, gin.H{"message": "joined group"})
}

// LeaveGroupHandler lets a non-creator member leave.
// POST /api/groups/:groupId/leave
func LeaveGroupHandler(c *gin.Context) {
	if err := service.Svc.Group.LeaveGroup(c.GetString("user_id"), c.Param("groupId")); err != nil {
		HandleError(c, err)
		return
	}

	HandleSuccess(c, gin.H{"message": "left group"})
}

// GetBannedUsersHandler lists a group's ban records.
// GET /api/groups/:groupId/banned
func GetBannedUsersHandler(c *gin.Context) {
	rsp, err := service.Svc.Group.GetBannedUsers(c.GetString("user_id"), c.Param("groupId"))
	if err != nil {
		HandleError(c, err)
		return
	}

	HandleSuccess(c, rsp)
}

// BanGroupUserHandler bans a user from messaging or joining.
// POST /api/groups/:groupId/ban
func BanGroupUserHandler(c *gin.Context) {
	var req request.BanUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	if err := service.Svc.Group.BanUser(c.GetString("user_id"), c.Param("groupId"), req); err != nil {
		HandleError(c, err)
		return
	}

	HandleSuccess(c, gin.H{"message": "user banned"})
}

// UnbanGroupUserHandler lifts a ban.
// DELETE /api/groups/:groupId/ban/:userId
func UnbanGroupUserHandler(c *gin.Context) {
	if err := service.Svc.Group.UnbanUser(c.GetString("user_id"), c.Param("groupId"), c.Param("userId")); err != nil {
		HandleError(c, err)
		return
	}

	HandleSuccess(c, gin.H{"message": "user unbanned"})
}

// GetChatTokenHandler issues a chat frontend token for the caller.
// GET /api/groups/token
func GetChatTokenHandler(c *gin.Context) {
	rsp, err := service.Svc.Group.GetChatToken(c.GetString("user_id"))
	if err != nil {
		HandleError(c, err)
		return
	}

	HandleSuccess(c, rsp)
}
