// This file defines the group routes.
package router

import (
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/handler"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterGroupRoutes registers group lifecycle, membership, role and
// ban management. Listings accept anonymous callers; mutations and the
// chat token require one.
func RegisterGroupRoutes(rg *gin.RouterGroup) {
	groupGroup := rg.Group("/groups")
	{
		// Public groups are browsable without logging in.
		groupGroup.GET("", middleware.OptionalAuth(), handler.GetGroupsHandler)
		groupGroup.GET("/:groupId", middleware.OptionalAuth(), handler.GetGroupHandler)
		groupGroup.GET("/:groupId/members", middleware.OptionalAuth(), handler.GetGroupMembersHandler)

		authed := groupGroup.Group("", middleware.JWTAuth())
		{
			authed.POST("", handler.CreateGroupHandler)
			authed.GET("/token", handler.GetChatTokenHandler)

			authed.PUT("/:groupId", handler.UpdateGroupHandler)
			authed.DELETE("/:groupId", handler.DeleteGroupHandler)
			authed.PUT("/:groupId/privacy", handler.UpdateGroupPrivacyHandler)

			authed.POST("/:groupId/members", handler.AddGroupMemberHandler)
			authed.DELETE("/:groupId/members/:userId", handler.RemoveGroupMemberHandler)
			authed.POST("/:groupId/admin", handler.ManageGroupAdminHandler)

			authed.POST("/:groupId/join", handler.JoinGroupHandler)
			authed.POST("/:groupId/leave", handler.LeaveGroupHandler)

			authed.GET("/:groupId/banned", handler.GetBannedUsersHandler)
			authed.POST("/:groupId/ban", handler.BanGroupUserHandler)
			authed.DELETE("/:groupId/ban/:userId", handler.UnbanGroupUserHandler)

			authed.POST("/:groupId/invitations", handler.CreateInvitationHandler)
		}
	}
}
