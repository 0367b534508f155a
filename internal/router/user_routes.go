// This file defines the user directory and friend-request routes.
package router

import (
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/handler"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers the user directory and the
// friend-request workflow. Everything here requires a caller.
func RegisterUserRoutes(rg *gin.RouterGroup) {
	userGroup := rg.Group("/users", middleware.JWTAuth())
	{
		userGroup.GET("", handler.GetRecommendedUsersHandler)
		userGroup.GET("/search", handler.SearchUsersHandler)
		userGroup.GET("/friends", handler.GetFriendsHandler)

		userGroup.POST("/friend-request/:id", handler.SendFriendRequestHandler)
		userGroup.PUT("/friend-request/:id/accept", handler.AcceptFriendRequestHandler)
		userGroup.PUT("/friend-request/:id/reject", handler.RejectFriendRequestHandler)
		userGroup.GET("/friend-requests", handler.GetFriendRequestsHandler)
		userGroup.GET("/outgoing-friend-requests", handler.GetOutgoingFriendRequestsHandler)
	}
}
