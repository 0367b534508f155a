// This file defines the notification inbox routes.
package router

import (
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/handler"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterNotificationRoutes registers the notification endpoints.
func RegisterNotificationRoutes(rg *gin.RouterGroup) {
	notificationGroup := rg.Group("/notifications", middleware.JWTAuth())
	{
		notificationGroup.GET("", handler.GetNotificationsHandler)
		notificationGroup.POST("/read-all", handler.MarkAllNotificationsReadHandler)
		notificationGroup.POST("/:id/read", handler.MarkNotificationReadHandler)
	}
}
