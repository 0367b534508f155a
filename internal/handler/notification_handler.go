// This file serves the notification inbox endpoints.
package handler

import (
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/service"

	"github.com/gin-gonic/gin"
)

// GetNotificationsHandler returns the caller's newest notifications.
// GET /api/notifications
func GetNotificationsHandler(c *gin.Context) {
	rsp, err := service.Svc.Notification.GetNotifications(c.GetString("user_id"))
	if err != nil {
		HandleError(c, err)
		return
	}

	HandleSuccess(c, rsp)
}

// MarkAllNotificationsReadHandler marks every unread notification read.
// POST /api/notifications/read-all
func MarkAllNotificationsReadHandler(c *gin.Context) {
	if err := service.Svc.Notification.MarkAllRead(c.GetString("user_id")); err != nil {
		HandleError(c, err)
		return
	}

	HandleSuccess(c, gin.H{"message": "all notifications marked as read"})
}

// MarkNotificationReadHandler marks one notification read.
// POST /api/notifications/:id/read
func MarkNotificationReadHandler(c *gin.Context) {
	if err := service.Svc.Notification.MarkRead(c.GetString("user_id"), c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}

	HandleSuccess(c, gin.H{"message": "notification marked as read"})
}
