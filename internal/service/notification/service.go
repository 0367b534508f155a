// Package notification serves the in-app notification inbox.
package notification

import (
	"go.uber.org/zap"

	"github.com/ebrahimelkordy/siraj-0.0.1/internal/dao/mysql/repository"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/dto/respond"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/constants"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/errorx"
)

type notificationService struct {
	repos *repository.Repositories
}

// NewNotificationService wires the notification service.
func NewNotificationService(repos *repository.Repositories) *notificationService {
	return &notificationService{repos: repos}
}

// GetNotifications returns the caller's newest notifications.
func (s *notificationService) GetNotifications(userId string) ([]respond.NotificationRespond, error) {
	notifications, err := s.repos.Notification.FindByUserUuid(userId, constants.NOTIFICATION_LIMIT)
	if err != nil {
		zap.L().Error("notification listing failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	rsp := make([]respond.NotificationRespond, 0, len(notifications))
	for _, n := range notifications {
		rsp = append(rsp, respond.NotificationRespond{
			Uuid:      n.Uuid,
			Type:      n.Type,
			Message:   n.Message,
			GroupUuid: n.GroupUuid,
			RequestId: n.RequestId,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	return rsp, nil
}

// MarkAllRead marks every unread notification of the caller as read.
func (s *notificationService) MarkAllRead(userId string) error {
	if err := s.repos.Notification.MarkAllRead(userId); err != nil {
		zap.L().Error("mark all read failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}

// MarkRead marks one notification as read; only the owner can.
func (s *notificationService) MarkRead(userId, notificationId string) error {
	if err := s.repos.Notification.MarkRead(notificationId, userId); err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "notification not found")
		}
		zap.L().Error("mark read failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}
