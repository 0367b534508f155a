package repository

import (
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/model"

	"gorm.io/gorm"
)

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates the notification repository.
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) FindByUserUuid(userUuid string, limit int) ([]model.Notification, error) {
	var notifications []model.Notification
	err := r.db.
		Where("user_uuid = ?", userUuid).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, wrapDBError(err, "find notifications of user")
	}
	return notifications, nil
}

func (r *notificationRepository) FindByUuidAndUser(uuid, userUuid string) (*model.Notification, error) {
	var n model.Notification
	err := r.db.First(&n, "uuid = ? AND user_uuid = ?", uuid, userUuid).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "find notification uuid=%s", uuid)
	}
	return &n, nil
}

func (r *notificationRepository) Create(n *model.Notification) error {
	if err := r.db.Create(n).Error; err != nil {
		return wrapDBError(err, "create notification")
	}
	return nil
}

func (r *notificationRepository) MarkRead(uuid, userUuid string) error {
	res := r.db.Model(&model.Notification{}).
		Where("uuid = ? AND user_uuid = ?", uuid, userUuid).
		Update("read", true)
	if res.Error != nil {
		return wrapDBError(res.Error, "mark notification read")
	}
	if res.RowsAffected == 0 {
		return wrapDBError(gorm.ErrRecordNotFound, "mark notification read")
	}
	return nil
}

func (r *notificationRepository) MarkAllRead(userUuid string) error {
	err := r.db.Model(&model.Notification{}).
		Where("user_uuid = ? AND `read` = ?", userUuid, false).
		Update("read", true).Error
	if err != nil {
		return wrapDBError(err, "mark all notifications read")
	}
	return nil
}

func (r *notificationRepository) UpdateByRequestId(requestId string, updates map[string]interface{}) error {
	err := r.db.Model(&model.Notification{}).
		Where("request_id = ?", requestId).
		Updates(updates).Error
	if err != nil {
		return wrapDBError(err, "update notification by request id")
	}
	return nil
}
