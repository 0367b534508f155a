package model

import (
	"gorm.io/gorm"
)

// Notification is an in-app message for one user. RequestId ties
// friend-request notifications to the request so acceptance can flip
// the same row to a friend_accept notification.
type Notification struct {
	gorm.Model

	// Uuid is the business key, format "N" + date-prefixed random string.
	Uuid      string `gorm:"column:uuid;uniqueIndex;type:char(20);not null"`
	UserUuid  string `gorm:"column:user_uuid;type:char(20);not null;index"`
	Type      string `gorm:"column:type;type:varchar(30);not null"`
	Message   string `gorm:"column:message;type:varchar(500);not null"`
	GroupUuid string `gorm:"column:group_uuid;type:char(20);index"`
	RequestId string `gorm:"column:request_id;type:char(20);index"`
	Read      bool   `gorm:"column:read;not null;default:false"`
}

func (Notification) TableName() string {
	return "notification"
}
