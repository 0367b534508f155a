package model

import (
	"gorm.io/gorm"
)

// FriendRequest records one directed request. The unique index on
// (sender_id, recipient_id) blocks duplicate sends in either state, so
// a rejected request stands in the way of a resend.
type FriendRequest struct {
	gorm.Model

	// Uuid is the business key, format "F" + date-prefixed random string.
	Uuid        string `gorm:"column:uuid;uniqueIndex;type:char(20);not null"`
	SenderId    string `gorm:"column:sender_id;type:char(20);not null;uniqueIndex:idx_req_pair"`
	RecipientId string `gorm:"column:recipient_id;type:char(20);not null;uniqueIndex:idx_req_pair;index"`
	Status      string `gorm:"column:status;type:varchar(20);not null;default:pending"`
}

func (FriendRequest) TableName() string {
	return "friend_request"
}
