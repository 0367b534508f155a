package model

import (
	"gorm.io/gorm"
)

// Friendship is one direction of an accepted friend relation. Accepting
// a request inserts two rows, one per direction, in a single
// transaction so the relation is always symmetric.
type Friendship struct {
	gorm.Model

	UserUuid   string `gorm:"column:user_uuid;type:char(20);not null;uniqueIndex:idx_friend_pair"`
	FriendUuid string `gorm:"column:friend_uuid;type:char(20);not null;uniqueIndex:idx_friend_pair"`
}

func (Friendship) TableName() string {
	return "friendship"
}
