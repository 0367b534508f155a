package model

import (
	"gorm.io/gorm"
)

// GroupMember links a user to a group with a role. Role values live in
// pkg/enum/group/group_role_enum: 1 member, 2 admin, 3 creator.
//
// The unique index on (group_uuid, user_uuid) makes concurrent joins of
// the same user collapse into one row.
type GroupMember struct {
	gorm.Model

	GroupUuid string `gorm:"column:group_uuid;type:char(20);not null;uniqueIndex:idx_group_user"`
	UserUuid  string `gorm:"column:user_uuid;type:char(20);not null;uniqueIndex:idx_group_user;index"`
	Role      int8   `gorm:"column:role;not null;default:1"`
}

func (GroupMember) TableName() string {
	return "group_member"
}
