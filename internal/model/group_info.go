package model

import (
	"gorm.io/gorm"
)

// GroupInfo is a learning group. ChannelID is the chat channel backing
// the group and always carries the "group-" prefix. The creator is
// immutable and must stay in members and admins for the group's whole
// lifetime.
type GroupInfo struct {
	gorm.Model

	// Uuid is the business key, format "G" + date-prefixed random string.
	Uuid                 string `gorm:"column:uuid;uniqueIndex;type:char(20);not null"`
	Name                 string `gorm:"column:name;type:varchar(100);not null"`
	Description          string `gorm:"column:description;type:varchar(500)"`
	CreatorId            string `gorm:"column:creator_id;type:char(20);index;not null"`
	Privacy              string `gorm:"column:privacy;type:varchar(20);not null;default:public"`
	AllowMemberMessages  bool   `gorm:"column:allow_member_messages;not null;default:true"`
	AllowMemberVideoCall bool   `gorm:"column:allow_member_video_call;not null;default:true"`
	Field                string `gorm:"column:field;type:varchar(50);index"`     // topical tag
	FieldType            string `gorm:"column:field_type;type:varchar(20)"`      // "", language, track
	Image                string `gorm:"column:image;type:varchar(255)"`
	ChannelID            string `gorm:"column:channel_id;type:varchar(64);not null"`
	MemberCnt            int    `gorm:"column:member_cnt;not null;default:0"`
}

func (GroupInfo) TableName() string {
	return "group_info"
}
