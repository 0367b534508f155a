package model

import (
	"time"

	"gorm.io/gorm"
)

// GroupBan records an active ban of a user inside a group. BanType is
// "message" (muted in chat) or "join" (evicted, may not rejoin). A
// re-ban of the same user updates the existing row rather than adding
// a second one.
type GroupBan struct {
	gorm.Model

	GroupUuid string     `gorm:"column:group_uuid;type:char(20);not null;uniqueIndex:idx_ban_group_user"`
	UserUuid  string     `gorm:"column:user_uuid;type:char(20);not null;uniqueIndex:idx_ban_group_user;index"`
	BanType   string     `gorm:"column:ban_type;type:varchar(20);not null"`
	Reason    string     `gorm:"column:reason;type:varchar(255)"`
	BannedBy  string     `gorm:"column:banned_by;type:char(20);not null"`
	ExpiresAt *time.Time `gorm:"column:expires_at"` // nil means permanent
}

func (GroupBan) TableName() string {
	return "group_ban"
}

// Expired reports whether a timed ban has lapsed.
func (b *GroupBan) Expired(now time.Time) bool {
	return b.ExpiresAt != nil && b.ExpiresAt.Before(now)
}
