package model

import (
	"time"

	"gorm.io/gorm"
)

// Invitation invites a user into a group. Status moves from pending to
// accepted or rejected exactly once; responses after ExpiresAt are
// refused.
type Invitation struct {
	gorm.Model

	// Uuid is the business key, format "I" + date-prefixed random string.
	Uuid       string    `gorm:"column:uuid;uniqueIndex;type:char(20);not null"`
	GroupUuid  string    `gorm:"column:group_uuid;type:char(20);not null;index"`
	InviterId  string    `gorm:"column:inviter_id;type:char(20);not null"`
	InviteeId  string    `gorm:"column:invitee_id;type:char(20);not null;index"`
	Status     string    `gorm:"column:status;type:varchar(20);not null;default:pending"`
	InviteLink string    `gorm:"column:invite_link;uniqueIndex;type:varchar(64);not null"`
	ExpiresAt  time.Time `gorm:"column:expires_at;not null"`
}

func (Invitation) TableName() string {
	return "invitation"
}

// Expired reports whether the invitation can no longer be answered.
func (i *Invitation) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
