package model

import (
	"gorm.io/gorm"
)

// GroupPermission is the capability record of one admin in one group.
// A row exists for every admin (the creator's row is written at group
// creation with every flag true); a missing row denies all gated
// actions.
type GroupPermission struct {
	gorm.Model

	GroupUuid string `gorm:"column:group_uuid;type:char(20);not null;uniqueIndex:idx_perm_group_user"`
	UserUuid  string `gorm:"column:user_uuid;type:char(20);not null;uniqueIndex:idx_perm_group_user;index"`

	CanAddMembers     bool `gorm:"column:can_add_members;not null;default:false"`
	CanRemoveMembers  bool `gorm:"column:can_remove_members;not null;default:false"`
	CanPinMessages    bool `gorm:"column:can_pin_messages;not null;default:false"`
	CanDeleteMessages bool `gorm:"column:can_delete_messages;not null;default:false"`
	CanEditGroupInfo  bool `gorm:"column:can_edit_group_info;not null;default:false"`
	CanManageAdmins   bool `gorm:"column:can_manage_admins;not null;default:false"`
}

func (GroupPermission) TableName() string {
	return "group_permission"
}

// Capability returns the flag matching a capability name, and whether
// the name is known.
func (p *GroupPermission) Capability(name string) (bool, bool) {
	switch name {
	case "canAddMembers":
		return p.CanAddMembers, true
	case "canRemoveMembers":
		return p.CanRemoveMembers, true
	case "canPinMessages":
		return p.CanPinMessages, true
	case "canDeleteMessages":
		return p.CanDeleteMessages, true
	case "canEditGroupInfo":
		return p.CanEditGroupInfo, true
	case "canManageAdmins":
		return p.CanManageAdmins, true
	default:
		return false, false
	}
}
