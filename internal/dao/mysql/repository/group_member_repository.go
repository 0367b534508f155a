package repository

import (
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/model"

	"gorm.io/gorm"
)

type groupMemberRepository struct {
	db *gorm.DB
}

// NewGroupMemberRepository creates the group member repository.
func NewGroupMemberRepository(db *gorm.DB) GroupMemberRepository {
	return &groupMemberRepository{db: db}
}

func (r *groupMemberRepository) Find(groupUuid, userUuid string) (*model.GroupMember, error) {
	var member model.GroupMember
	err := r.db.First(&member, "group_uuid = ? AND user_uuid = ?", groupUuid, userUuid).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "find member group=%s user=%s", groupUuid, userUuid)
	}
	return &member, nil
}

func (r *groupMemberRepository) FindByGroupUuid(groupUuid string) ([]model.GroupMember, error) {
	var members []model.GroupMember
	if err := r.db.Where("group_uuid = ?", groupUuid).Find(&members).Error; err != nil {
		return nil, wrapDBError(err, "find group members")
	}
	return members, nil
}

func (r *groupMemberRepository) FindByUserUuid(userUuid string) ([]model.GroupMember, error) {
	var members []model.GroupMember
	if err := r.db.Where("user_uuid = ?", userUuid).Find(&members).Error; err != nil {
		return nil, wrapDBError(err, "find memberships of user")
	}
	return members, nil
}

func (r *groupMemberRepository) FindMembersWithUserInfo(groupUuid string) ([]GroupMemberWithUserInfo, error) {
	var members []GroupMemberWithUserInfo
	err := r.db.Table("group_member").
		Select("group_member.user_uuid AS user_id, user_info.full_name, user_info.profile_pic, user_info.native_language, group_member.role").
		Joins("JOIN user_info ON user_info.uuid = group_member.user_uuid").
		Where("group_member.group_uuid = ? AND group_member.deleted_at IS NULL AND user_info.deleted_at IS NULL", groupUuid).
		Scan(&members).Error
	if err != nil {
		return nil, wrapDBError(err, "find members with user info")
	}
	return members, nil
}

func (r *groupMemberRepository) CountByGroupUuid(groupUuid string) (int64, error) {
	var count int64
	err := r.db.Model(&model.GroupMember{}).
		Where("group_uuid = ?", groupUuid).
		Count(&count).Error
	if err != nil {
		return 0, wrapDBError(err, "count group members")
	}
	return count, nil
}

func (r *groupMemberRepository) Create(member *model.GroupMember) error {
	if err := r.db.Create(member).Error; err != nil {
		return wrapDBError(err, "create group member")
	}
	return nil
}

func (r *groupMemberRepository) UpdateRole(groupUuid, userUuid string, role int8) error {
	err := r.db.Model(&model.GroupMember{}).
		Where("group_uuid = ? AND user_uuid = ?", groupUuid, userUuid).
		Update("role", role).Error
	if err != nil {
		return wrapDBError(err, "update member role")
	}
	return nil
}

// Delete removes the row for real. A soft-deleted membership would
// still occupy the (group_uuid, user_uuid) unique index and block a
// later rejoin.
func (r *groupMemberRepository) Delete(groupUuid, userUuid string) error {
	err := r.db.Unscoped().
		Where("group_uuid = ? AND user_uuid = ?", groupUuid, userUuid).
		Delete(&model.GroupMember{}).Error
	if err != nil {
		return wrapDBError(err, "delete group member")
	}
	return nil
}

func (r *groupMemberRepository) DeleteByGroupUuid(groupUuid string) error {
	err := r.db.Unscoped().Where("group_uuid = ?", groupUuid).Delete(&model.GroupMember{}).Error
	if err != nil {
		return wrapDBError(err, "delete members of group")
	}
	return nil
}
