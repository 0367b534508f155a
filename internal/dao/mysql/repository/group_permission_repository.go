package repository

import (
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type groupPermissionRepository struct {
	db *gorm.DB
}

// NewGroupPermissionRepository creates the group permission repository.
func NewGroupPermissionRepository(db *gorm.DB) GroupPermissionRepository {
	return &groupPermissionRepository{db: db}
}

func (r *groupPermissionRepository) Find(groupUuid, userUuid string) (*model.GroupPermission, error) {
	var perm model.GroupPermission
	err := r.db.First(&perm, "group_uuid = ? AND user_uuid = ?", groupUuid, userUuid).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "find permission group=%s user=%s", groupUuid, userUuid)
	}
	return &perm, nil
}

// Upsert writes the full capability set, replacing any existing row for
// the same (group, user) pair.
func (r *groupPermissionRepository) Upsert(perm *model.GroupPermission) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "group_uuid"}, {Name: "user_uuid"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"can_add_members", "can_remove_members", "can_pin_messages",
			"can_delete_messages", "can_edit_group_info", "can_manage_admins",
			"updated_at",
		}),
	}).Create(perm).Error
	if err != nil {
		return wrapDBError(err, "upsert group permission")
	}
	return nil
}

func (r *groupPermissionRepository) Delete(groupUuid, userUuid string) error {
	err := r.db.Unscoped().
		Where("group_uuid = ? AND user_uuid = ?", groupUuid, userUuid).
		Delete(&model.GroupPermission{}).Error
	if err != nil {
		return wrapDBError(err, "delete group permission")
	}
	return nil
}

func (r *groupPermissionRepository) DeleteByGroupUuid(groupUuid string) error {
	err := r.db.Unscoped().Where("group_uuid = ?", groupUuid).Delete(&model.GroupPermission{}).Error
	if err != nil {
		return wrapDBError(err, "delete permissions of group")
	}
	return nil
}
