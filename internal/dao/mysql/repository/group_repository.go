package repository

import (
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/model"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/enum/group/group_privacy_enum"

	"gorm.io/gorm"
)

type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates the group repository.
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) FindByUuid(uuid string) (*model.GroupInfo, error) {
	var group model.GroupInfo
	if err := r.db.First(&group, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "find group uuid=%s", uuid)
	}
	return &group, nil
}

func (r *groupRepository) FindByUuids(uuids []string) ([]model.GroupInfo, error) {
	if len(uuids) == 0 {
		return nil, nil
	}
	var groups []model.GroupInfo
	err := r.db.
		Where("uuid IN ?", uuids).
		Order("created_at ASC").
		Find(&groups).Error
	if err != nil {
		return nil, wrapDBError(err, "find groups by uuids")
	}
	return groups, nil
}

func (r *groupRepository) FindPublic() ([]model.GroupInfo, error) {
	var groups []model.GroupInfo
	err := r.db.
		Where("privacy = ?", group_privacy_enum.PUBLIC).
		Order("created_at DESC").
		Find(&groups).Error
	if err != nil {
		return nil, wrapDBError(err, "find public groups")
	}
	return groups, nil
}

func (r *groupRepository) Create(group *model.GroupInfo) error {
	if err := r.db.Create(group).Error; err != nil {
		return wrapDBError(err, "create group")
	}
	return nil
}

func (r *groupRepository) Update(group *model.GroupInfo) error {
	if err := r.db.Save(group).Error; err != nil {
		return wrapDBError(err, "update group")
	}
	return nil
}

func (r *groupRepository) IncrementMemberCount(uuid string) error {
	err := r.db.Model(&model.GroupInfo{}).
		Where("uuid = ?", uuid).
		Update("member_cnt", gorm.Expr("member_cnt + 1")).Error
	if err != nil {
		return wrapDBError(err, "increment group member count")
	}
	return nil
}

func (r *groupRepository) DecrementMemberCount(uuid string) error {
	err := r.db.Model(&model.GroupInfo{}).
		Where("uuid = ? AND member_cnt > 0", uuid).
		Update("member_cnt", gorm.Expr("member_cnt - 1")).Error
	if err != nil {
		return wrapDBError(err, "decrement group member count")
	}
	return nil
}

func (r *groupRepository) Delete(uuid string) error {
	if err := r.db.Where("uuid = ?", uuid).Delete(&model.GroupInfo{}).Error; err != nil {
		return wrapDBError(err, "delete group")
	}
	return nil
}
