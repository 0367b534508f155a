package repository

import (
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type groupBanRepository struct {
	db *gorm.DB
}

// NewGroupBanRepository creates the group ban repository.
func NewGroupBanRepository(db *gorm.DB) GroupBanRepository {
	return &groupBanRepository{db: db}
}

func (r *groupBanRepository) Find(groupUuid, userUuid string) (*model.GroupBan, error) {
	var ban model.GroupBan
	err := r.db.First(&ban, "group_uuid = ? AND user_uuid = ?", groupUuid, userUuid).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "find ban group=%s user=%s", groupUuid, userUuid)
	}
	return &ban, nil
}

func (r *groupBanRepository) FindByGroupUuid(groupUuid string) ([]model.GroupBan, error) {
	var bans []model.GroupBan
	if err := r.db.Where("group_uuid = ?", groupUuid).Find(&bans).Error; err != nil {
		return nil, wrapDBError(err, "find bans of group")
	}
	return bans, nil
}

// Upsert keeps at most one ban row per (group, user); re-banning
// overwrites type, reason and expiry.
func (r *groupBanRepository) Upsert(ban *model.GroupBan) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "group_uuid"}, {Name: "user_uuid"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"ban_type", "reason", "banned_by", "expires_at", "updated_at",
		}),
	}).Create(ban).Error
	if err != nil {
		return wrapDBError(err, "upsert group ban")
	}
	return nil
}

func (r *groupBanRepository) Delete(groupUuid, userUuid string) error {
	err := r.db.Unscoped().
		Where("group_uuid = ? AND user_uuid = ?", groupUuid, userUuid).
		Delete(&model.GroupBan{}).Error
	if err != nil {
		return wrapDBError(err, "delete group ban")
	}
	return nil
}

func (r *groupBanRepository) DeleteByGroupUuid(groupUuid string) error {
	err := r.db.Unscoped().Where("group_uuid = ?", groupUuid).Delete(&model.GroupBan{}).Error
	if err != nil {
		return wrapDBError(err, "delete bans of group")
	}
	return nil
}
