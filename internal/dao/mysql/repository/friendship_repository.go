package repository

import (
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/model"

	"gorm.io/gorm"
)

type friendshipRepository struct {
	db *gorm.DB
}

// NewFriendshipRepository creates the friendship repository.
func NewFriendshipRepository(db *gorm.DB) FriendshipRepository {
	return &friendshipRepository{db: db}
}

func (r *friendshipRepository) Exists(userUuid, friendUuid string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Friendship{}).
		Where("user_uuid = ? AND friend_uuid = ?", userUuid, friendUuid).
		Count(&count).Error
	if err != nil {
		return false, wrapDBError(err, "check friendship")
	}
	return count > 0, nil
}

func (r *friendshipRepository) FindFriendUuids(userUuid string) ([]string, error) {
	var friendUuids []string
	err := r.db.Model(&model.Friendship{}).
		Where("user_uuid = ?", userUuid).
		Pluck("friend_uuid", &friendUuids).Error
	if err != nil {
		return nil, wrapDBError(err, "find friends of user")
	}
	return friendUuids, nil
}

func (r *friendshipRepository) Create(f *model.Friendship) error {
	if err := r.db.Create(f).Error; err != nil {
		return wrapDBError(err, "create friendship")
	}
	return nil
}
