package repository

import (
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/model"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/enum/friend_request/friend_request_status_enum"

	"gorm.io/gorm"
)

type friendRequestRepository struct {
	db *gorm.DB
}

// NewFriendRequestRepository creates the friend request repository.
func NewFriendRequestRepository(db *gorm.DB) FriendRequestRepository {
	return &friendRequestRepository{db: db}
}

func (r *friendRequestRepository) FindByUuid(uuid string) (*model.FriendRequest, error) {
	var req model.FriendRequest
	if err := r.db.First(&req, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "find friend request uuid=%s", uuid)
	}
	return &req, nil
}

// FindBetween matches any request between the pair regardless of
// direction or status, so a rejected request still blocks a resend.
func (r *friendRequestRepository) FindBetween(userA, userB string) (*model.FriendRequest, error) {
	var req model.FriendRequest
	err := r.db.First(&req,
		"(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
		userA, userB, userB, userA,
	).Error
	if err != nil {
		return nil, wrapDBError(err, "find friend request between users")
	}
	return &req, nil
}

func (r *friendRequestRepository) FindPendingByRecipient(recipientId string) ([]model.FriendRequest, error) {
	var reqs []model.FriendRequest
	err := r.db.
		Where("recipient_id = ? AND status = ?", recipientId, friend_request_status_enum.PENDING).
		Order("created_at DESC").
		Find(&reqs).Error
	if err != nil {
		return nil, wrapDBError(err, "find incoming friend requests")
	}
	return reqs, nil
}

func (r *friendRequestRepository) FindPendingBySender(senderId string) ([]model.FriendRequest, error) {
	var reqs []model.FriendRequest
	err := r.db.
		Where("sender_id = ? AND status = ?", senderId, friend_request_status_enum.PENDING).
		Order("created_at DESC").
		Find(&reqs).Error
	if err != nil {
		return nil, wrapDBError(err, "find outgoing friend requests")
	}
	return reqs, nil
}

func (r *friendRequestRepository) FindAcceptedBySender(senderId string) ([]model.FriendRequest, error) {
	var reqs []model.FriendRequest
	err := r.db.
		Where("sender_id = ? AND status = ?", senderId, friend_request_status_enum.ACCEPTED).
		Order("updated_at DESC").
		Find(&reqs).Error
	if err != nil {
		return nil, wrapDBError(err, "find accepted outgoing friend requests")
	}
	return reqs, nil
}

func (r *friendRequestRepository) Create(req *model.FriendRequest) error {
	if err := r.db.Create(req).Error; err != nil {
		return wrapDBError(err, "create friend request")
	}
	return nil
}

func (r *friendRequestRepository) UpdateStatus(uuid, status string) error {
	err := r.db.Model(&model.FriendRequest{}).
		Where("uuid = ?", uuid).
		Update("status", status).Error
	if err != nil {
		return wrapDBError(err, "update friend request status")
	}
	return nil
}
