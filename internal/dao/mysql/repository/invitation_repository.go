package repository

import (
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/model"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/enum/invitation/invitation_status_enum"

	"gorm.io/gorm"
)

type invitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository creates the invitation repository.
func NewInvitationRepository(db *gorm.DB) InvitationRepository {
	return &invitationRepository{db: db}
}

func (r *invitationRepository) FindByUuid(uuid string) (*model.Invitation, error) {
	var inv model.Invitation
	if err := r.db.First(&inv, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "find invitation uuid=%s", uuid)
	}
	return &inv, nil
}

func (r *invitationRepository) FindPending(groupUuid, inviteeId string) (*model.Invitation, error) {
	var inv model.Invitation
	err := r.db.First(&inv,
		"group_uuid = ? AND invitee_id = ? AND status = ?",
		groupUuid, inviteeId, invitation_status_enum.PENDING,
	).Error
	if err != nil {
		return nil, wrapDBError(err, "find pending invitation")
	}
	return &inv, nil
}

func (r *invitationRepository) FindPendingByInvitee(inviteeId string) ([]model.Invitation, error) {
	var invs []model.Invitation
	err := r.db.
		Where("invitee_id = ? AND status = ?", inviteeId, invitation_status_enum.PENDING).
		Order("created_at DESC").
		Find(&invs).Error
	if err != nil {
		return nil, wrapDBError(err, "find invitations of user")
	}
	return invs, nil
}

func (r *invitationRepository) Create(inv *model.Invitation) error {
	if err := r.db.Create(inv).Error; err != nil {
		return wrapDBError(err, "create invitation")
	}
	return nil
}

func (r *invitationRepository) UpdateStatus(uuid, status string) error {
	err := r.db.Model(&model.Invitation{}).
		Where("uuid = ?", uuid).
		Update("status", status).Error
	if err != nil {
		return wrapDBError(err, "update invitation status")
	}
	return nil
}

func (r *invitationRepository) DeleteByGroupUuid(groupUuid string) error {
	err := r.db.Unscoped().Where("group_uuid = ?", groupUuid).Delete(&model.Invitation{}).Error
	if err != nil {
		return wrapDBError(err, "delete invitations of group")
	}
	return nil
}
