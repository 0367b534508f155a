// Package invitation implements the group invitation workflow.
package invitation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ebrahimelkordy/siraj-0.0.1/internal/chat"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/dao/mysql/repository"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/dto/respond"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/model"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/constants"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/enum/group/group_role_enum"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/enum/invitation/invitation_status_enum"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/enum/notification/notification_type_enum"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/errorx"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/util/random"
)

type invitationService struct {
	repos    *repository.Repositories
	provider chat.ChannelProvider
}

// NewInvitationService wires the invitation service.
func NewInvitationService(repos *repository.Repositories, provider chat.ChannelProvider) *invitationService {
	return &invitationService{repos: repos, provider: provider}
}

// CreateInvitation invites a user into a group. The gate is a direct
// permission-record lookup on canAddMembers: deliberately narrower
// than the shared authorization gate, with no creator bypass and no
// admin-role shortcut.
func (s *invitationService) CreateInvitation(inviterId, groupId, inviteeId string) (*respond.InvitationRespond, error) {
	group, err := s.repos.Group.FindByUuid(groupId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "group not found")
		}
		zap.L().Error("group lookup failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	perm, err := s.repos.GroupPermission.Find(group.Uuid, inviterId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeForbidden, "you are not authorized to send invitations")
		}
		zap.L().Error("permission lookup failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if !perm.CanAddMembers {
		return nil, errorx.New(errorx.CodeForbidden, "you are not authorized to send invitations")
	}

	if _, err := s.repos.User.FindByUuid(inviteeId); err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "invitee not found")
		}
		zap.L().Error("invitee lookup failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	if _, err := s.repos.Invitation.FindPending(group.Uuid, inviteeId); err == nil {
		return nil, errorx.New(errorx.CodeConflict, "a pending invitation already exists")
	} else if !errorx.IsNotFound(err) {
		zap.L().Error("pending invitation lookup failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	inv := model.Invitation{
		Uuid:       fmt.Sprintf("I%s", random.GetNowAndLenRandomString(11)),
		GroupUuid:  group.Uuid,
		InviterId:  inviterId,
		InviteeId:  inviteeId,
		Status:     invitation_status_enum.PENDING,
		InviteLink: uuid.NewString(),
		ExpiresAt:  time.Now().Add(constants.INVITATION_TTL),
	}
	if err := s.repos.Invitation.Create(&inv); err != nil {
		if errorx.IsConflict(err) {
			return nil, errorx.New(errorx.CodeConflict, "a pending invitation already exists")
		}
		zap.L().Error("invitation create failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	s.notify(&model.Notification{
		UserUuid:  inviteeId,
		Type:      notification_type_enum.GROUP_INVITE,
		Message:   fmt.Sprintf("You have been invited to join %s", group.Name),
		GroupUuid: group.Uuid,
	})

	rsp := s.buildRespond(&inv, group.Name)
	return &rsp, nil
}

// GetMyInvitations lists the caller's pending, unexpired invitations.
func (s *invitationService) GetMyInvitations(userId string) ([]respond.InvitationRespond, error) {
	pending, err := s.repos.Invitation.FindPendingByInvitee(userId)
	if err != nil {
		zap.L().Error("invitation listing failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	now := time.Now()
	invs := make([]model.Invitation, 0, len(pending))
	for _, inv := range pending {
		if inv.Expired(now) {
			continue
		}
		invs = append(invs, inv)
	}

	groupUuids := make([]string, 0, len(invs))
	for _, inv := range invs {
		groupUuids = append(groupUuids, inv.GroupUuid)
	}
	groups, err := s.repos.Group.FindByUuids(groupUuids)
	if err != nil {
		zap.L().Error("invitation group lookup failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	nameByUuid := make(map[string]string, len(groups))
	for _, g := range groups {
		nameByUuid[g.Uuid] = g.Name
	}

	rsp := make([]respond.InvitationRespond, 0, len(invs))
	for i := range invs {
		rsp = append(rsp, s.buildRespond(&invs[i], nameByUuid[invs[i].GroupUuid]))
	}
	return rsp, nil
}

// RespondInvitation resolves an invitation exactly once. Accepting
// appends the invitee to the group as a plain member, with no admin
// grant and no ban check, and mirrors the join into the channel.
func (s *invitationService) RespondInvitation(userId, invitationId, response string) error {
	inv, err := s.repos.Invitation.FindByUuid(invitationId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "invitation not found")
		}
		zap.L().Error("invitation lookup failed", zap.Error(err))
		return errorx.ErrServerBusy
	}

	if inv.InviteeId != userId {
		return errorx.New(errorx.CodeForbidden, "this invitation is not addressed to you")
	}
	if inv.Status != invitation_status_enum.PENDING {
		return errorx.New(errorx.CodeConflict, "invitation already resolved")
	}
	if inv.Expired(time.Now()) {
		return errorx.New(errorx.CodeConflict, "invitation has expired")
	}

	switch response {
	case "reject":
		if err := s.repos.Invitation.UpdateStatus(inv.Uuid, invitation_status_enum.REJECTED); err != nil {
			zap.L().Error("invitation reject failed", zap.Error(err))
			return errorx.ErrServerBusy
		}
		return nil

	case "accept":
		group, err := s.repos.Group.FindByUuid(inv.GroupUuid)
		if err != nil {
			if errorx.IsNotFound(err) {
				return errorx.New(errorx.CodeNotFound, "group not found")
			}
			zap.L().Error("group lookup failed", zap.Error(err))
			return errorx.ErrServerBusy
		}

		err = s.repos.Transaction(func(txRepos *repository.Repositories) error {
			if err := txRepos.Invitation.UpdateStatus(inv.Uuid, invitation_status_enum.ACCEPTED); err != nil {
				zap.L().Error(err.Error())
				return errorx.ErrServerBusy
			}
			member := model.GroupMember{
				GroupUuid: group.Uuid,
				UserUuid:  userId,
				Role:      group_role_enum.MEMBER,
			}
			if err := txRepos.GroupMember.Create(&member); err != nil {
				if errorx.IsConflict(err) {
					return errorx.New(errorx.CodeConflict, "you are already a member of this group")
				}
				zap.L().Error(err.Error())
				return errorx.ErrServerBusy
			}
			if err := txRepos.Group.IncrementMemberCount(group.Uuid); err != nil {
				zap.L().Error(err.Error())
				return errorx.ErrServerBusy
			}
			if err := s.provider.AddMembers(context.Background(), group.ChannelID, []string{userId}); err != nil {
				zap.L().Error("channel add member failed", zap.Error(err))
				return errorx.New(errorx.CodeServerBusy, "could not join the group channel")
			}
			return nil
		})
		return err

	default:
		return errorx.New(errorx.CodeInvalidParam, "invalid response")
	}
}

func (s *invitationService) buildRespond(inv *model.Invitation, groupName string) respond.InvitationRespond {
	return respond.InvitationRespond{
		Uuid:       inv.Uuid,
		GroupUuid:  inv.GroupUuid,
		GroupName:  groupName,
		InviterId:  inv.InviterId,
		Status:     inv.Status,
		InviteLink: inv.InviteLink,
		ExpiresAt:  inv.ExpiresAt,
	}
}

// notify persists a notification, logging failures without propagating
// them into the workflow.
func (s *invitationService) notify(n *model.Notification) {
	n.Uuid = fmt.Sprintf("N%s", random.GetNowAndLenRandomString(11))
	if err := s.repos.Notification.Create(n); err != nil {
		zap.L().Error("notification create failed", zap.Error(err),
			zap.String("user", n.UserUuid), zap.String("type", n.Type))
	}
}
