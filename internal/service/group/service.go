// Package group owns the group aggregate: lifecycle, membership,
// roles, bans and the mirroring of all of it into the chat channel.
package group

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ebrahimelkordy/siraj-0.0.1/internal/chat"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/dao/mysql/repository"
	myredis "github.com/ebrahimelkordy/siraj-0.0.1/internal/dao/redis"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/dto/request"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/dto/respond"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/model"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/enum/group/ban_type_enum"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/enum/group/field_type_enum"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/enum/group/group_privacy_enum"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/enum/group/group_role_enum"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/enum/notification/notification_type_enum"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/errorx"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/util/random"
)

type groupService struct {
	repos    *repository.Repositories
	cache    myredis.AsyncCacheService
	provider chat.ChannelProvider
}

// NewGroupService wires the group service.
func NewGroupService(repos *repository.Repositories, cacheService myredis.AsyncCacheService, provider chat.ChannelProvider) *groupService {
	return &groupService{
		repos:    repos,
		cache:    cacheService,
		provider: provider,
	}
}

// normalizeGroupId strips the channel prefix so both the bare uuid and
// the channel id address the same group.
func normalizeGroupId(groupId string) string {
	return strings.TrimPrefix(groupId, "group-")
}

// loadGroup reads a group, serving repeated reads from cache.
func (g *groupService) loadGroup(groupId string) (*model.GroupInfo, error) {
	groupId = normalizeGroupId(groupId)
	cacheKey := "group_info_" + groupId

	// 1. Cache first; stale or broken entries fall through to the DB.
	cached, err := g.cache.Get(context.Background(), cacheKey)
	if err == nil && cached != "" {
		var group model.GroupInfo
		if err := json.Unmarshal([]byte(cached), &group); err == nil {
			return &group, nil
		}
		zap.L().Warn("group cache entry unreadable, falling back to DB",
			zap.String("groupId", groupId))
	} else if err != nil {
		zap.L().Error("group cache read failed", zap.Error(err))
	}

	// 2. Source of truth.
	group, err := g.repos.Group.FindByUuid(groupId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "group not found")
		}
		zap.L().Error("group lookup failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	// 3. Repopulate asynchronously.
	g.cache.SubmitTask(func() {
		data, err := json.Marshal(group)
		if err != nil {
			zap.L().Error("group cache marshal failed", zap.Error(err))
			return
		}
		if err := g.cache.Set(context.Background(), cacheKey, string(data), 24*time.Hour); err != nil {
			zap.L().Error("group cache write failed", zap.Error(err))
		}
	})

	return group, nil
}

// invalidate drops the cached group and member list after a mutation.
func (g *groupService) invalidate(groupUuid string) {
	g.cache.SubmitTask(func() {
		if err := g.cache.DeleteByPatterns(context.Background(), []string{
			"group_info_" + groupUuid,
			"group_members_" + groupUuid,
		}); err != nil {
			zap.L().Error("group cache invalidation failed", zap.Error(err))
		}
	})
}

// checkUserPermission is the shared authorization gate for mutating
// group operations: the creator passes unconditionally, admins pass
// when their permission record grants the capability.
func (g *groupService) checkUserPermission(groupId, userId, capability string) (*model.GroupInfo, error) {
	group, err := g.loadGroup(groupId)
	if err != nil {
		return nil, err
	}

	if userId == group.CreatorId {
		return group, nil
	}

	member, err := g.repos.GroupMember.Find(group.Uuid, userId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeForbidden, "you are not an admin of this group")
		}
		zap.L().Error("member lookup failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if member.Role < group_role_enum.ADMIN {
		return nil, errorx.New(errorx.CodeForbidden, "you are not an admin of this group")
	}

	perm, err := g.repos.GroupPermission.Find(group.Uuid, userId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.Newf(errorx.CodeForbidden, "you don't have the %s permission", capability)
		}
		zap.L().Error("permission lookup failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	allowed, known := perm.Capability(capability)
	if !known {
		zap.L().Error("unknown capability requested", zap.String("capability", capability))
		return nil, errorx.ErrServerBusy
	}
	if !allowed {
		return nil, errorx.Newf(errorx.CodeForbidden, "you don't have the %s permission", capability)
	}
	return group, nil
}

// requireAdminLevel passes creators and admins without consulting the
// capability record. Bans are admin-level, not capability-gated.
func (g *groupService) requireAdminLevel(group *model.GroupInfo, userId string) error {
	if userId == group.CreatorId {
		return nil
	}
	member, err := g.repos.GroupMember.Find(group.Uuid, userId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeForbidden, "you are not an admin of this group")
		}
		zap.L().Error("member lookup failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	if member.Role < group_role_enum.ADMIN {
		return errorx.New(errorx.CodeForbidden, "you are not an admin of this group")
	}
	return nil
}

// activeBan returns the user's unexpired ban, if any.
func (g *groupService) activeBan(groupUuid, userId string) (*model.GroupBan, error) {
	ban, err := g.repos.GroupBan.Find(groupUuid, userId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, nil
		}
		zap.L().Error("ban lookup failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if ban.Expired(time.Now()) {
		return nil, nil
	}
	return ban, nil
}

// CreateGroup persists the group, its creator membership and the
// creator's full permission record, then provisions the chat channel.
// A channel failure triggers a compensating delete of everything just
// written.
func (g *groupService) CreateGroup(creatorId string, req request.CreateGroupRequest) (*respond.GroupRespond, error) {
	privacy := req.Privacy
	if privacy == "" {
		privacy = group_privacy_enum.PUBLIC
	}
	if !field_type_enum.Valid(req.FieldType) {
		return nil, errorx.New(errorx.CodeInvalidParam, "invalid field type")
	}

	group := model.GroupInfo{
		Uuid:                 fmt.Sprintf("G%s", random.GetNowAndLenRandomString(11)),
		Name:                 req.Name,
		Description:          req.Description,
		CreatorId:            creatorId,
		Privacy:              privacy,
		AllowMemberMessages:  true,
		AllowMemberVideoCall: true,
		Field:                req.Field,
		FieldType:            req.FieldType,
		Image:                req.Image,
		MemberCnt:            1,
	}
	group.ChannelID = "group-" + group.Uuid

	err := g.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := txRepos.Group.Create(&group); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		member := model.GroupMember{
			GroupUuid: group.Uuid,
			UserUuid:  creatorId,
			Role:      group_role_enum.CREATOR,
		}
		if err := txRepos.GroupMember.Create(&member); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		perm := model.GroupPermission{
			GroupUuid:         group.Uuid,
			UserUuid:          creatorId,
			CanAddMembers:     true,
			CanRemoveMembers:  true,
			CanPinMessages:    true,
			CanDeleteMessages: true,
			CanEditGroupInfo:  true,
			CanManageAdmins:   true,
		}
		if err := txRepos.GroupPermission.Upsert(&perm); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Channel provisioning sits outside the transaction; on failure the
	// rows above are compensated away and the whole create fails.
	err = g.provider.CreateChannel(context.Background(), group.ChannelID, creatorId, group.Name, group.Image, []string{creatorId})
	if err != nil {
		zap.L().Error("channel provisioning failed, rolling group back",
			zap.Error(err), zap.String("group", group.Uuid))
		rollbackErr := g.repos.Transaction(func(txRepos *repository.Repositories) error {
			if err := txRepos.GroupPermission.DeleteByGroupUuid(group.Uuid); err != nil {
				return err
			}
			if err := txRepos.GroupMember.DeleteByGroupUuid(group.Uuid); err != nil {
				return err
			}
			return txRepos.Group.Delete(group.Uuid)
		})
		if rollbackErr != nil {
			zap.L().Error("group create compensation failed", zap.Error(rollbackErr),
				zap.String("group", group.Uuid))
		}
		return nil, errorx.New(errorx.CodeServerBusy, "could not provision the group channel")
	}

	rsp := respond.NewGroupRespond(&group)
	rsp.IsMember = true
	rsp.IsAdmin = true
	rsp.IsCreator = true
	return &rsp, nil
}

// GetGroups lists public groups plus the caller's groups, member
// groups first, deduplicated, newest first within each half.
func (g *groupService) GetGroups(userId string) ([]respond.GroupRespond, error) {
	publicGroups, err := g.repos.Group.FindPublic()
	if err != nil {
		zap.L().Error("public groups lookup failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	var memberships []model.GroupMember
	if userId != "" {
		memberships, err = g.repos.GroupMember.FindByUserUuid(userId)
		if err != nil {
			zap.L().Error("memberships lookup failed", zap.Error(err))
			return nil, errorx.ErrServerBusy
		}
	}
	roleByGroup := make(map[string]int8, len(memberships))
	for _, m := range memberships {
		roleByGroup[m.GroupUuid] = m.Role
	}

	memberGroupUuids := make([]string, 0, len(memberships))
	for _, m := range memberships {
		memberGroupUuids = append(memberGroupUuids, m.GroupUuid)
	}
	memberGroups, err := g.repos.Group.FindByUuids(memberGroupUuids)
	if err != nil {
		zap.L().Error("member groups lookup failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	seen := make(map[string]struct{}, len(memberGroups))
	rsp := make([]respond.GroupRespond, 0, len(memberGroups)+len(publicGroups))

	appendGroup := func(group *model.GroupInfo) {
		if _, dup := seen[group.Uuid]; dup {
			return
		}
		seen[group.Uuid] = struct{}{}
		item := respond.NewGroupRespond(group)
		role, isMember := roleByGroup[group.Uuid]
		item.IsMember = isMember
		item.IsAdmin = isMember && role >= group_role_enum.ADMIN
		item.IsCreator = userId != "" && userId == group.CreatorId
		rsp = append(rsp, item)
	}

	// Member groups first, newest first.
	for i := len(memberGroups) - 1; i >= 0; i-- {
		appendGroup(&memberGroups[i])
	}
	for i := range publicGroups {
		appendGroup(&publicGroups[i])
	}
	return rsp, nil
}

// GetGroup returns one group with caller-relative flags. Join-banned
// callers are turned away; private and restricted groups are visible
// to members only.
func (g *groupService) GetGroup(userId, groupId string) (*respond.GroupRespond, error) {
	group, err := g.loadGroup(groupId)
	if err != nil {
		return nil, err
	}

	var member *model.GroupMember
	isMessageBanned := false
	if userId != "" {
		ban, err := g.activeBan(group.Uuid, userId)
		if err != nil {
			return nil, err
		}
		if ban != nil {
			if ban.BanType == ban_type_enum.JOIN {
				return nil, errorx.New(errorx.CodeForbidden, "you are banned from this group")
			}
			isMessageBanned = true
		}

		member, err = g.repos.GroupMember.Find(group.Uuid, userId)
		if err != nil && !errorx.IsNotFound(err) {
			zap.L().Error("member lookup failed", zap.Error(err))
			return nil, errorx.ErrServerBusy
		}
	}

	if group.Privacy != group_privacy_enum.PUBLIC && member == nil {
		if userId == "" {
			return nil, errorx.New(errorx.CodeUnauthorized, "login required to view this group")
		}
		return nil, errorx.New(errorx.CodeForbidden, "this group is only visible to its members")
	}

	rsp := respond.NewGroupRespond(group)
	rsp.IsMember = member != nil
	rsp.IsAdmin = member != nil && member.Role >= group_role_enum.ADMIN
	rsp.IsCreator = userId != "" && userId == group.CreatorId
	rsp.IsMessageBanned = isMessageBanned
	return &rsp, nil
}

// GetMembers lists a group's members with profile data, cached.
func (g *groupService) GetMembers(userId, groupId string) ([]repository.GroupMemberWithUserInfo, error) {
	group, err := g.loadGroup(groupId)
	if err != nil {
		return nil, err
	}

	if group.Privacy != group_privacy_enum.PUBLIC {
		if userId == "" {
			return nil, errorx.New(errorx.CodeUnauthorized, "login required to view this group")
		}
		if _, err := g.repos.GroupMember.Find(group.Uuid, userId); err != nil {
			if errorx.IsNotFound(err) {
				return nil, errorx.New(errorx.CodeForbidden, "this group is only visible to its members")
			}
			zap.L().Error("member lookup failed", zap.Error(err))
			return nil, errorx.ErrServerBusy
		}
	}

	cacheKey := "group_members_" + group.Uuid
	cached, err := g.cache.Get(context.Background(), cacheKey)
	if err == nil && cached != "" {
		var members []repository.GroupMemberWithUserInfo
		if err := json.Unmarshal([]byte(cached), &members); err == nil {
			return members, nil
		}
	}

	members, err := g.repos.GroupMember.FindMembersWithUserInfo(group.Uuid)
	if err != nil {
		zap.L().Error("member listing failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	g.cache.SubmitTask(func() {
		data, err := json.Marshal(members)
		if err != nil {
			return
		}
		if err := g.cache.Set(context.Background(), cacheKey, string(data), 30*time.Minute); err != nil {
			zap.L().Error("member list cache write failed", zap.Error(err))
		}
	})

	return members, nil
}

// UpdatePrivacy changes the privacy mode (canEditGroupInfo).
func (g *groupService) UpdatePrivacy(userId, groupId, privacy string) error {
	group, err := g.checkUserPermission(groupId, userId, "canEditGroupInfo")
	if err != nil {
		return err
	}
	if !group_privacy_enum.Valid(privacy) {
		return errorx.New(errorx.CodeInvalidParam, "invalid privacy value")
	}

	group.Privacy = privacy
	if err := g.repos.Group.Update(group); err != nil {
		zap.L().Error("privacy update failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	g.invalidate(group.Uuid)
	return nil
}

// UpdateGroup applies a bulk update. Deliberately gated on creator or
// admin role, not on a capability record. Any list replacement must
// keep the creator in both members and admins.
func (g *groupService) UpdateGroup(userId, groupId string, req request.UpdateGroupRequest) (*respond.GroupRespond, error) {
	group, err := g.loadGroup(groupId)
	if err != nil {
		return nil, err
	}
	if err := g.requireAdminLevel(group, userId); err != nil {
		return nil, err
	}

	if req.Members != nil && !contains(req.Members, group.CreatorId) {
		return nil, errorx.New(errorx.CodeInvalidParam, "the creator must remain a member")
	}
	if req.Admins != nil && !contains(req.Admins, group.CreatorId) {
		return nil, errorx.New(errorx.CodeInvalidParam, "the creator must remain an admin")
	}

	applyScalarUpdates(group, req)

	var added, removed []string
	err = g.repos.Transaction(func(txRepos *repository.Repositories) error {
		if req.Members != nil || req.Admins != nil {
			current, err := txRepos.GroupMember.FindByGroupUuid(group.Uuid)
			if err != nil {
				zap.L().Error(err.Error())
				return errorx.ErrServerBusy
			}
			added, removed, err = reconcileMembers(txRepos, group, current, req.Members, req.Admins)
			if err != nil {
				return err
			}
		}
		if err := txRepos.Group.Update(group); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Mirror membership changes into the channel; the DB state is
	// already committed, so channel errors are logged, not returned.
	if len(added) > 0 {
		if err := g.provider.AddMembers(context.Background(), group.ChannelID, added); err != nil {
			zap.L().Error("channel add members failed", zap.Error(err))
		}
	}
	if len(removed) > 0 {
		if err := g.provider.RemoveMembers(context.Background(), group.ChannelID, removed); err != nil {
			zap.L().Error("channel remove members failed", zap.Error(err))
		}
	}

	g.invalidate(group.Uuid)

	rsp := respond.NewGroupRespond(group)
	rsp.IsMember = true
	rsp.IsAdmin = true
	rsp.IsCreator = userId == group.CreatorId
	return &rsp, nil
}

// DeleteGroup cascades everything away in one transaction: permissions,
// invitations, bans, members, the channel, then the group itself. A
// channel failure rolls the whole cascade back.
func (g *groupService) DeleteGroup(userId, groupId string) error {
	group, err := g.loadGroup(groupId)
	if err != nil {
		return err
	}
	if userId != group.CreatorId {
		return errorx.New(errorx.CodeForbidden, "only the creator can delete the group")
	}

	err = g.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := txRepos.GroupPermission.DeleteByGroupUuid(group.Uuid); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		if err := txRepos.Invitation.DeleteByGroupUuid(group.Uuid); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		if err := txRepos.GroupBan.DeleteByGroupUuid(group.Uuid); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		if err := txRepos.GroupMember.DeleteByGroupUuid(group.Uuid); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		if err := g.provider.DeleteChannel(context.Background(), group.ChannelID); err != nil {
			zap.L().Error("channel delete failed", zap.Error(err))
			return errorx.New(errorx.CodeServerBusy, "could not delete the group channel")
		}
		if err := txRepos.Group.Delete(group.Uuid); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		return nil
	})
	if err != nil {
		return err
	}

	g.invalidate(group.Uuid)
	return nil
}

// AddMember adds a target user (canAddMembers). Ban status is not
// checked here; only self-service join consults the ban list.
func (g *groupService) AddMember(actorId, groupId, targetId string) error {
	group, err := g.checkUserPermission(groupId, actorId, "canAddMembers")
	if err != nil {
		return err
	}

	if _, err := g.repos.User.FindByUuid(targetId); err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "user not found")
		}
		zap.L().Error("target lookup failed", zap.Error(err))
		return errorx.ErrServerBusy
	}

	if _, err := g.repos.GroupMember.Find(group.Uuid, targetId); err == nil {
		return errorx.New(errorx.CodeConflict, "user is already a member of this group")
	} else if !errorx.IsNotFound(err) {
		zap.L().Error("member lookup failed", zap.Error(err))
		return errorx.ErrServerBusy
	}

	err = g.repos.Transaction(func(txRepos *repository.Repositories) error {
		member := model.GroupMember{
			GroupUuid: group.Uuid,
			UserUuid:  targetId,
			Role:      group_role_enum.MEMBER,
		}
		if err := txRepos.GroupMember.Create(&member); err != nil {
			if errorx.IsConflict(err) {
				return errorx.New(errorx.CodeConflict, "user is already a member of this group")
			}
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		if err := txRepos.Group.IncrementMemberCount(group.Uuid); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		if err := g.provider.AddMembers(context.Background(), group.ChannelID, []string{targetId}); err != nil {
			zap.L().Error("channel add member failed", zap.Error(err))
			return errorx.New(errorx.CodeServerBusy, "could not add the member to the group channel")
		}
		return nil
	})
	if err != nil {
		return err
	}

	g.invalidate(group.Uuid)
	g.notify(&model.Notification{
		UserUuid:  targetId,
		Type:      notification_type_enum.ADMIN_ACTION,
		Message:   fmt.Sprintf("You have been added to %s", group.Name),
		GroupUuid: group.Uuid,
	})
	return nil
}

// RemoveMember removes a target user (canRemoveMembers). The creator
// is unremovable, and only admins may remove other admins.
func (g *groupService) RemoveMember(actorId, groupId, targetId string) error {
	group, err := g.checkUserPermission(groupId, actorId, "canRemoveMembers")
	if err != nil {
		return err
	}

	if targetId == group.CreatorId {
		return errorx.New(errorx.CodeForbidden, "cannot remove the group creator")
	}

	target, err := g.repos.GroupMember.Find(group.Uuid, targetId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "user is not a member of this group")
		}
		zap.L().Error("member lookup failed", zap.Error(err))
		return errorx.ErrServerBusy
	}

	// Removing an admin requires the actor to be an admin themselves,
	// on top of the capability gate above.
	if target.Role >= group_role_enum.ADMIN {
		if err := g.requireAdminLevel(group, actorId); err != nil {
			return errorx.New(errorx.CodeForbidden, "only admins can remove another admin")
		}
	}

	err = g.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := txRepos.GroupMember.Delete(group.Uuid, targetId); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		if err := txRepos.Group.DecrementMemberCount(group.Uuid); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		if err := txRepos.GroupPermission.Delete(group.Uuid, targetId); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		if err := g.provider.RemoveMembers(context.Background(), group.ChannelID, []string{targetId}); err != nil {
			zap.L().Error("channel remove member failed", zap.Error(err))
			return errorx.New(errorx.CodeServerBusy, "could not remove the member from the group channel")
		}
		return nil
	})
	if err != nil {
		return err
	}

	g.invalidate(group.Uuid)
	g.notify(&model.Notification{
		UserUuid:  targetId,
		Type:      notification_type_enum.ADMIN_ACTION,
		Message:   fmt.Sprintf("You have been removed from %s", group.Name),
		GroupUuid: group.Uuid,
	})
	return nil
}

// ManageAdmin grants or revokes admin status (canManageAdmins). A new
// admin receives a default permission record with everything granted
// except canManageAdmins.
func (g *groupService) ManageAdmin(actorId, groupId, targetId, action string) error {
	group, err := g.checkUserPermission(groupId, actorId, "canManageAdmins")
	if err != nil {
		return err
	}

	switch action {
	case "add":
		target, err := g.repos.GroupMember.Find(group.Uuid, targetId)
		if err != nil {
			if errorx.IsNotFound(err) {
				return errorx.New(errorx.CodeInvalidParam, "the user must be a member of the group first")
			}
			zap.L().Error("member lookup failed", zap.Error(err))
			return errorx.ErrServerBusy
		}
		if target.Role >= group_role_enum.ADMIN {
			return errorx.New(errorx.CodeConflict, "the user is already an admin")
		}

		err = g.repos.Transaction(func(txRepos *repository.Repositories) error {
			if err := txRepos.GroupMember.UpdateRole(group.Uuid, targetId, group_role_enum.ADMIN); err != nil {
				zap.L().Error(err.Error())
				return errorx.ErrServerBusy
			}
			perm := model.GroupPermission{
				GroupUuid:         group.Uuid,
				UserUuid:          targetId,
				CanAddMembers:     true,
				CanRemoveMembers:  true,
				CanPinMessages:    true,
				CanDeleteMessages: true,
				CanEditGroupInfo:  true,
				CanManageAdmins:   false,
			}
			if err := txRepos.GroupPermission.Upsert(&perm); err != nil {
				zap.L().Error(err.Error())
				return errorx.ErrServerBusy
			}
			return nil
		})
		if err != nil {
			return err
		}

		g.notify(&model.Notification{
			UserUuid:  targetId,
			Type:      notification_type_enum.ADMIN_ACTION,
			Message:   fmt.Sprintf("You are now an admin of %s", group.Name),
			GroupUuid: group.Uuid,
		})

	case "remove":
		if targetId == group.CreatorId {
			return errorx.New(errorx.CodeForbidden, "cannot remove the group creator from admins")
		}
		target, err := g.repos.GroupMember.Find(group.Uuid, targetId)
		if err != nil {
			if errorx.IsNotFound(err) {
				return errorx.New(errorx.CodeNotFound, "user is not a member of this group")
			}
			zap.L().Error("member lookup failed", zap.Error(err))
			return errorx.ErrServerBusy
		}
		if target.Role < group_role_enum.ADMIN {
			return errorx.New(errorx.CodeInvalidParam, "the user is not an admin")
		}

		err = g.repos.Transaction(func(txRepos *repository.Repositories) error {
			if err := txRepos.GroupMember.UpdateRole(group.Uuid, targetId, group_role_enum.MEMBER); err != nil {
				zap.L().Error(err.Error())
				return errorx.ErrServerBusy
			}
			if err := txRepos.GroupPermission.Delete(group.Uuid, targetId); err != nil {
				zap.L().Error(err.Error())
				return errorx.ErrServerBusy
			}
			return nil
		})
		if err != nil {
			return err
		}

	default:
		return errorx.New(errorx.CodeInvalidParam, "invalid action")
	}

	g.invalidate(group.Uuid)
	return nil
}

// JoinGroup lets the caller join a public group. An active join ban
// blocks rejoining.
func (g *groupService) JoinGroup(userId, groupId string) error {
	group, err := g.loadGroup(groupId)
	if err != nil {
		return err
	}
	if group.Privacy != group_privacy_enum.PUBLIC {
		return errorx.New(errorx.CodeForbidden, "this group cannot be joined directly")
	}

	ban, err := g.activeBan(group.Uuid, userId)
	if err != nil {
		return err
	}
	if ban != nil && ban.BanType == ban_type_enum.JOIN {
		return errorx.New(errorx.CodeForbidden, "you are banned from this group")
	}

	if _, err := g.repos.GroupMember.Find(group.Uuid, userId); err == nil {
		return errorx.New(errorx.CodeConflict, "you are already a member of this group")
	} else if !errorx.IsNotFound(err) {
		zap.L().Error("member lookup failed", zap.Error(err))
		return errorx.ErrServerBusy
	}

	err = g.repos.Transaction(func(txRepos *repository.Repositories) error {
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
		if err := g.provider.AddMembers(context.Background(), group.ChannelID, []string{userId}); err != nil {
			zap.L().Error("channel add member failed", zap.Error(err))
			return errorx.New(errorx.CodeServerBusy, "could not join the group channel")
		}
		return nil
	})
	if err != nil {
		return err
	}

	g.invalidate(group.Uuid)
	return nil
}

// LeaveGroup removes the caller from members and admins. The creator
// can never leave, only delete.
func (g *groupService) LeaveGroup(userId, groupId string) error {
	group, err := g.loadGroup(groupId)
	if err != nil {
		return err
	}
	if userId == group.CreatorId {
		return errorx.New(errorx.CodeForbidden, "the creator cannot leave the group")
	}

	if _, err := g.repos.GroupMember.Find(group.Uuid, userId); err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeInvalidParam, "you are not a member of this group")
		}
		zap.L().Error("member lookup failed", zap.Error(err))
		return errorx.ErrServerBusy
	}

	err = g.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := txRepos.GroupMember.Delete(group.Uuid, userId); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		if err := txRepos.Group.DecrementMemberCount(group.Uuid); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		if err := txRepos.GroupPermission.Delete(group.Uuid, userId); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		if err := g.provider.RemoveMembers(context.Background(), group.ChannelID, []string{userId}); err != nil {
			zap.L().Error("channel remove member failed", zap.Error(err))
			return errorx.New(errorx.CodeServerBusy, "could not leave the group channel")
		}
		return nil
	})
	if err != nil {
		return err
	}

	g.invalidate(group.Uuid)
	return nil
}

// GetBannedUsers lists the ban records with user names (admin only).
func (g *groupService) GetBannedUsers(actorId, groupId string) ([]respond.BanRespond, error) {
	group, err := g.loadGroup(groupId)
	if err != nil {
		return nil, err
	}
	if err := g.requireAdminLevel(group, actorId); err != nil {
		return nil, err
	}

	bans, err := g.repos.GroupBan.FindByGroupUuid(group.Uuid)
	if err != nil {
		zap.L().Error("ban listing failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	uuids := make([]string, 0, len(bans))
	for _, ban := range bans {
		uuids = append(uuids, ban.UserUuid)
	}
	users, err := g.repos.User.FindByUuids(uuids)
	if err != nil {
		zap.L().Error("banned user profiles lookup failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	nameByUuid := make(map[string]string, len(users))
	for _, u := range users {
		nameByUuid[u.Uuid] = u.FullName
	}

	rsp := make([]respond.BanRespond, 0, len(bans))
	for _, ban := range bans {
		rsp = append(rsp, respond.BanRespond{
			UserId:    ban.UserUuid,
			FullName:  nameByUuid[ban.UserUuid],
			BanType:   ban.BanType,
			Reason:    ban.Reason,
			BannedBy:  ban.BannedBy,
			BannedAt:  ban.UpdatedAt,
			ExpiresAt: ban.ExpiresAt,
		})
	}
	return rsp, nil
}

// BanUser bans a target user. Admin-level, not capability-gated. A
// join ban evicts the member; a message ban mutes the channel.
// Re-banning overwrites the existing record.
func (g *groupService) BanUser(actorId, groupId string, req request.BanUserRequest) error {
	group, err := g.loadGroup(groupId)
	if err != nil {
		return err
	}
	if err := g.requireAdminLevel(group, actorId); err != nil {
		return err
	}

	if req.UserId == group.CreatorId {
		return errorx.New(errorx.CodeForbidden, "cannot ban the group creator")
	}
	target, err := g.repos.GroupMember.Find(group.Uuid, req.UserId)
	if err != nil && !errorx.IsNotFound(err) {
		zap.L().Error("member lookup failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	if target != nil && target.Role >= group_role_enum.ADMIN {
		return errorx.New(errorx.CodeForbidden, "cannot ban an admin")
	}
	if !ban_type_enum.Valid(req.BanType) {
		return errorx.New(errorx.CodeInvalidParam, "invalid ban type")
	}

	err = g.repos.Transaction(func(txRepos *repository.Repositories) error {
		ban := model.GroupBan{
			GroupUuid: group.Uuid,
			UserUuid:  req.UserId,
			BanType:   req.BanType,
			Reason:    req.Reason,
			BannedBy:  actorId,
		}
		if err := txRepos.GroupBan.Upsert(&ban); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}

		switch req.BanType {
		case ban_type_enum.JOIN:
			// Eviction only applies when the target is a member.
			if target != nil {
				if err := txRepos.GroupMember.Delete(group.Uuid, req.UserId); err != nil {
					zap.L().Error(err.Error())
					return errorx.ErrServerBusy
				}
				if err := txRepos.Group.DecrementMemberCount(group.Uuid); err != nil {
					zap.L().Error(err.Error())
					return errorx.ErrServerBusy
				}
				if err := g.provider.RemoveMembers(context.Background(), group.ChannelID, []string{req.UserId}); err != nil {
					zap.L().Error("channel remove member failed", zap.Error(err))
					return errorx.New(errorx.CodeServerBusy, "could not remove the banned member from the channel")
				}
			}
		case ban_type_enum.MESSAGE:
			if err := g.provider.BanUser(context.Background(), group.ChannelID, req.UserId, actorId, req.Reason); err != nil {
				zap.L().Error("channel ban failed", zap.Error(err))
				return errorx.New(errorx.CodeServerBusy, "could not mute the user in the channel")
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	g.invalidate(group.Uuid)
	g.notify(&model.Notification{
		UserUuid:  req.UserId,
		Type:      notification_type_enum.ADMIN_ACTION,
		Message:   fmt.Sprintf("You have been banned from %s", group.Name),
		GroupUuid: group.Uuid,
	})
	return nil
}

// UnbanUser lifts a ban. A message ban also lifts the channel mute.
func (g *groupService) UnbanUser(actorId, groupId, targetId string) error {
	group, err := g.loadGroup(groupId)
	if err != nil {
		return err
	}
	if err := g.requireAdminLevel(group, actorId); err != nil {
		return err
	}

	ban, err := g.repos.GroupBan.Find(group.Uuid, targetId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "no ban found for this user")
		}
		zap.L().Error("ban lookup failed", zap.Error(err))
		return errorx.ErrServerBusy
	}

	err = g.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := txRepos.GroupBan.Delete(group.Uuid, targetId); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		if ban.BanType == ban_type_enum.MESSAGE {
			if err := g.provider.UnbanUser(context.Background(), group.ChannelID, targetId); err != nil {
				zap.L().Error("channel unban failed", zap.Error(err))
				return errorx.New(errorx.CodeServerBusy, "could not lift the channel mute")
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	g.invalidate(group.Uuid)
	return nil
}

// GetChatToken issues a chat frontend token for the caller.
func (g *groupService) GetChatToken(userId string) (*respond.ChatTokenRespond, error) {
	token, err := g.provider.CreateToken(userId)
	if err != nil {
		zap.L().Error("chat token issue failed", zap.Error(err), zap.String("user", userId))
		return nil, errorx.ErrServerBusy
	}
	return &respond.ChatTokenRespond{Token: token}, nil
}

// notify persists a notification, logging failures without propagating
// them into the workflow.
func (g *groupService) notify(n *model.Notification) {
	n.Uuid = fmt.Sprintf("N%s", random.GetNowAndLenRandomString(11))
	if err := g.repos.Notification.Create(n); err != nil {
		zap.L().Error("notification create failed", zap.Error(err),
			zap.String("user", n.UserUuid), zap.String("type", n.Type))
	}
}

func contains(list []string, item string) bool {
	for _, v := range list {
		if v == item {
			return true
		}
	}
	return false
}

// applyScalarUpdates copies the non-nil scalar fields of a bulk update
// onto the group.
func applyScalarUpdates(group *model.GroupInfo, req request.UpdateGroupRequest) {
	if req.Name != nil {
		group.Name = *req.Name
	}
	if req.Description != nil {
		group.Description = *req.Description
	}
	if req.Privacy != nil {
		group.Privacy = *req.Privacy
	}
	if req.AllowMemberMessages != nil {
		group.AllowMemberMessages = *req.AllowMemberMessages
	}
	if req.AllowMemberVideoCall != nil {
		group.AllowMemberVideoCall = *req.AllowMemberVideoCall
	}
	if req.Field != nil {
		group.Field = *req.Field
	}
	if req.FieldType != nil {
		group.FieldType = *req.FieldType
	}
	if req.Image != nil {
		group.Image = *req.Image
	}
}

// reconcileMembers replaces the member and admin lists. The creator
// keeps the creator role throughout; demoted admins lose their
// permission record. Returns the added and removed user uuids for
// channel mirroring.
func reconcileMembers(txRepos *repository.Repositories, group *model.GroupInfo, current []model.GroupMember, members, admins []string) (added, removed []string, err error) {
	currentByUuid := make(map[string]model.GroupMember, len(current))
	for _, m := range current {
		currentByUuid[m.UserUuid] = m
	}

	// Nil members means "keep the current member set".
	targetMembers := members
	if targetMembers == nil {
		targetMembers = make([]string, 0, len(current))
		for _, m := range current {
			targetMembers = append(targetMembers, m.UserUuid)
		}
	}
	memberSet := make(map[string]struct{}, len(targetMembers))
	for _, uuid := range targetMembers {
		memberSet[uuid] = struct{}{}
	}

	adminSet := make(map[string]struct{})
	if admins != nil {
		for _, uuid := range admins {
			adminSet[uuid] = struct{}{}
		}
	} else {
		for _, m := range current {
			if m.Role >= group_role_enum.ADMIN {
				adminSet[m.UserUuid] = struct{}{}
			}
		}
	}

	// Remove members no longer listed.
	for _, m := range current {
		if _, keep := memberSet[m.UserUuid]; keep {
			continue
		}
		if err := txRepos.GroupMember.Delete(group.Uuid, m.UserUuid); err != nil {
			zap.L().Error(err.Error())
			return nil, nil, errorx.ErrServerBusy
		}
		if err := txRepos.GroupPermission.Delete(group.Uuid, m.UserUuid); err != nil {
			zap.L().Error(err.Error())
			return nil, nil, errorx.ErrServerBusy
		}
		removed = append(removed, m.UserUuid)
	}

	// Add or re-role the listed members.
	for _, uuid := range targetMembers {
		role := group_role_enum.MEMBER
		if uuid == group.CreatorId {
			role = group_role_enum.CREATOR
		} else if _, isAdmin := adminSet[uuid]; isAdmin {
			role = group_role_enum.ADMIN
		}

		existing, found := currentByUuid[uuid]
		if !found {
			member := model.GroupMember{GroupUuid: group.Uuid, UserUuid: uuid, Role: role}
			if err := txRepos.GroupMember.Create(&member); err != nil {
				zap.L().Error(err.Error())
				return nil, nil, errorx.ErrServerBusy
			}
			added = append(added, uuid)
			continue
		}
		if existing.Role != role {
			if err := txRepos.GroupMember.UpdateRole(group.Uuid, uuid, role); err != nil {
				zap.L().Error(err.Error())
				return nil, nil, errorx.ErrServerBusy
			}
			// Demoted admins lose their capability record.
			if existing.Role >= group_role_enum.ADMIN && role == group_role_enum.MEMBER {
				if err := txRepos.GroupPermission.Delete(group.Uuid, uuid); err != nil {
					zap.L().Error(err.Error())
					return nil, nil, errorx.ErrServerBusy
				}
			}
		}
	}

	group.MemberCnt = len(targetMembers)
	return added, removed, nil
}
