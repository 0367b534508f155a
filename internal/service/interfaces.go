// Package service defines the business layer interfaces consumed by
// the handlers. Implementations live in the subpackages.
package service

import (
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/dao/mysql/repository"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/dto/request"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/dto/respond"
)

// AuthService handles signup, login and profile onboarding.
type AuthService interface {
	// Signup registers a new account and returns it with a token pair.
	Signup(req request.RegisterRequest) (*respond.LoginRespond, error)
	// Login verifies credentials and returns the account with tokens.
	Login(req request.LoginRequest) (*respond.LoginRespond, error)
	// Onboard completes the language-learning profile.
	Onboard(userId string, req request.OnboardRequest) (*respond.UserInfoRespond, error)
	// Me returns the caller's profile.
	Me(userId string) (*respond.UserInfoRespond, error)
}

// UserService serves the user directory.
type UserService interface {
	// Search matches users by name or email, excluding the caller.
	Search(userId, query string) ([]respond.UserInfoRespond, error)
	// GetRecommended lists onboarded partners the caller is not yet
	// connected to, narrowed by the optional query filters.
	GetRecommended(userId string, query request.RecommendedQuery) ([]respond.UserInfoRespond, error)
	// GetFriends lists the caller's friends.
	GetFriends(userId string) ([]respond.UserInfoRespond, error)
}

// FriendService runs the friend-request workflow.
type FriendService interface {
	// SendFriendRequest creates a pending request from sender.
	SendFriendRequest(senderId, recipientId string) (*respond.FriendRequestRespond, error)
	// AcceptFriendRequest resolves a request the caller received.
	AcceptFriendRequest(userId, requestId string) error
	// RejectFriendRequest rejects a request the caller received.
	RejectFriendRequest(userId, requestId string) error
	// GetFriendRequests returns incoming pending requests plus the
	// caller's accepted outgoing ones.
	GetFriendRequests(userId string) (*respond.FriendRequestLists, error)
	// GetOutgoingFriendRequests returns the caller's pending sends.
	GetOutgoingFriendRequests(userId string) ([]respond.FriendRequestRespond, error)
}

// GroupService owns the group aggregate: lifecycle, membership, roles,
// bans and the chat channel mirroring.
type GroupService interface {
	// CreateGroup persists the group with its creator and provisions
	// the chat channel, compensating on channel failure.
	CreateGroup(creatorId string, req request.CreateGroupRequest) (*respond.GroupRespond, error)
	// GetGroups lists groups visible to the caller, member groups
	// first. userId may be empty for anonymous callers.
	GetGroups(userId string) ([]respond.GroupRespond, error)
	// GetGroup returns one group with caller-relative flags. Accepts
	// the channel "group-" prefix on groupId.
	GetGroup(userId, groupId string) (*respond.GroupRespond, error)
	// GetMembers lists a group's members with profile data, under the
	// same visibility rules as GetGroup.
	GetMembers(userId, groupId string) ([]repository.GroupMemberWithUserInfo, error)
	// UpdatePrivacy changes the privacy mode (canEditGroupInfo).
	UpdatePrivacy(userId, groupId, privacy string) error
	// UpdateGroup applies a bulk update (creator or admin).
	UpdateGroup(userId, groupId string, req request.UpdateGroupRequest) (*respond.GroupRespond, error)
	// DeleteGroup cascades the whole group away (creator only).
	DeleteGroup(userId, groupId string) error
	// AddMember adds a target user (canAddMembers).
	AddMember(actorId, groupId, targetId string) error
	// RemoveMember removes a target user (canRemoveMembers).
	RemoveMember(actorId, groupId, targetId string) error
	// ManageAdmin grants or revokes admin status (canManageAdmins).
	ManageAdmin(actorId, groupId, targetId, action string) error
	// JoinGroup lets the caller join a public group.
	JoinGroup(userId, groupId string) error
	// LeaveGroup lets a non-creator member leave.
	LeaveGroup(userId, groupId string) error
	// GetBannedUsers lists the ban records (admin only).
	GetBannedUsers(actorId, groupId string) ([]respond.BanRespond, error)
	// BanUser bans a target user (admin level).
	BanUser(actorId, groupId string, req request.BanUserRequest) error
	// UnbanUser lifts a ban (admin level).
	UnbanUser(actorId, groupId, targetId string) error
	// GetChatToken issues a chat frontend token for the caller.
	GetChatToken(userId string) (*respond.ChatTokenRespond, error)
}

// InvitationService runs the invitation workflow.
type InvitationService interface {
	// CreateInvitation invites a user; gated on the inviter's own
	// canAddMembers permission record, with no creator bypass.
	CreateInvitation(inviterId, groupId, inviteeId string) (*respond.InvitationRespond, error)
	// GetMyInvitations lists the caller's pending invitations.
	GetMyInvitations(userId string) ([]respond.InvitationRespond, error)
	// RespondInvitation resolves an invitation exactly once.
	RespondInvitation(userId, invitationId, response string) error
}

// NotificationService serves the notification inbox. Creation happens
// inside the workflows as a fire-and-forget side effect, not here.
type NotificationService interface {
	// GetNotifications returns the newest notifications of the caller.
	GetNotifications(userId string) ([]respond.NotificationRespond, error)
	// MarkAllRead marks every unread notification as read.
	MarkAllRead(userId string) error
	// MarkRead marks one notification as read.
	MarkRead(userId, notificationId string) error
}
