// Package repository defines the data access layer. All repository
// interfaces live in this file; each implementation sits in its own
// file next to it.
package repository

import (
	"gorm.io/gorm"

	"github.com/ebrahimelkordy/siraj-0.0.1/internal/model"
)

// UserRepository provides access to user accounts.
type UserRepository interface {
	// FindByUuid looks a user up by business key.
	FindByUuid(uuid string) (*model.UserInfo, error)
	// FindByEmail looks a user up by email.
	FindByEmail(email string) (*model.UserInfo, error)
	// FindByUuids fetches users by business keys.
	FindByUuids(uuids []string) ([]model.UserInfo, error)
	// FindRecommended returns onboarded users not in excludeUuids,
	// narrowed by the filter.
	FindRecommended(excludeUuids []string, filter RecommendedFilter) ([]model.UserInfo, error)
	// Search matches fullName or email against the query.
	Search(query string, excludeUuid string) ([]model.UserInfo, error)
	// Create inserts a new user.
	Create(user *model.UserInfo) error
	// Update saves all user fields.
	Update(user *model.UserInfo) error
}

// GroupRepository provides access to learning groups.
type GroupRepository interface {
	// FindByUuid looks a group up by business key.
	FindByUuid(uuid string) (*model.GroupInfo, error)
	// FindByUuids fetches groups by business keys, oldest first.
	FindByUuids(uuids []string) ([]model.GroupInfo, error)
	// FindPublic returns all public groups.
	FindPublic() ([]model.GroupInfo, error)
	// Create inserts a new group.
	Create(group *model.GroupInfo) error
	// Update saves all group fields.
	Update(group *model.GroupInfo) error
	// IncrementMemberCount adds one to the member counter.
	IncrementMemberCount(uuid string) error
	// DecrementMemberCount subtracts one from the member counter.
	DecrementMemberCount(uuid string) error
	// Delete removes the group row.
	Delete(uuid string) error
}

// GroupMemberWithUserInfo is a member row joined with the user profile,
// used for member listings.
type GroupMemberWithUserInfo struct {
	UserId         string `json:"userId"`
	FullName       string `json:"fullName"`
	ProfilePic     string `json:"profilePic"`
	NativeLanguage string `json:"nativeLanguage"`
	Role           int8   `json:"role"`
}

// GroupMemberRepository manages group membership rows.
type GroupMemberRepository interface {
	// Find returns the membership of one user in one group.
	Find(groupUuid, userUuid string) (*model.GroupMember, error)
	// FindByGroupUuid returns all memberships of a group.
	FindByGroupUuid(groupUuid string) ([]model.GroupMember, error)
	// FindByUserUuid returns all memberships of a user.
	FindByUserUuid(userUuid string) ([]model.GroupMember, error)
	// FindMembersWithUserInfo returns members joined with profiles.
	FindMembersWithUserInfo(groupUuid string) ([]GroupMemberWithUserInfo, error)
	// CountByGroupUuid counts the members of a group.
	CountByGroupUuid(groupUuid string) (int64, error)
	// Create inserts a membership.
	Create(member *model.GroupMember) error
	// UpdateRole changes one member's role.
	UpdateRole(groupUuid, userUuid string, role int8) error
	// Delete removes one membership.
	Delete(groupUuid, userUuid string) error
	// DeleteByGroupUuid removes all memberships of a group.
	DeleteByGroupUuid(groupUuid string) error
}

// GroupPermissionRepository manages per-user capability grants.
type GroupPermissionRepository interface {
	// Find returns the grant of one user in one group.
	Find(groupUuid, userUuid string) (*model.GroupPermission, error)
	// Upsert creates the grant or updates the existing row.
	Upsert(perm *model.GroupPermission) error
	// Delete removes one grant.
	Delete(groupUuid, userUuid string) error
	// DeleteByGroupUuid removes all grants of a group.
	DeleteByGroupUuid(groupUuid string) error
}

// GroupBanRepository manages group ban rows.
type GroupBanRepository interface {
	// Find returns the active ban of one user in one group.
	Find(groupUuid, userUuid string) (*model.GroupBan, error)
	// FindByGroupUuid returns all bans of a group.
	FindByGroupUuid(groupUuid string) ([]model.GroupBan, error)
	// Upsert creates the ban or overwrites the existing row.
	Upsert(ban *model.GroupBan) error
	// Delete lifts one ban.
	Delete(groupUuid, userUuid string) error
	// DeleteByGroupUuid removes all bans of a group.
	DeleteByGroupUuid(groupUuid string) error
}

// InvitationRepository manages group invitations.
type InvitationRepository interface {
	// FindByUuid looks an invitation up by business key.
	FindByUuid(uuid string) (*model.Invitation, error)
	// FindPending returns the pending invitation of invitee to group.
	FindPending(groupUuid, inviteeId string) (*model.Invitation, error)
	// FindPendingByInvitee returns a user's open invitations.
	FindPendingByInvitee(inviteeId string) ([]model.Invitation, error)
	// Create inserts an invitation.
	Create(inv *model.Invitation) error
	// UpdateStatus sets the invitation status.
	UpdateStatus(uuid, status string) error
	// DeleteByGroupUuid removes all invitations of a group.
	DeleteByGroupUuid(groupUuid string) error
}

// FriendRequestRepository manages friend requests.
type FriendRequestRepository interface {
	// FindByUuid looks a request up by business key.
	FindByUuid(uuid string) (*model.FriendRequest, error)
	// FindBetween returns any request between two users, either
	// direction, any status.
	FindBetween(userA, userB string) (*model.FriendRequest, error)
	// FindPendingByRecipient returns requests awaiting the recipient.
	FindPendingByRecipient(recipientId string) ([]model.FriendRequest, error)
	// FindPendingBySender returns the sender's open outgoing requests.
	FindPendingBySender(senderId string) ([]model.FriendRequest, error)
	// FindAcceptedBySender returns the sender's accepted requests.
	FindAcceptedBySender(senderId string) ([]model.FriendRequest, error)
	// Create inserts a request.
	Create(req *model.FriendRequest) error
	// UpdateStatus sets the request status.
	UpdateStatus(uuid, status string) error
}

// FriendshipRepository manages directional friendship rows.
type FriendshipRepository interface {
	// Exists reports whether userUuid lists friendUuid as a friend.
	Exists(userUuid, friendUuid string) (bool, error)
	// FindFriendUuids returns a user's friends.
	FindFriendUuids(userUuid string) ([]string, error)
	// Create inserts one direction of a friendship.
	Create(f *model.Friendship) error
}

// NotificationRepository manages in-app notifications.
type NotificationRepository interface {
	// FindByUserUuid returns the newest notifications of a user.
	FindByUserUuid(userUuid string, limit int) ([]model.Notification, error)
	// FindByUuidAndUser returns one notification owned by the user.
	FindByUuidAndUser(uuid, userUuid string) (*model.Notification, error)
	// Create inserts a notification.
	Create(n *model.Notification) error
	// MarkRead marks one of the user's notifications as read.
	MarkRead(uuid, userUuid string) error
	// MarkAllRead marks all of the user's notifications as read.
	MarkAllRead(userUuid string) error
	// UpdateByRequestId updates the notification tied to a friend
	// request, used to flip it into an acceptance notice.
	UpdateByRequestId(requestId string, updates map[string]interface{}) error
}

// Repositories aggregates all repository instances. The service layer
// reaches the data layer only through this struct.
type Repositories struct {
	db              *gorm.DB
	User            UserRepository
	Group           GroupRepository
	GroupMember     GroupMemberRepository
	GroupPermission GroupPermissionRepository
	GroupBan        GroupBanRepository
	Invitation      InvitationRepository
	FriendRequest   FriendRequestRepository
	Friendship      FriendshipRepository
	Notification    NotificationRepository
}

// NewRepositories builds all repository instances over one gorm DB.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:              db,
		User:            NewUserRepository(db),
		Group:           NewGroupRepository(db),
		GroupMember:     NewGroupMemberRepository(db),
		GroupPermission: NewGroupPermissionRepository(db),
		GroupBan:        NewGroupBanRepository(db),
		Invitation:      NewInvitationRepository(db),
		FriendRequest:   NewFriendRequestRepository(db),
		Friendship:      NewFriendshipRepository(db),
		Notification:    NewNotificationRepository(db),
	}
}

// Transaction runs fn inside a database transaction. fn receives a
// Repositories bound to the transaction; any error rolls back.
func (r *Repositories) Transaction(fn func(txRepos *Repositories) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
