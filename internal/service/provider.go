// Package service provides the business layer aggregate and its
// dependency injection entry point.
package service

import (
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/chat"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/dao/mysql/repository"
	myredis "github.com/ebrahimelkordy/siraj-0.0.1/internal/dao/redis"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/service/auth"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/service/friend"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/service/group"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/service/invitation"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/service/notification"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/service/user"
)

// Services aggregates all service instances. Handlers reach the
// business layer through service.Svc.
type Services struct {
	Auth         AuthService
	User         UserService
	Friend       FriendService
	Group        GroupService
	Invitation   InvitationService
	Notification NotificationService
}

// NewServices wires the services with their repository, cache and chat
// provider dependencies.
func NewServices(repos *repository.Repositories, cacheService myredis.AsyncCacheService, provider chat.ChannelProvider) *Services {
	return &Services{
		Auth:         auth.NewAuthService(repos, provider),
		User:         user.NewUserService(repos),
		Friend:       friend.NewFriendService(repos),
		Group:        group.NewGroupService(repos, cacheService, provider),
		Invitation:   invitation.NewInvitationService(repos, provider),
		Notification: notification.NewNotificationService(repos),
	}
}

// Svc is the global services instance used by the handlers.
var Svc *Services

// InitServices builds the global instance; called from main after the
// repositories, cache and chat provider are ready.
func InitServices(repos *repository.Repositories, cacheService myredis.AsyncCacheService, provider chat.ChannelProvider) {
	Svc = NewServices(repos, cacheService, provider)
}
