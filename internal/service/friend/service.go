// Package friend implements the friend-request workflow.
package friend

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ebrahimelkordy/siraj-0.0.1/internal/dao/mysql/repository"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/dto/respond"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/model"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/enum/friend_request/friend_request_status_enum"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/enum/notification/notification_type_enum"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/errorx"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/util/random"
)

type friendService struct {
	repos *repository.Repositories
}

// NewFriendService wires the friend workflow service.
func NewFriendService(repos *repository.Repositories) *friendService {
	return &friendService{repos: repos}
}

// SendFriendRequest creates a pending request and notifies the
// recipient.
func (s *friendService) SendFriendRequest(senderId, recipientId string) (*respond.FriendRequestRespond, error) {
	// 1. No self-requests.
	if senderId == recipientId {
		return nil, errorx.New(errorx.CodeInvalidParam, "you can't send a friend request to yourself")
	}

	sender, err := s.repos.User.FindByUuid(senderId)
	if err != nil {
		zap.L().Error("friend request sender lookup failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	recipient, err := s.repos.User.FindByUuid(recipientId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "recipient not found")
		}
		zap.L().Error("friend request recipient lookup failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	// 2. Already friends.
	friends, err := s.repos.Friendship.Exists(senderId, recipientId)
	if err != nil {
		zap.L().Error("friendship check failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if friends {
		return nil, errorx.New(errorx.CodeConflict, "you are already friends with this user")
	}

	// 3. Any prior request between the pair blocks a new one, in both
	// directions and regardless of status.
	existing, err := s.repos.FriendRequest.FindBetween(senderId, recipientId)
	if err != nil && !errorx.IsNotFound(err) {
		zap.L().Error("friend request pair check failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if existing != nil {
		return nil, errorx.New(errorx.CodeConflict, "a friend request already exists between you and this user")
	}

	// 4. Create. The unique (sender, recipient) index turns a
	// concurrent duplicate into Conflict.
	req := model.FriendRequest{
		Uuid:        fmt.Sprintf("F%s", random.GetNowAndLenRandomString(11)),
		SenderId:    senderId,
		RecipientId: recipientId,
		Status:      friend_request_status_enum.PENDING,
	}
	if err := s.repos.FriendRequest.Create(&req); err != nil {
		if errorx.IsConflict(err) {
			return nil, errorx.New(errorx.CodeConflict, "a friend request already exists between you and this user")
		}
		zap.L().Error("friend request create failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	s.notify(&model.Notification{
		UserUuid:  recipientId,
		Type:      notification_type_enum.FRIEND_REQUEST,
		Message:   fmt.Sprintf("You have a new friend request from %s", sender.FullName),
		RequestId: req.Uuid,
	})

	return &respond.FriendRequestRespond{
		Uuid:      req.Uuid,
		Sender:    respond.NewUserInfoRespond(sender),
		Recipient: respond.NewUserInfoRespond(recipient),
		Status:    req.Status,
	}, nil
}

// AcceptFriendRequest resolves a pending request, makes the friendship
// symmetric and emits the acceptance notifications.
func (s *friendService) AcceptFriendRequest(userId, requestId string) error {
	req, err := s.repos.FriendRequest.FindByUuid(requestId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "friend request not found")
		}
		zap.L().Error("friend request lookup failed", zap.Error(err))
		return errorx.ErrServerBusy
	}

	if req.RecipientId != userId {
		return errorx.New(errorx.CodeForbidden, "you are not authorized to accept this friend request")
	}
	if req.Status != friend_request_status_enum.PENDING {
		return errorx.New(errorx.CodeConflict, "friend request already resolved")
	}

	recipient, err := s.repos.User.FindByUuid(req.RecipientId)
	if err != nil {
		zap.L().Error("accept recipient lookup failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	sender, err := s.repos.User.FindByUuid(req.SenderId)
	if err != nil {
		zap.L().Error("accept sender lookup failed", zap.Error(err))
		return errorx.ErrServerBusy
	}

	// Status flip and both friendship directions commit together so
	// the relation can never be observed one-sided.
	err = s.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := txRepos.FriendRequest.UpdateStatus(req.Uuid, friend_request_status_enum.ACCEPTED); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		for _, pair := range [][2]string{{req.SenderId, req.RecipientId}, {req.RecipientId, req.SenderId}} {
			err := txRepos.Friendship.Create(&model.Friendship{UserUuid: pair[0], FriendUuid: pair[1]})
			if err != nil && !errorx.IsConflict(err) {
				zap.L().Error(err.Error())
				return errorx.ErrServerBusy
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Flip the recipient's original friend_request notification into an
	// unread friend_accept, then emit one acceptance notice per party.
	if err := s.repos.Notification.UpdateByRequestId(req.Uuid, map[string]interface{}{
		"type":    notification_type_enum.FRIEND_ACCEPT,
		"message": fmt.Sprintf("You are now friends with %s!", recipient.FullName),
		"read":    false,
	}); err != nil {
		zap.L().Error("friend notification flip failed", zap.Error(err))
	}

	s.notify(&model.Notification{
		UserUuid: req.SenderId,
		Type:     notification_type_enum.FRIEND_ACCEPT,
		Message:  fmt.Sprintf("%s accepted your friend request", recipient.FullName),
	})
	s.notify(&model.Notification{
		UserUuid: req.RecipientId,
		Type:     notification_type_enum.FRIEND_ACCEPT,
		Message:  fmt.Sprintf("You are now friends with %s", sender.FullName),
	})

	return nil
}

// RejectFriendRequest sets the status only. No membership mutation and
// no notification updates happen on rejection.
func (s *friendService) RejectFriendRequest(userId, requestId string) error {
	req, err := s.repos.FriendRequest.FindByUuid(requestId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "friend request not found")
		}
		zap.L().Error("friend request lookup failed", zap.Error(err))
		return errorx.ErrServerBusy
	}

	if req.RecipientId != userId {
		return errorx.New(errorx.CodeForbidden, "you are not authorized to reject this friend request")
	}
	if req.Status != friend_request_status_enum.PENDING {
		return errorx.New(errorx.CodeConflict, "friend request already resolved")
	}

	if err := s.repos.FriendRequest.UpdateStatus(req.Uuid, friend_request_status_enum.REJECTED); err != nil {
		zap.L().Error("friend request reject failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}

// GetFriendRequests returns incoming pending requests plus accepted
// outgoing ones.
func (s *friendService) GetFriendRequests(userId string) (*respond.FriendRequestLists, error) {
	incoming, err := s.repos.FriendRequest.FindPendingByRecipient(userId)
	if err != nil {
		zap.L().Error("incoming friend requests lookup failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	accepted, err := s.repos.FriendRequest.FindAcceptedBySender(userId)
	if err != nil {
		zap.L().Error("accepted friend requests lookup failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	incomingRsp, err := s.buildRespondList(incoming)
	if err != nil {
		return nil, err
	}
	acceptedRsp, err := s.buildRespondList(accepted)
	if err != nil {
		return nil, err
	}

	return &respond.FriendRequestLists{
		Incoming: incomingRsp,
		Accepted: acceptedRsp,
	}, nil
}

// GetOutgoingFriendRequests returns the caller's pending sends.
func (s *friendService) GetOutgoingFriendRequests(userId string) ([]respond.FriendRequestRespond, error) {
	outgoing, err := s.repos.FriendRequest.FindPendingBySender(userId)
	if err != nil {
		zap.L().Error("outgoing friend requests lookup failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return s.buildRespondList(outgoing)
}

// buildRespondList embeds both parties' profiles into each request.
func (s *friendService) buildRespondList(reqs []model.FriendRequest) ([]respond.FriendRequestRespond, error) {
	userSet := make(map[string]struct{})
	for _, req := range reqs {
		userSet[req.SenderId] = struct{}{}
		userSet[req.RecipientId] = struct{}{}
	}
	uuids := make([]string, 0, len(userSet))
	for uuid := range userSet {
		uuids = append(uuids, uuid)
	}

	users, err := s.repos.User.FindByUuids(uuids)
	if err != nil {
		zap.L().Error("friend request profiles lookup failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	byUuid := make(map[string]respond.UserInfoRespond, len(users))
	for i := range users {
		byUuid[users[i].Uuid] = respond.NewUserInfoRespond(&users[i])
	}

	rsp := make([]respond.FriendRequestRespond, 0, len(reqs))
	for _, req := range reqs {
		rsp = append(rsp, respond.FriendRequestRespond{
			Uuid:      req.Uuid,
			Sender:    byUuid[req.SenderId],
			Recipient: byUuid[req.RecipientId],
			Status:    req.Status,
		})
	}
	return rsp, nil
}

// notify persists a notification, logging failures without propagating
// them into the workflow.
func (s *friendService) notify(n *model.Notification) {
	n.Uuid = fmt.Sprintf("N%s", random.GetNowAndLenRandomString(11))
	if err := s.repos.Notification.Create(n); err != nil {
		zap.L().Error("notification create failed", zap.Error(err),
			zap.String("user", n.UserUuid), zap.String("type", n.Type))
	}
}
