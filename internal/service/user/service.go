// Package user serves the user directory: search, recommended
// partners and the friends listing.
package user

import (
	"go.uber.org/zap"

	"github.com/ebrahimelkordy/siraj-0.0.1/internal/dao/mysql/repository"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/dto/request"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/dto/respond"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/constants"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/errorx"
)

type userService struct {
	repos *repository.Repositories
}

// NewUserService wires the user directory service.
func NewUserService(repos *repository.Repositories) *userService {
	return &userService{repos: repos}
}

// Search matches full name or email, excluding the caller.
func (s *userService) Search(userId, query string) ([]respond.UserInfoRespond, error) {
	if query == "" {
		return []respond.UserInfoRespond{}, nil
	}
	users, err := s.repos.User.Search(query, userId)
	if err != nil {
		zap.L().Error("user search failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	rsp := make([]respond.UserInfoRespond, 0, len(users))
	for i := range users {
		rsp = append(rsp, respond.NewUserInfoRespond(&users[i]))
	}
	return rsp, nil
}

// GetRecommended lists onboarded users excluding the caller, existing
// friends and anyone with a pending request in either direction,
// optionally narrowed by language, track and name filters.
func (s *userService) GetRecommended(userId string, query request.RecommendedQuery) ([]respond.UserInfoRespond, error) {
	exclude := []string{userId}

	friendUuids, err := s.repos.Friendship.FindFriendUuids(userId)
	if err != nil {
		zap.L().Error("recommended friends lookup failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	exclude = append(exclude, friendUuids...)

	incoming, err := s.repos.FriendRequest.FindPendingByRecipient(userId)
	if err != nil {
		zap.L().Error("recommended incoming lookup failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	for _, req := range incoming {
		exclude = append(exclude, req.SenderId)
	}

	outgoing, err := s.repos.FriendRequest.FindPendingBySender(userId)
	if err != nil {
		zap.L().Error("recommended outgoing lookup failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	for _, req := range outgoing {
		exclude = append(exclude, req.RecipientId)
	}

	limit := query.Limit
	if limit <= 0 || limit > constants.RECOMMEND_PAGE_SIZE {
		limit = constants.RECOMMEND_PAGE_SIZE
	}
	page := query.Page
	if page < 1 {
		page = 1
	}

	users, err := s.repos.User.FindRecommended(exclude, repository.RecommendedFilter{
		NativeLanguage:   query.NativeLanguage,
		LearningLanguage: query.LearningLanguage,
		Track:            query.Track,
		Query:            query.Query,
		Offset:           (page - 1) * limit,
		Limit:            limit,
	})
	if err != nil {
		zap.L().Error("recommended query failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	rsp := make([]respond.UserInfoRespond, 0, len(users))
	for i := range users {
		rsp = append(rsp, respond.NewUserInfoRespond(&users[i]))
	}
	return rsp, nil
}

// GetFriends lists the caller's friends.
func (s *userService) GetFriends(userId string) ([]respond.UserInfoRespond, error) {
	friendUuids, err := s.repos.Friendship.FindFriendUuids(userId)
	if err != nil {
		zap.L().Error("friends lookup failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	friends, err := s.repos.User.FindByUuids(friendUuids)
	if err != nil {
		zap.L().Error("friends profile lookup failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	rsp := make([]respond.UserInfoRespond, 0, len(friends))
	for i := range friends {
		rsp = append(rsp, respond.NewUserInfoRespond(&friends[i]))
	}
	return rsp, nil
}
