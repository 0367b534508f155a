// Package auth implements signup, login and onboarding.
package auth

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ebrahimelkordy/siraj-0.0.1/internal/chat"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/dao/mysql/repository"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/dto/request"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/dto/respond"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/model"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/enum/user/gender_enum"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/errorx"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/util/jwt"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/util/random"
)

type authService struct {
	repos    *repository.Repositories
	provider chat.ChannelProvider
}

// NewAuthService wires the auth service.
func NewAuthService(repos *repository.Repositories, provider chat.ChannelProvider) *authService {
	return &authService{repos: repos, provider: provider}
}

// Signup registers a new account.
func (s *authService) Signup(req request.RegisterRequest) (*respond.LoginRespond, error) {
	// 1. Email must be unused.
	existing, err := s.repos.User.FindByEmail(req.Email)
	if err != nil && !errorx.IsNotFound(err) {
		zap.L().Error("signup email lookup failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if existing != nil {
		return nil, errorx.New(errorx.CodeUserExist, "email already in use")
	}

	// 2. Create the account with a random starter avatar.
	user := model.UserInfo{
		Uuid:        fmt.Sprintf("U%s", random.GetNowAndLenRandomString(11)),
		FullName:    req.FullName,
		Email:       req.Email,
		RawPassword: req.Password,
		ProfilePic:  fmt.Sprintf("https://avatar.iran.liara.run/public/%d.png", random.GetRandomInt(100)),
	}
	if err := s.repos.User.Create(&user); err != nil {
		if errorx.IsConflict(err) {
			return nil, errorx.New(errorx.CodeUserExist, "email already in use")
		}
		zap.L().Error("signup create failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	// 3. Mirror the profile into the chat backend. Failure is logged
	// but does not fail the signup.
	if err := s.provider.UpsertUser(context.Background(), chat.ChannelUser{
		ID:    user.Uuid,
		Name:  user.FullName,
		Image: user.ProfilePic,
	}); err != nil {
		zap.L().Error("chat user upsert failed on signup", zap.Error(err), zap.String("user", user.Uuid))
	}

	return s.buildLoginRespond(&user)
}

// Login verifies credentials.
func (s *authService) Login(req request.LoginRequest) (*respond.LoginRespond, error) {
	user, err := s.repos.User.FindByEmail(req.Email)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeInvalidAuth, "invalid email or password")
		}
		zap.L().Error("login lookup failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	if !user.CheckPassword(req.Password) {
		return nil, errorx.New(errorx.CodeInvalidAuth, "invalid email or password")
	}

	return s.buildLoginRespond(user)
}

// Onboard completes the profile and marks the user onboarded.
func (s *authService) Onboard(userId string, req request.OnboardRequest) (*respond.UserInfoRespond, error) {
	if !gender_enum.Valid(req.Gender) {
		return nil, errorx.New(errorx.CodeInvalidParam, "invalid gender value")
	}

	user, err := s.repos.User.FindByUuid(userId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUserNotExist, "user not found")
		}
		zap.L().Error("onboard lookup failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	user.FullName = req.FullName
	user.Bio = req.Bio
	user.NativeLanguage = req.NativeLanguage
	user.LearningLanguage = req.LearningLanguage
	user.EducationalPath = req.EducationalPath
	user.Location = req.Location
	user.Gender = req.Gender
	if req.ProfilePic != "" {
		user.ProfilePic = req.ProfilePic
	}
	user.IsOnboarded = true

	if err := s.repos.User.Update(user); err != nil {
		zap.L().Error("onboard update failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	if err := s.provider.UpsertUser(context.Background(), chat.ChannelUser{
		ID:    user.Uuid,
		Name:  user.FullName,
		Image: user.ProfilePic,
	}); err != nil {
		zap.L().Error("chat user upsert failed on onboard", zap.Error(err), zap.String("user", user.Uuid))
	}

	rsp := respond.NewUserInfoRespond(user)
	return &rsp, nil
}

// Me returns the caller's profile.
func (s *authService) Me(userId string) (*respond.UserInfoRespond, error) {
	user, err := s.repos.User.FindByUuid(userId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUserNotExist, "user not found")
		}
		zap.L().Error("me lookup failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	rsp := respond.NewUserInfoRespond(user)
	return &rsp, nil
}

func (s *authService) buildLoginRespond(user *model.UserInfo) (*respond.LoginRespond, error) {
	accessToken, err := jwt.GenerateAccessToken(user.Uuid)
	if err != nil {
		zap.L().Error("access token generation failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	refreshToken, _, err := jwt.GenerateRefreshToken(user.Uuid)
	if err != nil {
		zap.L().Error("refresh token generation failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	return &respond.LoginRespond{
		User:         respond.NewUserInfoRespond(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
