// Package handler provides the HTTP request handlers.
// This file serves the authentication endpoints.
package handler

import (
	"net/http"

	"github.com/ebrahimelkordy/siraj-0.0.1/internal/dto/request"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/service"

	"github.com/gin-gonic/gin"
)

// jwtCookieMaxAge keeps the browser cookie alive for seven days.
const jwtCookieMaxAge = 7 * 24 * 3600

// setJWTCookie stores the access token for browser clients. API
// clients can ignore it and send the Authorization header instead.
func setJWTCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("jwt", token, jwtCookieMaxAge, "/", "", false, true)
}

// SignupHandler registers a new account.
// POST /api/auth/signup
func SignupHandler(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	rsp, err := service.Svc.Auth.Signup(req)
	if err != nil {
		HandleError(c, err)
		return
	}

	setJWTCookie(c, rsp.AccessToken)
	HandleCreated(c, rsp)
}

// LoginHandler verifies credentials and issues tokens.
// POST /api/auth/login
func LoginHandler(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	rsp, err := service.Svc.Auth.Login(req)
	if err != nil {
		HandleError(c, err)
		return
	}

	setJWTCookie(c, rsp.AccessToken)
	HandleSuccess(c, rsp)
}

// LogoutHandler clears the JWT cookie.
// POST /api/auth/logout
func LogoutHandler(c *gin.Context) {
	c.SetCookie("jwt", "", -1, "/", "", false, true)
	HandleSuccess(c, gin.H{"message": "logout successful"})
}

// OnboardHandler completes the language-learning profile.
// POST /api/auth/onboarding
func OnboardHandler(c *gin.Context) {
	var req request.OnboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	rsp, err := service.Svc.Auth.Onboard(c.GetString("user_id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}

	HandleSuccess(c, rsp)
}

// MeHandler returns the caller's profile.
// GET /api/auth/me
func MeHandler(c *gin.Context) {
	rsp, err := service.Svc.Auth.Me(c.GetString("user_id"))
	if err != nil {
		HandleError(c, err)
		return
	}

	HandleSuccess(c, rsp)
}
