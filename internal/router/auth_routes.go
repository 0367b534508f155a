// This file defines the authentication routes.
package router

import (
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/handler"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers signup, login, logout and profile
// onboarding. Onboarding and the profile endpoint require a caller.
func RegisterAuthRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/signup", handler.SignupHandler)
		authGroup.POST("/login", handler.LoginHandler)
		authGroup.POST("/logout", handler.LogoutHandler)

		authGroup.POST("/onboarding", middleware.JWTAuth(), handler.OnboardHandler)
		authGroup.GET("/me", middleware.JWTAuth(), handler.MeHandler)
	}
}
