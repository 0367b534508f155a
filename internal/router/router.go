// Package router registers the HTTP routes.
// This file is the entry point aggregating the per-module route files.
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes under the /api prefix.
// Called from https_server.Init().
func RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	RegisterAuthRoutes(api)
	RegisterUserRoutes(api)
	RegisterGroupRoutes(api)
	RegisterInvitationRoutes(api)
	RegisterNotificationRoutes(api)
}
