// This file defines the invitation inbox routes. Sending invitations
// lives under the group routes.
package router

import (
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/handler"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterInvitationRoutes registers the invitee-side endpoints.
func RegisterInvitationRoutes(rg *gin.RouterGroup) {
	invitationGroup := rg.Group("/invitations", middleware.JWTAuth())
	{
		invitationGroup.GET("", handler.GetMyInvitationsHandler)
		invitationGroup.PUT("/:invitationId", handler.RespondInvitationHandler)
	}
}
