// This file serves the group invitation endpoints.
package handler

import (
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/dto/request"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateInvitationHandler invites a user into a group.
// POST /api/groups/:groupId/invitations
func CreateInvitationHandler(c *gin.Context) {
	var req request.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	rsp, err := service.Svc.Invitation.CreateInvitation(c.GetString("user_id"), c.Param("groupId"), req.InviteeId)
	if err != nil {
		HandleError(c, err)
		return
	}

	HandleCreated(c, rsp)
}

// GetMyInvitationsHandler lists the caller's pending invitations.
// GET /api/invitations
func GetMyInvitationsHandler(c *gin.Context) {
	rsp, err := service.Svc.Invitation.GetMyInvitations(c.GetString("user_id"))
	if err != nil {
		HandleError(c, err)
		return
	}

	HandleSuccess(c, rsp)
}

// RespondInvitationHandler accepts or rejects an invitation.
// PUT /api/invitations/:invitationId
func RespondInvitationHandler(c *gin.Context) {
	var req request.RespondInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	if err := service.Svc.Invitation.RespondInvitation(c.GetString("user_id"), c.Param("invitationId"), req.Response); err != nil {
		HandleError(c, err)
		return
	}

	HandleSuccess(c, gin.H{"message": "invitation " + req.Response + "ed"})
}
