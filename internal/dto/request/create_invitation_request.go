package request

// CreateInvitationRequest invitation payload.
// Used by:
//   - handler/invitation_handler.go: CreateInvitationHandler
type CreateInvitationRequest struct {
	InviteeId string `json:"inviteeId" binding:"required"`
}
