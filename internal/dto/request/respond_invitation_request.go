package request

// RespondInvitationRequest invitation resolution payload.
// Used by:
//   - handler/invitation_handler.go: RespondInvitationHandler
type RespondInvitationRequest struct {
	Response string `json:"response" binding:"required,oneof=accept reject"`
}
