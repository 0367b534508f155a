package request

// UpdatePrivacyRequest privacy change payload.
// Used by:
//   - handler/group_handler.go: UpdatePrivacyHandler
type UpdatePrivacyRequest struct {
	Privacy string `json:"privacy" binding:"required,oneof=public private restricted"`
}
