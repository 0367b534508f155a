package request

// ManageAdminRequest admin grant/revoke payload.
// Used by:
//   - handler/group_handler.go: ManageAdminHandler
type ManageAdminRequest struct {
	UserId string `json:"userId" binding:"required"`
	Action string `json:"action" binding:"required,oneof=add remove"`
}
