package request

// BanUserRequest ban payload.
// Used by:
//   - handler/group_handler.go: BanUserHandler
type BanUserRequest struct {
	UserId  string `json:"userId" binding:"required"`
	BanType string `json:"banType" binding:"required,oneof=message join"`
	Reason  string `json:"reason"`
}
