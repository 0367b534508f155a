package request

// AddMemberRequest add-member payload.
// Used by:
//   - handler/group_handler.go: AddMemberHandler
type AddMemberRequest struct {
	UserId string `json:"userId" binding:"required"`
}
