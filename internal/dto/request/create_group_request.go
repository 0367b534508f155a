package request

// CreateGroupRequest new group payload.
// Used by:
//   - handler/group_handler.go: CreateGroupHandler
type CreateGroupRequest struct {
	Name        string `json:"name" binding:"required,min=3"`
	Description string `json:"description"`
	Privacy     string `json:"privacy" binding:"omitempty,oneof=public private restricted"`
	Field       string `json:"field"`
	FieldType   string `json:"fieldType" binding:"omitempty,oneof=language track"`
	Image       string `json:"image"`
}
