package request

// UpdateGroupRequest bulk group update. Nil pointers and nil slices
// leave the corresponding field untouched; non-nil Members/Admins
// replace the whole list.
// Used by:
//   - handler/group_handler.go: UpdateGroupHandler
type UpdateGroupRequest struct {
	Name                 *string  `json:"name" binding:"omitempty,min=3"`
	Description          *string  `json:"description"`
	Privacy              *string  `json:"privacy" binding:"omitempty,oneof=public private restricted"`
	AllowMemberMessages  *bool    `json:"allowMemberMessages"`
	AllowMemberVideoCall *bool    `json:"allowMemberVideoCall"`
	Field                *string  `json:"field"`
	FieldType            *string  `json:"fieldType" binding:"omitempty,oneof=language track"`
	Image                *string  `json:"image"`
	Members              []string `json:"members"`
	Admins               []string `json:"admins"`
}
