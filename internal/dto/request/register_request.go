package request

// RegisterRequest signup payload.
// Used by:
//   - handler/auth_handler.go: SignupHandler
type RegisterRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}
