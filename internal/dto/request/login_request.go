package request

// LoginRequest login payload.
// Used by:
//   - handler/auth_handler.go: LoginHandler
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
